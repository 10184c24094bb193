package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/fatih/color"
	j "github.com/goccy/go-json"
	"github.com/mattn/go-isatty"

	docport "github.com/reoring/docport"
	"github.com/reoring/docport/backend/gomap"
	"github.com/reoring/docport/backend/yamlnode"
	"github.com/reoring/docport/defaults"
)

func main() {
	color.NoColor = !isatty.IsTerminal(os.Stderr.Fd())
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	sub := os.Args[1]
	switch sub {
	case "defaults":
		defaultsCmd(os.Args[2:])
	case "eq":
		eqCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "docport CLI\n\nUsage:\n  docport defaults -schema schema.{json,yaml} [-o json|yaml] [-patch] [doc.{json,yaml}]\n  docport eq [-strict] a.{json,yaml} b.{json,yaml}\n\nNotes:\n  - File format is picked by extension; .yaml/.yml documents keep member order.\n  - With no doc argument, defaults are applied to an empty object document.")
}

func defaultsCmd(args []string) {
	fs := flag.NewFlagSet("defaults", flag.ExitOnError)
	var schemaPath string
	var out string
	var patch bool
	fs.StringVar(&schemaPath, "schema", "", "schema file (json or yaml)")
	fs.StringVar(&out, "o", "json", "output format: json or yaml")
	fs.BoolVar(&patch, "patch", false, "print the JSON merge patch of applied defaults instead of the document")
	_ = fs.Parse(args)
	if schemaPath == "" {
		fs.Usage()
		os.Exit(2)
	}

	schema, err := loadFile(schemaPath)
	if err != nil {
		fatal(err)
	}

	var doc docport.Adapter
	if fs.NArg() > 0 {
		doc, err = loadFile(fs.Arg(0))
		if err != nil {
			fatal(err)
		}
	} else {
		fresh := gomap.New()
		fresh.SetAsObject()
		doc = fresh
	}

	before, err := gomap.JSON(doc)
	if err != nil {
		fatal(err)
	}

	set, err := defaults.Extract(schema)
	if err != nil {
		fatal(err)
	}
	applied := set.Apply(doc)

	if patch {
		after, err := gomap.JSON(doc)
		if err != nil {
			fatal(err)
		}
		mp, err := jsonpatch.CreateMergePatch(before, after)
		if err != nil {
			fatal(fmt.Errorf("merge patch: %w", err))
		}
		fmt.Println(string(mp))
	} else {
		switch out {
		case "yaml":
			b, err := yamlnode.YAML(doc)
			if err != nil {
				fatal(err)
			}
			os.Stdout.Write(b)
		default:
			b, err := j.MarshalIndent(gomap.Tree(doc), "", "  ")
			if err != nil {
				fatal(err)
			}
			fmt.Println(string(b))
		}
	}

	color.New(color.FgGreen).Fprintf(os.Stderr, "applied %d of %d default(s)\n", len(applied), set.Len())
	for _, p := range applied {
		fmt.Fprintf(os.Stderr, "  %s\n", p)
	}
}

func eqCmd(args []string) {
	fs := flag.NewFlagSet("eq", flag.ExitOnError)
	var strict bool
	fs.BoolVar(&strict, "strict", false, "require exact numeric storage (5 != 5.0)")
	_ = fs.Parse(args)
	if fs.NArg() != 2 {
		fs.Usage()
		os.Exit(2)
	}
	a, err := loadFile(fs.Arg(0))
	if err != nil {
		fatal(err)
	}
	b, err := loadFile(fs.Arg(1))
	if err != nil {
		fatal(err)
	}
	if docport.Equal(a, b, strict) {
		fmt.Println("equal")
		return
	}
	fmt.Println("not equal")
	os.Exit(1)
}

// loadFile picks the backend by extension: YAML files get the
// order-preserving node backend, everything else the plain-map JSON backend.
func loadFile(path string) (docport.Adapter, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		a, err := yamlnode.FromYAML(b)
		if err != nil {
			return nil, err
		}
		return a, nil
	default:
		a, err := gomap.FromJSON(b)
		if err != nil {
			return nil, err
		}
		return a, nil
	}
}

func fatal(err error) {
	color.New(color.FgRed).Fprintf(os.Stderr, "docport: %v\n", err)
	os.Exit(1)
}
