package gomap

import (
	"bytes"
	"fmt"

	j "github.com/goccy/go-json"
	yaml "github.com/goccy/go-yaml"

	docport "github.com/reoring/docport"
)

// FromJSON decodes JSON into a fresh document and returns an adapter over
// its root. Numbers are decoded exactly: integral literals become int64,
// everything else float64.
func FromJSON(b []byte) (Adapter, error) {
	dec := j.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return Adapter{}, fmt.Errorf("gomap: decode json: %w", err)
	}
	root := new(any)
	*root = normalize(v)
	return Adapter{s: rootSlot{p: root}}, nil
}

// FromYAML decodes YAML into a fresh document and returns an adapter over
// its root. goccy/go-yaml already yields JSON-compatible map[string]any
// trees; scalar widths are normalized afterwards.
func FromYAML(b []byte) (Adapter, error) {
	var v any
	if err := yaml.Unmarshal(b, &v); err != nil {
		return Adapter{}, fmt.Errorf("gomap: decode yaml: %w", err)
	}
	root := new(any)
	*root = normalize(v)
	return Adapter{s: rootSlot{p: root}}, nil
}

// Tree materializes the value behind any adapter, whatever its backend, as
// an independent plain Go tree.
func Tree(a docport.Adapter) any {
	target := New()
	docport.Assign(target, a)
	return target.Value()
}

// JSON serializes the value behind any adapter as compact JSON.
func JSON(a docport.Adapter) ([]byte, error) {
	out, err := j.Marshal(Tree(a))
	if err != nil {
		return nil, fmt.Errorf("gomap: encode json: %w", err)
	}
	return out, nil
}

// normalize rewrites decoder-specific scalar spellings into the canonical
// ones the adapter stores: int64, float64, bool, string, nil.
func normalize(v any) any {
	switch n := v.(type) {
	case map[string]any:
		for k, e := range n {
			n[k] = normalize(e)
		}
		return n
	case []any:
		for i, e := range n {
			n[i] = normalize(e)
		}
		return n
	case j.Number:
		if i, ok := integerOf(n); ok {
			return i
		}
		if f, err := n.Float64(); err == nil {
			return f
		}
		return n.String()
	case int:
		return int64(n)
	case int32:
		return int64(n)
	case uint:
		return int64(n)
	case uint32:
		return int64(n)
	case uint64:
		if n <= 1<<63-1 {
			return int64(n)
		}
		return float64(n)
	case float32:
		return float64(n)
	default:
		return v
	}
}
