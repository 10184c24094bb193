package defaults_test

import (
	"reflect"
	"testing"

	docport "github.com/reoring/docport"
	"github.com/reoring/docport/backend/gomap"
	"github.com/reoring/docport/backend/yamlnode"
	"github.com/reoring/docport/defaults"
)

func mustJSON(t *testing.T, s string) gomap.Adapter {
	t.Helper()
	a, err := gomap.FromJSON([]byte(s))
	if err != nil {
		t.Fatalf("FromJSON(%q): %v", s, err)
	}
	return a
}

func mustExtract(t *testing.T, schema docport.Adapter) *defaults.Set {
	t.Helper()
	set, err := defaults.Extract(schema)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	return set
}

func TestApply_PopulatesMissingMember(t *testing.T) {
	set := mustExtract(t, mustJSON(t, `{"properties":{"A":{"default":5}}}`))
	doc := mustJSON(t, `{}`)

	applied := set.Apply(doc)

	if !reflect.DeepEqual(applied, []string{"/A"}) {
		t.Fatalf("applied = %v, want [/A]", applied)
	}
	obj, _ := doc.Object()
	if obj.Len() != 1 {
		t.Fatalf("document has %d members, want 1", obj.Len())
	}
	v, ok := obj.Find("A")
	if !ok {
		t.Fatalf("member A missing")
	}
	if n, ok := v.GetInteger(); !ok || n != 5 {
		t.Fatalf("A = %d (ok=%v), want 5", n, ok)
	}
}

func TestApply_ReadOnlyDocumentStaysEmpty(t *testing.T) {
	set := mustExtract(t, mustJSON(t, `{"properties":{"A":{"default":5}}}`))
	doc := mustJSON(t, `{}`)

	applied := set.Apply(docport.ReadOnly(doc))

	if applied != nil {
		t.Fatalf("applied = %v, want nil on a read-only document", applied)
	}
	obj, _ := doc.Object()
	if obj.Len() != 0 {
		t.Fatalf("read-only document grew to %d members", obj.Len())
	}
}

func TestApply_SchemaAndDocumentOnDifferentBackends(t *testing.T) {
	schema, err := yamlnode.FromYAML([]byte("properties:\n  A:\n    default: 5\n"))
	if err != nil {
		t.Fatalf("FromYAML: %v", err)
	}
	set := mustExtract(t, schema)
	doc := mustJSON(t, `{}`)

	applied := set.Apply(doc)

	if len(applied) != 1 {
		t.Fatalf("applied = %v, want one pointer", applied)
	}
	want := map[string]any{"A": int64(5)}
	if !reflect.DeepEqual(doc.Value(), want) {
		t.Fatalf("doc = %#v, want %#v", doc.Value(), want)
	}
}

func TestApply_ArrayDefault(t *testing.T) {
	set := mustExtract(t, mustJSON(t, `{"properties":{"L":{"default":[1,2,3]}}}`))
	doc := mustJSON(t, `{}`)

	set.Apply(doc)

	obj, _ := doc.Object()
	member, ok := obj.Find("L")
	if !ok {
		t.Fatalf("member L missing")
	}
	arr, err := member.Array()
	if err != nil {
		t.Fatalf("Array: %v", err)
	}
	if arr.Len() != 3 {
		t.Fatalf("Len = %d, want 3", arr.Len())
	}
	for i := 0; i < 3; i++ {
		if v, ok := arr.At(i).GetInteger(); !ok || v != int64(i+1) {
			t.Fatalf("element %d = %d (ok=%v), want %d", i, v, ok, i+1)
		}
	}
}

func TestApply_NestedProperties(t *testing.T) {
	schema := mustJSON(t, `{"properties":{"a":{"properties":{"b":{"default":"x"}}}}}`)
	set := mustExtract(t, schema)
	if got := set.Pointers(); !reflect.DeepEqual(got, []string{"/a/b"}) {
		t.Fatalf("pointers = %v, want [/a/b]", got)
	}

	doc := mustJSON(t, `{}`)
	applied := set.Apply(doc)
	if !reflect.DeepEqual(applied, []string{"/a/b"}) {
		t.Fatalf("applied = %v", applied)
	}
	want := map[string]any{"a": map[string]any{"b": "x"}}
	if !reflect.DeepEqual(doc.Value(), want) {
		t.Fatalf("doc = %#v, want %#v", doc.Value(), want)
	}
}

func TestApply_NeverOverwrites(t *testing.T) {
	set := mustExtract(t, mustJSON(t, `{"properties":{"A":{"default":5}}}`))
	doc := mustJSON(t, `{"A":1}`)

	applied := set.Apply(doc)

	if len(applied) != 0 {
		t.Fatalf("applied = %v, want none", applied)
	}
	want := map[string]any{"A": int64(1)}
	if !reflect.DeepEqual(doc.Value(), want) {
		t.Fatalf("existing member overwritten: %#v", doc.Value())
	}
}

func TestApply_ScalarBlocksNestedDefault(t *testing.T) {
	schema := mustJSON(t, `{"properties":{"a":{"properties":{"b":{"default":"x"}}}}}`)
	set := mustExtract(t, schema)
	doc := mustJSON(t, `{"a":5}`)

	applied := set.Apply(doc)

	if len(applied) != 0 {
		t.Fatalf("applied = %v, want none", applied)
	}
	want := map[string]any{"a": int64(5)}
	if !reflect.DeepEqual(doc.Value(), want) {
		t.Fatalf("scalar member clobbered: %#v", doc.Value())
	}
}

func TestApply_VivifiesNullRoot(t *testing.T) {
	set := mustExtract(t, mustJSON(t, `{"properties":{"A":{"default":true}}}`))
	doc := gomap.New()

	applied := set.Apply(doc)

	if len(applied) != 1 {
		t.Fatalf("applied = %v, want one pointer", applied)
	}
	want := map[string]any{"A": true}
	if !reflect.DeepEqual(doc.Value(), want) {
		t.Fatalf("doc = %#v, want %#v", doc.Value(), want)
	}
}

func TestApply_DefaultIntoYAMLDocument(t *testing.T) {
	set := mustExtract(t, mustJSON(t, `{"properties":{"A":{"default":{"k":[1,2]}}}}`))
	doc, err := yamlnode.FromYAML([]byte("existing: 1\n"))
	if err != nil {
		t.Fatalf("FromYAML: %v", err)
	}

	set.Apply(doc)

	out, err := yamlnode.YAML(doc)
	if err != nil {
		t.Fatalf("YAML: %v", err)
	}
	back, err := gomap.FromYAML(out)
	if err != nil {
		t.Fatalf("FromYAML(out): %v", err)
	}
	want := mustJSON(t, `{"existing":1,"A":{"k":[1,2]}}`)
	if !docport.Equal(back, want, true) {
		t.Fatalf("defaulted YAML = %s", out)
	}
}

func TestExtract_PointerEscaping(t *testing.T) {
	set := mustExtract(t, mustJSON(t, `{"properties":{"a/b":{"default":1},"c~d":{"default":2}}}`))
	got := set.Pointers()
	want := []string{"/a~1b", "/c~0d"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("pointers = %v, want %v", got, want)
	}
}

func TestExtract_RejectsNonObjectSchema(t *testing.T) {
	if _, err := defaults.Extract(mustJSON(t, `[1]`)); err == nil {
		t.Fatalf("array schema must be rejected")
	} else if _, ok := docport.AsTypeError(err); !ok {
		t.Fatalf("want *TypeError, got %v", err)
	}
}

func TestExtract_FrozenDefaultsOutliveSchema(t *testing.T) {
	schema := mustJSON(t, `{"properties":{"A":{"default":[1,2]}}}`)
	set := mustExtract(t, schema)

	// wreck the schema document after extraction
	schema.SetAsArray()

	doc := mustJSON(t, `{}`)
	set.Apply(doc)
	want := map[string]any{"A": []any{int64(1), int64(2)}}
	if !reflect.DeepEqual(doc.Value(), want) {
		t.Fatalf("defaults did not survive schema mutation: %#v", doc.Value())
	}
}
