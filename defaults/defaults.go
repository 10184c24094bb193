// Package defaults extracts schema-declared default values from a schema
// document and injects them into documents under validation. Schema and
// document may live on entirely different backends: defaults are captured as
// frozen snapshots, so they survive the schema document and materialize into
// whatever mutable representation the target uses. Applying against a
// read-only document is a safe, complete no-op.
package defaults

import (
	"sort"
	"strings"

	docport "github.com/reoring/docport"
)

// jsonPointerEscaper escapes member names per RFC 6901.
var jsonPointerEscaper = strings.NewReplacer("~", "~0", "/", "~1")

type entry struct {
	ptr  string
	segs []string
	val  *docport.Frozen
}

// Set holds the defaults captured from one schema, keyed by the JSON Pointer
// of the document member they populate. A Set is immutable after Extract and
// independent of the schema document's lifetime.
type Set struct {
	entries []entry
}

// Extract walks the schema behind any adapter and captures a frozen snapshot
// of every "default" declared under a property path. Nested properties
// compose pointers, so
//
//	{"properties":{"a":{"properties":{"b":{"default":1}}}}}
//
// captures /a/b. A schema that is not object-shaped is a type error.
func Extract(schema docport.Adapter) (*Set, error) {
	if schema == nil {
		schema = docport.Absent()
	}
	if !schema.IsObject() && !schema.IsNull() {
		return nil, docport.NewTypeError(docport.KindObject, docport.KindOf(schema))
	}
	s := &Set{}
	if err := s.walk(schema, nil); err != nil {
		return nil, err
	}
	sort.Slice(s.entries, func(i, j int) bool { return s.entries[i].ptr < s.entries[j].ptr })
	return s, nil
}

func (s *Set) walk(schema docport.Adapter, segs []string) error {
	obj, err := schema.Object()
	if err != nil {
		return err
	}
	if len(segs) > 0 {
		if def, ok := obj.Find("default"); ok {
			s.entries = append(s.entries, entry{
				ptr:  pointerOf(segs),
				segs: append([]string(nil), segs...),
				val:  docport.Freeze(def),
			})
		}
	}
	props, ok := obj.Find("properties")
	if !ok || !props.IsObject() {
		return nil
	}
	pobj, err := props.Object()
	if err != nil {
		return err
	}
	for it := pobj.Begin(); !it.Equal(pobj.End()); it.Next() {
		m := it.Member()
		if !m.Value.IsObject() {
			continue
		}
		if err := s.walk(m.Value, append(segs, m.Key)); err != nil {
			return err
		}
	}
	return nil
}

// Len reports how many defaults were captured.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.entries)
}

// Pointers lists the captured document pointers in sorted order.
func (s *Set) Pointers() []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s.entries))
	for i, e := range s.entries {
		out[i] = e.ptr
	}
	return out
}

// Apply injects every captured default whose target member is missing from
// doc, creating intermediate members as needed, and returns the pointers
// actually applied. Members already present are never overwritten. When the
// document's backend is read-only, nothing changes and nil is returned; that
// is not an error, validation simply proceeds without defaults.
func (s *Set) Apply(doc docport.Adapter) []string {
	if s == nil || doc == nil {
		return nil
	}
	var applied []string
	for _, e := range s.entries {
		if present(doc, e.segs) {
			continue
		}
		dst := doc
		for _, seg := range e.segs {
			dst = docport.CreateKey(dst, seg)
		}
		e.val.MaterializeInto(dst)
		// re-probe rather than ask the backend about writability: the
		// capability decision stays inside CreateKey/Assign
		if present(doc, e.segs) {
			applied = append(applied, e.ptr)
		}
	}
	return applied
}

func present(doc docport.Adapter, segs []string) bool {
	cur := doc
	for _, seg := range segs {
		obj, err := cur.Object()
		if err != nil {
			return false
		}
		v, ok := obj.Find(seg)
		if !ok {
			return false
		}
		cur = v
	}
	return true
}

func pointerOf(segs []string) string {
	b := &strings.Builder{}
	for _, seg := range segs {
		b.WriteByte('/')
		b.WriteString(jsonPointerEscaper.Replace(seg))
	}
	return b.String()
}
