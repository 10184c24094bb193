// Package gomap adapts plain Go value trees (map[string]any, []any and the
// scalar kinds encoding/json-style decoders produce) to the docport
// contract. It is the mutable backend of choice for JSON documents.
//
// Slots reference their parent container rather than the value itself, so
// writes through an adapter stay visible from the root even when an append
// reallocates a slice. Object iteration is bridged in lexicographic key
// order: Go map order is randomized, and the view contract wants an order
// that is stable across repeated traversals of an unmodified document.
package gomap

import (
	"sort"
	"strconv"

	"github.com/goccy/go-json"

	docport "github.com/reoring/docport"
)

// slot is a writable reference to one node of a document tree. Slots resolve
// through their parent on every access and must be comparable values;
// iterator equality relies on it.
type slot interface {
	get() any
	set(v any)
}

type rootSlot struct {
	p *any
}

func (s rootSlot) get() any  { return *s.p }
func (s rootSlot) set(v any) { *s.p = v }

type keySlot struct {
	parent slot
	key    string
}

func (s keySlot) get() any {
	m, _ := s.parent.get().(map[string]any)
	return m[s.key]
}

func (s keySlot) set(v any) {
	if m, ok := s.parent.get().(map[string]any); ok {
		m[s.key] = v
	}
}

type indexSlot struct {
	parent slot
	i      int
}

func (s indexSlot) get() any {
	arr, _ := s.parent.get().([]any)
	if s.i < 0 || s.i >= len(arr) {
		return nil
	}
	return arr[s.i]
}

func (s indexSlot) set(v any) {
	arr, _ := s.parent.get().([]any)
	if s.i >= 0 && s.i < len(arr) {
		arr[s.i] = v
	}
}

// Adapter is the mutable docport adapter over one node of a plain Go tree.
// The zero Adapter holds no reference and reads as null.
type Adapter struct {
	s slot
}

var (
	_ docport.Adapter        = Adapter{}
	_ docport.MutableAdapter = Adapter{}
)

// New returns an adapter over a fresh, initially null document root.
func New() Adapter {
	return Adapter{s: rootSlot{p: new(any)}}
}

// Wrap returns an adapter over an externally owned document root. Mutations
// through the adapter are visible via p.
func Wrap(p *any) Adapter {
	if p == nil {
		return Adapter{}
	}
	return Adapter{s: rootSlot{p: p}}
}

// Value returns the plain Go value currently behind the adapter. The result
// shares structure with the document.
func (a Adapter) Value() any {
	if a.s == nil {
		return nil
	}
	return a.s.get()
}

func (a Adapter) IsObject() bool {
	_, ok := a.Value().(map[string]any)
	return ok
}

func (a Adapter) IsArray() bool {
	_, ok := a.Value().([]any)
	return ok
}

func (a Adapter) IsString() bool {
	_, ok := a.Value().(string)
	return ok
}

func (a Adapter) IsBool() bool {
	_, ok := a.Value().(bool)
	return ok
}

func (a Adapter) IsInteger() bool {
	_, ok := integerOf(a.Value())
	return ok
}

func (a Adapter) IsDouble() bool {
	_, ok := doubleOf(a.Value())
	return ok
}

func (a Adapter) IsNumber() bool { return a.IsInteger() || a.IsDouble() }

func (a Adapter) IsNull() bool { return a.Value() == nil }

func (a Adapter) GetBool() (bool, bool) {
	b, ok := a.Value().(bool)
	return b, ok
}

func (a Adapter) GetInteger() (int64, bool) { return integerOf(a.Value()) }

func (a Adapter) GetDouble() (float64, bool) { return doubleOf(a.Value()) }

func (a Adapter) GetString() (string, bool) {
	s, ok := a.Value().(string)
	return s, ok
}

func (a Adapter) Object() (docport.ObjectView, error) {
	if a.s == nil || a.Value() == nil {
		// absent reads as the canonical empty object
		return docport.ObjectView{}, nil
	}
	if _, ok := a.Value().(map[string]any); !ok {
		return docport.ObjectView{}, docport.NewTypeError(docport.KindObject, kindOf(a.Value()))
	}
	return docport.NewObjectView(objectBridge{s: a.s}), nil
}

func (a Adapter) Array() (docport.ArrayView, error) {
	if a.s == nil {
		return docport.ArrayView{}, docport.NewTypeError(docport.KindArray, docport.KindNull)
	}
	if _, ok := a.Value().([]any); !ok {
		return docport.ArrayView{}, docport.NewTypeError(docport.KindArray, kindOf(a.Value()))
	}
	return docport.NewArrayView(arrayBridge{s: a.s}), nil
}

func (a Adapter) HasStrictTypes() bool { return true }

func (a Adapter) SetBool(v bool) { a.setValue(v) }

func (a Adapter) SetInteger(v int64) { a.setValue(v) }

func (a Adapter) SetDouble(v float64) { a.setValue(v) }

func (a Adapter) SetString(v string) { a.setValue(v) }

func (a Adapter) SetAsArray() { a.setValue([]any{}) }

func (a Adapter) SetAsObject() { a.setValue(map[string]any{}) }

func (a Adapter) setValue(v any) {
	if a.s != nil {
		a.s.set(v)
	}
}

func (a Adapter) MutableObject() (docport.MutableObjectView, error) {
	if a.s == nil || a.Value() == nil {
		return docport.MutableObjectView{}, nil
	}
	if _, ok := a.Value().(map[string]any); !ok {
		return docport.MutableObjectView{}, docport.NewTypeError(docport.KindObject, kindOf(a.Value()))
	}
	return docport.NewMutableObjectView(objectBridge{s: a.s}), nil
}

func (a Adapter) MutableArray() (docport.MutableArrayView, error) {
	if a.s == nil {
		return docport.MutableArrayView{}, docport.NewTypeError(docport.KindArray, docport.KindNull)
	}
	if _, ok := a.Value().([]any); !ok {
		return docport.MutableArrayView{}, docport.NewTypeError(docport.KindArray, kindOf(a.Value()))
	}
	return docport.NewMutableArrayView(arrayBridge{s: a.s}), nil
}

type arrayBridge struct {
	s slot
}

func (b arrayBridge) Len() int {
	arr, _ := b.s.get().([]any)
	return len(arr)
}

func (b arrayBridge) At(i int) docport.Adapter {
	return Adapter{s: indexSlot{parent: b.s, i: i}}
}

func (b arrayBridge) Append() docport.MutableAdapter {
	arr, ok := b.s.get().([]any)
	if !ok {
		return Adapter{}
	}
	b.s.set(append(arr, nil))
	return Adapter{s: indexSlot{parent: b.s, i: len(arr)}}
}

type objectBridge struct {
	s slot
}

func (b objectBridge) Len() int {
	m, _ := b.s.get().(map[string]any)
	return len(m)
}

func (b objectBridge) MemberAt(i int) docport.ObjectMember {
	keys := b.keys()
	if i < 0 || i >= len(keys) {
		return docport.ObjectMember{Value: docport.Absent()}
	}
	return docport.ObjectMember{
		Key:   keys[i],
		Value: Adapter{s: keySlot{parent: b.s, key: keys[i]}},
	}
}

// Find is the map-native fast path used by ObjectView.Find.
func (b objectBridge) Find(key string) (docport.Adapter, bool) {
	m, _ := b.s.get().(map[string]any)
	if _, ok := m[key]; !ok {
		return docport.Absent(), false
	}
	return Adapter{s: keySlot{parent: b.s, key: key}}, true
}

func (b objectBridge) CreateKey(key string) docport.MutableAdapter {
	m, ok := b.s.get().(map[string]any)
	if !ok {
		return Adapter{}
	}
	if _, exists := m[key]; !exists {
		m[key] = nil
	}
	return Adapter{s: keySlot{parent: b.s, key: key}}
}

func (b objectBridge) keys() []string {
	m, _ := b.s.get().(map[string]any)
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func kindOf(v any) docport.Kind {
	switch v.(type) {
	case nil:
		return docport.KindNull
	case map[string]any:
		return docport.KindObject
	case []any:
		return docport.KindArray
	case string:
		return docport.KindString
	case bool:
		return docport.KindBool
	}
	if _, ok := integerOf(v); ok {
		return docport.KindInteger
	}
	if _, ok := doubleOf(v); ok {
		return docport.KindDouble
	}
	return docport.KindNull
}

// integerOf accepts the integer spellings the supported decoders emit.
// json.Number counts as an integer only when it parses exactly.
func integerOf(v any) (int64, bool) {
	switch n := v.(type) {
	case int64:
		return n, true
	case int:
		return int64(n), true
	case int32:
		return int64(n), true
	case int16:
		return int64(n), true
	case int8:
		return int64(n), true
	case uint:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint8:
		return int64(n), true
	case uint64:
		if n <= 1<<63-1 {
			return int64(n), true
		}
		return 0, false
	case json.Number:
		i, err := strconv.ParseInt(n.String(), 10, 64)
		if err != nil {
			return 0, false
		}
		return i, true
	}
	return 0, false
}

func doubleOf(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case json.Number:
		if _, err := strconv.ParseInt(n.String(), 10, 64); err == nil {
			return 0, false // integral storage, handled by integerOf
		}
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}
