package docport

// ArrayBridge is the per-backend traversal primitive for arrays: random
// access to element adapters. Implementations must be comparable values, as
// iterator equality is defined through them, and must stay cheap to copy.
type ArrayBridge interface {
	Len() int
	At(i int) Adapter
}

// ObjectBridge is the per-backend traversal primitive for objects. MemberAt
// must yield a stable order across repeated traversals of an unmodified
// document.
type ObjectBridge interface {
	Len() int
	MemberAt(i int) ObjectMember
}

// ArrayAppender is the mutable extension of ArrayBridge.
type ArrayAppender interface {
	ArrayBridge
	// Append adds a null element at the end and returns an adapter over it.
	Append() MutableAdapter
}

// ObjectCreator is the mutable extension of ObjectBridge.
type ObjectCreator interface {
	ObjectBridge
	// CreateKey ensures a member under key exists (creating a null one when
	// absent) and returns an adapter over it.
	CreateKey(key string) MutableAdapter
}

// keyFinder is an optional fast path for ObjectView.Find; bridges without it
// get a linear scan, matching the reference lookup behavior.
type keyFinder interface {
	Find(key string) (Adapter, bool)
}

// ArrayView is a non-owning, reference-only wrapper over one array-shaped
// node. The zero ArrayView is an empty array.
type ArrayView struct {
	b ArrayBridge
}

// NewArrayView wraps a backend bridge. A nil bridge yields an empty view.
func NewArrayView(b ArrayBridge) ArrayView { return ArrayView{b: b} }

func (v ArrayView) Len() int {
	if v.b == nil {
		return 0
	}
	return v.b.Len()
}

// At returns an adapter over element i, or an absent adapter when i is out
// of range.
func (v ArrayView) At(i int) Adapter {
	if v.b == nil || i < 0 || i >= v.b.Len() {
		return Absent()
	}
	return v.b.At(i)
}

func (v ArrayView) Begin() ArrayIter { return ArrayIter{b: v.b, i: 0} }
func (v ArrayView) End() ArrayIter   { return ArrayIter{b: v.b, i: v.Len()} }

// MutableArrayView adds element creation to ArrayView.
type MutableArrayView struct {
	ArrayView
	a ArrayAppender
}

// NewMutableArrayView wraps a mutable backend bridge.
func NewMutableArrayView(a ArrayAppender) MutableArrayView {
	return MutableArrayView{ArrayView: ArrayView{b: a}, a: a}
}

// Append adds a null element and returns an adapter over the new slot. On a
// zero view it returns an adapter over nothing.
func (v MutableArrayView) Append() MutableAdapter {
	if v.a == nil {
		return nopMutable{}
	}
	return v.a.Append()
}

// ObjectView is a non-owning, reference-only wrapper over one object-shaped
// node. The zero ObjectView is the canonical empty object.
type ObjectView struct {
	b ObjectBridge
}

// NewObjectView wraps a backend bridge. A nil bridge yields an empty view.
func NewObjectView(b ObjectBridge) ObjectView { return ObjectView{b: b} }

func (v ObjectView) Len() int {
	if v.b == nil {
		return 0
	}
	return v.b.Len()
}

// MemberAt returns member i in the backend's iteration order. Out-of-range
// indices yield a member with an absent value.
func (v ObjectView) MemberAt(i int) ObjectMember {
	if v.b == nil || i < 0 || i >= v.b.Len() {
		return ObjectMember{Value: Absent()}
	}
	return v.b.MemberAt(i)
}

// Find looks a member up by key; ok is false when absent.
func (v ObjectView) Find(key string) (Adapter, bool) {
	if v.b == nil {
		return Absent(), false
	}
	if f, ok := v.b.(keyFinder); ok {
		return f.Find(key)
	}
	for i, n := 0, v.b.Len(); i < n; i++ {
		if m := v.b.MemberAt(i); m.Key == key {
			return m.Value, true
		}
	}
	return Absent(), false
}

func (v ObjectView) Begin() ObjectIter { return ObjectIter{b: v.b, i: 0} }
func (v ObjectView) End() ObjectIter   { return ObjectIter{b: v.b, i: v.Len()} }

// FindIter returns an iterator positioned at the member with the given key,
// or the end iterator when absent.
func (v ObjectView) FindIter(key string) ObjectIter {
	if v.b != nil {
		for i, n := 0, v.b.Len(); i < n; i++ {
			if v.b.MemberAt(i).Key == key {
				return ObjectIter{b: v.b, i: i}
			}
		}
	}
	return v.End()
}

// MutableObjectView adds member creation to ObjectView.
type MutableObjectView struct {
	ObjectView
	c ObjectCreator
}

// NewMutableObjectView wraps a mutable backend bridge.
func NewMutableObjectView(c ObjectCreator) MutableObjectView {
	return MutableObjectView{ObjectView: ObjectView{b: c}, c: c}
}

// CreateKey inserts (or finds) the member under key and returns an adapter
// over its slot. On a zero view it returns an adapter over nothing.
func (v MutableObjectView) CreateKey(key string) MutableAdapter {
	if v.c == nil {
		return nopMutable{}
	}
	return v.c.CreateKey(key)
}

// ArrayIter is a bidirectional cursor over an ArrayView. Two iterators are
// equal only when derived from the same underlying traversal state (same
// bridge value, same position).
type ArrayIter struct {
	b ArrayBridge
	i int
}

func (it ArrayIter) Valid() bool {
	return it.b != nil && it.i >= 0 && it.i < it.b.Len()
}

// Value returns the element adapter at the cursor, or an absent adapter when
// the cursor is not valid.
func (it ArrayIter) Value() Adapter {
	if !it.Valid() {
		return Absent()
	}
	return it.b.At(it.i)
}

func (it *ArrayIter) Next() { it.i++ }
func (it *ArrayIter) Prev() { it.i-- }

func (it ArrayIter) Equal(other ArrayIter) bool {
	return it.b == other.b && it.i == other.i
}

// ObjectIter is a bidirectional cursor over an ObjectView.
type ObjectIter struct {
	b ObjectBridge
	i int
}

func (it ObjectIter) Valid() bool {
	return it.b != nil && it.i >= 0 && it.i < it.b.Len()
}

// Member returns the (key, value) pair at the cursor; the key is an owned
// copy. An invalid cursor yields a member with an absent value.
func (it ObjectIter) Member() ObjectMember {
	if !it.Valid() {
		return ObjectMember{Value: Absent()}
	}
	return it.b.MemberAt(it.i)
}

func (it *ObjectIter) Next() { it.i++ }
func (it *ObjectIter) Prev() { it.i-- }

func (it ObjectIter) Equal(other ObjectIter) bool {
	return it.b == other.b && it.i == other.i
}

// nopMutable is the writable counterpart of Absent: every write lands
// nowhere. Returned where the contract promises a mutable handle but no slot
// exists (Append/CreateKey on a zero view).
type nopMutable struct{ absent }

func (nopMutable) SetBool(bool)      {}
func (nopMutable) SetInteger(int64)  {}
func (nopMutable) SetDouble(float64) {}
func (nopMutable) SetString(string)  {}
func (nopMutable) SetAsArray()       {}
func (nopMutable) SetAsObject()      {}

func (nopMutable) MutableObject() (MutableObjectView, error) {
	return MutableObjectView{}, nil
}

func (nopMutable) MutableArray() (MutableArrayView, error) {
	return MutableArrayView{}, NewTypeError(KindArray, KindNull)
}
