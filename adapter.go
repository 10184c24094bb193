package docport

// Adapter is the uniform read contract over one node of a document held by
// some concrete backend. An Adapter is a non-owning reference: its lifetime
// must not exceed the document's. Use Freeze to detach a value from the
// document.
//
// An Adapter over an absent reference answers IsNull()==true and fails every
// typed getter; for object-shaped reads it behaves as the canonical empty
// object (Object() succeeds with an empty view) while Array() fails. This
// asymmetry is a long-standing convenience of the contract, kept as is.
type Adapter interface {
	IsObject() bool
	IsArray() bool
	IsString() bool
	IsBool() bool
	// IsInteger reports exact-integral numeric storage that is not boolean.
	IsInteger() bool
	IsDouble() bool
	// IsNumber is true for integer or double storage, never for boolean.
	IsNumber() bool
	IsNull() bool

	// Typed getters follow the comma-ok convention; ok is false when the
	// matching predicate is false or the reference is absent.
	GetBool() (bool, bool)
	GetInteger() (int64, bool)
	GetDouble() (float64, bool)
	GetString() (string, bool)

	// Object returns a view over the node's members. It fails with a
	// *TypeError when the node is present but not an object; an absent
	// reference yields an empty view.
	Object() (ObjectView, error)
	// Array returns a view over the node's elements. It fails with a
	// *TypeError when the node is not an array, including the absent case.
	Array() (ArrayView, error)

	// HasStrictTypes reports whether the backend keeps numeric/boolean
	// distinctions exact, with no implicit coercion between bool and number.
	HasStrictTypes() bool
}

// MutableAdapter extends the read contract with in-place mutation of the
// referenced slot. Backends that cannot be written to simply never produce
// one, so calling a setter on a read-only adapter does not compile. All
// setters are silent no-ops when the underlying reference is absent.
//
// Capability-generic code should not require MutableAdapter directly; it
// goes through Assign, CreateKey and Resize, which degrade to no-ops on
// read-only destinations.
type MutableAdapter interface {
	Adapter

	SetBool(v bool)
	SetInteger(v int64)
	SetDouble(v float64)
	SetString(v string)
	// SetAsArray reinitializes the slot as an empty array, discarding prior
	// content. SetAsObject does the same for objects.
	SetAsArray()
	SetAsObject()

	MutableObject() (MutableObjectView, error)
	MutableArray() (MutableArrayView, error)
}

// ObjectMember is one (key, value) pair of an object. The key is an owned
// copy; Value is a live adapter over the member's node. Ordering and key
// uniqueness are inherited from the backend's iteration.
type ObjectMember struct {
	Key   string
	Value Adapter
}

// absent is the canonical adapter over no reference at all.
type absent struct{}

// Absent returns a read-only Adapter holding no reference. It reads as null,
// and as the empty object for object-shaped queries.
func Absent() Adapter { return absent{} }

func (absent) IsObject() bool  { return false }
func (absent) IsArray() bool   { return false }
func (absent) IsString() bool  { return false }
func (absent) IsBool() bool    { return false }
func (absent) IsInteger() bool { return false }
func (absent) IsDouble() bool  { return false }
func (absent) IsNumber() bool  { return false }
func (absent) IsNull() bool    { return true }

func (absent) GetBool() (bool, bool)      { return false, false }
func (absent) GetInteger() (int64, bool)  { return 0, false }
func (absent) GetDouble() (float64, bool) { return 0, false }
func (absent) GetString() (string, bool)  { return "", false }

func (absent) Object() (ObjectView, error) { return ObjectView{}, nil }
func (absent) Array() (ArrayView, error) {
	return ArrayView{}, NewTypeError(KindArray, KindNull)
}

func (absent) HasStrictTypes() bool { return true }
