package docport

// Frozen is an owned, backend-independent snapshot of a value's structure:
// scalars by value, arrays and objects recursively copied. It never
// references the source document and may outlive it freely. A Frozen is
// immutable after creation, so it needs no locking when shared.
type Frozen struct {
	kind    Kind
	boolv   bool
	intv    int64
	doublev float64
	strv    string
	elems   []*Frozen
	members []frozenMember
}

type frozenMember struct {
	key   string
	value *Frozen
}

// Freeze captures a deep structural copy of the value behind a. Freezing a
// nil or absent adapter yields the canonical null snapshot.
func Freeze(a Adapter) *Frozen {
	if a == nil {
		return &Frozen{kind: KindNull}
	}
	switch {
	case a.IsObject():
		f := &Frozen{kind: KindObject}
		obj, err := a.Object()
		if err != nil {
			return &Frozen{kind: KindNull}
		}
		for it := obj.Begin(); !it.Equal(obj.End()); it.Next() {
			m := it.Member()
			f.members = append(f.members, frozenMember{key: m.Key, value: Freeze(m.Value)})
		}
		return f
	case a.IsArray():
		f := &Frozen{kind: KindArray}
		arr, err := a.Array()
		if err != nil {
			return &Frozen{kind: KindNull}
		}
		for it := arr.Begin(); !it.Equal(arr.End()); it.Next() {
			f.elems = append(f.elems, Freeze(it.Value()))
		}
		return f
	case a.IsString():
		s, _ := a.GetString()
		return &Frozen{kind: KindString, strv: s}
	case a.IsBool():
		b, _ := a.GetBool()
		return &Frozen{kind: KindBool, boolv: b}
	case a.IsDouble():
		d, _ := a.GetDouble()
		return &Frozen{kind: KindDouble, doublev: d}
	case a.IsInteger():
		i, _ := a.GetInteger()
		return &Frozen{kind: KindInteger, intv: i}
	default:
		return &Frozen{kind: KindNull}
	}
}

// Kind returns the snapshot's shape.
func (f *Frozen) Kind() Kind {
	if f == nil {
		return KindNull
	}
	return f.kind
}

// Clone produces another independent snapshot of the same value.
func (f *Frozen) Clone() *Frozen {
	if f == nil {
		return &Frozen{kind: KindNull}
	}
	c := &Frozen{
		kind:    f.kind,
		boolv:   f.boolv,
		intv:    f.intv,
		doublev: f.doublev,
		strv:    f.strv,
	}
	if f.elems != nil {
		c.elems = make([]*Frozen, len(f.elems))
		for i, e := range f.elems {
			c.elems[i] = e.Clone()
		}
	}
	if f.members != nil {
		c.members = make([]frozenMember, len(f.members))
		for i, m := range f.members {
			c.members[i] = frozenMember{key: m.key, value: m.value.Clone()}
		}
	}
	return c
}

// MaterializeInto writes the snapshot's content into dst. A read-only
// destination is left untouched.
func (f *Frozen) MaterializeInto(dst Adapter) {
	Assign(dst, f.Adapter())
}

// Equal compares the snapshot against a live adapter of any backend under
// the structural equality contract.
func (f *Frozen) Equal(other Adapter, strict bool) bool {
	return Equal(f.Adapter(), other, strict)
}

// Adapter exposes the snapshot through the uniform read contract. Frozen
// values are a backend in their own right, an intrinsically read-only one.
func (f *Frozen) Adapter() Adapter {
	if f == nil {
		return Absent()
	}
	return frozenAdapter{f: f}
}

type frozenAdapter struct {
	f *Frozen
}

func (a frozenAdapter) IsObject() bool  { return a.f.kind == KindObject }
func (a frozenAdapter) IsArray() bool   { return a.f.kind == KindArray }
func (a frozenAdapter) IsString() bool  { return a.f.kind == KindString }
func (a frozenAdapter) IsBool() bool    { return a.f.kind == KindBool }
func (a frozenAdapter) IsInteger() bool { return a.f.kind == KindInteger }
func (a frozenAdapter) IsDouble() bool  { return a.f.kind == KindDouble }
func (a frozenAdapter) IsNumber() bool {
	return a.f.kind == KindInteger || a.f.kind == KindDouble
}
func (a frozenAdapter) IsNull() bool { return a.f.kind == KindNull }

func (a frozenAdapter) GetBool() (bool, bool) {
	if a.f.kind != KindBool {
		return false, false
	}
	return a.f.boolv, true
}

func (a frozenAdapter) GetInteger() (int64, bool) {
	if a.f.kind != KindInteger {
		return 0, false
	}
	return a.f.intv, true
}

func (a frozenAdapter) GetDouble() (float64, bool) {
	if a.f.kind != KindDouble {
		return 0, false
	}
	return a.f.doublev, true
}

func (a frozenAdapter) GetString() (string, bool) {
	if a.f.kind != KindString {
		return "", false
	}
	return a.f.strv, true
}

func (a frozenAdapter) Object() (ObjectView, error) {
	if a.f.kind == KindNull {
		// null reads as the canonical empty object, like the live backends
		return ObjectView{}, nil
	}
	if a.f.kind != KindObject {
		return ObjectView{}, NewTypeError(KindObject, a.f.kind)
	}
	return NewObjectView(frozenObjectBridge{f: a.f}), nil
}

func (a frozenAdapter) Array() (ArrayView, error) {
	if a.f.kind != KindArray {
		return ArrayView{}, NewTypeError(KindArray, a.f.kind)
	}
	return NewArrayView(frozenArrayBridge{f: a.f}), nil
}

func (a frozenAdapter) HasStrictTypes() bool { return true }

type frozenArrayBridge struct {
	f *Frozen
}

func (b frozenArrayBridge) Len() int { return len(b.f.elems) }

func (b frozenArrayBridge) At(i int) Adapter { return b.f.elems[i].Adapter() }

type frozenObjectBridge struct {
	f *Frozen
}

func (b frozenObjectBridge) Len() int { return len(b.f.members) }

func (b frozenObjectBridge) MemberAt(i int) ObjectMember {
	m := b.f.members[i]
	return ObjectMember{Key: m.key, Value: m.value.Adapter()}
}
