package docport

// ReadOnly seals an adapter into the read-only capability. The result's
// static and dynamic type expose no mutating operation, so Assign, CreateKey
// and Resize degrade to no-ops on it, and views obtained through it hand out
// sealed adapters as well. Sealing an already read-only adapter returns it
// unchanged.
func ReadOnly(a Adapter) Adapter {
	if a == nil {
		return Absent()
	}
	if _, ok := a.(MutableAdapter); !ok {
		return a
	}
	return sealed{a: a}
}

type sealed struct {
	a Adapter
}

func (s sealed) IsObject() bool  { return s.a.IsObject() }
func (s sealed) IsArray() bool   { return s.a.IsArray() }
func (s sealed) IsString() bool  { return s.a.IsString() }
func (s sealed) IsBool() bool    { return s.a.IsBool() }
func (s sealed) IsInteger() bool { return s.a.IsInteger() }
func (s sealed) IsDouble() bool  { return s.a.IsDouble() }
func (s sealed) IsNumber() bool  { return s.a.IsNumber() }
func (s sealed) IsNull() bool    { return s.a.IsNull() }

func (s sealed) GetBool() (bool, bool)      { return s.a.GetBool() }
func (s sealed) GetInteger() (int64, bool)  { return s.a.GetInteger() }
func (s sealed) GetDouble() (float64, bool) { return s.a.GetDouble() }
func (s sealed) GetString() (string, bool)  { return s.a.GetString() }

func (s sealed) Object() (ObjectView, error) {
	v, err := s.a.Object()
	if err != nil {
		return ObjectView{}, err
	}
	if v.b == nil {
		return ObjectView{}, nil
	}
	return NewObjectView(sealedObjectBridge{b: v.b}), nil
}

func (s sealed) Array() (ArrayView, error) {
	v, err := s.a.Array()
	if err != nil {
		return ArrayView{}, err
	}
	if v.b == nil {
		return ArrayView{}, nil
	}
	return NewArrayView(sealedArrayBridge{b: v.b}), nil
}

func (s sealed) HasStrictTypes() bool { return s.a.HasStrictTypes() }

type sealedArrayBridge struct {
	b ArrayBridge
}

func (s sealedArrayBridge) Len() int         { return s.b.Len() }
func (s sealedArrayBridge) At(i int) Adapter { return ReadOnly(s.b.At(i)) }

type sealedObjectBridge struct {
	b ObjectBridge
}

func (s sealedObjectBridge) Len() int { return s.b.Len() }

func (s sealedObjectBridge) MemberAt(i int) ObjectMember {
	m := s.b.MemberAt(i)
	return ObjectMember{Key: m.Key, Value: ReadOnly(m.Value)}
}
