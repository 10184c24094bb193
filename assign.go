package docport

// Assign overwrites dst's structure with a recursive copy of src's value.
// The source may come from any backend, read-only or mutable; the two sides
// need not share a representation. When dst's backend is read-only, Assign
// is a guaranteed no-op and reports nothing; callers must not rely on it
// mutating a read-only destination.
//
// After Assign returns on a mutable destination, dst holds a structural copy
// of src's value at call time and no longer depends on src's lifetime.
// Assign is idempotent.
//
// Together with CreateKey and Resize this is the only place writability is
// decided; it is resolved by capability upgrade on the destination's type,
// never by inspecting backend identity.
func Assign(dst, src Adapter) {
	if w, ok := dst.(MutableAdapter); ok {
		assign(w, src)
	}
}

// assign dispatches on the source's type predicates in fixed order: object,
// array, string, bool, double, integer. Null or unrecognized sources are a
// leaf no-op.
func assign(dst MutableAdapter, src Adapter) {
	if src == nil {
		return
	}
	switch {
	case src.IsObject():
		dst.SetAsObject()
		obj, err := src.Object()
		if err != nil {
			return
		}
		mobj, err := dst.MutableObject()
		if err != nil {
			return
		}
		for it := obj.Begin(); !it.Equal(obj.End()); it.Next() {
			m := it.Member()
			assign(mobj.CreateKey(m.Key), m.Value)
		}
	case src.IsArray():
		dst.SetAsArray()
		arr, err := src.Array()
		if err != nil {
			return
		}
		marr, err := dst.MutableArray()
		if err != nil {
			return
		}
		for it := arr.Begin(); !it.Equal(arr.End()); it.Next() {
			assign(marr.Append(), it.Value())
		}
	case src.IsString():
		if s, ok := src.GetString(); ok {
			dst.SetString(s)
		}
	case src.IsBool():
		if b, ok := src.GetBool(); ok {
			dst.SetBool(b)
		}
	case src.IsDouble():
		if d, ok := src.GetDouble(); ok {
			dst.SetDouble(d)
		}
	case src.IsInteger():
		if i, ok := src.GetInteger(); ok {
			dst.SetInteger(i)
		}
	}
}

// CreateKey ensures dst, when it is a mutable object, has a member under key
// and returns an adapter over that member's slot (the dynamic type of the
// result is mutable). On a read-only or non-object destination it is a no-op
// returning an absent adapter.
func CreateKey(dst Adapter, key string) Adapter {
	w, ok := dst.(MutableAdapter)
	if !ok {
		return Absent()
	}
	if w.IsNull() {
		// a null slot vivifies into an object; other shapes are left alone
		w.SetAsObject()
	}
	obj, err := w.MutableObject()
	if err != nil {
		return Absent()
	}
	return obj.CreateKey(key)
}

// Resize grows dst, when it is a mutable array, by appending null elements
// until its length exceeds index. On a read-only or non-array destination it
// is a no-op.
func Resize(dst Adapter, index int) {
	w, ok := dst.(MutableAdapter)
	if !ok {
		return
	}
	if w.IsNull() {
		w.SetAsArray()
	}
	arr, err := w.MutableArray()
	if err != nil {
		return
	}
	for arr.Len() <= index {
		arr.Append()
	}
}
