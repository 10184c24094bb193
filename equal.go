package docport

// Equal reports structural equality of the values behind a and b: recursive
// comparison of type and content, irrespective of backend. Objects compare
// by size and per-key recursion; arrays elementwise in order.
//
// Numbers stored as integers on both sides compare exactly. When strict is
// true and both backends keep strict types, integer and double storage are
// distinct (5 != 5.0); otherwise numeric storage differences are coerced
// through double. Booleans never coerce to numbers. Null equals null, and an
// absent reference equals null.
func Equal(a, b Adapter, strict bool) bool {
	if a == nil {
		a = Absent()
	}
	if b == nil {
		b = Absent()
	}
	switch {
	case a.IsObject():
		if !b.IsObject() {
			return false
		}
		ao, err := a.Object()
		if err != nil {
			return false
		}
		bo, err := b.Object()
		if err != nil {
			return false
		}
		if ao.Len() != bo.Len() {
			return false
		}
		for it := ao.Begin(); !it.Equal(ao.End()); it.Next() {
			m := it.Member()
			bv, ok := bo.Find(m.Key)
			if !ok || !Equal(m.Value, bv, strict) {
				return false
			}
		}
		return true
	case a.IsArray():
		if !b.IsArray() {
			return false
		}
		aa, err := a.Array()
		if err != nil {
			return false
		}
		ba, err := b.Array()
		if err != nil {
			return false
		}
		if aa.Len() != ba.Len() {
			return false
		}
		bi := ba.Begin()
		for ai := aa.Begin(); !ai.Equal(aa.End()); ai.Next() {
			if !Equal(ai.Value(), bi.Value(), strict) {
				return false
			}
			bi.Next()
		}
		return true
	case a.IsString():
		sb, ok := b.GetString()
		if !ok {
			return false
		}
		sa, _ := a.GetString()
		return sa == sb
	case a.IsBool():
		bb, ok := b.GetBool()
		if !ok {
			return false
		}
		ba, _ := a.GetBool()
		return ba == bb
	case a.IsNumber():
		if !b.IsNumber() {
			return false
		}
		if a.IsInteger() && b.IsInteger() {
			ia, _ := a.GetInteger()
			ib, _ := b.GetInteger()
			return ia == ib
		}
		exact := strict && a.HasStrictTypes() && b.HasStrictTypes()
		if exact && a.IsDouble() != b.IsDouble() {
			return false
		}
		da, ok := numberOf(a)
		if !ok {
			return false
		}
		db, ok := numberOf(b)
		if !ok {
			return false
		}
		return da == db
	default:
		return b.IsNull()
	}
}

// numberOf reads a numeric value through double, whichever storage holds it.
func numberOf(a Adapter) (float64, bool) {
	if d, ok := a.GetDouble(); ok {
		return d, true
	}
	if i, ok := a.GetInteger(); ok {
		return float64(i), true
	}
	return 0, false
}
