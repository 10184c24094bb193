package docport

import "fmt"

// Kind identifies the shape of a document node.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindInteger
	KindDouble
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		KindNull:    "null",
		KindBool:    "bool",
		KindInteger: "integer",
		KindDouble:  "double",
		KindString:  "string",
		KindArray:   "array",
		KindObject:  "object",
	}[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	kk, ok := map[string]Kind{
		"null":    KindNull,
		"bool":    KindBool,
		"integer": KindInteger,
		"double":  KindDouble,
		"string":  KindString,
		"array":   KindArray,
		"object":  KindObject,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized kind %q", d)
	}
	*k = kk
	return nil
}

// IsScalar reports whether k is a leaf kind (anything but array/object).
func (k Kind) IsScalar() bool {
	switch k {
	case KindArray, KindObject:
		return false
	default:
		return true
	}
}

// KindOf derives the Kind of the node behind a from its type predicates.
// The predicate order matches the one Assign dispatches on.
func KindOf(a Adapter) Kind {
	switch {
	case a == nil:
		return KindNull
	case a.IsObject():
		return KindObject
	case a.IsArray():
		return KindArray
	case a.IsString():
		return KindString
	case a.IsBool():
		return KindBool
	case a.IsDouble():
		return KindDouble
	case a.IsInteger():
		return KindInteger
	default:
		return KindNull
	}
}
