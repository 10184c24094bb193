package docport_test

import (
	"testing"

	docport "github.com/reoring/docport"
)

func TestKind_TextRoundTrip(t *testing.T) {
	kinds := []docport.Kind{
		docport.KindNull,
		docport.KindBool,
		docport.KindInteger,
		docport.KindDouble,
		docport.KindString,
		docport.KindArray,
		docport.KindObject,
	}
	for _, k := range kinds {
		b, err := k.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%v): %v", k, err)
		}
		if string(b) != k.String() {
			t.Fatalf("MarshalText(%v) = %q, want %q", k, b, k.String())
		}
		var back docport.Kind
		if err := back.UnmarshalText(b); err != nil {
			t.Fatalf("UnmarshalText(%q): %v", b, err)
		}
		if back != k {
			t.Fatalf("round trip of %v gave %v", k, back)
		}
	}

	var k docport.Kind
	if err := k.UnmarshalText([]byte("complex")); err == nil {
		t.Fatalf("UnmarshalText must reject unknown kind names")
	}
}

func TestKind_IsScalar(t *testing.T) {
	if docport.KindArray.IsScalar() || docport.KindObject.IsScalar() {
		t.Fatalf("container kinds must not be scalar")
	}
	for _, k := range []docport.Kind{
		docport.KindNull, docport.KindBool, docport.KindInteger,
		docport.KindDouble, docport.KindString,
	} {
		if !k.IsScalar() {
			t.Fatalf("%v must be scalar", k)
		}
	}
}
