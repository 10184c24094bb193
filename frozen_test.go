package docport_test

import (
	"testing"

	docport "github.com/reoring/docport"
	"github.com/reoring/docport/backend/gomap"
	"github.com/reoring/docport/backend/yamlnode"
)

const nestedDoc = `{"s":"txt","b":false,"i":7,"d":2.5,"l":[1,[2,3],{"k":null}],"o":{"inner":{"deep":true}}}`

func TestFreeze_MaterializeRoundTrip(t *testing.T) {
	src := mustJSON(t, nestedDoc)
	snap := docport.Freeze(src)

	fresh := []docport.MutableAdapter{gomap.New(), yamlnode.New()}
	for _, dst := range fresh {
		snap.MaterializeInto(dst)
		if !snap.Equal(dst, true) {
			t.Fatalf("materialized value not equal to snapshot (backend %T)", dst)
		}
		if !docport.Equal(src, dst, true) {
			t.Fatalf("materialized value not equal to original (backend %T)", dst)
		}
	}
}

func TestFreeze_OutlivesSourceDocument(t *testing.T) {
	src := mustJSON(t, `{"a":[1,2]}`)
	snap := docport.Freeze(src)

	// destroy the source's content
	src.SetAsArray()

	dst := gomap.New()
	snap.MaterializeInto(dst)
	if !docport.Equal(dst, mustJSON(t, `{"a":[1,2]}`), true) {
		t.Fatalf("snapshot did not survive source mutation")
	}
}

func TestFrozen_Clone(t *testing.T) {
	snap := docport.Freeze(mustJSON(t, nestedDoc))
	clone := snap.Clone()
	if clone == snap {
		t.Fatalf("clone returned the same instance")
	}
	if !docport.Equal(snap.Adapter(), clone.Adapter(), true) {
		t.Fatalf("clone not structurally equal to original")
	}
}

func TestFrozen_AdapterIsReadOnly(t *testing.T) {
	snap := docport.Freeze(mustJSON(t, `{"a":1}`))
	a := snap.Adapter()
	if _, ok := a.(docport.MutableAdapter); ok {
		t.Fatalf("frozen adapter must not expose the mutable capability")
	}
	docport.Assign(a, mustJSON(t, `"smashed"`))
	if !snap.Equal(mustJSON(t, `{"a":1}`), true) {
		t.Fatalf("frozen value changed through Assign")
	}
}

func TestFreeze_AbsentIsNull(t *testing.T) {
	snap := docport.Freeze(docport.Absent())
	if snap.Kind() != docport.KindNull {
		t.Fatalf("Kind = %v, want null", snap.Kind())
	}
	if !snap.Equal(gomap.New(), true) {
		t.Fatalf("null snapshot should equal a null document")
	}
}

func TestFrozen_EqualAgainstForeignBackend(t *testing.T) {
	snap := docport.Freeze(mustYAML(t, "a: 1\nb: [x, y]\n"))
	other := mustJSON(t, `{"b":["x","y"],"a":1}`)
	if !snap.Equal(other, true) {
		t.Fatalf("expected snapshot equal across backends")
	}
	if snap.Equal(mustJSON(t, `{"b":["x","z"],"a":1}`), true) {
		t.Fatalf("expected inequality on differing leaf")
	}
}
