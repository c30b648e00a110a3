package diff

import (
	"testing"

	"github.com/pfrederiksen/jsondiffpatch/value"
)

func mustJSON(t *testing.T, v *value.Value) string {
	t.Helper()
	out, err := v.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON() error = %v", err)
	}
	return string(out)
}

func TestObjectDiff_NoChange(t *testing.T) {
	a := value.MustObject(value.P("x", value.MustNumber(1)))
	b := value.MustObject(value.P("x", value.MustNumber(1)))
	node, changed, err := Diff(a, b, true, nil, nil)
	if err != nil {
		t.Fatalf("Diff() error = %v", err)
	}
	if changed || node != nil {
		t.Errorf("Diff() = (%v, %v), want (nil, false)", node, changed)
	}
}

func TestObjectDiff_AddChangeDelete(t *testing.T) {
	left := value.MustObject(
		value.P("kept", value.MustNumber(1)),
		value.P("changed", value.MustNumber(2)),
		value.P("removed", value.MustString("gone")),
	)
	right := value.MustObject(
		value.P("kept", value.MustNumber(1)),
		value.P("changed", value.MustNumber(3)),
		value.P("added", value.MustBool(true)),
	)

	node, changed, err := Diff(left, right, true, nil, nil)
	if err != nil {
		t.Fatalf("Diff() error = %v", err)
	}
	if !changed {
		t.Fatal("Diff() reported no change")
	}
	want := `{"changed":[2,3],"removed":["gone",0,0],"added":[true]}`
	if got := mustJSON(t, node); got != want {
		t.Errorf("Diff() = %s, want %s", got, want)
	}
}

func TestObjectDiff_NestedRecursion(t *testing.T) {
	left := value.MustObject(
		value.P("inner", value.MustObject(value.P("a", value.MustNumber(1)))),
	)
	right := value.MustObject(
		value.P("inner", value.MustObject(value.P("a", value.MustNumber(2)))),
	)

	node, changed, err := Diff(left, right, true, nil, nil)
	if err != nil {
		t.Fatalf("Diff() error = %v", err)
	}
	if !changed {
		t.Fatal("Diff() reported no change")
	}
	want := `{"inner":{"a":[1,2]}}`
	if got := mustJSON(t, node); got != want {
		t.Errorf("Diff() = %s, want %s", got, want)
	}
}

func TestObjectDiff_DeeplyNestedIdenticalIsNoChange(t *testing.T) {
	build := func(n float64) *value.Value {
		return value.MustObject(
			value.P("a", value.MustObject(
				value.P("b", value.MustObject(
					value.P("c", value.MustNumber(n)),
				)),
			)),
		)
	}
	node, changed, err := Diff(build(1), build(1), true, nil, nil)
	if err != nil {
		t.Fatalf("Diff() error = %v", err)
	}
	if changed || node != nil {
		t.Errorf("Diff() = (%v, %v), want (nil, false)", node, changed)
	}
}
