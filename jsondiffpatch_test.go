package jsondiffpatch

import (
	"errors"
	"strings"
	"testing"

	"github.com/pfrederiksen/jsondiffpatch/errs"
	"github.com/pfrederiksen/jsondiffpatch/internal/arena"
	"github.com/pfrederiksen/jsondiffpatch/value"
)

func TestDiffText_RoundTrip(t *testing.T) {
	left := []byte(`{"a":1,"b":[1,2,3]}`)
	right := []byte(`{"a":2,"b":[1,2,4]}`)

	d, changed, err := DiffText(left, right, Options{})
	if err != nil {
		t.Fatalf("DiffText() error = %v", err)
	}
	if !changed {
		t.Fatal("DiffText() reported no change")
	}

	original, err := value.Parse(left, nil)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	patched, err := Patch(original, d, Options{})
	if err != nil {
		t.Fatalf("Patch() error = %v", err)
	}
	wantRight, err := value.Parse(right, nil)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if !Equal(patched, wantRight, true) {
		t.Error("DiffText()+Patch() did not reconstruct the right-hand document")
	}
}

func TestDiffText_NoChange(t *testing.T) {
	doc := []byte(`{"a":1}`)
	d, changed, err := DiffText(doc, doc, Options{})
	if err != nil {
		t.Fatalf("DiffText() error = %v", err)
	}
	if changed || d != nil {
		t.Errorf("DiffText() = (%v, %v), want (nil, false)", d, changed)
	}
}

func TestDiffText_RejectsOversizedInput(t *testing.T) {
	big := []byte(strings.Repeat("a", 100))
	_, _, err := DiffText(big, []byte(`1`), Options{MaxInputBytes: 10})
	if err == nil {
		t.Fatal("DiffText() with oversized input succeeded, want error")
	}
	if !errors.Is(err, errs.ErrInputTooLarge) {
		t.Errorf("error = %v, want ErrInputTooLarge", err)
	}
}

func TestDiffText_RejectsMalformedJSON(t *testing.T) {
	_, _, err := DiffText([]byte(`{not json}`), []byte(`{}`), Options{})
	if err == nil {
		t.Fatal("DiffText() with malformed JSON succeeded, want error")
	}
}

func TestDiff_ZeroValueOptionsIsStrict(t *testing.T) {
	left := value.MustObject(value.P("n", value.MustNumber(1.0)))
	right := value.MustObject(value.P("n", value.MustNumber(1.0+1e-12)))

	d, changed, err := Diff(left, right, Options{})
	if err != nil {
		t.Fatalf("Diff() error = %v", err)
	}
	if !changed || d == nil {
		t.Fatal("Diff() with zero-value Options treated near-equal floats as equal, want strict (bitwise) comparison by default")
	}
}

func TestEqual_StrictVsTolerant(t *testing.T) {
	a := value.MustNumber(1.0)
	b := value.MustNumber(1.0 + 1e-12)
	if Equal(a, b, true) {
		t.Error("Equal(strict) treated near-equal floats as equal")
	}
	if !Equal(a, b, false) {
		t.Error("Equal(tolerant) treated near-equal floats as unequal")
	}
}

func TestDiff_DepthBoundary(t *testing.T) {
	build := func(depth int) *value.Value {
		v := value.MustNumber(1)
		for i := 0; i < depth; i++ {
			v = value.MustObject(value.P("n", v))
		}
		return v
	}
	buildOther := func(depth int) *value.Value {
		v := value.MustNumber(2)
		for i := 0; i < depth; i++ {
			v = value.MustObject(value.P("n", v))
		}
		return v
	}

	const bound = 5
	left := build(bound - 1)
	right := buildOther(bound - 1)
	if _, _, err := Diff(left, right, Options{MaxDepth: bound}); err != nil {
		t.Errorf("Diff() at depth %d with bound %d failed: %v", bound-1, bound, err)
	}

	left2 := build(bound + 1)
	right2 := buildOther(bound + 1)
	if _, _, err := Diff(left2, right2, Options{MaxDepth: bound}); err == nil {
		t.Errorf("Diff() at depth %d with bound %d succeeded, want RecursionExceeded", bound+1, bound)
	}
}

func TestOptions_ArenaBacked(t *testing.T) {
	a := arena.New(256, 4096)
	left := value.MustObject(value.P("x", value.MustNumber(1)))
	right := value.MustObject(value.P("x", value.MustNumber(2)))

	d, changed, err := Diff(left, right, Options{Arena: a})
	if err != nil {
		t.Fatalf("Diff() error = %v", err)
	}
	if !changed || d == nil {
		t.Fatal("Diff() reported no change")
	}
	if a.Used() == 0 {
		t.Error("diff built against an arena charged zero bytes")
	}
}
