package wire

import (
	"testing"

	"github.com/pfrederiksen/jsondiffpatch/value"
)

func TestChange_Shape(t *testing.T) {
	node, err := Change(value.MustNumber(1), value.MustNumber(2), nil)
	if err != nil {
		t.Fatalf("Change() error = %v", err)
	}
	if got := Classify(node); got != ShapeChange {
		t.Errorf("Classify() = %v, want ShapeChange", got)
	}
	if got := Old(node).Num; got != 1 {
		t.Errorf("Old() = %v, want 1", got)
	}
	if got := New(node).Num; got != 2 {
		t.Errorf("New() = %v, want 2", got)
	}
}

func TestChange_ClonesInputs(t *testing.T) {
	original := value.MustArray(value.MustNumber(1))
	node, err := Change(original, value.MustNumber(2), nil)
	if err != nil {
		t.Fatalf("Change() error = %v", err)
	}
	// Mutate the source after building the diff; the diff must be unaffected.
	original.Arr[0] = value.MustNumber(999)
	if Old(node).Arr[0].Num != 1 {
		t.Error("Change() aliased its input instead of cloning it")
	}
}

func TestAddition_Shape(t *testing.T) {
	node, err := Addition(value.MustString("x"), nil)
	if err != nil {
		t.Fatalf("Addition() error = %v", err)
	}
	if got := Classify(node); got != ShapeAddition {
		t.Errorf("Classify() = %v, want ShapeAddition", got)
	}
	if got := New(node).Str; got != "x" {
		t.Errorf("New() = %q, want x", got)
	}
}

func TestDeletion_Shape(t *testing.T) {
	node, err := Deletion(value.MustBool(true), nil)
	if err != nil {
		t.Fatalf("Deletion() error = %v", err)
	}
	if got := Classify(node); got != ShapeDeletion {
		t.Errorf("Classify() = %v, want ShapeDeletion", got)
	}
	if got := Old(node).Kind; got != value.KindTrue {
		t.Errorf("Old().Kind = %v, want KindTrue", got)
	}
}

func TestMove_Shape(t *testing.T) {
	node, err := Move(2, nil)
	if err != nil {
		t.Fatalf("Move() error = %v", err)
	}
	if got := Classify(node); got != ShapeMove {
		t.Errorf("Classify() = %v, want ShapeMove", got)
	}
	if got := MoveDest(node); got != 2 {
		t.Errorf("MoveDest() = %d, want 2", got)
	}
}

func TestClassify_DistinguishesDeletionFromMove(t *testing.T) {
	del, _ := Deletion(value.MustNumber(5), nil)
	mv, _ := Move(0, nil)
	if Classify(del) != ShapeDeletion {
		t.Error("3-element zero-zero triple misclassified")
	}
	if Classify(mv) != ShapeMove {
		t.Error("3-element move triple misclassified")
	}
}

func TestClassify_InvalidShapes(t *testing.T) {
	tests := []*value.Value{
		value.MustArray(value.MustNumber(1), value.MustNumber(2), value.MustNumber(3), value.MustNumber(4)),
		value.MustNumber(1),
		value.MustObject(),
		nil,
	}
	for i, node := range tests {
		if got := Classify(node); got != ShapeInvalid {
			t.Errorf("case %d: Classify() = %v, want ShapeInvalid", i, got)
		}
	}
}

func TestParseArrayKey(t *testing.T) {
	tests := []struct {
		key        string
		wantIndex  int
		wantDelete bool
		wantOK     bool
	}{
		{"0", 0, false, true},
		{"12", 12, false, true},
		{"_0", 0, true, true},
		{"_12", 12, true, true},
		{"_t", 0, false, false},
		{"", 0, false, false},
		{"_", 0, false, false},
		{"abc", 0, false, false},
		{"-1", 0, false, false},
	}
	for _, tt := range tests {
		idx, del, ok := ParseArrayKey(tt.key)
		if ok != tt.wantOK {
			t.Errorf("ParseArrayKey(%q) ok = %v, want %v", tt.key, ok, tt.wantOK)
			continue
		}
		if !ok {
			continue
		}
		if idx != tt.wantIndex || del != tt.wantDelete {
			t.Errorf("ParseArrayKey(%q) = (%d, %v), want (%d, %v)", tt.key, idx, del, tt.wantIndex, tt.wantDelete)
		}
	}
}

func TestIndexKeyRoundTrip(t *testing.T) {
	idx, del, ok := ParseArrayKey(IndexKey(7))
	if !ok || del || idx != 7 {
		t.Errorf("IndexKey round trip = (%d, %v, %v), want (7, false, true)", idx, del, ok)
	}
	idx, del, ok = ParseArrayKey(DeletionKey(7))
	if !ok || !del || idx != 7 {
		t.Errorf("DeletionKey round trip = (%d, %v, %v), want (7, true, true)", idx, del, ok)
	}
}
