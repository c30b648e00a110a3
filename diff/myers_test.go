package diff

import (
	"testing"

	"github.com/pfrederiksen/jsondiffpatch/value"
)

// reconstruct replays a segment script against lm and checks it reproduces
// rm exactly, which is the property myersSES must guarantee regardless of
// which of several minimal scripts it happens to pick.
func reconstruct(t *testing.T, lm, rm []*value.Value, segs []segment) {
	t.Helper()
	var got []*value.Value
	ia, ib := 0, 0
	for _, seg := range segs {
		switch seg.typ {
		case segEqual:
			for i := 0; i < seg.length; i++ {
				got = append(got, lm[ia])
				ia++
				ib++
			}
		case segDelete:
			for i := 0; i < seg.length; i++ {
				ia++
			}
		case segInsert:
			for i := 0; i < seg.length; i++ {
				got = append(got, rm[ib])
				ib++
			}
		}
	}
	if ia != len(lm) || ib != len(rm) {
		t.Fatalf("segments consumed (%d, %d), want (%d, %d)", ia, ib, len(lm), len(rm))
	}
	if len(got) != len(rm) {
		t.Fatalf("reconstructed length %d, want %d", len(got), len(rm))
	}
	for i := range rm {
		if !value.Equal(got[i], rm[i], true) {
			t.Fatalf("reconstructed[%d] != rm[%d]", i, i)
		}
	}
}

func numbers(ns ...float64) []*value.Value {
	out := make([]*value.Value, len(ns))
	for i, n := range ns {
		out[i] = value.MustNumber(n)
	}
	return out
}

func TestMyersSES_Reconstructs(t *testing.T) {
	tests := []struct {
		name   string
		lm, rm []float64
	}{
		{"all equal", []float64{1, 2, 3}, []float64{1, 2, 3}},
		{"single replace", []float64{1, 2, 3}, []float64{1, 2, 4}},
		{"all different", []float64{1, 2, 3}, []float64{4, 5, 6}},
		{"insert in middle", []float64{1, 2, 3}, []float64{1, 9, 2, 3}},
		{"delete in middle", []float64{1, 9, 2, 3}, []float64{1, 2, 3}},
		{"classic example", []float64{1, 2, 3, 4}, []float64{1, 3, 4, 5}},
		{"disjoint", []float64{1, 2}, []float64{3, 4, 5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lm, rm := numbers(tt.lm...), numbers(tt.rm...)
			segs := myersSES(lm, rm, true)
			reconstruct(t, lm, rm, segs)
		})
	}
}

func TestMyersSES_InsertDeleteAreSingleElement(t *testing.T) {
	lm := numbers(1, 2, 3)
	rm := numbers(4, 5, 6)
	segs := myersSES(lm, rm, true)
	for _, seg := range segs {
		if seg.typ != segEqual && seg.length != 1 {
			t.Errorf("non-equal segment has length %d, want 1", seg.length)
		}
	}
}
