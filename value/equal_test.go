package value

import (
	"math"
	"testing"
)

func TestEqual_Scalars(t *testing.T) {
	tests := []struct {
		name   string
		a, b   *Value
		strict bool
		want   bool
	}{
		{"null == null", MustNull(), MustNull(), true, true},
		{"true == true", MustBool(true), MustBool(true), true, true},
		{"true != false", MustBool(true), MustBool(false), true, false},
		{"number strict equal", MustNumber(42), MustNumber(42), true, true},
		{"number strict unequal", MustNumber(42), MustNumber(42.0000001), true, false},
		{"number tolerant equal", MustNumber(1.0), MustNumber(1.0 + 1e-12), false, true},
		{"number tolerant unequal", MustNumber(1.0), MustNumber(1.1), false, false},
		{"string equal", MustString("hello"), MustString("hello"), true, true},
		{"string unequal length", MustString("hi"), MustString("hello"), true, false},
		{"different kinds", MustNull(), MustBool(false), true, false},
		{"absent vs present", nil, MustNull(), true, false},
		{"absent vs absent", nil, nil, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Equal(tt.a, tt.b, tt.strict); got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEqual_StrictNaNIsUnnormalized(t *testing.T) {
	// Two separately constructed NaN values: the same *Value passed twice
	// would hit Equal's pointer-identity short-circuit instead.
	nanA := MustNumber(math.NaN())
	nanB := MustNumber(math.NaN())
	if Equal(nanA, nanB, true) {
		t.Error("Equal(NaN, NaN, strict=true) = true, want false (unnormalized NaN)")
	}
}

func TestEqual_Containers(t *testing.T) {
	arrA := MustArray(MustNumber(1), MustNumber(2))
	arrB := MustArray(MustNumber(1), MustNumber(2))
	arrC := MustArray(MustNumber(1), MustNumber(3))

	if !Equal(arrA, arrB, true) {
		t.Error("equal arrays compared unequal")
	}
	if Equal(arrA, arrC, true) {
		t.Error("unequal arrays compared equal")
	}
	if Equal(arrA, MustArray(MustNumber(1)), true) {
		t.Error("arrays of different length compared equal")
	}

	objA := MustObject(P("x", MustNumber(1)), P("y", MustNumber(2)))
	objB := MustObject(P("y", MustNumber(2)), P("x", MustNumber(1))) // different order
	objC := MustObject(P("x", MustNumber(1)))

	if !Equal(objA, objB, true) {
		t.Error("objects with same keys in different order compared unequal")
	}
	if Equal(objA, objC, true) {
		t.Error("objects with different key sets compared equal")
	}
}

func TestClone_IndependentOfOriginal(t *testing.T) {
	original := MustObject(P("a", MustArray(MustNumber(1), MustString("x"))))
	cloned, err := Clone(original, nil)
	if err != nil {
		t.Fatalf("Clone() error = %v", err)
	}
	if !Equal(original, cloned, true) {
		t.Fatal("clone not equal to original")
	}

	// Mutate the clone's nested array and confirm the original is untouched.
	arr, _ := cloned.Obj.Get("a")
	arr.Arr[0] = MustNumber(999)

	origArr, _ := original.Obj.Get("a")
	if origArr.Arr[0].Num != 1 {
		t.Error("mutating clone affected original: clone is not a deep copy")
	}
}
