package value

import "math"

// toleranceEpsilon bounds the "tolerant" numeric comparison mode.
const toleranceEpsilon = 1e-9

// Equal implements the recursive, type-dispatched equality predicate used
// throughout diff and patch. Two identical pointers are always equal. When
// strict is true, numbers compare exactly with IEEE-754 == (NaN is
// deliberately left unnormalized: two distinct NaN values are unequal). When
// strict is false, numbers compare within toleranceEpsilon of each other.
//
// A nil *Value denotes "absent"; an absent value is never equal to a present
// one, even a present JSON null.
func Equal(a, b *Value, strict bool) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.Kind != b.Kind {
		return false
	}

	switch a.Kind {
	case KindNull, KindTrue, KindFalse:
		return true

	case KindNumber:
		if strict {
			return a.Num == b.Num
		}
		return math.Abs(a.Num-b.Num) < toleranceEpsilon

	case KindString:
		if len(a.Str) != len(b.Str) {
			return false
		}
		return a.Str == b.Str

	case KindArray:
		if len(a.Arr) != len(b.Arr) {
			return false
		}
		for i := range a.Arr {
			if !Equal(a.Arr[i], b.Arr[i], strict) {
				return false
			}
		}
		return true

	case KindObject:
		if a.Obj.Len() != b.Obj.Len() {
			return false
		}
		for _, k := range a.Obj.Keys() {
			av, _ := a.Obj.Get(k)
			bv, ok := b.Obj.Get(k)
			if !ok {
				return false
			}
			if !Equal(av, bv, strict) {
				return false
			}
		}
		return true

	default:
		return false
	}
}
