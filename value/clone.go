package value

import (
	"github.com/pfrederiksen/jsondiffpatch/errs"
	"github.com/pfrederiksen/jsondiffpatch/internal/arena"
)

// Clone deep-copies v, allocating every node (including nested containers)
// from a, so that the result's lifetime is fully independent of v's. A nil v
// clones to nil.
func Clone(v *Value, a *arena.Arena) (*Value, error) {
	if v == nil {
		return nil, nil
	}

	switch v.Kind {
	case KindNull:
		return NewNull(a)
	case KindTrue:
		return NewBool(true, a)
	case KindFalse:
		return NewBool(false, a)
	case KindNumber:
		return NewNumber(v.Num, a)
	case KindString:
		return NewString(v.Str, a)

	case KindArray:
		elems := make([]*Value, len(v.Arr))
		for i, e := range v.Arr {
			c, err := Clone(e, a)
			if err != nil {
				return nil, err
			}
			elems[i] = c
		}
		return NewArray(elems, a)

	case KindObject:
		obj := NewObjectMap()
		for _, k := range v.Obj.Keys() {
			child, _ := v.Obj.Get(k)
			c, err := Clone(child, a)
			if err != nil {
				return nil, err
			}
			obj.Set(k, c)
		}
		return NewObjectValue(obj, a)

	default:
		return nil, errs.ErrInvalidDiffShape
	}
}
