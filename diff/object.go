package diff

import (
	"github.com/pfrederiksen/jsondiffpatch/internal/arena"
	"github.com/pfrederiksen/jsondiffpatch/value"
	"github.com/pfrederiksen/jsondiffpatch/wire"
)

// ObjectDiff compares two object values key by key: a key present only on
// the left becomes a deletion entry, a key present only on the right becomes
// an addition entry, and a key present on both recurses. Keys are emitted in
// left-object order first, followed by right-only additions in right-object
// order. An object diff with no entries collapses to no-change.
func ObjectDiff(left, right *value.Value, strict bool, a *arena.Arena, depth *arena.DepthGuard) (*value.Value, bool, error) {
	result := value.NewObjectMap()
	changed := false

	for _, k := range left.Obj.Keys() {
		lv, _ := left.Obj.Get(k)
		rv, ok := right.Obj.Get(k)
		if !ok {
			node, err := wire.Deletion(lv, a)
			if err != nil {
				return nil, false, err
			}
			result.Set(k, node)
			changed = true
			continue
		}
		childNode, childChanged, err := diffValue(lv, rv, strict, a, depth)
		if err != nil {
			return nil, false, err
		}
		if childChanged {
			result.Set(k, childNode)
			changed = true
		}
	}

	for _, k := range right.Obj.Keys() {
		if _, ok := left.Obj.Get(k); ok {
			continue
		}
		rv, _ := right.Obj.Get(k)
		node, err := wire.Addition(rv, a)
		if err != nil {
			return nil, false, err
		}
		result.Set(k, node)
		changed = true
	}

	if !changed {
		return nil, false, nil
	}
	out, err := value.NewObjectValue(result, a)
	if err != nil {
		return nil, false, err
	}
	return out, true, nil
}
