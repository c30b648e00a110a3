package patch

import (
	"github.com/pfrederiksen/jsondiffpatch/internal/arena"
	"github.com/pfrederiksen/jsondiffpatch/value"
	"github.com/pfrederiksen/jsondiffpatch/wire"
)

// ObjectPatch applies an object-shaped diff to original: an addition or
// change entry sets/replaces a key, a deletion entry removes a key, and any
// other entry is a nested sub-diff recursed against the key's current value.
// Keys of original not mentioned in diffNode pass through unchanged.
func ObjectPatch(original, diffNode *value.Value, a *arena.Arena, depth *arena.DepthGuard) (*value.Value, error) {
	out := value.NewObjectMap()
	if original.Obj != nil {
		for _, k := range original.Obj.Keys() {
			v, _ := original.Obj.Get(k)
			c, err := value.Clone(v, a)
			if err != nil {
				return nil, err
			}
			out.Set(k, c)
		}
	}

	for _, k := range diffNode.Obj.Keys() {
		entry, _ := diffNode.Obj.Get(k)

		switch wire.Classify(entry) {
		case wire.ShapeAddition, wire.ShapeChange:
			c, err := value.Clone(wire.New(entry), a)
			if err != nil {
				return nil, err
			}
			out.Set(k, c)

		case wire.ShapeDeletion:
			out.Delete(k)

		case wire.ShapeMove:
			// Malformed at an object key; tolerant-skip.
			continue

		default:
			if entry == nil || entry.Kind != value.KindObject {
				continue // malformed entry, tolerant-skip
			}
			curr, _ := out.Get(k)
			patched, err := Patch(curr, entry, a, depth)
			if err != nil {
				return nil, err
			}
			if patched == nil {
				out.Delete(k)
			} else {
				out.Set(k, patched)
			}
		}
	}

	return value.NewObjectValue(out, a)
}
