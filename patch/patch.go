// Package patch applies a jsondiffpatch diff tree (as produced by the diff
// package, or any wire-compatible tree) to a value.Value, reconstructing the
// "new" side of the diff. Malformed or unrecognised diff entries are
// tolerated and skipped rather than treated as hard errors, matching
// jsondiffpatch's lenient patch behaviour.
package patch

import (
	"github.com/pfrederiksen/jsondiffpatch/internal/arena"
	"github.com/pfrederiksen/jsondiffpatch/value"
	"github.com/pfrederiksen/jsondiffpatch/wire"
)

// Patch applies diffNode to original and returns the patched value. A nil
// diffNode means "no change": original is cloned and returned unchanged.
func Patch(original, diffNode *value.Value, a *arena.Arena, depth *arena.DepthGuard) (*value.Value, error) {
	if depth != nil {
		if err := depth.EnterPatch(); err != nil {
			return nil, err
		}
		defer depth.ExitPatch()
	}

	if diffNode == nil {
		return value.Clone(original, a)
	}

	if wire.Classify(diffNode) == wire.ShapeChange {
		return value.Clone(wire.New(diffNode), a)
	}

	if diffNode.Kind != value.KindObject {
		// Not a change triple and not an object: addition/deletion/move
		// shapes only apply nested, under an object or array-diff key; at
		// the top (or any bare value) position they don't apply here.
		return value.Clone(original, a)
	}

	if wire.IsArrayDiffMarker(diffNode) {
		if original != nil && original.Kind == value.KindArray {
			return ArrayPatch(original, diffNode, a, depth)
		}
		return value.Clone(original, a)
	}

	if original == nil || original.Kind != value.KindObject {
		empty, err := value.NewObjectValue(nil, a)
		if err != nil {
			return nil, err
		}
		original = empty
	}
	return ObjectPatch(original, diffNode, a, depth)
}
