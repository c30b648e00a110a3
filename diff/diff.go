// Package diff computes a jsondiffpatch-compatible structural diff between
// two value.Value trees: object diffs recurse key by key, array diffs run a
// Myers shortest-edit-script over the trimmed middle of the two arrays, and
// same-slot object replacements are fused into nested sub-diffs so a typed
// field change inside an array element never surfaces as a crude
// delete-then-add pair.
package diff

import (
	"github.com/pfrederiksen/jsondiffpatch/internal/arena"
	"github.com/pfrederiksen/jsondiffpatch/value"
	"github.com/pfrederiksen/jsondiffpatch/wire"
)

// Diff computes the structural diff between left and right under the given
// equality mode. It returns (nil, false, nil) for "no change": an object or
// array diff that ends up empty always collapses to no-change rather than
// being emitted as an empty container.
func Diff(left, right *value.Value, strict bool, a *arena.Arena, depth *arena.DepthGuard) (*value.Value, bool, error) {
	return diffValue(left, right, strict, a, depth)
}

// diffValue is the single recursive entry point used by every nested diff
// step, so recursion depth is counted consistently whether the nesting comes
// from an object diff's child values, an array diff's fused object pair, or
// the root call itself.
func diffValue(left, right *value.Value, strict bool, a *arena.Arena, depth *arena.DepthGuard) (*value.Value, bool, error) {
	if depth != nil {
		if err := depth.EnterDiff(); err != nil {
			return nil, false, err
		}
		defer depth.ExitDiff()
	}

	if value.Equal(left, right, strict) {
		return nil, false, nil
	}

	if left != nil && right != nil && left.Kind == value.KindObject && right.Kind == value.KindObject {
		return ObjectDiff(left, right, strict, a, depth)
	}
	if left != nil && right != nil && left.Kind == value.KindArray && right.Kind == value.KindArray {
		return ArrayDiff(left, right, strict, a, depth)
	}

	node, err := wire.Change(left, right, a)
	if err != nil {
		return nil, false, err
	}
	return node, true, nil
}
