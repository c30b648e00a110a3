package patch

import (
	"sort"

	"github.com/pfrederiksen/jsondiffpatch/internal/arena"
	"github.com/pfrederiksen/jsondiffpatch/value"
	"github.com/pfrederiksen/jsondiffpatch/wire"
)

type arrayRemoval struct {
	index    int
	isMove   bool
	moveDest int
}

type arrayInsertion struct {
	index int
	value *value.Value
}

type arrayModification struct {
	index int
	diff  *value.Value
}

// ArrayPatch applies an array-shaped ("_t":"a") diff to original. It
// proceeds in three passes so index references in the diff (which are
// expressed against a mix of pre- and post-patch positions) resolve
// correctly regardless of processing order:
//
//  1. In-place modifications (nested sub-diffs keyed by a plain numeric
//     index) are applied first, against the original, unshifted indices.
//  2. Deletions and move-sources (underscore-prefixed keys) are removed in
//     descending index order, so removing a higher index never invalidates
//     a lower index still to be processed.
//  3. Additions and move-destinations are spliced in ascending destination
//     order, which matches how the diff side accumulates post-patch indices.
//
// An out-of-range modification or deletion index is dropped; an
// out-of-range insertion index is clamped to an append at the end. Both are
// tolerant-skip behaviours rather than errors.
func ArrayPatch(original, diffNode *value.Value, a *arena.Arena, depth *arena.DepthGuard) (*value.Value, error) {
	work := make([]*value.Value, len(original.Arr))
	for i, e := range original.Arr {
		c, err := value.Clone(e, a)
		if err != nil {
			return nil, err
		}
		work[i] = c
	}

	var removals []arrayRemoval
	var insertions []arrayInsertion
	var modifications []arrayModification

	for _, k := range diffNode.Obj.Keys() {
		if k == wire.ArrayTypeKey {
			continue
		}
		idx, isDel, ok := wire.ParseArrayKey(k)
		if !ok {
			continue // malformed key, tolerant-skip
		}
		entry, _ := diffNode.Obj.Get(k)

		if isDel {
			switch wire.Classify(entry) {
			case wire.ShapeDeletion:
				removals = append(removals, arrayRemoval{index: idx})
			case wire.ShapeMove:
				removals = append(removals, arrayRemoval{index: idx, isMove: true, moveDest: wire.MoveDest(entry)})
			}
			continue
		}

		if wire.Classify(entry) == wire.ShapeAddition {
			insertions = append(insertions, arrayInsertion{index: idx, value: wire.New(entry)})
			continue
		}
		if entry != nil && entry.Kind == value.KindObject {
			modifications = append(modifications, arrayModification{index: idx, diff: entry})
		}
		// Anything else at a plain numeric key is malformed; tolerant-skip.
	}

	for _, m := range modifications {
		if m.index < 0 || m.index >= len(work) {
			continue
		}
		patched, err := Patch(work[m.index], m.diff, a, depth)
		if err != nil {
			return nil, err
		}
		work[m.index] = patched
	}

	sort.Slice(removals, func(i, j int) bool { return removals[i].index > removals[j].index })

	var pending []arrayInsertion
	for _, ins := range insertions {
		c, err := value.Clone(ins.value, a)
		if err != nil {
			return nil, err
		}
		pending = append(pending, arrayInsertion{index: ins.index, value: c})
	}

	for _, rm := range removals {
		if rm.index < 0 || rm.index >= len(work) {
			continue
		}
		moved := work[rm.index]
		work = append(work[:rm.index], work[rm.index+1:]...)
		if rm.isMove {
			pending = append(pending, arrayInsertion{index: rm.moveDest, value: moved})
		}
	}

	sort.Slice(pending, func(i, j int) bool { return pending[i].index < pending[j].index })

	for _, ins := range pending {
		idx := ins.index
		if idx < 0 {
			idx = 0
		}
		if idx > len(work) {
			idx = len(work)
		}
		work = append(work, nil)
		copy(work[idx+1:], work[idx:])
		work[idx] = ins.value
	}

	return value.NewArray(work, a)
}
