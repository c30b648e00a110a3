package diff

import (
	"github.com/pfrederiksen/jsondiffpatch/internal/arena"
	"github.com/pfrederiksen/jsondiffpatch/value"
	"github.com/pfrederiksen/jsondiffpatch/wire"
)

// ArrayDiff compares two array values. Common prefix and suffix runs are
// trimmed off first so only the differing middle is ever fed to the Myers
// edit-script search; the remaining inserts and deletes are emitted as
// object-diff-shaped entries keyed by post-patch index (additions and
// changes) or underscore-prefixed pre-patch index (deletions), with a
// trailing "_t":"a" marker. A same-slot object add+delete pair is fused into
// a nested sub-diff by fuseObjectPairs before the marker is attached. An
// array diff with nothing left to report (after fusion may have dropped
// slots entirely) collapses to no-change.
func ArrayDiff(left, right *value.Value, strict bool, a *arena.Arena, depth *arena.DepthGuard) (*value.Value, bool, error) {
	l := left.Arr
	r := right.Arr

	minLen := len(l)
	if len(r) < minLen {
		minLen = len(r)
	}

	p := 0
	for p < minLen && value.Equal(l[p], r[p], strict) {
		p++
	}
	s := 0
	for s < minLen-p && value.Equal(l[len(l)-1-s], r[len(r)-1-s], strict) {
		s++
	}

	lm := l[p : len(l)-s]
	rm := r[p : len(r)-s]
	n, m := len(lm), len(rm)

	if n == 0 && m == 0 {
		return nil, false, nil
	}

	result := value.NewObjectMap()

	switch {
	case n == 0:
		for i := 0; i < m; i++ {
			node, err := wire.Addition(rm[i], a)
			if err != nil {
				return nil, false, err
			}
			result.Set(wire.IndexKey(p+i), node)
		}

	case m == 0:
		for i := 0; i < n; i++ {
			node, err := wire.Deletion(lm[i], a)
			if err != nil {
				return nil, false, err
			}
			result.Set(wire.DeletionKey(p+i), node)
		}

	default:
		segs := myersSES(lm, rm, strict)
		count := p
		deletedCount := p
		ia, ib := 0, 0
		for _, seg := range segs {
			switch seg.typ {
			case segEqual:
				ia += seg.length
				ib += seg.length
				count += seg.length
				deletedCount += seg.length

			case segDelete:
				for i := 0; i < seg.length; i++ {
					node, err := wire.Deletion(lm[ia], a)
					if err != nil {
						return nil, false, err
					}
					result.Set(wire.DeletionKey(deletedCount), node)
					ia++
					deletedCount++
				}

			case segInsert:
				for i := 0; i < seg.length; i++ {
					node, err := wire.Addition(rm[ib], a)
					if err != nil {
						return nil, false, err
					}
					result.Set(wire.IndexKey(count), node)
					ib++
					count++
				}
			}
		}
	}

	fused, err := fuseObjectPairs(result, strict, a, depth)
	if err != nil {
		return nil, false, err
	}
	result = fused

	if result.Len() == 0 {
		return nil, false, nil
	}

	marker, err := wire.NewArrayDiffMarker(a)
	if err != nil {
		return nil, false, err
	}
	result.Set(wire.ArrayTypeKey, marker)

	out, err := value.NewObjectValue(result, a)
	if err != nil {
		return nil, false, err
	}
	return out, true, nil
}
