package diff

import (
	"strings"

	"github.com/pfrederiksen/jsondiffpatch/internal/arena"
	"github.com/pfrederiksen/jsondiffpatch/value"
	"github.com/pfrederiksen/jsondiffpatch/wire"
)

// fuseObjectPairs rewrites an array diff where the same slot carries both an
// addition and a deletion of an object into a single nested object sub-diff
// under the addition's key, matching jsondiffpatch's array-diff output for
// same-slot object replacements. A slot whose fused sub-diff turns out empty
// (the two objects were actually equal) is dropped entirely. Keys that don't
// participate in fusion pass through untouched, in their original order.
func fuseObjectPairs(orig *value.Object, strict bool, a *arena.Arena, depth *arena.DepthGuard) (*value.Object, error) {
	keys := orig.Keys()

	fused := make(map[string]*value.Value)
	drop := make(map[string]bool)

	for _, k := range keys {
		if k == wire.ArrayTypeKey || strings.HasPrefix(k, "_") {
			continue
		}
		delKey := "_" + k
		addNode, ok := orig.Get(k)
		if !ok {
			continue
		}
		delNode, ok := orig.Get(delKey)
		if !ok {
			continue
		}
		if wire.Classify(addNode) != wire.ShapeAddition || wire.Classify(delNode) != wire.ShapeDeletion {
			continue
		}
		newObj := wire.New(addNode)
		oldObj := wire.Old(delNode)
		if newObj == nil || oldObj == nil || newObj.Kind != value.KindObject || oldObj.Kind != value.KindObject {
			continue
		}

		nested, changed, err := diffValue(oldObj, newObj, strict, a, depth)
		if err != nil {
			return nil, err
		}
		drop[delKey] = true
		if changed {
			fused[k] = nested
		} else {
			drop[k] = true
		}
	}

	if len(fused) == 0 && len(drop) == 0 {
		return orig, nil
	}

	out := value.NewObjectMap()
	for _, k := range keys {
		if drop[k] {
			continue
		}
		if replacement, ok := fused[k]; ok {
			out.Set(k, replacement)
			continue
		}
		v, _ := orig.Get(k)
		out.Set(k, v)
	}
	return out, nil
}
