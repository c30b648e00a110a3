package diff

import "github.com/pfrederiksen/jsondiffpatch/value"

// segType tags a step in the edit script produced by myersSES.
type segType int

const (
	segEqual segType = iota
	segInsert
	segDelete
)

// segment is a run of one kind of edit-script step. Insert and Delete
// segments are always length 1 (one array element each); only Equal
// segments (snakes) are run-length merged.
type segment struct {
	typ    segType
	length int
}

type edge struct {
	prevX, prevY int
	x, y         int
}

// myersSES computes the minimum edit script transforming lm into rm using
// the classical Myers algorithm: a forward pass tracking, for each number of
// edits d, the furthest-reaching x on every relevant diagonal k = x - y,
// extended greedily along equal-element snakes; then a backward walk of the
// recorded snapshots reconstructing the path. Callers must ensure
// len(lm) > 0 and len(rm) > 0 (the degenerate all-insert/all-delete/
// no-change cases are handled by the caller before reaching here).
func myersSES(lm, rm []*value.Value, strict bool) []segment {
	n, m := len(lm), len(rm)
	max := n + m
	offset := max
	size := 2*max + 1

	v := make([]int, size)
	trace := make([][]int, 0, max+1)

	finalD := max
	found := false

outer:
	for d := 0; d <= max; d++ {
		snapshot := make([]int, size)
		copy(snapshot, v)
		trace = append(trace, snapshot)

		for k := -d; k <= d; k += 2 {
			var x int
			if k == -d || (k != d && v[offset+k-1] < v[offset+k+1]) {
				x = v[offset+k+1]
			} else {
				x = v[offset+k-1] + 1
			}
			y := x - k

			for x < n && y < m && value.Equal(lm[x], rm[y], strict) {
				x++
				y++
			}
			v[offset+k] = x

			if x >= n && y >= m {
				finalD = d
				found = true
				break outer
			}
		}
	}
	_ = found // finalD is well-defined (== max) even if the loop bound was hit exactly at max.

	edges := backtrack(trace, finalD, n, m, offset)
	return edgesToSegments(edges)
}

// backtrack walks the recorded V snapshots from (n, m) back to (0, 0),
// recovering the sequence of snake/edit edges in reverse, then returns them
// in forward (left-to-right) order.
func backtrack(trace [][]int, d, n, m, offset int) []edge {
	var edges []edge
	x, y := n, m

	for dd := d; dd >= 0; dd-- {
		vv := trace[dd]
		k := x - y

		var prevK int
		if k == -dd || (k != dd && vv[offset+k-1] < vv[offset+k+1]) {
			prevK = k + 1
		} else {
			prevK = k - 1
		}
		prevX := vv[offset+prevK]
		prevY := prevX - prevK

		for x > prevX && y > prevY {
			edges = append(edges, edge{x - 1, y - 1, x, y})
			x, y = x-1, y-1
		}
		if dd > 0 {
			edges = append(edges, edge{prevX, prevY, x, y})
		}
		x, y = prevX, prevY
	}

	for i, j := 0, len(edges)-1; i < j; i, j = i+1, j-1 {
		edges[i], edges[j] = edges[j], edges[i]
	}
	return edges
}

func edgesToSegments(edges []edge) []segment {
	var segs []segment
	for _, e := range edges {
		switch {
		case e.x-e.prevX == 1 && e.y-e.prevY == 1:
			if n := len(segs); n > 0 && segs[n-1].typ == segEqual {
				segs[n-1].length++
			} else {
				segs = append(segs, segment{segEqual, 1})
			}
		case e.x == e.prevX:
			segs = append(segs, segment{segInsert, 1})
		case e.y == e.prevY:
			segs = append(segs, segment{segDelete, 1})
		}
	}
	return segs
}
