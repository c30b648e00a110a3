package arena

import "github.com/pfrederiksen/jsondiffpatch/errs"

// DefaultMaxDepth is the default recursion-depth bound for both diff and patch.
const DefaultMaxDepth = 1024

// DepthGuard tracks diff and patch recursion depth for a single call. Go has
// no supported thread-local storage, but one call occupies one goroutine
// end-to-end (the engine never suspends mid-call), so a guard scoped to the
// call and passed down through the recursion does the same job as a
// thread-local counter would, and is trivially safe across concurrent calls
// since no state is shared between them.
type DepthGuard struct {
	diffDepth  int
	patchDepth int
	max        int
}

// NewDepthGuard creates a guard bounded at max. A non-positive max falls
// back to DefaultMaxDepth.
func NewDepthGuard(max int) *DepthGuard {
	if max <= 0 {
		max = DefaultMaxDepth
	}
	return &DepthGuard{max: max}
}

// EnterDiff increments the diff recursion counter and fails closed if it
// would exceed the configured bound.
func (g *DepthGuard) EnterDiff() error {
	g.diffDepth++
	if g.diffDepth > g.max {
		g.diffDepth--
		return errs.ErrRecursionExceeded
	}
	return nil
}

// ExitDiff decrements the diff recursion counter on the way back out.
func (g *DepthGuard) ExitDiff() {
	g.diffDepth--
}

// EnterPatch increments the patch recursion counter and fails closed if it
// would exceed the configured bound.
func (g *DepthGuard) EnterPatch() error {
	g.patchDepth++
	if g.patchDepth > g.max {
		g.patchDepth--
		return errs.ErrRecursionExceeded
	}
	return nil
}

// ExitPatch decrements the patch recursion counter on the way back out.
func (g *DepthGuard) ExitPatch() {
	g.patchDepth--
}
