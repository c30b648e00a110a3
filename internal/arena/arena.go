// Package arena implements the bump-pointer allocation discipline used to
// make a single diff or patch call cheap to allocate and cheap to release.
//
// Go's garbage collector gives every object precise, independently-tracked
// lifetime information, so there is no supported way to reinterpret a raw
// byte buffer as a graph of live pointers the way a C arena would (the GC
// would never see the aliased pointers as roots). The arena here keeps the
// *contract* instead — bump-pointer accounting, doubling growth, a hard
// capacity, reset and cleanup — without relying on a global allocator hook.
// Callers pass an *Arena explicitly to every node constructor; the
// constructor still uses ordinary Go allocation, but only after the arena
// has charged and approved the request, so the capacity and growth
// behaviour is observable and enforceable even though the bytes themselves
// are never physically carved out of a shared buffer.
package arena

import (
	"math"

	"github.com/pfrederiksen/jsondiffpatch/errs"
)

const (
	// DefaultInitialCapacity is used when New is given a non-positive initial capacity.
	DefaultInitialCapacity = 4096

	// DefaultMaxCapacity is the default cap on arena growth (16 MiB).
	DefaultMaxCapacity = 16 << 20

	wordSize = 8
)

// Arena is a bump-pointer allocation budget bound to a single diff or patch
// call. The zero value is not usable; construct one with New.
type Arena struct {
	used   int
	size   int
	maxCap int
}

// New creates an Arena with the given initial and maximum capacities, in
// bytes. Non-positive values fall back to the package defaults.
func New(initialCapacity, maxCapacity int) *Arena {
	if initialCapacity <= 0 {
		initialCapacity = DefaultInitialCapacity
	}
	if maxCapacity <= 0 {
		maxCapacity = DefaultMaxCapacity
	}
	if initialCapacity > maxCapacity {
		initialCapacity = maxCapacity
	}
	return &Arena{size: initialCapacity, maxCap: maxCapacity}
}

// Allocate charges size bytes against the arena, aligning the current offset
// up to the word size first. It grows the backing capacity (doubling, capped
// at maxCap) as needed and fails with errs.ErrOutOfMemory if the request
// cannot be satisfied, including on any overflow in the arithmetic.
func (a *Arena) Allocate(size int) error {
	if a == nil {
		return nil // an unbound call always uses the heap directly.
	}
	if size < 0 {
		return errs.ErrOutOfMemory
	}

	aligned, ok := alignUp(a.used, wordSize)
	if !ok {
		return errs.ErrOutOfMemory
	}

	next := aligned + size
	if next < aligned { // overflow
		return errs.ErrOutOfMemory
	}

	for next > a.size {
		grown := a.size * 2
		if grown <= a.size { // overflow
			return errs.ErrOutOfMemory
		}
		if grown > a.maxCap {
			if a.size >= a.maxCap {
				return errs.ErrOutOfMemory
			}
			grown = a.maxCap
		}
		a.size = grown
	}

	a.used = next
	return nil
}

// Reset zeroes the current offset without shrinking the tracked capacity.
func (a *Arena) Reset() {
	if a == nil {
		return
	}
	a.used = 0
}

// Cleanup releases the arena's tracked capacity entirely.
func (a *Arena) Cleanup() {
	if a == nil {
		return
	}
	a.used = 0
	a.size = 0
}

// Used reports the number of bytes currently charged against the arena.
func (a *Arena) Used() int {
	if a == nil {
		return 0
	}
	return a.used
}

// Cap reports the arena's current backing capacity.
func (a *Arena) Cap() int {
	if a == nil {
		return 0
	}
	return a.size
}

func alignUp(n, align int) (int, bool) {
	if n > math.MaxInt-(align-1) {
		return 0, false
	}
	return (n + align - 1) &^ (align - 1), true
}
