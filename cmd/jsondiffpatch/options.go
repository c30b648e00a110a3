package main

import (
	jsondiffpatch "github.com/pfrederiksen/jsondiffpatch"
	"github.com/pfrederiksen/jsondiffpatch/internal/arena"
)

// buildOptions constructs a fresh jsondiffpatch.Options from the current
// flag/config state. When an arena capacity is configured, each call gets its
// own Arena, so concurrent file pairs never share one (per spec.md's "each
// thread uses its own arena"); otherwise Arena is nil and nodes use the heap.
func buildOptions() jsondiffpatch.Options {
	opts := jsondiffpatch.Options{
		Tolerant:      !strict,
		MaxDepth:      maxDepth,
		MaxInputBytes: maxInputBytes,
	}
	if arenaCapacity > 0 {
		opts.Arena = arena.New(arenaCapacity, arena.DefaultMaxCapacity)
	}
	return opts
}
