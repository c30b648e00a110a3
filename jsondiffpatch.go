// Package jsondiffpatch computes a structural diff between two JSON values
// and applies such a diff as a patch, byte-compatible with the jsondiffpatch
// wire format: object diffs recurse key by key, array diffs run a Myers
// shortest-edit-script over a trimmed middle with an object-pair fusion
// post-pass, and patch understands the move-operation extension on top of
// the plain add/change/delete shapes. It is a facade over the value, wire,
// diff, and patch packages — see those for the underlying algorithms.
package jsondiffpatch

import (
	"github.com/pfrederiksen/jsondiffpatch/diff"
	"github.com/pfrederiksen/jsondiffpatch/errs"
	"github.com/pfrederiksen/jsondiffpatch/internal/arena"
	"github.com/pfrederiksen/jsondiffpatch/patch"
	"github.com/pfrederiksen/jsondiffpatch/value"
)

// DefaultMaxInputBytes bounds the text accepted by DiffText and PatchText,
// per side.
const DefaultMaxInputBytes = 1 << 20 // 1 MiB

// Options configures a Diff, Patch, or DiffText call. The zero value is
// usable: strict (bitwise) equality per spec.md §6's default, the default
// recursion-depth bound, no arena (plain heap allocation), and the default
// input-size cap.
type Options struct {
	// Tolerant selects numeric equality mode: within 1e-9 absolute
	// difference when true, bitwise (strict) when false, which is the
	// zero-value default. It governs every comparison made during
	// diffing, including prefix/suffix trim and Myers snake extension.
	Tolerant bool

	// Arena, if non-nil, backs every Value/diff-node allocation made
	// during the call. Nodes built without an Arena use the heap
	// directly and are never invalidated.
	Arena *arena.Arena

	// MaxDepth bounds diff and patch recursion. Non-positive falls back
	// to arena.DefaultMaxDepth.
	MaxDepth int

	// MaxInputBytes bounds DiffText/PatchText input length, per side.
	// Non-positive falls back to DefaultMaxInputBytes.
	MaxInputBytes int
}

func (o Options) maxInputBytes() int {
	if o.MaxInputBytes <= 0 {
		return DefaultMaxInputBytes
	}
	return o.MaxInputBytes
}

// Diff computes the structural diff between left and right. It returns
// (nil, false, nil) for "no change".
func Diff(left, right *value.Value, opts Options) (*value.Value, bool, error) {
	depth := arena.NewDepthGuard(opts.MaxDepth)
	return diff.Diff(left, right, !opts.Tolerant, opts.Arena, depth)
}

// Patch applies diffNode to original, reconstructing the "new" side of the
// diff. A nil diffNode returns a clone of original unchanged.
func Patch(original, diffNode *value.Value, opts Options) (*value.Value, error) {
	depth := arena.NewDepthGuard(opts.MaxDepth)
	return patch.Patch(original, diffNode, opts.Arena, depth)
}

// Equal reports whether left and right are structurally equal under the
// given equality mode.
func Equal(left, right *value.Value, strict bool) bool {
	return value.Equal(left, right, strict)
}

// DiffText parses leftText and rightText as JSON and computes their diff,
// dropping the parsed trees afterward. Either input exceeding
// opts.MaxInputBytes is rejected with errs.ErrInputTooLarge before parsing.
func DiffText(leftText, rightText []byte, opts Options) (*value.Value, bool, error) {
	max := opts.maxInputBytes()
	if len(leftText) > max || len(rightText) > max {
		return nil, false, errs.ErrInputTooLarge
	}

	left, err := value.Parse(leftText, opts.Arena)
	if err != nil {
		return nil, false, err
	}
	right, err := value.Parse(rightText, opts.Arena)
	if err != nil {
		return nil, false, err
	}
	return Diff(left, right, opts)
}

// PatchText parses originalText and diffText as JSON and applies the diff,
// returning the patched value. Either input exceeding opts.MaxInputBytes is
// rejected with errs.ErrInputTooLarge before parsing.
func PatchText(originalText, diffText []byte, opts Options) (*value.Value, error) {
	max := opts.maxInputBytes()
	if len(originalText) > max || len(diffText) > max {
		return nil, errs.ErrInputTooLarge
	}

	original, err := value.Parse(originalText, opts.Arena)
	if err != nil {
		return nil, err
	}
	diffVal, err := value.Parse(diffText, opts.Arena)
	if err != nil {
		return nil, err
	}
	return Patch(original, diffVal, opts)
}
