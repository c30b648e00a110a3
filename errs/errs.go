// Package errs defines the sentinel error values shared across the diff,
// patch, value, and wire packages, and surfaced through the root
// jsondiffpatch package. Those packages return these values either directly
// or wrapped via fmt.Errorf("...: %w", ...), so errors.Is matches them; the
// CLI's file-read, config and usage errors do not wrap them.
package errs

import "errors"

var (
	// ErrParse indicates a text input was not valid JSON.
	ErrParse = errors.New("jsondiffpatch: input is not valid JSON")

	// ErrInputTooLarge indicates a text input exceeded the configured maximum size.
	ErrInputTooLarge = errors.New("jsondiffpatch: input exceeds configured maximum size")

	// ErrRecursionExceeded indicates diff or patch recursion hit the configured depth bound.
	ErrRecursionExceeded = errors.New("jsondiffpatch: recursion depth exceeded")

	// ErrOutOfMemory indicates an allocation failed, including an arena hitting its cap.
	ErrOutOfMemory = errors.New("jsondiffpatch: allocation failed")

	// ErrInvalidDiffShape indicates a Value whose Kind is none of the seven
	// variants; value.Clone and Value.MarshalJSON return it. The patch package
	// skips malformed diff entries instead of returning it.
	ErrInvalidDiffShape = errors.New("jsondiffpatch: diff entry has no recognised shape")

	// ErrIndexOutOfRange names an array patch index that does not exist in the
	// working array and cannot be appended. No package returns it: the array
	// patch drops out-of-range modifications and deletions and clamps
	// out-of-range insertions to an append.
	ErrIndexOutOfRange = errors.New("jsondiffpatch: array patch index out of range")
)
