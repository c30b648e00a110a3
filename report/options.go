package report

// Options configures SideBySide and Unified rendering. The zero value
// renders in color with no value truncation.
type Options struct {
	// NoColor disables ANSI coloring, overriding terminal auto-detection.
	NoColor bool

	// MaxValueLength wraps every rendered value (scalar or container) to this
	// width. Zero or negative means unwrapped.
	MaxValueLength int
}
