package report

import (
	"github.com/mitchellh/go-wordwrap"

	"github.com/pfrederiksen/jsondiffpatch/value"
)

// formatValue renders v as a compact single-line display string. A nil v
// (an absent value, e.g. the "old" side of an addition) renders as "-".
// When maxLen is positive, the result is wrapped to that width.
func formatValue(v *value.Value, maxLen int) string {
	if v == nil {
		return "-"
	}
	b, err := v.MarshalJSON()
	s := ""
	if err == nil {
		s = string(b)
	} else {
		s = v.Kind.String()
	}
	if maxLen > 0 && len(s) > 0 {
		s = wordwrap.WrapString(s, uint(maxLen))
	}
	return s
}
