package report

import (
	"github.com/agext/levenshtein"

	"github.com/pfrederiksen/jsondiffpatch/value"
)

// editThreshold is the maximum edit-distance-to-length ratio still
// considered a "modification" rather than a wholesale "replacement".
const editThreshold = 0.4

// classifyModification reports whether a KindModify entry is a near-edit
// (true, "modified") versus an unrelated value swap (false, "replaced").
// Only string-to-string changes get the edit-distance treatment; every
// other value-kind change (including a kind change, e.g. string to number)
// is always a replacement.
func classifyModification(e Entry) bool {
	if e.OldValue == nil || e.NewValue == nil {
		return false
	}
	if e.OldValue.Kind != value.KindString || e.NewValue.Kind != value.KindString {
		return false
	}
	old, next := e.OldValue.Str, e.NewValue.Str
	if old == next {
		return true
	}
	maxLen := len(old)
	if len(next) > maxLen {
		maxLen = len(next)
	}
	if maxLen == 0 {
		return true
	}
	dist := levenshtein.Distance(old, next, nil)
	return float64(dist)/float64(maxLen) <= editThreshold
}
