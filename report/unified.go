package report

import (
	"fmt"
	"strings"

	"github.com/pfrederiksen/jsondiffpatch/value"
)

// Unified renders diffNode as hunk-style +/-/~ lines grouped by base path
// (array indices stripped), the same grouping git diff drivers expect.
func Unified(diffNode *value.Value, opts Options) string {
	entries := Flatten(diffNode)
	if len(entries) == 0 {
		return ""
	}

	var b strings.Builder

	pathEntries := make(map[string][]Entry)
	var paths []string
	for _, e := range entries {
		basePath := strings.Split(e.Path, "[")[0]
		if pathEntries[basePath] == nil {
			paths = append(paths, basePath)
		}
		pathEntries[basePath] = append(pathEntries[basePath], e)
	}

	for _, basePath := range paths {
		b.WriteString(fmt.Sprintf("@@ %s @@\n", basePath))

		for _, e := range pathEntries[basePath] {
			switch e.Kind {
			case KindAdd:
				val := formatValue(e.NewValue, opts.MaxValueLength)
				b.WriteString(fmt.Sprintf("+%s: %s\n", e.Path, val))

			case KindRemove:
				val := formatValue(e.OldValue, opts.MaxValueLength)
				b.WriteString(fmt.Sprintf("-%s: %s\n", e.Path, val))

			case KindModify:
				oldVal := formatValue(e.OldValue, opts.MaxValueLength)
				newVal := formatValue(e.NewValue, opts.MaxValueLength)
				tag := "~"
				if !classifyModification(e) {
					tag = "!"
				}
				b.WriteString(fmt.Sprintf("-%s%s: %s\n", tag, e.Path, oldVal))
				b.WriteString(fmt.Sprintf("+%s%s: %s\n", tag, e.Path, newVal))
			}
		}
	}

	return b.String()
}
