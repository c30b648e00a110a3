package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pfrederiksen/jsondiffpatch/value"
)

// Stat renders a statistics summary similar to git diff --stat: one bar per
// changed path, plus a totals line.
func Stat(diffNode *value.Value) string {
	entries := Flatten(diffNode)
	if len(entries) == 0 {
		return "No changes detected.\n"
	}

	summary := summarize(entries)

	var b strings.Builder

	paths := make(map[string]*pathStat)
	for _, e := range entries {
		if paths[e.Path] == nil {
			paths[e.Path] = &pathStat{}
		}
		switch e.Kind {
		case KindAdd:
			paths[e.Path].additions++
		case KindRemove:
			paths[e.Path].deletions++
		case KindModify:
			paths[e.Path].modifications++
		}
	}

	sortedPaths := make([]string, 0, len(paths))
	for path := range paths {
		sortedPaths = append(sortedPaths, path)
	}

	sort.Strings(sortedPaths)

	maxPathLen := 0
	for _, path := range sortedPaths {
		if len(path) > maxPathLen {
			maxPathLen = len(path)
		}
	}
	if maxPathLen > 60 {
		maxPathLen = 60
	}

	for _, path := range sortedPaths {
		stat := paths[path]
		displayPath := path
		if len(displayPath) > 60 {
			displayPath = "..." + displayPath[len(displayPath)-57:]
		}

		total := stat.additions + stat.deletions + stat.modifications
		barWidth := 40
		var bar string
		if total > 0 {
			plusCount := (stat.additions * barWidth) / total
			minusCount := (stat.deletions * barWidth) / total
			modCount := (stat.modifications * barWidth) / total

			bar = strings.Repeat("+", plusCount) +
				strings.Repeat("-", minusCount) +
				strings.Repeat("~", modCount)

			if len(bar) > barWidth {
				bar = bar[:barWidth]
			}
		}

		fmt.Fprintf(&b, " %-*s | %s\n", maxPathLen, displayPath, bar)
	}

	b.WriteString(fmt.Sprintf(" %d path(s) changed", len(paths)))
	if summary.Added > 0 {
		b.WriteString(fmt.Sprintf(", %d addition(s)(+)", summary.Added))
	}
	if summary.Removed > 0 {
		b.WriteString(fmt.Sprintf(", %d deletion(s)(-)", summary.Removed))
	}
	if summary.Modified > 0 {
		b.WriteString(fmt.Sprintf(", %d modification(s)(~)", summary.Modified))
	}
	if summary.Replaced > 0 {
		b.WriteString(fmt.Sprintf(", %d replacement(s)(~)", summary.Replaced))
	}
	b.WriteString("\n")

	return b.String()
}

type pathStat struct {
	additions     int
	deletions     int
	modifications int
}
