package report

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/pfrederiksen/jsondiffpatch/value"
)

// SideBySide renders a colorized two-column old/new comparison of diffNode.
func SideBySide(diffNode *value.Value, opts Options) string {
	entries := Flatten(diffNode)
	if len(entries) == 0 {
		return "No changes detected.\n"
	}

	originalNoColor := color.NoColor
	defer func() { color.NoColor = originalNoColor }()
	if opts.NoColor {
		color.NoColor = true
	}

	var b strings.Builder
	summary := summarize(entries)

	b.WriteString("Summary: ")
	b.WriteString(formatSummary(summary))
	b.WriteString("\n")
	b.WriteString(strings.Repeat("─", 80))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%-38s | %-38s\n", "Old Value", "New Value"))
	b.WriteString(strings.Repeat("─", 80))
	b.WriteString("\n")

	green := color.New(color.FgGreen).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()

	for _, e := range entries {
		path := e.Path
		if len(path) > 76 {
			path = "..." + path[len(path)-73:]
		}
		b.WriteString(fmt.Sprintf("%s\n", path))

		switch e.Kind {
		case KindAdd:
			oldVal := "(none)"
			newVal := formatValue(e.NewValue, opts.MaxValueLength)
			if !opts.NoColor {
				newVal = green(newVal)
			}
			b.WriteString(fmt.Sprintf("  %-36s | %s\n", oldVal, newVal))

		case KindRemove:
			oldVal := formatValue(e.OldValue, opts.MaxValueLength)
			if !opts.NoColor {
				oldVal = red(oldVal)
			}
			newVal := "(removed)"
			b.WriteString(fmt.Sprintf("  %-36s | %s\n", oldVal, newVal))

		case KindModify:
			oldVal := formatValue(e.OldValue, opts.MaxValueLength)
			newVal := formatValue(e.NewValue, opts.MaxValueLength)
			if !opts.NoColor {
				oldVal = yellow(oldVal)
				newVal = yellow(newVal)
			}
			b.WriteString(fmt.Sprintf("  %-36s | %s\n", oldVal, newVal))
		}

		b.WriteString("\n")
	}

	return b.String()
}
