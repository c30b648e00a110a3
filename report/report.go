// Package report renders a computed jsondiffpatch diff tree for humans:
// a git-diff-stat-style summary, a colorized side-by-side view, and a
// unified hunk-style view. It first flattens the nested diff tree into a
// path-addressed list of entries (the same shape the teacher's report
// package consumes), then reuses the teacher's three rendering strategies
// against that flattened list.
package report

import (
	"fmt"
	"strings"

	"github.com/pfrederiksen/jsondiffpatch/value"
	"github.com/pfrederiksen/jsondiffpatch/wire"
)

// Kind tags the nature of a single flattened change.
type Kind int

const (
	KindAdd Kind = iota
	KindRemove
	KindModify
)

// Entry is one leaf change extracted from a diff tree, addressed by a
// JSON-path-like string (e.g. "$.a.b[2]").
type Entry struct {
	Path     string
	Kind     Kind
	OldValue *value.Value
	NewValue *value.Value
}

// Flatten walks diffNode and returns its leaf changes in a stable,
// depth-first, left-to-right order. A nil diffNode flattens to nil.
func Flatten(diffNode *value.Value) []Entry {
	var entries []Entry
	walk(diffNode, "$", &entries)
	return entries
}

func walk(node *value.Value, path string, out *[]Entry) {
	if node == nil {
		return
	}

	switch wire.Classify(node) {
	case wire.ShapeChange:
		*out = append(*out, Entry{Path: path, Kind: KindModify, OldValue: wire.Old(node), NewValue: wire.New(node)})
		return
	case wire.ShapeAddition:
		*out = append(*out, Entry{Path: path, Kind: KindAdd, NewValue: wire.New(node)})
		return
	case wire.ShapeDeletion:
		*out = append(*out, Entry{Path: path, Kind: KindRemove, OldValue: wire.Old(node)})
		return
	case wire.ShapeMove:
		// Diff never emits a bare move at a value position; nothing to report.
		return
	}

	if node.Kind != value.KindObject {
		return
	}

	if wire.IsArrayDiffMarker(node) {
		for _, k := range node.Obj.Keys() {
			if k == wire.ArrayTypeKey {
				continue
			}
			idx, _, ok := wire.ParseArrayKey(k)
			if !ok {
				continue
			}
			child, _ := node.Obj.Get(k)
			walk(child, fmt.Sprintf("%s[%d]", path, idx), out)
		}
		return
	}

	for _, k := range node.Obj.Keys() {
		child, _ := node.Obj.Get(k)
		walk(child, path+"."+k, out)
	}
}

// Summary tallies entry kinds, the same counters the teacher's stat report
// tracks, plus a Modified/Replaced split within KindModify entries (see
// classifyModification).
type Summary struct {
	Added    int
	Removed  int
	Modified int
	Replaced int
}

func summarize(entries []Entry) Summary {
	var s Summary
	for _, e := range entries {
		switch e.Kind {
		case KindAdd:
			s.Added++
		case KindRemove:
			s.Removed++
		case KindModify:
			if classifyModification(e) {
				s.Modified++
			} else {
				s.Replaced++
			}
		}
	}
	return s
}

func formatSummary(s Summary) string {
	var parts []string
	if s.Added > 0 {
		parts = append(parts, fmt.Sprintf("%d addition(s)", s.Added))
	}
	if s.Removed > 0 {
		parts = append(parts, fmt.Sprintf("%d deletion(s)", s.Removed))
	}
	if s.Modified > 0 {
		parts = append(parts, fmt.Sprintf("%d modification(s)", s.Modified))
	}
	if s.Replaced > 0 {
		parts = append(parts, fmt.Sprintf("%d replacement(s)", s.Replaced))
	}
	if len(parts) == 0 {
		return "no changes"
	}
	return strings.Join(parts, ", ")
}
