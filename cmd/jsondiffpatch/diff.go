package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	jsondiffpatch "github.com/pfrederiksen/jsondiffpatch"
	"github.com/pfrederiksen/jsondiffpatch/report"
	"github.com/pfrederiksen/jsondiffpatch/value"
)

var (
	reportFormat string
	wantExitCode bool
)

var diffCmd = &cobra.Command{
	Use:   "diff <old.json> <new.json> [<old2.json> <new2.json> ...]",
	Short: "Compute the structural diff between JSON documents",
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) < 2 || len(args)%2 != 0 {
			return fmt.Errorf("diff requires an even number of file arguments (old/new pairs), got %d", len(args))
		}
		return nil
	},
	RunE: runDiff,
}

func init() {
	flags := diffCmd.Flags()
	flags.StringVar(&reportFormat, "report", "wire", "report format: wire, stat, side-by-side, or unified")
	flags.BoolVar(&wantExitCode, "exit-code", false, "exit with status 1 if a diff was found")
}

type filePair struct {
	old, new string
}

func runDiff(cmd *cobra.Command, args []string) error {
	var pairs []filePair
	for i := 0; i < len(args); i += 2 {
		pairs = append(pairs, filePair{old: args[i], new: args[i+1]})
	}

	if len(pairs) == 1 {
		changed, err := diffOnePair(pairs[0])
		if err != nil {
			return err
		}
		if changed && wantExitCode {
			os.Exit(1)
		}
		return nil
	}

	// Multiple independent pairs diff concurrently, each with its own Options
	// (and its own arena when one is configured), the parallel analogue of
	// comparing a whole directory tree.
	results := make([]bool, len(pairs))
	var g errgroup.Group
	g.SetLimit(4)
	for i, p := range pairs {
		i, p := i, p
		g.Go(func() error {
			changed, err := diffOnePair(p)
			results[i] = changed
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	anyChanged := false
	for _, c := range results {
		if c {
			anyChanged = true
			break
		}
	}
	if anyChanged && wantExitCode {
		os.Exit(1)
	}
	return nil
}

func diffOnePair(p filePair) (bool, error) {
	oldText, err := readInput(p.old)
	if err != nil {
		return false, err
	}
	newText, err := readInput(p.new)
	if err != nil {
		return false, err
	}

	opts := buildOptions()
	d, changed, err := jsondiffpatch.DiffText(oldText, newText, opts)
	if err != nil {
		return false, fmt.Errorf("diff %s %s: %w", p.old, p.new, err)
	}

	out, err := renderDiff(d)
	if err != nil {
		return changed, err
	}
	if out != "" {
		fmt.Println(out)
	}
	return changed, nil
}

func renderDiff(d *value.Value) (string, error) {
	switch reportFormat {
	case "wire":
		if d == nil {
			return "", nil
		}
		b, err := d.MarshalJSON()
		if err != nil {
			return "", err
		}
		return string(b), nil
	case "stat":
		return report.Stat(d), nil
	case "side-by-side":
		return report.SideBySide(d, report.Options{NoColor: noColor}), nil
	case "unified":
		return report.Unified(d, report.Options{NoColor: noColor}), nil
	default:
		return "", fmt.Errorf("unknown report format %q", reportFormat)
	}
}
