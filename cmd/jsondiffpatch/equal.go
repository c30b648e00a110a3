package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	jsondiffpatch "github.com/pfrederiksen/jsondiffpatch"
	"github.com/pfrederiksen/jsondiffpatch/value"
)

var equalCmd = &cobra.Command{
	Use:   "equal <a.json> <b.json>",
	Short: "Report whether two JSON documents are structurally equal",
	Args:  cobra.ExactArgs(2),
	RunE:  runEqual,
}

func runEqual(cmd *cobra.Command, args []string) error {
	aText, err := readInput(args[0])
	if err != nil {
		return err
	}
	bText, err := readInput(args[1])
	if err != nil {
		return err
	}

	opts := buildOptions()
	a, err := value.Parse(aText, opts.Arena)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", args[0], err)
	}
	b, err := value.Parse(bText, opts.Arena)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", args[1], err)
	}

	eq := jsondiffpatch.Equal(a, b, strict)
	fmt.Println(eq)
	if !eq {
		os.Exit(1)
	}
	return nil
}
