package main

import (
	"fmt"

	"github.com/spf13/cobra"

	jsondiffpatch "github.com/pfrederiksen/jsondiffpatch"
)

var patchCmd = &cobra.Command{
	Use:   "patch <original.json> <diff.json>",
	Short: "Apply a diff to an original document and print the result",
	Args:  cobra.ExactArgs(2),
	RunE:  runPatch,
}

func runPatch(cmd *cobra.Command, args []string) error {
	originalText, err := readInput(args[0])
	if err != nil {
		return err
	}
	diffText, err := readInput(args[1])
	if err != nil {
		return err
	}

	patched, err := jsondiffpatch.PatchText(originalText, diffText, buildOptions())
	if err != nil {
		return fmt.Errorf("patch %s %s: %w", args[0], args[1], err)
	}
	if patched == nil {
		fmt.Println("null")
		return nil
	}

	out, err := patched.MarshalJSON()
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
