package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/pfrederiksen/jsondiffpatch/internal/config"
)

var (
	cfgFile       string
	strict        bool
	noColor       bool
	maxDepth      int
	arenaCapacity int
	maxInputBytes int

	cfg config.File
)

var rootCmd = &cobra.Command{
	Use:     "jsondiffpatch",
	Short:   "Compute and apply structural JSON diffs",
	Version: version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		cfg = loaded

		flags := cmd.Flags()
		strict = cfg.ApplyBoolDefault(flags.Changed("strict"), strict, cfg.StrictEquality)
		noColor = cfg.ApplyBoolDefault(flags.Changed("no-color"), noColor, cfg.NoColor)
		maxDepth = cfg.ApplyIntDefault(flags.Changed("max-depth"), maxDepth, cfg.MaxDepth)
		arenaCapacity = cfg.ApplyIntDefault(flags.Changed("arena-capacity"), arenaCapacity, cfg.ArenaCapacity)
		maxInputBytes = cfg.ApplyIntDefault(flags.Changed("max-input-bytes"), maxInputBytes, cfg.MaxInputBytes)
		return nil
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", ".jsondiffpatch.yaml", "config file with flag defaults")
	flags.BoolVar(&strict, "strict", true, "use strict (bitwise) number equality")
	flags.BoolVar(&noColor, "no-color", false, "disable colorized output")
	flags.IntVar(&maxDepth, "max-depth", 0, "recursion depth bound (0 = default)")
	flags.IntVar(&arenaCapacity, "arena-capacity", 0, "initial arena capacity in bytes (0 = plain heap allocation)")
	flags.IntVar(&maxInputBytes, "max-input-bytes", 0, "maximum accepted input size per file, in bytes (0 = default)")

	rootCmd.AddCommand(diffCmd, patchCmd, equalCmd)
}

// readInput reads path, treating "-" as stdin.
func readInput(path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return data, nil
}
