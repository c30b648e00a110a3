package main

import "os"

var (
	// version is set via ldflags during build.
	version = "dev"
	commit  = "none"
	date    = "unknown"
	builtBy = "unknown"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(2)
	}
}
