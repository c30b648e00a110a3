// Package config loads CLI defaults from an optional .jsondiffpatch.yaml,
// layered underneath explicit command-line flags the same way the teacher's
// cli.CLIOptions.ApplyConfigDefaults layers a config file under flags.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// File is the on-disk shape of .jsondiffpatch.yaml.
type File struct {
	StrictEquality *bool `yaml:"strict_equality"`
	MaxDepth       *int  `yaml:"max_depth"`
	ArenaCapacity  *int  `yaml:"arena_capacity"`
	MaxInputBytes  *int  `yaml:"max_input_bytes"`
	NoColor        *bool `yaml:"no_color"`
}

// Load reads and parses path. A missing file is not an error: it returns a
// zero File, meaning "no defaults configured".
func Load(path string) (File, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return File{}, nil
	}
	if err != nil {
		return File{}, fmt.Errorf("config: reading %s: %w", path, err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return File{}, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return f, nil
}

// ApplyBoolDefault returns the config's value for a bool flag the caller
// never set explicitly (flagSet is the flag package's Changed check).
func (f File) ApplyBoolDefault(flagSet bool, current bool, cfgVal *bool) bool {
	if flagSet || cfgVal == nil {
		return current
	}
	return *cfgVal
}

// ApplyIntDefault mirrors ApplyBoolDefault for int-valued flags.
func (f File) ApplyIntDefault(flagSet bool, current int, cfgVal *int) int {
	if flagSet || cfgVal == nil {
		return current
	}
	return *cfgVal
}
