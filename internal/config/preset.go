package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SavePreset writes the answers of cfg to path as YAML so they can be fed
// back with `raph new --preset path`. The project name and the offline flag
// are run-specific and are not persisted.
func SavePreset(path string, cfg Configuration) error {
	opts := cfg.Options()
	opts.ProjectName = ""

	data, err := yaml.Marshal(opts)
	if err != nil {
		return fmt.Errorf("encoding preset: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing preset %s: %w", path, err)
	}
	return nil
}
