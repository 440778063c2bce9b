// Package sheet loads roll sheets, the YAML input format consumed by the
// one-shot scoring command.
package sheet

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Sheet is the recorded roll sequence of a single game.
type Sheet struct {
	Rolls []int `yaml:"rolls"`
}

// Load reads and parses a YAML roll sheet.
func Load(path string) (*Sheet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open roll sheet %s: %w", path, err)
	}
	defer f.Close()

	var s Sheet
	if err := yaml.NewDecoder(f).Decode(&s); err != nil {
		return nil, fmt.Errorf("failed to decode roll sheet %s: %w", path, err)
	}

	if s.Rolls == nil {
		s.Rolls = make([]int, 0)
	}

	return &s, nil
}
