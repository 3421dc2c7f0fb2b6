package noder

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Profile is a YAML-loadable noding configuration: a named set of Options a
// CLI host can select by name instead of wiring flags directly to Option
// constructors.
type Profile struct {
	// Name identifies the profile in diagnostics and test fixtures.
	Name string `yaml:"name" json:"name"`

	// Tolerance is the snapping epsilon; 0 selects the exact policy.
	Tolerance float64 `yaml:"tolerance" json:"tolerance"`

	// MaxIterations overrides DefaultMaxIterations when positive.
	MaxIterations int `yaml:"maxIterations,omitempty" json:"maxIterations,omitempty"`
}

// Options converts p into the Option slice Node expects.
func (p Profile) Options() []Option {
	opts := []Option{WithTolerance(p.Tolerance)}
	if p.MaxIterations > 0 {
		opts = append(opts, WithMaxIterations(p.MaxIterations))
	}
	return opts
}

// LoadProfile reads a Profile from a YAML file at path.
func LoadProfile(path string) (Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, fmt.Errorf("noder: reading profile %q: %w", path, err)
	}
	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Profile{}, fmt.Errorf("noder: parsing profile %q: %w", path, err)
	}
	return p, nil
}

// SaveProfile writes p to path as YAML.
func SaveProfile(path string, p Profile) error {
	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("noder: encoding profile: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("noder: writing profile %q: %w", path, err)
	}
	return nil
}
