package snap

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Profile is a YAML-loadable snapping configuration: a named strategy and
// tolerance a CLI host can select by name instead of wiring flags.
type Profile struct {
	// Name identifies the profile in diagnostics and test fixtures.
	Name string `yaml:"name" json:"name"`

	// Tolerance is the snapping epsilon.
	Tolerance float64 `yaml:"tolerance" json:"tolerance"`

	// Strategy is "grid" or "closest"; empty defaults to grid.
	Strategy string `yaml:"strategy,omitempty" json:"strategy,omitempty"`
}

// Options converts p into the Option slice New expects.
func (p Profile) Options() ([]Option, error) {
	opts := []Option{WithTolerance(p.Tolerance)}
	switch p.Strategy {
	case "", StrategyGrid.String():
		opts = append(opts, WithStrategy(StrategyGrid))
	case StrategyClosest.String():
		opts = append(opts, WithStrategy(StrategyClosest))
	default:
		return nil, fmt.Errorf("snap: unknown strategy %q", p.Strategy)
	}
	return opts, nil
}

// LoadProfile reads a Profile from a YAML file at path.
func LoadProfile(path string) (Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, fmt.Errorf("snap: reading profile %q: %w", path, err)
	}
	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Profile{}, fmt.Errorf("snap: parsing profile %q: %w", path, err)
	}
	return p, nil
}

// SaveProfile writes p to path as YAML.
func SaveProfile(path string, p Profile) error {
	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("snap: encoding profile: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("snap: writing profile %q: %w", path, err)
	}
	return nil
}
