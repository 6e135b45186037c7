package sketch

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the tunables of the editing operations.
type Config struct {
	// TangentArcRadius is the preferred tangent arc radius in screen units.
	// It is divided by the view scale to get model units.
	TangentArcRadius float64 `yaml:"tangent_arc_radius"`
	// ViewScale is the initial zoom factor of an [Editor].
	ViewScale float64 `yaml:"view_scale"`
	// LengthEpsilon is the distance below which two points are considered
	// equal.
	LengthEpsilon float64 `yaml:"length_epsilon"`
	// AngleEpsilon is the angle in radians below which two directions are
	// considered parallel.
	AngleEpsilon float64 `yaml:"angle_epsilon"`
	// IntersectionTolerance is the accuracy of curve intersections.
	IntersectionTolerance float64 `yaml:"intersection_tolerance"`
	// RewireAllConstraintKinds makes splits move every kind of constraint
	// from a deleted end point to its replacement, not only coincidences.
	RewireAllConstraintKinds bool `yaml:"rewire_all_constraint_kinds"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		TangentArcRadius:      200,
		ViewScale:             5,
		LengthEpsilon:         1e-6,
		AngleEpsilon:          1e-6,
		IntersectionTolerance: 1e-6,
	}
}

// LoadConfig loads the configuration from a YAML file. Fields missing from
// the file keep their defaults, and a missing file yields the defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if !(c.TangentArcRadius > 0) {
		return fmt.Errorf("invalid tangent_arc_radius %g: must be positive", c.TangentArcRadius)
	}
	if !(c.ViewScale > 0) {
		return fmt.Errorf("invalid view_scale %g: must be positive", c.ViewScale)
	}
	if !(c.LengthEpsilon > 0) {
		return fmt.Errorf("invalid length_epsilon %g: must be positive", c.LengthEpsilon)
	}
	if !(c.AngleEpsilon > 0) {
		return fmt.Errorf("invalid angle_epsilon %g: must be positive", c.AngleEpsilon)
	}
	if !(c.IntersectionTolerance > 0) {
		return fmt.Errorf("invalid intersection_tolerance %g: must be positive", c.IntersectionTolerance)
	}
	return nil
}
