package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load reads, defaults and validates a tree config file. YAML is the
// native format; files ending in .json are parsed as JSON (the format
// the original tree-maker tool used).
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg := &Config{Logging: LoggingConfig{Level: "info"}}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = json.Unmarshal(data, cfg)
	default:
		err = yaml.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	applyDefaults(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// applyDefaults fills unset values that have conventional defaults.
func applyDefaults(cfg *Config) {
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	for b := &cfg.Branch; b != nil; b = b.ChildrenConfig {
		// Rotation bounds default to 20/40 degrees when both are unset.
		if b.MinRotation == 0 && b.MaxRotation == 0 {
			b.MinRotation = 20
			b.MaxRotation = 40
		}
	}
}

// Validate reports configuration errors that must stop generation
// before any work starts. Degenerate numeric inputs that the geometry
// core normalizes itself (low curvature, radial segments below 3) are
// not errors.
func (c *Config) Validate() error {
	if _, err := ParseTreeType(c.Type); err != nil {
		return err
	}
	return validateBranch(&c.Branch, 0)
}

func validateBranch(b *BranchConfig, depth int) error {
	if b.Length <= 0 {
		return fmt.Errorf("branch level %d: length must be > 0, got %v", depth, b.Length)
	}
	if b.StartRadius < 0 || b.EndRadius < 0 {
		return fmt.Errorf("branch level %d: radii must be >= 0", depth)
	}
	if b.LengthSegments < 1 {
		return fmt.Errorf("branch level %d: length_segments must be >= 1", depth)
	}
	if b.MaxRotation < b.MinRotation {
		return fmt.Errorf("branch level %d: max_rotation %v below min_rotation %v", depth, b.MaxRotation, b.MinRotation)
	}
	if b.ChildrenConfig != nil {
		return validateBranch(b.ChildrenConfig, depth+1)
	}
	return nil
}

// Lint returns non-fatal findings worth surfacing to the caller. A
// level that asks for children without providing a template generates
// no descendants; that is allowed but usually a config mistake.
func (c *Config) Lint() []string {
	var warnings []string
	depth := 0
	for b := &c.Branch; b != nil; b = b.ChildrenConfig {
		if b.Children > 0 && b.ChildrenConfig == nil {
			warnings = append(warnings, fmt.Sprintf(
				"branch level %d requests %d children but has no children_config; no descendants will be generated", depth, b.Children))
		}
		if b.RadialSegments > 0 && b.RadialSegments < 3 {
			warnings = append(warnings, fmt.Sprintf(
				"branch level %d: radial_segments %d below minimum, will be raised to 3", depth, b.RadialSegments))
		}
		depth++
	}
	return warnings
}
