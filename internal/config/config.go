// Package config handles tree configuration loading and validation.
package config

import (
	"fmt"
	"strings"
)

// TreeType identifies a tree archetype.
type TreeType string

// Supported archetypes. Config files may also use the descriptive
// aliases deciduous, conifer, weeping and tropical.
const (
	Oak    TreeType = "oak"
	Pine   TreeType = "pine"
	Willow TreeType = "willow"
	Palm   TreeType = "palm"
)

// ParseTreeType maps a config archetype tag to a TreeType.
func ParseTreeType(s string) (TreeType, error) {
	switch strings.ToLower(s) {
	case "deciduous", "oak":
		return Oak, nil
	case "conifer", "pine":
		return Pine, nil
	case "weeping", "willow":
		return Willow, nil
	case "tropical", "palm":
		return Palm, nil
	default:
		return "", fmt.Errorf("unknown tree type: %q", s)
	}
}

// Config holds a whole-tree generation configuration.
type Config struct {
	// Type is the tree archetype tag, see ParseTreeType.
	Type string `yaml:"type" json:"type"`
	// Seed fixes the random stream; when absent, generation seeds from
	// OS entropy and is not reproducible.
	Seed    *uint64       `yaml:"seed" json:"seed"`
	Bark    BarkConfig    `yaml:"bark" json:"bark"`
	Branch  BranchConfig  `yaml:"branch" json:"branch"`
	Leaves  LeavesConfig  `yaml:"leaves" json:"leaves"`
	Logging LoggingConfig `yaml:"logging" json:"logging"`
}

// BranchConfig describes one level of the branch hierarchy. It nests
// recursively: ChildrenConfig is the single template applied to every
// child spawned at this level.
type BranchConfig struct {
	// Length is the centerline length, > 0.
	Length float32 `yaml:"length" json:"length"`
	// StartRadius and EndRadius are interpolated along the branch. An
	// end radius near zero closes the branch into a pointed tip.
	StartRadius float32 `yaml:"start_radius" json:"startRadius"`
	EndRadius   float32 `yaml:"end_radius" json:"endRadius"`
	// LengthSegments is the number of path samples along the branch, >= 1.
	LengthSegments uint32 `yaml:"length_segments" json:"lengthSegments"`
	// RadialSegments is the tube cross-section resolution, min 3.
	RadialSegments uint32 `yaml:"radial_segments" json:"radialSegments"`
	// Angle is the nominal branch-to-parent angle in degrees, used by
	// the primitive-based archetype placement.
	Angle float32 `yaml:"angle" json:"angle"`
	// Twist is the rotational perturbation amplitude along the path.
	Twist float32 `yaml:"twist" json:"twist"`
	// Gnarliness drives both path curvature and radial surface noise,
	// clamped to [0,1].
	Gnarliness float32 `yaml:"gnarliness" json:"gnarliness"`
	// MinRotation and MaxRotation bound the random orientation (degrees)
	// applied to a spawned branch relative to its parent. Both zero
	// means unset; defaults of 20/40 are applied on load.
	MinRotation float32 `yaml:"min_rotation" json:"minRotation"`
	MaxRotation float32 `yaml:"max_rotation" json:"maxRotation"`
	// Children is the number of child branches spawned from this level.
	Children uint32 `yaml:"children" json:"children"`
	// ChildrenConfig is required for descendants to be generated; a
	// level with Children > 0 and no template produces none.
	ChildrenConfig *BranchConfig `yaml:"children_config" json:"childrenConfig"`
}

// BarkConfig holds bark appearance settings.
type BarkConfig struct {
	Type        string       `yaml:"type" json:"type"`
	Tint        uint32       `yaml:"tint" json:"tint"`
	FlatShading bool         `yaml:"flat_shading" json:"flatShading"`
	Textured    bool         `yaml:"textured" json:"textured"`
	TextureScale TextureScale `yaml:"texture_scale" json:"textureScale"`
}

// TextureScale holds per-axis texture tiling factors.
type TextureScale struct {
	X float32 `yaml:"x" json:"x"`
	Y float32 `yaml:"y" json:"y"`
}

// LeavesConfig holds foliage appearance settings.
type LeavesConfig struct {
	Type         string  `yaml:"type" json:"type"`
	Billboard    string  `yaml:"billboard" json:"billboard"`
	Angle        float32 `yaml:"angle" json:"angle"`
	Count        uint32  `yaml:"count" json:"count"`
	Start        float32 `yaml:"start" json:"start"`
	Size         float32 `yaml:"size" json:"size"`
	SizeVariance float32 `yaml:"size_variance" json:"sizeVariance"`
	Tint         uint32  `yaml:"tint" json:"tint"`
	AlphaTest    float32 `yaml:"alpha_test" json:"alphaTest"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level" json:"level"`
	LogFile string `yaml:"log_file" json:"logFile"`
}

// Default returns a config describing a small three-level oak.
func Default() *Config {
	return &Config{
		Type: "oak",
		Bark: BarkConfig{
			Type:         "oak",
			TextureScale: TextureScale{X: 1, Y: 1},
		},
		Branch: BranchConfig{
			Length:         5,
			StartRadius:    0.35,
			EndRadius:      0.25,
			LengthSegments: 8,
			RadialSegments: 12,
			Twist:          0.15,
			Gnarliness:     0.2,
			MinRotation:    20,
			MaxRotation:    40,
			Children:       4,
			ChildrenConfig: &BranchConfig{
				Length:         2.5,
				StartRadius:    0.15,
				EndRadius:      0.02,
				LengthSegments: 5,
				RadialSegments: 8,
				Twist:          0.25,
				Gnarliness:     0.4,
				MinRotation:    20,
				MaxRotation:    40,
				Children:       3,
				ChildrenConfig: &BranchConfig{
					Length:         1.2,
					StartRadius:    0.05,
					EndRadius:      0,
					LengthSegments: 3,
					RadialSegments: 6,
					Twist:          0.3,
					Gnarliness:     0.6,
					MinRotation:    25,
					MaxRotation:    45,
				},
			},
		},
		Leaves: LeavesConfig{
			Type:  "oak",
			Count: 24,
			Start: 0.4,
			Size:  0.8,
		},
		Logging: LoggingConfig{Level: "info"},
	}
}

// Height returns the summed branch length down the template chain, the
// nominal height of a fully extended tree.
func (c *Config) Height() float32 {
	var h float32
	for b := &c.Branch; b != nil; b = b.ChildrenConfig {
		h += b.Length
	}
	return h
}

// DetailLevel derives a 1-5 resolution level from the trunk's segment
// counts, used by the primitive-based archetype builders.
func (c *Config) DetailLevel() int {
	d := int(c.Branch.LengthSegments*c.Branch.RadialSegments) / 20
	if d < 1 {
		d = 1
	}
	if d > 5 {
		d = 5
	}
	return d
}
