package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Type != "oak" {
		t.Errorf("expected type oak, got %s", cfg.Type)
	}
	if cfg.Branch.Length != 5 {
		t.Errorf("expected trunk length 5, got %v", cfg.Branch.Length)
	}
	if cfg.Branch.ChildrenConfig == nil || cfg.Branch.ChildrenConfig.ChildrenConfig == nil {
		t.Fatal("default config should have three branch levels")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
	if warnings := cfg.Lint(); len(warnings) != 0 {
		t.Errorf("default config should lint clean, got %v", warnings)
	}
}

func TestParseTreeType(t *testing.T) {
	aliases := map[string]TreeType{
		"deciduous": Oak,
		"Oak":       Oak,
		"conifer":   Pine,
		"PINE":      Pine,
		"weeping":   Willow,
		"willow":    Willow,
		"tropical":  Palm,
		"palm":      Palm,
	}
	for in, want := range aliases {
		got, err := ParseTreeType(in)
		if err != nil {
			t.Errorf("ParseTreeType(%q): unexpected error %v", in, err)
			continue
		}
		if got != want {
			t.Errorf("ParseTreeType(%q): got %s, want %s", in, got, want)
		}
	}

	if _, err := ParseTreeType("cactus"); err == nil {
		t.Error("unknown archetype should be rejected")
	}
}

func TestLoadYAML(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "tree.yaml")

	yamlContent := `
type: pine
seed: 1234
bark:
  type: pine
  tint: 0x8B5A2B
branch:
  length: 6
  start_radius: 0.4
  end_radius: 0.3
  length_segments: 10
  radial_segments: 12
  twist: 0.2
  gnarliness: 0.3
  children: 3
  children_config:
    length: 2
    start_radius: 0.1
    end_radius: 0
    length_segments: 4
    radial_segments: 6
    min_rotation: 30
    max_rotation: 60
leaves:
  type: pine
  count: 40
logging:
  level: debug
`
	if err := os.WriteFile(path, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Type != "pine" {
		t.Errorf("expected type pine, got %s", cfg.Type)
	}
	if cfg.Seed == nil || *cfg.Seed != 1234 {
		t.Errorf("expected seed 1234, got %v", cfg.Seed)
	}
	if cfg.Branch.Length != 6 {
		t.Errorf("expected trunk length 6, got %v", cfg.Branch.Length)
	}
	if cfg.Branch.ChildrenConfig == nil {
		t.Fatal("expected a children_config")
	}
	if cfg.Branch.ChildrenConfig.MaxRotation != 60 {
		t.Errorf("expected child max_rotation 60, got %v", cfg.Branch.ChildrenConfig.MaxRotation)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level debug, got %s", cfg.Logging.Level)
	}

	// Unset rotation bounds default to 20/40.
	if cfg.Branch.MinRotation != 20 || cfg.Branch.MaxRotation != 40 {
		t.Errorf("expected trunk rotation defaults 20/40, got %v/%v", cfg.Branch.MinRotation, cfg.Branch.MaxRotation)
	}
	// Explicit bounds are kept.
	if cfg.Branch.ChildrenConfig.MinRotation != 30 {
		t.Errorf("explicit min_rotation overwritten: %v", cfg.Branch.ChildrenConfig.MinRotation)
	}
}

func TestLoadJSON(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "tree.json")

	jsonContent := `{
  "type": "deciduous",
  "seed": 42,
  "branch": {
    "length": 5,
    "startRadius": 0.3,
    "endRadius": 0.25,
    "lengthSegments": 4,
    "radialSegments": 8
  }
}`
	if err := os.WriteFile(path, []byte(jsonContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("failed to load json config: %v", err)
	}
	if cfg.Type != "deciduous" {
		t.Errorf("expected type deciduous, got %s", cfg.Type)
	}
	if cfg.Branch.StartRadius != 0.3 {
		t.Errorf("expected startRadius 0.3, got %v", cfg.Branch.StartRadius)
	}
	if cfg.Seed == nil || *cfg.Seed != 42 {
		t.Errorf("expected seed 42, got %v", cfg.Seed)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tmpDir := t.TempDir()

	cases := map[string]string{
		"unknown type": "type: cactus\nbranch: {length: 5, length_segments: 4}\n",
		"zero length":  "type: oak\nbranch: {length: 0, length_segments: 4}\n",
		"no segments":  "type: oak\nbranch: {length: 5, length_segments: 0}\n",
	}
	for name, content := range cases {
		path := filepath.Join(tmpDir, strings.ReplaceAll(name, " ", "_")+".yaml")
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("write: %v", err)
		}
		if _, err := Load(path); err == nil {
			t.Errorf("%s: expected a validation error", name)
		}
	}

	if _, err := Load(filepath.Join(tmpDir, "missing.yaml")); err == nil {
		t.Error("missing file should error")
	}
}

func TestLintChildrenWithoutTemplate(t *testing.T) {
	cfg := Default()
	cfg.Branch.ChildrenConfig = nil
	// Children still set to 4 from the default.
	warnings := cfg.Lint()
	if len(warnings) != 1 {
		t.Fatalf("expected 1 warning, got %d: %v", len(warnings), warnings)
	}
	if !strings.Contains(warnings[0], "no descendants") {
		t.Errorf("warning should mention missing descendants, got %q", warnings[0])
	}
}

func TestDerivedMetrics(t *testing.T) {
	cfg := Default()
	want := cfg.Branch.Length + cfg.Branch.ChildrenConfig.Length + cfg.Branch.ChildrenConfig.ChildrenConfig.Length
	if h := cfg.Height(); h != want {
		t.Errorf("Height: got %v, want %v", h, want)
	}
	if d := cfg.DetailLevel(); d < 1 || d > 5 {
		t.Errorf("DetailLevel out of range: %d", d)
	}
}
