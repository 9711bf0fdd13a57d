package config

import "flag"

var (
	flagOutput    = flag.String("o", "tree.glb", "Output scene file (.glb or .gltf)")
	flagSeed      = flag.Uint64("seed", 0, "Override the config seed")
	flagArchetype = flag.Bool("archetype", false, "Build the simple primitive-based archetype instead of the full branching tree")
	flagDebug     = flag.Bool("debug", false, "Enable debug logging")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// Output returns the output scene path.
func Output() string {
	return *flagOutput
}

// SeedOverride returns the seed given via -seed, or nil when the flag
// was not set.
func SeedOverride() *uint64 {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			set = true
		}
	})
	if !set {
		return nil
	}
	s := *flagSeed
	return &s
}

// ArchetypeMode reports whether -archetype was requested.
func ArchetypeMode() bool {
	return *flagArchetype
}

// ApplyFlags applies CLI flag overrides to a loaded config.
func ApplyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if s := SeedOverride(); s != nil {
		cfg.Seed = s
	}
}
