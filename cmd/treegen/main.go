// Package main is the entry point for the treegen CLI.
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/fernseed/treegen/internal/config"
	"github.com/fernseed/treegen/internal/export"
	"github.com/fernseed/treegen/internal/logger"
	"github.com/fernseed/treegen/internal/tree"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration; without a config file argument the built-in
	// default oak is generated.
	cfg := config.Default()
	if path := flag.Arg(0); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	config.ApplyFlags(cfg)

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== treegen ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	for _, warning := range cfg.Lint() {
		logger.Warn(warning)
	}

	builder := export.NewBuilder()
	gen := tree.New(builder, tree.Options{
		Seed:   cfg.Seed,
		Trunk:  tree.BarkMaterial(cfg.Bark),
		Leaves: tree.LeafMaterial(cfg.Leaves),
		Log:    logger.Log,
	})

	var err error
	if config.ArchetypeMode() {
		_, err = gen.GenerateArchetype(cfg)
	} else {
		_, err = gen.Generate(&cfg.Branch)
	}
	if err != nil {
		logger.Error("generation failed", zap.Error(err))
		os.Exit(1)
	}

	out := config.Output()
	if err := builder.Save(out); err != nil {
		logger.Error("failed to write scene", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("tree written",
		zap.String("file", out),
		zap.String("type", cfg.Type),
		zap.Float32("height", cfg.Height()),
		zap.Int("nodes", builder.NodeCount()),
		zap.Int("meshes", builder.MeshCount()))
}
