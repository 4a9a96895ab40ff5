package cli

import (
	"context"
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/yaklabco/lcsstr/internal/configloader"
	"github.com/yaklabco/lcsstr/internal/logging"
	"github.com/yaklabco/lcsstr/pkg/commonsub"
	"github.com/yaklabco/lcsstr/pkg/config"
	"github.com/yaklabco/lcsstr/pkg/reporter"
)

// analysisFlags are the flags shared by find and batch.
type analysisFlags struct {
	random    bool
	all       bool
	minLength int
	maxLength int
	seed      uint64
	format    string
	compact   bool
}

func addAnalysisFlags(cmd *cobra.Command, flags *analysisFlags) {
	cmd.Flags().BoolVarP(&flags.random, "random", "r", false, "report only a length-weighted random common substring")
	cmd.Flags().BoolVarP(&flags.all, "all", "a", false, "report the longest, a random pick, and count/length statistics")
	cmd.Flags().IntVarP(&flags.minLength, "min-length", "n", config.DefaultMinLength,
		"shortest common substring that counts")
	cmd.Flags().IntVarP(&flags.maxLength, "max-size", "m", config.DefaultMaxLength,
		"longest string accepted from stdin")
	cmd.Flags().Uint64Var(&flags.seed, "seed", 0, "random seed (0 = draw a new seed)")
	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, table, json")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "use compact JSON output")
}

// toConfig turns the flags the user actually set into a CLI config layer.
// Flags left at their defaults stay zero so that files and environment
// variables can supply them.
func (f *analysisFlags) toConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := &config.Config{}

	switch {
	case f.random && f.all:
		return nil, fmt.Errorf("%w: --random and --all are mutually exclusive", ErrUsage)
	case f.random:
		cfg.Mode = commonsub.ModeRandom
	case f.all:
		cfg.Mode = commonsub.ModeAll
	}

	if cmd.Flags().Changed("min-length") {
		if f.minLength < 1 {
			return nil, fmt.Errorf("%w: --min-length must be at least 1, got %d", ErrUsage, f.minLength)
		}
		cfg.MinLength = f.minLength
	}

	if cmd.Flags().Changed("max-size") {
		if f.maxLength < 1 {
			return nil, fmt.Errorf("%w: --max-size must be at least 1, got %d", ErrUsage, f.maxLength)
		}
		cfg.MaxLength = f.maxLength
	}

	if cmd.Flags().Changed("seed") {
		cfg.Seed = f.seed
	}

	if cmd.Flags().Changed("format") {
		format, err := reporter.ParseFormat(f.format)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrUsage, err)
		}
		cfg.Format = config.OutputFormat(format)
	}

	return cfg, nil
}

// commandContext returns the command's context with the default logger
// attached.
func commandContext(cmd *cobra.Command) context.Context {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return logging.WithLogger(ctx, logging.Default())
}

// loadConfig resolves the layered configuration with cliCfg on top.
func loadConfig(ctx context.Context, cmd *cobra.Command, cliCfg *config.Config) (*config.Config, error) {
	logger := logging.FromContext(ctx)

	// Get the explicit config path from the root command's persistent flag.
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    cliCfg,
	})
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}

	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration from", "files", loadResult.LoadedFrom)
	}

	cfg := loadResult.Config
	if color, err := cmd.Flags().GetString("color"); err == nil {
		cfg.Color = color
	}

	logger.Debug("configuration loaded",
		logging.FieldMode, cfg.Mode,
		logging.FieldMinLength, cfg.MinLength,
		logging.FieldMaxLength, cfg.MaxLength,
		logging.FieldFormat, cfg.Format,
	)

	return cfg, nil
}

// resolveSeed draws a seed when none is configured. The seed is logged so
// that a run can be replayed with --seed.
func resolveSeed(ctx context.Context, cfg *config.Config) {
	for cfg.Seed == 0 {
		cfg.Seed = rand.Uint64()
	}
	logging.FromContext(ctx).Debug("random seed", logging.FieldSeed, cfg.Seed)
}

// reportOptions carries the per-command reporter settings not held in
// config.Config.
type reportOptions struct {
	compact     bool
	showSummary bool
	runID       string
	elapsed     time.Duration
}

func newReporter(cmd *cobra.Command, cfg *config.Config, opts reportOptions) (reporter.Reporter, error) {
	rep, err := reporter.New(reporter.Options{
		Writer:      cmd.OutOrStdout(),
		ErrorWriter: cmd.ErrOrStderr(),
		Format:      reporter.Format(cfg.Format),
		Color:       cfg.Color,
		ShowSource:  cfg.ShowSource,
		ShowSummary: opts.showSummary,
		Compact:     opts.compact,
		Mode:        cfg.Mode,
		MinLength:   cfg.MinLength,
		Seed:        cfg.Seed,
		RunID:       opts.runID,
		Elapsed:     opts.elapsed,
	})
	if err != nil {
		return nil, fmt.Errorf("create reporter: %w", err)
	}
	return rep, nil
}
