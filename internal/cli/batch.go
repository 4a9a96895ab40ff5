package cli

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/yaklabco/lcsstr/internal/logging"
	"github.com/yaklabco/lcsstr/pkg/runner"
)

type batchFlags struct {
	analysisFlags

	jobs       int
	showSource bool
	summary    bool
}

func newBatchCommand() *cobra.Command {
	flags := &batchFlags{}

	cmd := &cobra.Command{
		Use:   "batch [files...]",
		Short: "Analyse many string pairs concurrently",
		Long:  batchLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(cmd, args, flags)
		},
	}

	addAnalysisFlags(cmd, &flags.analysisFlags)
	cmd.Flags().IntVarP(&flags.jobs, "jobs", "j", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().BoolVar(&flags.showSource, "show-source", false, "precede each result with its file and line")
	cmd.Flags().BoolVar(&flags.summary, "summary", false, "print run statistics")

	return cmd
}

const batchLongDescription = `Analyse many string pairs concurrently.

Each non-blank line not starting with "#" holds two whitespace-separated
strings. Pairs are read from the given files, or from stdin when no file or
"-" is given. Results are printed in input order.

Pair i of a run uses the random seed seed+i, so a run with a fixed --seed
prints the same output whatever --jobs is.

Examples:
  lcsstr batch pairs.txt
  lcsstr batch --all --seed 42 --jobs 8 a.txt b.txt
  cat pairs.txt | lcsstr batch --format table --summary`

func runBatch(cmd *cobra.Command, args []string, flags *batchFlags) error {
	ctx := commandContext(cmd)
	logger := logging.FromContext(ctx)

	cliCfg, err := flags.toConfig(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("jobs") {
		if flags.jobs < 0 {
			return fmt.Errorf("%w: --jobs must not be negative, got %d", ErrUsage, flags.jobs)
		}
		cliCfg.Jobs = flags.jobs
	}
	cliCfg.ShowSource = flags.showSource

	cfg, err := loadConfig(ctx, cmd, cliCfg)
	if err != nil {
		return err
	}

	resolveSeed(ctx, cfg)

	runID := uuid.NewString()
	logger.Debug("starting batch run",
		logging.FieldRunID, runID,
		logging.FieldInput, args,
		logging.FieldJobs, cfg.Jobs,
	)

	start := time.Now()
	result, err := runner.New(nil).Run(ctx, runner.Options{
		Inputs: args,
		Stdin:  cmd.InOrStdin(),
		Jobs:   cfg.Jobs,
		Config: cfg,
	})
	if err != nil {
		return fmt.Errorf("batch run: %w", err)
	}
	elapsed := time.Since(start)

	logger.Debug("batch run complete",
		logging.FieldRunID, runID,
		logging.FieldPairs, result.Stats.PairsRead,
		logging.FieldFailed, result.Stats.PairsErrored,
		logging.FieldDuration, elapsed,
	)

	rep, err := newReporter(cmd, cfg, reportOptions{
		compact:     flags.compact,
		showSummary: flags.summary,
		runID:       runID,
		elapsed:     elapsed,
	})
	if err != nil {
		return err
	}

	if _, err := rep.Report(ctx, result); err != nil {
		return fmt.Errorf("report results: %w", err)
	}

	if result.HasErrors() {
		return ErrPairsFailed
	}

	return nil
}
