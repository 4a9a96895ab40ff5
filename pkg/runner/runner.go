package runner

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/yaklabco/lcsstr/internal/logging"
	"github.com/yaklabco/lcsstr/pkg/commonsub"
	"github.com/yaklabco/lcsstr/pkg/config"
	"github.com/yaklabco/lcsstr/pkg/fsutil"
	"github.com/yaklabco/lcsstr/pkg/suffixtree"
)

// AnalyzeFunc analyses one pair.
type AnalyzeFunc func(ctx context.Context, s1, s2 []byte, opts commonsub.Options) (*commonsub.Result, error)

// Runner orchestrates batch analysis.
type Runner struct {
	// Analyze handles one pair. Defaults to commonsub.Analyze.
	Analyze AnalyzeFunc
}

// New creates a Runner. A nil analyze uses commonsub.Analyze.
func New(analyze AnalyzeFunc) *Runner {
	if analyze == nil {
		analyze = commonsub.Analyze
	}
	return &Runner{Analyze: analyze}
}

// Run reads every pair from opts.Inputs and analyses them concurrently.
// Outcomes are returned in input order whatever the scheduling.
//
// Bad lines become per-pair errors and the run continues. An unreadable input
// or a tree invariant violation aborts the run.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.NewConfig()
	}

	var pairs []Pair
	for _, input := range opts.effectiveInputs() {
		read, err := readInput(ctx, input, opts, cfg.MaxLength)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, read...)
	}

	result := &Result{
		Pairs: make([]PairOutcome, 0, len(pairs)),
	}
	if len(pairs) == 0 {
		return result, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	jobs = min(jobs, len(pairs))

	logger := logging.FromContext(ctx)
	logger.Debug("batch start",
		logging.FieldPairs, len(pairs),
		logging.FieldJobs, jobs,
		logging.FieldSeed, cfg.Seed,
	)

	outcomes := make([]PairOutcome, len(pairs))
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(jobs)

	for i, pair := range pairs {
		outcomes[i] = PairOutcome{Source: pair.Source, Line: pair.Line, Index: i, Error: pair.Err}
		if pair.Err != nil {
			logger.Debug("skipping pair",
				logging.FieldInput, pair.Source,
				logging.FieldIndex, i,
				logging.FieldError, pair.Err,
			)
			continue
		}

		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}

			res, err := r.Analyze(groupCtx, pair.S1, pair.S2, commonsub.Options{
				Mode:      cfg.Mode,
				MinLength: cfg.MinLength,
				Source:    commonsub.NewSource(cfg.Seed + uint64(i)),
			})
			if errors.Is(err, suffixtree.ErrInvariant) {
				return fmt.Errorf("%s:%d: %w", pair.Source, pair.Line, err)
			}

			outcomes[i].Result, outcomes[i].Error = res, err
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("run cancelled: %w", err)
	}

	return NewResult(outcomes...), nil
}

func readInput(ctx context.Context, input string, opts Options, maxLength int) ([]Pair, error) {
	stdin := opts.Stdin
	if stdin == nil {
		stdin = os.Stdin
	}

	rc, err := fsutil.OpenInput(ctx, input, stdin)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	source := input
	if input == fsutil.StdinName {
		source = "stdin"
	}
	return ReadPairs(ctx, source, rc, maxLength)
}
