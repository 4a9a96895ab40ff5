package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/lcsstr/pkg/commonsub"
	"github.com/yaklabco/lcsstr/pkg/runner"
)

// stdinSource names a pair read interactively from stdin.
const stdinSource = "stdin"

func newFindCommand() *cobra.Command {
	flags := &analysisFlags{}

	cmd := &cobra.Command{
		Use:   "find [str1 str2]",
		Short: "Find common substrings of two strings",
		Long:  findLongDescription,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 0 && len(args) != 2 {
				return fmt.Errorf("%w: expected 0 or 2 strings, got %d", ErrUsage, len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFind(cmd, args, flags)
		},
	}

	addAnalysisFlags(cmd, flags)

	return cmd
}

const findLongDescription = `Find common substrings of two strings.

With no arguments the two strings are read from stdin as whitespace-separated
tokens, each at most --max-size bytes.

Text output is tab-separated:
  default     pos1 pos2 len
  --random    rpos1 rpos2 rlen
  --all       pos1 pos2 len / rpos1 rpos2 rlen / count sumLen

Examples:
  lcsstr find abcde xbcdy            # 1	1	3
  lcsstr find -n 4 abcde xbcdy       # -1	-1	0
  lcsstr find --all --seed 7 banana ananas
  printf 'abc\nbcd\n' | lcsstr find --format json`

func runFind(cmd *cobra.Command, args []string, flags *analysisFlags) error {
	ctx := commandContext(cmd)

	cliCfg, err := flags.toConfig(cmd)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(ctx, cmd, cliCfg)
	if err != nil {
		return err
	}

	var s1, s2 []byte
	var source string
	if len(args) == 2 {
		s1, s2 = []byte(args[0]), []byte(args[1])
	} else {
		tokens, err := readStrings(cmd.InOrStdin(), cmd.ErrOrStderr(), cfg.MaxLength)
		if err != nil {
			return err
		}
		s1, s2 = tokens[0], tokens[1]
		source = stdinSource
	}

	resolveSeed(ctx, cfg)

	res, err := commonsub.Analyze(ctx, s1, s2, commonsub.Options{
		Mode:      cfg.Mode,
		MinLength: cfg.MinLength,
		Source:    commonsub.NewSource(cfg.Seed),
	})
	if err != nil {
		return fmt.Errorf("analyze: %w", err)
	}

	rep, err := newReporter(cmd, cfg, reportOptions{compact: flags.compact})
	if err != nil {
		return err
	}

	result := runner.NewResult(runner.PairOutcome{Source: source, Result: res})
	if _, err := rep.Report(ctx, result); err != nil {
		return fmt.Errorf("report results: %w", err)
	}

	return nil
}
