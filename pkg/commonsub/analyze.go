package commonsub

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/yaklabco/lcsstr/internal/logging"
	"github.com/yaklabco/lcsstr/pkg/suffixtree"
)

// Mode selects what Analyze computes.
type Mode string

const (
	// ModeLongest reports the longest common substring.
	ModeLongest Mode = "longest"

	// ModeRandom reports one length-weighted random common substring and the
	// statistics it was drawn from.
	ModeRandom Mode = "random"

	// ModeAll reports the longest, a random pick and the statistics.
	ModeAll Mode = "all"
)

// ErrInvalidMode is returned for an unknown mode name.
var ErrInvalidMode = errors.New("invalid mode")

// IsValid reports whether m is a known mode.
func (m Mode) IsValid() bool {
	switch m {
	case ModeLongest, ModeRandom, ModeAll:
		return true
	default:
		return false
	}
}

// ParseMode converts a mode name. Matching ignores case.
func ParseMode(s string) (Mode, error) {
	mode := Mode(strings.ToLower(strings.TrimSpace(s)))
	if !mode.IsValid() {
		return "", fmt.Errorf("%w: %q (valid: longest, random, all)", ErrInvalidMode, s)
	}
	return mode, nil
}

// Options configures one analysis.
type Options struct {
	// Mode defaults to ModeLongest.
	Mode Mode

	// MinLength is the shortest substring that counts. Values below 1 act as 1.
	MinLength int

	// Source drives the random pick. Required for ModeRandom and ModeAll.
	Source Source
}

// Result holds everything one analysis produced. Fields not requested by the
// mode are left nil.
type Result struct {
	Mode    Mode   `json:"mode"`
	Len1    int    `json:"len1"`
	Len2    int    `json:"len2"`
	Nodes   int    `json:"nodes"`
	Longest *Match `json:"longest,omitempty"`
	Random  *Match `json:"random,omitempty"`
	Stats   *Stats `json:"stats,omitempty"`
}

// ErrNoSource is returned when a random pick is requested without a source.
var ErrNoSource = errors.New("random mode requires a source")

// Analyze builds the suffix tree for s1 and s2 and evaluates it per opts.
//
// Each call owns its tree, so Analyze is safe to call concurrently. A
// structural defect in the tree is returned as an error wrapping
// suffixtree.ErrInvariant.
func Analyze(ctx context.Context, s1, s2 []byte, opts Options) (result *Result, err error) {
	if opts.Mode == "" {
		opts.Mode = ModeLongest
	}
	if !opts.Mode.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidMode, opts.Mode)
	}
	if opts.Mode != ModeLongest && opts.Source == nil {
		return nil, ErrNoSource
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	defer func() {
		if r := recover(); r != nil {
			var invariant *suffixtree.InvariantError
			if e, ok := r.(error); ok && errors.As(e, &invariant) {
				result, err = nil, fmt.Errorf("analyze: %w", invariant)
				return
			}
			panic(r)
		}
	}()

	logger := logging.FromContext(ctx)
	start := time.Now()

	tree := suffixtree.Build(s1, s2)
	result = &Result{
		Mode:  opts.Mode,
		Len1:  len(s1),
		Len2:  len(s2),
		Nodes: tree.Len(),
	}

	if opts.Mode == ModeLongest || opts.Mode == ModeAll {
		longest := Longest(tree, opts.MinLength)
		result.Longest = &longest
	}

	if opts.Mode == ModeRandom || opts.Mode == ModeAll {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		stats := Sum(tree, opts.MinLength)
		random := Choose(tree, opts.MinLength, stats.SumLength, opts.Source)
		result.Stats = &stats
		result.Random = &random
	}

	fields := []any{
		logging.FieldMode, opts.Mode,
		logging.FieldLen1, len(s1),
		logging.FieldLen2, len(s2),
		logging.FieldSequenceLength, tree.Sequence().Len(),
		logging.FieldNodes, tree.Len(),
	}
	if result.Longest != nil {
		fields = append(fields, logging.FieldLength, result.Longest.Length)
	}
	if result.Stats != nil {
		fields = append(fields,
			logging.FieldCount, result.Stats.Count,
			logging.FieldSumLength, result.Stats.SumLength,
		)
	}
	fields = append(fields, logging.FieldDuration, time.Since(start))
	logger.Debug("analysis complete", fields...)

	return result, nil
}
