package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/yaklabco/lcsstr/pkg/commonsub"
	"github.com/yaklabco/lcsstr/pkg/runner"
)

// jsonVersion is the version of the JSON output schema.
const jsonVersion = "1.0.0"

// JSONOutput is the top-level JSON structure.
type JSONOutput struct {
	Version   string         `json:"version"`
	RunID     string         `json:"runId"`
	Mode      commonsub.Mode `json:"mode"`
	MinLength int            `json:"minLength"`
	Seed      uint64         `json:"seed"`
	Pairs     []JSONPair     `json:"pairs"`
	Summary   JSONSummary    `json:"summary"`
}

// JSONPair represents a single pair's results.
type JSONPair struct {
	Source  string           `json:"source,omitempty"`
	Line    int              `json:"line,omitempty"`
	Longest *commonsub.Match `json:"longest,omitempty"`
	Random  *commonsub.Match `json:"random,omitempty"`
	Stats   *commonsub.Stats `json:"stats,omitempty"`
	Error   string           `json:"error,omitempty"`
}

// JSONSummary contains aggregate statistics.
type JSONSummary struct {
	PairsRead     int `json:"pairsRead"`
	PairsAnalyzed int `json:"pairsAnalyzed"`
	PairsErrored  int `json:"pairsErrored"`
	PairsMatched  int `json:"pairsMatched"`
	LongestLength int `json:"longestLength"`
}

// JSONReporter formats results as JSON.
type JSONReporter struct {
	opts Options
	bw   *bufio.Writer
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *JSONReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	output := r.buildOutput(result)

	encoder := json.NewEncoder(r.bw)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}

	if err := encoder.Encode(output); err != nil {
		return 0, fmt.Errorf("encode JSON: %w", err)
	}

	return output.Summary.PairsMatched, nil
}

func (r *JSONReporter) buildOutput(result *runner.Result) *JSONOutput {
	runID := r.opts.RunID
	if runID == "" {
		runID = uuid.NewString()
	}

	mode := r.opts.Mode
	if mode == "" {
		mode = commonsub.ModeLongest
	}

	output := &JSONOutput{
		Version:   jsonVersion,
		RunID:     runID,
		Mode:      mode,
		MinLength: r.opts.MinLength,
		Seed:      r.opts.Seed,
		Pairs:     make([]JSONPair, 0),
	}

	if result == nil {
		return output
	}

	output.Pairs = make([]JSONPair, 0, len(result.Pairs))
	for _, pair := range result.Pairs {
		jsonPair := JSONPair{
			Source: pair.Source,
			Line:   pair.Line,
		}

		if pair.Error != nil {
			jsonPair.Error = pair.Error.Error()
		} else if pair.Result != nil {
			jsonPair.Longest = pair.Result.Longest
			jsonPair.Random = pair.Result.Random
			jsonPair.Stats = pair.Result.Stats
		}

		output.Pairs = append(output.Pairs, jsonPair)
	}

	output.Summary = JSONSummary{
		PairsRead:     result.Stats.PairsRead,
		PairsAnalyzed: result.Stats.PairsAnalyzed,
		PairsErrored:  result.Stats.PairsErrored,
		PairsMatched:  result.Stats.PairsMatched,
		LongestLength: result.Stats.LongestLength,
	}

	return output
}
