package runner

import "github.com/yaklabco/lcsstr/pkg/commonsub"

// PairOutcome is the result of one pair.
type PairOutcome struct {
	// Source and Line locate the pair in its input.
	Source string
	Line   int

	// Index is the 0-based position of the pair in the whole run. The pair's
	// random source is seeded with the run seed plus Index.
	Index int

	// Result is nil when Error is set.
	Result *commonsub.Result

	// Error is set if the pair could not be analysed.
	Error error
}

// Matched reports whether the pair produced a qualifying common substring.
func (o PairOutcome) Matched() bool {
	if o.Result == nil {
		return false
	}
	if o.Result.Longest != nil {
		return o.Result.Longest.Found()
	}
	return o.Result.Stats != nil && o.Result.Stats.Count > 0
}

// Stats captures aggregate information about a run.
type Stats struct {
	// PairsRead is the number of non-comment lines read.
	PairsRead int

	// PairsAnalyzed is the number of pairs that were analysed.
	PairsAnalyzed int

	// PairsErrored is the number of pairs that could not be analysed.
	PairsErrored int

	// PairsMatched is the number of pairs with a qualifying match.
	PairsMatched int

	// LongestLength is the greatest longest-match length over all pairs.
	LongestLength int
}

// Result is the overall runner result.
type Result struct {
	// Pairs holds one outcome per pair, in input order.
	Pairs []PairOutcome

	// Stats contains aggregate statistics for the run.
	Stats Stats
}

// NewResult builds a Result from outcomes already in input order.
func NewResult(outcomes ...PairOutcome) *Result {
	result := &Result{Pairs: make([]PairOutcome, 0, len(outcomes))}
	for _, outcome := range outcomes {
		result.accumulate(outcome)
	}
	return result
}

// HasErrors reports whether any pair failed.
func (r *Result) HasErrors() bool {
	if r == nil {
		return false
	}
	return r.Stats.PairsErrored > 0
}

// accumulate updates the result with a pair outcome.
func (r *Result) accumulate(outcome PairOutcome) {
	r.Pairs = append(r.Pairs, outcome)
	r.Stats.PairsRead++

	if outcome.Error != nil {
		r.Stats.PairsErrored++
		return
	}

	r.Stats.PairsAnalyzed++
	if outcome.Matched() {
		r.Stats.PairsMatched++
	}
	if outcome.Result != nil && outcome.Result.Longest != nil {
		r.Stats.LongestLength = max(r.Stats.LongestLength, outcome.Result.Longest.Length)
	}
}
