package commonsub

import (
	"math/rand/v2"

	"github.com/yaklabco/lcsstr/pkg/suffixtree"
)

// Source supplies uniform values in [0, 1). *rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

// NewSource returns a PCG-backed source for seed.
func NewSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Sum counts the qualifying branch points and sums their lengths.
func Sum(tree *suffixtree.Tree, minLength int) Stats {
	floor := qualifyingFloor(minLength)

	var stats Stats
	tree.Walk(func(id, depth int) bool {
		if match, ok := branchPoint(tree, id, depth); ok && match.Length >= floor {
			stats.Count++
			stats.SumLength += int64(match.Length)
		}
		return true
	})

	return stats
}

// Choose picks one qualifying branch point with probability proportional to
// its length. total must be Sum(tree, minLength).SumLength.
//
// A single value r is drawn from src before the walk. The first branch point
// at which the running length sum divided by total exceeds r is returned and
// the walk stops there.
func Choose(tree *suffixtree.Tree, minLength int, total int64, src Source) Match {
	if total <= 0 {
		return NoMatch()
	}

	floor := qualifyingFloor(minLength)
	threshold := src.Float64()
	chosen := NoMatch()

	var cumulative int64
	tree.Walk(func(id, depth int) bool {
		match, ok := branchPoint(tree, id, depth)
		if !ok || match.Length < floor {
			return true
		}

		cumulative += int64(match.Length)
		if float64(cumulative)/float64(total) > threshold {
			chosen = match
			return false
		}
		return true
	})

	return chosen
}
