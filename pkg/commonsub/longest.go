package commonsub

import "github.com/yaklabco/lcsstr/pkg/suffixtree"

// Longest returns the longest common substring of the tree's inputs.
//
// Ties go to the first maximum met in post-order. When the longest length is
// below minLength the result is NoMatch().
func Longest(tree *suffixtree.Tree, minLength int) Match {
	best := NoMatch()

	tree.Walk(func(id, depth int) bool {
		if match, ok := branchPoint(tree, id, depth); ok && match.Length > best.Length {
			best = match
		}
		return true
	})

	if best.Length < qualifyingFloor(minLength) {
		return NoMatch()
	}
	return best
}
