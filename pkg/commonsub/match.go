// Package commonsub finds common substrings of two byte sequences using a
// generalized suffix tree: the longest one, a length-weighted random one, and
// aggregate statistics over all qualifying ones.
package commonsub

import (
	"fmt"

	"github.com/yaklabco/lcsstr/pkg/suffixtree"
)

// Match locates a common substring. Pos1 and Pos2 are 0-based offsets into
// the first and second input. A missing match is {-1, -1, 0}.
type Match struct {
	Pos1   int `json:"pos1"`
	Pos2   int `json:"pos2"`
	Length int `json:"length"`
}

// NoMatch returns the value reported when no common substring qualifies.
func NoMatch() Match {
	return Match{Pos1: -1, Pos2: -1, Length: 0}
}

// Found reports whether m locates a substring.
func (m Match) Found() bool {
	return m.Length > 0
}

// String formats m as the tab-separated output line "pos1 pos2 len".
func (m Match) String() string {
	return fmt.Sprintf("%d\t%d\t%d", m.Pos1, m.Pos2, m.Length)
}

// Stats aggregates the qualifying branch points of a tree.
//
// Count is the number of branch points, not of distinct substrings: a
// substring is counted once per point where the two inputs diverge after it.
// Both values can change when the inputs are swapped.
type Stats struct {
	Count     int   `json:"count"`
	SumLength int64 `json:"sumLength"`
}

// String formats s as the tab-separated output line "count sumLen".
func (s Stats) String() string {
	return fmt.Sprintf("%d\t%d", s.Count, s.SumLength)
}

// branchPoint returns the common substring ending at node id, if any.
//
// The node must hold suffixes of both inputs and have a child leading only
// into s2. t1 is the edge start of the last child holding an s1 suffix and
// t2 that of the last child holding only s2 suffixes; the substring occurs
// right before each of them.
func branchPoint(tree *suffixtree.Tree, id, depth int) (Match, bool) {
	node := tree.Node(id)
	if !node.IsDual() {
		return Match{}, false
	}

	sep := tree.Sequence().SeparatorOffset()
	t1, t2 := suffixtree.None, suffixtree.None
	for child := range tree.Children(id) {
		c := tree.Node(child)
		if c.InS1 {
			t1 = c.Begin
		} else if c.InS2 {
			t2 = c.Begin
		}
	}

	if t1 == suffixtree.None || t1 > sep || t2 <= sep {
		return Match{}, false
	}

	length := tree.PathLength(id, depth)
	if length < 1 {
		return Match{}, false
	}

	return Match{
		Pos1:   t1 - length,
		Pos2:   tree.Sequence().S2Offset(t2 - length),
		Length: length,
	}, true
}

// qualifyingFloor returns the smallest length that counts for minLength.
func qualifyingFloor(minLength int) int {
	return max(minLength, 1)
}
