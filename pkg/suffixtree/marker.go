package suffixtree

// mark labels every node with the inputs whose suffixes pass through it.
//
// A leaf whose edge covers the separator is a suffix of s1 (all leaves run to
// the terminator, so s1 leaves always cross the separator). Any other leaf ends
// at the terminator and is a suffix of s2. Internal nodes take the union of
// their children.
func (t *Tree) mark() {
	sep := t.seq.SeparatorOffset()
	term := t.seq.TerminatorOffset()

	t.Walk(func(id, _ int) bool {
		node := &t.nodes[id]
		node.InS1, node.InS2 = false, false

		switch {
		case node.EdgeSpan() >= 0 && node.Contains(sep):
			if !node.IsLeaf() {
				panic(violation("mark", "node %d spans the separator but has children", id))
			}
			node.InS1 = true
		case node.EdgeSpan() >= 0 && node.End == term:
			if !node.IsLeaf() {
				panic(violation("mark", "node %d ends at the terminator but has children", id))
			}
			node.InS2 = true
		default:
			for child := range t.Children(id) {
				node.InS1 = node.InS1 || t.nodes[child].InS1
				node.InS2 = node.InS2 || t.nodes[child].InS2
			}
		}

		if !node.InS1 && !node.InS2 {
			panic(violation("mark", "node %d belongs to neither input", id))
		}
		return true
	})
}
