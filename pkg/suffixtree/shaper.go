package suffixtree

// shape resets the root and links every node into its parent's child list.
//
// Ids already index the arena, so no slot relocation is needed. Nodes are
// prepended in ascending id order, which leaves siblings in reverse creation
// order. Traversal order, and with it tie-breaking, follows from this.
func (t *Tree) shape() {
	t.nodes[rootID] = Node{Begin: 0, End: -1, Parent: None, ID: rootID, Child: None, Sibling: None}
	for id := 1; id < len(t.nodes); id++ {
		t.nodes[id].Child = None
		t.nodes[id].Sibling = None
	}

	for id := 1; id < len(t.nodes); id++ {
		node := &t.nodes[id]
		if node.ID != id || node.Parent < 0 || node.Parent >= len(t.nodes) {
			panic(violation("shape", "node %d has id %d and parent %d", id, node.ID, node.Parent))
		}

		parent := &t.nodes[node.Parent]
		node.Sibling = parent.Child
		parent.Child = id
	}
}
