// Package suffixtree builds a generalized suffix tree over two byte sequences.
//
// The tree is built online over s1 + Separator + s2 + Terminator, then
// shaped into first-child/next-sibling lists and marked with which input each
// subtree belongs to. Construction is amortized linear in the combined length.
//
// Structural defects panic with *InvariantError. Callers that want an error
// value instead recover that type at their API boundary.
package suffixtree

import "iter"

// Tree is a built, shaped and marked generalized suffix tree.
type Tree struct {
	seq   *Sequence
	nodes []Node
}

// Build constructs the tree for s1 and s2. Either input may be empty.
func Build(s1, s2 []byte) *Tree {
	seq := NewSequence(s1, s2)
	store := newBuilder(seq).build()

	tree := &Tree{seq: seq, nodes: store.nodes}
	tree.shape()
	tree.mark()

	return tree
}

// Sequence returns the combined sequence the tree indexes.
func (t *Tree) Sequence() *Sequence {
	return t.seq
}

// Len returns the number of nodes, root included.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Root returns the root id.
func (t *Tree) Root() int {
	return rootID
}

// Node returns the node with the given id.
func (t *Tree) Node(id int) *Node {
	return &t.nodes[id]
}

// Children yields the children of id in sibling order.
func (t *Tree) Children(id int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for child := t.nodes[id].Child; child != None; child = t.nodes[child].Sibling {
			if !yield(child) {
				return
			}
		}
	}
}

// PathLength returns the length of the string spelled from the root to the end
// of id's edge, given the depth at which the edge starts.
func (t *Tree) PathLength(id, depth int) int {
	return depth + t.nodes[id].EdgeSpan() + 1
}

type walkFrame struct {
	id    int
	depth int
	next  int
}

// Walk visits every node in post-order, children in sibling order. depth is
// the string depth at which the node's edge starts. The walk stops as soon as
// visit returns false.
// The walk is iterative; depth is bounded by the heap, not the goroutine stack.
func (t *Tree) Walk(visit func(id, depth int) bool) {
	stack := []walkFrame{{id: rootID, depth: 0, next: t.nodes[rootID].Child}}

	for len(stack) > 0 {
		top := len(stack) - 1
		frame := stack[top]

		if frame.next != None {
			child := frame.next
			stack[top].next = t.nodes[child].Sibling
			stack = append(stack, walkFrame{
				id:    child,
				depth: t.PathLength(frame.id, frame.depth),
				next:  t.nodes[child].Child,
			})
			continue
		}

		stack = stack[:top]
		if !visit(frame.id, frame.depth) {
			return
		}
	}
}
