package suffixtree

// None marks an absent node reference (no child, no sibling, free slot).
const None = -1

// rootID is the id of the root node.
const rootID = 0

// Node is one edge of the tree together with the node it leads to.
// Begin and End are inclusive offsets into the combined sequence.
type Node struct {
	Begin  int
	End    int
	Parent int
	ID     int

	// Child is the first child; Sibling is the next child of Parent.
	Child   int
	Sibling int

	// InS1 and InS2 record which inputs have a suffix below this node.
	InS1 bool
	InS2 bool
}

// EdgeSpan returns End-Begin. A one-symbol edge has span 0; the root has -1.
func (n *Node) EdgeSpan() int {
	return n.End - n.Begin
}

// Contains reports whether the edge label covers offset.
func (n *Node) Contains(offset int) bool {
	return n.Begin <= offset && offset <= n.End
}

// IsLeaf reports whether the node has no children.
func (n *Node) IsLeaf() bool {
	return n.Child == None
}

// IsDual reports whether suffixes of both inputs pass through the node.
func (n *Node) IsDual() bool {
	return n.InS1 && n.InS2
}
