package suffixtree

// symbolBits is the width reserved for a symbol in the hash key.
const symbolBits = 9

// NodeStore is an arena of nodes addressed by id, plus an open-addressed index
// from (parent id, first label symbol) to child id.
//
// The index has 2L+1 slots for a sequence of length L, while a tree over L
// symbols never holds more than 2L-1 non-root nodes, so a free slot always
// exists. The index is never resized. The root lives in the arena only.
type NodeStore struct {
	seq   *Sequence
	nodes []Node
	slots []int
}

// NewNodeStore creates a store holding only the root.
func NewNodeStore(seq *Sequence) *NodeStore {
	slots := make([]int, 2*seq.Len()+1)
	for i := range slots {
		slots[i] = None
	}

	nodes := make([]Node, 1, 2*seq.Len())
	nodes[rootID] = Node{Begin: 0, End: -1, Parent: None, ID: rootID, Child: None, Sibling: None}

	return &NodeStore{seq: seq, nodes: nodes, slots: slots}
}

// Len returns the number of nodes, root included.
func (s *NodeStore) Len() int {
	return len(s.nodes)
}

// Node returns the node with the given id. The pointer is invalidated by the
// next Allocate or Split.
func (s *NodeStore) Node(id int) *Node {
	return &s.nodes[id]
}

// Lookup returns the child of parent whose label starts with sym, or None.
func (s *NodeStore) Lookup(parent int, sym int32) int {
	return s.slots[s.probe(parent, sym)]
}

// Allocate creates a node labelled [begin, end] under parent and returns its
// id. Ids are handed out sequentially.
func (s *NodeStore) Allocate(parent, begin, end int) int {
	sym := s.seq.At(begin)
	slot := s.probe(parent, sym)
	if s.slots[slot] != None {
		panic(violation("allocate", "node %d already has a child starting with symbol %d", parent, sym))
	}

	id := len(s.nodes)
	s.nodes = append(s.nodes, Node{
		Begin:   begin,
		End:     end,
		Parent:  parent,
		ID:      id,
		Child:   None,
		Sibling: None,
	})
	s.slots[slot] = id

	return id
}

// Split cuts the edge leading to child after span symbols and returns the id
// of the new internal node.
//
// The new node takes over child's index slot, since it has the same parent
// and the same first symbol. Child keeps its id and becomes the tail: its
// label loses the first span symbols and it is re-indexed under the new node.
func (s *NodeStore) Split(child, span int) int {
	old := s.nodes[child]
	if span < 1 || span > old.EdgeSpan() {
		panic(violation("split", "span %d outside edge of node %d with span %d", span, child, old.EdgeSpan()))
	}

	slot := s.probe(old.Parent, s.seq.At(old.Begin))
	if s.slots[slot] != child {
		panic(violation("split", "node %d is not indexed under its parent %d", child, old.Parent))
	}

	mid := len(s.nodes)
	s.nodes = append(s.nodes, Node{
		Begin:   old.Begin,
		End:     old.Begin + span - 1,
		Parent:  old.Parent,
		ID:      mid,
		Child:   None,
		Sibling: None,
	})
	s.slots[slot] = mid

	tail := &s.nodes[child]
	tail.Begin += span
	tail.Parent = mid

	tailSlot := s.probe(mid, s.seq.At(tail.Begin))
	if s.slots[tailSlot] != None {
		panic(violation("split", "new node %d already has a child starting with symbol %d", mid, s.seq.At(tail.Begin)))
	}
	s.slots[tailSlot] = child

	return mid
}

// probe walks the probe sequence for (parent, sym) and returns the slot of the
// matching child or the first free slot.
func (s *NodeStore) probe(parent int, sym int32) int {
	size := len(s.slots)
	slot := s.hash(parent, sym)

	for range size {
		id := s.slots[slot]
		if id == None {
			return slot
		}

		node := &s.nodes[id]
		if node.Parent == parent && s.seq.At(node.Begin) == sym {
			return slot
		}

		slot++
		if slot == size {
			slot = 0
		}
	}

	panic(violation("probe", "node index exhausted after %d slots", size))
}

func (s *NodeStore) hash(parent int, sym int32) int {
	key := uint64(parent)<<symbolBits | uint64(sym)
	return int(key % uint64(len(s.slots)))
}
