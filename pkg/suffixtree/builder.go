package suffixtree

// activePoint is the construction cursor. The unresolved tail of the processed
// prefix runs from node along symbols [begin, end). The symbol at end is the
// one being added in the current phase.
type activePoint struct {
	node  int
	begin int
	end   int
}

func (ap *activePoint) span() int {
	return ap.end - ap.begin
}

// builder is one construction session. Nothing in it is shared with other
// sessions.
type builder struct {
	seq   *Sequence
	store *NodeStore
	links suffixLinks
}

func newBuilder(seq *Sequence) *builder {
	return &builder{
		seq:   seq,
		store: NewNodeStore(seq),
		links: newSuffixLinks(2*seq.Len() + 1),
	}
}

// build runs one extension phase per symbol of the sequence.
func (b *builder) build() *NodeStore {
	ap := activePoint{node: rootID}
	for ap.end = 0; ap.end < b.seq.Len(); ap.end++ {
		b.canonize(&ap)
		b.update(&ap)
	}
	return b.store
}

// canonize moves ap down every edge that the active span consumes entirely.
func (b *builder) canonize(ap *activePoint) {
	for ap.span() > 0 {
		child := b.store.Lookup(ap.node, b.seq.At(ap.begin))
		if child == None {
			return
		}

		edge := b.store.Node(child).EdgeSpan()
		if edge > ap.span()-1 {
			return
		}

		ap.node = child
		ap.begin += edge + 1
	}
}

// splitEdge makes the implicit point ap explicit and returns the new node.
func (b *builder) splitEdge(ap *activePoint) int {
	span := ap.span()
	if span < 1 {
		panic(violation("split edge", "active point (%d, %d, %d) is not inside an edge", ap.node, ap.begin, ap.end))
	}

	child := b.store.Lookup(ap.node, b.seq.At(ap.begin))
	if child == None {
		panic(violation("split edge", "node %d has no edge starting with symbol %d", ap.node, b.seq.At(ap.begin)))
	}

	node := b.store.Node(child)
	if node.EdgeSpan() < span {
		panic(violation("split edge", "edge of node %d is shorter than span %d", child, span))
	}
	if b.seq.At(node.Begin+span) == b.seq.At(ap.end) {
		panic(violation("split edge", "node %d already continues with symbol %d", child, b.seq.At(ap.end)))
	}

	return b.store.Split(child, span)
}

func (b *builder) followSuffixLink(ap *activePoint) {
	if ap.node != rootID {
		ap.node = b.links.follow(ap.node)
	} else {
		ap.begin++
	}
	b.canonize(ap)
}

// update adds the symbol at ap.end to every suffix that still lacks it.
func (b *builder) update(ap *activePoint) {
	leafEnd := b.seq.Len() - 1
	lastParent := None

	for {
		sym := b.seq.At(ap.end)
		span := ap.span()
		child := b.store.Lookup(ap.node, b.seq.At(ap.begin))

		if child == None {
			if span != 0 {
				panic(violation("update", "no edge under node %d at implicit point with span %d", ap.node, span))
			}

			b.store.Allocate(ap.node, ap.end, leafEnd)
			if lastParent > rootID {
				b.links.set(lastParent, ap.node)
			}
			lastParent = ap.node

			b.followSuffixLink(ap)
			if ap.span() < 0 {
				return
			}
			continue
		}

		node := b.store.Node(child)
		if node.EdgeSpan() < span {
			panic(violation("update", "active span %d overruns edge of node %d", span, child))
		}

		if b.seq.At(node.Begin+span) == sym {
			// The suffix is already present; so are all shorter ones.
			if lastParent > rootID {
				b.links.set(lastParent, node.Parent)
			}
			return
		}

		mid := b.splitEdge(ap)
		b.store.Allocate(mid, ap.end, leafEnd)
		if lastParent > rootID {
			b.links.set(lastParent, mid)
		}
		lastParent = mid

		b.followSuffixLink(ap)
	}
}
