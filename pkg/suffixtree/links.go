package suffixtree

// suffixLinks maps an internal node id to its suffix-link target.
// Entries are None until wired.
type suffixLinks []int

func newSuffixLinks(size int) suffixLinks {
	links := make(suffixLinks, size)
	for i := range links {
		links[i] = None
	}
	return links
}

// set wires from -> to. A link, once set, never changes target.
func (l suffixLinks) set(from, to int) {
	if current := l[from]; current != None && current != to {
		panic(violation("suffix link", "node %d already links to %d, not %d", from, current, to))
	}
	l[from] = to
}

// follow returns the link target of from.
func (l suffixLinks) follow(from int) int {
	to := l[from]
	if to == None {
		panic(violation("suffix link", "node %d has no suffix link", from))
	}
	return to
}
