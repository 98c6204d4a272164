package list

// Index maps the values held by one or more lists to the nodes holding them.
//
// Programs cannot modify an index directly, elements are added and removed
// through the lists attached to it. A nil *Index is valid and empty.
type Index[E comparable] struct {
	nodes map[E]*node[E]
}

// NewIndex constructs a new empty index.
func NewIndex[E comparable]() *Index[E] {
	return &Index[E]{nodes: make(map[E]*node[E])}
}

// Len returns the number of values held by the lists attached to the index.
func (ix *Index[E]) Len() int {
	if ix == nil {
		return 0
	}
	return len(ix.nodes)
}

// Contains returns true if value is held by one of the lists attached to the
// index.
func (ix *Index[E]) Contains(value E) bool {
	return ix.lookup(value) != nil
}

// Lookup returns the list holding value, and a boolean indicating whether the
// value was found.
//
// Complexity: O(1)
func (ix *Index[E]) Lookup(value E) (owner *RandomAccessList[E], found bool) {
	if n := ix.lookup(value); n != nil {
		owner, found = n.parent, true
	}
	return owner, found
}

func (ix *Index[E]) lookup(value E) *node[E] {
	if ix == nil {
		return nil
	}
	return ix.nodes[value]
}
