package segtree

// node is a record of the node store. It covers array positions [from, to].
type node[V any] struct {
	from, to int
	// pending is valid only if hasPending is set. It is the value every
	// position under this node holds, not yet told to the children.
	pending    V
	hasPending bool
}

func (n *node[V]) size() int    { return n.to - n.from + 1 }
func (n *node[V]) isLeaf() bool { return n.from == n.to }

// nodeStore is a flat arena of tree nodes in implicit heap layout: the root
// is at index 1, the children of node v are at 2v and 2v+1. Slot 0 is unused.
//
// Accumulators live in one shared slice: node v's value for aggregator f is
// accums[v*k+f], with k the number of aggregators.
type nodeStore[V any] struct {
	nodes  []node[V]
	accums []V
	k      int
}

// newNodeStore allocates a store large enough for a tree over n leaves
// and k aggregators.
func newNodeStore[V any](n, k int) nodeStore[V] {
	slots := 4*n + 4
	return nodeStore[V]{
		nodes:  make([]node[V], slots),
		accums: make([]V, slots*k),
		k:      k,
	}
}

func (s *nodeStore[V]) node(v int) *node[V] {
	assert(v > 0 && v < len(s.nodes), "segtree: node index outside of store")
	return &s.nodes[v]
}

// accum returns the accumulators of node v. The slice aliases the store.
func (s *nodeStore[V]) accum(v int) []V {
	return s.accums[v*s.k : (v+1)*s.k]
}

func left(v int) int  { return 2 * v }
func right(v int) int { return 2*v + 1 }

const root = 1
