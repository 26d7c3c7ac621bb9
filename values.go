package segtree

// Values returns a snapshot of the logical array contents.
//
// Values does not push pending values down the tree; it is a read-only walk
// visiting every node at most once.
func (t *Tree[V]) Values() []V {
	if t == nil {
		return nil
	}
	out := make([]V, len(t.array))
	t.collect(root, out)
	return out
}

func (t *Tree[V]) collect(v int, out []V) {
	n := t.store.node(v)
	if n.hasPending { // pending values of ancestors overrule those of descendants
		for i := n.from; i <= n.to; i++ {
			out[i] = n.pending
		}
		return
	}
	if n.isLeaf() {
		out[n.from] = t.array[n.from]
		return
	}
	t.collect(left(v), out)
	t.collect(right(v), out)
}
