package segtree

// update assigns value to every position in [from, to] below node v.
//
// Nodes fully covered by the range are changed and not descended into:
// the assignment is remembered as a pending value and will be pushed to the
// children on demand.
func (t *Tree[V]) update(v, from, to int, value V) {
	n := t.store.node(v)
	if contains(from, to, n.from, n.to) {
		t.change(v, value)
		return
	}
	if n.isLeaf() {
		return
	}
	if intersects(from, to, n.from, n.to) {
		t.propagate(v)
		t.update(left(v), from, to, value)
		t.update(right(v), from, to, value)
		t.combine(v)
	}
}

// propagate pushes the pending value of node v to its children.
// It is a no-op for nodes without a pending value.
func (t *Tree[V]) propagate(v int) {
	n := t.store.node(v)
	if !n.hasPending {
		return
	}
	T().P("node", v).Debugf("propagate pending value to [%d,%d]", n.from, n.to)
	t.change(left(v), n.pending)
	t.change(right(v), n.pending)
	var zero V
	n.pending, n.hasPending = zero, false
}

// change sets every position under node v to value, lazily. The node's
// accumulators are recomputed from value alone, its children are left alone.
func (t *Tree[V]) change(v int, value V) {
	n := t.store.node(v)
	n.pending, n.hasPending = value, true
	acc := t.store.accum(v)
	size := n.size()
	for f, agg := range t.aggs {
		acc[f] = Repeat(agg, value, size)
	}
	t.array[n.from] = value
}
