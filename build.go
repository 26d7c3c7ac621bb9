package segtree

// build initializes node v to cover size positions starting at from, and
// recursively builds its children.
func (t *Tree[V]) build(v, from, size int) {
	n := t.store.node(v)
	n.from = from
	n.to = from + size - 1
	acc := t.store.accum(v)
	if size == 1 {
		for f := range t.aggs {
			acc[f] = t.array[from]
		}
		return
	}
	t.build(left(v), from, size/2)
	t.build(right(v), from+size/2, size-size/2)
	t.combine(v)
}

// combine recomputes the accumulators of inner node v from its children.
func (t *Tree[V]) combine(v int) {
	acc := t.store.accum(v)
	l, r := t.store.accum(left(v)), t.store.accum(right(v))
	for f, agg := range t.aggs {
		acc[f] = agg.Op(l[f], r[f])
	}
}
