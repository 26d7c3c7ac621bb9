package segtree

func (t *Tree[V]) query(v, from, to, f int) V {
	n := t.store.node(v)
	agg := t.aggs[f]
	// A pending value covering the whole query range answers it without
	// looking further down.
	if n.hasPending && contains(n.from, n.to, from, to) {
		return Repeat(agg, n.pending, to-from+1)
	}
	if contains(from, to, n.from, n.to) {
		return t.store.accum(v)[f]
	}
	if intersects(from, to, n.from, n.to) {
		t.propagate(v)
		l := t.query(left(v), from, to, f)
		r := t.query(right(v), from, to, f)
		return agg.Op(l, r)
	}
	return agg.Identity()
}
