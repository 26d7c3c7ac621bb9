package segtree

import "fmt"

// Check validates structural tree invariants and the consistency of cached
// aggregates. eq decides equality of two values.
//
// Nodes below a pending value are allowed to be stale and are checked for
// structure only. This checker is intended for tests.
func (t *Tree[V]) Check(eq func(a, b V) bool) error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvariant)
	}
	if len(t.array) == 0 {
		return fmt.Errorf("%w: empty tree", ErrInvariant)
	}
	return t.checkNode(root, 0, len(t.array)-1, false, eq)
}

func (t *Tree[V]) checkNode(v, from, to int, shadowed bool, eq func(a, b V) bool) error {
	if v >= len(t.store.nodes) {
		return fmt.Errorf("%w: node %d outside of store", ErrInvariant, v)
	}
	n := t.store.node(v)
	if n.from != from || n.to != to {
		return fmt.Errorf("%w: node %d covers [%d,%d], expected [%d,%d]",
			ErrInvariant, v, n.from, n.to, from, to)
	}
	acc := t.store.accum(v)
	if !shadowed {
		if n.hasPending {
			for f, agg := range t.aggs {
				if !eq(acc[f], Repeat(agg, n.pending, n.size())) {
					return fmt.Errorf("%w: node %d aggregate #%d does not match pending value",
						ErrInvariant, v, f)
				}
			}
		} else if n.isLeaf() {
			for f := range t.aggs {
				if !eq(acc[f], t.array[n.from]) {
					return fmt.Errorf("%w: leaf %d aggregate #%d does not match array value",
						ErrInvariant, v, f)
				}
			}
		}
	}
	if n.isLeaf() {
		return nil
	}
	size := to - from + 1
	if err := t.checkNode(left(v), from, from+size/2-1, shadowed || n.hasPending, eq); err != nil {
		return err
	}
	if err := t.checkNode(right(v), from+size/2, to, shadowed || n.hasPending, eq); err != nil {
		return err
	}
	if shadowed || n.hasPending {
		return nil
	}
	l, r := t.store.accum(left(v)), t.store.accum(right(v))
	for f, agg := range t.aggs {
		if !eq(acc[f], agg.Op(l[f], r[f])) {
			return fmt.Errorf("%w: node %d aggregate #%d does not combine its children",
				ErrInvariant, v, f)
		}
	}
	return nil
}
