package segtree

// Aggregator defines how array values are combined over a range.
//
// For values a, b, c, Op should be associative:
//
//	Op(Op(a, b), c) == Op(a, Op(b, c))
//
// and Identity should be the neutral element:
//
//	Op(Identity(), a) == a == Op(a, Identity())
//
// Op need not be commutative. Neither property can be checked by the tree;
// aggregators violating them produce meaningless query results.
type Aggregator[V any] interface {
	Identity() V
	Op(a, b V) V
}

// Repeat combines count copies of value with agg.Op, i.e.
//
//	value ⊕ value ⊕ … ⊕ value
//
// It needs O(log count) applications of Op. As all operands are the same
// value, the grouping of the operations does not matter and commutativity is
// not required. Repeat returns agg.Identity() for count ≤ 0.
func Repeat[V any](agg Aggregator[V], value V, count int) V {
	if count <= 0 {
		return agg.Identity()
	}
	if count == 1 {
		return value
	}
	half := Repeat(agg, value, count/2)
	if count%2 == 0 {
		return agg.Op(half, half)
	}
	return agg.Op(value, agg.Op(half, half))
}

// Fold combines values from left to right, starting with agg.Identity().
// It is the naive O(n) counterpart to a range query.
func Fold[V any](agg Aggregator[V], values ...V) V {
	acc := agg.Identity()
	for _, v := range values {
		acc = agg.Op(acc, v)
	}
	return acc
}
