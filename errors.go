package segtree

// TreeError is an error type for the segtree module.
type TreeError string

func (e TreeError) Error() string {
	return string(e)
}

// ErrConstruction is flagged if a tree cannot be built from the arguments
// given to New, e.g. for an empty array or a missing aggregator.
const ErrConstruction = TreeError("segtree: cannot construct tree")

// ErrRange is flagged whenever a range [from, to] has from > to or one of its
// bounds lies outside of the array.
const ErrRange = TreeError("segtree: range out of bounds")

// ErrAggregatorIndex is flagged whenever an aggregator index does not refer to
// a registered aggregator.
const ErrAggregatorIndex = TreeError("segtree: aggregator index out of range")

// ErrInvariant is flagged by Check for a tree in an inconsistent state.
const ErrInvariant = TreeError("segtree: invariant violated")
