package segtree

import (
	"fmt"
)

// Tree is a segment tree over a fixed-length array of values of type V.
//
// A tree aggregates ranges of the array with every aggregator registered at
// construction time. Aggregators are addressed by their position in the
// argument list of New.
//
//	Operation     |   Tree          |  Array
//	--------------+-----------------+---------
//	Query         |   O(log n)      |   O(n)
//	Update range  |   O(log² n)     |   O(n)
//	Build         |   O(n)          |   –
//
// Update costs assume Repeat for ranges of size k to take O(log k) steps.
// A tree is not safe for concurrent use, not even for concurrent queries.
type Tree[V any] struct {
	aggs  []Aggregator[V]
	array []V // representative values, see change()
	store nodeStore[V]
}

// New creates a tree over a copy of values, aggregating with aggs.
//
// values must not be empty and at least one aggregator must be given,
// otherwise ErrConstruction is returned.
func New[V any](values []V, aggs ...Aggregator[V]) (*Tree[V], error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("%w: empty array", ErrConstruction)
	}
	if len(aggs) == 0 {
		return nil, fmt.Errorf("%w: no aggregator", ErrConstruction)
	}
	for i, agg := range aggs {
		if agg == nil {
			return nil, fmt.Errorf("%w: aggregator #%d is nil", ErrConstruction, i)
		}
	}
	t := &Tree[V]{
		aggs:  append([]Aggregator[V](nil), aggs...),
		array: append([]V(nil), values...),
		store: newNodeStore[V](len(values), len(aggs)),
	}
	t.build(root, 0, len(values))
	T().P("size", len(values)).Debugf("built segment tree with %d aggregators", len(aggs))
	return t, nil
}

// Size returns the number of array positions.
func (t *Tree[V]) Size() int {
	if t == nil {
		return 0
	}
	return len(t.array)
}

// AggregatorCount returns the number of registered aggregators.
func (t *Tree[V]) AggregatorCount() int {
	if t == nil {
		return 0
	}
	return len(t.aggs)
}

// Query aggregates positions [from, to] with aggregator number agg.
//
// Query may push pending values further down the tree, which is why queries
// are mutating operations with respect to concurrency.
func (t *Tree[V]) Query(from, to, agg int) (V, error) {
	if err := t.checkRange(from, to); err != nil {
		var zero V
		return zero, err
	}
	if agg < 0 || agg >= len(t.aggs) {
		var zero V
		return zero, fmt.Errorf("%w: %d not in [0,%d)", ErrAggregatorIndex, agg, len(t.aggs))
	}
	return t.query(root, from, to, agg), nil
}

// Get returns the value at array position i.
func (t *Tree[V]) Get(i int) (V, error) {
	return t.Query(i, i, 0)
}

// Update assigns value to every array position in [from, to].
func (t *Tree[V]) Update(from, to int, value V) error {
	if err := t.checkRange(from, to); err != nil {
		return err
	}
	T().P("update", fmt.Sprintf("[%d,%d]", from, to)).Debugf("assign %v", value)
	t.update(root, from, to, value)
	return nil
}

func (t *Tree[V]) checkRange(from, to int) error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrRange)
	}
	if from > to {
		return fmt.Errorf("%w: from=%d > to=%d", ErrRange, from, to)
	}
	if from < 0 || to >= len(t.array) {
		return fmt.Errorf("%w: [%d,%d] not within [0,%d]", ErrRange, from, to, len(t.array)-1)
	}
	return nil
}
