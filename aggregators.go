package segtree

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Number is the set of machine number types the built-in arithmetic
// aggregators operate on.
type Number interface {
	constraints.Integer | constraints.Float
}

// Sum aggregates by addition, with identity 0.
type Sum[V Number] struct{}

// Identity returns 0.
func (Sum[V]) Identity() V { return 0 }

// Op adds two values.
func (Sum[V]) Op(a, b V) V { return a + b }

// Product aggregates by multiplication, with identity 1.
type Product[V Number] struct{}

// Identity returns 1.
func (Product[V]) Identity() V { return 1 }

// Op multiplies two values.
func (Product[V]) Op(a, b V) V { return a * b }

// Min aggregates to the minimum of a range. Top is the identity and must not
// be less than any value stored in the tree, e.g. math.MaxInt64 for int64 or
// +Inf for floats. The zero value has identity 0 and yields wrong minimums for
// positive values; use MinInt64, MinFloat64 or set Top explicitly.
type Min[V constraints.Ordered] struct {
	Top V
}

// Identity returns m.Top.
func (m Min[V]) Identity() V { return m.Top }

// Op returns the lesser of two values.
func (Min[V]) Op(a, b V) V {
	if b < a {
		return b
	}
	return a
}

// Max aggregates to the maximum of a range. Bottom is the identity and must
// not be greater than any value stored in the tree. The zero value has
// identity 0 and yields wrong maximums for negative values; use MaxInt64,
// MaxFloat64 or set Bottom explicitly.
type Max[V constraints.Ordered] struct {
	Bottom V
}

// Identity returns m.Bottom.
func (m Max[V]) Identity() V { return m.Bottom }

// Op returns the greater of two values.
func (Max[V]) Op(a, b V) V {
	if b > a {
		return b
	}
	return a
}

// MinInt64 is a Min aggregator for int64 values.
func MinInt64() Min[int64] {
	return Min[int64]{Top: math.MaxInt64}
}

// MaxInt64 is a Max aggregator for int64 values.
func MaxInt64() Max[int64] {
	return Max[int64]{Bottom: math.MinInt64}
}

// MinFloat64 is a Min aggregator for float64 values, with identity +Inf.
func MinFloat64() Min[float64] {
	return Min[float64]{Top: math.Inf(1)}
}

// MaxFloat64 is a Max aggregator for float64 values, with identity -Inf.
func MaxFloat64() Max[float64] {
	return Max[float64]{Bottom: math.Inf(-1)}
}
