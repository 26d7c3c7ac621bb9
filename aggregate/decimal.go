package aggregate

import (
	"github.com/npillmayer/segtree"
	"github.com/shopspring/decimal"
)

// DecimalSum adds arbitrary precision decimals, with identity 0.
type DecimalSum struct{}

// Identity returns 0.
func (DecimalSum) Identity() decimal.Decimal { return decimal.Zero }

// Op returns a+b.
func (DecimalSum) Op(a, b decimal.Decimal) decimal.Decimal { return a.Add(b) }

// DecimalProduct multiplies arbitrary precision decimals, with identity 1.
//
// Products are exact, so the number of digits grows with the length of a
// range. Clients with long ranges of fractional values may want to round.
type DecimalProduct struct{}

// Identity returns 1.
func (DecimalProduct) Identity() decimal.Decimal { return decimal.NewFromInt(1) }

// Op returns a·b.
func (DecimalProduct) Op(a, b decimal.Decimal) decimal.Decimal { return a.Mul(b) }

// DecimalEqual reports whether two decimals denote the same number,
// regardless of their exponents. It is suitable for (*segtree.Tree).Check.
func DecimalEqual(a, b decimal.Decimal) bool {
	return a.Equal(b)
}

var (
	_ segtree.Aggregator[decimal.Decimal] = DecimalSum{}
	_ segtree.Aggregator[decimal.Decimal] = DecimalProduct{}
)
