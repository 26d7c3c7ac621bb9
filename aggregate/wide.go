package aggregate

import (
	"github.com/holiman/uint256"
	"github.com/npillmayer/segtree"
)

// U256Sum adds 256-bit unsigned integers, wrapping around modulo 2^256.
type U256Sum struct{}

// Identity returns 0.
func (U256Sum) Identity() uint256.Int { return uint256.Int{} }

// Op adds a and b modulo 2^256.
func (U256Sum) Op(a, b uint256.Int) uint256.Int {
	var z uint256.Int
	z.Add(&a, &b)
	return z
}

// U256Product multiplies 256-bit unsigned integers, wrapping around modulo 2^256.
type U256Product struct{}

// Identity returns 1.
func (U256Product) Identity() uint256.Int {
	var one uint256.Int
	one.SetOne()
	return one
}

// Op multiplies a and b modulo 2^256.
func (U256Product) Op(a, b uint256.Int) uint256.Int {
	var z uint256.Int
	z.Mul(&a, &b)
	return z
}

// U256Min aggregates to the minimum, with identity 2^256-1.
type U256Min struct{}

// Identity returns the largest 256-bit value.
func (U256Min) Identity() uint256.Int {
	var top uint256.Int
	top.SetAllOne()
	return top
}

// Op returns the lesser of a and b.
func (U256Min) Op(a, b uint256.Int) uint256.Int {
	if b.Lt(&a) {
		return b
	}
	return a
}

// U256Max aggregates to the maximum, with identity 0.
type U256Max struct{}

// Identity returns 0.
func (U256Max) Identity() uint256.Int { return uint256.Int{} }

// Op returns the greater of a and b.
func (U256Max) Op(a, b uint256.Int) uint256.Int {
	if b.Gt(&a) {
		return b
	}
	return a
}

// U256Equal reports whether two 256-bit values are equal.
// It is suitable for (*segtree.Tree).Check.
func U256Equal(a, b uint256.Int) bool {
	return a.Eq(&b)
}

var (
	_ segtree.Aggregator[uint256.Int] = U256Sum{}
	_ segtree.Aggregator[uint256.Int] = U256Product{}
	_ segtree.Aggregator[uint256.Int] = U256Min{}
	_ segtree.Aggregator[uint256.Int] = U256Max{}
)
