/*
Package aggregate provides segment tree aggregators for number types beyond
the machine integers and floats, namely 256-bit unsigned integers and
arbitrary precision decimals.

All aggregators implement segtree.Aggregator and may be mixed freely with
client-defined ones, as long as they share the value type of the tree:

	tree, err := segtree.New(amounts, aggregate.DecimalSum{})

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.
*/
package aggregate
