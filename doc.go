/*
Package segtree offers a segment tree for range aggregate queries over a
fixed-length array, with range assignments applied lazily.

Segment Trees

A segment tree partitions an array recursively into halves. Every node of the
tree covers a contiguous range of array positions and caches the aggregate of
its range, for every registered aggregation function. A range query combines
the cached aggregates of O(log n) nodes instead of folding every position of
the range.

Clients register one or more aggregators at construction time. An aggregator
is an associative binary operator together with its identity element, e.g.
addition with 0, multiplication with 1, or minimum with +∞. Operators need not
be commutative.

Range Assignment

Assigning a value v to a range [from, to] does not touch every position of the
range. Instead, the nodes fully covered by the range remember v as a pending
value and recompute their aggregates directly: k copies of v aggregate to

	v ⊕ v ⊕ … ⊕ v   (k times)

which is computed by repeated doubling in O(log k) steps (see Repeat). The
pending value is pushed down to the children of a node only when a later
operation has to look below that node.

	tree, _ := segtree.New([]int64{0, 1, 2, 3, 4, 5}, segtree.Product[int64]{})
	p, _ := tree.Query(1, 5, 0)  // 120
	tree.Update(0, 1, 5)         // array is now [5 5 2 3 4 5]
	p, _ = tree.Query(0, 2, 0)   // 50

A tree is not safe for concurrent use. Clients sharing a tree between
goroutines have to serialize all calls, including queries, as queries may
push pending values down the tree.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package segtree

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
