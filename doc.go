/*
Package omap implements a mutable ordered map, i.e. an associative container
that keeps its entries sorted by key.

Ordered maps

Go's builtin map is unordered: ranging over it yields keys in no particular
sequence, and there is no cheap way to ask for "the smallest key" or "all
keys between a and b". An omap.Tree keeps entries in key order at all times,
at the price of logarithmic instead of constant per-operation cost.

Internally a Tree is a red-black tree, a binary search tree that tags every
node with one bit of balance information (a color, red or black) and
maintains a small set of coloring rules through local rotations. The rules
bound the height of the tree by 2*log2(n+1), which makes every lookup,
insertion and removal O(log n) in the worst case, not just on average.

Trees are single-owner structures. They are not safe for concurrent
mutation; callers that share a tree between goroutines have to serialize
access themselves. Read-only sharing is fine as long as no mutation is in
flight.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package omap

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
