/*
Package segtree implements a static segment tree: point updates and range
queries over a monoid, both in Θ(log n).

The tree does not require commutativity. Range queries fold the left and the
right boundary separately and combine them in element order, so aggregating
strings by concatenation yields the concatenated range.

	t := segtree.From[int](algebra.Max[int]{Floor: math.MinInt}, []int{1, 6, 2, 9, 3})
	m, _ := t.Accumulate(1, 3)   // m == 6
	t.Set(2, 100)

Concurrent reads are safe as long as no goroutine mutates the tree.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package segtree

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'adsl'
func tracer() tracing.Trace {
	return tracing.Select("adsl")
}

// ErrInvariant signals a tree whose inner nodes do not aggregate their children.
var ErrInvariant = errors.New("segtree: invariant violated")
