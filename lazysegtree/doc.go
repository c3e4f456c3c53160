/*
Package lazysegtree implements lazy segment trees: trees which apply an
operator to every element of a range and aggregate ranges, both in logarithmic
time.

A tree is parameterized by an algebra.Action. Its space is the monoid of
element values, its domain the monoid of operators. Operators are not applied
to every element at once, but parked at the canonical nodes of a range and
handed down to the children only when a query or an update needs to pass
through. Node i holds the aggregate of its subtree without the operator
pending at i itself.

	a := algebra.Assign[int](algebra.Min[int]{Ceil: math.MaxInt})
	lazy := lazysegtree.From[algebra.Optional[int], int](a, []int{5, 3, 8, 1})
	lazy.Append(0, 3, algebra.Some(4))
	m, _ := lazy.Accumulate(0, 4)      // 1

Range-add trees over algebra.AddToSum need every element to carry its count.
Build them with From over values made by algebra.CountOf, or with NewCounted
for a tree of zeros. New would fill the tree with the unit (0, 0), for which
any addition is lost.

Every operator has to act as an endomorphism of the space (see algebra.Action),
otherwise aggregates of partially covered nodes come out wrong. Clients may use
algebra.CheckAction on sample operators and values to find out.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package lazysegtree

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'adsl'
func tracer() tracing.Trace {
	return tracing.Select("adsl")
}

// ErrInvariant signals an inner node whose value does not aggregate its
// children.
var ErrInvariant = errors.New("lazysegtree: invariant violated")
