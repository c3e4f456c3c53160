/*
Package fenwick implements Fenwick trees (binary indexed trees).

A Tree needs a commutative monoid and supports adding to an element and
aggregating prefixes. If the monoid is a commutative group, a GroupTree
additionally supports range aggregates, point reads and point assignment, all
derived from prefixes by subtraction.

	bit := fenwick.FromGroup[int64](algebra.Sum[int64]{}, []int64{1, 6, 2, 9, 3})
	bit.AppendAt(2, 10)
	s, _ := bit.AccumulateRange(1, 4)   // 6 + 12 + 9 == 27

Reads do not modify a Fenwick tree, but there is no synchronization either;
clients sharing a tree between goroutines have to lock it.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package fenwick

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'adsl'
func tracer() tracing.Trace {
	return tracing.Select("adsl")
}

// ErrInvariant signals stored nodes which do not aggregate a common sequence
// of elements.
var ErrInvariant = errors.New("fenwick: invariant violated")
