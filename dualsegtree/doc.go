/*
Package dualsegtree implements dual segment trees: trees which fold an
increment into every element of a range, and read single elements.

Inner nodes do not hold aggregates but increments not yet handed down to the
leaves. Reading an element first pushes all pending increments on the path
from the root down to its leaf. Increments are folded in the order they were
appended, therefore the monoid need not be commutative.

	dual := dualsegtree.New[int](algebra.Sum[int]{}, 7)
	dual.Append(1, 4, 3)      // add 3 to elements 1, 2, 3
	v, _ := dual.Get(2)       // 3

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package dualsegtree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'adsl'
func tracer() tracing.Trace {
	return tracing.Select("adsl")
}
