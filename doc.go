/*
Package adsl offers array-backed trees for range queries and range updates over
user supplied algebras.

Trees

All trees of this module store a sequence of n elements and answer questions
about contiguous ranges of it in O(log n). They differ in what they ask of the
element type:

	segtree       point update, range aggregate          monoid
	fenwick       point append, prefix/range aggregate   commutative monoid/group
	dualsegtree   range append, point read               monoid
	lazysegtree   range operator, range aggregate        monoid action

The algebra is passed to a tree at construction time as a descriptor value from
package algebra. Descriptors for the common cases (sums, products, minimum,
maximum, assignment) are provided, custom ones are built from functions:

	gcd := algebra.MakeCommutativeMonoid(0, func(x, y int) int {
	    for y != 0 {
	        x, y = y, x%y
	    }
	    return x
	})
	tree := segtree.From[int](gcd, []int{12, 18, 27})
	g, _ := tree.Accumulate(0, 2)   // 6

Index ranges are half-open, [l, r). Queries with an invalid index or range return
false instead of a value, mutators silently ignore them. Trees never validate
the laws of their algebra; package algebra has helpers to check descriptors
against sample values.

Package inspect renders segment trees, dual and lazy segment trees for
debugging, and command adsl runs the trees against judge style problem input.

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
package adsl

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// Error is an error type for the adsl module.
type Error string

func (e Error) Error() string {
	return string(e)
}

// ErrMalformedInput is flagged whenever problem input cannot be read as the
// numbers a problem expects.
const ErrMalformedInput = Error("malformed input")

// ErrUnknownFormat is flagged for a dump format which has no renderer.
const ErrUnknownFormat = Error("unknown format")

// ErrNotLayered is flagged when a tree without a layered node structure is to
// be rendered.
const ErrNotLayered = Error("tree has no layered structure")
