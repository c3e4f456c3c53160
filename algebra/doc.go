/*
Package algebra provides the algebraic contracts the trees of this module are
parameterized over.

A tree never knows which numbers (or strings, or intervals, …) it aggregates.
Instead, clients hand it a descriptor which tells how to combine two values and
which value is neutral. Descriptors are small, usually empty, structs:

	m := algebra.Sum[int]{}                     // (ℤ, +, 0), commutative group
	mx := algebra.Max[int]{Floor: math.MinInt}  // (ℤ, max, MinInt), commutative monoid

Descriptors which are not predefined may be built from plain functions:

	gcd := algebra.MakeCommutativeMonoid(0, func(x, y int) int { … })

The hierarchy is

	Magma → Semigroup → Monoid → CommutativeMonoid
	                      ↓
	                    Group  → CommutativeGroup

plus Action, which lets an operator monoid act on a value monoid. Laws such as
associativity cannot be checked by the compiler; they are documented with each
interface and may be tested with CheckMonoid and friends.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package algebra

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'adsl'
func tracer() tracing.Trace {
	return tracing.Select("adsl")
}
