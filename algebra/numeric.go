package algebra

import (
	"cmp"

	"golang.org/x/exp/constraints"
)

// Number is the set of Go types with built-in, commutative addition and
// multiplication.
type Number interface {
	constraints.Integer | constraints.Float | constraints.Complex
}

// Sum is the additive group of a numeric type: identity 0, operation +,
// inverse unary −.
//
// For unsigned types the inverse wraps around, which still yields a group
// (arithmetic modulo 2ⁿ). For floats the laws hold up to rounding only.
type Sum[T Number] struct{}

// Unit returns 0.
func (Sum[T]) Unit() T { return 0 }

// Op returns x + y.
func (Sum[T]) Op(x, y T) T { return x + y }

// Inv returns −x.
func (Sum[T]) Inv(x T) T { return -x }

// Commutative marks addition as commutative.
func (Sum[T]) Commutative() {}

// DefaultMonoid is the monoid clients get for a numeric type without
// specifying anything else.
type DefaultMonoid[T Number] = Sum[T]

// DefaultGroup is the group clients get for a numeric type without
// specifying anything else.
type DefaultGroup[T Number] = Sum[T]

// Concat is the additive monoid of string kinds: identity "", operation +.
// It is not commutative.
type Concat[T ~string] struct{}

// Unit returns the empty string.
func (Concat[T]) Unit() T { return "" }

// Op returns the concatenation x + y.
func (Concat[T]) Op(x, y T) T { return x + y }

// Product is the multiplicative monoid of a numeric type.
type Product[T Number] struct{}

// Unit returns 1.
func (Product[T]) Unit() T { return 1 }

// Op returns x · y.
func (Product[T]) Op(x, y T) T { return x * y }

// Commutative marks multiplication as commutative.
func (Product[T]) Commutative() {}

// Xor is the group of bit vectors under exclusive or. Every element is its own
// inverse.
type Xor[T constraints.Integer] struct{}

// Unit returns 0.
func (Xor[T]) Unit() T { return 0 }

// Op returns x ^ y.
func (Xor[T]) Op(x, y T) T { return x ^ y }

// Inv returns x.
func (Xor[T]) Inv(x T) T { return x }

// Commutative marks xor as commutative.
func (Xor[T]) Commutative() {}

// Max is the monoid of maximum selection. Floor is its neutral element and
// must not be greater than any value aggregated, e.g. math.MinInt for int.
type Max[T cmp.Ordered] struct {
	Floor T
}

// Unit returns m.Floor.
func (m Max[T]) Unit() T { return m.Floor }

// Op returns the greater of x and y.
func (Max[T]) Op(x, y T) T { return max(x, y) }

// Commutative marks maximum selection as commutative.
func (Max[T]) Commutative() {}

// Min is the monoid of minimum selection. Ceil is its neutral element and
// must not be less than any value aggregated, e.g. math.MaxInt for int.
type Min[T cmp.Ordered] struct {
	Ceil T
}

// Unit returns m.Ceil.
func (m Min[T]) Unit() T { return m.Ceil }

// Op returns the lesser of x and y.
func (Min[T]) Op(x, y T) T { return min(x, y) }

// Commutative marks minimum selection as commutative.
func (Min[T]) Commutative() {}

var (
	_ CommutativeGroup[int]      = Sum[int]{}
	_ CommutativeGroup[uint8]    = Sum[uint8]{}
	_ CommutativeGroup[float64]  = Sum[float64]{}
	_ Monoid[string]             = Concat[string]{}
	_ CommutativeMonoid[int]     = Product[int]{}
	_ CommutativeGroup[uint64]   = Xor[uint64]{}
	_ CommutativeMonoid[int]     = Max[int]{}
	_ CommutativeMonoid[float64] = Min[float64]{}
)
