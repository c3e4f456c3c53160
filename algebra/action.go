package algebra

import "golang.org/x/exp/constraints"

// Real is the set of numeric types without complex numbers.
type Real interface {
	constraints.Integer | constraints.Float
}

// Overwrite is the operator monoid of assignments: of two present values the
// later one wins, none leaves the other operand untouched.
//
// Overwrite is not commutative in the strict sense. It is flagged as such
// because the trees of this module compose pending operators in the order they
// were applied, Op(older, newer), which is all an assignment needs.
type Overwrite[T any] struct{}

// Unit returns none, the assignment which assigns nothing.
func (Overwrite[T]) Unit() Optional[T] { return None[T]() }

// Op returns y if present, x otherwise.
func (Overwrite[T]) Op(x, y Optional[T]) Optional[T] {
	if y.ok {
		return y
	}
	return x
}

// Commutative marks Overwrite as admissible domain of an action.
func (Overwrite[T]) Commutative() {}

// Assign creates the range-assign action on values of space. An assignment of
// v replaces any value by v, thus for an aggregate to stay correct, space has
// to be idempotent (Op(v, v) == v), as min and max are.
func Assign[T any](space Monoid[T]) FuncAction[Optional[T], T] {
	return MakeAction[Optional[T], T](Overwrite[T]{}, space, func(o Optional[T], x T) T {
		if o.ok {
			return o.value
		}
		return x
	})
}

// Counted is a sum together with the number of elements it was summed from.
type Counted[T Real] = Pair[T, int]

// CountOf makes a single element sum.
func CountOf[T Real](v T) Counted[T] {
	return Counted[T]{First: v, Second: 1}
}

// AddToSum creates the range-add action on counted sums: adding d to every
// element of a range adds d·count to the range's sum.
//
// Elements have to be seeded with CountOf. The unit (0, 0) has count 0, thus
// a tree filled with units absorbs every addition.
func AddToSum[T Real]() FuncAction[T, Counted[T]] {
	space := CommutativePairOf[T, int](Sum[T]{}, Sum[int]{})
	return MakeAction[T, Counted[T]](Sum[T]{}, space, func(d T, x Counted[T]) Counted[T] {
		return Counted[T]{First: x.First + d*T(x.Second), Second: x.Second}
	})
}

var _ CommutativeMonoid[Optional[int]] = Overwrite[int]{}
