package algebra

// FuncSemigroup is a semigroup built from a plain function.
type FuncSemigroup[T any] struct {
	op func(x, y T) T
}

// MakeSemigroup wraps op, which has to be associative.
func MakeSemigroup[T any](op func(x, y T) T) FuncSemigroup[T] {
	return FuncSemigroup[T]{op: op}
}

// Op calls the wrapped function.
func (s FuncSemigroup[T]) Op(x, y T) T { return s.op(x, y) }

// FuncMonoid is a monoid built from a neutral element and a plain function.
type FuncMonoid[T any] struct {
	unit T
	op   func(x, y T) T
}

// MakeMonoid creates a monoid descriptor. unit has to be neutral with respect to
// op, and op has to be associative. Neither is checked.
func MakeMonoid[T any](unit T, op func(x, y T) T) FuncMonoid[T] {
	return FuncMonoid[T]{unit: unit, op: op}
}

// Unit returns the neutral element.
func (m FuncMonoid[T]) Unit() T { return m.unit }

// Op calls the wrapped function.
func (m FuncMonoid[T]) Op(x, y T) T { return m.op(x, y) }

// FuncCommutativeMonoid is a FuncMonoid flagged as commutative.
type FuncCommutativeMonoid[T any] struct {
	FuncMonoid[T]
}

// MakeCommutativeMonoid is MakeMonoid for commutative operations.
func MakeCommutativeMonoid[T any](unit T, op func(x, y T) T) FuncCommutativeMonoid[T] {
	return FuncCommutativeMonoid[T]{MakeMonoid(unit, op)}
}

// Commutative marks the monoid as commutative.
func (FuncCommutativeMonoid[T]) Commutative() {}

// FuncGroup is a group built from plain functions.
type FuncGroup[T any] struct {
	FuncMonoid[T]
	inv func(x T) T
}

// MakeGroup creates a group descriptor. inv(x) has to be the inverse of x.
func MakeGroup[T any](unit T, op func(x, y T) T, inv func(x T) T) FuncGroup[T] {
	return FuncGroup[T]{FuncMonoid: MakeMonoid(unit, op), inv: inv}
}

// Inv calls the wrapped inverse function.
func (g FuncGroup[T]) Inv(x T) T { return g.inv(x) }

// FuncCommutativeGroup is a FuncGroup flagged as commutative.
type FuncCommutativeGroup[T any] struct {
	FuncGroup[T]
}

// MakeCommutativeGroup is MakeGroup for commutative operations.
func MakeCommutativeGroup[T any](unit T, op func(x, y T) T, inv func(x T) T) FuncCommutativeGroup[T] {
	return FuncCommutativeGroup[T]{MakeGroup(unit, op, inv)}
}

// Commutative marks the group as commutative.
func (FuncCommutativeGroup[T]) Commutative() {}

// FuncAction is an action built from two monoids and a plain function.
type FuncAction[O, T any] struct {
	domain CommutativeMonoid[O]
	space  Monoid[T]
	act    func(o O, x T) T
}

// MakeAction creates an action of domain on space. act has to satisfy the laws
// documented with Action.
func MakeAction[O, T any](domain CommutativeMonoid[O], space Monoid[T], act func(o O, x T) T) FuncAction[O, T] {
	return FuncAction[O, T]{domain: domain, space: space, act: act}
}

// Domain returns the operator monoid.
func (a FuncAction[O, T]) Domain() CommutativeMonoid[O] { return a.domain }

// Space returns the value monoid.
func (a FuncAction[O, T]) Space() Monoid[T] { return a.space }

// Act applies operator o to value x.
func (a FuncAction[O, T]) Act(o O, x T) T { return a.act(o, x) }

var (
	_ Semigroup[int]         = FuncSemigroup[int]{}
	_ Monoid[int]            = FuncMonoid[int]{}
	_ CommutativeMonoid[int] = FuncCommutativeMonoid[int]{}
	_ Group[int]             = FuncGroup[int]{}
	_ CommutativeGroup[int]  = FuncCommutativeGroup[int]{}
	_ Action[int, int]       = FuncAction[int, int]{}
)
