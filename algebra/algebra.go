package algebra

// Magma is a set with a binary operation. Nothing is required of Op beyond
// being total.
type Magma[T any] interface {
	Op(x, y T) T
}

// Semigroup is a magma with an associative operation. For all x, y, z:
//
//	Op(Op(x, y), z) == Op(x, Op(y, z))
type Semigroup[T any] interface {
	Magma[T]
}

// Monoid is a semigroup with a neutral element. For all x:
//
//	Op(Unit(), x) == x == Op(x, Unit())
type Monoid[T any] interface {
	Semigroup[T]
	Unit() T
}

// CommutativeMonoid is a monoid where operands may be swapped:
//
//	Op(x, y) == Op(y, x)
//
// Commutative is a marker; implementations have an empty method body.
type CommutativeMonoid[T any] interface {
	Monoid[T]
	Commutative()
}

// Group is a monoid where every element has an inverse:
//
//	Op(x, Inv(x)) == Unit() == Op(Inv(x), x)
type Group[T any] interface {
	Monoid[T]
	Inv(x T) T
}

// CommutativeGroup is a group with a commutative operation.
type CommutativeGroup[T any] interface {
	Group[T]
	Commutative()
}

// Action lets operators of type O act on values of type T.
//
// Operators form the commutative monoid Domain(), values form the monoid Space().
// Act must respect both:
//
//	Act(Domain().Unit(), x) == x
//	Act(Domain().Op(o1, o2), x) == Act(o2, Act(o1, x))
//
// where o1 is the operator applied first. For use in a lazy segment tree every
// Act(o, ·) additionally has to be an endomorphism of Space():
//
//	Act(o, Space().Op(x, y)) == Space().Op(Act(o, x), Act(o, y))
type Action[O, T any] interface {
	Domain() CommutativeMonoid[O]
	Space() Monoid[T]
	Act(o O, x T) T
}

// Endomorphism returns the mapping a value undergoes when operator o acts on it.
func Endomorphism[O, T any](a Action[O, T], o O) func(T) T {
	return func(x T) T {
		return a.Act(o, x)
	}
}
