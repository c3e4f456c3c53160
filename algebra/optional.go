package algebra

import "fmt"

// Optional is a value of type T or the marker “none”.
//
// Optional is a tagged value, not a pointer: the zero Optional is none.
type Optional[T any] struct {
	value T
	ok    bool
}

// Some wraps a present value.
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, ok: true}
}

// None returns the absent value.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// Get returns the wrapped value and true, or the zero value and false.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.ok
}

// IsNone reports whether o is absent.
func (o Optional[T]) IsNone() bool {
	return !o.ok
}

// OrElse returns the wrapped value, or dflt if o is absent.
func (o Optional[T]) OrElse(dflt T) T {
	if !o.ok {
		return dflt
	}
	return o.value
}

func (o Optional[T]) String() string {
	if !o.ok {
		return "none"
	}
	return fmt.Sprintf("%v", o.value)
}

// Lifted is a monoid over Optional[T], made from a semigroup over T by
// adjoining none as neutral element.
type Lifted[T any] struct {
	s Semigroup[T]
}

// ToMonoid lifts a semigroup to a monoid:
//
//	Op(none, y) = y
//	Op(x, none) = x
//	Op(x, y)    = Some(s.Op(x, y))
func ToMonoid[T any](s Semigroup[T]) Lifted[T] {
	if s == nil {
		tracer().Errorf("algebra: lifting a nil semigroup")
	}
	return Lifted[T]{s: s}
}

// Unit returns none.
func (Lifted[T]) Unit() Optional[T] { return None[T]() }

// Op combines x and y, treating none as neutral.
func (m Lifted[T]) Op(x, y Optional[T]) Optional[T] {
	if !x.ok {
		return y
	}
	if !y.ok {
		return x
	}
	return Some(m.s.Op(x.value, y.value))
}

// LiftedCommutative is Lifted for a commutative semigroup.
type LiftedCommutative[T any] struct {
	Lifted[T]
}

// ToCommutativeMonoid lifts a commutative semigroup to a commutative monoid.
// Commutativity of s is the caller's promise.
func ToCommutativeMonoid[T any](s Semigroup[T]) LiftedCommutative[T] {
	return LiftedCommutative[T]{ToMonoid(s)}
}

// Commutative marks the lifted monoid as commutative.
func (LiftedCommutative[T]) Commutative() {}

var (
	_ Monoid[Optional[int]]            = Lifted[int]{}
	_ CommutativeMonoid[Optional[int]] = LiftedCommutative[int]{}
)
