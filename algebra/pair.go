package algebra

import "fmt"

// Pair bundles two values which are aggregated side by side.
type Pair[A, B any] struct {
	First  A
	Second B
}

// MakePair creates a pair.
func MakePair[A, B any](a A, b B) Pair[A, B] {
	return Pair[A, B]{First: a, Second: b}
}

func (p Pair[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", p.First, p.Second)
}

// PairMonoid is the product of two monoids, operating componentwise.
type PairMonoid[A, B any] struct {
	ma Monoid[A]
	mb Monoid[B]
}

// PairOf combines two monoids into one over pairs.
func PairOf[A, B any](ma Monoid[A], mb Monoid[B]) PairMonoid[A, B] {
	return PairMonoid[A, B]{ma: ma, mb: mb}
}

// Unit returns the pair of units.
func (m PairMonoid[A, B]) Unit() Pair[A, B] {
	return Pair[A, B]{First: m.ma.Unit(), Second: m.mb.Unit()}
}

// Op combines pairs componentwise.
func (m PairMonoid[A, B]) Op(x, y Pair[A, B]) Pair[A, B] {
	return Pair[A, B]{
		First:  m.ma.Op(x.First, y.First),
		Second: m.mb.Op(x.Second, y.Second),
	}
}

// CommutativePairMonoid is the product of two commutative monoids.
type CommutativePairMonoid[A, B any] struct {
	PairMonoid[A, B]
}

// CommutativePairOf combines two commutative monoids.
func CommutativePairOf[A, B any](ma CommutativeMonoid[A], mb CommutativeMonoid[B]) CommutativePairMonoid[A, B] {
	return CommutativePairMonoid[A, B]{PairOf[A, B](ma, mb)}
}

// Commutative marks the product as commutative.
func (CommutativePairMonoid[A, B]) Commutative() {}

var (
	_ Monoid[Pair[int, string]]         = PairMonoid[int, string]{}
	_ CommutativeMonoid[Pair[int, int]] = CommutativePairMonoid[int, int]{}
)
