package algebra

import "fmt"

// CheckMonoid tests associativity and neutrality of m for all combinations of
// sample values. It returns nil if no counterexample is found, otherwise an error
// wrapping ErrLawViolation.
//
// Cost is cubic in len(samples); keep the sample set small.
func CheckMonoid[T any](m Monoid[T], eq func(x, y T) bool, samples []T) error {
	u := m.Unit()
	for _, x := range samples {
		if !eq(m.Op(u, x), x) {
			return fmt.Errorf("%w: Op(unit, %v) != %v", ErrLawViolation, x, x)
		}
		if !eq(m.Op(x, u), x) {
			return fmt.Errorf("%w: Op(%v, unit) != %v", ErrLawViolation, x, x)
		}
	}
	for _, x := range samples {
		for _, y := range samples {
			for _, z := range samples {
				l, r := m.Op(m.Op(x, y), z), m.Op(x, m.Op(y, z))
				if !eq(l, r) {
					return fmt.Errorf("%w: Op not associative for (%v, %v, %v): %v != %v",
						ErrLawViolation, x, y, z, l, r)
				}
			}
		}
	}
	return nil
}

// CheckCommutative tests Op(x, y) == Op(y, x) for all pairs of samples.
func CheckCommutative[T any](m Magma[T], eq func(x, y T) bool, samples []T) error {
	for i, x := range samples {
		for _, y := range samples[i+1:] {
			if !eq(m.Op(x, y), m.Op(y, x)) {
				return fmt.Errorf("%w: Op not commutative for (%v, %v)", ErrLawViolation, x, y)
			}
		}
	}
	return nil
}

// CheckGroup tests the monoid laws and the inverse law of g.
func CheckGroup[T any](g Group[T], eq func(x, y T) bool, samples []T) error {
	if err := CheckMonoid[T](g, eq, samples); err != nil {
		return err
	}
	u := g.Unit()
	for _, x := range samples {
		if !eq(g.Op(x, g.Inv(x)), u) || !eq(g.Op(g.Inv(x), x), u) {
			return fmt.Errorf("%w: %v has no inverse Inv(%v)=%v", ErrLawViolation, x, x, g.Inv(x))
		}
	}
	return nil
}

// CheckAction tests the laws of an action: the unit operator is the identity,
// composition of operators matches consecutive application, and every
// operator distributes over the value operation.
//
// Preservation of the value unit is not required: padding leaves of a tree are
// never targeted by an operator.
func CheckAction[O, T any](a Action[O, T], eq func(x, y T) bool, ops []O, values []T) error {
	dom, sp := a.Domain(), a.Space()
	for _, x := range values {
		if !eq(a.Act(dom.Unit(), x), x) {
			return fmt.Errorf("%w: unit operator changes %v", ErrLawViolation, x)
		}
	}
	for _, o1 := range ops {
		for _, o2 := range ops {
			for _, x := range values {
				l, r := a.Act(dom.Op(o1, o2), x), a.Act(o2, a.Act(o1, x))
				if !eq(l, r) {
					return fmt.Errorf("%w: composition of %v and %v on %v: %v != %v",
						ErrLawViolation, o1, o2, x, l, r)
				}
			}
		}
	}
	for _, o := range ops {
		for _, x := range values {
			for _, y := range values {
				l, r := a.Act(o, sp.Op(x, y)), sp.Op(a.Act(o, x), a.Act(o, y))
				if !eq(l, r) {
					return fmt.Errorf("%w: %v does not distribute over (%v, %v): %v != %v",
						ErrLawViolation, o, x, y, l, r)
				}
			}
		}
	}
	return nil
}
