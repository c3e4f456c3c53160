package fenwick

import (
	"fmt"

	"github.com/npillmayer/adsl/algebra"
)

// GroupTree is a Fenwick tree over a commutative group. The inverse lets it
// compute range aggregates as differences of prefixes.
type GroupTree[T any] struct {
	Tree[T]
	g algebra.CommutativeGroup[T]
}

// NewGroup creates a tree of n elements, all of them g.Unit().
func NewGroup[T any](g algebra.CommutativeGroup[T], n int) *GroupTree[T] {
	return &GroupTree[T]{Tree: *New[T](g, n), g: g}
}

// FromGroup creates a tree holding values.
func FromGroup[T any](g algebra.CommutativeGroup[T], values []T) *GroupTree[T] {
	return &GroupTree[T]{Tree: *From[T](g, values), g: g}
}

// AccumulateRange aggregates [l, r). It returns false for a range which is
// empty or exceeds the tree.
func (t *GroupTree[T]) AccumulateRange(l, r int) (T, bool) {
	if !t.layout.ValidRange(l, r) {
		tracer().Debugf("fenwick: no aggregate for range [%d,%d), size is %d", l, r, t.layout.Size)
		var zero T
		return zero, false
	}
	return t.rangeOf(l, r), true
}

// rangeOf expects a valid range. prefix(−1) is the unit.
func (t *GroupTree[T]) rangeOf(l, r int) T {
	return t.g.Op(t.prefix(r-1), t.g.Inv(t.prefix(l-1)))
}

// Calc returns element idx, or false if idx is out of range.
func (t *GroupTree[T]) Calc(idx int) (T, bool) {
	return t.AccumulateRange(idx, idx+1)
}

// Update replaces element idx by updater(element idx), injecting the
// difference as a delta. An index outside [0, Size) leaves the tree untouched.
func (t *GroupTree[T]) Update(idx int, updater func(T) T) {
	if !t.layout.ValidIndex(idx) {
		tracer().Debugf("fenwick: ignoring update of index %d, size is %d", idx, t.layout.Size)
		return
	}
	cur := t.rangeOf(idx, idx+1)
	t.AppendAt(idx, t.g.Op(updater(cur), t.g.Inv(cur)))
}

// Set replaces element idx by v.
func (t *GroupTree[T]) Set(idx int, v T) {
	t.Update(idx, func(T) T { return v })
}

// Check verifies that the stored nodes are exactly those of a tree built from
// the tree's own elements, comparing values with eq. Nodes beyond the last
// element are covered as well, as they never contribute to a prefix of a
// valid index.
func (t *GroupTree[T]) Check(eq func(x, y T) bool) error {
	if t.layout.Len > 0 && len(t.node) != t.layout.Len+1 {
		return fmt.Errorf("%w: %d nodes for %d leaves", ErrInvariant, len(t.node), t.layout.Len)
	}
	elements := make([]T, t.layout.Size)
	for k := range elements {
		elements[k] = t.rangeOf(k, k+1)
	}
	rebuilt := From[T](t.g, elements)
	for i := 1; i < len(t.node); i++ {
		if !eq(t.node[i], rebuilt.node[i]) {
			return fmt.Errorf("%w: node %d holds %v, elements aggregate to %v",
				ErrInvariant, i, t.node[i], rebuilt.node[i])
		}
	}
	return nil
}
