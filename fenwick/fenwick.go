package fenwick

import (
	"github.com/npillmayer/adsl/algebra"
	"github.com/npillmayer/adsl/internal/implicit"
)

// Tree is a Fenwick tree over a commutative monoid.
//
// Nodes are 1-indexed: node[i] aggregates elements [i − lowbit(i), i), where
// lowbit(i) is the lowest set bit of i. node[0] is unused.
type Tree[T any] struct {
	m      algebra.CommutativeMonoid[T]
	layout implicit.Layout
	node   []T
}

// New creates a tree of n elements, all of them m.Unit().
func New[T any](m algebra.CommutativeMonoid[T], n int) *Tree[T] {
	t := &Tree[T]{m: m, layout: implicit.For(n)}
	if t.layout.Len == 0 {
		return t
	}
	t.node = make([]T, t.layout.Len+1)
	u := m.Unit()
	for i := range t.node {
		t.node[i] = u
	}
	return t
}

// From creates a tree holding values, in linear time: every node is complete
// once all smaller indices are, and is then folded into its parent.
func From[T any](m algebra.CommutativeMonoid[T], values []T) *Tree[T] {
	t := New(m, len(values))
	for k, v := range values {
		t.node[k+1] = m.Op(t.node[k+1], v)
	}
	for i := 1; i < t.layout.Len; i++ {
		p := i + implicit.LowBit(i)
		t.node[p] = m.Op(t.node[p], t.node[i])
	}
	return t
}

// Size returns the number of elements.
func (t *Tree[T]) Size() int {
	return t.layout.Size
}

// IsEmpty is true for a tree without elements.
func (t *Tree[T]) IsEmpty() bool {
	return t.layout.Size == 0
}

// AppendAt folds delta into element idx. An index outside [0, Size) leaves
// the tree untouched.
func (t *Tree[T]) AppendAt(idx int, delta T) {
	if !t.layout.ValidIndex(idx) {
		tracer().Debugf("fenwick: ignoring append at index %d, size is %d", idx, t.layout.Size)
		return
	}
	for i := idx + 1; i < len(t.node); i += implicit.LowBit(i) {
		t.node[i] = t.m.Op(t.node[i], delta)
	}
}

// Accumulate aggregates the prefix [0, idx]. It returns false if idx is out of
// range.
func (t *Tree[T]) Accumulate(idx int) (T, bool) {
	if !t.layout.ValidIndex(idx) {
		tracer().Debugf("fenwick: no prefix up to index %d, size is %d", idx, t.layout.Size)
		var zero T
		return zero, false
	}
	return t.prefix(idx), true
}

// prefix aggregates [0, idx]; idx == −1 yields the unit.
func (t *Tree[T]) prefix(idx int) T {
	res := t.m.Unit()
	for i := idx + 1; i > 0; i &= i - 1 {
		res = t.m.Op(res, t.node[i])
	}
	return res
}
