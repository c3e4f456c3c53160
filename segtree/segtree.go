package segtree

import (
	"fmt"

	"github.com/npillmayer/adsl/algebra"
	"github.com/npillmayer/adsl/internal/implicit"
)

// Tree is a segment tree over values of type T.
//
// For every inner node i in [1, Len): node[i] == Op(node[2i], node[2i+1]).
type Tree[T any] struct {
	m      algebra.Monoid[T]
	layout implicit.Layout
	node   []T
}

// New creates a tree of n elements, all of them m.Unit().
func New[T any](m algebra.Monoid[T], n int) *Tree[T] {
	t := &Tree[T]{m: m, layout: implicit.For(n)}
	if t.layout.Len == 0 {
		return t
	}
	t.node = make([]T, t.layout.Nodes())
	u := m.Unit()
	for i := range t.node {
		t.node[i] = u
	}
	return t
}

// From creates a tree holding a copy of values. Construction is linear.
func From[T any](m algebra.Monoid[T], values []T) *Tree[T] {
	t := New(m, len(values))
	if t.layout.Len == 0 {
		return t
	}
	copy(t.node[t.layout.Len:], values)
	for i := t.layout.Len - 1; i > 0; i-- {
		t.recalcAt(i)
	}
	return t
}

func (t *Tree[T]) recalcAt(i int) {
	t.node[i] = t.m.Op(t.node[i<<1], t.node[i<<1|1])
}

// Size returns the number of elements.
func (t *Tree[T]) Size() int {
	return t.layout.Size
}

// IsEmpty is true for a tree without elements.
func (t *Tree[T]) IsEmpty() bool {
	return t.layout.Size == 0
}

// Update replaces element idx by updater(element idx).
// An index outside [0, Size) leaves the tree untouched.
func (t *Tree[T]) Update(idx int, updater func(T) T) {
	if !t.layout.ValidIndex(idx) {
		tracer().Debugf("segtree: ignoring update of index %d, size is %d", idx, t.layout.Size)
		return
	}
	i := t.layout.Leaf(idx)
	t.node[i] = updater(t.node[i])
	for i >>= 1; i > 0; i >>= 1 {
		t.recalcAt(i)
	}
}

// Set replaces element idx by v.
func (t *Tree[T]) Set(idx int, v T) {
	t.Update(idx, func(T) T { return v })
}

// Get returns element idx, or false if idx is out of range.
func (t *Tree[T]) Get(idx int) (T, bool) {
	if !t.layout.ValidIndex(idx) {
		var zero T
		return zero, false
	}
	return t.node[t.layout.Leaf(idx)], true
}

// Accumulate aggregates the elements in [l, r). It returns false for a range
// which is empty or exceeds the tree.
func (t *Tree[T]) Accumulate(l, r int) (T, bool) {
	if !t.layout.ValidRange(l, r) {
		tracer().Debugf("segtree: no aggregate for range [%d,%d), size is %d", l, r, t.layout.Size)
		var zero T
		return zero, false
	}
	l, r = t.layout.Leaf(l), t.layout.Leaf(r)
	resL, resR := t.m.Unit(), t.m.Unit()
	for ; l < r; l, r = l>>1, r>>1 {
		if l&1 == 1 {
			resL = t.m.Op(resL, t.node[l])
			l++
		}
		if r&1 == 1 {
			r--
			resR = t.m.Op(t.node[r], resR)
		}
	}
	return t.m.Op(resL, resR), true
}

// All aggregates every element; for an empty tree this is m.Unit().
func (t *Tree[T]) All() T {
	if t.layout.Len == 0 {
		return t.m.Unit()
	}
	return t.node[1]
}

// Check validates the aggregation invariant of every inner node, comparing
// values with eq.
func (t *Tree[T]) Check(eq func(x, y T) bool) error {
	if len(t.node) != t.layout.Nodes() {
		return fmt.Errorf("%w: %d nodes for %d leaves", ErrInvariant, len(t.node), t.layout.Len)
	}
	for i := t.layout.Len - 1; i > 0; i-- {
		if want := t.m.Op(t.node[i<<1], t.node[i<<1|1]); !eq(t.node[i], want) {
			return fmt.Errorf("%w: node %d holds %v, children aggregate to %v",
				ErrInvariant, i, t.node[i], want)
		}
	}
	u := t.m.Unit()
	for i := t.layout.Leaf(t.layout.Size); i < len(t.node); i++ {
		if !eq(t.node[i], u) {
			return fmt.Errorf("%w: padding leaf %d is not the unit", ErrInvariant, i)
		}
	}
	return nil
}

// --- Inspection ------------------------------------------------------------

// Cap returns the number of leaves, including padding.
func (t *Tree[T]) Cap() int {
	return t.layout.Len
}

// Label renders node i for debugging output. A static tree never has pending
// operators.
func (t *Tree[T]) Label(i int) (value, pending string) {
	if i <= 0 || i >= len(t.node) {
		return "", ""
	}
	return fmt.Sprintf("%v", t.node[i]), ""
}
