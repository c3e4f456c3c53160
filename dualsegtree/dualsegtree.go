package dualsegtree

import (
	"fmt"

	"github.com/npillmayer/adsl/algebra"
	"github.com/npillmayer/adsl/internal/implicit"
)

// Tree is a dual segment tree over values of type T.
//
// Element k is the fold of leaf k with the increments pending on its
// ancestors, root last.
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

// From creates a tree holding a copy of values, without any increments
// pending.
func From[T any](m algebra.Monoid[T], values []T) *Tree[T] {
	t := New(m, len(values))
	if t.layout.Len > 0 {
		copy(t.node[t.layout.Len:], values)
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

// propAt hands the increment pending at inner node i down to its children.
func (t *Tree[T]) propAt(i int) {
	inc := t.node[i]
	t.node[i<<1] = t.m.Op(t.node[i<<1], inc)
	t.node[i<<1|1] = t.m.Op(t.node[i<<1|1], inc)
	t.node[i] = t.m.Unit()
}

// propTo clears every ancestor of node i, root first.
func (t *Tree[T]) propTo(i int) {
	for h := t.layout.Height; h >= 1; h-- {
		t.propAt(i >> h)
	}
}

// Append folds inc into every element of [l, r), as element = Op(element, inc).
// A range which is empty or exceeds the tree leaves the tree untouched.
func (t *Tree[T]) Append(l, r int, inc T) {
	if !t.layout.ValidRange(l, r) {
		tracer().Debugf("dualsegtree: ignoring append to range [%d,%d), size is %d", l, r, t.layout.Size)
		return
	}
	l, r = t.layout.Leaf(l), t.layout.Leaf(r)
	// older increments must reach the canonical nodes' descendants before inc
	t.propTo(l)
	t.propTo(r - 1)
	for ; l < r; l, r = l>>1, r>>1 {
		if l&1 == 1 {
			t.node[l] = t.m.Op(t.node[l], inc)
			l++
		}
		if r&1 == 1 {
			r--
			t.node[r] = t.m.Op(t.node[r], inc)
		}
	}
}

// Get returns element idx, or false if idx is out of range.
func (t *Tree[T]) Get(idx int) (T, bool) {
	if !t.layout.ValidIndex(idx) {
		tracer().Debugf("dualsegtree: no element at index %d, size is %d", idx, t.layout.Size)
		var zero T
		return zero, false
	}
	i := t.layout.Leaf(idx)
	t.propTo(i)
	return t.node[i], true
}

// --- Inspection ------------------------------------------------------------

// Cap returns the number of leaves, including padding.
func (t *Tree[T]) Cap() int {
	return t.layout.Len
}

// Label renders node i for debugging output. Inner nodes show their pending
// increment unless it prints like the unit, leaves their value without the
// increments above them.
func (t *Tree[T]) Label(i int) (value, pending string) {
	if i <= 0 || i >= len(t.node) {
		return "", ""
	}
	s := fmt.Sprintf("%v", t.node[i])
	if i >= t.layout.Len {
		return s, ""
	}
	if s == fmt.Sprintf("%v", t.m.Unit()) {
		return "", ""
	}
	return "", s
}
