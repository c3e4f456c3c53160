package lazysegtree

import (
	"fmt"

	"github.com/npillmayer/adsl/algebra"
	"github.com/npillmayer/adsl/internal/implicit"
)

// Tree is a lazy segment tree with operators of type O acting on values of
// type T.
//
// For every inner node i: node[i] == Space.Op(calcAt(2i), calcAt(2i+1)), with
// calcAt(i) == Act(lazy[i], node[i]). A node is clean if lazy[i] is the domain's
// unit, pending otherwise.
type Tree[O, T any] struct {
	a      algebra.Action[O, T]
	dom    algebra.CommutativeMonoid[O]
	space  algebra.Monoid[T]
	layout implicit.Layout
	node   []T
	lazy   []O
}

// New creates a tree of n elements, all of them the space's unit.
func New[O, T any](a algebra.Action[O, T], n int) *Tree[O, T] {
	t := &Tree[O, T]{
		a:      a,
		dom:    a.Domain(),
		space:  a.Space(),
		layout: implicit.For(n),
	}
	if t.layout.Len == 0 {
		return t
	}
	t.node = make([]T, t.layout.Nodes())
	t.lazy = make([]O, t.layout.Nodes())
	u, id := t.space.Unit(), t.dom.Unit()
	for i := range t.node {
		t.node[i] = u
		t.lazy[i] = id
	}
	return t
}

// From creates a tree holding a copy of values, all nodes clean.
func From[O, T any](a algebra.Action[O, T], values []T) *Tree[O, T] {
	t := New(a, len(values))
	if t.layout.Len == 0 {
		return t
	}
	copy(t.node[t.layout.Len:], values)
	for i := t.layout.Len - 1; i > 0; i-- {
		t.node[i] = t.space.Op(t.node[i<<1], t.node[i<<1|1])
	}
	return t
}

// NewCounted creates a range-add tree of n elements, all of them 0. Every
// element is a sum of count 1, which algebra.AddToSum needs to scale added
// amounts; a tree from New would hold the unit (0, 0) and ignore any addition.
func NewCounted[T algebra.Real](n int) *Tree[T, algebra.Counted[T]] {
	values := make([]algebra.Counted[T], max(n, 0))
	for i := range values {
		values[i] = algebra.CountOf(T(0))
	}
	return From[T, algebra.Counted[T]](algebra.AddToSum[T](), values)
}

// Size returns the number of elements.
func (t *Tree[O, T]) Size() int {
	return t.layout.Size
}

// IsEmpty is true for a tree without elements.
func (t *Tree[O, T]) IsEmpty() bool {
	return t.layout.Size == 0
}

// calcAt is the aggregate of node i's subtree, including lazy[i].
func (t *Tree[O, T]) calcAt(i int) T {
	return t.a.Act(t.lazy[i], t.node[i])
}

// appendOpAt parks o at node i, after anything already pending there.
func (t *Tree[O, T]) appendOpAt(i int, o O) {
	t.lazy[i] = t.dom.Op(t.lazy[i], o)
}

// propAt hands the operator pending at inner node i down to its children and
// leaves i clean.
func (t *Tree[O, T]) propAt(i int) {
	o := t.lazy[i]
	t.appendOpAt(i<<1, o)
	t.appendOpAt(i<<1|1, o)
	t.node[i] = t.space.Op(t.calcAt(i<<1), t.calcAt(i<<1|1))
	t.lazy[i] = t.dom.Unit()
}

// propTo cleans every ancestor of node i, root first.
func (t *Tree[O, T]) propTo(i int) {
	for h := t.layout.Height; h >= 1; h-- {
		t.propAt(i >> h)
	}
}

// reflect recomputes every ancestor of node i from its children, bottom-up.
func (t *Tree[O, T]) reflect(i int) {
	for i >>= 1; i > 0; i >>= 1 {
		t.node[i] = t.space.Op(t.calcAt(i<<1), t.calcAt(i<<1|1))
	}
}

// Append applies o to every element of [l, r). A range which is empty or
// exceeds the tree leaves the tree untouched.
func (t *Tree[O, T]) Append(l, r int, o O) {
	if !t.layout.ValidRange(l, r) {
		tracer().Debugf("lazysegtree: ignoring append to range [%d,%d), size is %d", l, r, t.layout.Size)
		return
	}
	l, r = t.layout.Leaf(l), t.layout.Leaf(r)
	t.propTo(l)
	t.propTo(r - 1)
	for ll, rr := l, r; ll < rr; ll, rr = ll>>1, rr>>1 {
		if ll&1 == 1 {
			t.appendOpAt(ll, o)
			ll++
		}
		if rr&1 == 1 {
			rr--
			t.appendOpAt(rr, o)
		}
	}
	t.reflect(l)
	t.reflect(r - 1)
}

// Update replaces element idx by updater(element idx). An index outside
// [0, Size) leaves the tree untouched.
func (t *Tree[O, T]) Update(idx int, updater func(T) T) {
	if !t.layout.ValidIndex(idx) {
		tracer().Debugf("lazysegtree: ignoring update of index %d, size is %d", idx, t.layout.Size)
		return
	}
	i := t.layout.Leaf(idx)
	t.propTo(i)
	t.node[i] = updater(t.calcAt(i))
	t.lazy[i] = t.dom.Unit()
	t.reflect(i)
}

// Set replaces element idx by v.
func (t *Tree[O, T]) Set(idx int, v T) {
	t.Update(idx, func(T) T { return v })
}

// Get returns element idx, or false if idx is out of range.
func (t *Tree[O, T]) Get(idx int) (T, bool) {
	if !t.layout.ValidIndex(idx) {
		tracer().Debugf("lazysegtree: no element at index %d, size is %d", idx, t.layout.Size)
		var zero T
		return zero, false
	}
	i := t.layout.Leaf(idx)
	t.propTo(i)
	return t.calcAt(i), true
}

// Accumulate aggregates the elements in [l, r). It returns false for a range
// which is empty or exceeds the tree.
func (t *Tree[O, T]) Accumulate(l, r int) (T, bool) {
	if !t.layout.ValidRange(l, r) {
		tracer().Debugf("lazysegtree: no aggregate for range [%d,%d), size is %d", l, r, t.layout.Size)
		var zero T
		return zero, false
	}
	l, r = t.layout.Leaf(l), t.layout.Leaf(r)
	t.propTo(l)
	t.propTo(r - 1)
	resL, resR := t.space.Unit(), t.space.Unit()
	for ; l < r; l, r = l>>1, r>>1 {
		if l&1 == 1 {
			resL = t.space.Op(resL, t.calcAt(l))
			l++
		}
		if r&1 == 1 {
			r--
			resR = t.space.Op(t.calcAt(r), resR)
		}
	}
	return t.space.Op(resL, resR), true
}

// All aggregates every element; for an empty tree this is the space's unit.
func (t *Tree[O, T]) All() T {
	if t.layout.Len == 0 {
		return t.space.Unit()
	}
	return t.calcAt(1)
}

// Check validates the aggregation invariant of every inner node, comparing
// values with eq. Pending operators are left in place.
func (t *Tree[O, T]) Check(eq func(x, y T) bool) error {
	if len(t.node) != t.layout.Nodes() || len(t.lazy) != len(t.node) {
		return fmt.Errorf("%w: %d nodes and %d operators for %d leaves",
			ErrInvariant, len(t.node), len(t.lazy), t.layout.Len)
	}
	for i := t.layout.Len - 1; i > 0; i-- {
		if want := t.space.Op(t.calcAt(i<<1), t.calcAt(i<<1|1)); !eq(t.node[i], want) {
			return fmt.Errorf("%w: node %d holds %v, children aggregate to %v",
				ErrInvariant, i, t.node[i], want)
		}
	}
	return nil
}

// --- Inspection ------------------------------------------------------------

// Cap returns the number of leaves, including padding.
func (t *Tree[O, T]) Cap() int {
	return t.layout.Len
}

// Label renders node i for debugging output: the stored aggregate and the
// operator pending at i. An operator printing like the domain's unit counts as
// nothing pending.
func (t *Tree[O, T]) Label(i int) (value, pending string) {
	if i <= 0 || i >= len(t.node) {
		return "", ""
	}
	value = fmt.Sprintf("%v", t.node[i])
	if p := fmt.Sprintf("%v", t.lazy[i]); p != fmt.Sprintf("%v", t.dom.Unit()) {
		pending = p
	}
	return
}
