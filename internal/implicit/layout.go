/*
Package implicit holds the index arithmetic shared by the array-backed trees.

A tree over n elements is stored as an implicit complete binary tree with
Len leaves, Len being the smallest power of two ≥ n. Node 1 is the root, node i
has children 2i and 2i+1, and leaf k lives at index Len+k. Index 0 is unused.
*/
package implicit

import "math/bits"

// Layout describes the shape of an implicit tree.
type Layout struct {
	Size   int // number of elements requested by the client
	Len    int // number of leaves, a power of two ≥ Size, or 0
	Height int // log₂(Len)
}

// For computes the layout for n elements. n ≤ 0 yields the empty layout.
func For(n int) Layout {
	if n <= 0 {
		return Layout{}
	}
	l := Layout{Size: n, Len: 1}
	if n > 1 {
		l.Height = bits.Len(uint(n - 1))
		l.Len = 1 << l.Height
	}
	return l
}

// Nodes is the length of the node slice of a heap-ordered tree (2·Len).
func (l Layout) Nodes() int {
	return 2 * l.Len
}

// Leaf maps element index k to its node index.
func (l Layout) Leaf(k int) int {
	return l.Len + k
}

// ValidIndex is true for 0 ≤ k < Size.
func (l Layout) ValidIndex(k int) bool {
	return k >= 0 && k < l.Size
}

// ValidRange is true for a non-empty half-open range [from, to) within
// [0, Size).
func (l Layout) ValidRange(from, to int) bool {
	return from >= 0 && from < l.Size && to <= l.Size && from < to
}

// IsPadding is true for leaf nodes beyond the client's elements.
func (l Layout) IsPadding(i int) bool {
	return i >= l.Len+l.Size
}

// LowBit isolates the lowest set bit of i, the span of Fenwick node i.
func LowBit(i int) int {
	return i & -i
}
