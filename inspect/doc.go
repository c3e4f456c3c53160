/*
Package inspect renders the implicit trees of this module for debugging.

Segment trees, dual segment trees and lazy segment trees all store a complete
binary tree in an array and expose it through interface Layered. Renderers
work layer by layer, from the root down to the leaves:

  - Console prints one line per layer, with colored labels centered over their
    subtrees.
  - ToDot writes a Graphviz DOT digraph.
  - ToHTML writes an HTML table, one row per layer.
  - ToYAML writes the layers as a YAML document, for tools to pick up.

Fenwick trees do not fit a layered picture, their nodes cover overlapping
prefixes, and are therefore not supported.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package inspect

import (
	"io"
	"math/bits"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'adsl'
func tracer() tracing.Trace {
	return tracing.Select("adsl")
}

// Layered is an array-backed complete binary tree. Node 1 is the root, node i
// has children 2i and 2i+1, and the Cap() leaves follow the inner nodes.
type Layered interface {
	Size() int                           // number of elements
	Cap() int                            // number of leaves, including padding
	Label(i int) (value, pending string) // display texts for node i ∈ [1, 2·Cap)
}

// shape holds what renderers need to know about the layers of a tree.
type shape struct {
	cap, size, height int
}

func shapeOf(tree Layered) shape {
	s := shape{cap: tree.Cap(), size: tree.Size()}
	if s.cap > 0 {
		s.height = bits.Len(uint(s.cap)) - 1
	}
	return s
}

// layer returns the node index range [from, to) of layer d, the root being
// layer 0.
func (s shape) layer(d int) (from, to int) {
	return 1 << d, 2 << d
}

// span is the number of leaves below a node in layer d.
func (s shape) span(d int) int {
	return 1 << (s.height - d)
}

// isPadding is true for nodes in layer d with padding leaves only.
func (s shape) isPadding(i, d int) bool {
	leftmost := i << (s.height - d)
	return leftmost >= s.cap+s.size
}

// stickyWriter remembers the first write error and drops every write after it.
type stickyWriter struct {
	w   io.Writer
	err error
}

func (sw *stickyWriter) Write(p []byte) (int, error) {
	if sw.err != nil {
		return 0, sw.err
	}
	n, err := sw.w.Write(p)
	sw.err = err
	return n, err
}
