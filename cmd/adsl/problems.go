package main

import (
	"bufio"
	"fmt"
	"io"

	"github.com/npillmayer/adsl"
	"github.com/npillmayer/adsl/algebra"
	"github.com/npillmayer/adsl/dualsegtree"
	"github.com/npillmayer/adsl/fenwick"
	"github.com/npillmayer/adsl/inspect"
	"github.com/npillmayer/adsl/lazysegtree"
	"github.com/npillmayer/adsl/segtree"
	"github.com/spf13/cobra"
)

// maxElements bounds the size of a problem instance.
const maxElements = 1 << 24

// assignInf is the initial value of every element in AOJ DSL_2_F.
const assignInf = 1<<31 - 1

// problem processes queries read from sc and writes answers to out. It
// returns the tree it worked on, or nil if the tree cannot be rendered.
type problem struct {
	name  string
	short string
	run   func(sc *scanner, out io.Writer) (inspect.Layered, error)
}

var problems = []problem{
	{"segtree", "point add and range sum with a segment tree", pointAddRangeSumSegtree},
	{"fenwick", "point add and range sum with a Fenwick tree", pointAddRangeSumFenwick},
	{"dual", "range add and point get with a dual segment tree (DSL_2_E)", rangeAddPointGet},
	{"lazy", "range assign and range min with a lazy segment tree (DSL_2_F)", rangeAssignRangeMin},
}

func solve(p problem, cmd *cobra.Command, dumpFormat string) error {
	out := bufio.NewWriter(cmd.OutOrStdout())
	adsl.T().Infof("running problem %s", p.name)
	tree, err := p.run(newScanner(cmd.InOrStdin()), out)
	if ferr := out.Flush(); err == nil {
		err = ferr
	}
	if err != nil || dumpFormat == "" {
		return err
	}
	if tree == nil {
		return fmt.Errorf("%w: problem %s", adsl.ErrNotLayered, p.name)
	}
	return renderers[dumpFormat](tree, cmd.ErrOrStderr())
}

// Input: N Q, then N values, then Q queries "0 p x" (add x to a[p]) or
// "1 l r" (sum of a[l..r-1]).
func pointAddRangeSumSegtree(sc *scanner, out io.Writer) (inspect.Layered, error) {
	n := sc.within(0, maxElements)
	q := sc.within(0, maxElements)
	values := sc.int64s(n)
	if err := sc.Err(); err != nil {
		return nil, err
	}
	tree := segtree.From[int64](algebra.Sum[int64]{}, values)
	for ; q > 0 && sc.Err() == nil; q-- {
		switch sc.within(0, 1) {
		case 0:
			p, x := sc.within(0, n-1), sc.int64()
			if sc.Err() == nil {
				tree.Update(p, func(v int64) int64 { return v + x })
			}
		case 1:
			l := sc.within(0, n)
			r := sc.within(l, n)
			if sc.Err() == nil {
				fmt.Fprintln(out, rangeOrUnit(tree.Accumulate, l, r))
			}
		}
	}
	return tree, sc.Err()
}

func pointAddRangeSumFenwick(sc *scanner, out io.Writer) (inspect.Layered, error) {
	n := sc.within(0, maxElements)
	q := sc.within(0, maxElements)
	values := sc.int64s(n)
	if err := sc.Err(); err != nil {
		return nil, err
	}
	bit := fenwick.FromGroup[int64](algebra.Sum[int64]{}, values)
	for ; q > 0 && sc.Err() == nil; q-- {
		switch sc.within(0, 1) {
		case 0:
			p, x := sc.within(0, n-1), sc.int64()
			if sc.Err() == nil {
				bit.AppendAt(p, x)
			}
		case 1:
			l := sc.within(0, n)
			r := sc.within(l, n)
			if sc.Err() == nil {
				fmt.Fprintln(out, rangeOrUnit(bit.AccumulateRange, l, r))
			}
		}
	}
	return nil, sc.Err()
}

// rangeOrUnit aggregates [l, r), with an empty range yielding 0.
func rangeOrUnit(accumulate func(l, r int) (int64, bool), l, r int) int64 {
	v, _ := accumulate(l, r)
	return v
}

// Input: n q, then queries "0 s t x" (add x to a_s … a_t) or "1 i" (print a_i),
// indices 1-based.
func rangeAddPointGet(sc *scanner, out io.Writer) (inspect.Layered, error) {
	n := sc.within(1, maxElements)
	q := sc.within(0, maxElements)
	if err := sc.Err(); err != nil {
		return nil, err
	}
	dual := dualsegtree.New[int64](algebra.Sum[int64]{}, n)
	for ; q > 0 && sc.Err() == nil; q-- {
		switch sc.within(0, 1) {
		case 0:
			s := sc.within(1, n)
			t := sc.within(s, n)
			x := sc.int64()
			if sc.Err() == nil {
				dual.Append(s-1, t, x)
			}
		case 1:
			i := sc.within(1, n)
			if sc.Err() == nil {
				v, _ := dual.Get(i - 1)
				fmt.Fprintln(out, v)
			}
		}
	}
	return dual, sc.Err()
}

// Input: n q, then queries "0 s t x" (set a_s … a_t to x) or "1 s t" (print
// the minimum of a_s … a_t), indices 0-based. Initially every a_i is 2³¹−1.
func rangeAssignRangeMin(sc *scanner, out io.Writer) (inspect.Layered, error) {
	n := sc.within(1, maxElements)
	q := sc.within(0, maxElements)
	if err := sc.Err(); err != nil {
		return nil, err
	}
	a := algebra.Assign[int64](algebra.Min[int64]{Ceil: assignInf})
	lazy := lazysegtree.New[algebra.Optional[int64], int64](a, n)
	for ; q > 0 && sc.Err() == nil; q-- {
		switch sc.within(0, 1) {
		case 0:
			s := sc.within(0, n-1)
			t := sc.within(s, n-1)
			x := sc.int64()
			if sc.Err() == nil {
				lazy.Append(s, t+1, algebra.Some(x))
			}
		case 1:
			s := sc.within(0, n-1)
			t := sc.within(s, n-1)
			if sc.Err() == nil {
				v, _ := lazy.Accumulate(s, t+1)
				fmt.Fprintln(out, v)
			}
		}
	}
	return lazy, sc.Err()
}
