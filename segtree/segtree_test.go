package segtree

import (
	"errors"
	"math"
	"math/rand"
	"strings"
	"testing"

	"github.com/npillmayer/adsl/algebra"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func eq[T comparable](x, y T) bool { return x == y }

func TestMaxRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "adsl")
	defer teardown()
	//
	tree := From[int](algebra.Max[int]{Floor: math.MinInt}, []int{1, 6, 2, 9, 3})
	if v, ok := tree.Accumulate(0, 5); !ok || v != 9 {
		t.Errorf("expected max[0,5) = 9, got %d (%v)", v, ok)
	}
	if v, ok := tree.Accumulate(1, 3); !ok || v != 6 {
		t.Errorf("expected max[1,3) = 6, got %d (%v)", v, ok)
	}
	tree.Set(2, 100)
	if v, ok := tree.Accumulate(0, 5); !ok || v != 100 {
		t.Errorf("expected max[0,5) = 100 after set, got %d (%v)", v, ok)
	}
	if err := tree.Check(eq[int]); err != nil {
		t.Fatalf("tree invalid: %v", err)
	}
}

func TestEmptyAndSingleton(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "adsl")
	defer teardown()
	//
	empty := New[int](algebra.Sum[int]{}, 0)
	if !empty.IsEmpty() || empty.Size() != 0 {
		t.Errorf("expected empty tree, size is %d", empty.Size())
	}
	if _, ok := empty.Accumulate(0, 1); ok {
		t.Errorf("expected no aggregate from empty tree")
	}
	if empty.All() != 0 {
		t.Errorf("expected unit as aggregate of empty tree")
	}
	empty.Set(0, 3) // must not panic
	if New[int](algebra.Sum[int]{}, -4).Size() != 0 {
		t.Errorf("negative size should yield an empty tree")
	}
	one := From[int](algebra.Sum[int]{}, []int{42})
	if v, ok := one.Accumulate(0, 1); !ok || v != 42 {
		t.Errorf("expected 42, got %d", v)
	}
	one.Update(0, func(x int) int { return x + 58 })
	if one.All() != 100 {
		t.Errorf("expected 100 after update, got %d", one.All())
	}
}

func TestInvalidRangesAreNoOps(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "adsl")
	defer teardown()
	//
	tree := From[int](algebra.Sum[int]{}, []int{5, 4, 3, 2, 1})
	before := snapshot(tree)
	tree.Set(5, 100)
	tree.Set(-1, 100)
	tree.Update(17, func(x int) int { return x * 2 })
	after := snapshot(tree)
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("out-of-range mutation changed element %d: %d -> %d", i, before[i], after[i])
		}
	}
	for _, r := range [][2]int{{5, 5}, {0, 6}, {3, 3}, {4, 2}, {-1, 3}} {
		if _, ok := tree.Accumulate(r[0], r[1]); ok {
			t.Errorf("expected no value for [%d,%d)", r[0], r[1])
		}
	}
	if _, ok := tree.Get(5); ok {
		t.Errorf("expected no value for Get(5)")
	}
}

func snapshot(tree *Tree[int]) []int {
	out := make([]int, 0, tree.Size())
	for i := 0; i < tree.Size(); i++ {
		v, _ := tree.Get(i)
		out = append(out, v)
	}
	return out
}

func TestNonCommutativeOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "adsl")
	defer teardown()
	//
	letters := strings.Split("abcdefghijk", "")
	tree := From[string](algebra.Concat[string]{}, letters)
	for l := 0; l < len(letters); l++ {
		for r := l + 1; r <= len(letters); r++ {
			got, ok := tree.Accumulate(l, r)
			want := strings.Join(letters[l:r], "")
			if !ok || got != want {
				t.Fatalf("concat[%d,%d) = %q, want %q", l, r, got, want)
			}
		}
	}
	tree.Set(3, "X")
	if got, _ := tree.Accumulate(2, 5); got != "cXe" {
		t.Errorf("expected cXe, got %q", got)
	}
}

func TestRandomizedSumAgainstModel(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "adsl")
	defer teardown()
	//
	for _, seed := range []int64{1, 7, 2024} {
		r := rand.New(rand.NewSource(seed))
		n := r.Intn(40) + 1
		model := make([]int64, n)
		for i := range model {
			model[i] = r.Int63n(1000) - 500
		}
		tree := From[int64](algebra.Sum[int64]{}, model)
		for step := 0; step < 500; step++ {
			if r.Intn(2) == 0 {
				idx, delta := r.Intn(n), r.Int63n(100)-50
				tree.Update(idx, func(x int64) int64 { return x + delta })
				model[idx] += delta
				continue
			}
			l := r.Intn(n)
			rr := l + 1 + r.Intn(n-l)
			var want int64
			for _, v := range model[l:rr] {
				want += v
			}
			if got, ok := tree.Accumulate(l, rr); !ok || got != want {
				t.Fatalf("seed %d step %d: sum[%d,%d) = %d, want %d", seed, step, l, rr, got, want)
			}
		}
		if err := tree.Check(eq[int64]); err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
	}
}

func TestCheckDetectsCorruption(t *testing.T) {
	tree := From[int](algebra.Sum[int]{}, []int{1, 2, 3})
	tree.node[1] = 99
	if err := tree.Check(eq[int]); !errors.Is(err, ErrInvariant) {
		t.Errorf("expected ErrInvariant, got %v", err)
	}
}

func TestLabels(t *testing.T) {
	tree := From[int](algebra.Sum[int]{}, []int{1, 2, 3})
	if tree.Cap() != 4 {
		t.Errorf("expected 4 leaves, have %d", tree.Cap())
	}
	if v, p := tree.Label(1); v != "6" || p != "" {
		t.Errorf("root label = %q/%q", v, p)
	}
	if v, _ := tree.Label(0); v != "" {
		t.Errorf("node 0 should not be labeled")
	}
}
