package inspect

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/npillmayer/adsl/algebra"
	"github.com/npillmayer/adsl/dualsegtree"
	"github.com/npillmayer/adsl/lazysegtree"
	"github.com/npillmayer/adsl/segtree"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/uax/uax11"
	"gopkg.in/yaml.v3"
)

var (
	_ Layered = (*segtree.Tree[int])(nil)
	_ Layered = (*dualsegtree.Tree[int])(nil)
	_ Layered = (*lazysegtree.Tree[algebra.Optional[int], int])(nil)
)

func sumTree() *segtree.Tree[int] {
	return segtree.From[int](algebra.Sum[int]{}, []int{1, 2, 3})
}

func TestConsoleLayers(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "adsl")
	defer teardown()
	//
	color.NoColor = true
	var buf bytes.Buffer
	config := &Config{LineWidth: 8, Context: uax11.LatinContext}
	if err := NewConsole(nil).Print(sumTree(), &buf, config); err != nil {
		t.Fatal(err)
	}
	want := "   6    \n 3   3  \n1 2 3 0 \n"
	if buf.String() != want {
		t.Errorf("unexpected console output:\n%q\nwant\n%q", buf.String(), want)
	}
}

func TestLabelWidths(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "adsl")
	defer teardown()
	//
	NewConsole(nil)
	for _, c := range []struct {
		text  string
		width int
	}{
		{"1", 1}, {"12", 2}, {"-345", 4}, {"#*", 2}, {"abc", 3}, {"6 [2]", 5}, {"über", 4},
	} {
		if w := textWidth(c.text, uax11.LatinContext); w != c.width {
			t.Errorf("width of %q = %d, want %d", c.text, w, c.width)
		}
	}
	if w := textWidth("世界", uax11.LatinContext); w != 4 {
		t.Errorf("expected wide runes to count 2 each, got %d", w)
	}
}

func TestConsoleAlignsMultiDigitLabels(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "adsl")
	defer teardown()
	//
	color.NoColor = true
	var buf bytes.Buffer
	tree := segtree.From[int](algebra.Sum[int]{}, []int{10, 20})
	if err := NewConsole(nil).Print(tree, &buf, &Config{Context: uax11.LatinContext}); err != nil {
		t.Fatal(err)
	}
	want := "  30  \n10 20 \n"
	if buf.String() != want {
		t.Errorf("unexpected console output:\n%q\nwant\n%q", buf.String(), want)
	}
}

var errDiskFull = errors.New("disk full")

// failingWriter accepts n writes, then fails.
type failingWriter struct{ n int }

func (fw *failingWriter) Write(p []byte) (int, error) {
	if fw.n == 0 {
		return 0, errDiskFull
	}
	fw.n--
	return len(p), nil
}

func TestWriteErrorsAreReported(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "adsl")
	defer teardown()
	//
	color.NoColor = true
	config := &Config{LineWidth: 8, Context: uax11.LatinContext}
	for n := 0; n < 3; n++ {
		if err := NewConsole(nil).Print(sumTree(), &failingWriter{n: n}, config); !errors.Is(err, errDiskFull) {
			t.Errorf("console: expected write error after %d writes, got %v", n, err)
		}
		if err := ToDot(sumTree(), &failingWriter{n: n}); !errors.Is(err, errDiskFull) {
			t.Errorf("dot: expected write error after %d writes, got %v", n, err)
		}
	}
	empty := segtree.New[int](algebra.Sum[int]{}, 0)
	if err := NewConsole(nil).Print(empty, &failingWriter{}, config); !errors.Is(err, errDiskFull) {
		t.Errorf("expected write error for empty tree, got %v", err)
	}
}

func TestConsolePending(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "adsl")
	defer teardown()
	//
	color.NoColor = true
	a := algebra.Assign[int](algebra.Min[int]{Ceil: math.MaxInt32})
	lazy := lazysegtree.From[algebra.Optional[int], int](a, []int{4, 5, 6, 7})
	lazy.Append(0, 4, algebra.Some(2))
	var buf bytes.Buffer
	if err := NewConsole(nil).Print(lazy, &buf, &Config{LineWidth: 20}); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 layers, got %d", len(lines))
	}
	if !strings.Contains(lines[0], "4 [2]") {
		t.Errorf("expected root with pending operator, got %q", lines[0])
	}
	if strings.Contains(lines[2], "[") {
		t.Errorf("leaves should have nothing pending: %q", lines[2])
	}
}

func TestConsoleEmpty(t *testing.T) {
	var buf bytes.Buffer
	empty := segtree.New[int](algebra.Sum[int]{}, 0)
	if err := NewConsole(nil).Print(empty, &buf, &Config{LineWidth: 10}); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "(empty)\n" {
		t.Errorf("unexpected output for empty tree: %q", buf.String())
	}
}

func TestDot(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "adsl")
	defer teardown()
	//
	var buf bytes.Buffer
	if err := ToDot(sumTree(), &buf); err != nil {
		t.Fatal(err)
	}
	dot := buf.String()
	if !strings.HasPrefix(dot, "strict digraph {") || !strings.HasSuffix(dot, "}\n") {
		t.Fatalf("not a digraph: %s", dot)
	}
	for _, want := range []string{`"1" -> "2"`, `"3" -> "7"`, `"1" [label="6"`, "color=gray"} {
		if !strings.Contains(dot, want) {
			t.Errorf("expected DOT to contain %s", want)
		}
	}
	if strings.Contains(dot, `"4" ->`) {
		t.Errorf("leaves must not have edges")
	}
	dual := dualsegtree.New[string](algebra.Concat[string]{}, 2)
	dual.Append(0, 2, `"q"`)
	buf.Reset()
	if err := ToDot(dual, &buf); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), `[\"q\"]`) {
		t.Errorf("expected escaped pending label, got %s", buf.String())
	}
}

func TestHTML(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "adsl")
	defer teardown()
	//
	var buf bytes.Buffer
	if err := ToHTML(sumTree(), &buf); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{
		`<table class="adsl-tree">`,
		`<td colspan="4">6</td>`,
		`<td colspan="1" class="padding">0</td>`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected HTML to contain %s, got %s", want, out)
		}
	}
	a := algebra.Assign[int](algebra.Min[int]{Ceil: math.MaxInt32})
	lazy := lazysegtree.From[algebra.Optional[int], int](a, []int{4, 5})
	lazy.Append(0, 2, algebra.Some(1))
	buf.Reset()
	if err := ToHTML(lazy, &buf); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), `<span class="pending">1</span>`) {
		t.Errorf("expected pending span, got %s", buf.String())
	}
}

func TestYAML(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "adsl")
	defer teardown()
	//
	var buf bytes.Buffer
	if err := ToYAML(sumTree(), &buf); err != nil {
		t.Fatal(err)
	}
	var doc Document
	if err := yaml.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("cannot read back YAML: %v\n%s", err, buf.String())
	}
	if doc.Size != 3 || doc.Cap != 4 || len(doc.Layers) != 3 {
		t.Fatalf("unexpected document shape: %+v", doc)
	}
	if doc.Layers[0][0].Value != "6" {
		t.Errorf("expected root value 6, got %q", doc.Layers[0][0].Value)
	}
	leaves := doc.Layers[2]
	if !leaves[3].Padding || leaves[2].Padding {
		t.Errorf("expected only the last leaf to be padding: %+v", leaves)
	}
}
