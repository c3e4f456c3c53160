package algebra

import (
	"errors"
	"math"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	. "github.com/smartystreets/goconvey/convey"
)

func eq[T comparable](x, y T) bool { return x == y }

func TestNumericDescriptors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "adsl")
	defer teardown()
	//
	ints := []int{-7, -1, 0, 1, 2, 13, 100}
	Convey("Given the predefined numeric descriptors", t, func() {
		Convey("Sum is a commutative group", func() {
			So(CheckGroup[int](Sum[int]{}, eq[int], ints), ShouldBeNil)
			So(CheckCommutative[int](Sum[int]{}, eq[int], ints), ShouldBeNil)
		})
		Convey("Sum over an unsigned type is a group modulo 2ⁿ", func() {
			bytes := []uint8{0, 1, 7, 128, 255}
			So(CheckGroup[uint8](Sum[uint8]{}, eq[uint8], bytes), ShouldBeNil)
		})
		Convey("DefaultGroup is Sum", func() {
			var g DefaultGroup[int64]
			So(g.Op(40, 2), ShouldEqual, 42)
			So(g.Inv(5), ShouldEqual, -5)
		})
		Convey("Product is a commutative monoid", func() {
			So(CheckMonoid[int](Product[int]{}, eq[int], ints), ShouldBeNil)
			So(CheckCommutative[int](Product[int]{}, eq[int], ints), ShouldBeNil)
		})
		Convey("Xor is a group where every element is self-inverse", func() {
			bits := []uint{0, 1, 6, 0xff, 0xf0f0}
			So(CheckGroup[uint](Xor[uint]{}, eq[uint], bits), ShouldBeNil)
		})
		Convey("Max and Min use their bound as identity", func() {
			mx, mn := Max[int]{Floor: math.MinInt}, Min[int]{Ceil: math.MaxInt}
			So(CheckMonoid[int](mx, eq[int], ints), ShouldBeNil)
			So(CheckMonoid[int](mn, eq[int], ints), ShouldBeNil)
			So(mx.Op(3, 9), ShouldEqual, 9)
			So(mn.Op(3, 9), ShouldEqual, 3)
		})
		Convey("Concat is a monoid but not commutative", func() {
			words := []string{"", "a", "bc", "def"}
			So(CheckMonoid[string](Concat[string]{}, eq[string], words), ShouldBeNil)
			err := CheckCommutative[string](Concat[string]{}, eq[string], words)
			So(errors.Is(err, ErrLawViolation), ShouldBeTrue)
		})
	})
}

func TestBuilders(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "adsl")
	defer teardown()
	//
	Convey("Given descriptors made from functions", t, func() {
		gcd := func(x, y int) int {
			for y != 0 {
				x, y = y, x%y
			}
			return x
		}
		Convey("a gcd monoid satisfies the laws", func() {
			m := MakeCommutativeMonoid(0, gcd)
			So(CheckMonoid[int](m, eq[int], []int{0, 4, 6, 9, 12}), ShouldBeNil)
			So(m.Op(12, 18), ShouldEqual, 6)
		})
		Convey("subtraction is detected as not associative", func() {
			m := MakeMonoid(0, func(x, y int) int { return x - y })
			err := CheckMonoid[int](m, eq[int], []int{1, 2, 3})
			So(err, ShouldNotBeNil)
			So(errors.Is(err, ErrLawViolation), ShouldBeTrue)
		})
		Convey("a group made from functions inverts", func() {
			g := MakeCommutativeGroup(0, func(x, y int) int { return x + y }, func(x int) int { return -x })
			So(CheckGroup[int](g, eq[int], []int{-3, 0, 5}), ShouldBeNil)
		})
		Convey("a broken inverse is detected", func() {
			g := MakeGroup(0, func(x, y int) int { return x + y }, func(x int) int { return x })
			So(errors.Is(CheckGroup[int](g, eq[int], []int{0, 5}), ErrLawViolation), ShouldBeTrue)
		})
	})
}

func TestOptionalAndLifting(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "adsl")
	defer teardown()
	//
	Convey("Given a semigroup without neutral element", t, func() {
		first := MakeSemigroup(func(x, y string) string { return x })
		m := ToMonoid[string](first)
		Convey("none is the synthesized unit", func() {
			So(m.Unit().IsNone(), ShouldBeTrue)
			So(m.Op(None[string](), Some("x")), ShouldResemble, Some("x"))
			So(m.Op(Some("x"), None[string]()), ShouldResemble, Some("x"))
			So(m.Op(Some("x"), Some("y")), ShouldResemble, Some("x"))
		})
		Convey("the lifted monoid satisfies the laws", func() {
			samples := []Optional[string]{None[string](), Some("a"), Some("b"), Some("")}
			So(CheckMonoid[Optional[string]](m, eq[Optional[string]], samples), ShouldBeNil)
		})
		Convey("optional values report presence", func() {
			v, ok := Some(3).Get()
			So(ok, ShouldBeTrue)
			So(v, ShouldEqual, 3)
			_, ok = None[int]().Get()
			So(ok, ShouldBeFalse)
			So(None[int]().OrElse(7), ShouldEqual, 7)
			So(Some(1).String(), ShouldEqual, "1")
			So(None[int]().String(), ShouldEqual, "none")
		})
	})
	Convey("Given a commutative semigroup", t, func() {
		m := ToCommutativeMonoid[int](MakeSemigroup(func(x, y int) int { return max(x, y) }))
		samples := []Optional[int]{None[int](), Some(-4), Some(0), Some(8)}
		So(CheckMonoid[Optional[int]](m, eq[Optional[int]], samples), ShouldBeNil)
		So(CheckCommutative[Optional[int]](m, eq[Optional[int]], samples), ShouldBeNil)
	})
}

func TestPairMonoid(t *testing.T) {
	Convey("Given a product of Sum and Concat", t, func() {
		m := PairOf[int, string](Sum[int]{}, Concat[string]{})
		samples := []Pair[int, string]{MakePair(0, ""), MakePair(1, "a"), MakePair(-2, "bc")}
		So(CheckMonoid[Pair[int, string]](m, eq[Pair[int, string]], samples), ShouldBeNil)
		So(m.Op(MakePair(1, "a"), MakePair(2, "b")), ShouldResemble, MakePair(3, "ab"))
		So(MakePair(1, "a").String(), ShouldEqual, "(1, a)")
	})
}

func TestActions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "adsl")
	defer teardown()
	//
	Convey("Given the assignment action over min", t, func() {
		a := Assign[int](Min[int]{Ceil: math.MaxInt})
		ops := []Optional[int]{None[int](), Some(1), Some(5), Some(-3)}
		values := []int{-2, 0, 4, 11}
		So(CheckAction[Optional[int], int](a, eq[int], ops, values), ShouldBeNil)
		So(CheckMonoid[Optional[int]](a.Domain(), eq[Optional[int]], ops), ShouldBeNil)
		So(Endomorphism[Optional[int], int](a, Some(9))(2), ShouldEqual, 9)
		So(Endomorphism[Optional[int], int](a, None[int]())(2), ShouldEqual, 2)
	})
	Convey("Given the range-add action over counted sums", t, func() {
		a := AddToSum[int64]()
		ops := []int64{0, 1, -4, 10}
		values := []Counted[int64]{{First: 0, Second: 0}, CountOf[int64](3), {First: 12, Second: 4}}
		So(CheckAction[int64, Counted[int64]](a, eq[Counted[int64]], ops, values), ShouldBeNil)
		So(a.Act(2, Counted[int64]{First: 12, Second: 4}), ShouldResemble, Counted[int64]{First: 20, Second: 4})
	})
	Convey("Given an action which ignores the size of a range", t, func() {
		a := MakeAction[int, int](Sum[int]{}, Sum[int]{}, func(d, x int) int { return x + d })
		err := CheckAction[int, int](a, eq[int], []int{0, 1}, []int{1, 2})
		So(errors.Is(err, ErrLawViolation), ShouldBeTrue)
		So(err.Error(), ShouldContainSubstring, "distribute")
	})
}
