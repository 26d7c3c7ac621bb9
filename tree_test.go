package segtree

import (
	"errors"
	"math/rand"
	"slices"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// traceTo redirects the core tracer to t and returns a function restoring the
// previous tracer.
func traceTo(t *testing.T, level tracing.TraceLevel) func() {
	saved := gtrace.CoreTracer
	gtrace.CoreTracer = gotestingadapter.New(t)
	gtrace.CoreTracer.SetTraceLevel(level)
	return func() { gtrace.CoreTracer = saved }
}

func eqInt64(a, b int64) bool { return a == b }

func mustQuery[V any](t *testing.T, tree *Tree[V], from, to, agg int) V {
	t.Helper()
	v, err := tree.Query(from, to, agg)
	if err != nil {
		t.Fatalf("Query(%d, %d, %d): unexpected error: %v", from, to, agg, err)
	}
	return v
}

func mustUpdate[V any](t *testing.T, tree *Tree[V], from, to int, value V) {
	t.Helper()
	if err := tree.Update(from, to, value); err != nil {
		t.Fatalf("Update(%d, %d, %v): unexpected error: %v", from, to, value, err)
	}
}

func TestProductScenario(t *testing.T) {
	teardown := traceTo(t, tracing.LevelDebug)
	defer teardown()
	//
	tree, err := New([]int64{0, 1, 2, 3, 4, 5}, Aggregator[int64](Product[int64]{}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tree.Size() != 6 {
		t.Errorf("expected size 6, is %d", tree.Size())
	}
	if p := mustQuery(t, tree, 3, 3, 0); p != 3 {
		t.Errorf("product [3,3] = %d, want 3", p)
	}
	if p := mustQuery(t, tree, 0, 3, 0); p != 0 {
		t.Errorf("product [0,3] = %d, want 0", p)
	}
	if p := mustQuery(t, tree, 1, 5, 0); p != 120 {
		t.Errorf("product [1,5] = %d, want 120", p)
	}
	mustUpdate(t, tree, 0, 1, 5)
	if p := mustQuery(t, tree, 0, 2, 0); p != 50 {
		t.Errorf("product [0,2] after update = %d, want 50", p)
	}
	if v := tree.Values(); !slices.Equal(v, []int64{5, 5, 2, 3, 4, 5}) {
		t.Errorf("unexpected array after update: %v", v)
	}
	if err := tree.Check(eqInt64); err != nil {
		t.Error(err)
	}
}

func intAggregators() []Aggregator[int64] {
	return []Aggregator[int64]{Sum[int64]{}, MinInt64(), MaxInt64(), Product[int64]{}}
}

func TestBuildMatchesFold(t *testing.T) {
	array := []int64{3, -1, 4, 1, -5, 9, 2, -6, 5}
	aggs := intAggregators()
	tree, err := New(array, aggs...)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := tree.Check(eqInt64); err != nil {
		t.Fatal(err)
	}
	for a := 0; a < len(array); a++ {
		for b := a; b < len(array); b++ {
			for f, agg := range aggs {
				want := Fold(agg, array[a:b+1]...)
				if got := mustQuery(t, tree, a, b, f); got != want {
					t.Errorf("%T over [%d,%d] = %d, want %d", agg, a, b, got, want)
				}
			}
		}
	}
}

func TestUpdateCoversRange(t *testing.T) {
	array := []int64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}
	aggs := intAggregators()
	tree, err := New(array, aggs...)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	mustUpdate(t, tree, 2, 8, 3)
	for c := 2; c <= 8; c++ {
		for d := c; d <= 8; d++ {
			for f, agg := range aggs {
				want := Repeat(agg, 3, d-c+1)
				if got := mustQuery(t, tree, c, d, f); got != want {
					t.Errorf("%T over [%d,%d] = %d, want %d", agg, c, d, got, want)
				}
			}
		}
	}
	for _, i := range []int{0, 1, 9, 10} {
		if v, _ := tree.Get(i); v != array[i] {
			t.Errorf("position %d changed to %d, should be %d", i, v, array[i])
		}
	}
	if err := tree.Check(eqInt64); err != nil {
		t.Error(err)
	}
}

func TestUpdateIsIdempotent(t *testing.T) {
	array := []int64{4, 8, 15, 16, 23, 42, 7}
	once, _ := New(array, intAggregators()...)
	twice, _ := New(array, intAggregators()...)
	mustUpdate(t, once, 1, 5, -2)
	mustUpdate(t, twice, 1, 5, -2)
	mustUpdate(t, twice, 1, 5, -2)
	for a := 0; a < len(array); a++ {
		for b := a; b < len(array); b++ {
			for f := range intAggregators() {
				if x, y := mustQuery(t, once, a, b, f), mustQuery(t, twice, a, b, f); x != y {
					t.Errorf("aggregator %d over [%d,%d]: %d after one update, %d after two", f, a, b, x, y)
				}
			}
		}
	}
}

func TestSingleElementUpdate(t *testing.T) {
	array := []int64{9, 8, 7, 6, 5}
	tree, _ := New(array, intAggregators()...)
	for k := range array {
		mustUpdate(t, tree, k, k, int64(k*10))
		array[k] = int64(k * 10)
		if v := tree.Values(); !slices.Equal(v, array) {
			t.Fatalf("after update of position %d: %v, want %v", k, v, array)
		}
		if s := mustQuery(t, tree, 0, len(array)-1, 0); s != Fold[int64](Sum[int64]{}, array...) {
			t.Errorf("sum = %d, want %d", s, Fold[int64](Sum[int64]{}, array...))
		}
	}
	if err := tree.Check(eqInt64); err != nil {
		t.Error(err)
	}
}

func TestSingletonTree(t *testing.T) {
	tree, err := New([]int64{42}, intAggregators()...)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for f := range intAggregators() {
		if v := mustQuery(t, tree, 0, 0, f); v != 42 {
			t.Errorf("aggregator %d = %d, want 42", f, v)
		}
	}
	mustUpdate(t, tree, 0, 0, -1)
	if v, _ := tree.Get(0); v != -1 {
		t.Errorf("expected -1 after update, got %d", v)
	}
}

func TestNonCommutativeAggregator(t *testing.T) {
	tree, err := New([]string{"a", "b", "c", "d", "e", "f", "g"}, Aggregator[string](concat{}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s := mustQuery(t, tree, 1, 5, 0); s != "bcdef" {
		t.Errorf("concat [1,5] = %q, want bcdef", s)
	}
	mustUpdate(t, tree, 2, 4, "x")
	if s := mustQuery(t, tree, 0, 6, 0); s != "abxxxfg" {
		t.Errorf("concat [0,6] = %q, want abxxxfg", s)
	}
	if s := mustQuery(t, tree, 3, 4, 0); s != "xx" {
		t.Errorf("concat [3,4] = %q, want xx", s)
	}
}

func TestConstructionErrors(t *testing.T) {
	if _, err := New[int64](nil, Sum[int64]{}); !errors.Is(err, ErrConstruction) {
		t.Errorf("expected ErrConstruction for empty array, got %v", err)
	}
	if _, err := New([]int64{1, 2}); !errors.Is(err, ErrConstruction) {
		t.Errorf("expected ErrConstruction for missing aggregator, got %v", err)
	}
	if _, err := New([]int64{1, 2}, Sum[int64]{}, nil); !errors.Is(err, ErrConstruction) {
		t.Errorf("expected ErrConstruction for nil aggregator, got %v", err)
	}
}

func TestRangeErrors(t *testing.T) {
	array := []int64{1, 2, 3, 4}
	tree, _ := New(array, intAggregators()...)
	ranges := [][2]int{{2, 1}, {-1, 2}, {0, 4}, {4, 4}, {-3, -2}}
	for _, r := range ranges {
		if _, err := tree.Query(r[0], r[1], 0); !errors.Is(err, ErrRange) {
			t.Errorf("Query(%d, %d): expected ErrRange, got %v", r[0], r[1], err)
		}
		if err := tree.Update(r[0], r[1], 99); !errors.Is(err, ErrRange) {
			t.Errorf("Update(%d, %d): expected ErrRange, got %v", r[0], r[1], err)
		}
	}
	if v := tree.Values(); !slices.Equal(v, array) {
		t.Errorf("failed updates must not mutate the tree, array is %v", v)
	}
	for _, f := range []int{-1, 4, 100} {
		if _, err := tree.Query(0, 3, f); !errors.Is(err, ErrAggregatorIndex) {
			t.Errorf("Query with aggregator %d: expected ErrAggregatorIndex, got %v", f, err)
		}
	}
	var none *Tree[int64]
	if _, err := none.Query(0, 0, 0); !errors.Is(err, ErrRange) {
		t.Errorf("expected ErrRange for nil tree, got %v", err)
	}
	if none.Size() != 0 || none.Values() != nil {
		t.Errorf("nil tree must be empty")
	}
}

func TestSourceArrayIsCopied(t *testing.T) {
	array := []int64{1, 2, 3}
	tree, _ := New(array, Aggregator[int64](Sum[int64]{}))
	array[0] = 100
	if s := mustQuery(t, tree, 0, 2, 0); s != 6 {
		t.Errorf("tree must not alias the source array, sum = %d", s)
	}
	mustUpdate(t, tree, 0, 2, 0)
	if array[1] != 2 {
		t.Errorf("updates must not write through to the source array")
	}
}

// TestRandomOperations cross-checks a tree against a plain slice.
func TestRandomOperations(t *testing.T) {
	teardown := traceTo(t, tracing.LevelInfo)
	defer teardown()
	//
	rnd := rand.New(rand.NewSource(4711))
	for _, n := range []int{1, 2, 3, 7, 16, 37, 100} {
		array := make([]int64, n)
		for i := range array {
			array[i] = rnd.Int63n(21) - 10
		}
		aggs := intAggregators()
		tree, err := New(array, aggs...)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for op := 0; op < 400; op++ {
			a := rnd.Intn(n)
			b := a + rnd.Intn(n-a)
			if rnd.Intn(3) == 0 {
				v := rnd.Int63n(21) - 10
				mustUpdate(t, tree, a, b, v)
				for i := a; i <= b; i++ {
					array[i] = v
				}
				continue
			}
			f := rnd.Intn(len(aggs))
			want := Fold(aggs[f], array[a:b+1]...)
			if got := mustQuery(t, tree, a, b, f); got != want {
				t.Fatalf("n=%d op=%d: %T over [%d,%d] = %d, want %d", n, op, aggs[f], a, b, got, want)
			}
			if err := tree.Check(eqInt64); err != nil {
				t.Fatalf("n=%d op=%d: %v", n, op, err)
			}
		}
		if v := tree.Values(); !slices.Equal(v, array) {
			t.Fatalf("n=%d: values %v, want %v", n, v, array)
		}
	}
}

func TestRandomOperationsNonCommutative(t *testing.T) {
	rnd := rand.New(rand.NewSource(815))
	letters := []string{"a", "b", "c", "d", "e"}
	n := 23
	array := make([]string, n)
	for i := range array {
		array[i] = letters[rnd.Intn(len(letters))]
	}
	tree, _ := New(array, Aggregator[string](concat{}))
	for op := 0; op < 300; op++ {
		a := rnd.Intn(n)
		b := a + rnd.Intn(n-a)
		if rnd.Intn(2) == 0 {
			v := letters[rnd.Intn(len(letters))]
			mustUpdate(t, tree, a, b, v)
			for i := a; i <= b; i++ {
				array[i] = v
			}
			continue
		}
		want := Fold[string](concat{}, array[a:b+1]...)
		if got := mustQuery(t, tree, a, b, 0); got != want {
			t.Fatalf("op=%d: concat over [%d,%d] = %q, want %q", op, a, b, got, want)
		}
	}
	if err := tree.Check(func(a, b string) bool { return a == b }); err != nil {
		t.Error(err)
	}
}
