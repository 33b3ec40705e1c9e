package omap

import (
	"errors"
	"strings"
	"testing"
)

func TestEmptyTree(t *testing.T) {
	tree := New[int, string]()
	if !tree.IsEmpty() || tree.Len() != 0 {
		t.Errorf("expected new tree to be empty, has len=%d", tree.Len())
	}
	if _, ok := tree.Get(42); ok {
		t.Errorf("expected Get on empty tree to report absence")
	}
	if tree.Remove(42) {
		t.Errorf("expected Remove on empty tree to report absence")
	}
	if err := tree.Check(); err != nil {
		t.Errorf("expected empty tree to validate, got %v", err)
	}
}

func TestNewFuncRejectsNilCompare(t *testing.T) {
	_, err := NewFunc[string, int](nil)
	if !errors.Is(err, ErrInvalidCompare) {
		t.Fatalf("expected ErrInvalidCompare, got %v", err)
	}
}

func TestNewFuncCustomOrder(t *testing.T) {
	tree, err := NewFunc[string, int](func(a, b string) int {
		return strings.Compare(strings.ToLower(a), strings.ToLower(b))
	})
	if err != nil {
		t.Fatalf("NewFunc failed: %v", err)
	}
	tree.Set("Bravo", 2)
	tree.Set("alpha", 1)
	tree.Set("BRAVO", 3) // same key under case-folding order
	if tree.Len() != 2 {
		t.Errorf("expected 2 entries under case-folding order, have %d", tree.Len())
	}
	if v, ok := tree.Get("bravo"); !ok || v != 3 {
		t.Errorf("expected case-folded lookup to find 3, got %v/%v", v, ok)
	}
}

func TestSetGet(t *testing.T) {
	tree := New[int, string]()
	tree.Set(2, "two")
	tree.Set(1, "one")
	tree.Set(3, "three")
	if tree.Len() != 3 {
		t.Fatalf("expected 3 entries, have %d", tree.Len())
	}
	for k, want := range map[int]string{1: "one", 2: "two", 3: "three"} {
		if v, ok := tree.Get(k); !ok || v != want {
			t.Errorf("Get(%d) = %q/%v, want %q", k, v, ok, want)
		}
	}
	if tree.Has(4) {
		t.Errorf("expected key 4 to be absent")
	}
}

func TestOverwriteKeepsSizeAndStructure(t *testing.T) {
	tree := New[int, string]()
	for i := range 10 {
		tree.Set(i, "v1")
	}
	tree.Set(5, "v2")
	if tree.Len() != 10 {
		t.Errorf("overwrite must not change size, have %d", tree.Len())
	}
	if v, _ := tree.Get(5); v != "v2" {
		t.Errorf("expected overwritten value v2, got %q", v)
	}
	if err := tree.Check(); err != nil {
		t.Errorf("tree invalid after overwrite: %v", err)
	}
}

func TestGetRefMutatesInPlace(t *testing.T) {
	tree := New[string, int]()
	tree.Set("hits", 1)
	ref := tree.GetRef("hits")
	if ref == nil {
		t.Fatalf("expected GetRef to find the entry")
	}
	*ref++
	if v, _ := tree.Get("hits"); v != 2 {
		t.Errorf("expected in-place update to 2, got %d", v)
	}
	if tree.GetRef("misses") != nil {
		t.Errorf("expected GetRef on absent key to be nil")
	}
}

func TestRemoveReportsPresence(t *testing.T) {
	tree := New[int, int]()
	tree.Set(1, 1)
	if !tree.Remove(1) {
		t.Errorf("expected Remove of present key to report true")
	}
	if tree.Remove(1) {
		t.Errorf("expected Remove of absent key to report false")
	}
	if tree.Len() != 0 {
		t.Errorf("expected empty tree, len=%d", tree.Len())
	}
}

func TestInsertRemoveRoundTrip(t *testing.T) {
	tree := New[int, int]()
	for _, k := range []int{8, 4, 12, 2, 6, 10, 14} {
		tree.Set(k, k*k)
	}
	before := collectKeys(tree)
	tree.Set(7, 49)
	if !tree.Remove(7) {
		t.Fatalf("expected freshly inserted key to be removable")
	}
	after := collectKeys(tree)
	if len(before) != len(after) {
		t.Fatalf("round trip changed entry count: %d != %d", len(before), len(after))
	}
	for i := range before {
		if before[i] != after[i] {
			t.Errorf("round trip changed in-order sequence at %d: %d != %d",
				i, before[i], after[i])
		}
	}
	if err := tree.Check(); err != nil {
		t.Errorf("tree invalid after round trip: %v", err)
	}
}

func TestMinMax(t *testing.T) {
	tree := New[int, string]()
	if _, _, ok := tree.Min(); ok {
		t.Errorf("expected Min of empty tree to report absence")
	}
	for _, k := range []int{5, 3, 9, 1, 7} {
		tree.Set(k, "")
	}
	if k, _, ok := tree.Min(); !ok || k != 1 {
		t.Errorf("Min = %d/%v, want 1", k, ok)
	}
	if k, _, ok := tree.Max(); !ok || k != 9 {
		t.Errorf("Max = %d/%v, want 9", k, ok)
	}
}

func TestRangeAscending(t *testing.T) {
	tree := New[int, int]()
	for _, k := range []int{4, 1, 3, 2, 5} {
		tree.Set(k, k*10)
	}
	want := 1
	for k, v := range tree.Range() {
		if k != want || v != k*10 {
			t.Fatalf("Range yielded %d/%d, want %d/%d", k, v, want, want*10)
		}
		want++
	}
	if want != 6 {
		t.Errorf("Range yielded %d entries, want 5", want-1)
	}
}

func TestRangeIsRestartable(t *testing.T) {
	tree := New[int, int]()
	for i := range 5 {
		tree.Set(i, i)
	}
	first := collectKeys(tree)
	second := collectKeys(tree)
	if len(first) != len(second) {
		t.Fatalf("independent walks differ in length")
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("independent walks differ at %d", i)
		}
	}
}

func TestRangeFrom(t *testing.T) {
	tree := New[int, int]()
	for _, k := range []int{10, 20, 30, 40} {
		tree.Set(k, k)
	}
	var got []int
	for k := range tree.RangeFrom(25) {
		got = append(got, k)
	}
	if len(got) != 2 || got[0] != 30 || got[1] != 40 {
		t.Errorf("RangeFrom(25) = %v, want [30 40]", got)
	}
	got = got[:0]
	for k := range tree.RangeFrom(20) {
		got = append(got, k)
	}
	if len(got) != 3 || got[0] != 20 {
		t.Errorf("RangeFrom(20) = %v, want [20 30 40]", got)
	}
}

func TestForEachEarlyStop(t *testing.T) {
	tree := New[int, int]()
	for i := range 10 {
		tree.Set(i, i)
	}
	visited := 0
	tree.ForEach(func(k, v int) bool {
		visited++
		return k < 3
	})
	if visited != 4 {
		t.Errorf("expected walk to stop after 4 entries, visited %d", visited)
	}
}

func TestRotationKeepsChainFlat(t *testing.T) {
	tree := New[int, int]()
	tree.Set(10, 0)
	tree.Set(20, 0)
	tree.Set(30, 0)
	// two same-direction insertions force a rotation; without it the tree
	// would degenerate into a 3-deep chain
	if h := tree.Height(); h != 2 {
		t.Errorf("expected height 2 after rotation, have %d", h)
	}
	if err := tree.Check(); err != nil {
		t.Errorf("tree invalid after rotation: %v", err)
	}
}

func collectKeys(tree *Tree[int, int]) []int {
	keys := make([]int, 0, tree.Len())
	for k := range tree.Range() {
		keys = append(keys, k)
	}
	return keys
}
