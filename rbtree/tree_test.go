package rbtree

import (
	"cmp"
	"errors"
	"math"
	"math/rand"
	"slices"
	"testing"

	"github.com/npillmayer/ordmap/arena"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func newIntTree(t *testing.T) *Tree[int] {
	t.Helper()
	tree, err := New(cmp.Compare[int])
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return tree
}

func mustCheck[T any](t *testing.T, tree *Tree[T]) {
	t.Helper()
	if err := tree.Check(); err != nil {
		t.Fatalf("invariants violated: %v\n%s", err, tree.String())
	}
}

func collect[T any](tree *Tree[T]) []T {
	out := make([]T, 0, tree.Len())
	for x := range tree.All() {
		out = append(out, x)
	}
	return out
}

func mustInsert(t *testing.T, tree *Tree[int], keys ...int) {
	t.Helper()
	for _, k := range keys {
		if _, err := tree.Insert(k); err != nil {
			t.Fatalf("insert %d failed: %v", k, err)
		}
	}
}

// tagged orders by key only, seq tells equal keys apart.
type tagged struct {
	key string
	seq int
}

func compareTagged(a, b tagged) int {
	return cmp.Compare(a.key, b.key)
}

func TestNewRejectsNilComparator(t *testing.T) {
	if _, err := New[int](nil); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
	if _, err := New(cmp.Compare[int], WithArena[int](arena.Config{Capacity: -1})); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig for invalid arena config, got %v", err)
	}
}

func TestEmptyTree(t *testing.T) {
	tree := newIntTree(t)
	mustCheck(t, tree)
	if !tree.IsEmpty() || tree.Len() != 0 {
		t.Fatalf("new tree should be empty")
	}
	if tree.Min() != arena.Nil || tree.Max() != arena.Nil {
		t.Fatalf("empty tree should have no min/max")
	}
	if tree.Begin().Valid() {
		t.Fatalf("Begin of empty tree should be End")
	}
	if tree.String() != "nil" {
		t.Fatalf("unexpected rendering of empty tree: %q", tree.String())
	}
}

func TestInsertScenario(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordmap")
	defer teardown()

	tree := newIntTree(t)
	mustInsert(t, tree, 10, 20, 30, 15, 25, 5, 1)
	mustCheck(t, tree)
	want := []int{1, 5, 10, 15, 20, 25, 30}
	if got := collect(tree); !slices.Equal(got, want) {
		t.Fatalf("iteration yields %v, want %v", got, want)
	}
	expected := "20(B) <10(R) <5(B) <1(R) <nil, nil>, nil>, 15(B) <nil, nil>>, 30(B) <25(R) <nil, nil>, nil>>"
	if tree.String() != expected {
		t.Errorf("unexpected shape\n got: %s\nwant: %s", tree.String(), expected)
	}
	if tree.Len() != 7 {
		t.Errorf("expected 7 nodes, have %d", tree.Len())
	}
}

func TestDuplicateAndUniqueInsert(t *testing.T) {
	tree, err := New(compareTagged)
	if err != nil {
		t.Fatal(err)
	}
	x1, _ := tree.Insert(tagged{"X", 1})
	x2, _ := tree.Insert(tagged{"X", 2})
	mustCheck(t, tree)
	got := collect(tree)
	if len(got) != 2 || got[0].seq != 1 || got[1].seq != 2 {
		t.Fatalf("duplicates not kept in insertion order: %v", got)
	}
	if tree.Next(x1) != x2 || tree.Prev(x2) != x1 {
		t.Fatalf("chain does not link duplicates in insertion order")
	}
	ref, inserted, err := tree.InsertUnique(tagged{"X", 3})
	if err != nil || inserted {
		t.Fatalf("unique insert of present key should be rejected, inserted=%v err=%v", inserted, err)
	}
	if ref != x1 && ref != x2 {
		t.Fatalf("unique insert should signal an existing node, got %d", ref)
	}
	if tree.Len() != 2 {
		t.Fatalf("unique insert changed count to %d", tree.Len())
	}
	//
	unique, _ := New(compareTagged)
	first, inserted, _ := unique.InsertUnique(tagged{"X", 1})
	if !inserted {
		t.Fatalf("first unique insert should insert")
	}
	again, inserted, _ := unique.InsertUnique(tagged{"X", 2})
	if inserted || again != first {
		t.Fatalf("second unique insert should return pre-existing node %d, got %d (inserted=%v)", first, again, inserted)
	}
	if unique.Len() != 1 || unique.Data(first).seq != 1 {
		t.Fatalf("unique tree should hold exactly the first X")
	}
}

func TestReplace(t *testing.T) {
	tree, _ := New(compareTagged)
	_, _ = tree.Insert(tagged{"a", 1})
	_, _ = tree.Insert(tagged{"b", 1})
	ref, err := tree.Replace(tagged{"a", 7})
	if err != nil {
		t.Fatal(err)
	}
	if tree.Len() != 2 || tree.Data(ref).seq != 7 {
		t.Fatalf("replace should overwrite in place, len=%d data=%v", tree.Len(), *tree.Data(ref))
	}
	if _, err := tree.Replace(tagged{"c", 1}); err != nil || tree.Len() != 3 {
		t.Fatalf("replace of missing key should insert, len=%d err=%v", tree.Len(), err)
	}
	mustCheck(t, tree)
}

func TestRemoveMiddleRelinksChain(t *testing.T) {
	tree, _ := New(cmp.Compare[string])
	a, _ := tree.Insert("A")
	b, _ := tree.Insert("B")
	_, _ = tree.Insert("C")
	tree.Remove(b)
	mustCheck(t, tree)
	a = tree.Find("A")
	c := tree.Find("C")
	if tree.Next(a) != c {
		t.Errorf("successor of A should be C")
	}
	if tree.Prev(c) != a {
		t.Errorf("predecessor of C should be A")
	}
	if tree.Has("B") {
		t.Errorf("B still present after removal")
	}
}

func TestRemoveTwoChildrenMovesPayload(t *testing.T) {
	tree := newIntTree(t)
	mustInsert(t, tree, 2, 1, 3)
	root := tree.Root()
	if *tree.Data(root) != 2 {
		t.Fatalf("expected 2 at root, tree is %s", tree)
	}
	three := tree.Find(3)
	evicted := tree.Remove(root)
	mustCheck(t, tree)
	if evicted != three {
		t.Errorf("expected node of successor 3 to be evicted, got %d", evicted)
	}
	if tree.Find(3) != root || *tree.Data(root) != 3 {
		t.Errorf("expected successor payload to move into former root")
	}
	if got := collect(tree); !slices.Equal(got, []int{1, 3}) {
		t.Errorf("unexpected items after removal: %v", got)
	}
}

func TestFindAfterInsertAndRemove(t *testing.T) {
	tree := newIntTree(t)
	for k := 0; k < 100; k++ {
		mustInsert(t, tree, k*3)
		if v, ok := tree.Get(k * 3); !ok || v != k*3 {
			t.Fatalf("Get(%d) right after insert = %d, %v", k*3, v, ok)
		}
	}
	for k := 0; k < 100; k += 2 {
		if !tree.RemoveKey(k * 3) {
			t.Fatalf("RemoveKey(%d) reported absent key", k*3)
		}
		if tree.Has(k * 3) {
			t.Fatalf("key %d found right after removal", k*3)
		}
	}
	if tree.RemoveKey(1) {
		t.Fatalf("RemoveKey of absent key should report false")
	}
	mustCheck(t, tree)
	if tree.Len() != 50 {
		t.Fatalf("expected 50 keys left, have %d", tree.Len())
	}
}

func TestInsertAndRemoveAllInRandomOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordmap")
	defer teardown()

	r := rand.New(rand.NewSource(7))
	const n = 600
	keys := r.Perm(n)
	tree := newIntTree(t)
	for i, k := range keys {
		mustInsert(t, tree, k)
		if i%37 == 0 {
			mustCheck(t, tree)
		}
	}
	mustCheck(t, tree)
	for i, k := range r.Perm(n) {
		if !tree.RemoveKey(k) {
			t.Fatalf("key %d missing", k)
		}
		if tree.Len() != n-i-1 {
			t.Fatalf("count %d after %d removals", tree.Len(), i+1)
		}
		mustCheck(t, tree)
	}
	if tree.Root() != arena.Nil || tree.Len() != 0 {
		t.Fatalf("tree not empty after removing all keys")
	}
	if tree.Allocator().Len() != 0 {
		t.Fatalf("allocator still holds %d nodes", tree.Allocator().Len())
	}
}

func TestAscendingInsertStaysBalanced(t *testing.T) {
	tree := newIntTree(t)
	const n = 4096
	for k := 0; k < n; k++ {
		mustInsert(t, tree, k)
	}
	mustCheck(t, tree)
	limit := int(2 * math.Log2(n+1))
	if h := tree.Height(); h > limit {
		t.Fatalf("height %d exceeds red-black bound %d", h, limit)
	}
	if tree.BlackHeight() < 2 {
		t.Fatalf("unexpected black height %d", tree.BlackHeight())
	}
}

func TestFindFirstAndLastWithDuplicates(t *testing.T) {
	tree, _ := New(compareTagged)
	for i, k := range []string{"b", "a", "b", "c", "b", "a"} {
		_, _ = tree.Insert(tagged{k, i})
	}
	mustCheck(t, tree)
	first := tree.FindFirst(tagged{key: "b"})
	last := tree.FindLast(tagged{key: "b"})
	if tree.Data(first).seq != 0 || tree.Data(last).seq != 4 {
		t.Fatalf("expected first b#0 and last b#4, got b#%d and b#%d",
			tree.Data(first).seq, tree.Data(last).seq)
	}
	if tree.FindFirst(tagged{key: "x"}) != arena.Nil || tree.FindLast(tagged{key: "x"}) != arena.Nil {
		t.Fatalf("expected Nil for absent key")
	}
}

func TestClearFreesAllNodes(t *testing.T) {
	a, err := NewAllocator[int](arena.Config{PageSize: 16})
	if err != nil {
		t.Fatal(err)
	}
	tree, _ := New(cmp.Compare[int], WithAllocator[int](a))
	for k := 0; k < 1000; k++ {
		mustInsert(t, tree, k)
	}
	if a.Len() != 1000 {
		t.Fatalf("expected 1000 live slots, have %d", a.Len())
	}
	tree.Clear()
	mustCheck(t, tree)
	if a.Len() != 0 || tree.Len() != 0 || !tree.IsEmpty() {
		t.Fatalf("clear left %d live slots, len=%d", a.Len(), tree.Len())
	}
	mustInsert(t, tree, 1, 2, 3)
	mustCheck(t, tree)
}

func TestTreesShareAllocator(t *testing.T) {
	a, _ := NewAllocator[int](arena.Config{})
	shared := arena.NewLocked[Node[int]](a)
	t1, _ := New(cmp.Compare[int], WithAllocator[int](shared))
	t2, _ := New(cmp.Compare[int], WithAllocator[int](shared))
	for k := 0; k < 200; k++ {
		mustInsert(t, t1, k)
		mustInsert(t, t2, -k)
	}
	for k := 0; k < 200; k += 3 {
		t1.RemoveKey(k)
	}
	mustCheck(t, t1)
	mustCheck(t, t2)
	if shared.Len() != t1.Len()+t2.Len() {
		t.Fatalf("allocator holds %d slots, trees hold %d", shared.Len(), t1.Len()+t2.Len())
	}
}

func TestAllocationFailurePropagates(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordmap")
	defer teardown()

	tree, err := New(cmp.Compare[int], WithArena[int](arena.Config{Capacity: 3}))
	if err != nil {
		t.Fatal(err)
	}
	mustInsert(t, tree, 1, 2, 3)
	if _, err := tree.Insert(4); !errors.Is(err, arena.ErrOutOfMemory) {
		t.Fatalf("expected ErrOutOfMemory, got %v", err)
	}
	if _, _, err := tree.InsertUnique(5); !errors.Is(err, arena.ErrOutOfMemory) {
		t.Fatalf("expected ErrOutOfMemory from unique insert, got %v", err)
	}
	mustCheck(t, tree)
	if tree.Len() != 3 || tree.Has(4) {
		t.Fatalf("failed insert modified the tree")
	}
	tree.RemoveKey(2)
	mustInsert(t, tree, 4)
	mustCheck(t, tree)
}
