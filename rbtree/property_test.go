package rbtree

import (
	"cmp"
	"math/rand"
	"slices"
	"testing"
)

// How to run:
//   - Deterministic randomized property test:
//     go test ./rbtree -run TestRandomizedProperty -count=1
//   - Fuzz test:
//     go test ./rbtree -run '^$' -fuzz FuzzInsertRemove -fuzztime=10s

// model is a sorted multiset of ints.
type model []int

func (m model) insert(k int) model {
	i, _ := slices.BinarySearch(m, k+1) // after all equal keys
	return slices.Insert(m, i, k)
}

func (m model) remove(k int) (model, bool) {
	i, ok := slices.BinarySearch(m, k)
	if !ok {
		return m, false
	}
	return slices.Delete(m, i, i+1), true
}

func assertTreeMatchesModel(t *testing.T, tree *Tree[int], m model) {
	t.Helper()
	mustCheck(t, tree)
	if tree.Len() != len(m) {
		t.Fatalf("count %d, model has %d", tree.Len(), len(m))
	}
	got := collect(tree)
	if !slices.Equal(got, m) {
		t.Fatalf("tree %v, model %v", got, []int(m))
	}
	var back []int
	for k := range tree.Backward() {
		back = append(back, k)
	}
	slices.Reverse(back)
	if !slices.Equal(back, m) {
		t.Fatalf("backward walk %v does not mirror model %v", back, []int(m))
	}
}

func runOps(t *testing.T, ops []byte) {
	tree := newIntTree(t)
	var m model
	for i := 0; i+1 < len(ops); i += 2 {
		k := int(ops[i+1] % 64)
		switch ops[i] % 4 {
		case 0, 1:
			mustInsert(t, tree, k)
			m = m.insert(k)
		case 2:
			if _, inserted, _ := tree.InsertUnique(k); inserted {
				m = m.insert(k)
			} else if !slices.Contains(m, k) {
				t.Fatalf("unique insert rejected absent key %d", k)
			}
		case 3:
			var ok bool
			m, ok = m.remove(k)
			if tree.RemoveKey(k) != ok {
				t.Fatalf("RemoveKey(%d) disagrees with model", k)
			}
		}
		assertTreeMatchesModel(t, tree, m)
	}
	for len(m) > 0 {
		k := m[len(m)/2]
		m, _ = m.remove(k)
		tree.RemoveKey(k)
	}
	assertTreeMatchesModel(t, tree, m)
	if !tree.IsEmpty() {
		t.Fatalf("tree not empty at the end")
	}
}

func TestRandomizedProperty(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for round := 0; round < 30; round++ {
		ops := make([]byte, 400)
		r.Read(ops)
		runOps(t, ops)
	}
}

func FuzzInsertRemove(f *testing.F) {
	f.Add([]byte{0, 10, 0, 20, 0, 30, 0, 15, 0, 25, 0, 5, 0, 1})
	f.Add([]byte{0, 1, 0, 1, 2, 1, 3, 1, 3, 1})
	f.Fuzz(func(t *testing.T, ops []byte) {
		runOps(t, ops)
	})
}

func TestStringKeysRandomized(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	tree, _ := New(cmp.Compare[string])
	seen := map[string]bool{}
	for i := 0; i < 500; i++ {
		b := make([]byte, r.Intn(5)+1)
		for j := range b {
			b[j] = byte('a' + r.Intn(6))
		}
		k := string(b)
		_, inserted, _ := tree.InsertUnique(k)
		if inserted == seen[k] {
			t.Fatalf("unique insert of %q: inserted=%v, seen before=%v", k, inserted, seen[k])
		}
		seen[k] = true
	}
	mustCheck(t, tree)
	keys := collect(tree)
	if !slices.IsSorted(keys) || len(keys) != len(seen) {
		t.Fatalf("keys not sorted or count mismatch: %d vs %d", len(keys), len(seen))
	}
}
