package ordmap

/*
BSD 3-Clause License

Copyright (c) 2020–26, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"cmp"
	"fmt"
	"io"
	"iter"

	"github.com/npillmayer/ordmap/arena"
	"github.com/npillmayer/ordmap/rbtree"
)

// Set is an ordered set of keys of type K.
//
// Add keeps keys unique. AddDuplicate turns a set into a multiset, keeping
// equal keys in insertion order; the set algebra in setops.go expects unique
// keys.
type Set[K any] struct {
	cmp     Compare[K]
	tree    *rbtree.Tree[K]
	newTree func() (*rbtree.Tree[K], error) // for clones
}

// NewSet creates an empty set ordered by cmp, with nodes allocated from a
// private arena.
func NewSet[K any](cmp Compare[K], opts ...Option) (*Set[K], error) {
	if cmp == nil {
		return nil, fmt.Errorf("%w: set needs a comparator", ErrIllegalArguments)
	}
	cfg := arenaConfig(opts)
	return newSet(cmp, func() (*rbtree.Tree[K], error) {
		return rbtree.New(cmp, rbtree.WithArena[K](cfg))
	})
}

// NewOrderedSet creates an empty set ordered by Go's ordering operators,
// holding keys.
func NewOrderedSet[K cmp.Ordered](keys ...K) *Set[K] {
	s, err := NewSet[K](OrderedCompare[K])
	if err == nil {
		err = s.Add(keys...)
	}
	if err != nil { // private arenas without capacity bound do not fail
		panic(err)
	}
	return s
}

// NewSetIn creates an empty set allocating nodes from a, which may be shared
// with other sets of the same type. Clones of the set share a as well.
func NewSetIn[K any](cmp Compare[K], a SetAllocator[K]) (*Set[K], error) {
	if cmp == nil || a == nil {
		return nil, fmt.Errorf("%w: set needs a comparator and an allocator", ErrIllegalArguments)
	}
	return newSet(cmp, func() (*rbtree.Tree[K], error) {
		return rbtree.New(cmp, rbtree.WithAllocator[K](a))
	})
}

func newSet[K any](cmp Compare[K], newTree func() (*rbtree.Tree[K], error)) (*Set[K], error) {
	tree, err := newTree()
	if err != nil {
		return nil, err
	}
	return &Set[K]{cmp: cmp, tree: tree, newTree: newTree}, nil
}

// Len returns the number of keys.
func (s *Set[K]) Len() int {
	return s.tree.Len()
}

// IsEmpty is true for a set without keys.
func (s *Set[K]) IsEmpty() bool {
	return s.tree.IsEmpty()
}

// Add inserts keys which are not yet present. It stops at the first key
// for which no node can be allocated.
func (s *Set[K]) Add(keys ...K) error {
	for _, k := range keys {
		if _, _, err := s.tree.InsertUnique(k); err != nil {
			return err
		}
	}
	return nil
}

// AddDuplicate inserts key even if equal keys are present. The new key is
// placed after all equal ones.
func (s *Set[K]) AddDuplicate(key K) error {
	_, err := s.tree.Insert(key)
	return err
}

// Has reports whether key is present.
func (s *Set[K]) Has(key K) bool {
	return s.tree.Has(key)
}

// Any reports whether at least one of keys is present.
func (s *Set[K]) Any(keys ...K) bool {
	for _, k := range keys {
		if s.tree.Has(k) {
			return true
		}
	}
	return false
}

// HasAll reports whether all of keys are present. It is true for an empty
// list of keys.
func (s *Set[K]) HasAll(keys ...K) bool {
	for _, k := range keys {
		if !s.tree.Has(k) {
			return false
		}
	}
	return true
}

// Get returns the stored key equal to key. This is useful for comparators
// which look at part of a key only.
func (s *Set[K]) Get(key K) (K, bool) {
	return s.tree.Get(key)
}

// Remove deletes key. It returns false if key is not present.
func (s *Set[K]) Remove(key K) bool {
	return s.tree.RemoveKey(key)
}

// Pop deletes key and returns the stored key equal to it.
func (s *Set[K]) Pop(key K) (K, bool) {
	ref := s.tree.Find(key)
	if ref == arena.Nil {
		var zero K
		return zero, false
	}
	k := *s.tree.Data(ref)
	s.tree.Remove(ref)
	return k, true
}

// RemoveAt deletes the key it points to and returns an iterator at the
// following key. it must be valid.
func (s *Set[K]) RemoveAt(it SetIterator[K]) SetIterator[K] {
	if !it.Valid() {
		T().Errorf("ordmap: RemoveAt called with end iterator")
		return it
	}
	return SetIterator[K]{s.tree.CursorAt(s.tree.RemoveNext(it.c.Ref()))}
}

// Min returns the smallest key.
func (s *Set[K]) Min() (K, bool) {
	return s.at(s.tree.Min())
}

// Max returns the largest key.
func (s *Set[K]) Max() (K, bool) {
	return s.at(s.tree.Max())
}

func (s *Set[K]) at(ref arena.Ref) (K, bool) {
	if ref == arena.Nil {
		var zero K
		return zero, false
	}
	return *s.tree.Data(ref), true
}

// Clear removes all keys.
func (s *Set[K]) Clear() {
	s.tree.Clear()
}

// Clone returns a set with the same keys and comparator. The clone uses the
// arena configuration of s, or shares its allocator.
func (s *Set[K]) Clone() (*Set[K], error) {
	c, err := newSet(s.cmp, s.newTree)
	if err != nil {
		return nil, err
	}
	for k := range s.tree.All() {
		if _, err := c.tree.Insert(k); err != nil {
			c.Clear()
			return nil, err
		}
	}
	return c, nil
}

// --- Iteration -------------------------------------------------------------

// Find returns an iterator at key, or End.
func (s *Set[K]) Find(key K) SetIterator[K] {
	return SetIterator[K]{s.tree.CursorAt(s.tree.Find(key))}
}

// Begin returns an iterator at the smallest key.
func (s *Set[K]) Begin() SetIterator[K] {
	return SetIterator[K]{s.tree.Begin()}
}

// End returns the iterator past the largest key.
func (s *Set[K]) End() SetIterator[K] {
	return SetIterator[K]{s.tree.End()}
}

// Last returns an iterator at the largest key.
func (s *Set[K]) Last() SetIterator[K] {
	return SetIterator[K]{s.tree.Last()}
}

// LowerBound returns an iterator at the first key not less than key.
func (s *Set[K]) LowerBound(key K) SetIterator[K] {
	return SetIterator[K]{s.tree.LowerBound(key)}
}

// UpperBound returns an iterator at the first key greater than key.
func (s *Set[K]) UpperBound(key K) SetIterator[K] {
	return SetIterator[K]{s.tree.UpperBound(key)}
}

// All iterates over the keys in ascending order.
func (s *Set[K]) All() iter.Seq[K] {
	return s.tree.All()
}

// Backward iterates over the keys in descending order.
func (s *Set[K]) Backward() iter.Seq[K] {
	return s.tree.Backward()
}

// Range iterates over the keys k with lo <= k < hi.
func (s *Set[K]) Range(lo, hi K) iter.Seq[K] {
	return s.tree.Range(lo, hi)
}

// --- Diagnostics -----------------------------------------------------------

// Check verifies the internal structure of the set.
func (s *Set[K]) Check() error {
	return s.tree.Check()
}

// ToDot writes the tree underlying the set in Graphviz DOT format to w.
func (s *Set[K]) ToDot(w io.Writer) {
	s.tree.ToDot(w)
}

// Dump writes the tree underlying the set sideways to w.
func (s *Set[K]) Dump(w io.Writer, colored bool) {
	s.tree.Dump(w, colored)
}

func (s *Set[K]) String() string {
	return s.tree.String()
}
