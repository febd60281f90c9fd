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

// Pair is the item type of a Map. Pairs are ordered by their keys only.
type Pair[K, V any] struct {
	Key   K
	Value V
}

func (p Pair[K, V]) String() string {
	return fmt.Sprintf("%v=%v", p.Key, p.Value)
}

// Map is an ordered map from keys of type K to values of type V. Keys are
// unique.
//
// The zero value is not usable; create maps with NewMap, NewOrderedMap or
// NewMapIn.
type Map[K, V any] struct {
	tree *rbtree.Tree[Pair[K, V]]
}

// NewMap creates an empty map ordered by cmp, with nodes allocated from a
// private arena.
func NewMap[K, V any](cmp Compare[K], opts ...Option) (*Map[K, V], error) {
	if cmp == nil {
		return nil, fmt.Errorf("%w: map needs a comparator", ErrIllegalArguments)
	}
	return newMap[K, V](cmp, rbtree.WithArena[Pair[K, V]](arenaConfig(opts)))
}

// NewOrderedMap creates an empty map ordered by Go's ordering operators on K.
func NewOrderedMap[K cmp.Ordered, V any]() *Map[K, V] {
	m, err := NewMap[K, V](OrderedCompare[K])
	if err != nil { // default arena configuration is always valid
		panic(err)
	}
	return m
}

// NewMapIn creates an empty map allocating nodes from a, which may be shared
// with other maps of the same type. a has to outlive the map.
func NewMapIn[K, V any](cmp Compare[K], a MapAllocator[K, V]) (*Map[K, V], error) {
	if cmp == nil || a == nil {
		return nil, fmt.Errorf("%w: map needs a comparator and an allocator", ErrIllegalArguments)
	}
	return newMap[K, V](cmp, rbtree.WithAllocator[Pair[K, V]](a))
}

func newMap[K, V any](cmp Compare[K], opt rbtree.Option[Pair[K, V]]) (*Map[K, V], error) {
	byKey := func(a, b Pair[K, V]) int {
		return cmp(a.Key, b.Key)
	}
	tree, err := rbtree.New[Pair[K, V]](byKey, opt)
	if err != nil {
		return nil, err
	}
	return &Map[K, V]{tree: tree}, nil
}

func probe[K, V any](key K) Pair[K, V] {
	return Pair[K, V]{Key: key}
}

// Len returns the number of entries.
func (m *Map[K, V]) Len() int {
	return m.tree.Len()
}

// IsEmpty is true for a map without entries.
func (m *Map[K, V]) IsEmpty() bool {
	return m.tree.IsEmpty()
}

// Put sets the value for key. An existing entry is overwritten in place,
// leaving the number of entries unchanged.
func (m *Map[K, V]) Put(key K, value V) error {
	_, err := m.tree.Replace(Pair[K, V]{Key: key, Value: value})
	return err
}

// Ref returns a pointer to the value stored for key. If key is missing, an
// entry with the zero value is inserted first:
//
//	p, _ := m.Ref("apples")
//	*p += 3
//
// The pointer stays valid until the entry is removed. Removing other entries
// may move the value to a different node, invalidating the pointer as well.
func (m *Map[K, V]) Ref(key K) (*V, error) {
	found, parent, dir := m.tree.Locate(probe[K, V](key))
	if found == arena.Nil {
		var err error
		if found, err = m.tree.Link(parent, dir, probe[K, V](key)); err != nil {
			return nil, err
		}
	}
	return &m.tree.Data(found).Value, nil
}

// Get returns the value stored for key.
func (m *Map[K, V]) Get(key K) (V, bool) {
	p, ok := m.tree.Get(probe[K, V](key))
	return p.Value, ok
}

// Has reports whether key is present.
func (m *Map[K, V]) Has(key K) bool {
	return m.tree.Has(probe[K, V](key))
}

// Remove deletes the entry for key. It returns false if key is not present.
func (m *Map[K, V]) Remove(key K) bool {
	return m.tree.RemoveKey(probe[K, V](key))
}

// Pop deletes the entry for key and returns its value.
func (m *Map[K, V]) Pop(key K) (V, bool) {
	ref := m.tree.Find(probe[K, V](key))
	if ref == arena.Nil {
		var zero V
		return zero, false
	}
	v := m.tree.Data(ref).Value
	m.tree.Remove(ref)
	return v, true
}

// RemoveAt deletes the entry it points to and returns an iterator at the
// following entry. it must be valid.
func (m *Map[K, V]) RemoveAt(it Iterator[K, V]) Iterator[K, V] {
	if !it.Valid() {
		T().Errorf("ordmap: RemoveAt called with end iterator")
		return it
	}
	next := m.tree.RemoveNext(it.c.Ref())
	return Iterator[K, V]{m.tree.CursorAt(next)}
}

// Min returns the entry with the smallest key.
func (m *Map[K, V]) Min() (Pair[K, V], bool) {
	return m.at(m.tree.Min())
}

// Max returns the entry with the largest key.
func (m *Map[K, V]) Max() (Pair[K, V], bool) {
	return m.at(m.tree.Max())
}

func (m *Map[K, V]) at(ref arena.Ref) (Pair[K, V], bool) {
	if ref == arena.Nil {
		return Pair[K, V]{}, false
	}
	return *m.tree.Data(ref), true
}

// Clear removes all entries.
func (m *Map[K, V]) Clear() {
	m.tree.Clear()
}

// --- Iteration -------------------------------------------------------------

// Find returns an iterator at the entry for key, or End.
func (m *Map[K, V]) Find(key K) Iterator[K, V] {
	return Iterator[K, V]{m.tree.CursorAt(m.tree.Find(probe[K, V](key)))}
}

// Begin returns an iterator at the smallest key.
func (m *Map[K, V]) Begin() Iterator[K, V] {
	return Iterator[K, V]{m.tree.Begin()}
}

// End returns the iterator past the largest key.
func (m *Map[K, V]) End() Iterator[K, V] {
	return Iterator[K, V]{m.tree.End()}
}

// Last returns an iterator at the largest key.
func (m *Map[K, V]) Last() Iterator[K, V] {
	return Iterator[K, V]{m.tree.Last()}
}

// LowerBound returns an iterator at the first key not less than key.
func (m *Map[K, V]) LowerBound(key K) Iterator[K, V] {
	return Iterator[K, V]{m.tree.LowerBound(probe[K, V](key))}
}

// UpperBound returns an iterator at the first key greater than key.
func (m *Map[K, V]) UpperBound(key K) Iterator[K, V] {
	return Iterator[K, V]{m.tree.UpperBound(probe[K, V](key))}
}

// All iterates over all entries in ascending key order.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for p := range m.tree.All() {
			if !yield(p.Key, p.Value) {
				return
			}
		}
	}
}

// Backward iterates over all entries in descending key order.
func (m *Map[K, V]) Backward() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for p := range m.tree.Backward() {
			if !yield(p.Key, p.Value) {
				return
			}
		}
	}
}

// Range iterates over the entries with lo <= key < hi.
func (m *Map[K, V]) Range(lo, hi K) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for p := range m.tree.Range(probe[K, V](lo), probe[K, V](hi)) {
			if !yield(p.Key, p.Value) {
				return
			}
		}
	}
}

// Keys iterates over all keys in ascending order.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for p := range m.tree.All() {
			if !yield(p.Key) {
				return
			}
		}
	}
}

// Values iterates over all values in ascending key order.
func (m *Map[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for p := range m.tree.All() {
			if !yield(p.Value) {
				return
			}
		}
	}
}

// --- Diagnostics -----------------------------------------------------------

// Check verifies the internal structure of the map. It returns nil for a
// healthy map; errors wrap rbtree.ErrCorrupted.
func (m *Map[K, V]) Check() error {
	return m.tree.Check()
}

// ToDot writes the tree underlying the map in Graphviz DOT format to w.
func (m *Map[K, V]) ToDot(w io.Writer) {
	m.tree.ToDot(w)
}

// Dump writes the tree underlying the map sideways to w.
func (m *Map[K, V]) Dump(w io.Writer, colored bool) {
	m.tree.Dump(w, colored)
}
