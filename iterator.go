package ordmap

/*
BSD 3-Clause License

Copyright (c) 2020–26, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import "github.com/npillmayer/ordmap/rbtree"

// Iterator is a position in a Map, the end position included. Stepping an
// iterator is O(1).
//
// An iterator is invalidated by removing the entry it points to, except
// through Map.RemoveAt. It keeps its key position across other removals.
type Iterator[K, V any] struct {
	c rbtree.Cursor[Pair[K, V]]
}

// Valid is false for the end position.
func (it Iterator[K, V]) Valid() bool { return it.c.Valid() }

// Key returns the key of the entry. it must be valid.
func (it Iterator[K, V]) Key() K { return it.c.Ptr().Key }

// Value returns the value of the entry. it must be valid.
func (it Iterator[K, V]) Value() V { return it.c.Ptr().Value }

// ValuePtr returns a pointer to the value of the entry. it must be valid.
func (it Iterator[K, V]) ValuePtr() *V { return &it.c.Ptr().Value }

// Next moves to the following entry. Next of End is End.
func (it Iterator[K, V]) Next() Iterator[K, V] { return Iterator[K, V]{it.c.Next()} }

// Prev moves to the preceding entry. Prev of End is the last entry.
func (it Iterator[K, V]) Prev() Iterator[K, V] { return Iterator[K, V]{it.c.Prev()} }

// Equal reports whether both iterators are at the same position.
func (it Iterator[K, V]) Equal(other Iterator[K, V]) bool { return it.c.Equal(other.c) }

// SetIterator is a position in a Set, the end position included.
type SetIterator[K any] struct {
	c rbtree.Cursor[K]
}

// Valid is false for the end position.
func (it SetIterator[K]) Valid() bool { return it.c.Valid() }

// Key returns the key at the position. it must be valid.
func (it SetIterator[K]) Key() K { return it.c.Item() }

// Next moves to the following key. Next of End is End.
func (it SetIterator[K]) Next() SetIterator[K] { return SetIterator[K]{it.c.Next()} }

// Prev moves to the preceding key. Prev of End is the last key.
func (it SetIterator[K]) Prev() SetIterator[K] { return SetIterator[K]{it.c.Prev()} }

// Equal reports whether both iterators are at the same position.
func (it SetIterator[K]) Equal(other SetIterator[K]) bool { return it.c.Equal(other.c) }
