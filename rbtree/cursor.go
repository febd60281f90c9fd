package rbtree

import (
	"iter"

	"github.com/npillmayer/ordmap/arena"
)

// Cursor is a position in the ordered chain of a tree. The position past the
// maximum is the end cursor; it holds no item.
//
// Stepping a cursor follows chain edges and never descends the tree. A cursor
// is invalidated by removal of the item it points to. Removals of other items
// keep its key position, but may change the node it refers to; compare cursors
// by the items they hold if removals happen in between.
type Cursor[T any] struct {
	tree *Tree[T]
	ref  Ref
}

// Begin returns a cursor at the minimum, or End for an empty tree.
func (t *Tree[T]) Begin() Cursor[T] {
	return Cursor[T]{tree: t, ref: t.Min()}
}

// End returns the cursor past the maximum.
func (t *Tree[T]) End() Cursor[T] {
	return Cursor[T]{tree: t}
}

// Last returns a cursor at the maximum, or End for an empty tree.
func (t *Tree[T]) Last() Cursor[T] {
	return Cursor[T]{tree: t, ref: t.Max()}
}

// CursorAt returns a cursor at node ref.
func (t *Tree[T]) CursorAt(ref Ref) Cursor[T] {
	return Cursor[T]{tree: t, ref: ref}
}

// LowerBound returns a cursor at the first item not less than key.
func (t *Tree[T]) LowerBound(key T) Cursor[T] {
	return Cursor[T]{tree: t, ref: t.lowerBound(key)}
}

// UpperBound returns a cursor at the first item greater than key.
// [LowerBound(k), UpperBound(k)) spans all items equal to k.
func (t *Tree[T]) UpperBound(key T) Cursor[T] {
	return Cursor[T]{tree: t, ref: t.upperBound(key)}
}

// Valid reports whether the cursor points to an item, i.e. is not End.
func (c Cursor[T]) Valid() bool {
	return c.tree != nil && c.ref != arena.Nil
}

// Ref returns the node the cursor points to, or Nil for End.
func (c Cursor[T]) Ref() Ref {
	return c.ref
}

// Item returns the item under the cursor. c must be valid.
func (c Cursor[T]) Item() T {
	return c.tree.node(c.ref).Data
}

// Ptr returns a pointer to the item under the cursor. c must be valid.
// Modifying the ordering key through the pointer corrupts the tree.
func (c Cursor[T]) Ptr() *T {
	return &c.tree.node(c.ref).Data
}

// Next returns the cursor at the successor. Next of End is End.
func (c Cursor[T]) Next() Cursor[T] {
	if c.ref == arena.Nil {
		return c
	}
	return Cursor[T]{tree: c.tree, ref: c.tree.node(c.ref).next}
}

// Prev returns the cursor at the predecessor. Prev of End is the maximum,
// Prev of the minimum is End.
func (c Cursor[T]) Prev() Cursor[T] {
	if c.tree == nil { // zero value
		return c
	}
	if c.ref == arena.Nil {
		return c.tree.Last()
	}
	return Cursor[T]{tree: c.tree, ref: c.tree.node(c.ref).prev}
}

// Equal reports whether two cursors point to the same position.
func (c Cursor[T]) Equal(other Cursor[T]) bool {
	return c.tree == other.tree && c.ref == other.ref
}

// --- Iterators -------------------------------------------------------------

// All iterates over all items in ascending order.
func (t *Tree[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for ref := t.Min(); ref != arena.Nil; ref = t.node(ref).next {
			if !yield(t.node(ref).Data) {
				return
			}
		}
	}
}

// Backward iterates over all items in descending order.
func (t *Tree[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for ref := t.Max(); ref != arena.Nil; ref = t.node(ref).prev {
			if !yield(t.node(ref).Data) {
				return
			}
		}
	}
}

// Range iterates in ascending order over all items x with lo <= x < hi.
func (t *Tree[T]) Range(lo, hi T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for ref := t.lowerBound(lo); ref != arena.Nil; ref = t.node(ref).next {
			n := t.node(ref)
			if t.cmp(n.Data, hi) >= 0 || !yield(n.Data) {
				return
			}
		}
	}
}

// Nodes iterates over the refs of all nodes in ascending order.
func (t *Tree[T]) Nodes() iter.Seq[Ref] {
	return func(yield func(Ref) bool) {
		for ref := t.Min(); ref != arena.Nil; ref = t.node(ref).next {
			if !yield(ref) {
				return
			}
		}
	}
}
