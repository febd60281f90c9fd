package rbtree

import (
	"fmt"

	"github.com/npillmayer/ordmap/arena"
)

// Compare is a three-way comparator. It returns a negative number if a < b,
// 0 if a == b and a positive number if a > b. It has to be a total order.
type Compare[T any] func(a, b T) int

// Ref is the handle of a node. arena.Nil denotes "no node".
type Ref = arena.Ref

// Tree is a red-black tree threaded by an ordered chain.
//
// The tree exclusively owns every node reachable from its root. A Tree must
// be created with New.
type Tree[T any] struct {
	cmp     Compare[T]
	alloc   arena.Allocator[Node[T]]
	private bool // alloc was created by the tree
	root    arena.Ref
	count   int
}

// Option configures a tree.
type Option[T any] func(*options[T])

type options[T any] struct {
	alloc    arena.Allocator[Node[T]]
	arenaCfg arena.Config
}

// WithAllocator lets the tree borrow an allocator. The allocator has to
// outlive the tree.
func WithAllocator[T any](a arena.Allocator[Node[T]]) Option[T] {
	return func(o *options[T]) {
		o.alloc = a
	}
}

// WithArena configures the private arena of the tree. It is ignored if
// WithAllocator is given as well.
func WithArena[T any](cfg arena.Config) Option[T] {
	return func(o *options[T]) {
		o.arenaCfg = cfg
	}
}

// NewAllocator creates an arena suitable for trees with payload type T.
func NewAllocator[T any](cfg arena.Config) (*arena.Arena[Node[T]], error) {
	return arena.New[Node[T]](cfg)
}

// New creates an empty tree ordered by cmp.
func New[T any](cmp Compare[T], opts ...Option[T]) (*Tree[T], error) {
	if cmp == nil {
		return nil, fmt.Errorf("%w: comparator is required", ErrInvalidConfig)
	}
	var o options[T]
	for _, opt := range opts {
		opt(&o)
	}
	t := &Tree[T]{cmp: cmp, alloc: o.alloc}
	if t.alloc == nil {
		a, err := NewAllocator[T](o.arenaCfg)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
		t.alloc, t.private = a, true
	}
	return t, nil
}

// Compare returns the comparator of t.
func (t *Tree[T]) Compare() Compare[T] {
	return t.cmp
}

// Allocator returns the node allocator of t, be it private or borrowed.
func (t *Tree[T]) Allocator() arena.Allocator[Node[T]] {
	return t.alloc
}

// Len returns the number of nodes in the tree.
func (t *Tree[T]) Len() int {
	if t == nil {
		return 0
	}
	return t.count
}

// IsEmpty reports whether the tree has no nodes.
func (t *Tree[T]) IsEmpty() bool {
	return t == nil || t.root == arena.Nil
}

// Root returns the root node or Nil.
func (t *Tree[T]) Root() Ref {
	return t.root
}

// Min returns the leftmost node or Nil.
func (t *Tree[T]) Min() Ref {
	return t.minFrom(t.root)
}

// Max returns the rightmost node or Nil.
func (t *Tree[T]) Max() Ref {
	return t.maxFrom(t.root)
}

// Data returns the payload of node ref.
//
// The pointer is valid until the next structural removal from the tree; a
// removal may move another payload into this node.
func (t *Tree[T]) Data(ref Ref) *T {
	assert(ref != arena.Nil, "Data: ref is Nil")
	return &t.node(ref).Data
}

// Next returns the chain successor of ref, or Nil after the maximum.
func (t *Tree[T]) Next(ref Ref) Ref {
	return t.node(ref).next
}

// Prev returns the chain predecessor of ref, or Nil before the minimum.
func (t *Tree[T]) Prev(ref Ref) Ref {
	return t.node(ref).prev
}

// Color returns the color of node ref. Nil is black.
func (t *Tree[T]) Color(ref Ref) Color {
	if ref == arena.Nil {
		return Black
	}
	return t.node(ref).color
}

// Clear frees every node of the tree.
//
// The walk is a post-order traversal along parent edges and uses constant
// stack space, whatever shape the tree has.
func (t *Tree[T]) Clear() {
	cur := t.root
	for cur != arena.Nil {
		n := t.node(cur)
		if n.left != arena.Nil {
			cur = n.left
			continue
		}
		if n.right != arena.Nil {
			cur = n.right
			continue
		}
		parent := n.parent
		if parent != arena.Nil {
			if pn := t.node(parent); pn.left == cur {
				pn.left = arena.Nil
			} else {
				pn.right = arena.Nil
			}
		}
		t.alloc.Free(cur)
		cur = parent
	}
	tracer().Debugf("rbtree: cleared %d nodes", t.count)
	t.root = arena.Nil
	t.count = 0
	if a, ok := t.alloc.(*arena.Arena[Node[T]]); ok && t.private {
		a.Reset() // release the pages of a private arena
	}
}
