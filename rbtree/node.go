package rbtree

import "github.com/npillmayer/ordmap/arena"

// Color is the red-black color tag of a node.
type Color uint8

const (
	Black Color = iota
	Red
)

func (c Color) String() string {
	if c == Red {
		return "R"
	}
	return "B"
}

// Node is the slot type a tree stores in its arena.
//
// parent, left and right are the tree edges, prev and next thread the node
// into the ordered chain. Clients see nodes only through Tree methods.
type Node[T any] struct {
	parent, left, right arena.Ref
	prev, next          arena.Ref
	color               Color
	Data                T
}

// Color returns the color of the node.
func (n *Node[T]) Color() Color {
	return n.color
}

func (t *Tree[T]) node(ref arena.Ref) *Node[T] {
	return t.alloc.At(ref)
}

// Nil counts as black.
func (t *Tree[T]) isRed(ref arena.Ref) bool {
	return ref != arena.Nil && t.node(ref).color == Red
}

func (t *Tree[T]) isBlack(ref arena.Ref) bool {
	return !t.isRed(ref)
}

// --- Tree edges ------------------------------------------------------------

// setLeftChild makes c the left child of p. c may be Nil, clearing the slot.
// Chain edges are not touched.
func (t *Tree[T]) setLeftChild(p, c arena.Ref) {
	t.node(p).left = c
	if c != arena.Nil {
		t.node(c).parent = p
	}
}

// setRightChild makes c the right child of p. c may be Nil, clearing the slot.
// Chain edges are not touched.
func (t *Tree[T]) setRightChild(p, c arena.Ref) {
	t.node(p).right = c
	if c != arena.Nil {
		t.node(c).parent = p
	}
}

// replaceChild puts repl into the child slot of parent which currently holds
// old. If parent is Nil, repl is detached from any parent.
func (t *Tree[T]) replaceChild(parent, old, repl arena.Ref) {
	if parent == arena.Nil {
		if repl != arena.Nil {
			t.node(repl).parent = arena.Nil
		}
		return
	}
	if t.node(parent).left == old {
		t.setLeftChild(parent, repl)
	} else {
		t.setRightChild(parent, repl)
	}
}

// --- Chain edges -----------------------------------------------------------

// setPrevNode splices n into the chain immediately before this.
func (t *Tree[T]) setPrevNode(this, n arena.Ref) {
	assert(n != arena.Nil, "setPrevNode: node must not be Nil")
	tn, nn := t.node(this), t.node(n)
	if tn.prev != arena.Nil {
		t.node(tn.prev).next = n
	}
	nn.prev = tn.prev
	nn.next = this
	tn.prev = n
}

// setNextNode splices n into the chain immediately after this.
func (t *Tree[T]) setNextNode(this, n arena.Ref) {
	assert(n != arena.Nil, "setNextNode: node must not be Nil")
	tn, nn := t.node(this), t.node(n)
	if tn.next != arena.Nil {
		t.node(tn.next).prev = n
	}
	nn.next = tn.next
	nn.prev = this
	tn.next = n
}

// unchain bridges the chain neighbours of n.
func (t *Tree[T]) unchain(n arena.Ref) {
	nn := t.node(n)
	if nn.prev != arena.Nil {
		t.node(nn.prev).next = nn.next
	}
	if nn.next != arena.Nil {
		t.node(nn.next).prev = nn.prev
	}
	nn.prev, nn.next = arena.Nil, arena.Nil
}

// --- Rotations -------------------------------------------------------------

// Rotations preserve the in-order sequence, so chain edges stay as they are.
// If x was the root, the caller has to re-derive the root afterwards.

// rotateLeft rotates x to the left, lifting its right child p:
//
//	    x                p
//	   / \              / \
//	  a   p     =>     x   c
//	     / \          / \
//	    b   c        a   b
func (t *Tree[T]) rotateLeft(x arena.Ref) {
	xn := t.node(x)
	up, pivot := xn.parent, xn.right
	assert(pivot != arena.Nil, "rotateLeft: no right child")
	t.setRightChild(x, t.node(pivot).left)
	t.replaceChild(up, x, pivot)
	t.setLeftChild(pivot, x)
}

// rotateRight rotates x to the right, lifting its left child p:
//
//	      x            p
//	     / \          / \
//	    p   c   =>   a   x
//	   / \              / \
//	  a   b            b   c
func (t *Tree[T]) rotateRight(x arena.Ref) {
	xn := t.node(x)
	up, pivot := xn.parent, xn.left
	assert(pivot != arena.Nil, "rotateRight: no left child")
	t.setLeftChild(x, t.node(pivot).right)
	t.replaceChild(up, x, pivot)
	t.setRightChild(pivot, x)
}

// rootFrom climbs from n to the root of the tree.
func (t *Tree[T]) rootFrom(n arena.Ref) arena.Ref {
	if n == arena.Nil {
		return arena.Nil
	}
	for p := t.node(n).parent; p != arena.Nil; p = t.node(n).parent {
		n = p
	}
	return n
}

// minFrom returns the leftmost node of the subtree at n.
func (t *Tree[T]) minFrom(n arena.Ref) arena.Ref {
	if n == arena.Nil {
		return arena.Nil
	}
	for l := t.node(n).left; l != arena.Nil; l = t.node(n).left {
		n = l
	}
	return n
}

// maxFrom returns the rightmost node of the subtree at n.
func (t *Tree[T]) maxFrom(n arena.Ref) arena.Ref {
	if n == arena.Nil {
		return arena.Nil
	}
	for r := t.node(n).right; r != arena.Nil; r = t.node(n).right {
		n = r
	}
	return n
}
