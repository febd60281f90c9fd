package rbtree

import "github.com/npillmayer/ordmap/arena"

// Remove evicts the item held by node z from the tree and returns the ref of
// the node actually freed.
//
// If z has two children, the payload of its in-order successor is moved into
// z and the successor's node is evicted instead. Clients must therefore not
// assume that the returned ref equals z, and must not hold on to refs of the
// successor. The returned ref has already been released to the allocator.
//
// z must be a live node of t. Violating this is undefined behaviour; builds
// with tag ordmap_debug check it.
func (t *Tree[T]) Remove(z Ref) Ref {
	if debugChecks {
		assert(t.owns(z), "Remove: node is not part of this tree")
	}
	zn := t.node(z)
	u := z
	if zn.left != arena.Nil && zn.right != arena.Nil {
		u = zn.next // successor has no left child
		zn.Data = t.node(u).Data
	}
	un := t.node(u)
	tracer().Debugf("rbtree: evict node %d (%s), requested %d", u, un.color, z)
	v := un.left
	if v == arena.Nil {
		v = un.right
	}
	parent := un.parent
	t.unchain(u)
	t.replaceChild(parent, u, v)
	if parent == arena.Nil {
		t.root = v
	}
	if un.color == Black {
		t.fixRemoved(v, parent)
	}
	if parent != arena.Nil {
		t.root = t.rootFrom(parent)
	} else {
		t.root = t.rootFrom(v)
	}
	t.count--
	t.alloc.Free(u)
	return u
}

// RemoveNext removes the item held by z, like Remove, and returns the node
// holding the item which followed z in the chain, or Nil.
//
// This is the node to continue with when removing items during a walk along
// the chain.
func (t *Tree[T]) RemoveNext(z Ref) Ref {
	zn := t.node(z)
	next := zn.next
	if zn.left != arena.Nil && zn.right != arena.Nil {
		next = z // successor payload moves into z
	}
	t.Remove(z)
	return next
}

// RemoveKey removes one item equal to key. It returns false if there is none.
func (t *Tree[T]) RemoveKey(key T) bool {
	ref := t.Find(key)
	if ref == arena.Nil {
		return false
	}
	t.Remove(ref)
	return true
}

// fixRemoved restores the red-black properties after evicting a black node.
// x is the node which took the place of the evicted one and may be Nil,
// therefore its parent is passed explicitly. Where the textbook algorithm
// recurses on the parent, the loop climbs one level.
func (t *Tree[T]) fixRemoved(x, parent Ref) {
	for {
		if x == arena.Nil && parent == arena.Nil { // tree is empty
			return
		}
		if x != arena.Nil && (t.isRed(x) || parent == arena.Nil) {
			t.node(x).color = Black
			return
		}
		pn := t.node(parent)
		if pn.left == x {
			s := pn.right
			if t.isRed(s) {
				tracer().Debugf("rbtree: remove fixup: red sibling %d, rotate left at %d", s, parent)
				t.node(s).color, pn.color = Black, Red
				t.rotateLeft(parent)
				s = pn.right
			}
			sn := t.node(s)
			if t.isBlack(sn.left) && t.isBlack(sn.right) {
				tracer().Debugf("rbtree: remove fixup: black sibling %d, recolor and climb", s)
				sn.color = Red
				x, parent = parent, pn.parent
				continue
			}
			if t.isRed(sn.left) { // red inner child
				tracer().Debugf("rbtree: remove fixup: red inner child of %d, rotate right", s)
				t.node(sn.left).color, sn.color = Black, Red
				t.rotateRight(s)
				s = pn.right
				sn = t.node(s)
			}
			tracer().Debugf("rbtree: remove fixup: red outer child of %d, rotate left at %d", s, parent)
			sn.color, pn.color = pn.color, Black
			t.node(sn.right).color = Black
			t.rotateLeft(parent)
			return
		}
		s := pn.left
		if t.isRed(s) {
			tracer().Debugf("rbtree: remove fixup: red sibling %d, rotate right at %d", s, parent)
			t.node(s).color, pn.color = Black, Red
			t.rotateRight(parent)
			s = pn.left
		}
		sn := t.node(s)
		if t.isBlack(sn.left) && t.isBlack(sn.right) {
			tracer().Debugf("rbtree: remove fixup: black sibling %d, recolor and climb", s)
			sn.color = Red
			x, parent = parent, pn.parent
			continue
		}
		if t.isRed(sn.right) { // red inner child
			tracer().Debugf("rbtree: remove fixup: red inner child of %d, rotate left", s)
			t.node(sn.right).color, sn.color = Black, Red
			t.rotateLeft(s)
			s = pn.left
			sn = t.node(s)
		}
		tracer().Debugf("rbtree: remove fixup: red outer child of %d, rotate right at %d", s, parent)
		sn.color, pn.color = pn.color, Black
		t.node(sn.left).color = Black
		t.rotateRight(parent)
		return
	}
}

// owns reports whether z is reachable from the root of t.
func (t *Tree[T]) owns(z Ref) bool {
	if z == arena.Nil || t.root == arena.Nil {
		return false
	}
	return t.rootFrom(z) == t.root
}
