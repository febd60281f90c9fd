package rbtree

import "github.com/npillmayer/ordmap/arena"

// Find returns a node equal to key, or Nil. With duplicates present it is
// unspecified which of the equal nodes is found; see FindFirst and FindLast.
func (t *Tree[T]) Find(key T) Ref {
	found, _, _ := t.Locate(key)
	return found
}

// FindFirst returns the leftmost node equal to key, or Nil.
func (t *Tree[T]) FindFirst(key T) Ref {
	ref := t.Find(key)
	if ref == arena.Nil {
		return ref
	}
	for p := t.node(ref).prev; p != arena.Nil && t.cmp(key, t.node(p).Data) == 0; p = t.node(p).prev {
		ref = p
	}
	return ref
}

// FindLast returns the rightmost node equal to key, or Nil.
func (t *Tree[T]) FindLast(key T) Ref {
	ref := t.Find(key)
	if ref == arena.Nil {
		return ref
	}
	for n := t.node(ref).next; n != arena.Nil && t.cmp(key, t.node(n).Data) == 0; n = t.node(n).next {
		ref = n
	}
	return ref
}

// Has reports whether an item equal to key is present.
func (t *Tree[T]) Has(key T) bool {
	return t.Find(key) != arena.Nil
}

// Get copies out the payload of a node equal to key.
func (t *Tree[T]) Get(key T) (T, bool) {
	if ref := t.Find(key); ref != arena.Nil {
		return t.node(ref).Data, true
	}
	var zero T
	return zero, false
}

// lowerBound returns the first node not less than key, or Nil.
func (t *Tree[T]) lowerBound(key T) Ref {
	res := arena.Nil
	for cur := t.root; cur != arena.Nil; {
		n := t.node(cur)
		if t.cmp(n.Data, key) >= 0 {
			res, cur = cur, n.left
		} else {
			cur = n.right
		}
	}
	return res
}

// upperBound returns the first node greater than key, or Nil.
func (t *Tree[T]) upperBound(key T) Ref {
	res := arena.Nil
	for cur := t.root; cur != arena.Nil; {
		n := t.node(cur)
		if t.cmp(n.Data, key) > 0 {
			res, cur = cur, n.left
		} else {
			cur = n.right
		}
	}
	return res
}
