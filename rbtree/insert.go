package rbtree

import (
	"fmt"

	"github.com/npillmayer/ordmap/arena"
)

// Insert links a new node carrying data into the tree. Duplicates are
// permitted: an item equal to existing ones is placed after all of them, so
// equal items keep their insertion order in the chain.
//
// Insert fails only if the allocator cannot provide a node.
func (t *Tree[T]) Insert(data T) (Ref, error) {
	parent, dir := arena.Nil, 0
	for cur := t.root; cur != arena.Nil; {
		parent = cur
		n := t.node(cur)
		if t.cmp(data, n.Data) < 0 {
			dir, cur = -1, n.left
		} else {
			dir, cur = 1, n.right
		}
	}
	return t.Link(parent, dir, data)
}

// InsertUnique links a new node carrying data, unless an equal item is
// already present. In the latter case the existing node is returned and
// inserted is false.
func (t *Tree[T]) InsertUnique(data T) (ref Ref, inserted bool, err error) {
	found, parent, dir := t.Locate(data)
	if found != arena.Nil {
		return found, false, nil
	}
	ref, err = t.Link(parent, dir, data)
	return ref, err == nil, err
}

// Replace overwrites the payload of a node equal to data, or inserts data if
// there is none. If duplicates are present, the first one met during descent
// is overwritten. Overwriting does not change the structure of the tree.
func (t *Tree[T]) Replace(data T) (Ref, error) {
	found, parent, dir := t.Locate(data)
	if found != arena.Nil {
		t.node(found).Data = data
		return found, nil
	}
	return t.Link(parent, dir, data)
}

// Locate descends the tree in search for key. If a node equal to key is met,
// it is returned as found. Otherwise found is Nil and (parent, dir) describe
// the empty child slot where key would have to be linked: dir < 0 for the
// left and dir > 0 for the right child of parent. An empty tree yields
// (Nil, Nil, 0).
//
// Together with Link, Locate lets clients allocate a node only if a key is
// missing.
func (t *Tree[T]) Locate(key T) (found, parent Ref, dir int) {
	for cur := t.root; cur != arena.Nil; {
		parent = cur
		n := t.node(cur)
		c := t.cmp(key, n.Data)
		switch {
		case c < 0:
			dir, cur = -1, n.left
		case c > 0:
			dir, cur = 1, n.right
		default:
			return cur, arena.Nil, 0
		}
	}
	return arena.Nil, parent, dir
}

// Link allocates a node for data and attaches it at an empty child slot, as
// reported by Locate. The tree must not have been modified between the call
// to Locate and the call to Link. Linking into an empty tree requires
// parent = Nil.
func (t *Tree[T]) Link(parent Ref, dir int, data T) (Ref, error) {
	ref, err := t.alloc.Alloc()
	if err != nil {
		tracer().Errorf("rbtree: cannot allocate node: %v", err)
		return arena.Nil, fmt.Errorf("rbtree: insert: %w", err)
	}
	n := t.node(ref)
	*n = Node[T]{color: Red, Data: data}
	if parent == arena.Nil {
		assert(t.root == arena.Nil, "Link: parent Nil for non-empty tree")
		n.color = Black
		t.root = ref
		t.count = 1
		return ref, nil
	}
	if dir < 0 {
		assert(t.node(parent).left == arena.Nil, "Link: left child slot is occupied")
		t.setPrevNode(parent, ref)
		t.setLeftChild(parent, ref)
	} else {
		assert(t.node(parent).right == arena.Nil, "Link: right child slot is occupied")
		t.setNextNode(parent, ref)
		t.setRightChild(parent, ref)
	}
	t.count++
	t.fixInserted(ref)
	return ref, nil
}

// fixInserted restores the red-black properties after linking the red node n.
// The red-uncle case continues at the grandparent; the loop replaces the
// recursion of the textbook formulation.
func (t *Tree[T]) fixInserted(n Ref) {
	for {
		nn := t.node(n)
		p := nn.parent
		if p == arena.Nil { // n is the root
			nn.color = Black
			break
		}
		if t.isBlack(p) {
			break
		}
		pn := t.node(p)
		g := pn.parent
		assert(g != arena.Nil, "fixInserted: red root")
		gn := t.node(g)
		u := gn.left
		if u == p {
			u = gn.right
		}
		if t.isRed(u) {
			tracer().Debugf("rbtree: insert fixup: red uncle %d, recolor and climb to %d", u, g)
			pn.color, gn.color = Black, Red
			t.node(u).color = Black
			n = g
			continue
		}
		tracer().Debugf("rbtree: insert fixup: black uncle, rotate at grandparent %d", g)
		if gn.left == p {
			if pn.right == n { // inner grandchild
				t.rotateLeft(p)
				t.rotateRight(g)
				nn.color = Black
			} else {
				t.rotateRight(g)
				pn.color = Black
			}
		} else {
			if pn.left == n { // inner grandchild
				t.rotateRight(p)
				t.rotateLeft(g)
				nn.color = Black
			} else {
				t.rotateLeft(g)
				pn.color = Black
			}
		}
		gn.color = Red
		break
	}
	t.root = t.rootFrom(n)
}
