package rbtree

import (
	"fmt"

	"github.com/npillmayer/ordmap/arena"
)

// Check validates the structural invariants of the tree:
//
//   - the in-order sequence is ordered by the comparator (non-decreasing, as
//     duplicates are permitted),
//   - no red node has a red child,
//   - every path from the root to an empty slot has the same number of black
//     nodes,
//   - the root is black and has no parent,
//   - walking the chain forward from the minimum visits exactly the nodes of
//     an in-order traversal, and walking it backward from the maximum yields
//     the reverse,
//   - the node count equals the number of reachable nodes and the chain length.
//
// Check walks the whole tree and is meant for tests.
func (t *Tree[T]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvalidConfig)
	}
	if t.root == arena.Nil {
		if t.count != 0 {
			return fmt.Errorf("%w: empty tree with count %d", ErrCorrupted, t.count)
		}
		return nil
	}
	rn := t.node(t.root)
	if rn.parent != arena.Nil {
		return fmt.Errorf("%w: root has a parent", ErrCorrupted)
	}
	if rn.color != Black {
		return fmt.Errorf("%w: root is red", ErrCorrupted)
	}
	inorder := make([]Ref, 0, t.count)
	if _, err := t.checkNode(t.root, &inorder); err != nil {
		return err
	}
	if len(inorder) != t.count {
		return fmt.Errorf("%w: count is %d, but %d nodes are reachable", ErrCorrupted, t.count, len(inorder))
	}
	for i := 1; i < len(inorder); i++ {
		if t.cmp(t.node(inorder[i-1]).Data, t.node(inorder[i]).Data) > 0 {
			return fmt.Errorf("%w: in-order sequence not ordered at position %d", ErrCorrupted, i)
		}
	}
	return t.checkChain(inorder)
}

// checkNode recursively checks the subtree at n, appending its nodes in order.
// It returns the black height of the subtree.
func (t *Tree[T]) checkNode(n Ref, inorder *[]Ref) (int, error) {
	if n == arena.Nil {
		return 1, nil
	}
	if len(*inorder) > t.count {
		return 0, fmt.Errorf("%w: more nodes reachable than counted (cycle?)", ErrCorrupted)
	}
	nn := t.node(n)
	for _, c := range [2]Ref{nn.left, nn.right} {
		if c == arena.Nil {
			continue
		}
		cn := t.node(c)
		if cn.parent != n {
			return 0, fmt.Errorf("%w: broken parent link below %v", ErrCorrupted, nn.Data)
		}
		if nn.color == Red && cn.color == Red {
			return 0, fmt.Errorf("%w: red node %v has red child %v", ErrCorrupted, nn.Data, cn.Data)
		}
	}
	lh, err := t.checkNode(nn.left, inorder)
	if err != nil {
		return 0, err
	}
	*inorder = append(*inorder, n)
	rh, err := t.checkNode(nn.right, inorder)
	if err != nil {
		return 0, err
	}
	if lh != rh {
		return 0, fmt.Errorf("%w: black height mismatch at %v (%d != %d)", ErrCorrupted, nn.Data, lh, rh)
	}
	if nn.color == Black {
		lh++
	}
	return lh, nil
}

func (t *Tree[T]) checkChain(inorder []Ref) error {
	if t.node(inorder[0]).prev != arena.Nil {
		return fmt.Errorf("%w: minimum has a predecessor", ErrCorrupted)
	}
	i := 0
	for ref := inorder[0]; ref != arena.Nil; ref = t.node(ref).next {
		if i >= len(inorder) {
			return fmt.Errorf("%w: chain longer than tree", ErrCorrupted)
		}
		if ref != inorder[i] {
			return fmt.Errorf("%w: chain deviates from in-order sequence at position %d", ErrCorrupted, i)
		}
		i++
	}
	if i != len(inorder) {
		return fmt.Errorf("%w: chain has %d nodes, tree has %d", ErrCorrupted, i, len(inorder))
	}
	i = len(inorder) - 1
	for ref := inorder[i]; ref != arena.Nil; ref = t.node(ref).prev {
		if i < 0 || ref != inorder[i] {
			return fmt.Errorf("%w: backward chain deviates from in-order sequence", ErrCorrupted)
		}
		i--
	}
	if i != -1 {
		return fmt.Errorf("%w: backward chain too short", ErrCorrupted)
	}
	return nil
}

// BlackHeight returns the number of black nodes on every path from the root
// to an empty slot, counting the empty slot. It assumes a valid tree.
func (t *Tree[T]) BlackHeight() int {
	h := 1
	for n := t.root; n != arena.Nil; n = t.node(n).left {
		if t.node(n).color == Black {
			h++
		}
	}
	return h
}

// Height returns the number of nodes on the longest root-to-leaf path.
func (t *Tree[T]) Height() int {
	if t.root == arena.Nil {
		return 0
	}
	type frame struct {
		ref   Ref
		depth int
	}
	height := 0
	stack := []frame{{t.root, 1}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if f.depth > height {
			height = f.depth
		}
		n := t.node(f.ref)
		if n.left != arena.Nil {
			stack = append(stack, frame{n.left, f.depth + 1})
		}
		if n.right != arena.Nil {
			stack = append(stack, frame{n.right, f.depth + 1})
		}
	}
	return height
}
