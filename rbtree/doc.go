/*
Package rbtree implements a red-black tree whose nodes are additionally
threaded by a doubly linked list in key order.

Every node carries the usual tree edges (parent, left, right) plus two chain
edges (prev, next). The chain always reflects the in-order sequence of the
tree, which gives O(1) successor and predecessor steps without descending the
tree. Rotations change the shape of the tree but never the in-order sequence,
therefore rebalancing leaves the chain untouched; only linking in a fresh node
and evicting a node have to splice the chain.

Nodes live in an arena (package arena) and reference each other by arena.Ref.
A tree either creates a private arena or borrows one from the client.

	tree, _ := rbtree.New(cmp.Compare[int])
	tree.Insert(10)
	tree.Insert(5)
	for k := range tree.All() {
		fmt.Println(k) // 5, 10
	}

Trees are not safe for concurrent use. Clients sharing a tree between
goroutines have to serialize every access.

Removing a node with two children moves the payload of its in-order successor
into it and evicts the successor's slot instead. Cursors are therefore stable
with respect to key positions, but not with respect to node identity.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package rbtree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'ordmap'.
func tracer() tracing.Trace {
	return tracing.Select("ordmap")
}

// assert panics if condition is false. It is a no-op unless built with tag
// ordmap_debug.
func assert(condition bool, msg string) {
	if debugChecks && !condition {
		panic(msg)
	}
}
