/*
Package arena provides slot storage for tree nodes.

Nodes of the ordered containers in this module do not reference each other by
Go pointers. Every node lives in a slot of an arena and is addressed by a Ref,
a small integer index. Ref 0 (Nil) is reserved and never handed out; it plays
the role of the absent child, the absent neighbour and the past-the-end position.

An arena is the allocator capability of a tree. It is either created privately
by a tree or borrowed from a client, in which case it has to outlive every tree
using it. Arena itself is not safe for concurrent use; wrap it with Locked if
several containers on different goroutines share one allocator.

Assertions guarding against double frees and foreign refs are compiled in only
with build tag `ordmap_debug`:

	go test -tags ordmap_debug ./...

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package arena

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
