/*
Package ordmap offers ordered maps and sets for arbitrary key types.

# Maps and Sets

Both containers keep their items sorted by a three-way comparator, supplied
by the client or derived from Go's ordering operators:

	m := ordmap.NewOrderedMap[string, int]()
	m.Put("beta", 2)
	m.Put("alpha", 1)
	for k, v := range m.All() {
		fmt.Println(k, v) // alpha 1, beta 2
	}

Underneath lives a red-black tree (package rbtree) whose nodes are threaded
by a doubly linked list in key order. Lookup, insertion and removal are
O(log n), stepping an iterator is O(1) and never descends the tree.

	Operation       |   Map/Set
	----------------+-----------
	Put/Add         |   O(log n)
	Get/Has         |   O(log n)
	Remove/Pop      |   O(log n)
	Iterator step   |   O(1)
	Iterate         |   O(n)
	Union/Intersect |   O(m log(n+m))

Nodes are stored in an arena (package arena). Containers either create a
private arena or borrow one from the client; see NewMapIn and NewSetIn.
Allocation failures of a capacity-bounded arena are reported as
ErrOutOfMemory.

Maps and sets are not safe for concurrent use. Clients sharing a container
between goroutines have to serialize all access.
*/
package ordmap

/*
BSD 3-Clause License

Copyright (c) 2020–26, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/

import (
	"github.com/npillmayer/ordmap/arena"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// MapError is an error type for the ordmap module
type MapError string

func (e MapError) Error() string {
	return string(e)
}

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = MapError("illegal arguments")

// ErrOutOfMemory is flagged if the node allocator of a container is exhausted.
var ErrOutOfMemory = arena.ErrOutOfMemory
