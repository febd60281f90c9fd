package ordmap

/*
BSD 3-Clause License

Copyright (c) 2020–26, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"cmp"

	"github.com/npillmayer/ordmap/rbtree"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Compare is a three-way comparator. It returns a negative number if a < b,
// 0 if a == b and a positive number if a > b. It has to be a total order on
// the keys of a container.
type Compare[T any] = rbtree.Compare[T]

// OrderedCompare orders keys by Go's ordering operators. It is the default
// comparator of NewOrderedMap and NewOrderedSet.
func OrderedCompare[T cmp.Ordered](a, b T) int {
	return cmp.Compare(a, b)
}

// Reverse returns a comparator with the order of c reversed.
func Reverse[T any](c Compare[T]) Compare[T] {
	return func(a, b T) int {
		return c(b, a)
	}
}

// CollateCompare returns a comparator ordering strings according to the
// collation rules of a language, e.g.
//
//	m, _ := ordmap.NewMap[string, int](ordmap.CollateCompare(language.German))
//
// Strings the collator considers equal (for example with collate.IgnoreCase)
// are treated as the same key. The comparator carries a collator and is
// not safe for concurrent use.
func CollateCompare(tag language.Tag, opts ...collate.Option) Compare[string] {
	c := collate.New(tag, opts...)
	return c.CompareString
}
