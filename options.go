package ordmap

/*
BSD 3-Clause License

Copyright (c) 2020–26, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"github.com/npillmayer/ordmap/arena"
	"github.com/npillmayer/ordmap/rbtree"
)

// Option configures the private node arena of a container.
type Option func(*arena.Config)

// WithCapacity bounds the number of items a container can hold. Inserting
// beyond the capacity fails with ErrOutOfMemory.
func WithCapacity(n int) Option {
	return func(cfg *arena.Config) {
		cfg.Capacity = n
	}
}

// WithPageSize sets the number of nodes the arena allocates at once.
func WithPageSize(n int) Option {
	return func(cfg *arena.Config) {
		cfg.PageSize = n
	}
}

func arenaConfig(opts []Option) arena.Config {
	var cfg arena.Config
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// MapAllocator is the node allocator type of Map[K,V].
type MapAllocator[K, V any] = arena.Allocator[rbtree.Node[Pair[K, V]]]

// SetAllocator is the node allocator type of Set[K].
type SetAllocator[K any] = arena.Allocator[rbtree.Node[K]]

// NewMapAllocator creates an arena which may be shared by several maps, see
// NewMapIn. Wrap it with arena.NewLocked if the maps live on different
// goroutines.
func NewMapAllocator[K, V any](opts ...Option) (*arena.Arena[rbtree.Node[Pair[K, V]]], error) {
	return rbtree.NewAllocator[Pair[K, V]](arenaConfig(opts))
}

// NewSetAllocator creates an arena which may be shared by several sets, see
// NewSetIn.
func NewSetAllocator[K any](opts ...Option) (*arena.Arena[rbtree.Node[K]], error) {
	return rbtree.NewAllocator[K](arenaConfig(opts))
}
