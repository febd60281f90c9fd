//go:build !ordmap_debug

package rbtree

const debugChecks = false
