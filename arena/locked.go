package arena

import "sync"

// Locked guards an allocator with a mutex. It is safe for concurrent use by
// several containers, as long as every single container is used by one
// goroutine at a time.
type Locked[T any] struct {
	mu    sync.Mutex
	inner Allocator[T]
}

var _ Allocator[int] = (*Locked[int])(nil)

// NewLocked wraps an allocator.
func NewLocked[T any](inner Allocator[T]) *Locked[T] {
	assert(inner != nil, "arena: cannot lock nil allocator")
	return &Locked[T]{inner: inner}
}

// Alloc is part of interface Allocator.
func (l *Locked[T]) Alloc() (Ref, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.inner.Alloc()
}

// Free is part of interface Allocator.
func (l *Locked[T]) Free(ref Ref) {
	l.mu.Lock()
	l.inner.Free(ref)
	l.mu.Unlock()
}

// At is part of interface Allocator.
func (l *Locked[T]) At(ref Ref) *T {
	l.mu.Lock()
	p := l.inner.At(ref)
	l.mu.Unlock()
	return p
}

// Len is part of interface Allocator.
func (l *Locked[T]) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.inner.Len()
}
