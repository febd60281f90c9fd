package arena

import "fmt"

// Ref addresses a slot of an arena.
type Ref uint32

// Nil is the reserved ref which never denotes a live slot.
const Nil Ref = 0

// Allocator is the allocation capability a tree needs for its nodes.
//
// Alloc returns a zeroed slot which does not alias any other live slot.
// Free releases a slot; slots may be freed in any order. At returns the
// storage of a live slot; the pointer remains valid until the slot is freed.
type Allocator[T any] interface {
	Alloc() (Ref, error)
	Free(Ref)
	At(Ref) *T
	Len() int
}

// Stats is a snapshot of the bookkeeping of an arena.
type Stats struct {
	Live     int // slots currently handed out
	Free     int // released slots waiting for re-use
	Slots    int // slots ever touched, excluding Nil
	Capacity int // upper bound of live slots, 0 for unbounded
}

// Arena stores values of type T in pages of fixed size.
//
// Pages are never moved, so pointers returned by At stay valid while the
// arena grows. Released slots are kept on a free list and handed out again
// LIFO.
type Arena[T any] struct {
	cfg   Config
	pages [][]T
	free  []Ref
	next  Ref // first slot never handed out
	live  int
}

var _ Allocator[int] = (*Arena[int])(nil)

// New creates an empty arena with validated configuration.
func New[T any](cfg Config) (*Arena[T], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Arena[T]{
		cfg:  cfg.normalized(),
		next: 1, // slot 0 is Nil
	}, nil
}

// Config returns the effective configuration of a.
func (a *Arena[T]) Config() Config {
	return a.cfg
}

// Alloc hands out a zeroed slot. It returns ErrOutOfMemory if the configured
// capacity is exhausted or the address space of Ref is used up.
func (a *Arena[T]) Alloc() (Ref, error) {
	if a.cfg.Capacity > 0 && a.live >= a.cfg.Capacity {
		return Nil, fmt.Errorf("%w: capacity of %d slots exhausted", ErrOutOfMemory, a.cfg.Capacity)
	}
	if n := len(a.free); n > 0 {
		ref := a.free[n-1]
		a.free = a.free[:n-1]
		a.live++
		return ref, nil
	}
	if a.next == Ref(MaxSlots) {
		return Nil, fmt.Errorf("%w: arena address space exhausted", ErrOutOfMemory)
	}
	ref := a.next
	page := int(ref) / a.cfg.PageSize
	if page == len(a.pages) {
		a.pages = append(a.pages, make([]T, a.cfg.PageSize))
		tracer().Debugf("arena: grow to %d pages", len(a.pages))
	}
	a.next++
	a.live++
	return ref, nil
}

// Free releases slot ref and zeroes its content.
func (a *Arena[T]) Free(ref Ref) {
	if debugChecks {
		assert(ref != Nil, "arena: free of Nil")
		assert(ref < a.next, "arena: free of ref never allocated")
		for _, f := range a.free {
			assert(f != ref, "arena: double free")
		}
	}
	var zero T
	*a.At(ref) = zero
	a.free = append(a.free, ref)
	a.live--
}

// At returns the storage of slot ref.
func (a *Arena[T]) At(ref Ref) *T {
	if debugChecks {
		assert(ref != Nil && ref < a.next, "arena: access to ref out of range")
	}
	return &a.pages[int(ref)/a.cfg.PageSize][int(ref)%a.cfg.PageSize]
}

// Len returns the number of live slots.
func (a *Arena[T]) Len() int {
	return a.live
}

// Stats returns the current bookkeeping counters.
func (a *Arena[T]) Stats() Stats {
	return Stats{
		Live:     a.live,
		Free:     len(a.free),
		Slots:    int(a.next) - 1,
		Capacity: a.cfg.Capacity,
	}
}

// Reset drops all slots, live or not. Refs handed out earlier become invalid.
func (a *Arena[T]) Reset() {
	a.pages = nil
	a.free = nil
	a.next = 1
	a.live = 0
}
