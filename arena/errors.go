package arena

import "errors"

var (
	// ErrInvalidConfig signals an invalid arena configuration.
	ErrInvalidConfig = errors.New("arena: invalid configuration")
	// ErrOutOfMemory signals that an allocator cannot hand out another slot.
	ErrOutOfMemory = errors.New("arena: out of memory")
)
