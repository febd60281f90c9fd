package arena

import (
	"fmt"
	"math"
)

const (
	// DefaultPageSize is the number of slots per page if Config.PageSize is 0.
	DefaultPageSize = 256
	// MaxSlots is the largest number of slots an arena is able to address.
	MaxSlots uint64 = math.MaxUint32
)

// Config configures an arena.
type Config struct {
	// Capacity bounds the number of live slots. 0 means unbounded.
	Capacity int
	// PageSize is the number of slots allocated at once when the arena grows.
	PageSize int
}

func (cfg Config) normalized() Config {
	if cfg.PageSize == 0 {
		cfg.PageSize = DefaultPageSize
	}
	return cfg
}

func (cfg Config) validate() error {
	if cfg.Capacity < 0 {
		return fmt.Errorf("%w: negative capacity %d", ErrInvalidConfig, cfg.Capacity)
	}
	if uint64(cfg.Capacity) >= MaxSlots {
		return fmt.Errorf("%w: capacity must be < %d", ErrInvalidConfig, MaxSlots)
	}
	if cfg.PageSize < 0 {
		return fmt.Errorf("%w: negative page size %d", ErrInvalidConfig, cfg.PageSize)
	}
	return nil
}
