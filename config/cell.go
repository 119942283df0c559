package config

import (
	"errors"
	"sync/atomic"
)

// ErrAlreadyInitialized is returned when a Cell is initialised twice.
var ErrAlreadyInitialized = errors.New("configuration already initialized")

// ErrNilValue is returned when a Cell is initialised with nil.
var ErrNilValue = errors.New("nil configuration")

// ErrNotInitialized is the panic value of Get on an empty Cell.
var ErrNotInitialized = errors.New("configuration not initialized")

// Cell holds a configuration that is set once at startup and read from anywhere afterwards.
// The zero Cell is empty and safe for concurrent use.
type Cell[T any] struct {
	ptr atomic.Pointer[T]
}

// Init stores v. Only the first call succeeds.
func (c *Cell[T]) Init(v *T) error {
	if v == nil {
		return ErrNilValue
	}

	if !c.ptr.CompareAndSwap(nil, v) {
		return ErrAlreadyInitialized
	}

	return nil
}

// Get returns the stored configuration and panics if Init has not been called.
func (c *Cell[T]) Get() *T {
	v := c.ptr.Load()
	if v == nil {
		panic(ErrNotInitialized)
	}

	return v
}

// Initialized reports whether Init has succeeded.
func (c *Cell[T]) Initialized() bool {
	return c.ptr.Load() != nil
}
