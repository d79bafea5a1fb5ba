// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package singleton provides write-once cells for values that are computed
// once at process startup and read everywhere afterwards.
//
// A [Cell] moves through Uninitialized → Initializing → Initialized exactly
// once. Initialized is terminal: there is no reset and no refresh, and any
// attempt to initialize a cell a second time is reported as
// [ErrAlreadyInitialized] instead of silently replacing the stored value.
package singleton

import (
	"sync"
	"sync/atomic"
)

// State describes where a [Cell] is in its lifecycle.
type State int32

const (
	// Uninitialized cells hold no value.
	Uninitialized State = iota
	// Initializing cells are running a GetOrInit initializer.
	Initializing
	// Initialized cells hold their final value.
	Initialized
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Initializing:
		return "initializing"
	case Initialized:
		return "initialized"
	default:
		return "unknown"
	}
}

// Cell is a write-once container. The zero value is an empty cell ready for
// use. A Cell must not be copied after first use.
//
// Reads after initialization are lock-free: the value is published before
// the state flips to Initialized, so a reader that observes Initialized
// always observes the complete value.
type Cell[T any] struct {
	mu    sync.Mutex
	state atomic.Int32
	value T
}

// Set stores v if the cell is still uninitialized. Otherwise it returns
// [ErrAlreadyInitialized] and leaves the stored value untouched.
func (c *Cell[T]) Set(v T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if State(c.state.Load()) != Uninitialized {
		return ErrAlreadyInitialized
	}

	c.value = v
	c.state.Store(int32(Initialized))
	return nil
}

// Get returns the stored value and true, or the zero value and false when
// the cell has not been initialized yet.
func (c *Cell[T]) Get() (T, bool) {
	if State(c.state.Load()) == Initialized {
		return c.value, true
	}
	var zero T
	return zero, false
}

// MustGet returns the stored value and panics when the cell is empty.
// Reading a process singleton before startup finished is a programming error.
func (c *Cell[T]) MustGet() T {
	v, ok := c.Get()
	if !ok {
		panic(ErrNotInitialized)
	}
	return v
}

// GetOrInit returns the stored value, running fn first if the cell is
// empty. Concurrent callers block until the running initializer finishes
// and then observe its result. A failing or panicking initializer leaves
// the cell uninitialized so a later call may try again.
//
// fn must not access the cell it is initializing.
func (c *Cell[T]) GetOrInit(fn func() (T, error)) (T, error) {
	if v, ok := c.Get(); ok {
		return v, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if State(c.state.Load()) == Initialized {
		return c.value, nil
	}

	c.state.Store(int32(Initializing))
	defer func() {
		// covers both the error return and a panic from fn
		c.state.CompareAndSwap(int32(Initializing), int32(Uninitialized))
	}()

	v, err := fn()
	if err != nil {
		var zero T
		return zero, err
	}

	c.value = v
	c.state.Store(int32(Initialized))
	return v, nil
}

// State reports the current lifecycle state of the cell.
func (c *Cell[T]) State() State {
	return State(c.state.Load())
}
