// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package singleton

import "errors"

var (
	// ErrAlreadyInitialized is returned when a cell that already holds a
	// value is initialized again. Callers treat it as fatal.
	ErrAlreadyInitialized = errors.New("singleton already initialized")

	// ErrNotInitialized is the panic value of [Cell.MustGet] on an empty cell.
	ErrNotInitialized = errors.New("singleton read before initialization")
)
