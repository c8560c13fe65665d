// SPDX-License-Identifier: MIT
// Package edgelist: sentinel errors and the typed mismatch report.
// Callers branch with errors.Is(err, ErrMismatch) and read details with errors.As.

package edgelist

import (
	"errors"
	"fmt"
)

var (
	// ErrMismatch signals that two edge lists disagree on some edge, even
	// after allowing swapped endpoints.
	ErrMismatch = errors.New("edgelist: edge lists mismatch")

	// ErrLengthMismatch signals that two edge lists have different lengths.
	ErrLengthMismatch = errors.New("edgelist: edge list lengths differ")
)

// MismatchError reports the first edge index where two lists disagree.
type MismatchError struct {
	Index int  // first failing edge index
	A     Pair // pair from the first list
	B     Pair // pair from the second list
}

// Error implements error.
func (e *MismatchError) Error() string {
	return fmt.Sprintf("edgelist: mismatch for edge number %d: %s vs %s", e.Index, e.A, e.B)
}

// Is reports whether target is ErrMismatch.
func (e *MismatchError) Is(target error) bool {
	return target == ErrMismatch
}
