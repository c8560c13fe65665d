// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors and the typed
// structural error used by the generation validator. Callers branch with
// errors.Is / errors.As; no algorithm panics on user-triggered conditions.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for easy grepping across logs.
// Context is attached at call sites with fmt.Errorf("Method: %w", ErrX).
//
// ERROR PRIORITY:
// nil matrix -> shape -> index -> value -> structural violations.

var (
	// ErrNilMatrix indicates that a nil *Incidence was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrBadShape is returned when a requested shape is invalid (edges<=0 or vertices<=0),
	// or when literal rows are ragged.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrTooLarge signals that edges*vertices overflows or exceeds MaxCells.
	// It is the fatal allocation class: callers abort the run.
	ErrTooLarge = errors.New("matrix: matrix too large")

	// ErrOutOfRange indicates that an edge or vertex index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNonBinary indicates a marker other than 0 or 1.
	ErrNonBinary = errors.New("matrix: non-binary incidence")

	// ErrStructure signals that an edge does not have exactly two marks.
	ErrStructure = errors.New("matrix: edge must have exactly two marks")
)

// StructuralError reports the first edge that violates the two-marks rule.
// It matches ErrStructure under errors.Is.
type StructuralError struct {
	Edge  int // failing edge index
	Marks int // number of marks observed in that edge
}

// Error implements error.
func (e *StructuralError) Error() string {
	return fmt.Sprintf("matrix: edge #%d has %d marks, want %d", e.Edge, e.Marks, MarksPerEdge)
}

// Is reports whether target is ErrStructure.
func (e *StructuralError) Is(target error) bool {
	return target == ErrStructure
}
