// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Single source of truth for the structural precondition of converters:
//    every edge row has exactly MarksPerEdge marks.
//  - Report the first failing edge so a run can abort with a precise message.
//
// Determinism & Performance:
//  - Pure, deterministic, allocates nothing beyond the returned error.
//  - O(edges*vertices); each row is scanned in full (no short-circuit) so the
//    reported mark count is exact.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
func ValidateNotNil(m *Incidence) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// CountMarks returns the number of Marked cells in the given edge row.
// Assumes m is non-nil and edge is in range.
func CountMarks(m *Incidence, edge int) int {
	count := 0
	for _, mark := range m.Row(edge) {
		if mark == Marked {
			count++
		}
	}

	return count
}

// ValidateGeneration checks that every edge has exactly two marks.
//
// Returns:
//   - nil when the matrix satisfies the invariant;
//   - ErrNilMatrix (wrapped) for a nil matrix;
//   - *StructuralError for the FIRST failing edge (errors.Is(err, ErrStructure)).
//
// Complexity: O(edges*vertices).
func ValidateGeneration(m *Incidence) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateGeneration", err)
	}
	for e := 0; e < m.edges; e++ {
		if marks := CountMarks(m, e); marks != MarksPerEdge {
			return &StructuralError{Edge: e, Marks: marks}
		}
	}

	return nil
}
