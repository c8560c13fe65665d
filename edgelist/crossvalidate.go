// SPDX-License-Identifier: MIT

package edgelist

import "fmt"

// CrossValidate checks that a and b describe the same graph edge by edge,
// allowing swapped endpoints within an edge. It stops at the first mismatch.
//
// Both lists must come from the same matrix with the same edge order; a
// permutation of edge indices is not detected as equivalent.
//
// Returns nil, ErrLengthMismatch (wrapped), or *MismatchError.
// The result is symmetric: swapping a and b reports the same index.
func CrossValidate(a, b EdgeList) error {
	if a.Len() != b.Len() {
		return fmt.Errorf("CrossValidate: %d vs %d edges: %w", a.Len(), b.Len(), ErrLengthMismatch)
	}
	for i := 0; i < a.Len(); i++ {
		pa, pb := a.Pair(i), b.Pair(i)
		if !pa.Equivalent(pb) {
			return &MismatchError{Index: i, A: pa, B: pb}
		}
	}

	return nil
}

// Equivalent reports whether CrossValidate(a, b) succeeds.
func Equivalent(a, b EdgeList) bool {
	return CrossValidate(a, b) == nil
}
