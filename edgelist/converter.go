// SPDX-License-Identifier: MIT
// Package edgelist: incidence matrix → edge list converters.
//
// Contract shared by every Converter:
//   - Input must satisfy matrix.ValidateGeneration; it is NOT re-validated here.
//   - Edge i of the output holds the first two marked vertices of row i, in
//     ascending vertex order; scanning of a row stops at the second mark.
//   - Rows with more than two marks: extra marks are ignored.
//   - Rows with fewer than two marks: the missing slots stay Unset.
//   - The output is freshly allocated and owned by the caller; the input is
//     only read. Calls are pure and idempotent.
//
// Complexity: O(edges*vertices) worst case, O(edges) extra memory.

package edgelist

import (
	"fmt"

	"github.com/katalvlaran/edgelist/matrix"
)

// Converter turns an incidence matrix into an edge list.
type Converter interface {
	// Name identifies the execution strategy in logs and reports.
	Name() string

	// Convert returns one pair per edge of m.
	// Errors: matrix.ErrNilMatrix when m is nil.
	Convert(m *matrix.Incidence) (EdgeList, error)
}

// scanEdge writes the first two marked vertex indices of row into slot.
// Shared kernel of every converter.
func scanEdge(row []int32, slot []int32) {
	found := 0
	for v, mark := range row {
		if mark != matrix.Marked {
			continue
		}
		slot[found] = int32(v)
		found++
		if found == matrix.MarksPerEdge {
			return
		}
	}
}

// convertRange runs scanEdge for edges in [from, to).
func convertRange(m *matrix.Incidence, out EdgeList, from, to int) {
	for e := from; e < to; e++ {
		scanEdge(m.Row(e), out.slot(e))
	}
}

// Sequential converts on the calling goroutine, edge by edge.
type Sequential struct{}

// NewSequential returns the single-threaded converter.
func NewSequential() Sequential { return Sequential{} }

// Name implements Converter.
func (Sequential) Name() string { return "sequential" }

// Convert implements Converter.
func (Sequential) Convert(m *matrix.Incidence) (EdgeList, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return EdgeList{}, fmt.Errorf("Sequential.Convert: %w", err)
	}
	out := New(m.Edges())
	convertRange(m, out, 0, m.Edges())

	return out, nil
}
