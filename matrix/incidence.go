// SPDX-License-Identifier: MIT
// Package matrix: dense incidence storage with strict bounds.
//
// Layout:
//   - Row-major by edge: row e holds the vertex markers of edge e, so a
//     converter scanning one edge reads a contiguous slice.
//   - Cells are int32 (ElemSize bytes) and hold Unmarked or Marked.
//
// Complexity:
//   - NewIncidence: O(edges*vertices) time and memory.
//   - Accessors: O(1); Row returns a view without copying.

package matrix

import (
	"fmt"
	"math"
)

// Incidence markers.
const (
	Unmarked int32 = 0 // vertex is not an endpoint of the edge
	Marked   int32 = 1 // vertex is an endpoint of the edge
)

// MarksPerEdge is the structural invariant: each edge has exactly two endpoints.
const MarksPerEdge = 2

// ElemSize is the size in bytes of one stored cell.
const ElemSize = 4

// MaxCells bounds edges*vertices to keep a single allocation sane (8 GiB of cells).
const MaxCells = math.MaxInt32

// Incidence is a dense edges×vertices 0/1 matrix.
// edges is the row count, vertices the column count, data holds edges*vertices cells.
type Incidence struct {
	edges, vertices int
	data            []int32
}

// NewIncidence creates an edges×vertices matrix with every cell Unmarked.
// Stage 1 (Validate): both dimensions > 0 and the product within MaxCells.
// Stage 2 (Prepare): allocate flat backing slice.
// Errors: ErrBadShape, ErrTooLarge.
func NewIncidence(edges, vertices int) (*Incidence, error) {
	if edges <= 0 || vertices <= 0 {
		return nil, fmt.Errorf("NewIncidence(%d,%d): %w", edges, vertices, ErrBadShape)
	}
	// Overflow-safe product check before allocating.
	if edges > math.MaxInt/vertices || edges*vertices > MaxCells {
		return nil, fmt.Errorf("NewIncidence(%d,%d): %w", edges, vertices, ErrTooLarge)
	}

	return &Incidence{
		edges:    edges,
		vertices: vertices,
		data:     make([]int32, edges*vertices),
	}, nil
}

// FromRows builds an Incidence from literal rows, one row per edge.
// All rows must share the same non-zero length and contain only 0/1.
func FromRows(rows [][]int32) (*Incidence, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("FromRows: %w", ErrBadShape)
	}
	m, err := NewIncidence(len(rows), len(rows[0]))
	if err != nil {
		return nil, fmt.Errorf("FromRows: %w", err)
	}
	for e, row := range rows {
		if len(row) != m.vertices {
			return nil, fmt.Errorf("FromRows: row %d has %d cells, want %d: %w", e, len(row), m.vertices, ErrBadShape)
		}
		for v, mark := range row {
			if err = m.Set(e, v, mark); err != nil {
				return nil, fmt.Errorf("FromRows: %w", err)
			}
		}
	}

	return m, nil
}

// Edges returns the number of edges (rows).
func (m *Incidence) Edges() int { return m.edges }

// Vertices returns the number of vertices (columns).
func (m *Incidence) Vertices() int { return m.vertices }

// Len returns the number of cells.
func (m *Incidence) Len() int { return len(m.data) }

// SizeBytes returns the number of bytes a full scan touches: edges*vertices*ElemSize.
func (m *Incidence) SizeBytes() int64 {
	return int64(m.edges) * int64(m.vertices) * ElemSize
}

// indexOf computes the flat index for (edge, vertex) or returns ErrOutOfRange.
func (m *Incidence) indexOf(method string, edge, vertex int) (int, error) {
	if edge < 0 || edge >= m.edges || vertex < 0 || vertex >= m.vertices {
		return 0, fmt.Errorf("Incidence.%s(%d,%d): %w", method, edge, vertex, ErrOutOfRange)
	}

	return edge*m.vertices + vertex, nil
}

// At retrieves the marker at (edge, vertex).
func (m *Incidence) At(edge, vertex int) (int32, error) {
	idx, err := m.indexOf("At", edge, vertex)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns mark at (edge, vertex). Only Unmarked and Marked are accepted.
func (m *Incidence) Set(edge, vertex int, mark int32) error {
	idx, err := m.indexOf("Set", edge, vertex)
	if err != nil {
		return err
	}
	if mark != Unmarked && mark != Marked {
		return fmt.Errorf("Incidence.Set(%d,%d)=%d: %w", edge, vertex, mark, ErrNonBinary)
	}
	m.data[idx] = mark

	return nil
}

// Mark sets (edge, vertex) to Marked.
func (m *Incidence) Mark(edge, vertex int) error {
	return m.Set(edge, vertex, Marked)
}

// Row returns the markers of one edge as a view into the backing storage.
// Callers must not modify it. Panics on an out-of-range edge, like slice indexing.
func (m *Incidence) Row(edge int) []int32 {
	start := edge * m.vertices

	return m.data[start : start+m.vertices : start+m.vertices]
}

// Clone returns a deep copy.
func (m *Incidence) Clone() *Incidence {
	cp := make([]int32, len(m.data))
	copy(cp, m.data)

	return &Incidence{edges: m.edges, vertices: m.vertices, data: cp}
}
