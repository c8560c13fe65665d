// SPDX-License-Identifier: MIT

// Package matrix holds the dense incidence matrix consumed by edge-list converters.
//
// The matrix package provides:
//
//   - Incidence: an edges×vertices 0/1 matrix stored row-major by edge, so the
//     markers of one edge are contiguous.
//   - ValidateGeneration: the structural gate (exactly two marks per edge)
//     that must pass before any converter runs.
//   - Dump / String: text renderings for debugging small matrices.
//
// Memory is O(edges*vertices) cells of ElemSize bytes; SizeBytes reports the
// figure used by throughput measurements.
package matrix
