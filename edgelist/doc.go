// SPDX-License-Identifier: MIT

// Package edgelist converts dense incidence matrices into compact edge lists.
//
// What:
//
//   - EdgeList: flat buffer of 2*edges vertex indices, one pair per edge.
//   - Converter: the conversion contract, with two implementations:
//     Sequential (one goroutine) and Parallel (chunked errgroup dispatch).
//   - CrossValidate: compares two edge lists from different converters,
//     tolerating swapped endpoints, and reports the first mismatching edge.
//
// Why two converters:
//
//	Each edge is independent: it reads one matrix row and writes one output
//	slot pair. Sequential is the baseline; Parallel runs the same kernel over
//	disjoint chunks with a single join, so both outputs must cross-validate
//	and their throughputs are directly comparable.
//
// Preconditions:
//
//	Converters assume matrix.ValidateGeneration passed. On rows with fewer
//	than two marks the missing endpoints stay Unset (-1); extra marks are ignored.
package edgelist
