// SPDX-License-Identifier: MIT
// Package: edgelist/generator
//
// errors.go: sentinel errors for the generator package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers use errors.Is.
//   • Implementations attach context with %w.
//   • Runtime paths never panic; option constructors may (programmer error).

package generator

import "errors"

// ErrTooFewEdges indicates that the requested edge count is below MinEdges.
var ErrTooFewEdges = errors.New("generator: too few edges")

// ErrTooFewVertices indicates that the requested vertex count is below MinVertices.
// Two distinct endpoints per edge need at least two vertices.
var ErrTooFewVertices = errors.New("generator: too few vertices")
