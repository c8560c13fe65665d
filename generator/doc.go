// SPDX-License-Identifier: MIT

// Package generator produces random incidence matrices for edge-list benchmarks.
//
// Random(edges, vertices, ...Option) marks exactly two distinct vertices per
// edge, so its output always satisfies matrix.ValidateGeneration.
//
// Options:
//
//   - WithSeed / WithRand: reproducible draws (seed 0 selects a fixed default).
//   - WithWorkers: concurrent chunk filling; the result does not depend on it.
//   - WithTrace: observe each edge's endpoints, in edge order.
package generator
