// SPDX-License-Identifier: MIT
// Package: edgelist/generator
//
// random.go: Random(edges, vertices) incidence generator.
//
// Model:
//   - For each edge draw `first` uniformly in [0,vertices), redraw `second`
//     until it differs from `first`, mark both cells.
//   - No self-loops by construction; parallel edges between the same two
//     vertices are allowed (each edge owns its own row).
//
// Determinism:
//   - Edges are split into fixed chunks of chunkEdges; chunk k draws from
//     chunkRNG(parent, k). Output depends on the seed only, never on workers.
//
// Complexity:
//   - Time: O(edges*vertices) for allocation + O(edges) expected draws.
//   - Space: O(edges*vertices) matrix + O(edges) endpoint buffer for tracing.

package generator

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/edgelist/matrix"
)

const (
	methodRandom = "Random"
	MinEdges     = 1
	MinVertices  = 2
)

// Random returns a fresh edges×vertices incidence matrix where every edge
// has exactly two distinct marked vertices.
// Errors: ErrTooFewEdges, ErrTooFewVertices, matrix.ErrTooLarge.
func Random(edges, vertices int, opts ...Option) (*matrix.Incidence, error) {
	// 1) Validate parameters before any allocation.
	if edges < MinEdges {
		return nil, fmt.Errorf("%s: edges=%d < min=%d: %w", methodRandom, edges, MinEdges, ErrTooFewEdges)
	}
	if vertices < MinVertices {
		return nil, fmt.Errorf("%s: vertices=%d < min=%d: %w", methodRandom, vertices, MinVertices, ErrTooFewVertices)
	}

	m, err := matrix.NewIncidence(edges, vertices)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodRandom, err)
	}

	// 2) Resolve configuration and the parent seed shared by all chunks.
	cfg := newConfig(opts...)
	parent := cfg.parentSeed()

	var ends []int
	if cfg.trace != nil {
		ends = make([]int, 2*edges)
	}

	// 3) Fill chunks concurrently; each chunk writes only its own rows.
	var g errgroup.Group
	g.SetLimit(cfg.workers)
	for start := 0; start < edges; start += chunkEdges {
		end := min(start+chunkEdges, edges)
		chunk := start / chunkEdges
		g.Go(func() error {
			rng := chunkRNG(parent, chunk)
			for e := start; e < end; e++ {
				first := rng.Intn(vertices)
				second := first
				for second == first {
					second = rng.Intn(vertices)
				}
				if err := m.Mark(e, first); err != nil {
					return err
				}
				if err := m.Mark(e, second); err != nil {
					return err
				}
				if ends != nil {
					ends[2*e], ends[2*e+1] = first, second
				}
			}
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return nil, fmt.Errorf("%s: %w", methodRandom, err)
	}

	// 4) Replay endpoints to the observer in edge order.
	if cfg.trace != nil {
		for e := 0; e < edges; e++ {
			cfg.trace(e, ends[2*e], ends[2*e+1])
		}
	}

	return m, nil
}
