// SPDX-License-Identifier: MIT
// Package edgelist: data-parallel converter.
//
// Dispatch model:
//   - Edges are split into contiguous chunks of chunkSize edges.
//   - Each chunk is one task on an errgroup limited to `workers` goroutines.
//   - A task reads only its rows of the matrix and writes only its slots of
//     the output; no locks or atomics are needed.
//   - g.Wait() is the single join point before the result is returned.

package edgelist

import (
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/edgelist/matrix"
)

// chunksPerWorker is the auto-sizing target: enough chunks per worker to
// absorb uneven row lengths (rows stop at their second mark).
const chunksPerWorker = 4

// ParallelOption configures a Parallel converter.
type ParallelOption func(*Parallel)

// WithWorkers bounds the number of concurrent chunk tasks. Panics if n < 1.
func WithWorkers(n int) ParallelOption {
	if n < 1 {
		panic("edgelist: WithWorkers(n<1)")
	}
	return func(p *Parallel) { p.workers = n }
}

// WithChunkSize fixes the number of edges per task; 0 selects automatic sizing.
// Panics if n < 0.
func WithChunkSize(n int) ParallelOption {
	if n < 0 {
		panic("edgelist: WithChunkSize(n<0)")
	}
	return func(p *Parallel) { p.chunkSize = n }
}

// Parallel converts chunks of edges concurrently.
// Its configuration is immutable after construction, so one value may serve
// concurrent Convert calls.
type Parallel struct {
	workers   int
	chunkSize int // 0 ⇒ auto
}

// NewParallel returns a converter with GOMAXPROCS workers and automatic chunking
// unless overridden.
func NewParallel(opts ...ParallelOption) *Parallel {
	p := &Parallel{workers: runtime.GOMAXPROCS(0)}
	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Name implements Converter.
func (p *Parallel) Name() string { return "parallel" }

// Workers returns the configured concurrency bound.
func (p *Parallel) Workers() int { return p.workers }

// ChunkFor returns the chunk size used for a matrix with the given edge count.
func (p *Parallel) ChunkFor(edges int) int {
	if p.chunkSize > 0 {
		return p.chunkSize
	}
	chunk := (edges + p.workers*chunksPerWorker - 1) / (p.workers * chunksPerWorker)
	if chunk < 1 {
		chunk = 1
	}

	return chunk
}

// Convert implements Converter.
func (p *Parallel) Convert(m *matrix.Incidence) (EdgeList, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return EdgeList{}, fmt.Errorf("Parallel.Convert: %w", err)
	}

	edges := m.Edges()
	out := New(edges)
	chunk := p.ChunkFor(edges)

	var g errgroup.Group
	g.SetLimit(p.workers)
	for from := 0; from < edges; from += chunk {
		to := min(from+chunk, edges)
		g.Go(func() error {
			convertRange(m, out, from, to)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return EdgeList{}, fmt.Errorf("Parallel.Convert: %w", err)
	}

	return out, nil
}
