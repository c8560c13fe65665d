// SPDX-License-Identifier: MIT
// Package: edgelist/generator
//
// options.go: functional options and resolved configuration.
//
// Contract:
//   • Options are functional (type Option func(*config)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package generator

import (
	"math/rand"
	"runtime"
)

// Deterministic defaults.
const (
	defaultSeed int64 = 0 // resolved to zeroSeedParent by parentSeed

	// chunkEdges is the number of edges drawn from one derived RNG stream.
	// Fixed so the output does not depend on the worker count.
	chunkEdges = 1024
)

// TraceFunc observes one generated edge: its index and both endpoints.
// It is called in edge order after the matrix is filled.
type TraceFunc func(edge, first, second int)

// Option customizes Random before generation begins.
type Option func(*config)

// config aggregates all generator knobs. Passed by value.
type config struct {
	seed    int64      // parent seed for chunk streams
	rng     *rand.Rand // optional parent RNG; when set, seed is drawn from it
	workers int        // concurrent chunk fillers
	trace   TraceFunc  // optional per-edge observer
}

// newConfig applies options in order over deterministic defaults.
func newConfig(opts ...Option) config {
	cfg := config{
		seed:    defaultSeed,
		workers: runtime.GOMAXPROCS(0),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// parentSeed resolves the seed shared by all chunk streams.
func (c config) parentSeed() int64 {
	switch {
	case c.rng != nil:
		return c.rng.Int63()
	case c.seed == 0:
		return zeroSeedParent
	default:
		return c.seed
	}
}

// WithSeed fixes the seed. seed==0 selects a stable default seed.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.seed = seed
		c.rng = nil
	}
}

// WithRand draws the parent seed from r. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("generator: WithRand(nil)")
	}
	return func(c *config) { c.rng = r }
}

// WithWorkers bounds the number of goroutines filling chunks. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("generator: WithWorkers(n<1)")
	}
	return func(c *config) { c.workers = n }
}

// WithTrace installs a per-edge observer. Panics on nil.
func WithTrace(fn TraceFunc) Option {
	if fn == nil {
		panic("generator: WithTrace(nil)")
	}
	return func(c *config) { c.trace = fn }
}
