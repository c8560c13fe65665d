// SPDX-License-Identifier: MIT

// Package pipeline drives one comparison run:
// generate → validate → convert (every variant, timed) → cross-validate → report.
//
// Failure policy:
//   - Generation or conversion failures are fatal: the run stops immediately.
//   - A structural violation aborts before any converter runs.
//   - A cross-validation mismatch is reported with full timing data first,
//     then returned as the run's error.
package pipeline

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/katalvlaran/edgelist/config"
	"github.com/katalvlaran/edgelist/edgelist"
	"github.com/katalvlaran/edgelist/generator"
	"github.com/katalvlaran/edgelist/matrix"
	"github.com/katalvlaran/edgelist/throughput"
)

// Source produces the matrix for a run from its resolved seed.
type Source func(cfg config.Config, seed int64, trace generator.TraceFunc) (*matrix.Incidence, error)

// Option customizes a Runner.
type Option func(*Runner)

// WithSource replaces the random generator, e.g. with a fixed fixture.
func WithSource(src Source) Option {
	if src == nil {
		panic("pipeline: WithSource(nil)")
	}
	return func(r *Runner) { r.source = src }
}

// WithConverters replaces the baseline and candidate converters.
// Every candidate is cross-validated against the baseline.
func WithConverters(baseline edgelist.Converter, candidates ...edgelist.Converter) Option {
	if baseline == nil {
		panic("pipeline: WithConverters(nil baseline)")
	}
	return func(r *Runner) {
		r.baseline = baseline
		r.candidates = candidates
	}
}

// Runner holds everything one run needs. It is not reused across runs.
type Runner struct {
	cfg        config.Config
	log        zerolog.Logger
	out        io.Writer
	source     Source
	baseline   edgelist.Converter
	candidates []edgelist.Converter
	err        error // configuration error, returned by Run
}

// Result is what a run produced, also on mismatch.
type Result struct {
	RunID     string
	Seed      int64
	Summaries []throughput.Summary
	Report    throughput.Report
}

// New builds a Runner. Without options it generates a random matrix and
// compares Sequential (baseline) with Parallel when cfg.Parallel is set.
// An invalid cfg is not reported here; Run returns it.
func New(cfg config.Config, log zerolog.Logger, out io.Writer, opts ...Option) *Runner {
	r := &Runner{
		cfg:      cfg,
		log:      log,
		out:      out,
		source:   randomSource,
		baseline: edgelist.NewSequential(),
		err:      cfg.Validate(),
	}
	// Parallel options panic on out-of-domain values, so build it only from a valid cfg.
	if r.err == nil && cfg.Parallel {
		r.candidates = []edgelist.Converter{
			edgelist.NewParallel(edgelist.WithWorkers(cfg.Workers), edgelist.WithChunkSize(cfg.ChunkSize)),
		}
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run is shorthand for New(cfg, log, out).Run().
func Run(cfg config.Config, log zerolog.Logger, out io.Writer) (*Result, error) {
	return New(cfg, log, out).Run()
}

func randomSource(cfg config.Config, seed int64, trace generator.TraceFunc) (*matrix.Incidence, error) {
	opts := []generator.Option{generator.WithSeed(seed), generator.WithWorkers(cfg.Workers)}
	if trace != nil {
		opts = append(opts, generator.WithTrace(trace))
	}
	return generator.Random(cfg.Edges, cfg.Vertices, opts...)
}

// Run executes the pipeline once.
func (r *Runner) Run() (*Result, error) {
	if r.err != nil {
		return nil, r.err
	}

	res := &Result{RunID: uuid.NewString(), Seed: r.cfg.Seed}
	if res.Seed == 0 {
		res.Seed = time.Now().UnixNano()
	}
	log := r.log.With().Str("run_id", res.RunID).Logger()
	out := bufio.NewWriter(r.out)
	defer out.Flush()

	// 1) Generate.
	var trace generator.TraceFunc
	if r.cfg.TraceGeneration {
		trace = func(edge, first, second int) {
			fmt.Fprintf(out, "Edge %d = [%d, %d] %d, %d\n",
				edge, first, second, edge*r.cfg.Vertices+first, edge*r.cfg.Vertices+second)
		}
	}
	m, err := r.source(r.cfg, res.Seed, trace)
	if err != nil {
		log.Error().Err(err).Msg("matrix generation failed")
		return res, fmt.Errorf("pipeline: generate: %w", err)
	}
	log.Info().Int("edges", m.Edges()).Int("vertices", m.Vertices()).Int64("seed", res.Seed).Msg("matrix generated")

	if r.cfg.DumpMatrix {
		if err = m.Dump(out); err != nil {
			return res, fmt.Errorf("pipeline: dump matrix: %w", err)
		}
	}

	// 2) Validate; a bad matrix never reaches a converter.
	if err = matrix.ValidateGeneration(m); err != nil {
		ev := log.Error().Err(err)
		var se *matrix.StructuralError
		if errors.As(err, &se) {
			ev = ev.Int("edge", se.Edge).Int("marks", se.Marks)
		}
		ev.Msg("matrix is invalid")
		return res, fmt.Errorf("pipeline: validate: %w", err)
	}
	log.Info().Msg("matrix is valid")

	// 3) Convert with every variant, timed.
	all := append([]edgelist.Converter{r.baseline}, r.candidates...)
	lists := make([]edgelist.EdgeList, len(all))
	for i, c := range all {
		s, l, err := throughput.Trials(c, m, r.cfg.Trials)
		if err != nil {
			log.Error().Err(err).Str("variant", c.Name()).Msg("conversion failed")
			return res, fmt.Errorf("pipeline: convert: %w", err)
		}
		throughput.Log(log, s)
		res.Summaries = append(res.Summaries, s)
		lists[i] = l
	}

	if r.cfg.DumpEdges {
		if err = lists[0].Dump(out); err != nil {
			return res, fmt.Errorf("pipeline: dump edges: %w", err)
		}
	}

	// 4) Cross-validate candidates against the baseline.
	var mismatch error
	for i := 1; i < len(all); i++ {
		if err := edgelist.CrossValidate(lists[i], lists[0]); err != nil {
			ev := log.Error().Err(err).Str("variant", all[i].Name()).Str("baseline", all[0].Name())
			var me *edgelist.MismatchError
			if errors.As(err, &me) {
				ev = ev.Int("index", me.Index).Stringer("result", me.A).Stringer("canonical", me.B)
			}
			ev.Msg("cross-validation failed")
			mismatch = fmt.Errorf("pipeline: %s vs %s: %w", all[i].Name(), all[0].Name(), err)
			break
		}
		log.Info().Str("variant", all[i].Name()).Msg("cross-validation passed")
	}

	// 5) Report, including on mismatch.
	res.Report = throughput.Report{
		RunID:     res.RunID,
		Edges:     m.Edges(),
		Vertices:  m.Vertices(),
		Seed:      res.Seed,
		Validated: len(all) > 1 && mismatch == nil,
	}
	if mismatch != nil {
		res.Report.Mismatch = mismatch.Error()
	}
	for _, s := range res.Summaries {
		res.Report.Variants = append(res.Report.Variants, s.Line())
	}
	if err = res.Report.Write(out, r.cfg.Format); err != nil {
		return res, fmt.Errorf("pipeline: report: %w", err)
	}
	if err = out.Flush(); err != nil {
		return res, fmt.Errorf("pipeline: flush: %w", err)
	}

	return res, mismatch
}
