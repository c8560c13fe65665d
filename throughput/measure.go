// SPDX-License-Identifier: MIT
// Package throughput: timing of converter runs.
//
// Measure brackets ONLY the Convert call: matrix generation, validation and
// reporting are outside the timed window. Throughput is descriptive; it never
// alters converter output.

package throughput

import (
	"errors"
	"fmt"
	"math"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/edgelist/edgelist"
	"github.com/katalvlaran/edgelist/matrix"
)

// gib is the binary gigabyte used for throughput (1024³ bytes).
const gib = 1024 * 1024 * 1024

var (
	// ErrInvalidTrials is returned when fewer than one trial is requested.
	ErrInvalidTrials = errors.New("throughput: trials must be >= 1")

	// ErrNotIdempotent signals that repeated runs over the same matrix differ.
	ErrNotIdempotent = errors.New("throughput: converter output changed between trials")
)

// Measurement is one timed converter run.
type Measurement struct {
	Variant string
	Elapsed time.Duration
	Bytes   int64 // bytes scanned: edges*vertices*ElemSize
}

// Milliseconds returns the elapsed time as fractional milliseconds.
func (m Measurement) Milliseconds() float64 { return millis(m.Elapsed) }

// GiBPerSecond returns Bytes / seconds / 1024³.
func (m Measurement) GiBPerSecond() float64 {
	return gibPerSecond(m.Bytes, m.Elapsed)
}

// gibPerSecond returns +Inf for a zero duration (below clock resolution).
func gibPerSecond(bytes int64, d time.Duration) float64 {
	if d <= 0 {
		return math.Inf(1)
	}
	return float64(bytes) / d.Seconds() / gib
}

// Measure runs c.Convert(m) once and times it.
func Measure(c edgelist.Converter, m *matrix.Incidence) (Measurement, edgelist.EdgeList, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return Measurement{}, edgelist.EdgeList{}, fmt.Errorf("Measure(%s): %w", c.Name(), err)
	}

	start := time.Now()
	l, err := c.Convert(m)
	elapsed := time.Since(start)
	if err != nil {
		return Measurement{}, edgelist.EdgeList{}, fmt.Errorf("Measure(%s): %w", c.Name(), err)
	}

	return Measurement{Variant: c.Name(), Elapsed: elapsed, Bytes: m.SizeBytes()}, l, nil
}

// Summary aggregates repeated measurements of one variant.
type Summary struct {
	Variant string
	Bytes   int64
	Runs    []time.Duration
	Mean    time.Duration
	StdDev  time.Duration
	Min     time.Duration
	Max     time.Duration
}

// Trials returns the number of runs summarised.
func (s Summary) Trials() int { return len(s.Runs) }

// GiBPerSecond is the throughput at the mean elapsed time.
func (s Summary) GiBPerSecond() float64 { return gibPerSecond(s.Bytes, s.Mean) }

// PeakGiBPerSecond is the throughput at the fastest run.
func (s Summary) PeakGiBPerSecond() float64 { return gibPerSecond(s.Bytes, s.Min) }

// Summarize computes mean, standard deviation and range over ms.
// All measurements must share a variant; the first one names the summary.
func Summarize(ms []Measurement) Summary {
	if len(ms) == 0 {
		return Summary{}
	}
	xs := make([]float64, len(ms))
	runs := make([]time.Duration, len(ms))
	for i, m := range ms {
		xs[i] = float64(m.Elapsed)
		runs[i] = m.Elapsed
	}

	mean, std := stat.MeanStdDev(xs, nil)
	if len(xs) < 2 {
		std = 0 // unbiased estimator is undefined for one sample
	}

	return Summary{
		Variant: ms[0].Variant,
		Bytes:   ms[0].Bytes,
		Runs:    runs,
		Mean:    time.Duration(mean),
		StdDev:  time.Duration(std),
		Min:     time.Duration(floats.Min(xs)),
		Max:     time.Duration(floats.Max(xs)),
	}
}

// Trials runs c.Convert(m) n times, checks every run returns the same list,
// and summarises the timings. The returned list is the first run's output.
func Trials(c edgelist.Converter, m *matrix.Incidence, n int) (Summary, edgelist.EdgeList, error) {
	if n < 1 {
		return Summary{}, edgelist.EdgeList{}, fmt.Errorf("Trials(%s, n=%d): %w", c.Name(), n, ErrInvalidTrials)
	}

	ms := make([]Measurement, 0, n)
	var first edgelist.EdgeList
	for i := 0; i < n; i++ {
		meas, l, err := Measure(c, m)
		if err != nil {
			return Summary{}, edgelist.EdgeList{}, fmt.Errorf("Trials: run %d: %w", i, err)
		}
		if i == 0 {
			first = l
		} else if !first.Equal(l) {
			return Summary{}, edgelist.EdgeList{}, fmt.Errorf("Trials(%s): run %d: %w", c.Name(), i, ErrNotIdempotent)
		}
		ms = append(ms, meas)
	}

	return Summarize(ms), first, nil
}
