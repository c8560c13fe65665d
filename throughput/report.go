// SPDX-License-Identifier: MIT

package throughput

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// Format selects how a report is rendered.
type Format string

// Supported formats.
const (
	FormatText Format = "text"
	FormatYAML Format = "yaml"
)

// ErrUnknownFormat is returned by ParseFormat for unsupported names.
var ErrUnknownFormat = errors.New("throughput: unknown report format")

// ParseFormat maps a name to a Format.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatText, FormatYAML:
		return Format(s), nil
	default:
		return "", fmt.Errorf("ParseFormat(%q): %w", s, ErrUnknownFormat)
	}
}

// Report is the rendered outcome of one comparison run.
type Report struct {
	RunID     string        `yaml:"run_id"`
	Edges     int           `yaml:"edges"`
	Vertices  int           `yaml:"vertices"`
	Seed      int64         `yaml:"seed"`
	Variants  []VariantLine `yaml:"variants"`
	Validated bool          `yaml:"cross_validated"`
	Mismatch  string        `yaml:"mismatch,omitempty"`
}

// VariantLine is the flat, serializable form of a Summary.
type VariantLine struct {
	Variant   string  `yaml:"variant"`
	Trials    int     `yaml:"trials"`
	Bytes     int64   `yaml:"bytes"`
	MeanMS    float64 `yaml:"mean_ms"`
	StdDevMS  float64 `yaml:"stddev_ms"`
	MinMS     float64 `yaml:"min_ms"`
	MaxMS     float64 `yaml:"max_ms"`
	GiBPerSec float64 `yaml:"gib_per_s"`
	PeakGiBPS float64 `yaml:"peak_gib_per_s"`
}

// Line flattens a Summary for rendering.
func (s Summary) Line() VariantLine {
	return VariantLine{
		Variant:   s.Variant,
		Trials:    s.Trials(),
		Bytes:     s.Bytes,
		MeanMS:    millis(s.Mean),
		StdDevMS:  millis(s.StdDev),
		MinMS:     millis(s.Min),
		MaxMS:     millis(s.Max),
		GiBPerSec: s.GiBPerSecond(),
		PeakGiBPS: s.PeakGiBPerSecond(),
	}
}

// Write renders r to w in the given format.
func (r Report) Write(w io.Writer, f Format) error {
	switch f {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("Report.Write: %w", err)
		}
		return enc.Close()
	case FormatText:
		return r.writeText(w)
	default:
		return fmt.Errorf("Report.Write(%q): %w", f, ErrUnknownFormat)
	}
}

func (r Report) writeText(w io.Writer) error {
	var err error
	printf := func(format string, args ...any) {
		if err == nil {
			_, err = fmt.Fprintf(w, format, args...)
		}
	}

	printf("run %s: %d edges x %d vertices, seed %d\n", r.RunID, r.Edges, r.Vertices, r.Seed)
	for _, v := range r.Variants {
		printf("%s time = %.3f ms (%d trial(s), min %.3f ms, max %.3f ms, stddev %.3f ms, %s scanned)\n",
			v.Variant, v.MeanMS, v.Trials, v.MinMS, v.MaxMS, v.StdDevMS, humanize.IBytes(uint64(v.Bytes)))
		printf("%s memory throughput = %.3f GiB/s (peak %.3f GiB/s)\n", v.Variant, v.GiBPerSec, v.PeakGiBPS)
	}
	switch {
	case r.Mismatch != "":
		printf("Invalid result: %s\n", r.Mismatch)
	case r.Validated:
		printf("Valid result\n")
	}

	return err
}

// Log emits one structured event per summary.
func Log(log zerolog.Logger, s Summary) {
	log.Info().
		Str("variant", s.Variant).
		Int("trials", s.Trials()).
		Int64("bytes", s.Bytes).
		Float64("elapsed_ms", millis(s.Mean)).
		Float64("stddev_ms", millis(s.StdDev)).
		Float64("gib_s", s.GiBPerSecond()).
		Msg("conversion measured")
}

func millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
