// SPDX-License-Identifier: MIT

// Package config manages run configuration using Viper and builds the zerolog logger.
package config

import (
	"errors"
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/viper"

	"github.com/katalvlaran/edgelist/throughput"
)

// Configuration keys.
const (
	KeyEdges           = "graph.edges"
	KeyVertices        = "graph.vertices"
	KeySeed            = "graph.seed"
	KeyParallel        = "performance.parallel"
	KeyWorkers         = "performance.workers"
	KeyChunkSize       = "performance.chunk_size"
	KeyTrials          = "performance.trials"
	KeyDumpMatrix      = "output.dump_matrix"
	KeyDumpEdges       = "output.dump_edges"
	KeyTraceGeneration = "output.trace_generation"
	KeyFormat          = "output.format"
	KeyLogLevel        = "logging.level"
)

// EnvPrefix prefixes environment overrides, e.g. EDGELIST_GRAPH_EDGES.
const EnvPrefix = "EDGELIST"

// ErrInvalidConfig is returned by Validate for out-of-domain values.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Loader wraps a viper instance with the documented defaults.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a loader with defaults and environment overrides enabled.
func NewLoader() *Loader {
	v := viper.New()

	v.SetDefault(KeyEdges, 5000)
	v.SetDefault(KeyVertices, 1000)
	v.SetDefault(KeySeed, 0) // 0 ⇒ the driver picks a time-based seed

	v.SetDefault(KeyParallel, true)
	v.SetDefault(KeyWorkers, runtime.NumCPU())
	v.SetDefault(KeyChunkSize, 0) // 0 ⇒ automatic
	v.SetDefault(KeyTrials, 1)

	v.SetDefault(KeyDumpMatrix, false)
	v.SetDefault(KeyDumpEdges, false)
	v.SetDefault(KeyTraceGeneration, false)
	v.SetDefault(KeyFormat, string(throughput.FormatText))

	v.SetDefault(KeyLogLevel, "info")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return &Loader{v: v}
}

// Viper exposes the underlying instance for flag binding.
func (l *Loader) Viper() *viper.Viper { return l.v }

// LoadFromFile merges a configuration file (any format viper understands).
func (l *Loader) LoadFromFile(path string) error {
	l.v.SetConfigFile(path)
	if err := l.v.ReadInConfig(); err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	return nil
}

// Set overrides a single key.
func (l *Loader) Set(key string, value any) { l.v.Set(key, value) }

// Config is an immutable snapshot of one run's settings.
type Config struct {
	Edges    int
	Vertices int
	Seed     int64

	Parallel  bool
	Workers   int
	ChunkSize int
	Trials    int

	DumpMatrix      bool
	DumpEdges       bool
	TraceGeneration bool
	Format          throughput.Format

	LogLevel string
}

// Load resolves the current values into a validated Config.
func (l *Loader) Load() (Config, error) {
	cfg := Config{
		Edges:           l.v.GetInt(KeyEdges),
		Vertices:        l.v.GetInt(KeyVertices),
		Seed:            l.v.GetInt64(KeySeed),
		Parallel:        l.v.GetBool(KeyParallel),
		Workers:         l.v.GetInt(KeyWorkers),
		ChunkSize:       l.v.GetInt(KeyChunkSize),
		Trials:          l.v.GetInt(KeyTrials),
		DumpMatrix:      l.v.GetBool(KeyDumpMatrix),
		DumpEdges:       l.v.GetBool(KeyDumpEdges),
		TraceGeneration: l.v.GetBool(KeyTraceGeneration),
		Format:          throughput.Format(l.v.GetString(KeyFormat)),
		LogLevel:        l.v.GetString(KeyLogLevel),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every field's domain.
func (c Config) Validate() error {
	switch {
	case c.Edges < 1:
		return fmt.Errorf("%s=%d must be >= 1: %w", KeyEdges, c.Edges, ErrInvalidConfig)
	case c.Vertices < 2:
		return fmt.Errorf("%s=%d must be >= 2: %w", KeyVertices, c.Vertices, ErrInvalidConfig)
	case c.Workers < 1:
		return fmt.Errorf("%s=%d must be >= 1: %w", KeyWorkers, c.Workers, ErrInvalidConfig)
	case c.ChunkSize < 0:
		return fmt.Errorf("%s=%d must be >= 0: %w", KeyChunkSize, c.ChunkSize, ErrInvalidConfig)
	case c.Trials < 1:
		return fmt.Errorf("%s=%d must be >= 1: %w", KeyTrials, c.Trials, ErrInvalidConfig)
	}
	if _, err := throughput.ParseFormat(string(c.Format)); err != nil {
		return fmt.Errorf("%s: %w: %w", KeyFormat, err, ErrInvalidConfig)
	}
	return nil
}
