// SPDX-License-Identifier: MIT

package config_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/edgelist/config"
	"github.com/katalvlaran/edgelist/throughput"
)

func TestLoader_Defaults(t *testing.T) {
	cfg, err := config.NewLoader().Load()
	require.NoError(t, err)
	require.Equal(t, 5000, cfg.Edges)
	require.Equal(t, 1000, cfg.Vertices)
	require.Equal(t, int64(0), cfg.Seed)
	require.True(t, cfg.Parallel)
	require.GreaterOrEqual(t, cfg.Workers, 1)
	require.Equal(t, 0, cfg.ChunkSize)
	require.Equal(t, 1, cfg.Trials)
	require.Equal(t, throughput.FormatText, cfg.Format)
	require.Equal(t, "info", cfg.LogLevel)
}

func TestLoader_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
graph:
  edges: 12
  vertices: 6
  seed: 77
performance:
  workers: 3
  trials: 5
output:
  format: yaml
`), 0o600))

	l := config.NewLoader()
	require.NoError(t, l.LoadFromFile(path))
	cfg, err := l.Load()
	require.NoError(t, err)
	require.Equal(t, 12, cfg.Edges)
	require.Equal(t, 6, cfg.Vertices)
	require.Equal(t, int64(77), cfg.Seed)
	require.Equal(t, 3, cfg.Workers)
	require.Equal(t, 5, cfg.Trials)
	require.Equal(t, throughput.FormatYAML, cfg.Format)

	require.Error(t, config.NewLoader().LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml")))
}

func TestLoader_Env(t *testing.T) {
	t.Setenv("EDGELIST_GRAPH_EDGES", "42")
	cfg, err := config.NewLoader().Load()
	require.NoError(t, err)
	require.Equal(t, 42, cfg.Edges)
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		key  string
		val  any
	}{
		{"NoEdges", config.KeyEdges, 0},
		{"OneVertex", config.KeyVertices, 1},
		{"NoWorkers", config.KeyWorkers, 0},
		{"NegativeChunk", config.KeyChunkSize, -1},
		{"NoTrials", config.KeyTrials, 0},
		{"BadFormat", config.KeyFormat, "xml"},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			l := config.NewLoader()
			l.Set(tc.key, tc.val)
			_, err := l.Load()
			require.ErrorIs(t, err, config.ErrInvalidConfig)
		})
	}
}

func TestNewLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := config.NewLogger("warn", &buf)
	log.Info().Msg("hidden")
	log.Warn().Msg("shown")
	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), "shown")

	buf.Reset()
	fallback := config.NewLogger("bogus", &buf)
	fallback.Info().Msg("fallback")
	fallback.Debug().Msg("below info")
	require.NotContains(t, buf.String(), "below info")
	require.Contains(t, buf.String(), "fallback")
}
