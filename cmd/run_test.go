// SPDX-License-Identifier: MIT

package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/edgelist/matrix"
	"github.com/katalvlaran/edgelist/throughput"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestRunCmd_YAMLReport(t *testing.T) {
	out, err := execute(t, "run",
		"--edges", "40", "--vertices", "8", "--seed", "4",
		"--workers", "2", "--trials", "2", "--format", "yaml", "--log-level", "error")
	require.NoError(t, err)

	var rep throughput.Report
	require.NoError(t, yaml.Unmarshal([]byte(out), &rep))
	require.Equal(t, 40, rep.Edges)
	require.Equal(t, 8, rep.Vertices)
	require.Equal(t, int64(4), rep.Seed)
	require.True(t, rep.Validated)
	require.Len(t, rep.Variants, 2)
	require.Equal(t, int64(40*8*matrix.ElemSize), rep.Variants[0].Bytes)
}

func TestRunCmd_ConfigFileAndFlagOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
graph:
  edges: 10
  vertices: 4
  seed: 1
performance:
  parallel: false
output:
  format: yaml
logging:
  level: error
`), 0o600))

	out, err := execute(t, "run", "--config", path, "--edges", "12")
	require.NoError(t, err)

	var rep throughput.Report
	require.NoError(t, yaml.Unmarshal([]byte(out), &rep))
	require.Equal(t, 12, rep.Edges)
	require.Equal(t, 4, rep.Vertices)
	require.Len(t, rep.Variants, 1)
}

func TestRunCmd_InvalidConfig(t *testing.T) {
	_, err := execute(t, "run", "--vertices", "1", "--log-level", "error")
	require.Error(t, err)
}

func TestVersionCmd(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	require.Equal(t, Version+"\n", out)
}
