// SPDX-License-Identifier: MIT

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/edgelist/config"
	"github.com/katalvlaran/edgelist/pipeline"
)

// flagKeys maps command flags to configuration keys.
var flagKeys = map[string]string{
	"edges":       config.KeyEdges,
	"vertices":    config.KeyVertices,
	"seed":        config.KeySeed,
	"parallel":    config.KeyParallel,
	"workers":     config.KeyWorkers,
	"chunk-size":  config.KeyChunkSize,
	"trials":      config.KeyTrials,
	"dump-matrix": config.KeyDumpMatrix,
	"dump-edges":  config.KeyDumpEdges,
	"trace":       config.KeyTraceGeneration,
	"format":      config.KeyFormat,
	"log-level":   config.KeyLogLevel,
}

func newRunCmd() *cobra.Command {
	loader := config.NewLoader()
	var configPath string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Generate, convert, cross-validate and report throughput",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if configPath != "" {
				if err := loader.LoadFromFile(configPath); err != nil {
					return err
				}
			}
			cfg, err := loader.Load()
			if err != nil {
				return err
			}
			log := config.NewLogger(cfg.LogLevel, cmd.ErrOrStderr())
			_, err = pipeline.Run(cfg, log, cmd.OutOrStdout())
			return err
		},
	}

	f := cmd.Flags()
	f.StringVar(&configPath, "config", "", "configuration file (yaml, json, toml)")
	f.Int("edges", 5000, "number of edges (matrix rows)")
	f.Int("vertices", 1000, "number of vertices (matrix columns)")
	f.Int64("seed", 0, "random seed; 0 picks a time-based seed")
	f.Bool("parallel", true, "also run and cross-validate the parallel converter")
	f.Int("workers", 0, "parallel workers (default: number of CPUs)")
	f.Int("chunk-size", 0, "edges per parallel task; 0 sizes automatically")
	f.Int("trials", 1, "timed repetitions per converter")
	f.Bool("dump-matrix", false, "print the generated matrix")
	f.Bool("dump-edges", false, "print the converted edge list")
	f.Bool("trace", false, "print each generated edge")
	f.String("format", "text", "report format: text or yaml")
	f.String("log-level", "info", "log level: debug, info, warn, error")

	// Only flags the user actually set override config file and env values.
	for name, key := range flagKeys {
		if err := loader.Viper().BindPFlag(key, f.Lookup(name)); err != nil {
			panic(err)
		}
	}

	return cmd
}
