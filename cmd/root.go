// SPDX-License-Identifier: MIT

// Package cmd provides the edgelist command line.
package cmd

import (
	"github.com/spf13/cobra"
)

// Version is stamped at build time with -ldflags "-X .../cmd.Version=...".
var Version = "dev"

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "edgelist",
		Short: "Incidence matrix to edge list benchmark",
		Long: `edgelist generates a random incidence matrix, converts it to an edge list
with a sequential and a parallel converter, cross-validates the results and
reports time and memory throughput for each.`,
		SilenceUsage: true,
	}
	root.AddCommand(newRunCmd(), newVersionCmd())
	return root
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Println(Version)
		},
	}
}
