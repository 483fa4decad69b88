package main

import (
	"runtime"

	"github.com/spf13/cobra"

	"github.com/banshee-data/strategy.canvas/internal/version"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information.",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("canvas %s\n", version.String())
			cmd.Printf("  Runtime: %s\n", runtime.Version())
		},
	}
}
