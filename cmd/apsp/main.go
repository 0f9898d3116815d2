// Command apsp loads directed weighted edge lists, relaxes every vertex
// pair through every intermediate vertex, and renders plain-text distance
// and route reports.
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	verbose bool

	rootCmd = &cobra.Command{
		Use:   "apsp",
		Short: "All-pairs shortest paths over edge-list documents",
		Long: `apsp decodes a directed weighted edge list, computes the shortest
distance between every ordered vertex pair, and writes one report line
per pair. Negative edge weights are legal; negative cycles are detected
and flagged rather than treated as fatal.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
		},
	}
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		slog.Error("Command failed", "error", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}
