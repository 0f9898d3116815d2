package main

import (
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/apsp/edgelist"
	"github.com/katalvlaran/apsp/floydwarshall"
	"github.com/katalvlaran/apsp/report"
)

var (
	solvePaths bool

	solveCmd = &cobra.Command{
		Use:   "solve <input> <output>",
		Short: "Relax one edge list and write its all-pairs report",
		Args:  cobra.ExactArgs(2),
		RunE:  runSolve,
	}
)

func init() {
	solveCmd.Flags().BoolVar(&solvePaths, "paths", false, "append hop-by-hop routes to every reachable pair")
	rootCmd.AddCommand(solveCmd)
}

func runSolve(cmd *cobra.Command, args []string) error {
	input, output := args[0], args[1]

	edges, err := edgelist.Load(input)
	if err != nil {
		return err
	}
	g, err := edgelist.BuildGraph(edges)
	if err != nil {
		return err
	}
	slog.Info("Edge list loaded", "path", input, "edges", len(edges), "vertices", g.Order())

	start := time.Now()
	res, err := floydwarshall.FloydWarshall(g)
	if err != nil {
		return err
	}
	slog.Info("Relaxation complete", "vertices", res.Order(), "duration", time.Since(start))

	if res.HasNegativeCycle() {
		slog.Warn("Negative cycle detected, affected entries are unreliable",
			"vertices", strings.Join(res.NegativeCycleVertices(), ","))
	}

	var opts []report.Option
	if solvePaths {
		opts = append(opts, report.WithPaths())
	}
	if err = report.WriteFile(output, res, opts...); err != nil {
		return err
	}
	slog.Info("Report written", "path", output)

	return nil
}
