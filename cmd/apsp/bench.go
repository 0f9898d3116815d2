package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/apsp/edgelist"
	"github.com/katalvlaran/apsp/floydwarshall"
	"github.com/katalvlaran/apsp/report"
)

// benchCase is one timed scenario from the YAML config.
type benchCase struct {
	Name   string `yaml:"name"`
	Input  string `yaml:"input"`
	Output string `yaml:"output,omitempty"`
}

// benchConfig is the bench command configuration document.
type benchConfig struct {
	Cases []benchCase `yaml:"cases"`
}

var (
	benchConfigPath string
	benchLogPath    string

	benchCmd = &cobra.Command{
		Use:   "bench",
		Short: "Time the relaxation over a configured set of edge lists",
		RunE:  runBench,
	}
)

func init() {
	benchCmd.Flags().StringVar(&benchConfigPath, "config", "bench.yaml", "YAML file listing the scenarios to time")
	benchCmd.Flags().StringVar(&benchLogPath, "log", "log.txt", "file receiving one timing line per scenario")
	rootCmd.AddCommand(benchCmd)
}

func runBench(cmd *cobra.Command, args []string) error {
	raw, err := os.ReadFile(benchConfigPath)
	if err != nil {
		return err
	}
	var cfg benchConfig
	if err = yaml.Unmarshal(raw, &cfg); err != nil {
		return fmt.Errorf("parsing %s: %w", benchConfigPath, err)
	}
	if len(cfg.Cases) == 0 {
		return fmt.Errorf("%s: no scenarios configured", benchConfigPath)
	}

	logFile, err := os.OpenFile(benchLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := logFile.Close(); closeErr != nil {
			slog.Warn("Failed to close timing log", "path", benchLogPath, "error", closeErr)
		}
	}()

	for _, c := range cfg.Cases {
		edges, err := edgelist.Load(c.Input)
		if err != nil {
			return err
		}
		g, err := edgelist.BuildGraph(edges)
		if err != nil {
			return err
		}

		// Only the relaxation is timed; decoding and reporting stay outside.
		start := time.Now()
		res, err := floydwarshall.FloydWarshall(g)
		if err != nil {
			return err
		}
		elapsed := time.Since(start)

		if res.HasNegativeCycle() {
			slog.Warn("Negative cycle detected", "scenario", c.Name)
		}
		if c.Output != "" {
			if err = report.WriteFile(c.Output, res); err != nil {
				return err
			}
		}

		if _, err = fmt.Fprintf(logFile, "%s: %d edges, %s\n", c.Name, len(edges), elapsed); err != nil {
			return err
		}
		slog.Info("Scenario timed", "scenario", c.Name, "vertices", res.Order(), "edges", len(edges), "duration", elapsed)
	}

	return nil
}
