package main

import (
	"fmt"
	"io"
	"os"

	"github.com/hapycolor/colorreducer/pkg/config"
	"github.com/spf13/pflag"
)

// solverOpts are the flags shared by every command which runs a reduction.
// Flags which were set explicitly win over the configuration file.
type solverOpts struct {
	strategy        string
	distance        string
	format          string
	bound           string
	threshold       float64
	nodeCount       int
	memoSize        int
	splitComponents bool
}

func (o *solverOpts) addFlags(flags *pflag.FlagSet) {
	defaults := config.Default()
	flags.StringVarP(&o.strategy, "strategy", "s", defaults.Strategy, "search strategy (branch-and-bound, exhaustive, maxsat)")
	flags.StringVarP(&o.distance, "distance", "d", defaults.Distance, "distance policy (squared-euclidean, absolute, ciede2000)")
	flags.StringVarP(&o.format, "format", "f", defaults.Format, "wire format (triples, pairs)")
	flags.StringVar(&o.bound, "bound", defaults.Bound, "lower bound used for pruning (clique-cover, none)")
	flags.Float64VarP(&o.threshold, "threshold", "t", defaults.Threshold, "colours closer than this clash")
	flags.IntVarP(&o.nodeCount, "node-count", "n", defaults.NodeCount, "number of colours in a pairs input")
	flags.IntVar(&o.memoSize, "memo-size", defaults.MemoSize, "number of memoized removal sets, 0 disables memoization")
	flags.BoolVar(&o.splitComponents, "split-components", defaults.SplitComponents, "search every connected component on its own")
}

// toConfig merges the flags which were changed on top of the configuration
// file.
func toConfig(file *config.File, flags *pflag.FlagSet, o *solverOpts) (*config.File, error) {
	cfg := *file
	if flags.Changed("strategy") {
		cfg.Strategy = o.strategy
	}
	if flags.Changed("distance") {
		cfg.Distance = o.distance
	}
	if flags.Changed("format") {
		cfg.Format = o.format
	}
	if flags.Changed("bound") {
		cfg.Bound = o.bound
	}
	if flags.Changed("threshold") {
		cfg.Threshold = o.threshold
	}
	if flags.Changed("node-count") {
		cfg.NodeCount = o.nodeCount
	}
	if flags.Changed("memo-size") {
		cfg.MemoSize = o.memoSize
	}
	if flags.Changed("split-components") {
		cfg.SplitComponents = o.splitComponents
	}
	if cfg.Threshold < 0 {
		return nil, fmt.Errorf("threshold %v must not be negative", cfg.Threshold)
	}
	return &cfg, nil
}

func loadConfig(flags *pflag.FlagSet, o *solverOpts) (*config.File, error) {
	file, err := config.Load(rootopts.config)
	if err != nil {
		return nil, err
	}
	return toConfig(file, flags, o)
}

func readInput(path string) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func writeOutput(path string, data []byte) error {
	if path == "" || path == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
