package main

import (
	"fmt"
	"io"
	"os"

	"github.com/hapycolor/colorreducer/pkg/solver"
	"github.com/spf13/cobra"
)

type graphOpts struct {
	solverOpts
	in string
}

var graphopts = graphOpts{}

func NewGraphCmd() *cobra.Command {

	graphCmd := &cobra.Command{
		Use:   "graph",
		Short: "prints the conflict graph of a palette and the colours a reduction removes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd.Flags(), &graphopts.solverOpts)
			if err != nil {
				return err
			}
			s, err := solver.New(cfg.Config)
			if err != nil {
				return err
			}
			raw, err := readInput(graphopts.in)
			if err != nil {
				return fmt.Errorf("failed to read input: %w", err)
			}
			report, err := s.PlanContext(cmd.Context(), raw, cfg.Threshold)
			if err != nil {
				return err
			}
			return printReport(os.Stdout, report)
		},
	}

	graphopts.addFlags(graphCmd.Flags())
	graphCmd.Flags().StringVarP(&graphopts.in, "input", "i", "-", "encoded palette, - for stdin")
	return graphCmd
}

func printReport(w io.Writer, report *solver.Report) error {
	fmt.Fprintf(w, "colours: %d\n", len(report.Input.Colors))
	for _, c := range report.Input.Colors {
		fmt.Fprintf(w, "  %v\n", c)
	}
	fmt.Fprintf(w, "conflicts: %d\n", report.Graph.EdgeCount())
	for _, e := range report.Graph.Edges() {
		fmt.Fprintf(w, "  %d - %d\n", e[0], e[1])
	}
	fmt.Fprintf(w, "components: %d\n", len(report.Graph.Components()))
	_, err := fmt.Fprintf(w, "removed: %v (visited %d states, pruned %d)\n", report.Result.Removed, report.Result.Visited, report.Result.Pruned)
	return err
}
