package main

import (
	"fmt"

	"github.com/hapycolor/colorreducer/pkg/solver"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type reduceOpts struct {
	solverOpts
	in  string
	out string
}

var reduceopts = reduceOpts{}

func NewReduceCmd() *cobra.Command {

	reduceCmd := &cobra.Command{
		Use:   "reduce",
		Short: "removes the fewest colours so that no two remaining colours clash",
		Long: `reads an encoded palette, builds its conflict graph and writes the palette without a minimum set of clashing colours.
Input and output use the same wire format.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd.Flags(), &reduceopts.solverOpts)
			if err != nil {
				return err
			}
			s, err := solver.New(cfg.Config)
			if err != nil {
				return err
			}
			logrus.Info("Reading colours.")
			raw, err := readInput(reduceopts.in)
			if err != nil {
				return fmt.Errorf("failed to read input: %w", err)
			}
			logrus.Info("Solving.")
			out, err := s.ReduceContext(cmd.Context(), raw, cfg.Threshold)
			if err != nil {
				return err
			}
			if err := writeOutput(reduceopts.out, out); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}
			logrus.Info("Done.")
			return nil
		},
	}

	reduceopts.addFlags(reduceCmd.Flags())
	reduceCmd.Flags().StringVarP(&reduceopts.in, "input", "i", "-", "encoded palette, - for stdin")
	reduceCmd.Flags().StringVarP(&reduceopts.out, "output", "o", "-", "where to write the reduced palette, - for stdout")
	return reduceCmd
}
