package main

import (
	"fmt"
	"io"
	"os"

	"github.com/hapycolor/colorreducer/pkg/codec"
	"github.com/spf13/cobra"
)

type decodeOpts struct {
	in string
}

var decodeopts = decodeOpts{}

func NewDecodeCmd() *cobra.Command {

	decodeCmd := &cobra.Command{
		Use:   "decode",
		Short: "prints the colours of a triples palette as L,a,b lines",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := readInput(decodeopts.in)
			if err != nil {
				return fmt.Errorf("failed to read input: %w", err)
			}
			return printTriples(os.Stdout, raw)
		},
	}

	decodeCmd.Flags().StringVarP(&decodeopts.in, "input", "i", "-", "encoded palette, - for stdin")
	return decodeCmd
}

func printTriples(w io.Writer, raw []byte) error {
	in, err := codec.Triples{}.Decode(raw)
	if err != nil {
		return err
	}
	for _, c := range in.Colors {
		if _, err := fmt.Fprintln(w, c.Triple); err != nil {
			return err
		}
	}
	return nil
}
