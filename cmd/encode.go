package main

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/hapycolor/colorreducer/pkg/api"
	"github.com/hapycolor/colorreducer/pkg/codec"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/cobra"
)

type encodeOpts struct {
	out string
}

var encodeopts = encodeOpts{}

func NewEncodeCmd() *cobra.Command {

	encodeCmd := &cobra.Command{
		Use:   "encode COLOUR...",
		Short: "encodes colours as a triples palette",
		Long: `encodes every argument as one (L, a, b) triple. Arguments are either hex colours like #1e90ff,
which are converted to L*a*b*, or literal triples like 50,-10,20.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			triples, err := parseColors(args)
			if err != nil {
				return err
			}
			raw, err := codec.EncodeTriples(triples)
			if err != nil {
				return err
			}
			return writeOutput(encodeopts.out, raw)
		},
	}

	encodeCmd.Flags().StringVarP(&encodeopts.out, "output", "o", "-", "where to write the palette, - for stdout")
	return encodeCmd
}

func parseColors(args []string) ([]api.Triple, error) {
	triples := make([]api.Triple, 0, len(args))
	for _, arg := range args {
		t, err := parseColor(arg)
		if err != nil {
			return nil, err
		}
		triples = append(triples, t)
	}
	return triples, nil
}

func parseColor(s string) (api.Triple, error) {
	if strings.HasPrefix(s, "#") {
		c, err := colorful.Hex(s)
		if err != nil {
			return api.Triple{}, fmt.Errorf("invalid hex colour %q: %w", s, err)
		}
		l, a, b := c.Lab()
		return api.Triple{
			// lightness 0 is reserved for the terminator
			L: uint8(clamp(l*100, 1, math.MaxUint8)),
			A: int8(clamp(a*100, math.MinInt8, math.MaxInt8)),
			B: int8(clamp(b*100, math.MinInt8, math.MaxInt8)),
		}, nil
	}

	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return api.Triple{}, fmt.Errorf("colour %q is neither #rrggbb nor L,a,b", s)
	}
	l, err := strconv.ParseUint(strings.TrimSpace(parts[0]), 10, 8)
	if err != nil {
		return api.Triple{}, fmt.Errorf("invalid lightness in %q: %w", s, err)
	}
	if l == 0 {
		return api.Triple{}, fmt.Errorf("colour %q: %w", s, codec.ErrZeroLightness)
	}
	a, err := strconv.ParseInt(strings.TrimSpace(parts[1]), 10, 8)
	if err != nil {
		return api.Triple{}, fmt.Errorf("invalid a in %q: %w", s, err)
	}
	b, err := strconv.ParseInt(strings.TrimSpace(parts[2]), 10, 8)
	if err != nil {
		return api.Triple{}, fmt.Errorf("invalid b in %q: %w", s, err)
	}
	return api.Triple{L: uint8(l), A: int8(a), B: int8(b)}, nil
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, math.Round(v)))
}
