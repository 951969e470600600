package codec

import (
	"fmt"

	"github.com/hapycolor/colorreducer/pkg/api"
)

const tripleSize = 3

// Triples is the canonical wire format: one (L, a, b) group of three bytes per
// colour, a and b in two's complement, followed by a single zero byte. A group
// starting with zero is the terminator, which is why L must be at least 1.
// Anything after the terminator is ignored.
type Triples struct{}

func (Triples) Name() string {
	return FormatTriples
}

func (Triples) Decode(raw []byte) (*Input, error) {
	in := &Input{Colors: []api.Color{}}
	for offset := 0; ; offset += tripleSize {
		if offset >= len(raw) {
			return nil, decodeError(FormatTriples, offset, ErrUnterminated)
		}
		if raw[offset] == 0 {
			return in, nil
		}
		if offset+tripleSize > len(raw) {
			return nil, decodeError(FormatTriples, offset, ErrTruncated)
		}
		t := api.Triple{
			L: raw[offset],
			A: int8(raw[offset+1]),
			B: int8(raw[offset+2]),
		}
		in.Colors = append(in.Colors, api.Color{
			ID:     api.ColorID(len(in.Colors)),
			Scalar: int(t.L),
			Triple: t,
		})
	}
}

func (Triples) Encode(in *Input, removed api.RemovalSet) ([]byte, error) {
	gone, err := removedSet(in, removed)
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, (len(in.Colors)-len(gone))*tripleSize+1)
	for _, c := range in.Colors {
		if _, exists := gone[c.ID]; exists {
			continue
		}
		if c.Triple.L == 0 {
			return nil, fmt.Errorf("colour %d: %w", c.ID, ErrZeroLightness)
		}
		out = append(out, c.Triple.L, byte(c.Triple.A), byte(c.Triple.B))
	}
	return append(out, 0), nil
}

// EncodeTriples writes colours in the canonical format.
func EncodeTriples(triples []api.Triple) ([]byte, error) {
	in := &Input{}
	for i, t := range triples {
		in.Colors = append(in.Colors, api.Color{ID: api.ColorID(i), Scalar: int(t.L), Triple: t})
	}
	return Triples{}.Encode(in, nil)
}
