package codec

import (
	"github.com/hapycolor/colorreducer/pkg/api"
)

const (
	// MaxIndex is the largest index a tagged group can carry.
	MaxIndex = 0xFFFF

	indexSize   = 4
	tagAbsent   = 1
	tagPresent  = 2
	placeholder = 1
)

// Pairs is the legacy edge list format. Every index takes four bytes: a
// (tag, value) unit for the high byte followed by one for the low byte. Tag 1
// marks a zero half whose value byte is the placeholder 1, tag 2 a non-zero
// half. No byte of the encoding is ever zero, and index 0 is 01 01 01 01.
//
// The input is a flat list of indices read as (u, v) conflict pairs over
// NodeCount colours, the count being declared out of band. The output lists
// the surviving indices in ascending order.
type Pairs struct {
	NodeCount int
}

func (Pairs) Name() string {
	return FormatPairs
}

func (p Pairs) Decode(raw []byte) (*Input, error) {
	indices, err := DecodeIndices(raw, p.NodeCount)
	if err != nil {
		return nil, err
	}
	if len(indices)%2 != 0 {
		return nil, decodeError(FormatPairs, len(raw), ErrOddPairs)
	}

	in := &Input{Colors: make([]api.Color, 0, p.NodeCount), Explicit: true}
	for i := 0; i < p.NodeCount; i++ {
		in.Colors = append(in.Colors, api.Color{ID: api.ColorID(i), Scalar: i})
	}
	for i := 0; i < len(indices); i += 2 {
		u, v := indices[i], indices[i+1]
		if u == v {
			return nil, decodeError(FormatPairs, i*indexSize, ErrSelfConflict)
		}
		in.Edges = append(in.Edges, [2]api.ColorID{u, v})
	}
	return in, nil
}

func (p Pairs) Encode(in *Input, removed api.RemovalSet) ([]byte, error) {
	gone, err := removedSet(in, removed)
	if err != nil {
		return nil, err
	}
	var kept []api.ColorID
	for _, c := range in.Colors {
		if _, exists := gone[c.ID]; !exists {
			kept = append(kept, c.ID)
		}
	}
	return EncodeIndices(kept)
}

// EncodeIndices writes every index as a tagged four byte group.
func EncodeIndices(indices []api.ColorID) ([]byte, error) {
	out := make([]byte, 0, len(indices)*indexSize)
	for _, idx := range indices {
		if idx > MaxIndex {
			return nil, ErrIndexOutOfRange
		}
		out = appendHalf(out, byte(idx>>8))
		out = appendHalf(out, byte(idx))
	}
	return out, nil
}

func appendHalf(out []byte, v byte) []byte {
	if v == 0 {
		return append(out, tagAbsent, placeholder)
	}
	return append(out, tagPresent, v)
}

// DecodeIndices reads tagged four byte groups. Every index must be below
// nodeCount.
func DecodeIndices(raw []byte, nodeCount int) ([]api.ColorID, error) {
	if len(raw)%indexSize != 0 {
		return nil, decodeError(FormatPairs, len(raw)-len(raw)%indexSize, ErrTruncated)
	}
	indices := make([]api.ColorID, 0, len(raw)/indexSize)
	for offset := 0; offset < len(raw); offset += indexSize {
		hi, err := decodeHalf(raw, offset)
		if err != nil {
			return nil, err
		}
		lo, err := decodeHalf(raw, offset+2)
		if err != nil {
			return nil, err
		}
		idx := int(hi)<<8 | int(lo)
		if idx >= nodeCount {
			return nil, decodeError(FormatPairs, offset, ErrIndexOutOfRange)
		}
		indices = append(indices, api.ColorID(idx))
	}
	return indices, nil
}

func decodeHalf(raw []byte, offset int) (byte, error) {
	switch raw[offset] {
	case tagAbsent:
		if raw[offset+1] != placeholder {
			return 0, decodeError(FormatPairs, offset+1, ErrBadPlaceholder)
		}
		return 0, nil
	case tagPresent:
		if raw[offset+1] == 0 {
			// zero must be spelled with the absent tag
			return 0, decodeError(FormatPairs, offset+1, ErrBadPlaceholder)
		}
		return raw[offset+1], nil
	default:
		return 0, decodeError(FormatPairs, offset, ErrBadTag)
	}
}
