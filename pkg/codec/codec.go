package codec

import (
	"fmt"

	"github.com/hapycolor/colorreducer/pkg/api"
	"github.com/hapycolor/colorreducer/pkg/graph"
)

const (
	FormatTriples = "triples"
	FormatPairs   = "pairs"
)

// Input is a decoded host request. Formats which carry colour values fill
// Colors only; formats which carry the conflicts themselves also set Edges
// and Explicit.
type Input struct {
	Colors   []api.Color
	Edges    [][2]api.ColorID
	Explicit bool
}

// Graph builds the conflict graph for the input. Explicit inputs ignore
// threshold and dist.
func (in *Input) Graph(threshold float64, dist graph.Distance) (*graph.Graph, error) {
	if !in.Explicit {
		return graph.Build(in.Colors, threshold, dist), nil
	}
	g := graph.New()
	for _, c := range in.Colors {
		g.AddNode(c.ID)
	}
	for _, e := range in.Edges {
		if err := g.AddEdge(e[0], e[1]); err != nil {
			return nil, err
		}
	}
	return g, nil
}

type Format interface {
	Name() string
	Decode(raw []byte) (*Input, error)
	// Encode writes the colours of in which are not removed, in input order.
	Encode(in *Input, removed api.RemovalSet) ([]byte, error)
}

// FormatByName resolves a wire format. nodeCount is only used by formats
// which declare the node count out of band.
func FormatByName(name string, nodeCount int) (Format, error) {
	switch name {
	case FormatTriples, "":
		return Triples{}, nil
	case FormatPairs:
		if nodeCount < 0 || nodeCount > MaxIndex+1 {
			return nil, fmt.Errorf("node count %d outside of [0, %d]", nodeCount, MaxIndex+1)
		}
		return Pairs{NodeCount: nodeCount}, nil
	default:
		return nil, fmt.Errorf("unknown wire format %q", name)
	}
}

func removedSet(in *Input, removed api.RemovalSet) (map[api.ColorID]struct{}, error) {
	known := make(map[api.ColorID]struct{}, len(in.Colors))
	for _, c := range in.Colors {
		known[c.ID] = struct{}{}
	}
	gone := make(map[api.ColorID]struct{}, len(removed))
	for _, id := range removed {
		if _, exists := known[id]; !exists {
			return nil, fmt.Errorf("can't remove colour %d: %w", id, ErrUnknownColor)
		}
		gone[id] = struct{}{}
	}
	return gone, nil
}
