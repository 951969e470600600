package reducer

import (
	"context"

	"github.com/hapycolor/colorreducer/pkg/api"
	"github.com/hapycolor/colorreducer/pkg/graph"
	"golang.org/x/exp/slices"
)

// Exhaustive enumerates every removal order without pruning. It returns the
// same sizes as BranchAndBound and is only meant for cross-checks on small
// graphs.
type Exhaustive struct{}

func (e *Exhaustive) Name() string {
	return StrategyExhaustive
}

func (e *Exhaustive) MinimumRemoval(ctx context.Context, g *graph.Graph) (api.Result, error) {
	s := &search{ctx: ctx, bound: BoundNone}
	found := s.enumerate(g, nil)
	if s.err != nil {
		return api.Result{}, s.err
	}
	return api.Result{
		Removed: append(api.RemovalSet{}, found...),
		Visited: s.visited,
	}, nil
}

func (s *search) enumerate(g *graph.Graph, removed []api.ColorID) []api.ColorID {
	s.visited++
	if s.cancelled() {
		return nil
	}
	if !g.HasAnyEdge() {
		return slices.Clone(removed)
	}
	var best []api.ColorID
	for _, u := range g.Conflicted() {
		found := s.enumerate(g.DeriveChild(u), append(removed, u))
		if s.err != nil {
			return nil
		}
		if best == nil || len(found) < len(best) {
			best = found
		}
	}
	return best
}
