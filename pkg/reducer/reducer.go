package reducer

import (
	"context"
	"fmt"
	"math"

	"github.com/hapycolor/colorreducer/pkg/api"
	"github.com/hapycolor/colorreducer/pkg/graph"
	"github.com/sirupsen/logrus"
	"golang.org/x/exp/slices"
)

const (
	StrategyBranchAndBound = "branch-and-bound"
	StrategyExhaustive     = "exhaustive"

	// the context is checked once every cancelCheckInterval visited states
	cancelCheckInterval = 4096
)

// Strategy finds a minimum-size set of colours whose removal leaves the
// graph without edges.
type Strategy interface {
	Name() string
	MinimumRemoval(ctx context.Context, g *graph.Graph) (api.Result, error)
}

type BoundPolicy string

const (
	// BoundNone prunes on the size of the removal prefix alone.
	BoundNone BoundPolicy = "none"
	// BoundCliqueCover adds a greedy clique partition lower bound on top.
	BoundCliqueCover BoundPolicy = "clique-cover"
)

func BoundPolicyByName(name string) (BoundPolicy, error) {
	switch BoundPolicy(name) {
	case BoundCliqueCover, "":
		return BoundCliqueCover, nil
	case BoundNone:
		return BoundNone, nil
	default:
		return "", fmt.Errorf("unknown bound policy %q", name)
	}
}

type BranchAndBound struct {
	Bound BoundPolicy
}

func NewBranchAndBound(bound BoundPolicy) *BranchAndBound {
	return &BranchAndBound{Bound: bound}
}

func (b *BranchAndBound) Name() string {
	return StrategyBranchAndBound
}

func (b *BranchAndBound) MinimumRemoval(ctx context.Context, g *graph.Graph) (api.Result, error) {
	s := &search{ctx: ctx, bound: b.Bound}
	found, _, ok := s.explore(g, nil, math.MaxInt)
	if s.err != nil {
		return api.Result{}, s.err
	}
	if !ok {
		// the root always has a solution: removing every conflicted node
		return api.Result{}, fmt.Errorf("search over %d colours ended without a result", g.Len())
	}
	logrus.Debugf("branch and bound visited %d states, pruned %d, removing %v", s.visited, s.pruned, found)
	return api.Result{
		Removed: append(api.RemovalSet{}, found...),
		Visited: s.visited,
		Pruned:  s.pruned,
	}, nil
}

type search struct {
	ctx     context.Context
	bound   BoundPolicy
	visited int
	pruned  int
	err     error
}

func (s *search) cancelled() bool {
	if s.err != nil {
		return true
	}
	if s.visited%cancelCheckInterval == 1 {
		s.err = s.ctx.Err()
	}
	return s.err != nil
}

// explore returns the smallest removal set reachable from g that is strictly
// smaller than incumbent, together with its size. ok is false when no branch
// below g improves on the incumbent.
func (s *search) explore(g *graph.Graph, removed []api.ColorID, incumbent int) (best []api.ColorID, size int, ok bool) {
	s.visited++
	if s.cancelled() {
		return nil, incumbent, false
	}
	if !g.HasAnyEdge() {
		return slices.Clone(removed), len(removed), true
	}

	depth := len(removed) + 1
	for _, u := range g.Conflicted() {
		if depth >= incumbent {
			s.pruned++
			continue
		}
		child := g.DeriveChild(u)
		if s.bound == BoundCliqueCover && depth+CliqueCoverBound(child) >= incumbent {
			s.pruned++
			continue
		}
		if found, n, improved := s.explore(child, append(removed, u), incumbent); improved {
			best, incumbent, ok = found, n, true
		}
		if s.err != nil {
			return nil, incumbent, false
		}
	}
	return best, incumbent, ok
}

// CliqueCoverBound partitions the conflicted nodes greedily into cliques, in
// ascending order. Any removal set keeps at most one node of every clique, so
// the sum of (size - 1) over all cliques never exceeds the optimum.
func CliqueCoverBound(g *graph.Graph) int {
	assigned := map[api.ColorID]bool{}
	bound := 0
	for _, u := range g.Conflicted() {
		if assigned[u] {
			continue
		}
		assigned[u] = true
		clique := []api.ColorID{u}
		for _, v := range g.Neighbours(u) {
			if assigned[v] || !adjacentToAll(g, v, clique) {
				continue
			}
			assigned[v] = true
			clique = append(clique, v)
		}
		bound += len(clique) - 1
	}
	return bound
}

func adjacentToAll(g *graph.Graph, v api.ColorID, clique []api.ColorID) bool {
	for _, u := range clique {
		if !g.Adjacent(u, v) {
			return false
		}
	}
	return true
}
