package reducer

import (
	"context"

	"github.com/hapycolor/colorreducer/pkg/api"
	"github.com/hapycolor/colorreducer/pkg/graph"
	"github.com/sirupsen/logrus"
)

// PerComponent hands every connected component with at least one edge to
// Inner on its own and concatenates the answers in component order. A
// minimum removal set of the whole graph is exactly the union of minimum
// removal sets of its components.
type PerComponent struct {
	Inner Strategy
}

func (p *PerComponent) Name() string {
	return p.Inner.Name()
}

func (p *PerComponent) MinimumRemoval(ctx context.Context, g *graph.Graph) (api.Result, error) {
	result := api.Result{Removed: api.RemovalSet{}}
	comps := g.Components()
	logrus.Debugf("split %d colours into %d components", g.Len(), len(comps))
	for _, comp := range comps {
		if len(comp) < 2 {
			continue
		}
		r, err := p.Inner.MinimumRemoval(ctx, g.Subgraph(comp))
		if err != nil {
			return api.Result{}, err
		}
		logrus.Debugf("component %v needs %d removals", comp, len(r.Removed))
		result.Removed = append(result.Removed, r.Removed...)
		result.Visited += r.Visited
		result.Pruned += r.Pruned
	}
	return result, nil
}
