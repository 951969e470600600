package sat

import (
	"context"
	"fmt"

	"github.com/crillab/gophersat/maxsat"
	"github.com/hapycolor/colorreducer/pkg/api"
	"github.com/hapycolor/colorreducer/pkg/graph"
	"github.com/sirupsen/logrus"
)

const StrategyMaxSAT = "maxsat"

// MaxSAT solves the minimum removal problem as a weighted partial MAXSAT
// instance. It stands in for a maximum clique solver on the complement graph:
// the kept colours form a maximum independent set, the removed ones a minimum
// vertex cover. The solver can't be interrupted, the context is only checked
// before and after solving.
type MaxSAT struct{}

func (s *MaxSAT) Name() string {
	return StrategyMaxSAT
}

func (s *MaxSAT) MinimumRemoval(ctx context.Context, g *graph.Graph) (api.Result, error) {
	if err := ctx.Err(); err != nil {
		return api.Result{}, err
	}
	if !g.HasAnyEdge() {
		return api.Result{Removed: api.RemovalSet{}}, nil
	}

	model, err := NewLoader().Load(g)
	if err != nil {
		return api.Result{}, err
	}
	logrus.Debugf("Solving MAXSAT problem with %d constraints.", len(model.constrs))
	solution, cost := maxsat.New(model.constrs...).Solve()
	if solution == nil {
		return api.Result{}, fmt.Errorf("edge constraints of %d colours are not satisfiable", g.Len())
	}
	if err := ctx.Err(); err != nil {
		return api.Result{}, err
	}

	removed := api.RemovalSet{}
	for _, v := range model.order {
		if solution[v.satVarName] {
			removed = append(removed, v.Color)
		}
	}
	if len(removed) != cost {
		logrus.Warnf("MAXSAT reported cost %d but removes %d colours", cost, len(removed))
	}
	if !model.Satisfies(removed) {
		return api.Result{}, fmt.Errorf("MAXSAT solution %v leaves clashing colours", removed)
	}
	return api.Result{Removed: removed}, nil
}
