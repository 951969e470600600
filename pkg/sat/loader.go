package sat

import (
	"fmt"
	"strconv"

	"github.com/crillab/gophersat/bf"
	"github.com/crillab/gophersat/maxsat"
	"github.com/hapycolor/colorreducer/pkg/api"
	"github.com/hapycolor/colorreducer/pkg/graph"
	"github.com/sirupsen/logrus"
)

// Var is the SAT variable "this colour gets removed".
type Var struct {
	satVarName string
	Color      api.ColorID
}

func (v *Var) String() string {
	return fmt.Sprintf("%s(%d)", v.satVarName, v.Color)
}

// Model holds the optimisation problem for one conflict graph: a hard clause
// per edge asking for at least one endpoint to be removed, and a soft clause
// per conflicted colour asking to keep it.
type Model struct {
	vars    map[string]*Var
	colors  map[api.ColorID]*Var
	order   []*Var
	constrs []maxsat.Constr
	ands    []bf.Formula
}

type Loader struct {
	m         *Model
	varsCount int
}

func NewLoader() *Loader {
	return &Loader{
		m: &Model{
			vars:   map[string]*Var{},
			colors: map[api.ColorID]*Var{},
		},
		varsCount: 0,
	}
}

func (loader *Loader) Load(g *graph.Graph) (*Model, error) {
	for _, id := range g.Conflicted() {
		v := &Var{
			satVarName: loader.ticket(),
			Color:      id,
		}
		loader.m.vars[v.satVarName] = v
		loader.m.colors[id] = v
		loader.m.order = append(loader.m.order, v)
		loader.m.constrs = append(loader.m.constrs, maxsat.SoftClause(maxsat.Not(v.satVarName)))
	}

	for _, e := range g.Edges() {
		u, v := loader.m.colors[e[0]], loader.m.colors[e[1]]
		if u == nil || v == nil {
			return nil, fmt.Errorf("edge %d-%d refers to a colour without a variable", e[0], e[1])
		}
		loader.m.constrs = append(loader.m.constrs, maxsat.HardClause(maxsat.Var(u.satVarName), maxsat.Var(v.satVarName)))
		loader.m.ands = append(loader.m.ands, bf.Or(bf.Var(u.satVarName), bf.Var(v.satVarName)))
	}
	logrus.Debugf("Generated %v variables and %v edge clauses.", len(loader.m.vars), len(loader.m.ands))
	return loader.m, nil
}

func (loader *Loader) ticket() string {
	loader.varsCount++
	return "x" + strconv.Itoa(loader.varsCount)
}

// Formula is the conjunction of all edge clauses.
func (m *Model) Formula() bf.Formula {
	return bf.And(m.ands...)
}

// Satisfies reports whether removing the given colours covers every edge.
func (m *Model) Satisfies(removed api.RemovalSet) bool {
	assignment := make(map[string]bool, len(m.vars))
	for name := range m.vars {
		assignment[name] = false
	}
	for _, id := range removed {
		if v, exists := m.colors[id]; exists {
			assignment[v.satVarName] = true
		}
	}
	return m.Formula().Eval(assignment)
}
