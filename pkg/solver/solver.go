package solver

import (
	"context"
	"errors"
	"fmt"

	"github.com/hapycolor/colorreducer/pkg/api"
	"github.com/hapycolor/colorreducer/pkg/codec"
	"github.com/hapycolor/colorreducer/pkg/graph"
	"github.com/hapycolor/colorreducer/pkg/memo"
	"github.com/hapycolor/colorreducer/pkg/reducer"
	"github.com/hapycolor/colorreducer/pkg/sat"
	"github.com/sirupsen/logrus"
)

// ErrUnsound means a strategy returned a removal set which leaves clashing
// colours behind.
var ErrUnsound = errors.New("removal set leaves clashing colours")

type Config struct {
	Strategy        string `json:"strategy"`
	Distance        string `json:"distance"`
	Format          string `json:"format"`
	NodeCount       int    `json:"nodeCount,omitempty"`
	SplitComponents bool   `json:"splitComponents"`
	Bound           string `json:"bound"`
	MemoSize        int    `json:"memoSize,omitempty"`
}

func DefaultConfig() Config {
	return Config{
		Strategy:        reducer.StrategyBranchAndBound,
		Distance:        graph.DistanceSquaredEuclidean,
		Format:          codec.FormatTriples,
		SplitComponents: true,
		Bound:           string(reducer.BoundCliqueCover),
	}
}

// Solver runs the decode, build, search and encode pipeline. It keeps no
// per-call state and is safe for concurrent use.
type Solver struct {
	strategy reducer.Strategy
	distance graph.Distance
	format   codec.Format
}

func New(cfg Config) (*Solver, error) {
	strategy, err := strategyFor(cfg)
	if err != nil {
		return nil, err
	}
	if cfg.SplitComponents {
		strategy = &reducer.PerComponent{Inner: strategy}
	}
	if cfg.MemoSize > 0 {
		cache, err := memo.NewLRU(cfg.MemoSize)
		if err != nil {
			return nil, fmt.Errorf("failed to create memo cache: %w", err)
		}
		strategy = memo.New(strategy, cache)
	}
	distance, err := graph.DistanceByName(cfg.Distance)
	if err != nil {
		return nil, err
	}
	format, err := codec.FormatByName(cfg.Format, cfg.NodeCount)
	if err != nil {
		return nil, err
	}
	return &Solver{strategy: strategy, distance: distance, format: format}, nil
}

func strategyFor(cfg Config) (reducer.Strategy, error) {
	switch cfg.Strategy {
	case reducer.StrategyBranchAndBound, "":
		bound, err := reducer.BoundPolicyByName(cfg.Bound)
		if err != nil {
			return nil, err
		}
		return reducer.NewBranchAndBound(bound), nil
	case reducer.StrategyExhaustive:
		return &reducer.Exhaustive{}, nil
	case sat.StrategyMaxSAT:
		return &sat.MaxSAT{}, nil
	default:
		return nil, fmt.Errorf("unknown strategy %q", cfg.Strategy)
	}
}

// Reduce decodes raw, removes the fewest colours so that no two remaining ones
// clash under threshold, and encodes the remaining colours.
func (s *Solver) Reduce(raw []byte, threshold float64) ([]byte, error) {
	return s.ReduceContext(context.Background(), raw, threshold)
}

func (s *Solver) ReduceContext(ctx context.Context, raw []byte, threshold float64) ([]byte, error) {
	report, err := s.PlanContext(ctx, raw, threshold)
	if err != nil {
		return nil, err
	}
	out, err := s.format.Encode(report.Input, report.Result.Removed)
	if err != nil {
		ReductionsTotal.WithLabelValues(s.strategy.Name(), outcomeFailed).Inc()
		return nil, fmt.Errorf("failed to encode remaining colours: %w", err)
	}
	ReductionsTotal.WithLabelValues(s.strategy.Name(), outcomeReduced).Inc()
	return out, nil
}

// Report holds every intermediate product of a reduction.
type Report struct {
	Input  *codec.Input
	Graph  *graph.Graph
	Result api.Result
}

func (s *Solver) Plan(raw []byte, threshold float64) (*Report, error) {
	return s.PlanContext(context.Background(), raw, threshold)
}

func (s *Solver) PlanContext(ctx context.Context, raw []byte, threshold float64) (*Report, error) {
	name := s.strategy.Name()

	logrus.Debugf("Decoding %d bytes as %s.", len(raw), s.format.Name())
	in, err := s.format.Decode(raw)
	if err != nil {
		ReductionsTotal.WithLabelValues(name, outcomeDecodeError).Inc()
		return nil, fmt.Errorf("failed to decode colours: %w", err)
	}
	g, err := in.Graph(threshold, s.distance)
	if err != nil {
		ReductionsTotal.WithLabelValues(name, outcomeDecodeError).Inc()
		return nil, fmt.Errorf("failed to build conflict graph: %w", err)
	}
	logrus.Debugf("Solving %d colours with %d conflicts using %s.", g.Len(), g.EdgeCount(), name)

	result, err := s.strategy.MinimumRemoval(ctx, g)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			ReductionsTotal.WithLabelValues(name, outcomeCancelled).Inc()
		} else {
			ReductionsTotal.WithLabelValues(name, outcomeFailed).Inc()
		}
		return nil, err
	}
	SearchStatesTotal.WithLabelValues(name).Add(float64(result.Visited))

	if !g.IsIndependent(result.Removed) {
		ReductionsTotal.WithLabelValues(name, outcomeFailed).Inc()
		return nil, fmt.Errorf("%s removed %v: %w", name, result.Removed, ErrUnsound)
	}
	RemovedColors.Observe(float64(len(result.Removed)))
	logrus.Debugf("Removing %d of %d colours: %v", len(result.Removed), g.Len(), result.Removed)
	return &Report{Input: in, Graph: g, Result: result}, nil
}

// Reduce runs a reduction with the default configuration.
func Reduce(raw []byte, threshold float64) ([]byte, error) {
	s, err := New(DefaultConfig())
	if err != nil {
		return nil, err
	}
	return s.Reduce(raw, threshold)
}
