package solver

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	outcomeReduced     = "reduced"
	outcomeDecodeError = "decode_error"
	outcomeCancelled   = "cancelled"
	outcomeFailed      = "failed"
)

var (
	// ReductionsTotal counts Reduce calls by strategy and outcome
	ReductionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "colorreducer_reductions_total",
			Help: "Total number of reductions handled",
		},
		[]string{"strategy", "outcome"},
	)

	// SearchStatesTotal counts graph states visited by the search
	SearchStatesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "colorreducer_search_states_total",
			Help: "Total number of search states visited",
		},
		[]string{"strategy"},
	)

	RemovedColors = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "colorreducer_removed_colors",
			Help:    "Size of the removal set per successful reduction",
			Buckets: prometheus.LinearBuckets(0, 2, 10),
		},
	)
)

func init() {
	prometheus.MustRegister(ReductionsTotal)
	prometheus.MustRegister(SearchStatesTotal)
	prometheus.MustRegister(RemovedColors)
}
