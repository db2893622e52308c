package sparql

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	queryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "animalloo",
			Subsystem: "graph",
			Name:      "query_duration_seconds",
			Help:      "Round-trip latency of SPARQL queries.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
		},
		[]string{"outcome"},
	)

	queryRows = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "animalloo",
			Subsystem: "graph",
			Name:      "query_rows",
			Help:      "Number of bindings returned per SPARQL query.",
			Buckets:   []float64{0, 1, 5, 10, 50, 100, 500, 1000},
		},
	)
)

func outcomeLabel(err error) string {
	if err == nil {
		return "ok"
	}
	if k := KindOf(err); k != 0 {
		return k.String()
	}
	return "error"
}
