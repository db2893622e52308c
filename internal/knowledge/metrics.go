package knowledge

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	groundingLines = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "animalloo",
			Subsystem: "grounding",
			Name:      "lines_total",
			Help:      "Grounding lines emitted, by provenance bucket.",
		},
		[]string{"bucket"},
	)

	groundingEmpty = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "animalloo",
			Subsystem: "grounding",
			Name:      "empty_total",
			Help:      "Chat turns for which no grounding line was found.",
		},
	)

	riskLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "animalloo",
			Subsystem: "enrichment",
			Name:      "risk_lookups_total",
			Help:      "Species risk lookups, by cache outcome.",
		},
		[]string{"outcome"},
	)
)
