// Package metric provides Prometheus metrics for the quantify engine.
package metric

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ResolutionsTotal counts unit-string resolutions by outcome:
	// "hit" (cache), "miss" (parsed and cached), "error".
	ResolutionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quantify_unit_resolutions_total",
			Help: "Total number of unit string resolutions",
		},
		[]string{"outcome"},
	)

	// ConversionsTotal counts quantity conversions by status
	// ("ok", "incompatible", "unknown_unit").
	ConversionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quantify_conversions_total",
			Help: "Total number of quantity conversions",
		},
		[]string{"status"},
	)

	// ExtractionsTotal counts quantities extracted from free text by
	// outcome ("ok", "skipped").
	ExtractionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quantify_extractions_total",
			Help: "Total number of quantity extractions from text",
		},
		[]string{"outcome"},
	)

	// MeasurementEntries tracks the number of entries in a measurement
	// store.
	MeasurementEntries = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "quantify_measurement_entries",
			Help: "Number of entries in the measurement store",
		},
	)
)
