package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	Resolutions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cover_letter_resolutions_total",
			Help: "Resolved responses by kind, source and degradation reason",
		},
		[]string{"kind", "source", "reason"},
	)

	ProviderCallDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cover_letter_provider_call_duration_seconds",
			Help:    "Provider call latency in seconds",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 20, 40},
		},
		[]string{"provider", "outcome"},
	)

	ModelProbes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cover_letter_model_probes_total",
			Help: "Model availability probes by candidate and outcome",
		},
		[]string{"model", "outcome"},
	)

	Translations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cover_letter_translations_total",
			Help: "Translation calls by outcome",
		},
		[]string{"outcome"},
	)
)

// Outcome labels.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// OutcomeOf maps an error onto an outcome label.
func OutcomeOf(err error) string {
	if err != nil {
		return OutcomeFailure
	}
	return OutcomeSuccess
}
