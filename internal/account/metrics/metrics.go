package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registration outcomes.
const (
	OutcomeRegistered = "registered"
	OutcomeFailed     = "failed"
)

// Metrics provides observability for account registration.
type Metrics struct {
	// Per-field rejections during prompting
	FieldRejections *prometheus.CounterVec

	// Finalize outcomes: registered or failed
	Registrations *prometheus.CounterVec

	FinalizeLatency prometheus.Histogram
}

// New creates a Metrics instance registered on reg. A nil reg uses the
// default registerer.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)
	return &Metrics{
		FieldRejections: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "contabanco_field_rejections_total",
			Help: "Total field values rejected during registration prompts",
		}, []string{"field"}),

		Registrations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "contabanco_registrations_total",
			Help: "Total finalize attempts by outcome",
		}, []string{"outcome"}),

		FinalizeLatency: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "contabanco_finalize_duration_seconds",
			Help:    "Duration of account construction at finalize",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05},
		}),
	}
}

// IncrementFieldRejection records a rejected value for field.
func (m *Metrics) IncrementFieldRejection(field string) {
	if m != nil {
		m.FieldRejections.WithLabelValues(field).Inc()
	}
}

// IncrementOutcome records a finalize outcome.
func (m *Metrics) IncrementOutcome(outcome string) {
	if m != nil {
		m.Registrations.WithLabelValues(outcome).Inc()
	}
}

// ObserveFinalizeLatency records how long finalize took.
func (m *Metrics) ObserveFinalizeLatency(d time.Duration) {
	if m != nil {
		m.FinalizeLatency.Observe(d.Seconds())
	}
}
