package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the restriction service.
type Metrics struct {
	// Restrictions currently held by the service's index
	Active prometheus.Gauge

	// Mutations by operation and outcome
	Mutations *prometheus.CounterVec

	// Adds that replaced an existing restriction for the same purpose
	Overwrites *prometheus.CounterVec
}

// New creates the restriction metrics and registers them with reg.
// A nil reg registers with the default registerer.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)
	return &Metrics{
		Active: factory.NewGauge(prometheus.GaugeOpts{
			Name: "credo_tcf_restrictions_active",
			Help: "Number of purposes with a publisher restriction",
		}),

		Mutations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "credo_tcf_restriction_mutations_total",
			Help: "Restriction index mutations by operation and outcome",
		}, []string{"op", "outcome"}), // op: "load", "put", "delete"; outcome: "ok", "rejected", "not_found"

		Overwrites: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "credo_tcf_restriction_overwrites_total",
			Help: "Restrictions replaced by a later add for the same purpose",
		}, []string{"source"}), // source: "load", "put"
	}
}

// SetActive records the current index size.
func (m *Metrics) SetActive(n int) {
	if m != nil {
		m.Active.Set(float64(n))
	}
}

// IncrementMutation records one mutation attempt.
func (m *Metrics) IncrementMutation(op, outcome string) {
	if m != nil {
		m.Mutations.WithLabelValues(op, outcome).Inc()
	}
}

// IncrementOverwrite records a replaced restriction.
func (m *Metrics) IncrementOverwrite(source string) {
	if m != nil {
		m.Overwrites.WithLabelValues(source).Inc()
	}
}
