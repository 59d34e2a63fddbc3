package app

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// Metrics counts what the frame loop saw and did. Each App owns its own
// registry so several Apps (and tests) never share counters.
type Metrics struct {
	registry *prometheus.Registry

	Frames     prometheus.Counter
	Gestures   *prometheus.CounterVec
	Dispatches *prometheus.CounterVec
}

// NewMetrics creates the counters and registers them on a fresh registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		Frames: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "mudra",
			Name:      "frames_total",
			Help:      "Frames processed by the frame loop.",
		}),
		Gestures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "mudra",
			Name:      "gestures_total",
			Help:      "Aggregated gestures per frame.",
		}, []string{"gesture"}),
		Dispatches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "mudra",
			Name:      "dispatches_total",
			Help:      "Dispatch outcomes per command.",
		}, []string{"command", "outcome"}),
	}
	m.registry.MustRegister(m.Frames, m.Gestures, m.Dispatches)
	return m
}

// Registry returns the registry holding the counters.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Summary flattens the counters into log fields, one per series.
func (m *Metrics) Summary() []zap.Field {
	families, err := m.registry.Gather()
	if err != nil {
		return []zap.Field{zap.NamedError("metrics_error", err)}
	}

	var fields []zap.Field
	for _, mf := range families {
		for _, metric := range mf.GetMetric() {
			key := mf.GetName()
			for _, label := range metric.GetLabel() {
				key += "." + label.GetValue()
			}
			fields = append(fields, zap.Float64(key, metric.GetCounter().GetValue()))
		}
	}
	return fields
}
