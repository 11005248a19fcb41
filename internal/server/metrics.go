package server

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Render outcomes recorded by Metrics.
const (
	outcomeOK    = "ok"
	outcomeEmpty = "empty"
	outcomeError = "error"
)

// Metrics holds the dashboard's Prometheus collectors.
type Metrics struct {
	Renders        *prometheus.CounterVec
	RenderDuration prometheus.Histogram
}

// NewMetrics creates the collectors and registers them on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Renders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "desde",
			Name:      "renders_total",
			Help:      "Dashboard renders by outcome (ok, empty, error).",
		}, []string{"outcome"}),
		RenderDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "desde",
			Name:      "render_duration_seconds",
			Help:      "Time to load the workbook and render one selection.",
			Buckets:   prometheus.DefBuckets,
		}),
	}
	reg.MustRegister(m.Renders, m.RenderDuration)
	return m
}
