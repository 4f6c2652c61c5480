// Package prom exports Reloader activity as Prometheus metrics.
package prom

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/zoobzio/reforge"
)

// Provider implements reforge.MetricsProvider with Prometheus collectors.
type Provider struct {
	changes  prometheus.Counter
	rebuilds *prometheus.CounterVec
	duration prometheus.Histogram
}

// NewProvider registers collectors with the given registerer and returns a
// provider backed by them. Pass prometheus.DefaultRegisterer to use the
// global registry.
func NewProvider(reg prometheus.Registerer) *Provider {
	factory := promauto.With(reg)
	return &Provider{
		changes: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "reforge_changes_detected_total",
				Help: "Total number of coalesced change notifications consumed by polls",
			},
		),

		rebuilds: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "reforge_rebuilds_total",
				Help: "Total number of rebuild attempts by result",
			},
			[]string{"result"},
		),

		duration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "reforge_rebuild_duration_seconds",
				Help:    "Time spent in the artifact builder per rebuild attempt",
				Buckets: prometheus.DefBuckets,
			},
		),
	}
}

// OnChangeDetected increments the consumed-change counter.
func (p *Provider) OnChangeDetected() {
	p.changes.Inc()
}

// OnRebuildSuccess records a successful rebuild and its builder duration.
func (p *Provider) OnRebuildSuccess(d time.Duration) {
	p.rebuilds.WithLabelValues("success").Inc()
	p.duration.Observe(d.Seconds())
}

// OnRebuildFailure records a failed rebuild and its builder duration.
func (p *Provider) OnRebuildFailure(d time.Duration) {
	p.rebuilds.WithLabelValues("failure").Inc()
	p.duration.Observe(d.Seconds())
}

// Ensure Provider implements MetricsProvider.
var _ reforge.MetricsProvider = (*Provider)(nil)
