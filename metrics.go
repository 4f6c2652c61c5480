package reforge

import "time"

// MetricsProvider allows integration with metrics systems like Prometheus, StatsD, etc.
// Implement this interface to receive callbacks on key reloader events.
type MetricsProvider interface {
	// OnChangeDetected is called when a poll consumes a pending change.
	OnChangeDetected()

	// OnRebuildSuccess is called when the artifact is rebuilt successfully.
	// Duration is the time spent in the builder.
	OnRebuildSuccess(duration time.Duration)

	// OnRebuildFailure is called when a rebuild attempt fails.
	// Duration is the time spent in the builder.
	OnRebuildFailure(duration time.Duration)
}

// NoOpMetricsProvider is a no-op implementation of MetricsProvider.
// Use this as an embedded type to implement only the methods you need.
type NoOpMetricsProvider struct{}

func (NoOpMetricsProvider) OnChangeDetected()                {}
func (NoOpMetricsProvider) OnRebuildSuccess(_ time.Duration) {}
func (NoOpMetricsProvider) OnRebuildFailure(_ time.Duration) {}
