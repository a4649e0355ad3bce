package stick

import "time"

// MetricsProvider allows integration with metrics systems like Prometheus, StatsD, etc.
// Implement this interface to receive callbacks on binding and reload events.
type MetricsProvider interface {
	// OnScroll is called for every raw scroll notification a binding receives,
	// including those later coalesced away.
	OnScroll()

	// OnEvaluate is called after each evaluate-and-apply step.
	// Kind is "sticky" or "active".
	OnEvaluate(kind string, duration time.Duration)

	// OnStateChange is called when a binding's presentation state changes.
	OnStateChange(from, to State)

	// OnReloadSuccess is called when a manifest is applied.
	OnReloadSuccess(bindings int, duration time.Duration)

	// OnReloadFailure is called when a manifest is rejected.
	// Stage is "decode", "validate", or "apply".
	OnReloadFailure(stage string, duration time.Duration)
}

// NoOpMetricsProvider is a no-op implementation of MetricsProvider.
// Use this as an embedded type to implement only the methods you need.
type NoOpMetricsProvider struct{}

func (NoOpMetricsProvider) OnScroll()                                 {}
func (NoOpMetricsProvider) OnEvaluate(_ string, _ time.Duration)      {}
func (NoOpMetricsProvider) OnStateChange(_, _ State)                  {}
func (NoOpMetricsProvider) OnReloadSuccess(_ int, _ time.Duration)    {}
func (NoOpMetricsProvider) OnReloadFailure(_ string, _ time.Duration) {}
