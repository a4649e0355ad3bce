package stick

import (
	"testing"
	"time"
)

func TestNoOpMetricsProvider_DoesNotPanic(_ *testing.T) {
	var m NoOpMetricsProvider

	// These should not panic
	m.OnScroll()
	m.OnEvaluate("sticky", time.Millisecond)
	m.OnStateChange(StateUnstuck, StateStuck)
	m.OnReloadSuccess(3, 100*time.Millisecond)
	m.OnReloadFailure("validate", 50*time.Millisecond)
}

func TestNoOpMetricsProvider_Embeddable(t *testing.T) {
	m := newRecordingMetrics()
	var _ MetricsProvider = m

	m.OnScroll()
	m.OnReloadSuccess(1, time.Millisecond)
	if m.scrolls != 1 {
		t.Errorf("expected 1 scroll, got %d", m.scrolls)
	}
}
