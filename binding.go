package stick

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/zoobzio/clockz"
)

// Binding is a registered reactive binding. Close deregisters it from the
// scroll channel; the element keeps whatever presentation was last applied.
type Binding interface {
	Close() error
}

// ErrAlreadyStarted is returned when Start is called twice on a binding.
var ErrAlreadyStarted = errors.New("binding already started")

// lifecycle owns the scroll subscription shared by Sticky and Active.
type lifecycle struct {
	frame   time.Duration
	clock   clockz.Clock
	metrics MetricsProvider

	mu          sync.Mutex
	started     bool
	closed      bool
	unsubscribe func()
	stopAfter   func() bool
	co          *coalescer
}

func newLifecycle() lifecycle {
	return lifecycle{clock: clockz.RealClock}
}

// begin claims the binding for a single Start.
func (l *lifecycle) begin() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.started {
		return ErrAlreadyStarted
	}
	l.started = true
	return nil
}

// attach subscribes eval to the document's scroll channel, through a
// coalescer when a frame is configured, and arranges for closeFn to run
// when ctx is done.
func (l *lifecycle) attach(ctx context.Context, doc Document, eval func(), closeFn func()) {
	l.mu.Lock()
	defer l.mu.Unlock()

	var co *coalescer
	if l.frame > 0 {
		co = newCoalescer(l.clock, l.frame, eval)
		co.start()
	}
	metrics := l.metrics

	l.co = co
	l.unsubscribe = doc.OnScroll(func() {
		if metrics != nil {
			metrics.OnScroll()
		}
		if co != nil {
			co.notify()
			return
		}
		eval()
	})
	l.stopAfter = context.AfterFunc(ctx, closeFn)
}

// end tears the subscription down. It reports false if there was nothing
// to tear down (never attached, or already closed).
func (l *lifecycle) end() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed || l.unsubscribe == nil {
		return false
	}
	l.closed = true

	l.unsubscribe()
	if l.co != nil {
		l.co.stop()
	}
	if l.stopAfter != nil {
		l.stopAfter()
	}
	return true
}

func (l *lifecycle) isClosed() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.closed
}

// label names a target for signal fields.
func label(t Target) string {
	if t == nil {
		return "<none>"
	}
	return t.String()
}
