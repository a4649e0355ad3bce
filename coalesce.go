package stick

import (
	"sync"
	"time"

	"github.com/zoobzio/clockz"
)

// DefaultFrame is one display frame at 60Hz, the coalescing window used
// when Coalesce is given a non-positive duration.
const DefaultFrame = 16 * time.Millisecond

// coalescer collapses bursts of scroll notifications into at most one call
// of fn per frame. The first notification arms a timer; notifications that
// arrive while it is armed are absorbed, and fn samples the latest geometry
// when the timer fires.
type coalescer struct {
	clock clockz.Clock
	frame time.Duration
	fn    func()

	pending  chan struct{}
	done     chan struct{}
	stopOnce sync.Once
}

func newCoalescer(clock clockz.Clock, frame time.Duration, fn func()) *coalescer {
	return &coalescer{
		clock:   clock,
		frame:   frame,
		fn:      fn,
		pending: make(chan struct{}, 1),
		done:    make(chan struct{}),
	}
}

func (c *coalescer) start() {
	go c.loop()
}

// notify marks a sample as pending. It never blocks.
func (c *coalescer) notify() {
	select {
	case c.pending <- struct{}{}:
	default:
	}
}

func (c *coalescer) stop() {
	c.stopOnce.Do(func() { close(c.done) })
}

func (c *coalescer) loop() {
	var timer clockz.Timer

	for {
		// Get timer channel or nil if no frame is armed
		var timerC <-chan time.Time
		if timer != nil {
			timerC = timer.C()
		}

		select {
		case <-c.done:
			if timer != nil {
				timer.Stop()
			}
			return

		case <-c.pending:
			if timer == nil {
				timer = c.clock.NewTimer(c.frame)
			}

		case <-timerC:
			timer = nil
			c.fn()
		}
	}
}
