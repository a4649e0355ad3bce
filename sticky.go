package stick

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/zoobzio/capitan"
	"github.com/zoobzio/clockz"
)

// ErrViewportTooNarrow is returned when the viewport is narrower than a
// sticky binding's Viewport threshold. Nothing is registered.
var ErrViewportTooNarrow = errors.New("viewport narrower than threshold")

// Sticky binds one element's stuck state to document scrolling.
//
// The binding owns its hysteresis anchor. Every evaluation tests the
// element's rectangle against the configured edge; crossing it latches the
// anchor and sticks the element, and scrolling back to the anchor or past it
// unsticks the element and clears the anchor.
type Sticky struct {
	doc    Document
	target Target
	cfg    Config
	life   lifecycle

	evalMu sync.Mutex
	ctx    context.Context
	el     Element
	anchor Anchor
}

// NewSticky creates an unstarted sticky binding. Instance configuration uses
// chainable methods before calling Start().
//
// Example:
//
//	cfg := stick.DefaultConfig()
//	cfg.Offset = 50
//	s := stick.NewSticky(doc, stick.ID("header"), cfg).
//	    Coalesce(stick.DefaultFrame)
//	if err := s.Start(ctx); err != nil {
//	    return err
//	}
//	defer s.Close()
func NewSticky(doc Document, target Target, cfg Config) *Sticky {
	return &Sticky{
		doc:    doc,
		target: target,
		cfg:    cfg.withDefaults(),
		life:   newLifecycle(),
	}
}

// IsSticky registers a sticky binding and applies its initial state.
// It is shorthand for NewSticky(doc, target, cfg).Start(ctx).
//
// An unresolvable target returns ErrElementNotFound and a viewport narrower
// than cfg.Viewport returns ErrViewportTooNarrow; in both cases no listener
// is registered and the element is left untouched.
//
// Start from DefaultConfig: a Config literal leaves KeepWidth and
// KeepHeight false, so the stuck element's size is not frozen.
func IsSticky(ctx context.Context, doc Document, target Target, cfg Config) (*Sticky, error) {
	s := NewSticky(doc, target, cfg)
	if err := s.Start(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// Coalesce collapses scroll bursts to at most one evaluation per frame.
// A non-positive frame selects DefaultFrame. Must be called before Start().
func (s *Sticky) Coalesce(frame time.Duration) *Sticky {
	if frame <= 0 {
		frame = DefaultFrame
	}
	s.life.frame = frame
	return s
}

// Clock sets a custom clock for frame coalescing and evaluation timing.
// Use this with clockz.FakeClock for deterministic tests.
// Must be called before Start().
func (s *Sticky) Clock(clock clockz.Clock) *Sticky {
	s.life.clock = clock
	return s
}

// Metrics sets a metrics provider. Must be called before Start().
func (s *Sticky) Metrics(provider MetricsProvider) *Sticky {
	s.life.metrics = provider
	return s
}

// Start resolves the element, publishes the offset custom property,
// applies the initial state and subscribes to scroll notifications.
// Cancelling ctx closes the binding.
//
// Start can only be called once, even if it failed. Subsequent calls return
// ErrAlreadyStarted; retry with a new binding.
func (s *Sticky) Start(ctx context.Context) error {
	if err := s.life.begin(); err != nil {
		return err
	}
	if err := s.cfg.Validate(); err != nil {
		return err
	}

	el, err := Resolve(s.doc, s.target)
	if err != nil {
		capitan.Emit(ctx, ElementUnresolved,
			KeyElement.Field(label(s.target)),
			KeyError.Field(err.Error()),
		)
		return err
	}

	if vw := s.doc.ViewportWidth(); vw < s.cfg.Viewport {
		gate := fmt.Sprintf("%s < %s", px(vw), px(s.cfg.Viewport))
		capitan.Emit(ctx, BindingDisabled,
			KeyElement.Field(label(s.target)),
			KeyViewport.Field(gate),
		)
		return fmt.Errorf("%w: %s", ErrViewportTooNarrow, gate)
	}

	el.SetProperty(s.cfg.Direction.PropertyName(), px(s.cfg.Offset))

	s.evalMu.Lock()
	s.ctx = ctx
	s.el = el
	s.anchor = Anchor{}
	s.evalMu.Unlock()

	s.Evaluate()

	s.life.attach(ctx, s.doc, func() { s.Evaluate() }, func() { _ = s.Close() }) //nolint:errcheck // Close never fails
	capitan.Emit(ctx, BindingRegistered,
		KeyElement.Field(label(s.target)),
		KeyDirection.Field(string(s.cfg.Direction)),
		KeyOffset.Field(px(s.cfg.Offset)),
		KeyFrame.Field(s.life.frame),
	)
	return nil
}

// Evaluate runs one evaluate-and-apply step against the current geometry
// and returns the resulting state. Scroll notifications call it; tests may
// call it directly. Before Start it does nothing and reports StateUnstuck.
func (s *Sticky) Evaluate() State {
	s.evalMu.Lock()
	defer s.evalMu.Unlock()

	if s.el == nil {
		return StateUnstuck
	}

	start := s.life.clock.Now()
	before := stuckState(s.el.HasClass(StickyClass))

	var after State
	if IsOverOffset(s.doc, s.el.BoundingClientRect(), s.anchor, s.cfg) {
		s.anchor = SetAnchor(s.doc, s.anchor, s.cfg.Direction)
		Stick(s.el, s.cfg)
		after = StateStuck
	} else {
		s.anchor = Anchor{}
		Unstick(s.el, s.cfg)
		after = StateUnstuck
	}

	if before != after {
		capitan.Emit(s.ctx, StickyStateChanged,
			KeyElement.Field(label(s.target)),
			KeyOldState.Field(before.String()),
			KeyNewState.Field(after.String()),
		)
		if s.life.metrics != nil {
			s.life.metrics.OnStateChange(before, after)
		}
	}
	if s.life.metrics != nil {
		s.life.metrics.OnEvaluate("sticky", s.life.clock.Since(start))
	}
	return after
}

// Anchor returns the binding's current hysteresis anchor.
func (s *Sticky) Anchor() Anchor {
	s.evalMu.Lock()
	defer s.evalMu.Unlock()
	return s.anchor
}

// State reports the element's presentation state from its class list.
func (s *Sticky) State() State {
	s.evalMu.Lock()
	el := s.el
	s.evalMu.Unlock()
	if el == nil {
		return StateUnstuck
	}
	return stuckState(el.HasClass(StickyClass))
}

// Config returns the binding's effective configuration.
func (s *Sticky) Config() Config {
	return s.cfg
}

// Element returns the resolved element, or nil before a successful Start.
func (s *Sticky) Element() Element {
	s.evalMu.Lock()
	defer s.evalMu.Unlock()
	return s.el
}

// Closed reports whether the binding has been disposed.
func (s *Sticky) Closed() bool {
	return s.life.isClosed()
}

// Close deregisters the binding from the scroll channel and stops any
// coalescing goroutine. It is safe to call more than once.
func (s *Sticky) Close() error {
	if !s.life.end() {
		return nil
	}
	s.evalMu.Lock()
	ctx := s.ctx
	s.evalMu.Unlock()
	capitan.Emit(ctx, BindingClosed,
		KeyElement.Field(label(s.target)),
	)
	return nil
}

func stuckState(stuck bool) State {
	if stuck {
		return StateStuck
	}
	return StateUnstuck
}

// Ensure Sticky implements Binding.
var _ Binding = (*Sticky)(nil)
