package stick

import (
	"context"
	"sync"
	"time"

	"github.com/zoobzio/capitan"
	"github.com/zoobzio/clockz"
)

// DefaultActiveClass is the class toggled when none is given.
const DefaultActiveClass = "active"

// Active toggles a class on a target element while a subject element is in
// the viewport band along an axis. The subject may be the target itself.
type Active struct {
	doc     Document
	target  Target
	subject Target
	axis    Axis
	class   string
	life    lifecycle

	evalMu sync.Mutex
	ctx    context.Context
	el     Element
	subj   Element
}

// NewActive creates an unstarted membership binding. A nil subject observes
// the target itself; an empty class selects DefaultActiveClass.
func NewActive(doc Document, target, subject Target, axis Axis, class string) *Active {
	if class == "" {
		class = DefaultActiveClass
	}
	return &Active{
		doc:     doc,
		target:  target,
		subject: subject,
		axis:    axis,
		class:   class,
		life:    newLifecycle(),
	}
}

// ActiveIfOtherInViewport toggles class on target while subject is in the
// viewport along axis. The state is applied once immediately and again on
// every scroll notification.
func ActiveIfOtherInViewport(ctx context.Context, doc Document, target, subject Target, axis Axis, class string) (*Active, error) {
	a := NewActive(doc, target, subject, axis, class)
	if err := a.Start(ctx); err != nil {
		return nil, err
	}
	return a, nil
}

// ActiveIfInViewport toggles class on target while target itself is in the
// viewport along axis.
func ActiveIfInViewport(ctx context.Context, doc Document, target Target, axis Axis, class string) (*Active, error) {
	return ActiveIfOtherInViewport(ctx, doc, target, nil, axis, class)
}

// Coalesce collapses scroll bursts to at most one evaluation per frame.
// A non-positive frame selects DefaultFrame. Must be called before Start().
func (a *Active) Coalesce(frame time.Duration) *Active {
	if frame <= 0 {
		frame = DefaultFrame
	}
	a.life.frame = frame
	return a
}

// Clock sets a custom clock. Must be called before Start().
func (a *Active) Clock(clock clockz.Clock) *Active {
	a.life.clock = clock
	return a
}

// Metrics sets a metrics provider. Must be called before Start().
func (a *Active) Metrics(provider MetricsProvider) *Active {
	a.life.metrics = provider
	return a
}

// Start resolves the target and subject, applies the initial state and
// subscribes to scroll notifications. A missing target or subject returns
// ErrElementNotFound without registering anything.
//
// Start can only be called once, even if it failed. Subsequent calls return
// ErrAlreadyStarted.
func (a *Active) Start(ctx context.Context) error {
	if err := a.life.begin(); err != nil {
		return err
	}

	el, err := Resolve(a.doc, a.target)
	if err != nil {
		capitan.Emit(ctx, ElementUnresolved,
			KeyElement.Field(label(a.target)),
			KeyError.Field(err.Error()),
		)
		return err
	}

	subj := el
	if a.subject != nil {
		subj, err = Resolve(a.doc, a.subject)
		if err != nil {
			capitan.Emit(ctx, ElementUnresolved,
				KeyElement.Field(label(a.subject)),
				KeyError.Field(err.Error()),
			)
			return err
		}
	}

	a.evalMu.Lock()
	a.ctx = ctx
	a.el = el
	a.subj = subj
	a.evalMu.Unlock()

	a.Evaluate()

	a.life.attach(ctx, a.doc, func() { a.Evaluate() }, func() { _ = a.Close() }) //nolint:errcheck // Close never fails
	capitan.Emit(ctx, BindingRegistered,
		KeyElement.Field(label(a.target)),
		KeySubject.Field(a.subjectLabel()),
		KeyAxis.Field(a.axis.String()),
		KeyClass.Field(a.class),
		KeyFrame.Field(a.life.frame),
	)
	return nil
}

// Evaluate applies the membership predicate to the subject and toggles the
// class on the target. Before Start it does nothing and reports
// StateInactive.
func (a *Active) Evaluate() State {
	a.evalMu.Lock()
	defer a.evalMu.Unlock()

	if a.el == nil {
		return StateInactive
	}

	start := a.life.clock.Now()
	before := activeState(a.el.HasClass(a.class))

	after := StateInactive
	if a.axis.Contains(a.subj.BoundingClientRect()) {
		a.el.AddClass(a.class)
		after = StateActive
	} else {
		a.el.RemoveClass(a.class)
	}

	if before != after {
		capitan.Emit(a.ctx, ActiveStateChanged,
			KeyElement.Field(label(a.target)),
			KeyClass.Field(a.class),
			KeyOldState.Field(before.String()),
			KeyNewState.Field(after.String()),
		)
		if a.life.metrics != nil {
			a.life.metrics.OnStateChange(before, after)
		}
	}
	if a.life.metrics != nil {
		a.life.metrics.OnEvaluate("active", a.life.clock.Since(start))
	}
	return after
}

// State reports the target's presentation state from its class list.
func (a *Active) State() State {
	a.evalMu.Lock()
	el := a.el
	a.evalMu.Unlock()
	if el == nil {
		return StateInactive
	}
	return activeState(el.HasClass(a.class))
}

// Class returns the class the binding toggles.
func (a *Active) Class() string {
	return a.class
}

// Closed reports whether the binding has been disposed.
func (a *Active) Closed() bool {
	return a.life.isClosed()
}

// Close deregisters the binding. It is safe to call more than once.
func (a *Active) Close() error {
	if !a.life.end() {
		return nil
	}
	a.evalMu.Lock()
	ctx := a.ctx
	a.evalMu.Unlock()
	capitan.Emit(ctx, BindingClosed,
		KeyElement.Field(label(a.target)),
		KeyClass.Field(a.class),
	)
	return nil
}

func (a *Active) subjectLabel() string {
	if a.subject == nil {
		return label(a.target)
	}
	return label(a.subject)
}

func activeState(active bool) State {
	if active {
		return StateActive
	}
	return StateInactive
}

// Ensure Active implements Binding.
var _ Binding = (*Active)(nil)
