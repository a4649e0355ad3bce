package stick

import (
	"context"
	"errors"
	"testing"
)

func TestActiveIfOtherInViewport(t *testing.T) {
	ctx := context.Background()
	doc := newFakeDoc(1024, 768)
	nav := newFakeElement(Rect{Top: 0, Bottom: 20})
	section := newFakeElement(Rect{Top: 200, Bottom: 800})
	doc.add("nav-intro", nav)
	doc.add("intro", section)

	a, err := ActiveIfOtherInViewport(ctx, doc, ID("nav-intro"), ID("intro"), AxisY, "")
	if err != nil {
		t.Fatalf("ActiveIfOtherInViewport() error = %v", err)
	}
	defer a.Close()

	if a.Class() != DefaultActiveClass {
		t.Errorf("expected default class, got %q", a.Class())
	}
	if nav.HasClass("active") {
		t.Fatal("expected nav inactive while section is below the edge")
	}

	section.setRect(Rect{Top: -100, Bottom: 500})
	doc.scroll(0, 300)
	if !nav.HasClass("active") {
		t.Fatal("expected nav active while section spans the edge")
	}
	if section.HasClass("active") {
		t.Error("expected class applied to the target, not the subject")
	}
	if a.State() != StateActive {
		t.Errorf("expected active, got %s", a.State())
	}

	section.setRect(Rect{Top: -700, Bottom: -100})
	doc.scroll(0, 900)
	if nav.HasClass("active") {
		t.Fatal("expected nav inactive once section scrolled past")
	}
}

func TestActiveIfInViewport(t *testing.T) {
	doc := newFakeDoc(1024, 768)
	el := newFakeElement(Rect{Top: -10, Bottom: 10})
	doc.add("intro", el)

	a, err := ActiveIfInViewport(context.Background(), doc, ID("intro"), AxisY, "current")
	if err != nil {
		t.Fatalf("ActiveIfInViewport() error = %v", err)
	}
	defer a.Close()

	if !el.HasClass("current") {
		t.Error("expected element to carry its own class at registration")
	}
	if el.HasClass(DefaultActiveClass) {
		t.Error("expected only the custom class")
	}
}

func TestActive_XAxis(t *testing.T) {
	doc := newFakeDoc(1024, 768)
	el := newFakeElement(Rect{Left: 200, Right: 0})
	doc.add("panel", el)

	a, err := ActiveIfInViewport(context.Background(), doc, ID("panel"), AxisX, "")
	if err != nil {
		t.Fatalf("ActiveIfInViewport() error = %v", err)
	}
	defer a.Close()

	if !el.HasClass("active") {
		t.Error("expected x axis predicate to hold")
	}

	el.setRect(Rect{Left: -200, Right: 0})
	doc.scroll(10, 0)
	if el.HasClass("active") {
		t.Error("expected x axis predicate to fail")
	}
}

func TestActive_MissingTarget(t *testing.T) {
	doc := newFakeDoc(1024, 768)
	doc.add("intro", newFakeElement(Rect{}))

	_, err := ActiveIfOtherInViewport(context.Background(), doc, ID("missing"), ID("intro"), AxisY, "")
	if !errors.Is(err, ErrElementNotFound) {
		t.Fatalf("expected ErrElementNotFound, got %v", err)
	}
	if doc.listenerCount() != 0 {
		t.Error("expected no scroll listener")
	}
}

func TestActive_MissingSubject(t *testing.T) {
	doc := newFakeDoc(1024, 768)
	nav := newFakeElement(Rect{})
	doc.add("nav", nav)

	_, err := ActiveIfOtherInViewport(context.Background(), doc, ID("nav"), ID("missing"), AxisY, "")
	if !errors.Is(err, ErrElementNotFound) {
		t.Fatalf("expected ErrElementNotFound, got %v", err)
	}
	if nav.HasClass("active") {
		t.Error("expected target untouched")
	}
	if doc.listenerCount() != 0 {
		t.Error("expected no scroll listener")
	}
}

func TestActive_Close(t *testing.T) {
	doc := newFakeDoc(1024, 768)
	el := newFakeElement(Rect{Top: 10, Bottom: 20})
	doc.add("intro", el)

	a, err := ActiveIfInViewport(context.Background(), doc, ID("intro"), AxisY, "")
	if err != nil {
		t.Fatalf("ActiveIfInViewport() error = %v", err)
	}
	if err := a.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if !a.Closed() {
		t.Error("expected Closed() after Close")
	}
	if doc.listenerCount() != 0 {
		t.Error("expected listener removed")
	}

	el.setRect(Rect{Top: -10, Bottom: 10})
	doc.scroll(0, 20)
	if el.HasClass("active") {
		t.Error("expected closed binding to ignore scrolling")
	}
}

func TestActive_ContextCancelCloses(t *testing.T) {
	doc := newFakeDoc(1024, 768)
	doc.add("intro", newFakeElement(Rect{}))

	ctx, cancel := context.WithCancel(context.Background())
	a, err := ActiveIfInViewport(ctx, doc, ID("intro"), AxisY, "")
	if err != nil {
		t.Fatalf("ActiveIfInViewport() error = %v", err)
	}
	cancel()
	waitUntil(t, a.Closed)
}

func TestActive_Metrics(t *testing.T) {
	doc := newFakeDoc(1024, 768)
	el := newFakeElement(Rect{Top: 10, Bottom: 20})
	doc.add("intro", el)
	metrics := newRecordingMetrics()

	a := NewActive(doc, ID("intro"), nil, AxisY, "").Metrics(metrics)
	if err := a.Start(context.Background()); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	defer a.Close()

	el.setRect(Rect{Top: -10, Bottom: 10})
	doc.scroll(0, 20)

	if got := metrics.evals("active"); got != 2 {
		t.Errorf("expected 2 evaluations, got %d", got)
	}
	metrics.mu.Lock()
	defer metrics.mu.Unlock()
	if len(metrics.changes) != 1 || metrics.changes[0] != [2]State{StateInactive, StateActive} {
		t.Errorf("expected one inactive→active change, got %v", metrics.changes)
	}
}

func TestActive_FailedStartCannotRetry(t *testing.T) {
	doc := newFakeDoc(1024, 768)

	a := NewActive(doc, ID("nav"), nil, AxisY, "")
	if err := a.Start(context.Background()); !errors.Is(err, ErrElementNotFound) {
		t.Fatalf("expected ErrElementNotFound, got %v", err)
	}

	doc.add("nav", newFakeElement(Rect{}))
	if err := a.Start(context.Background()); !errors.Is(err, ErrAlreadyStarted) {
		t.Errorf("expected ErrAlreadyStarted on retry, got %v", err)
	}
}

func TestActive_EvaluateBeforeStart(t *testing.T) {
	a := NewActive(newFakeDoc(1, 1), ID("x"), nil, AxisY, "")
	if got := a.Evaluate(); got != StateInactive {
		t.Errorf("expected inactive, got %s", got)
	}
}
