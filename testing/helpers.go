// Package testing provides fixtures and assertions for testing stick
// bindings against the in-memory page host.
package testing

import (
	"slices"
	"testing"
	"time"

	"github.com/zoobzio/stick"
	"github.com/zoobzio/stick/page"
)

// Viewport dimensions used by NewTestPage.
const (
	ViewportWidth  = 1024
	ViewportHeight = 768
)

// NewTestPage returns a 1024x768 document laid out like a typical article:
//
//	header   y=100  h=40   full width
//	intro    y=200  h=600
//	body     y=800  h=1200
//	footer   y=2000 h=200
//	nav-intro, nav-body   fixed-size markers inside the header
func NewTestPage(t *testing.T) *page.Document {
	t.Helper()
	doc := page.New(ViewportWidth, ViewportHeight)
	doc.Add("header", page.Box{X: 0, Y: 100, Width: ViewportWidth, Height: 40})
	doc.Add("intro", page.Box{X: 0, Y: 200, Width: ViewportWidth, Height: 600})
	doc.Add("body", page.Box{X: 0, Y: 800, Width: ViewportWidth, Height: 1200})
	doc.Add("footer", page.Box{X: 0, Y: 2000, Width: ViewportWidth, Height: 200})
	doc.Add("nav-intro", page.Box{X: 10, Y: 110, Width: 80, Height: 20})
	doc.Add("nav-body", page.Box{X: 100, Y: 110, Width: 80, Height: 20})
	return doc
}

// MustGet returns the element with the given id or fails the test.
func MustGet(t *testing.T, doc *page.Document, id string) *page.Element {
	t.Helper()
	el, ok := doc.Get(id)
	if !ok {
		t.Fatalf("element #%s not on page", id)
	}
	return el
}

// WaitFor polls a condition until it returns true or timeout is reached.
// Returns true if the condition was met, false if timeout occurred.
func WaitFor(t *testing.T, timeout time.Duration, condition func() bool) bool {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if condition() {
			return true
		}
		time.Sleep(5 * time.Millisecond)
	}
	return condition()
}

// RequireClass fails the test if el lacks class.
func RequireClass(t *testing.T, el *page.Element, class string) {
	t.Helper()
	if !el.HasClass(class) {
		t.Fatalf("expected #%s to have class %q, got %v", el.ID(), class, el.Classes())
	}
}

// RequireNoClass fails the test if el carries class.
func RequireNoClass(t *testing.T, el *page.Element, class string) {
	t.Helper()
	if el.HasClass(class) {
		t.Fatalf("expected #%s not to have class %q, got %v", el.ID(), class, el.Classes())
	}
}

// RequireStyle fails the test unless the inline style prop equals want.
func RequireStyle(t *testing.T, el *page.Element, prop, want string) {
	t.Helper()
	got, ok := el.Style(prop)
	if !ok {
		t.Fatalf("expected #%s to have inline %s=%q, it is unset", el.ID(), prop, want)
	}
	if got != want {
		t.Fatalf("expected #%s inline %s=%q, got %q", el.ID(), prop, want, got)
	}
}

// RequireNoStyle fails the test if the inline style prop is set.
func RequireNoStyle(t *testing.T, el *page.Element, prop string) {
	t.Helper()
	if got, ok := el.Style(prop); ok {
		t.Fatalf("expected #%s inline %s unset, got %q", el.ID(), prop, got)
	}
}

// RequireClasses fails the test unless el's classes are exactly want.
func RequireClasses(t *testing.T, el *page.Element, want ...string) {
	t.Helper()
	slices.Sort(want)
	if got := el.Classes(); !slices.Equal(got, want) {
		t.Fatalf("expected #%s classes %v, got %v", el.ID(), want, got)
	}
}

// RequireReloadState fails the test immediately if the reloader is not in
// the expected state.
func RequireReloadState(t *testing.T, r *stick.Reloader, expected stick.ReloadState) {
	t.Helper()
	if got := r.State(); got != expected {
		t.Fatalf("expected reload state %s, got %s (last error: %v)", expected, got, r.LastError())
	}
}

// NewTestReloader creates a sync-mode YAML reloader over doc.
// Returns the reloader and a channel for sending manifests.
func NewTestReloader(t *testing.T, doc stick.Document) (*stick.Reloader, chan<- []byte) {
	t.Helper()
	ch := make(chan []byte, 10)
	r := stick.NewReloader(doc, stick.NewSyncChannelWatcher(ch)).
		Codec(stick.YAMLCodec{}).
		SyncMode()
	t.Cleanup(func() { _ = r.Close() })
	return r, ch
}
