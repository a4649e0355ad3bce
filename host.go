package stick

import (
	"errors"
	"fmt"
)

// Rect is an element's bounding rectangle in viewport coordinates.
type Rect struct {
	Top    float64
	Left   float64
	Right  float64
	Bottom float64
}

// Width returns the horizontal extent of the rectangle.
func (r Rect) Width() float64 { return r.Right - r.Left }

// Height returns the vertical extent of the rectangle.
func (r Rect) Height() float64 { return r.Bottom - r.Top }

// Element is the host's handle on a single visual element.
// Implementations wrap whatever the host uses (a DOM node, a virtual box)
// and must be safe to call from the goroutine delivering scroll notifications.
type Element interface {
	// BoundingClientRect returns the element's current rectangle relative
	// to the viewport.
	BoundingClientRect() Rect

	// ClientWidth and ClientHeight return the element's laid-out size.
	ClientWidth() float64
	ClientHeight() float64

	// AddClass, RemoveClass and HasClass manage class membership.
	AddClass(name string)
	RemoveClass(name string)
	HasClass(name string) bool

	// SetStyle sets an inline style override; RemoveStyle returns the
	// property to unset so natural layout resumes.
	SetStyle(prop, value string)
	RemoveStyle(prop string)

	// SetProperty publishes a custom property (e.g. "--offsetTOP") for
	// stylesheet consumption.
	SetProperty(name, value string)
}

// Geometry exposes the document's scroll offsets and viewport size.
type Geometry interface {
	ScrollTop() float64
	ScrollLeft() float64

	// ViewportWidth and ViewportHeight are read on every call; they change
	// on resize and rotation.
	ViewportWidth() float64
	ViewportHeight() float64
}

// Document is the host page a binding attaches to.
type Document interface {
	Geometry

	// ElementByID resolves an identifier, returning false if absent.
	ElementByID(id string) (Element, bool)

	// OnScroll registers fn to run on every scroll notification and returns
	// a function that deregisters it.
	OnScroll(fn func()) (cancel func())
}

// ErrElementNotFound is returned when a binding target cannot be resolved.
var ErrElementNotFound = errors.New("element not found")

// Target identifies the element a binding attaches to, either by
// identifier or by handle.
type Target interface {
	Resolve(doc Document) (Element, error)
	String() string
}

// ID returns a Target resolved by identifier lookup.
func ID(id string) Target {
	return idTarget(id)
}

// Node returns a Target for an element the caller already holds.
func Node(el Element) Target {
	return nodeTarget{el: el}
}

type idTarget string

func (t idTarget) Resolve(doc Document) (Element, error) {
	if t == "" || doc == nil {
		return nil, fmt.Errorf("%w: empty id", ErrElementNotFound)
	}
	el, ok := doc.ElementByID(string(t))
	if !ok || el == nil {
		return nil, fmt.Errorf("%w: #%s", ErrElementNotFound, string(t))
	}
	return el, nil
}

func (t idTarget) String() string { return "#" + string(t) }

type nodeTarget struct {
	el Element
}

func (t nodeTarget) Resolve(_ Document) (Element, error) {
	if t.el == nil {
		return nil, fmt.Errorf("%w: nil element", ErrElementNotFound)
	}
	return t.el, nil
}

func (t nodeTarget) String() string {
	if t.el == nil {
		return "<nil>"
	}
	return fmt.Sprintf("<%T>", t.el)
}

// Resolve turns a Target into an Element. It never panics: a nil target,
// an unknown identifier and a nil handle all yield ErrElementNotFound.
func Resolve(doc Document, t Target) (Element, error) {
	if t == nil {
		return nil, fmt.Errorf("%w: no target", ErrElementNotFound)
	}
	return t.Resolve(doc)
}
