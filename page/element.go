package page

import (
	"maps"
	"slices"
	"sync"

	"github.com/zoobzio/stick"
)

// Element is a box on a Document with a class list, inline styles and
// custom properties.
type Element struct {
	doc *Document
	id  string

	mu      sync.RWMutex
	box     Box
	classes map[string]struct{}
	styles  map[string]string
	props   map[string]string
}

func newElement(doc *Document, id string, box Box) *Element {
	return &Element{
		doc:     doc,
		id:      id,
		box:     box,
		classes: make(map[string]struct{}),
		styles:  make(map[string]string),
		props:   make(map[string]string),
	}
}

// ID returns the element's identifier.
func (e *Element) ID() string { return e.id }

// Box returns the element's document-space box.
func (e *Element) Box() Box {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.box
}

// Move replaces the element's document-space box.
func (e *Element) Move(box Box) {
	e.mu.Lock()
	e.box = box
	e.mu.Unlock()
}

// BoundingClientRect implements stick.Element.
func (e *Element) BoundingClientRect() stick.Rect {
	b := e.Box()
	top := b.Y - e.doc.ScrollTop()
	left := b.X - e.doc.ScrollLeft()
	return stick.Rect{
		Top:    top,
		Left:   left,
		Right:  left + b.Width,
		Bottom: top + b.Height,
	}
}

// ClientWidth implements stick.Element.
func (e *Element) ClientWidth() float64 { return e.Box().Width }

// ClientHeight implements stick.Element.
func (e *Element) ClientHeight() float64 { return e.Box().Height }

// AddClass implements stick.Element.
func (e *Element) AddClass(name string) {
	e.mu.Lock()
	e.classes[name] = struct{}{}
	e.mu.Unlock()
}

// RemoveClass implements stick.Element.
func (e *Element) RemoveClass(name string) {
	e.mu.Lock()
	delete(e.classes, name)
	e.mu.Unlock()
}

// HasClass implements stick.Element.
func (e *Element) HasClass(name string) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	_, ok := e.classes[name]
	return ok
}

// Classes returns the element's classes, sorted.
func (e *Element) Classes() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return slices.Sorted(maps.Keys(e.classes))
}

// SetStyle implements stick.Element.
func (e *Element) SetStyle(prop, value string) {
	e.mu.Lock()
	e.styles[prop] = value
	e.mu.Unlock()
}

// RemoveStyle implements stick.Element.
func (e *Element) RemoveStyle(prop string) {
	e.mu.Lock()
	delete(e.styles, prop)
	e.mu.Unlock()
}

// Style returns an inline style and whether it is set.
func (e *Element) Style(prop string) (string, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	v, ok := e.styles[prop]
	return v, ok
}

// SetProperty implements stick.Element.
func (e *Element) SetProperty(name, value string) {
	e.mu.Lock()
	e.props[name] = value
	e.mu.Unlock()
}

// Property returns a custom property and whether it is set.
func (e *Element) Property(name string) (string, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	v, ok := e.props[name]
	return v, ok
}

var _ stick.Element = (*Element)(nil)
