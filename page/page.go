// Package page provides an in-memory stick.Document.
//
// Elements are boxes placed in document coordinates. Their bounding
// rectangles are derived from the current scroll offsets, so scrolling the
// document moves every element through the viewport the way a static page
// does. There is no layout engine: classes and inline styles are recorded
// but do not move boxes.
package page

import (
	"maps"
	"slices"
	"sync"

	"go.uber.org/atomic"

	"github.com/zoobzio/stick"
)

// Box is an element's position and size in document coordinates.
type Box struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Document is an in-memory page with a scrollable viewport.
type Document struct {
	scrollTop  atomic.Float64
	scrollLeft atomic.Float64
	width      atomic.Float64
	height     atomic.Float64

	mu        sync.RWMutex
	elements  map[string]*Element
	listeners map[uint64]func()
	nextID    uint64
}

// New creates an empty document with a viewport of the given size.
func New(width, height float64) *Document {
	d := &Document{
		elements:  make(map[string]*Element),
		listeners: make(map[uint64]func()),
	}
	d.width.Store(width)
	d.height.Store(height)
	return d
}

// Add places an element with the given id. An existing element with the
// same id is replaced.
func (d *Document) Add(id string, box Box) *Element {
	el := newElement(d, id, box)
	d.mu.Lock()
	d.elements[id] = el
	d.mu.Unlock()
	return el
}

// Remove deletes the element with the given id.
func (d *Document) Remove(id string) {
	d.mu.Lock()
	delete(d.elements, id)
	d.mu.Unlock()
}

// Get returns the concrete element with the given id.
func (d *Document) Get(id string) (*Element, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	el, ok := d.elements[id]
	return el, ok
}

// IDs returns the ids of all elements, sorted.
func (d *Document) IDs() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return slices.Sorted(maps.Keys(d.elements))
}

// ElementByID implements stick.Document.
func (d *Document) ElementByID(id string) (stick.Element, bool) {
	el, ok := d.Get(id)
	if !ok {
		return nil, false
	}
	return el, true
}

// ScrollTop implements stick.Geometry.
func (d *Document) ScrollTop() float64 { return d.scrollTop.Load() }

// ScrollLeft implements stick.Geometry.
func (d *Document) ScrollLeft() float64 { return d.scrollLeft.Load() }

// ViewportWidth implements stick.Geometry.
func (d *Document) ViewportWidth() float64 { return d.width.Load() }

// ViewportHeight implements stick.Geometry.
func (d *Document) ViewportHeight() float64 { return d.height.Load() }

// ScrollTo moves the viewport to (left, top) and notifies scroll listeners.
// Offsets are clamped at zero.
func (d *Document) ScrollTo(left, top float64) {
	d.scrollLeft.Store(max(left, 0))
	d.scrollTop.Store(max(top, 0))
	d.notify()
}

// ScrollBy moves the viewport by (dx, dy) and notifies scroll listeners.
func (d *Document) ScrollBy(dx, dy float64) {
	d.ScrollTo(d.ScrollLeft()+dx, d.ScrollTop()+dy)
}

// Resize changes the viewport size. Like a browser, resizing does not
// fire scroll notifications.
func (d *Document) Resize(width, height float64) {
	d.width.Store(width)
	d.height.Store(height)
}

// Extent returns the bottom-most and right-most edges of all elements.
func (d *Document) Extent() (width, height float64) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	for _, el := range d.elements {
		b := el.Box()
		width = max(width, b.X+b.Width)
		height = max(height, b.Y+b.Height)
	}
	return width, height
}

// OnScroll implements stick.Document. Listeners run synchronously on the
// goroutine that scrolls, in registration order.
func (d *Document) OnScroll(fn func()) func() {
	d.mu.Lock()
	id := d.nextID
	d.nextID++
	d.listeners[id] = fn
	d.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			d.mu.Lock()
			delete(d.listeners, id)
			d.mu.Unlock()
		})
	}
}

// Listeners returns the number of registered scroll listeners.
func (d *Document) Listeners() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.listeners)
}

// notify runs listeners outside the lock so they may read the document.
func (d *Document) notify() {
	d.mu.RLock()
	ids := slices.Sorted(maps.Keys(d.listeners))
	fns := make([]func(), 0, len(ids))
	for _, id := range ids {
		fns = append(fns, d.listeners[id])
	}
	d.mu.RUnlock()

	for _, fn := range fns {
		fn()
	}
}

var _ stick.Document = (*Document)(nil)
