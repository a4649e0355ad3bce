//go:build js && wasm

// Package wasm adapts the browser DOM to stick.Document via syscall/js.
//
//	doc := wasm.New()
//	stick.IsSticky(ctx, doc, stick.ID("header"), stick.DefaultConfig())
package wasm

import (
	"math"
	"sync"
	"syscall/js"

	"github.com/zoobzio/stick"
)

// Document wraps the global window and document.
type Document struct {
	window js.Value
	doc    js.Value
}

// New wraps the current page.
func New() *Document {
	global := js.Global()
	return &Document{
		window: global,
		doc:    global.Get("document"),
	}
}

func (d *Document) root() js.Value {
	return d.doc.Get("documentElement")
}

// ElementByID implements stick.Document.
func (d *Document) ElementByID(id string) (stick.Element, bool) {
	v := d.doc.Call("getElementById", id)
	if v.IsNull() || v.IsUndefined() {
		return nil, false
	}
	return Wrap(v), true
}

// ScrollTop implements stick.Geometry.
func (d *Document) ScrollTop() float64 { return number(d.root().Get("scrollTop")) }

// ScrollLeft implements stick.Geometry.
func (d *Document) ScrollLeft() float64 { return number(d.root().Get("scrollLeft")) }

// ViewportWidth is the larger of documentElement.clientWidth and
// window.innerWidth.
func (d *Document) ViewportWidth() float64 {
	return math.Max(number(d.root().Get("clientWidth")), number(d.window.Get("innerWidth")))
}

// ViewportHeight is the larger of documentElement.clientHeight and
// window.innerHeight.
func (d *Document) ViewportHeight() float64 {
	return math.Max(number(d.root().Get("clientHeight")), number(d.window.Get("innerHeight")))
}

// OnScroll implements stick.Document with a document "scroll" listener.
// The returned cancel removes the listener and releases the callback.
func (d *Document) OnScroll(fn func()) func() {
	cb := js.FuncOf(func(_ js.Value, _ []js.Value) any {
		fn()
		return nil
	})
	d.doc.Call("addEventListener", "scroll", cb)

	var once sync.Once
	return func() {
		once.Do(func() {
			d.doc.Call("removeEventListener", "scroll", cb)
			cb.Release()
		})
	}
}

// Element wraps a DOM element.
type Element struct {
	v js.Value
}

// Wrap adapts a DOM element value.
func Wrap(v js.Value) *Element {
	return &Element{v: v}
}

// Value returns the underlying DOM element.
func (e *Element) Value() js.Value { return e.v }

// BoundingClientRect implements stick.Element.
func (e *Element) BoundingClientRect() stick.Rect {
	r := e.v.Call("getBoundingClientRect")
	return stick.Rect{
		Top:    number(r.Get("top")),
		Left:   number(r.Get("left")),
		Right:  number(r.Get("right")),
		Bottom: number(r.Get("bottom")),
	}
}

// ClientWidth implements stick.Element.
func (e *Element) ClientWidth() float64 { return number(e.v.Get("clientWidth")) }

// ClientHeight implements stick.Element.
func (e *Element) ClientHeight() float64 { return number(e.v.Get("clientHeight")) }

// AddClass implements stick.Element.
func (e *Element) AddClass(name string) { e.v.Get("classList").Call("add", name) }

// RemoveClass implements stick.Element.
func (e *Element) RemoveClass(name string) { e.v.Get("classList").Call("remove", name) }

// HasClass implements stick.Element.
func (e *Element) HasClass(name string) bool {
	return e.v.Get("classList").Call("contains", name).Bool()
}

// SetStyle implements stick.Element.
func (e *Element) SetStyle(prop, value string) {
	e.v.Get("style").Call("setProperty", prop, value)
}

// RemoveStyle implements stick.Element.
func (e *Element) RemoveStyle(prop string) {
	e.v.Get("style").Call("removeProperty", prop)
}

// SetProperty implements stick.Element.
func (e *Element) SetProperty(name, value string) {
	e.v.Get("style").Call("setProperty", name, value)
}

// number reads a numeric property, treating null and undefined as zero.
func number(v js.Value) float64 {
	if v.Type() != js.TypeNumber {
		return 0
	}
	return v.Float()
}

var (
	_ stick.Document = (*Document)(nil)
	_ stick.Element  = (*Element)(nil)
)
