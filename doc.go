/*
Package stick binds element presentation state to document scrolling.

A binding pairs a predicate over the current geometry with an idempotent
side effect. It is evaluated once when registered and again on every scroll
notification until it is closed.

# Sticky Bindings

A sticky binding adds the "is-sticky" class to an element once its
configured edge crosses an offset, and removes it when the page scrolls back:

	cfg := stick.DefaultConfig()
	cfg.Offset = 50

	header, err := stick.IsSticky(ctx, doc, stick.ID("header"), cfg)
	if err != nil {
	    // ErrElementNotFound or ErrViewportTooNarrow: nothing was registered
	}
	defer header.Close()

Entering the stuck state latches an anchor at the current scroll offset.
While the anchor is set, scrolling back to it or past it unsticks the element
regardless of geometry, which keeps the state from flickering around the
threshold.

With KeepWidth and KeepHeight (both on by default) the element's measured
size is frozen as inline overrides while stuck and released afterwards.
The configured offset is published as a custom property ("--offsetTOP" for
the top edge) for stylesheets.

# Viewport Membership

Membership bindings toggle a class on a target while a subject element spans
the viewport band along an axis:

	stick.ActiveIfOtherInViewport(ctx, doc, stick.ID("nav-intro"), stick.ID("intro"), stick.AxisY, "")
	stick.ActiveIfInViewport(ctx, doc, stick.ID("intro"), stick.AxisY, "current")

# Hosts

The package never touches a page directly. A Document supplies element
lookup, scroll offsets, viewport size and the scroll channel; an Element
supplies its rectangle and class/style sinks. The page package provides an
in-memory host and the wasm package adapts the browser DOM.

# Coalescing

Scroll notifications can arrive far faster than a display refreshes.
Coalesce limits a binding to one evaluation per frame:

	stick.NewSticky(doc, stick.ID("header"), cfg).
	    Coalesce(stick.DefaultFrame).
	    Start(ctx)

# Manifests

A Reloader registers bindings declared in a JSON, YAML or TOML manifest and
re-registers them whenever the manifest changes:

	r := stick.NewReloader(doc, stick.NewFileWatcher("bindings.yaml")).
	    Codec(stick.YAMLCodec{})
	err := r.Start(ctx)

# Observability

Lifecycle and state transitions are emitted as capitan signals
(BindingRegistered, StickyStateChanged, ActiveStateChanged, ...). Hook them
to log or trace binding activity.
*/
package stick
