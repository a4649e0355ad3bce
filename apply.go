package stick

// StickyClass marks an element as stuck.
const StickyClass = "is-sticky"

// Stick moves el into the stuck presentation. Sizes are measured before the
// marker class is added so the frozen overrides reflect the unstuck layout.
func Stick(el Element, cfg Config) {
	if cfg.KeepWidth {
		el.SetStyle("width", px(el.ClientWidth()))
	}
	if cfg.KeepHeight {
		el.SetStyle("height", px(el.ClientHeight()))
	}
	el.AddClass(StickyClass)
}

// Unstick releases any frozen size and removes the marker class.
func Unstick(el Element, cfg Config) {
	if cfg.KeepWidth {
		el.RemoveStyle("width")
	}
	if cfg.KeepHeight {
		el.RemoveStyle("height")
	}
	el.RemoveClass(StickyClass)
}
