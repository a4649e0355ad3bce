package stick

// Anchor is the scroll offset latched when a sticky binding enters the
// stuck state. The zero value is an unset anchor.
type Anchor struct {
	value float64
	set   bool
}

// AnchorAt returns an anchor latched at v.
func AnchorAt(v float64) Anchor {
	return Anchor{value: v, set: true}
}

// Value returns the latched offset and whether the anchor is set.
func (a Anchor) Value() (float64, bool) {
	return a.value, a.set
}

// IsSet reports whether the anchor has been latched.
func (a Anchor) IsSet() bool {
	return a.set
}

// guards reports whether the anchor blocks the geometric test. An anchor
// latched at scroll origin has nothing to scroll back past.
func (a Anchor) guards() bool {
	return a.set && a.value != 0
}

// IsOverOffset reports whether an element with rectangle rect has crossed
// the threshold configured by cfg and should be stuck.
//
// When anchor guards, a scroll offset at or behind the anchor forces false
// regardless of geometry. Unknown directions always return false.
func IsOverOffset(g Geometry, rect Rect, anchor Anchor, cfg Config) bool {
	scroll, ok := cfg.Direction.scroll(g)
	if !ok {
		return false
	}
	if anchor.guards() && scroll <= anchor.value {
		return false
	}

	switch cfg.Direction {
	case DirectionTop:
		return rect.Top <= cfg.Offset
	case DirectionLeft:
		return rect.Left <= cfg.Offset
	case DirectionRight:
		return rect.Right-g.ViewportWidth()+cfg.Offset <= 0
	case DirectionBottom:
		return rect.Bottom-g.ViewportHeight()+cfg.Offset <= 0
	default:
		return false
	}
}

// SetAnchor returns the anchor to carry forward after a transition into the
// stuck state. A set anchor is returned unchanged; an unset one latches the
// current scroll offset along dir's axis.
func SetAnchor(g Geometry, anchor Anchor, dir Direction) Anchor {
	if anchor.set {
		return anchor
	}
	scroll, ok := dir.scroll(g)
	if !ok {
		return anchor
	}
	return AnchorAt(scroll)
}
