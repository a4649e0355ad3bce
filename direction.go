package stick

import "strings"

// Direction selects which edge of an element is tested against its offset.
// It also picks the scroll axis used for the hysteresis anchor.
type Direction string

const (
	DirectionTop    Direction = "top"
	DirectionLeft   Direction = "left"
	DirectionRight  Direction = "right"
	DirectionBottom Direction = "bottom"
)

// Known reports whether d is one of the four recognized edges.
func (d Direction) Known() bool {
	switch d {
	case DirectionTop, DirectionLeft, DirectionRight, DirectionBottom:
		return true
	default:
		return false
	}
}

// PropertyName returns the custom property the binding publishes its
// offset under, e.g. "--offsetTOP".
func (d Direction) PropertyName() string {
	return "--offset" + strings.ToUpper(string(d))
}

// scroll returns the document scroll offset along d's axis.
func (d Direction) scroll(g Geometry) (float64, bool) {
	switch d {
	case DirectionTop, DirectionBottom:
		return g.ScrollTop(), true
	case DirectionLeft, DirectionRight:
		return g.ScrollLeft(), true
	default:
		return 0, false
	}
}

// Axis selects the viewport band a membership binding tests against.
// The zero value is AxisY.
type Axis string

const (
	AxisY Axis = "y"
	AxisX Axis = "x"
)

// Contains applies the membership predicate for the axis to rect.
// Unrecognized axes never contain anything.
func (a Axis) Contains(rect Rect) bool {
	switch a {
	case AxisY, "":
		return InYViewport(rect)
	case AxisX:
		return InXViewport(rect)
	default:
		return false
	}
}

func (a Axis) String() string {
	if a == "" {
		return string(AxisY)
	}
	return string(a)
}
