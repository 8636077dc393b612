package carousel

// DefaultBreakpoint is the viewport width at which the carousel switches from a
// vertical column to a horizontal row.
const DefaultBreakpoint = 900

// Orientation is the axis the carousel scrolls along.
type Orientation int

const (
	Vertical Orientation = iota
	Horizontal
)

func (o Orientation) String() string {
	if o == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// OrientationFor picks the orientation for a viewport of the given width.
func OrientationFor(width, breakpoint float64) Orientation {
	if width >= breakpoint {
		return Horizontal
	}
	return Vertical
}

// Rect is an axis-aligned rectangle in logical pixels.
type Rect struct {
	X, Y, W, H float64
}

// Empty reports whether the rectangle has no area (e.g. not yet laid out).
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Contains reports whether (px, py) lies inside the rectangle.
func (r Rect) Contains(px, py float64) bool {
	return px >= r.X && px <= r.X+r.W && py >= r.Y && py <= r.Y+r.H
}

// AxisCenter returns the rectangle's midpoint along the orientation's axis.
func (r Rect) AxisCenter(o Orientation) float64 {
	if o == Horizontal {
		return r.X + r.W/2
	}
	return r.Y + r.H/2
}

// AxisSize returns the rectangle's extent along the orientation's axis.
func (r Rect) AxisSize(o Orientation) float64 {
	if o == Horizontal {
		return r.W
	}
	return r.H
}

// axisPos picks the coordinate of a point along the orientation's axis.
func axisPos(o Orientation, x, y float64) float64 {
	if o == Horizontal {
		return x
	}
	return y
}

// Lerp for smooth scrolling
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
