package carousel

// Viewport is the scroll container the carousel drives. Coordinates are in the
// same space for the container and its items; item bounds reflect the current
// scroll offset.
type Viewport interface {
	Bounds() Rect
	ItemCount() int
	// ItemBounds returns false when item i has no geometry yet.
	ItemBounds(i int) (Rect, bool)
	ScrollOffset(o Orientation) float64
	// SetScrollOffset moves the container instantly, as a drag does.
	SetScrollOffset(o Orientation, offset float64)
	// ScrollTo moves the container to an absolute offset, animating if smooth.
	ScrollTo(o Orientation, offset float64, smooth bool)
	// OnScroll registers the listener fired whenever the offset changes and
	// returns a function that removes it.
	OnScroll(fn func()) (detach func())
}

// PointerCapturer is implemented by viewports that can route a pointer to
// themselves for the duration of a drag. Failures are ignored.
type PointerCapturer interface {
	CapturePointer(id int) error
	ReleasePointer(id int) error
}

// Animator is implemented by viewports that advance smooth scrolling once per
// frame.
type Animator interface {
	Animate()
}
