package carousel

import "math"

// StripOptions controls how a Strip lays out its items.
type StripOptions struct {
	Breakpoint float64
	Gap        float64
	// Item extent along the axis, as a fraction of the viewport.
	HExtent    float64
	HMaxExtent float64
	VExtent    float64
	// Item size across the axis, as a fraction of the viewport.
	CrossFill float64
	// Per-frame interpolation factor for smooth scrolling.
	AnimSpeed float64
}

// DefaultStripOptions returns the layout used by the front ends.
func DefaultStripOptions() StripOptions {
	return StripOptions{
		Breakpoint: DefaultBreakpoint,
		Gap:        24,
		HExtent:    0.46,
		HMaxExtent: 720,
		VExtent:    0.62,
		CrossFill:  0.86,
		AnimSpeed:  0.12,
	}
}

// scrollSnap is the distance below which an animated scroll lands on target.
const scrollSnap = 0.5

// Strip is an in-memory scroll container: a row (or column) of equally sized
// items with centring padding on both ends, so every item can be scrolled to
// the middle of the viewport.
type Strip struct {
	opts   StripOptions
	bounds Rect
	count  int

	orient  Orientation
	extent  float64
	cross   float64
	padding float64

	offset float64
	target float64

	listeners []*scrollListener
}

type scrollListener struct {
	fn func()
}

// NewStrip creates a strip for count items. Zero option fields take defaults.
func NewStrip(count int, opts StripOptions) *Strip {
	def := DefaultStripOptions()
	if opts.Breakpoint <= 0 {
		opts.Breakpoint = def.Breakpoint
	}
	if opts.Gap < 0 {
		opts.Gap = 0
	}
	if opts.HExtent <= 0 {
		opts.HExtent = def.HExtent
	}
	if opts.HMaxExtent <= 0 {
		opts.HMaxExtent = def.HMaxExtent
	}
	if opts.VExtent <= 0 {
		opts.VExtent = def.VExtent
	}
	if opts.CrossFill <= 0 {
		opts.CrossFill = def.CrossFill
	}
	if opts.AnimSpeed <= 0 || opts.AnimSpeed > 1 {
		opts.AnimSpeed = def.AnimSpeed
	}
	return &Strip{opts: opts, count: count}
}

// Resize lays the strip out in a new viewport. The logical position (which
// item sits in the middle, fractionally) is kept across size and orientation
// changes.
func (s *Strip) Resize(bounds Rect) {
	pos, targetPos := 0.0, 0.0
	if p := s.pitch(); p > 0 {
		pos = s.offset / p
		targetPos = s.target / p
	}

	s.bounds = bounds
	if bounds.Empty() {
		// Layout and offsets are kept so the next real size restores the
		// same position.
		return
	}
	s.orient = OrientationFor(bounds.W, s.opts.Breakpoint)
	if s.orient == Horizontal {
		s.extent = math.Min(bounds.W*s.opts.HExtent, s.opts.HMaxExtent)
		s.cross = bounds.H * s.opts.CrossFill
	} else {
		s.extent = bounds.H * s.opts.VExtent
		s.cross = bounds.W * s.opts.CrossFill
	}
	s.padding = math.Max((bounds.AxisSize(s.orient)-s.extent)/2, 0)

	s.offset = s.clamp(pos * s.pitch())
	s.target = s.clamp(targetPos * s.pitch())
}

func (s *Strip) pitch() float64 {
	return s.extent + s.opts.Gap
}

// MaxOffset is the furthest the strip can scroll.
func (s *Strip) MaxOffset() float64 {
	if s.count == 0 || s.bounds.Empty() {
		return 0
	}
	content := 2*s.padding + float64(s.count)*s.extent + float64(s.count-1)*s.opts.Gap
	return math.Max(content-s.bounds.AxisSize(s.orient), 0)
}

func (s *Strip) clamp(v float64) float64 {
	return math.Max(0, math.Min(v, s.MaxOffset()))
}

// Orientation is the axis the strip is currently laid out along.
func (s *Strip) Orientation() Orientation { return s.orient }

// Offset is the current scroll offset.
func (s *Strip) Offset() float64 { return s.offset }

// Target is where an in-flight smooth scroll is heading.
func (s *Strip) Target() float64 { return s.target }

// Settled reports whether no smooth scroll is in flight.
func (s *Strip) Settled() bool { return s.offset == s.target }

func (s *Strip) Bounds() Rect { return s.bounds }

func (s *Strip) ItemCount() int { return s.count }

func (s *Strip) ItemBounds(i int) (Rect, bool) {
	if i < 0 || i >= s.count || s.bounds.Empty() {
		return Rect{}, false
	}
	start := s.padding + float64(i)*s.pitch() - s.offset
	b := s.bounds
	if s.orient == Horizontal {
		return Rect{X: b.X + start, Y: b.Y + (b.H-s.cross)/2, W: s.extent, H: s.cross}, true
	}
	return Rect{X: b.X + (b.W-s.cross)/2, Y: b.Y + start, W: s.cross, H: s.extent}, true
}

func (s *Strip) ScrollOffset(o Orientation) float64 {
	if o != s.orient {
		return 0
	}
	return s.offset
}

func (s *Strip) SetScrollOffset(o Orientation, offset float64) {
	if o != s.orient || s.bounds.Empty() {
		return
	}
	s.target = s.clamp(offset)
	s.jump(s.target)
}

func (s *Strip) ScrollTo(o Orientation, offset float64, smooth bool) {
	if o != s.orient || s.bounds.Empty() {
		return
	}
	s.target = s.clamp(offset)
	if !smooth {
		s.jump(s.target)
	}
}

// Animate moves one frame toward the scroll target.
func (s *Strip) Animate() {
	if s.offset == s.target {
		return
	}
	next := Lerp(s.offset, s.target, s.opts.AnimSpeed)
	if math.Abs(s.target-next) < scrollSnap {
		next = s.target
	}
	s.jump(next)
}

func (s *Strip) jump(v float64) {
	if v == s.offset {
		return
	}
	s.offset = v
	for _, l := range append([]*scrollListener(nil), s.listeners...) {
		l.fn()
	}
}

func (s *Strip) OnScroll(fn func()) func() {
	l := &scrollListener{fn: fn}
	s.listeners = append(s.listeners, l)
	return func() {
		for i, existing := range s.listeners {
			if existing == l {
				s.listeners = append(s.listeners[:i], s.listeners[i+1:]...)
				return
			}
		}
	}
}

// Listeners returns how many scroll listeners are attached.
func (s *Strip) Listeners() int { return len(s.listeners) }
