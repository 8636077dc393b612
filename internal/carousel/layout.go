package carousel

import "math"

// Transform constants.
const (
	Perspective = 900.0 // px, horizontal tilt perspective

	tiltDeg        = 12.0
	hTranslate     = 18.0
	hScaleFalloff  = 0.12
	vTranslate     = 22.0
	vScaleFalloff  = 0.08
	opacityFalloff = 0.28
	opacityMaxDrop = 0.9
	imageZoom      = 0.06
	hImageNudge    = 8.0
	vImageNudge    = 14.0
)

// Style is the visual transform of one item. Renderers apply it; nothing here
// touches a display.
type Style struct {
	RotateY    float64 // degrees around the vertical axis
	TranslateX float64
	TranslateY float64
	Scale      float64
	Opacity    float64
	ZIndex     int

	// Inner image accent: zoom and a nudge along Y.
	ImageScale  float64
	ImageShiftY float64
}

// ComputeStyle maps a signed, size-normalised offset from the viewport centre
// to a style. norm is 0 for a centred item.
func ComputeStyle(norm float64, o Orientation) Style {
	abs := math.Min(math.Abs(norm), 1)

	s := Style{
		Opacity:    1 - math.Min(abs*opacityFalloff, opacityMaxDrop),
		ZIndex:     int(math.Round((1 - abs) * 100)),
		ImageScale: 1 + math.Max(imageZoom*(1-abs), 0),
	}
	if o == Horizontal {
		s.RotateY = -norm * tiltDeg
		s.TranslateX = -norm * hTranslate
		s.Scale = 1 - abs*hScaleFalloff
		s.ImageShiftY = norm * hImageNudge
	} else {
		s.TranslateY = norm * vTranslate
		s.Scale = 1 - abs*vScaleFalloff
		s.ImageShiftY = norm * vImageNudge
	}
	return s
}

// Frame is one layout pass over the viewport.
type Frame struct {
	Orientation Orientation
	Styles      []Style
	// Present[i] is false for items that had no geometry.
	Present []bool
	// Closest is -1 when no item had geometry.
	Closest int
}

// Layout computes a style for every item and the item closest to the centre.
// It returns false when the viewport has no usable geometry.
func Layout(vp Viewport, breakpoint float64) (Frame, bool) {
	if vp == nil {
		return Frame{}, false
	}
	rect := vp.Bounds()
	if rect.Empty() {
		return Frame{}, false
	}
	o := OrientationFor(rect.W, breakpoint)
	center := rect.AxisCenter(o)
	size := rect.AxisSize(o)

	n := vp.ItemCount()
	f := Frame{
		Orientation: o,
		Styles:      make([]Style, n),
		Present:     make([]bool, n),
		Closest:     -1,
	}
	best := math.Inf(1)
	for i := 0; i < n; i++ {
		r, ok := vp.ItemBounds(i)
		if !ok {
			continue
		}
		itemCenter := r.AxisCenter(o)
		f.Styles[i] = ComputeStyle((itemCenter-center)/size, o)
		f.Present[i] = true
		if d := math.Abs(itemCenter - center); d < best {
			best = d
			f.Closest = i
		}
	}
	return f, true
}

// ClosestIndex returns the item whose centre is nearest the viewport centre,
// or 0 when there is no geometry.
func ClosestIndex(vp Viewport, breakpoint float64) int {
	if vp == nil {
		return 0
	}
	rect := vp.Bounds()
	if rect.Empty() {
		return 0
	}
	o := OrientationFor(rect.W, breakpoint)
	center := rect.AxisCenter(o)

	idx, best := 0, math.Inf(1)
	for i := 0; i < vp.ItemCount(); i++ {
		r, ok := vp.ItemBounds(i)
		if !ok {
			continue
		}
		if d := math.Abs(r.AxisCenter(o) - center); d < best {
			best = d
			idx = i
		}
	}
	return idx
}
