package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/depeter/couchgallery/internal/carousel"
)

// ThumbStrip is a horizontally scrolling row of thumbnails that keeps the
// active one in view.
type ThumbStrip struct {
	Count         int
	Active        int
	OffsetX       float64
	targetOffsetX float64

	area carousel.Rect
}

func NewThumbStrip(count int) *ThumbStrip {
	return &ThumbStrip{Count: count}
}

// SetArea places the strip and re-applies the visibility rule.
func (ts *ThumbStrip) SetArea(area carousel.Rect) {
	ts.area = area
	ts.ensureVisible()
	ts.OffsetX = ts.targetOffsetX
}

// SetActive moves the highlight to i.
func (ts *ThumbStrip) SetActive(i int) {
	if i < 0 || i >= ts.Count || i == ts.Active {
		return
	}
	ts.Active = i
	ts.ensureVisible()
}

func (ts *ThumbStrip) contentWidth() float64 {
	if ts.Count == 0 {
		return 0
	}
	return float64(ts.Count)*(ThumbWidth+ThumbGap) - ThumbGap
}

func (ts *ThumbStrip) viewWidth() float64 {
	return ts.area.W - TopBarPadding*2
}

// originX is where thumbnail 0 starts; a row narrower than the view is
// centred.
func (ts *ThumbStrip) originX() float64 {
	if cw := ts.contentWidth(); cw < ts.viewWidth() {
		return ts.area.X + (ts.area.W-cw)/2
	}
	return ts.area.X + TopBarPadding
}

func (ts *ThumbStrip) ensureVisible() {
	viewWidth := ts.viewWidth()
	if ts.contentWidth() <= viewWidth {
		ts.targetOffsetX = 0
		return
	}
	// Scroll to keep active thumbnail visible
	itemX := float64(ts.Active) * (ThumbWidth + ThumbGap)
	if itemX+ThumbWidth-ts.targetOffsetX > viewWidth {
		ts.targetOffsetX = itemX + ThumbWidth - viewWidth
	}
	if itemX-ts.targetOffsetX < 0 {
		ts.targetOffsetX = itemX
	}
}

func (ts *ThumbStrip) AnimateScroll() {
	ts.OffsetX = carousel.Lerp(ts.OffsetX, ts.targetOffsetX, ScrollAnimSpeed)
}

// ThumbRect returns where thumbnail i is drawn.
func (ts *ThumbStrip) ThumbRect(i int) carousel.Rect {
	return carousel.Rect{
		X: ts.originX() + float64(i)*(ThumbWidth+ThumbGap) - ts.OffsetX,
		Y: ts.area.Y + (ts.area.H-ThumbHeight)/2,
		W: ThumbWidth,
		H: ThumbHeight,
	}
}

// HitTest returns the thumbnail under (px, py), or -1.
func (ts *ThumbStrip) HitTest(px, py float64) int {
	if !ts.area.Contains(px, py) {
		return -1
	}
	for i := 0; i < ts.Count; i++ {
		if ts.ThumbRect(i).Contains(px, py) {
			return i
		}
	}
	return -1
}

// Draw renders the row. image returns the thumbnail for i (nil while loading)
// and whether it failed.
func (ts *ThumbStrip) Draw(dst *ebiten.Image, thumbs []carousel.Control, image func(i int) (*ebiten.Image, bool)) {
	for _, th := range thumbs {
		r := ts.ThumbRect(th.Index)

		// Skip offscreen thumbnails
		if r.X+r.W < ts.area.X || r.X > ts.area.X+ts.area.W {
			continue
		}

		if th.Selected {
			vector.DrawFilledRect(dst,
				float32(r.X-ThumbFocusPad), float32(r.Y-ThumbFocusPad),
				float32(r.W+ThumbFocusPad*2), float32(r.H+ThumbFocusPad*2),
				ColorFocusBorder, false)
		}

		img, broken := image(th.Index)
		switch {
		case img != nil:
			op := &ebiten.DrawImageOptions{}
			b := img.Bounds()
			op.GeoM = coverGeoM(float64(b.Dx()), float64(b.Dy()), r.W, r.H, 1, 0)
			op.GeoM.Translate(r.X, r.Y)
			op.Filter = ebiten.FilterLinear
			if !th.Selected {
				op.ColorScale.ScaleAlpha(0.6)
			}
			sub := dst.SubImage(rectImage(r)).(*ebiten.Image)
			sub.DrawImage(img, op)
		case broken:
			vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), ColorSurface, false)
			drawBrokenIcon(dst, float32(r.X+r.W/2), float32(r.Y+r.H/2), 10, ColorTextMuted)
		default:
			vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), ColorSurface, false)
		}
	}
}
