package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/depeter/couchgallery/internal/carousel"
)

const viewerMargin = 48

// ViewerScreen shows one image fitted to the window.
type ViewerScreen struct {
	item    carousel.Item
	img     *ebiten.Image
	err     error
	counter string

	box carousel.Rect
}

// NewViewerScreen opens item. img may be nil while loading; err is set when
// the image could not be loaded.
func NewViewerScreen(item carousel.Item, img *ebiten.Image, err error, counter string) *ViewerScreen {
	return &ViewerScreen{item: item, img: img, err: err, counter: counter}
}

func (vs *ViewerScreen) Name() string { return "Viewer" }
func (vs *ViewerScreen) OnEnter()     {}
func (vs *ViewerScreen) OnExit()      {}

func (vs *ViewerScreen) Resize(width, height int) {
	vs.box = carousel.Rect{
		X: viewerMargin,
		Y: viewerMargin,
		W: max(float64(width)-viewerMargin*2, 0),
		H: max(float64(height)-viewerMargin*2-CaptionHeight, 0),
	}
}

func (vs *ViewerScreen) Update() (*ScreenTransition, error) {
	_, _, back := InputState()
	if _, _, clicked := MouseJustClicked(); clicked {
		back = true
	}
	if back {
		return &ScreenTransition{Type: TransitionPop}, nil
	}
	return nil, nil
}

func (vs *ViewerScreen) Draw(dst *ebiten.Image) {
	b := dst.Bounds()
	vector.DrawFilledRect(dst, 0, 0, float32(b.Dx()), float32(b.Dy()), ColorBackground, false)

	switch {
	case vs.img != nil:
		ib := vs.img.Bounds()
		r := fitRect(float64(ib.Dx()), float64(ib.Dy()), vs.box)
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(r.W/float64(ib.Dx()), r.H/float64(ib.Dy()))
		op.GeoM.Translate(r.X, r.Y)
		op.Filter = ebiten.FilterLinear
		dst.DrawImage(vs.img, op)
	case vs.err != nil:
		cx, cy := vs.box.Center()
		drawBrokenIcon(dst, float32(cx), float32(cy-24), 32, ColorTextMuted)
		msg := truncateText(vs.err.Error(), vs.box.W, FontSizeSmall)
		DrawTextCentered(dst, msg, cx, cy+32, FontSizeSmall, ColorError)
	default:
		cx, cy := vs.box.Center()
		DrawTextCentered(dst, "Loading…", cx, cy, FontSizeBody, ColorTextMuted)
	}

	y := vs.box.Y + vs.box.H + 12
	DrawText(dst, vs.item.Label(), viewerMargin, y, FontSizeHeading, ColorText)
	if vs.item.Subtitle != "" {
		DrawTextWrapped(dst, vs.item.Subtitle, viewerMargin, y+28, vs.box.W*0.7, FontSizeSmall, ColorTextSecondary)
	}
	DrawTextRight(dst, vs.counter, vs.box.X+vs.box.W, y, FontSizeHeading, ColorTextSecondary)
	drawExpandIcon(dst, float32(b.Dx()-viewerMargin/2), viewerMargin/2, 9, ColorTextMuted)
}
