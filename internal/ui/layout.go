package ui

import (
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/depeter/couchgallery/internal/carousel"
)

// galleryRegions splits the window into the gallery's fixed areas.
type galleryRegions struct {
	Top    carousel.Rect
	Stage  carousel.Rect
	Dots   carousel.Rect
	Thumbs carousel.Rect
	Play   carousel.Rect
}

func layoutGallery(width, height int) galleryRegions {
	w, h := float64(width), float64(height)
	var r galleryRegions
	r.Top = carousel.Rect{W: w, H: TopBarHeight}
	r.Thumbs = carousel.Rect{Y: h - ThumbRowHeight, W: w, H: ThumbRowHeight}
	r.Dots = carousel.Rect{Y: r.Thumbs.Y - DotsRowHeight, W: w, H: DotsRowHeight}
	r.Stage = carousel.Rect{Y: TopBarHeight, W: w, H: math.Max(r.Dots.Y-TopBarHeight, 0)}
	r.Play = carousel.Rect{
		X: w - TopBarPadding - PlayButtonW,
		Y: (TopBarHeight - PlayButtonH) / 2,
		W: PlayButtonW,
		H: PlayButtonH,
	}
	return r
}

// dotRects returns the hit rect of each of n dots, centred in area.
func dotRects(n int, area carousel.Rect) []carousel.Rect {
	if n == 0 {
		return nil
	}
	pitch := float64(DotRadius*2 + DotGap)
	total := float64(n)*pitch - DotGap
	x := area.X + (area.W-total)/2
	y := area.Y + area.H/2
	rects := make([]carousel.Rect, n)
	for i := range rects {
		// Hit area covers the gap so dots are easy to click
		rects[i] = carousel.Rect{X: x + float64(i)*pitch - DotGap/2, Y: y - DotGap/2 - DotRadius, W: pitch, H: DotGap + DotRadius*2}
	}
	return rects
}

func hitRect(rects []carousel.Rect, px, py float64) int {
	for i, r := range rects {
		if r.Contains(px, py) {
			return i
		}
	}
	return -1
}

// squash approximates a rotation around the vertical axis by narrowing the
// card, seen from the carousel's perspective distance.
func squash(st carousel.Style) float64 {
	rad := st.RotateY * math.Pi / 180
	return math.Abs(math.Cos(rad))
}

// cardGeoM maps an offscreen card of r's size onto the screen with st applied.
func cardGeoM(r carousel.Rect, st carousel.Style) ebiten.GeoM {
	var m ebiten.GeoM
	m.Translate(-r.W/2, -r.H/2)
	m.Scale(st.Scale*squash(st), st.Scale)
	if st.RotateY != 0 {
		// The far edge recedes: shear slightly so it reads as a tilt.
		m.Skew(0, math.Atan(-math.Sin(st.RotateY*math.Pi/180)*r.W/carousel.Perspective))
	}
	cx, cy := r.Center()
	m.Translate(cx+st.TranslateX, cy+st.TranslateY)
	return m
}

// coverGeoM scales an image of size (iw, ih) to cover a (bw, bh) box,
// zoomed and shifted along Y, centred in the box.
func coverGeoM(iw, ih, bw, bh, zoom, shiftY float64) ebiten.GeoM {
	var m ebiten.GeoM
	if iw <= 0 || ih <= 0 {
		return m
	}
	s := math.Max(bw/iw, bh/ih) * zoom
	m.Translate(-iw/2, -ih/2)
	m.Scale(s, s)
	m.Translate(bw/2, bh/2+shiftY)
	return m
}

// fitRect is the largest rect with the image's aspect ratio inside box.
func fitRect(iw, ih float64, box carousel.Rect) carousel.Rect {
	if iw <= 0 || ih <= 0 || box.Empty() {
		return carousel.Rect{}
	}
	s := math.Min(box.W/iw, box.H/ih)
	w, h := iw*s, ih*s
	return carousel.Rect{X: box.X + (box.W-w)/2, Y: box.Y + (box.H-h)/2, W: w, H: h}
}

func rectImage(r carousel.Rect) image.Rectangle {
	return image.Rect(int(math.Floor(r.X)), int(math.Floor(r.Y)), int(math.Ceil(r.X+r.W)), int(math.Ceil(r.Y+r.H)))
}
