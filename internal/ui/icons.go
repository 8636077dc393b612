package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// drawPlayIcon draws a right-pointing triangle at (cx, cy) with given radius.
func drawPlayIcon(dst *ebiten.Image, cx, cy, r float32, clr color.Color) {
	// Filled with one-pixel columns narrowing toward the tip
	left, right := cx-r*0.6, cx+r
	for x := left; x <= right; x++ {
		half := r * (right - x) / (right - left)
		vector.StrokeLine(dst, x, cy-half, x, cy+half, 1, clr, true)
	}
}

// drawPauseIcon draws two vertical bars at (cx, cy) with given radius.
func drawPauseIcon(dst *ebiten.Image, cx, cy, r float32, clr color.Color) {
	barW := r * 0.6
	vector.DrawFilledRect(dst, cx-r*0.8, cy-r, barW, r*2, clr, false)
	vector.DrawFilledRect(dst, cx+r*0.2, cy-r, barW, r*2, clr, false)
}

// drawExpandIcon draws the "open image" corner brackets at (cx, cy).
func drawExpandIcon(dst *ebiten.Image, cx, cy, r float32, clr color.Color) {
	l := r * 0.7
	for _, c := range [4][2]float32{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}} {
		x, y := cx+c[0]*r, cy+c[1]*r
		vector.StrokeLine(dst, x, y, x-c[0]*l, y, 1.8, clr, false)
		vector.StrokeLine(dst, x, y, x, y-c[1]*l, 1.8, clr, false)
	}
}

// drawBrokenIcon draws a crossed frame for images that failed to load.
func drawBrokenIcon(dst *ebiten.Image, cx, cy, r float32, clr color.Color) {
	vector.StrokeRect(dst, cx-r, cy-r*0.75, r*2, r*1.5, 1.8, clr, false)
	vector.StrokeLine(dst, cx-r, cy-r*0.75, cx+r, cy+r*0.75, 1.8, clr, false)
	vector.StrokeLine(dst, cx+r, cy-r*0.75, cx-r, cy+r*0.75, 1.8, clr, false)
}

// drawIconButton draws a styled button with a leading icon.
func drawIconButton(dst *ebiten.Image, label string, x, y, w, h float32, hovered bool, iconFn func(*ebiten.Image, float32, float32, float32, color.Color)) {
	if hovered {
		vector.DrawFilledRect(dst, x, y, w, h, ColorPrimary, false)
		DrawTextCentered(dst, label, float64(x+w/2+10), float64(y+h/2), FontSizeBody, ColorBackground)
		if iconFn != nil {
			iconFn(dst, x+18, y+h/2, 7, ColorBackground)
		}
	} else {
		vector.DrawFilledRect(dst, x, y, w, h, ColorSurfaceHover, false)
		vector.StrokeRect(dst, x, y, w, h, 1, ColorPrimaryDark, false)
		DrawTextCentered(dst, label, float64(x+w/2+10), float64(y+h/2), FontSizeBody, ColorText)
		if iconFn != nil {
			iconFn(dst, x+18, y+h/2, 7, ColorPrimary)
		}
	}
}
