package icon

import (
	"image"
	"image/color"
	"math"
)

// Theme colors from the app
var (
	amber      = color.RGBA{R: 0xF2, G: 0xB2, B: 0x4C, A: 0xFF}
	amberDark  = color.RGBA{R: 0xB8, G: 0x7E, B: 0x26, A: 0xFF}
	darkBG     = color.RGBA{R: 0x0E, G: 0x0F, B: 0x13, A: 0xFF}
	cardBack   = color.RGBA{R: 0x3A, G: 0x3D, B: 0x4A, A: 0xFF}
	cardMid    = color.RGBA{R: 0x55, G: 0x59, B: 0x68, A: 0xFF}
	sky        = color.RGBA{R: 0x2E, G: 0x6E, B: 0x9E, A: 0xFF}
	hill       = color.RGBA{R: 0x3F, G: 0x8F, B: 0x5A, A: 0xFF}
	hillFar    = color.RGBA{R: 0x2F, G: 0x6B, B: 0x45, A: 0xFF}
	sunGlowCol = color.RGBA{R: 0xF2, G: 0xB2, B: 0x4C, A: 0x50}
)

// Generate returns 64x64 and 32x32 icon images for use with ebiten.SetWindowIcon.
func Generate() []image.Image {
	return []image.Image{
		generate(64),
		generate(32),
	}
}

func generate(size int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	s := float64(size)

	fillRect(img, 0, 0, size, size, darkBG)

	// Side cards peek out behind the front one, like the carousel itself.
	fillRoundedRect(img, s*0.04, s*0.26, s*0.30, s*0.48, s*0.05, cardBack)
	fillRoundedRect(img, s*0.66, s*0.26, s*0.30, s*0.48, s*0.05, cardBack)
	fillRoundedRect(img, s*0.12, s*0.20, s*0.30, s*0.60, s*0.05, cardMid)
	fillRoundedRect(img, s*0.58, s*0.20, s*0.30, s*0.60, s*0.05, cardMid)

	drawPhoto(img, s*0.22, s*0.12, s*0.56, s*0.76, s)

	// Dots under the stack, the middle one selected.
	dotY := s * 0.94
	for i, xf := range []float64{0.40, 0.50, 0.60} {
		c := color.Color(cardMid)
		if i == 1 {
			c = amber
		}
		fillCircle(img, s*xf, dotY, s*0.025, c)
	}

	return img
}

// drawPhoto draws the front card: an amber frame around a small landscape.
func drawPhoto(img *image.RGBA, x, y, w, h, s float64) {
	fillRoundedRect(img, x, y, w, h, s*0.06, amber)

	border := s * 0.04
	ix, iy := x+border, y+border
	iw, ih := w-2*border, h-2*border
	fillRoundedRect(img, ix, iy, iw, ih, s*0.03, sky)

	// Sun
	sunX, sunY := ix+iw*0.70, iy+ih*0.28
	fillCircle(img, sunX, sunY, iw*0.20, sunGlowCol)
	fillCircle(img, sunX, sunY, iw*0.11, amber)

	// Hills, clipped to the inner frame.
	bottom := iy + ih
	drawHill(img, ix, iw, bottom, ix+iw*0.25, bottom-ih*0.42, iw*0.55, hillFar)
	drawHill(img, ix, iw, bottom, ix+iw*0.80, bottom-ih*0.32, iw*0.60, hill)

	// Bottom edge shading on the frame.
	for px := int(x + s*0.04); px < int(x+w-s*0.04); px++ {
		blendPixel(img, px, int(y+h)-1, amberDark)
	}
}

// drawHill fills a parabola with its peak at (peakX, peakY) and the given
// half width, between the inner frame's left edge and its bottom.
func drawHill(img *image.RGBA, left, width, bottom, peakX, peakY, halfWidth float64, c color.Color) {
	for px := int(left); px < int(left+width); px++ {
		d := (float64(px) - peakX) / halfWidth
		top := peakY + (bottom-peakY)*math.Min(d*d, 1)
		for py := int(math.Ceil(top)); py < int(bottom); py++ {
			blendPixel(img, px, py, c)
		}
	}
}

func fillRect(img *image.RGBA, x0, y0, w, h int, c color.Color) {
	bounds := img.Bounds()
	for y := y0; y < y0+h && y < bounds.Max.Y; y++ {
		for x := x0; x < x0+w && x < bounds.Max.X; x++ {
			if x >= 0 && y >= 0 {
				blendPixel(img, x, y, c)
			}
		}
	}
}

func fillRoundedRect(img *image.RGBA, xf, yf, wf, hf, rf float64, c color.Color) {
	x0 := int(xf)
	y0 := int(yf)
	x1 := int(xf + wf)
	y1 := int(yf + hf)
	r := rf
	bounds := img.Bounds()

	for y := y0; y <= y1 && y < bounds.Max.Y; y++ {
		for x := x0; x <= x1 && x < bounds.Max.X; x++ {
			if x < 0 || y < 0 {
				continue
			}
			// Check if inside rounded rect
			fx := float64(x)
			fy := float64(y)
			inside := true

			// Check corners
			if fx < xf+r && fy < yf+r {
				// Top-left corner
				dx := xf + r - fx
				dy := yf + r - fy
				if dx*dx+dy*dy > r*r {
					inside = false
				}
			} else if fx > xf+wf-r && fy < yf+r {
				// Top-right corner
				dx := fx - (xf + wf - r)
				dy := yf + r - fy
				if dx*dx+dy*dy > r*r {
					inside = false
				}
			} else if fx < xf+r && fy > yf+hf-r {
				// Bottom-left corner
				dx := xf + r - fx
				dy := fy - (yf + hf - r)
				if dx*dx+dy*dy > r*r {
					inside = false
				}
			} else if fx > xf+wf-r && fy > yf+hf-r {
				// Bottom-right corner
				dx := fx - (xf + wf - r)
				dy := fy - (yf + hf - r)
				if dx*dx+dy*dy > r*r {
					inside = false
				}
			}

			if inside {
				blendPixel(img, x, y, c)
			}
		}
	}
}

func fillCircle(img *image.RGBA, cx, cy, r float64, c color.Color) {
	bounds := img.Bounds()
	x0 := int(cx - r)
	y0 := int(cy - r)
	x1 := int(cx + r + 1)
	y1 := int(cy + r + 1)
	r2 := r * r

	for y := y0; y <= y1 && y < bounds.Max.Y; y++ {
		for x := x0; x <= x1 && x < bounds.Max.X; x++ {
			if x < 0 || y < 0 {
				continue
			}
			dx := float64(x) - cx
			dy := float64(y) - cy
			if dx*dx+dy*dy <= r2 {
				blendPixel(img, x, y, c)
			}
		}
	}
}

// blendPixel alpha-blends color c onto the existing pixel at (x, y).
func blendPixel(img *image.RGBA, x, y int, c color.Color) {
	r0, g0, b0, a0 := c.RGBA()
	if a0 == 0 {
		return
	}
	if a0 == 0xFFFF {
		img.Set(x, y, c)
		return
	}

	// Existing pixel
	existing := img.RGBAAt(x, y)
	er := uint32(existing.R) * 257
	eg := uint32(existing.G) * 257
	eb := uint32(existing.B) * 257

	// c.RGBA() is premultiplied, so only the backdrop is scaled.
	invAlpha := 0xFFFF - a0
	nr := r0 + er*invAlpha/0xFFFF
	ng := g0 + eg*invAlpha/0xFFFF
	nb := b0 + eb*invAlpha/0xFFFF

	img.SetRGBA(x, y, color.RGBA{
		R: uint8(nr >> 8),
		G: uint8(ng >> 8),
		B: uint8(nb >> 8),
		A: 0xFF,
	})
}
