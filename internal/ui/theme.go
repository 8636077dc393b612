package ui

import "image/color"

// Colors: dark gallery theme
var (
	ColorBackground    = color.RGBA{R: 0x0E, G: 0x0F, B: 0x13, A: 0xFF}
	ColorSurface       = color.RGBA{R: 0x1A, G: 0x1C, B: 0x23, A: 0xFF}
	ColorSurfaceHover  = color.RGBA{R: 0x26, G: 0x29, B: 0x33, A: 0xFF}
	ColorPrimary       = color.RGBA{R: 0xF2, G: 0xB2, B: 0x4C, A: 0xFF} // warm amber
	ColorPrimaryDark   = color.RGBA{R: 0xB8, G: 0x82, B: 0x2E, A: 0xFF}
	ColorText          = color.RGBA{R: 0xEC, G: 0xEC, B: 0xEC, A: 0xFF}
	ColorTextSecondary = color.RGBA{R: 0x9A, G: 0x9C, B: 0xA6, A: 0xFF}
	ColorTextMuted     = color.RGBA{R: 0x5E, G: 0x61, B: 0x6C, A: 0xFF}
	ColorFocusBorder   = color.RGBA{R: 0xF2, G: 0xB2, B: 0x4C, A: 0xFF}
	ColorOverlay       = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xC0}
	ColorCaption       = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0x90}
	ColorError         = color.RGBA{R: 0xE0, G: 0x40, B: 0x40, A: 0xFF}
)

// Layout constants
const (
	TopBarHeight  = 64
	TopBarPadding = 32

	PlayButtonW = 112
	PlayButtonH = 36

	DotsRowHeight = 32
	DotRadius     = 5
	DotGap        = 18

	ThumbWidth     = 96
	ThumbHeight    = 64
	ThumbGap       = 12
	ThumbRowHeight = ThumbHeight + 24
	ThumbFocusPad  = 3

	CardBorder     = 3
	CaptionHeight  = 56
	CaptionPadding = 16

	TooltipPadding = 8

	FontSizeTitle   = 26
	FontSizeHeading = 20
	FontSizeBody    = 16
	FontSizeSmall   = 13
	FontSizeCaption = 11

	ScrollAnimSpeed = 0.12

	// ScrollWheelSpeed is pixels per mouse wheel scroll unit.
	ScrollWheelSpeed = 60

	// DragDeadZone is how far a pointer moves before a press becomes a drag.
	DragDeadZone = 4

	// BrokenSaturation is the saturation left on a broken image placeholder.
	BrokenSaturation = 0.7
)
