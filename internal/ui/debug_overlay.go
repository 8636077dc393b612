package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var debugOverlayVisible bool

// ToggleDebugOverlay shows or hides the debug overlay.
func ToggleDebugOverlay() {
	debugOverlayVisible = !debugOverlayVisible
}

// DebugOverlayVisible reports whether the overlay is shown.
func DebugOverlayVisible() bool {
	return debugOverlayVisible
}

// DrawDebugOverlay draws the debug overlay if visible.
func DrawDebugOverlay(screen *ebiten.Image, lines []string) {
	if !debugOverlayVisible {
		return
	}

	const (
		padX    = 16.0
		padY    = 12.0
		lineH   = 18.0
		marginR = 20.0
		marginT = TopBarHeight + 12.0
	)

	var pressedKeys []ebiten.Key
	for k := ebiten.Key(0); k <= ebiten.KeyMax; k++ {
		if ebiten.IsKeyPressed(k) {
			pressedKeys = append(pressedKeys, k)
		}
	}

	// Calculate overlay height
	rows := 2 // header + separator
	rows += max(len(lines), 1)
	rows += 2 // blank + keys header
	rows += max(len(pressedKeys), 1)
	panelH := float64(rows)*lineH + padY*2
	panelW := 360.0
	px := float64(screen.Bounds().Dx()) - panelW - marginR
	py := marginT

	// Background
	vector.DrawFilledRect(screen, float32(px), float32(py), float32(panelW), float32(panelH), ColorOverlay, false)

	x := px + padX
	y := py + padY

	DrawText(screen, fmt.Sprintf("Debug (%.0f TPS, %.0f FPS)", ebiten.ActualTPS(), ebiten.ActualFPS()), x, y, FontSizeSmall, ColorPrimary)
	y += lineH

	DrawText(screen, "--- carousel ---", x, y, FontSizeSmall, ColorTextMuted)
	y += lineH

	if len(lines) == 0 {
		DrawText(screen, "(none)", x, y, FontSizeSmall, ColorTextSecondary)
		y += lineH
	} else {
		for _, line := range lines {
			DrawText(screen, line, x, y, FontSizeSmall, ColorText)
			y += lineH
		}
	}

	y += lineH * 0.5
	DrawText(screen, "--- keys pressed ---", x, y, FontSizeSmall, ColorTextMuted)
	y += lineH

	if len(pressedKeys) == 0 {
		DrawText(screen, "(none)", x, y, FontSizeSmall, ColorTextSecondary)
	} else {
		for _, k := range pressedKeys {
			DrawText(screen, fmt.Sprintf("  %s (%d)", k.String(), int(k)), x, y, FontSizeSmall, ColorText)
			y += lineH
		}
	}
}
