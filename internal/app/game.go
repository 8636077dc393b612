package app

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/depeter/couchgallery/internal/cache"
	"github.com/depeter/couchgallery/internal/carousel"
	"github.com/depeter/couchgallery/internal/config"
	"github.com/depeter/couchgallery/internal/ui"
)

// Game implements ebiten.Game and manages the overall application.
type Game struct {
	Config  *config.Config
	Cache   *cache.ImageCache
	Screens *ui.ScreenManager
	Gallery *ui.GalleryScreen

	Width, Height int
}

// NewGame creates the Game with the gallery as its first screen.
func NewGame(cfg *config.Config, items []carousel.Item, imgCache *cache.ImageCache) *Game {
	g := &Game{
		Config:  cfg,
		Cache:   imgCache,
		Screens: ui.NewScreenManager(),
		Width:   cfg.UI.Width,
		Height:  cfg.UI.Height,
	}
	g.Gallery = ui.NewGalleryScreen(items, imgCache, cfg.Gallery.CarouselOptions(), galleryKeys(cfg.Keybinds))
	g.Screens.Resize(g.Width, g.Height)
	g.Screens.Push(g.Gallery)
	return g
}

func (g *Game) Update() error {
	kb := g.Config.Keybinds

	// Alt+Enter toggles fullscreen
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) && ebiten.IsKeyPressed(ebiten.KeyAlt) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	} else if keyJustPressed(kb.Fullscreen) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}

	if keyJustPressed(kb.Debug) {
		ui.ToggleDebugOverlay()
	}

	if err := g.Screens.Update(); err != nil {
		return err
	}

	ui.UpdateInputState()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(ui.ColorBackground)
	g.Screens.Draw(screen)
	if lines, ok := g.debugLines(); ok {
		ui.DrawDebugOverlay(screen, lines)
	}
}

// debugLines collects the overlay lines; nothing is formatted while the
// overlay is hidden.
func (g *Game) debugLines() ([]string, bool) {
	if !ui.DebugOverlayVisible() {
		return nil, false
	}
	return g.Screens.DebugLines(), true
}

// Layout follows the window size so the gallery can switch orientation.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 {
		g.Width, g.Height = outsideWidth, outsideHeight
		g.Screens.Resize(outsideWidth, outsideHeight)
	}
	return g.Width, g.Height
}
