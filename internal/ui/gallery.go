package ui

import (
	"fmt"
	"image"
	"math"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/colorm"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/depeter/couchgallery/internal/cache"
	"github.com/depeter/couchgallery/internal/carousel"
)

// GalleryKeys are the configurable keys the gallery reacts to besides the
// arrows.
type GalleryKeys struct {
	PlayPause ebiten.Key
	Open      ebiten.Key
}

// press tracks one pointer from press to release.
type press struct {
	id       int
	x, y     float64
	dragging bool
	onStage  bool
}

// GalleryScreen shows the carousel with its counter, play control, dots and
// thumbnails.
type GalleryScreen struct {
	Title string
	Keys  GalleryKeys

	items    []carousel.Item
	strip    *carousel.Strip
	carousel *carousel.Carousel
	thumbs   *ThumbStrip
	imgCache *cache.ImageCache
	clock    func() time.Time

	regions galleryRegions
	dots    []carousel.Rect

	mu        sync.Mutex
	images    []*ebiten.Image
	broken    []error
	requested bool

	cards       []*ebiten.Image
	placeholder *ebiten.Image

	press    *press
	events   []PointerEvent
	hover    string
	hoverX   float64
	hoverY   float64
	playOver bool
}

// NewGalleryScreen creates the gallery over items. opts configures the
// carousel engine.
func NewGalleryScreen(items []carousel.Item, imgCache *cache.ImageCache, opts carousel.Options, keys GalleryKeys) *GalleryScreen {
	stripOpts := carousel.DefaultStripOptions()
	if opts.Breakpoint > 0 {
		stripOpts.Breakpoint = opts.Breakpoint
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	strip := carousel.NewStrip(len(items), stripOpts)
	gs := &GalleryScreen{
		Title:    "Gallery",
		Keys:     keys,
		items:    items,
		strip:    strip,
		thumbs:   NewThumbStrip(len(items)),
		imgCache: imgCache,
		clock:    opts.Clock,
		images:   make([]*ebiten.Image, len(items)),
		broken:   make([]error, len(items)),
		cards:    make([]*ebiten.Image, len(items)),
	}
	gs.carousel = carousel.New(items, strip, opts)
	return gs
}

func (gs *GalleryScreen) Name() string { return "Gallery" }

// Carousel exposes the engine driving the screen.
func (gs *GalleryScreen) Carousel() *carousel.Carousel { return gs.carousel }

func (gs *GalleryScreen) OnEnter() {
	gs.carousel.Mount()
	gs.loadImages()
}

func (gs *GalleryScreen) OnExit() {
	gs.carousel.Unmount()
	gs.press = nil
}

// Resize lays the screen out for a new window size. The active item stays
// selected across orientation changes.
func (gs *GalleryScreen) Resize(width, height int) {
	gs.regions = layoutGallery(width, height)
	gs.dots = dotRects(len(gs.items), gs.regions.Dots)
	gs.strip.Resize(gs.regions.Stage)
	gs.thumbs.SetArea(gs.regions.Thumbs)
	gs.carousel.Resize()
}

func (gs *GalleryScreen) loadImages() {
	if gs.requested || gs.imgCache == nil {
		return
	}
	gs.requested = true
	for i, it := range gs.items {
		gs.imgCache.LoadAsync(it.Src, func(img image.Image, err error) {
			var eimg *ebiten.Image
			if err == nil {
				eimg = ebiten.NewImageFromImage(img)
			}
			gs.mu.Lock()
			defer gs.mu.Unlock()
			gs.images[i] = eimg
			gs.broken[i] = err
		})
	}
}

// image returns the loaded image for item i and whether it failed.
func (gs *GalleryScreen) image(i int) (*ebiten.Image, bool) {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	return gs.images[i], gs.broken[i] != nil
}

func (gs *GalleryScreen) Update() (*ScreenTransition, error) {
	if len(gs.items) == 0 {
		return nil, nil
	}

	dir, enter, _ := InputState()
	switch dir {
	case DirLeft:
		gs.carousel.KeyPress(carousel.KeyLeft)
	case DirRight:
		gs.carousel.KeyPress(carousel.KeyRight)
	case DirUp:
		gs.carousel.KeyPress(carousel.KeyUp)
	case DirDown:
		gs.carousel.KeyPress(carousel.KeyDown)
	}
	if inpututil.IsKeyJustPressed(gs.Keys.PlayPause) {
		gs.carousel.TogglePlay()
	}
	open := -1
	if (enter || (gs.Keys.Open != ebiten.KeyEnter && inpututil.IsKeyJustPressed(gs.Keys.Open))) && !gs.carousel.Dragging() {
		open = gs.carousel.Active()
	}

	gs.handleWheel()

	gs.events = AppendPointerEvents(gs.events[:0])
	for _, ev := range gs.events {
		if i := gs.handlePointer(ev); i >= 0 {
			open = i
		}
	}

	gs.carousel.Update()
	gs.thumbs.SetActive(gs.carousel.Active())
	gs.thumbs.AnimateScroll()
	gs.updateHover()

	if open >= 0 {
		img, broken := gs.image(open)
		var err error
		if broken {
			err = gs.imgCache.Failed(gs.items[open].Src)
		}
		return &ScreenTransition{
			Type:   TransitionPush,
			Screen: NewViewerScreen(gs.items[open], img, err, carousel.Counter(open, len(gs.items))),
		}, nil
	}
	return nil, nil
}

// handleWheel scrolls the strip directly, like a trackpad would.
func (gs *GalleryScreen) handleWheel() {
	wx, wy := MouseWheelDelta()
	if wx == 0 && wy == 0 {
		return
	}
	cx, cy := ebiten.CursorPosition()
	if !gs.regions.Stage.Contains(float64(cx), float64(cy)) {
		return
	}
	o := gs.strip.Orientation()
	delta := wy
	if o == carousel.Horizontal && wx != 0 {
		delta = wx
	}
	gs.strip.SetScrollOffset(o, gs.strip.Offset()-delta*ScrollWheelSpeed)
}

// handlePointer feeds one pointer event to the carousel. It returns the item
// to open when a click lands on the already active item, or -1.
func (gs *GalleryScreen) handlePointer(ev PointerEvent) int {
	switch ev.Kind {
	case PointerDown:
		if gs.press != nil {
			return -1
		}
		gs.press = &press{id: ev.ID, x: ev.X, y: ev.Y, onStage: gs.regions.Stage.Contains(ev.X, ev.Y)}
		if gs.press.onStage {
			gs.carousel.PointerDown(ev.ID, ev.X, ev.Y)
		}

	case PointerMove:
		p := gs.press
		if p == nil || p.id != ev.ID {
			return -1
		}
		if !p.dragging && math.Hypot(ev.X-p.x, ev.Y-p.y) > DragDeadZone {
			p.dragging = true
		}
		if p.dragging && p.onStage {
			gs.carousel.PointerMove(ev.ID, ev.X, ev.Y)
		}

	case PointerUp:
		p := gs.press
		if p == nil || p.id != ev.ID {
			return -1
		}
		gs.press = nil
		if p.onStage {
			gs.carousel.PointerUp(ev.ID)
		}
		if p.dragging {
			return -1
		}
		return gs.click(ev.X, ev.Y)
	}
	return -1
}

// click handles a press and release that did not turn into a drag.
func (gs *GalleryScreen) click(x, y float64) int {
	if gs.regions.Play.Contains(x, y) {
		gs.carousel.TogglePlay()
		return -1
	}
	if i := hitRect(gs.dots, x, y); i >= 0 {
		gs.carousel.Click(i)
		return -1
	}
	if i := gs.thumbs.HitTest(x, y); i >= 0 {
		gs.carousel.Click(i)
		return -1
	}
	if i := gs.itemAt(x, y); i >= 0 {
		if i == gs.carousel.Active() {
			return i
		}
		gs.carousel.Click(i)
	}
	return -1
}

// itemAt returns the topmost item drawn under (x, y), or -1.
func (gs *GalleryScreen) itemAt(x, y float64) int {
	if !gs.regions.Stage.Contains(x, y) {
		return -1
	}
	view := gs.carousel.View()
	order := carousel.PaintOrder(view.Items)
	for k := len(order) - 1; k >= 0; k-- {
		i := order[k]
		r, ok := gs.strip.ItemBounds(i)
		if !ok {
			continue
		}
		if carousel.ProjectedRect(r, view.Items[i].DrawStyle()).Contains(x, y) {
			return i
		}
	}
	return -1
}

func (gs *GalleryScreen) updateHover() {
	cx, cy := ebiten.CursorPosition()
	x, y := float64(cx), float64(cy)
	gs.hover, gs.hoverX, gs.hoverY = "", x, y
	gs.playOver = gs.regions.Play.Contains(x, y)
	if gs.press != nil && gs.press.dragging {
		return
	}

	view := gs.carousel.View()
	if gs.playOver {
		gs.hover = view.PlayLabel
		return
	}
	if i := hitRect(gs.dots, x, y); i >= 0 {
		gs.hover = view.Dots[i].Label
		return
	}
	if i := gs.thumbs.HitTest(x, y); i >= 0 {
		gs.hover = view.Thumbs[i].Label
		return
	}
	if i := gs.itemAt(x, y); i >= 0 {
		gs.hover = view.Items[i].Label
	}
}

func (gs *GalleryScreen) Draw(dst *ebiten.Image) {
	view := gs.carousel.View()
	if view.Empty() {
		return
	}

	stage := dst.SubImage(rectImage(gs.regions.Stage)).(*ebiten.Image)
	for _, i := range carousel.PaintOrder(view.Items) {
		gs.drawCard(stage, view.Items[i])
	}

	gs.drawTopBar(dst, view)
	gs.drawDots(dst, view.Dots)
	gs.thumbs.Draw(dst, view.Thumbs, gs.image)
	gs.drawTooltip(dst)
}

func (gs *GalleryScreen) drawTopBar(dst *ebiten.Image, view carousel.View) {
	top := gs.regions.Top
	vector.DrawFilledRect(dst, 0, 0, float32(top.W), float32(top.H), ColorBackground, false)
	vector.DrawFilledRect(dst, 0, float32(top.H-1), float32(top.W), 1, ColorSurfaceHover, false)

	DrawText(dst, gs.Title, TopBarPadding, (TopBarHeight-FontSizeTitle)/2-2, FontSizeTitle, ColorText)

	play := gs.regions.Play
	icon := drawPlayIcon
	if view.Playing {
		icon = drawPauseIcon
	}
	drawIconButton(dst, view.PlayLabel, float32(play.X), float32(play.Y), float32(play.W), float32(play.H), gs.playOver, icon)

	_, h := MeasureText(view.Counter, FontSizeHeading)
	DrawTextRight(dst, view.Counter, play.X-24, (TopBarHeight-h)/2, FontSizeHeading, ColorTextSecondary)
}

func (gs *GalleryScreen) drawDots(dst *ebiten.Image, dots []carousel.Control) {
	for _, d := range dots {
		cx, cy := gs.dots[d.Index].Center()
		if d.Selected {
			vector.DrawFilledCircle(dst, float32(cx), float32(cy), DotRadius+1, ColorPrimary, true)
		} else {
			vector.StrokeCircle(dst, float32(cx), float32(cy), DotRadius, 1.5, ColorTextMuted, true)
		}
	}
}

func (gs *GalleryScreen) drawTooltip(dst *ebiten.Image) {
	if gs.hover == "" {
		return
	}
	w, h := MeasureText(gs.hover, FontSizeSmall)
	x := math.Min(gs.hoverX+14, float64(dst.Bounds().Dx())-w-TooltipPadding*2)
	y := gs.hoverY + 18
	if y+h+TooltipPadding*2 > float64(dst.Bounds().Dy()) {
		y = gs.hoverY - h - TooltipPadding*2 - 4
	}
	vector.DrawFilledRect(dst, float32(x), float32(y), float32(w+TooltipPadding*2), float32(h+TooltipPadding*2), ColorOverlay, false)
	DrawText(dst, gs.hover, x+TooltipPadding, y+TooltipPadding, FontSizeSmall, ColorText)
}

// drawCard renders item v into its offscreen card and composites it with the
// item's style.
func (gs *GalleryScreen) drawCard(dst *ebiten.Image, v carousel.ItemView) {
	r, ok := gs.strip.ItemBounds(v.Index)
	if !ok || r.W < 1 || r.H < 1 {
		return
	}
	st := v.DrawStyle()
	if !intersects(carousel.ProjectedRect(r, st), gs.regions.Stage) {
		return
	}

	card := gs.cardImage(v.Index, int(r.W), int(r.H))
	card.Fill(ColorSurface)
	cw, ch := float64(card.Bounds().Dx()), float64(card.Bounds().Dy())

	img, broken := gs.image(v.Index)
	switch {
	case img != nil:
		op := &ebiten.DrawImageOptions{}
		b := img.Bounds()
		op.GeoM = coverGeoM(float64(b.Dx()), float64(b.Dy()), cw, ch, st.ImageScale, st.ImageShiftY)
		op.Filter = ebiten.FilterLinear
		card.DrawImage(img, op)
	case broken:
		gs.drawBroken(card, cw, ch)
	default:
		DrawTextCentered(card, "Loading…", cw/2, ch/2, FontSizeSmall, ColorTextMuted)
	}

	// Caption
	vector.DrawFilledRect(card, 0, float32(ch-CaptionHeight), float32(cw), CaptionHeight, ColorCaption, false)
	title := truncateText(v.Label, cw-CaptionPadding*2, FontSizeBody)
	DrawText(card, title, CaptionPadding, ch-CaptionHeight+10, FontSizeBody, ColorText)
	if v.Item.Subtitle != "" {
		sub := truncateText(v.Item.Subtitle, cw-CaptionPadding*2, FontSizeCaption)
		DrawText(card, sub, CaptionPadding, ch-CaptionHeight+32, FontSizeCaption, ColorTextSecondary)
	}

	if v.Active {
		vector.StrokeRect(card, CardBorder/2, CardBorder/2, float32(cw-CardBorder), float32(ch-CardBorder), CardBorder, ColorFocusBorder, false)
		drawExpandIcon(card, float32(cw-24), 24, 8, ColorText)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM = cardGeoM(r, st)
	op.ColorScale.ScaleAlpha(float32(st.Opacity))
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(card, op)
}

// drawBroken draws the failed-image placeholder, partly desaturated.
func (gs *GalleryScreen) drawBroken(card *ebiten.Image, cw, ch float64) {
	if gs.placeholder == nil {
		gs.placeholder = ebiten.NewImage(160, 120)
		gs.placeholder.Fill(ColorSurfaceHover)
		drawBrokenIcon(gs.placeholder, 80, 48, 22, ColorPrimary)
		DrawTextCentered(gs.placeholder, "Image unavailable", 80, 96, FontSizeCaption, ColorError)
	}
	var cm colorm.ColorM
	cm.ChangeHSV(0, BrokenSaturation, 1)
	op := &colorm.DrawImageOptions{}
	op.GeoM = coverGeoM(160, 120, cw, ch, 1, 0)
	op.Filter = ebiten.FilterLinear
	colorm.DrawImage(card, gs.placeholder, cm, op)
}

// cardImage returns the offscreen image for item i, reallocated when the
// item's size changes.
func (gs *GalleryScreen) cardImage(i, w, h int) *ebiten.Image {
	if c := gs.cards[i]; c != nil {
		if b := c.Bounds(); b.Dx() == w && b.Dy() == h {
			return c
		}
		c.Deallocate()
	}
	gs.cards[i] = ebiten.NewImage(w, h)
	return gs.cards[i]
}

func intersects(a, b carousel.Rect) bool {
	return a.X < b.X+b.W && b.X < a.X+a.W && a.Y < b.Y+b.H && b.Y < a.Y+a.H
}

// DebugLines reports the engine state for the debug overlay.
func (gs *GalleryScreen) DebugLines() []string {
	c := gs.carousel
	pause := c.PauseUntil().Sub(gs.clock())
	if pause < 0 {
		pause = 0
	}
	return []string{
		fmt.Sprintf("orientation: %s", gs.strip.Orientation()),
		fmt.Sprintf("active: %d / %d", c.Active(), c.Len()),
		fmt.Sprintf("autoplay: %s (enabled=%t)", c.AutoplayState(), c.AutoplayEnabled()),
		fmt.Sprintf("pause left: %s", pause.Truncate(time.Millisecond)),
		fmt.Sprintf("offset: %.1f -> %.1f", gs.strip.Offset(), gs.strip.Target()),
		fmt.Sprintf("dragging: %t  pending frame: %t", c.Dragging(), c.PendingFrame()),
	}
}
