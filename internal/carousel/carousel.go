package carousel

import "time"

// Options configures a Carousel. Zero durations take the package defaults.
type Options struct {
	Breakpoint float64
	// Autoplay is the initial AutoplayEnabled state.
	Autoplay bool

	Interval    time.Duration
	ScrollPause time.Duration
	DragPause   time.Duration
	TogglePause time.Duration
	MountDelay  time.Duration

	// Clock returns the current time. Defaults to time.Now.
	Clock func() time.Time
	// OnActiveChange is called after the active index changes.
	OnActiveChange func(index int)
}

func (o *Options) setDefaults() {
	if o.Breakpoint <= 0 {
		o.Breakpoint = DefaultBreakpoint
	}
	if o.Interval <= 0 {
		o.Interval = DefaultInterval
	}
	if o.ScrollPause <= 0 {
		o.ScrollPause = DefaultScrollPause
	}
	if o.DragPause <= 0 {
		o.DragPause = DefaultDragPause
	}
	if o.TogglePause <= 0 {
		o.TogglePause = DefaultTogglePause
	}
	if o.MountDelay <= 0 {
		o.MountDelay = DefaultMountDelay
	}
	if o.Clock == nil {
		o.Clock = time.Now
	}
}

// Key is a navigation key understood by the carousel.
type Key int

const (
	KeyLeft Key = iota
	KeyRight
	KeyUp
	KeyDown
)

type dragState struct {
	active      bool
	pointer     int
	start       float64
	startScroll float64
}

// Carousel keeps the active index of a gallery in sync with its viewport.
// Every input (drag, keys, clicks, autoplay) ends up as a scroll of the
// viewport; the active index is only ever derived from geometry.
//
// A Carousel is driven from a single UI loop: call Update once per frame and
// the input methods as events arrive. It is not safe for concurrent use.
type Carousel struct {
	items []Item
	vp    Viewport
	opts  Options

	active  int
	frame   Frame
	laidOut bool

	autoplay *Autoplay
	frames   FrameScheduler
	drag     dragState

	mounted  bool
	mountAt  time.Time
	centered bool
	detach   func()
}

// New creates a carousel over items laid out by vp. It does nothing until
// mounted.
func New(items []Item, vp Viewport, opts Options) *Carousel {
	opts.setDefaults()
	return &Carousel{
		items:    items,
		vp:       vp,
		opts:     opts,
		autoplay: NewAutoplay(opts.Interval),
	}
}

func (c *Carousel) now() time.Time { return c.opts.Clock() }

func (c *Carousel) Items() []Item { return c.items }

func (c *Carousel) Len() int { return len(c.items) }

// Active is the index of the item closest to the viewport centre.
func (c *Carousel) Active() int { return c.active }

func (c *Carousel) Mounted() bool { return c.mounted }

func (c *Carousel) Dragging() bool { return c.drag.active }

// Orientation is the orientation of the last layout pass.
func (c *Carousel) Orientation() Orientation { return c.frame.Orientation }

// Style returns the last computed style of item i.
func (c *Carousel) Style(i int) (Style, bool) {
	if !c.laidOut || i < 0 || i >= len(c.frame.Styles) || !c.frame.Present[i] {
		return Style{}, false
	}
	return c.frame.Styles[i], true
}

// Frame returns a copy of the last layout pass.
func (c *Carousel) Frame() Frame {
	f := c.frame
	f.Styles = append([]Style(nil), c.frame.Styles...)
	f.Present = append([]bool(nil), c.frame.Present...)
	return f
}

// AutoplayEnabled is the user-controlled autoplay toggle.
func (c *Carousel) AutoplayEnabled() bool { return c.opts.Autoplay }

func (c *Carousel) AutoplayState() AutoplayState { return c.autoplay.State(c.now()) }

func (c *Carousel) PauseUntil() time.Time { return c.autoplay.PauseUntil() }

// PendingFrame reports whether a layout pass is waiting for the next frame.
func (c *Carousel) PendingFrame() bool { return c.frames.IsPending() }

// Mount attaches the carousel to its viewport, arms autoplay and schedules
// the initial centring of the first item. An empty item list mounts nothing.
func (c *Carousel) Mount() {
	if c.mounted || len(c.items) == 0 || c.vp == nil {
		return
	}
	now := c.now()
	c.mounted = true
	c.mountAt = now
	c.centered = false
	c.detach = c.vp.OnScroll(c.schedule)
	c.autoplay.SetEnabled(c.opts.Autoplay, now)
	c.schedule()
}

// Unmount cancels the pending layout pass, stops autoplay and detaches from
// the viewport.
func (c *Carousel) Unmount() {
	if !c.mounted {
		return
	}
	c.frames.Cancel()
	c.autoplay.SetEnabled(false, c.now())
	if c.detach != nil {
		c.detach()
		c.detach = nil
	}
	c.drag = dragState{}
	c.mounted = false
}

// Update advances one frame: animates the viewport, runs the pending layout
// pass, fires the initial centring and the autoplay tick.
func (c *Carousel) Update() {
	if !c.mounted {
		return
	}
	if a, ok := c.vp.(Animator); ok {
		a.Animate()
	}
	c.frames.RunFrame()

	now := c.now()
	if !c.centered && !now.Before(c.mountAt.Add(c.opts.MountDelay)) {
		c.centered = true
		c.ScrollToIndex(0, false)
	}
	if c.autoplay.Due(now) {
		c.ScrollToIndex((c.active+1)%len(c.items), true)
	}
}

func (c *Carousel) schedule() {
	c.frames.Schedule(c.UpdateTransforms)
}

// UpdateTransforms recomputes every item's style from the current geometry
// and moves the active index to the item closest to the centre.
func (c *Carousel) UpdateTransforms() {
	f, ok := Layout(c.vp, c.opts.Breakpoint)
	if !ok {
		return
	}
	c.frame = f
	c.laidOut = true
	if f.Closest >= 0 && f.Closest != c.active {
		c.active = f.Closest
		if c.opts.OnActiveChange != nil {
			c.opts.OnActiveChange(c.active)
		}
	}
}

// ScrollToIndex scrolls so item i sits at the viewport centre and holds off
// autoplay for the scroll pause window.
func (c *Carousel) ScrollToIndex(i int, smooth bool) {
	if !c.mounted || i < 0 || i >= len(c.items) {
		return
	}
	rect := c.vp.Bounds()
	if rect.Empty() {
		return
	}
	item, ok := c.vp.ItemBounds(i)
	if !ok {
		return
	}
	o := OrientationFor(rect.W, c.opts.Breakpoint)
	delta := item.AxisCenter(o) - rect.AxisCenter(o)
	c.vp.ScrollTo(o, c.vp.ScrollOffset(o)+delta, smooth)
	c.autoplay.Pause(c.now().Add(c.opts.ScrollPause))
	c.schedule()
}

// orientation reads the orientation from live geometry.
func (c *Carousel) orientation() (Orientation, bool) {
	rect := c.vp.Bounds()
	if rect.Empty() {
		return 0, false
	}
	return OrientationFor(rect.W, c.opts.Breakpoint), true
}

// PointerDown starts a drag. A press from another pointer while a drag is
// active is ignored.
func (c *Carousel) PointerDown(id int, x, y float64) {
	if !c.mounted || (c.drag.active && id != c.drag.pointer) {
		return
	}
	o, ok := c.orientation()
	if !ok {
		return
	}
	c.drag = dragState{
		active:      true,
		pointer:     id,
		start:       axisPos(o, x, y),
		startScroll: c.vp.ScrollOffset(o),
	}
	if pc, ok := c.vp.(PointerCapturer); ok {
		_ = pc.CapturePointer(id)
	}
	c.autoplay.Pause(c.now().Add(c.opts.DragPause))
}

// PointerMove drags the viewport: moving the pointer back pulls content
// forward.
func (c *Carousel) PointerMove(id int, x, y float64) {
	if !c.mounted || !c.drag.active || id != c.drag.pointer {
		return
	}
	o, ok := c.orientation()
	if !ok {
		return
	}
	c.vp.SetScrollOffset(o, c.drag.startScroll+(c.drag.start-axisPos(o, x, y)))
	c.schedule()
}

// PointerUp ends a drag and snaps to the item closest to the centre.
func (c *Carousel) PointerUp(id int) {
	if !c.mounted || !c.drag.active || id != c.drag.pointer {
		return
	}
	c.drag = dragState{}
	if pc, ok := c.vp.(PointerCapturer); ok {
		_ = pc.ReleasePointer(id)
	}
	c.ScrollToIndex(ClosestIndex(c.vp, c.opts.Breakpoint), true)
}

// PointerCancel ends a drag the same way a release does.
func (c *Carousel) PointerCancel(id int) {
	c.PointerUp(id)
}

// KeyPress steps one item. Keys clamp at both ends.
func (c *Carousel) KeyPress(k Key) {
	if !c.mounted {
		return
	}
	switch k {
	case KeyRight, KeyDown:
		c.ScrollToIndex(min(len(c.items)-1, c.active+1), true)
	case KeyLeft, KeyUp:
		c.ScrollToIndex(max(0, c.active-1), true)
	}
}

// Click selects item i, as from the item itself, a dot or a thumbnail.
func (c *Carousel) Click(i int) {
	c.ScrollToIndex(i, true)
}

// Resize reacts to a viewport size change. The selection is left to the next
// layout pass.
func (c *Carousel) Resize() {
	if !c.mounted {
		return
	}
	c.schedule()
}

// SetAutoplay turns autoplay on or off and briefly pauses it so the toggle
// itself does not cause an immediate advance.
func (c *Carousel) SetAutoplay(enabled bool) {
	c.opts.Autoplay = enabled
	now := c.now()
	if c.mounted {
		c.autoplay.SetEnabled(enabled, now)
	}
	c.autoplay.Pause(now.Add(c.opts.TogglePause))
}

// TogglePlay flips autoplay, as the play/pause control does.
func (c *Carousel) TogglePlay() {
	c.SetAutoplay(!c.opts.Autoplay)
}
