package carousel

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMountCentersFirstItem(t *testing.T) {
	c, strip, clk := newTestCarousel(6, wide, false)
	strip.SetScrollOffset(Horizontal, 300)

	c.Mount()
	require.True(t, c.Mounted())
	run(c, clk, 50*time.Millisecond)
	assert.Equal(t, 300.0, strip.Offset(), "initial centring waits for the mount delay")

	run(c, clk, 20*time.Millisecond)
	assert.Equal(t, 0.0, strip.Offset(), "first item centred instantly")
	assert.True(t, c.PauseUntil().After(clk.Now()))

	run(c, clk, frameDur)
	assert.Equal(t, 0, c.Active())
	_, ok := c.Style(0)
	assert.True(t, ok)
}

func TestScrollToIndexSelectsItem(t *testing.T) {
	c, strip, clk := newTestCarousel(6, wide, false)
	c.Mount()
	run(c, clk, 100*time.Millisecond)

	for _, i := range []int{3, 0, 5, 1, 4, 2} {
		c.ScrollToIndex(i, true)
		settle(c, strip, clk)
		assert.Equal(t, i, c.Active(), "smooth scroll to %d", i)

		c.ScrollToIndex((i+3)%6, false)
		run(c, clk, frameDur)
		assert.Equal(t, (i+3)%6, c.Active(), "instant scroll to %d", (i+3)%6)
	}
}

func TestScrollToIndexVertical(t *testing.T) {
	c, strip, clk := newTestCarousel(5, narrow, false)
	c.Mount()
	run(c, clk, 100*time.Millisecond)

	c.ScrollToIndex(4, true)
	settle(c, strip, clk)
	assert.Equal(t, 4, c.Active())
	assert.Equal(t, Vertical, c.Orientation())
	s, ok := c.Style(4)
	require.True(t, ok)
	assert.Equal(t, 0.0, s.RotateY)
}

func TestScrollToIndexPausesAutoplay(t *testing.T) {
	c, _, clk := newTestCarousel(6, wide, false)
	c.Mount()
	run(c, clk, 100*time.Millisecond)

	c.ScrollToIndex(2, true)
	assert.Equal(t, clk.Now().Add(DefaultScrollPause), c.PauseUntil())
	assert.True(t, c.PendingFrame(), "layout recompute scheduled right away")
}

func TestScrollToIndexOutOfRange(t *testing.T) {
	c, strip, clk := newTestCarousel(3, wide, false)
	c.Mount()
	run(c, clk, 100*time.Millisecond)
	before := c.PauseUntil()

	c.ScrollToIndex(-1, true)
	c.ScrollToIndex(3, true)
	assert.Equal(t, before, c.PauseUntil())
	assert.True(t, strip.Settled())
}

func TestUpdateTransformsIdempotent(t *testing.T) {
	c, strip, clk := newTestCarousel(6, wide, false)
	c.Mount()
	run(c, clk, 100*time.Millisecond)
	strip.SetScrollOffset(Horizontal, 2*widePitch+30)

	c.UpdateTransforms()
	first, active := c.Frame(), c.Active()
	c.UpdateTransforms()
	assert.Equal(t, first, c.Frame())
	assert.Equal(t, active, c.Active())
	assert.Equal(t, 2, active)
}

func TestLayoutCoalescedPerFrame(t *testing.T) {
	c, strip, clk := newTestCarousel(6, wide, false)
	c.Mount()
	run(c, clk, 100*time.Millisecond)
	runs := c.frames.Runs()

	for i := 1; i <= 5; i++ {
		strip.SetScrollOffset(Horizontal, float64(i)*40)
	}
	c.Resize()
	assert.Equal(t, runs, c.frames.Runs(), "nothing runs until the frame")

	run(c, clk, frameDur)
	assert.Equal(t, runs+1, c.frames.Runs())
}

func TestAutoplayAdvancesAndWraps(t *testing.T) {
	c, _, clk := newTestCarousel(6, wide, true)
	c.Mount()

	var seen []int
	for k := 1; k <= 6; k++ {
		if k == 1 {
			run(c, clk, DefaultInterval+3*time.Second)
		} else {
			run(c, clk, DefaultInterval)
		}
		seen = append(seen, c.Active())
	}
	assert.Equal(t, []int{1, 2, 3, 4, 5, 0}, seen)
	assert.Equal(t, Armed, c.AutoplayState(), "the post-scroll pause is shorter than the interval")
}

func TestManualInteractionPausesAutoplay(t *testing.T) {
	c, _, clk := newTestCarousel(6, wide, true)
	c.Mount()
	run(c, clk, 3000*time.Millisecond)

	c.PointerDown(1, 600, 300)
	assert.Equal(t, Paused, c.AutoplayState())
	c.PointerUp(1)

	run(c, clk, 700*time.Millisecond) // past the 3.6s tick
	assert.Equal(t, 0, c.Active(), "tick inside the pause window is skipped")
	assert.True(t, c.AutoplayEnabled(), "manual use never disables autoplay")

	run(c, clk, 3600*time.Millisecond+time.Second)
	assert.Equal(t, 1, c.Active(), "next tick after the window advances")
}

func TestKeyboardClamps(t *testing.T) {
	c, strip, clk := newTestCarousel(6, wide, false)
	c.Mount()
	run(c, clk, 100*time.Millisecond)

	c.KeyPress(KeyLeft)
	settle(c, strip, clk)
	assert.Equal(t, 0, c.Active())
	c.KeyPress(KeyUp)
	settle(c, strip, clk)
	assert.Equal(t, 0, c.Active())

	c.KeyPress(KeyRight)
	settle(c, strip, clk)
	assert.Equal(t, 1, c.Active())
	c.KeyPress(KeyDown)
	settle(c, strip, clk)
	assert.Equal(t, 2, c.Active())

	c.Click(5)
	settle(c, strip, clk)
	c.KeyPress(KeyRight)
	settle(c, strip, clk)
	assert.Equal(t, 5, c.Active(), "no wraparound from the keyboard")
	c.KeyPress(KeyDown)
	settle(c, strip, clk)
	assert.Equal(t, 5, c.Active())

	c.KeyPress(KeyUp)
	settle(c, strip, clk)
	assert.Equal(t, 4, c.Active())
}

func TestDragSnapsToClosest(t *testing.T) {
	c, strip, clk := newTestCarousel(6, wide, false)
	c.Mount()
	run(c, clk, 100*time.Millisecond)

	c.PointerDown(7, 1100, 350)
	assert.True(t, c.Dragging())
	assert.Equal(t, clk.Now().Add(DefaultDragPause), c.PauseUntil())

	// Wander past item 5 and back before settling near item 3.
	for _, x := range []float64{900, 100, -1800, -2600, -700} {
		c.PointerMove(7, x, 350)
		run(c, clk, frameDur)
	}
	c.PointerMove(7, 1100-(3*widePitch+120), 350)
	run(c, clk, frameDur)
	assert.InDelta(t, 3*widePitch+120, strip.Offset(), 1e-9)
	assert.Equal(t, 3, c.Active())

	c.PointerUp(7)
	assert.False(t, c.Dragging())
	settle(c, strip, clk)
	assert.Equal(t, 3, c.Active())
	assert.InDelta(t, 3*widePitch, strip.Offset(), 1e-9)
}

func TestDragIgnoresOtherPointers(t *testing.T) {
	c, strip, clk := newTestCarousel(6, wide, false)
	c.Mount()
	run(c, clk, 100*time.Millisecond)

	c.PointerMove(1, 100, 0)
	assert.Equal(t, 0.0, strip.Offset(), "move without press")

	c.PointerDown(1, 1000, 0)
	c.PointerMove(2, 100, 0)
	assert.Equal(t, 0.0, strip.Offset())
	c.PointerUp(2)
	assert.True(t, c.Dragging())

	c.PointerDown(2, 500, 0)
	c.PointerMove(1, 400, 0)
	assert.InDelta(t, 600, strip.Offset(), 1e-9, "second press does not take over the drag")
	c.PointerMove(2, 100, 0)
	assert.InDelta(t, 600, strip.Offset(), 1e-9)

	c.PointerCancel(1)
	assert.False(t, c.Dragging())
}

func TestSecondPressKeepsCapture(t *testing.T) {
	clk := newFakeClock()
	vp := &capturingViewport{Strip: NewStrip(6, DefaultStripOptions())}
	vp.Resize(wide)
	c := New(testItems(6), vp, Options{Clock: clk.Now})
	c.Mount()
	run(c, clk, 100*time.Millisecond)

	c.PointerDown(1, 1000, 0)
	c.PointerDown(2, 500, 0)
	assert.Equal(t, 1, vp.captures)
	c.PointerUp(1)
	assert.Equal(t, 1, vp.releases)
	assert.False(t, c.Dragging())
}

func TestVerticalDragUsesY(t *testing.T) {
	c, strip, clk := newTestCarousel(6, narrow, false)
	c.Mount()
	run(c, clk, 100*time.Millisecond)

	c.PointerDown(1, 300, 600)
	c.PointerMove(1, 0, 600-458-50)
	assert.InDelta(t, 508, strip.Offset(), 1e-9)
	c.PointerUp(1)
	settle(c, strip, clk)
	assert.Equal(t, 1, c.Active())
}

func TestPointerCaptureErrorsSwallowed(t *testing.T) {
	clk := newFakeClock()
	strip := NewStrip(4, DefaultStripOptions())
	strip.Resize(wide)
	vp := &capturingViewport{Strip: strip}
	c := New(testItems(4), vp, Options{Clock: clk.Now})
	c.Mount()
	run(c, clk, 100*time.Millisecond)

	c.PointerDown(3, 1000, 0)
	c.PointerMove(3, 1000-widePitch-10, 0)
	c.PointerUp(3)
	settle(c, strip, clk)

	assert.Equal(t, 1, vp.captures)
	assert.Equal(t, 1, vp.releases)
	assert.Equal(t, 1, c.Active())
}

func TestResizeKeepsSelection(t *testing.T) {
	c, strip, clk := newTestCarousel(6, narrow, false)
	c.Mount()
	run(c, clk, 100*time.Millisecond)
	c.Click(2)
	settle(c, strip, clk)
	require.Equal(t, 2, c.Active())
	require.Equal(t, Vertical, c.Orientation())

	changes := 0
	c.opts.OnActiveChange = func(int) { changes++ }
	strip.Resize(wide)
	c.Resize()
	run(c, clk, frameDur)

	assert.Equal(t, Horizontal, c.Orientation())
	assert.Equal(t, 2, c.Active())
	assert.Zero(t, changes)
	s, ok := c.Style(2)
	require.True(t, ok)
	assert.Equal(t, 100, s.ZIndex)
}

func TestCollapsedResizeKeepsSelection(t *testing.T) {
	c, strip, clk := newTestCarousel(6, wide, false)
	c.Mount()
	run(c, clk, 100*time.Millisecond)
	c.Click(3)
	settle(c, strip, clk)
	require.Equal(t, 3, c.Active())

	strip.Resize(Rect{W: 1200})
	c.Resize()
	run(c, clk, frameDur)
	assert.Equal(t, 3, c.Active())

	strip.Resize(wide)
	c.Resize()
	run(c, clk, frameDur)
	assert.Equal(t, 3, c.Active())
	assert.InDelta(t, 3*widePitch, strip.Offset(), 1e-9)
}

func TestLatestScrollWins(t *testing.T) {
	c, strip, clk := newTestCarousel(6, wide, false)
	c.Mount()
	run(c, clk, 100*time.Millisecond)

	c.Click(4)
	run(c, clk, 3*frameDur)
	c.Click(1)
	settle(c, strip, clk)
	assert.Equal(t, 1, c.Active())
}

func TestTogglePlay(t *testing.T) {
	c, _, clk := newTestCarousel(6, wide, true)
	c.Mount()
	run(c, clk, 2*time.Second)

	c.TogglePlay()
	assert.False(t, c.AutoplayEnabled())
	assert.Equal(t, Disabled, c.AutoplayState())
	run(c, clk, 10*time.Second)
	assert.Equal(t, 0, c.Active())

	c.TogglePlay()
	assert.True(t, c.AutoplayEnabled())
	assert.Equal(t, Paused, c.AutoplayState())
	run(c, clk, DefaultTogglePause)
	assert.Equal(t, Armed, c.AutoplayState())

	run(c, clk, DefaultInterval-DefaultTogglePause+2*time.Second)
	assert.Equal(t, 1, c.Active(), "interval restarts when re-enabled")
}

func TestEmptyItemsRenderNothing(t *testing.T) {
	strip := NewStrip(0, DefaultStripOptions())
	strip.Resize(wide)
	c := New(nil, strip, Options{Autoplay: true})
	c.Mount()

	assert.False(t, c.Mounted())
	assert.True(t, c.View().Empty())
	assert.NotPanics(t, func() {
		c.Update()
		c.KeyPress(KeyRight)
		c.Click(0)
		c.PointerDown(1, 0, 0)
	})
}

func TestNoGeometryIsNoOp(t *testing.T) {
	clk := newFakeClock()
	strip := NewStrip(4, DefaultStripOptions())
	c := New(testItems(4), strip, Options{Autoplay: true, Clock: clk.Now})
	c.Mount()

	assert.NotPanics(t, func() {
		run(c, clk, 10*time.Second)
		c.ScrollToIndex(2, true)
		c.PointerDown(1, 10, 10)
		c.PointerMove(1, 0, 0)
		c.PointerUp(1)
		c.KeyPress(KeyRight)
	})
	assert.False(t, c.Dragging())
	assert.Equal(t, 0, c.Active())
	_, ok := c.Style(0)
	assert.False(t, ok)
}

func TestUnmountTearsDown(t *testing.T) {
	c, strip, clk := newTestCarousel(6, wide, true)
	c.Mount()
	require.Equal(t, 1, strip.Listeners())
	run(c, clk, 100*time.Millisecond)

	c.Click(3)
	require.True(t, c.PendingFrame())
	c.Unmount()

	assert.False(t, c.Mounted())
	assert.False(t, c.PendingFrame())
	assert.Zero(t, strip.Listeners())
	assert.Equal(t, Disabled, c.AutoplayState())

	before := strip.Offset()
	run(c, clk, 20*time.Second)
	c.PointerDown(1, 0, 0)
	c.KeyPress(KeyRight)
	assert.Equal(t, before, strip.Offset(), "no listeners or animation after unmount")
	assert.False(t, c.Dragging())
}

func TestActiveIndexStaysInRange(t *testing.T) {
	const n = 7
	c, strip, clk := newTestCarousel(n, wide, true)
	c.Mount()
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 2000; i++ {
		switch rng.Intn(8) {
		case 0:
			c.KeyPress(Key(rng.Intn(4)))
		case 1:
			c.Click(rng.Intn(n))
		case 2:
			c.PointerDown(1, rng.Float64()*1200, 0)
		case 3:
			c.PointerMove(1, rng.Float64()*4000-2000, 0)
		case 4:
			c.PointerUp(1)
		case 5:
			if rng.Intn(2) == 0 {
				strip.Resize(narrow)
			} else {
				strip.Resize(wide)
			}
			c.Resize()
		case 6:
			c.TogglePlay()
		}
		run(c, clk, time.Duration(rng.Intn(400))*time.Millisecond+frameDur)

		require.GreaterOrEqual(t, c.Active(), 0)
		require.Less(t, c.Active(), n)
	}
}
