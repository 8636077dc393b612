package carousel

import (
	"errors"
	"fmt"
	"time"
)

const frameDur = 16 * time.Millisecond

type fakeClock struct {
	t time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
}

func (f *fakeClock) Now() time.Time { return f.t }

func (f *fakeClock) Advance(d time.Duration) { f.t = f.t.Add(d) }

func testItems(n int) []Item {
	items := make([]Item, n)
	for i := range items {
		items[i] = Item{
			Src:   fmt.Sprintf("https://example.com/%d.jpg", i),
			Title: fmt.Sprintf("Photo %d", i+1),
		}
	}
	return items
}

// wide is a 1200x700 viewport: horizontal, item extent 552, pitch 576.
var wide = Rect{W: 1200, H: 700}

// narrow is a 600x700 viewport: vertical, item extent 434, pitch 458.
var narrow = Rect{W: 600, H: 700}

const widePitch = 576.0

func newTestCarousel(n int, bounds Rect, autoplay bool) (*Carousel, *Strip, *fakeClock) {
	clk := newFakeClock()
	strip := NewStrip(n, DefaultStripOptions())
	strip.Resize(bounds)
	c := New(testItems(n), strip, Options{Autoplay: autoplay, Clock: clk.Now})
	return c, strip, clk
}

// run drives the carousel frame by frame for d.
func run(c *Carousel, clk *fakeClock, d time.Duration) {
	for d > 0 {
		step := min(frameDur, d)
		clk.Advance(step)
		c.Update()
		d -= step
	}
}

// settle runs frames until the strip stops scrolling and the last layout
// pass has run.
func settle(c *Carousel, strip *Strip, clk *fakeClock) {
	for i := 0; i < 600 && (!strip.Settled() || c.PendingFrame()); i++ {
		clk.Advance(frameDur)
		c.Update()
	}
}

// capturingViewport fails every capture call.
type capturingViewport struct {
	*Strip
	captures, releases int
}

var errNoCapture = errors.New("capture not supported")

func (v *capturingViewport) CapturePointer(id int) error {
	v.captures++
	return errNoCapture
}

func (v *capturingViewport) ReleasePointer(id int) error {
	v.releases++
	return errNoCapture
}
