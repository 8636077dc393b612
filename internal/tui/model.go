package tui

import (
	"math"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/depeter/couchgallery/internal/carousel"
)

// Terminal cells are measured in logical pixels so the carousel's geometry
// (breakpoint, extents, pauses) behaves as it does in a window.
const (
	CellWidth  = 8
	CellHeight = 16

	frameInterval = 16 * time.Millisecond

	// Header, dots, thumbnails and help line.
	chromeRows = 4

	dragDeadZone = 4.0
	wheelStep    = 6 * CellWidth

	mousePointer = 0
)

// frameMsg drives one carousel frame
type frameMsg time.Time

func frame() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// press tracks the mouse from press to release, in cells.
type press struct {
	x, y     int
	dragging bool
	onStage  bool
}

// Model is the terminal gallery.
type Model struct {
	items    []carousel.Item
	strip    *carousel.Strip
	carousel *carousel.Carousel

	keys   KeyMap
	help   help.Model
	styles styles

	width  int
	height int

	press    *press
	quitting bool
}

// New creates the terminal gallery over items. It mounts on the first window
// size message.
func New(items []carousel.Item, opts carousel.Options) *Model {
	stripOpts := carousel.DefaultStripOptions()
	if opts.Breakpoint > 0 {
		stripOpts.Breakpoint = opts.Breakpoint
	}
	strip := carousel.NewStrip(len(items), stripOpts)
	return &Model{
		items:    items,
		strip:    strip,
		carousel: carousel.New(items, strip, opts),
		keys:     DefaultKeyMap(),
		help:     help.New(),
		styles:   defaultStyles(),
	}
}

// Carousel exposes the engine driving the model.
func (m *Model) Carousel() *carousel.Carousel { return m.carousel }

// Init starts the frame loop
func (m *Model) Init() tea.Cmd {
	return frame()
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case frameMsg:
		m.carousel.Update()
		return m, frame()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.carousel.Unmount()
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Prev):
			m.carousel.KeyPress(carousel.KeyLeft)
		case key.Matches(msg, m.keys.Next):
			m.carousel.KeyPress(carousel.KeyRight)
		case key.Matches(msg, m.keys.Play):
			m.carousel.TogglePlay()
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
		return m, nil

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil
	}
	return m, nil
}

func (m *Model) resize(width, height int) {
	m.width, m.height = width, height
	m.help.Width = width
	m.strip.Resize(m.stageRect())
	if !m.carousel.Mounted() {
		m.carousel.Mount()
		return
	}
	m.carousel.Resize()
}

// stageRect is the carousel area in logical pixels: every row between the
// header and the dots.
func (m *Model) stageRect() carousel.Rect {
	rows := max(m.height-chromeRows, 0)
	return carousel.Rect{
		Y: CellHeight,
		W: float64(m.width * CellWidth),
		H: float64(rows * CellHeight),
	}
}

func (m *Model) dotsRow() int   { return m.height - 3 }
func (m *Model) thumbsRow() int { return m.height - 2 }

// cellCenter converts a cell to the logical pixel at its centre.
func cellCenter(x, y int) (float64, float64) {
	return float64(x*CellWidth + CellWidth/2), float64(y*CellHeight + CellHeight/2)
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	px, py := cellCenter(msg.X, msg.Y)

	switch {
	case msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelLeft:
		m.wheel(px, py, -wheelStep)

	case msg.Button == tea.MouseButtonWheelDown || msg.Button == tea.MouseButtonWheelRight:
		m.wheel(px, py, wheelStep)

	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		if m.press != nil {
			return
		}
		m.press = &press{x: msg.X, y: msg.Y, onStage: m.stageRect().Contains(px, py)}
		if m.press.onStage {
			m.carousel.PointerDown(mousePointer, px, py)
		}

	case msg.Action == tea.MouseActionMotion:
		p := m.press
		if p == nil {
			return
		}
		sx, sy := cellCenter(p.x, p.y)
		if !p.dragging && math.Hypot(px-sx, py-sy) > dragDeadZone {
			p.dragging = true
		}
		if p.dragging && p.onStage {
			m.carousel.PointerMove(mousePointer, px, py)
		}

	case msg.Action == tea.MouseActionRelease:
		p := m.press
		if p == nil {
			return
		}
		m.press = nil
		if p.onStage {
			m.carousel.PointerUp(mousePointer)
		}
		if !p.dragging {
			m.click(msg.X, msg.Y)
		}
	}
}

// wheel scrolls the strip directly, as a trackpad would.
func (m *Model) wheel(px, py, delta float64) {
	if !m.stageRect().Contains(px, py) {
		return
	}
	o := m.strip.Orientation()
	m.strip.SetScrollOffset(o, m.strip.Offset()+delta)
}

// click handles a press and release on one cell that did not become a drag.
func (m *Model) click(x, y int) {
	v := m.carousel.View()
	switch y {
	case 0:
		if start, end := playSpan(m.width, v); x >= start && x < end {
			m.carousel.TogglePlay()
		}
	case m.dotsRow():
		if i := dotAt(m.width, len(m.items), x); i >= 0 {
			m.carousel.Click(i)
		}
	case m.thumbsRow():
		for _, seg := range thumbSegments(m.width, len(m.items), m.carousel.Active()) {
			if x >= seg.start && x < seg.end {
				m.carousel.Click(seg.index)
			}
		}
	default:
		px, py := cellCenter(x, y)
		if i := m.itemAt(v, px, py); i >= 0 {
			m.carousel.Click(i)
		}
	}
}

// itemAt returns the frontmost item drawn under (px, py), or -1.
func (m *Model) itemAt(v carousel.View, px, py float64) int {
	if !m.stageRect().Contains(px, py) {
		return -1
	}
	order := carousel.PaintOrder(v.Items)
	for k := len(order) - 1; k >= 0; k-- {
		i := order[k]
		r, ok := m.strip.ItemBounds(i)
		if !ok {
			continue
		}
		if carousel.ProjectedRect(r, v.Items[i].DrawStyle()).Contains(px, py) {
			return i
		}
	}
	return -1
}
