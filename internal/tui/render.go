package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/depeter/couchgallery/internal/carousel"
)

const (
	thumbWidth = 14
	thumbGap   = 1
)

// Card tones, brightest first. Opacity picks the tone; the active card has
// its own.
const (
	toneCount  = 4
	toneActive = toneCount
)

type cardStyle struct {
	border lipgloss.Style
	fill   lipgloss.Style
	text   lipgloss.Style
}

type styles struct {
	title   lipgloss.Style
	counter lipgloss.Style
	play    lipgloss.Style
	dotOn   lipgloss.Style
	dotOff  lipgloss.Style
	thumb   lipgloss.Style
	thumbOn lipgloss.Style
	cards   [toneCount + 1]cardStyle
}

func defaultStyles() styles {
	card := func(border, fill, text string) cardStyle {
		bg := lipgloss.Color(fill)
		return cardStyle{
			border: lipgloss.NewStyle().Foreground(lipgloss.Color(border)).Background(bg),
			fill:   lipgloss.NewStyle().Background(bg),
			text:   lipgloss.NewStyle().Foreground(lipgloss.Color(text)).Background(bg),
		}
	}
	s := styles{
		title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F2B24C")),
		counter: lipgloss.NewStyle().Foreground(lipgloss.Color("#9A9CA6")),
		play:    lipgloss.NewStyle().Foreground(lipgloss.Color("#0E0F13")).Background(lipgloss.Color("#F2B24C")),
		dotOn:   lipgloss.NewStyle().Foreground(lipgloss.Color("#F2B24C")),
		dotOff:  lipgloss.NewStyle().Foreground(lipgloss.Color("#5E616C")),
		thumb:   lipgloss.NewStyle().Foreground(lipgloss.Color("#9A9CA6")),
		thumbOn: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#0E0F13")).Background(lipgloss.Color("#F2B24C")),
	}
	s.cards[0] = card("#ECECEC", "#2A2D37", "#ECECEC")
	s.cards[1] = card("#B0B2BC", "#22242D", "#C4C6CE")
	s.cards[2] = card("#7A7C86", "#1C1E25", "#9A9CA6")
	s.cards[3] = card("#4E505A", "#16181E", "#6E7079")
	s.cards[toneActive] = card("#F2B24C", "#2A2D37", "#FFFFFF")
	return s
}

// toneFor buckets an opacity into one of the card tones.
func toneFor(opacity float64) int {
	switch {
	case opacity >= 0.95:
		return 0
	case opacity >= 0.85:
		return 1
	case opacity >= 0.75:
		return 2
	}
	return 3
}

// View renders the gallery
func (m *Model) View() string {
	if m.quitting || m.width <= 0 || m.height <= 0 {
		return ""
	}
	v := m.carousel.View()
	if v.Empty() {
		return ""
	}

	lines := make([]string, 0, m.height)
	lines = append(lines, m.header(v))
	lines = append(lines, m.stage(v)...)
	lines = append(lines, m.dots(v), m.thumbs(v), m.help.View(m.keys))
	return strings.Join(lines, "\n")
}

func playLabel(v carousel.View) string {
	if v.Playing {
		return " ❚❚ " + v.PlayLabel + " "
	}
	return " ▶ " + v.PlayLabel + " "
}

// playSpan is the column range of the play button in the header.
func playSpan(width int, v carousel.View) (int, int) {
	w := lipgloss.Width(playLabel(v))
	return max(width-w, 0), width
}

func (m *Model) header(v carousel.View) string {
	left := m.styles.title.Render(" Gallery")
	right := m.styles.counter.Render(v.Counter) + " " + m.styles.play.Render(playLabel(v))
	gap := max(m.width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return left + strings.Repeat(" ", gap) + right
}

// dotsStart is the first column of the dot row.
func dotsStart(width, n int) int {
	return max((width-(2*n-1))/2, 0)
}

// dotAt maps a column in the dot row to a dot; the space after a dot belongs
// to it.
func dotAt(width, n, x int) int {
	rel := x - dotsStart(width, n)
	if rel < 0 || rel >= 2*n {
		return -1
	}
	return rel / 2
}

func (m *Model) dots(v carousel.View) string {
	var b strings.Builder
	b.WriteString(strings.Repeat(" ", dotsStart(m.width, len(v.Dots))))
	for i, d := range v.Dots {
		if i > 0 {
			b.WriteString(" ")
		}
		if d.Selected {
			b.WriteString(m.styles.dotOn.Render("●"))
		} else {
			b.WriteString(m.styles.dotOff.Render("○"))
		}
	}
	return b.String()
}

type segment struct {
	index      int
	start, end int
}

// thumbSegments lays out as many thumbnails as fit, keeping active roughly
// centred.
func thumbSegments(width, n, active int) []segment {
	if n == 0 || width < thumbWidth {
		return nil
	}
	fit := min(max((width+thumbGap)/(thumbWidth+thumbGap), 1), n)
	first := min(max(active-fit/2, 0), n-fit)
	used := fit*(thumbWidth+thumbGap) - thumbGap
	x := (width - used) / 2

	segs := make([]segment, fit)
	for k := range segs {
		segs[k] = segment{index: first + k, start: x, end: x + thumbWidth}
		x += thumbWidth + thumbGap
	}
	return segs
}

func (m *Model) thumbs(v carousel.View) string {
	var b strings.Builder
	col := 0
	for _, seg := range thumbSegments(m.width, len(v.Thumbs), m.carousel.Active()) {
		b.WriteString(strings.Repeat(" ", seg.start-col))
		th := v.Thumbs[seg.index]
		label := fitLabel(th.Label, thumbWidth-2)
		label = " " + label + strings.Repeat(" ", thumbWidth-2-lipgloss.Width(label)) + " "
		if th.Selected {
			b.WriteString(m.styles.thumbOn.Render(label))
		} else {
			b.WriteString(m.styles.thumb.Render(label))
		}
		col = seg.end
	}
	return b.String()
}

// fitLabel shortens s to at most width cells.
func fitLabel(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	for i := len(runes) - 1; i > 0; i-- {
		c := string(runes[:i]) + "…"
		if lipgloss.Width(c) <= width {
			return c
		}
	}
	return "…"
}

// canvas is a grid of cells, each painted with one of the card styles.
type canvas struct {
	w, h  int
	runes []rune
	tone  []int // -1 for background
	kind  []int
}

const (
	kindFill = iota
	kindBorder
	kindText
)

func newCanvas(w, h int) *canvas {
	c := &canvas{w: w, h: h, runes: make([]rune, w*h), tone: make([]int, w*h), kind: make([]int, w*h)}
	for i := range c.runes {
		c.runes[i] = ' '
		c.tone[i] = -1
	}
	return c
}

func (c *canvas) set(x, y int, r rune, tone, kind int) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return
	}
	i := y*c.w + x
	c.runes[i], c.tone[i], c.kind[i] = r, tone, kind
}

// card paints a bordered card over the cell rect [x0,x1]x[y0,y1].
func (c *canvas) card(x0, y0, x1, y1, tone int, title, subtitle string) {
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			r, kind := ' ', kindFill
			switch {
			case y == y0 && x == x0:
				r, kind = '╭', kindBorder
			case y == y0 && x == x1:
				r, kind = '╮', kindBorder
			case y == y1 && x == x0:
				r, kind = '╰', kindBorder
			case y == y1 && x == x1:
				r, kind = '╯', kindBorder
			case y == y0 || y == y1:
				r, kind = '─', kindBorder
			case x == x0 || x == x1:
				r, kind = '│', kindBorder
			}
			c.set(x, y, r, tone, kind)
		}
	}

	inner := x1 - x0 - 3
	mid := (y0 + y1) / 2
	c.text(x0, x1, mid, fitLabel(title, inner), tone)
	if subtitle != "" && mid+1 < y1 {
		c.text(x0, x1, mid+1, fitLabel(subtitle, inner), tone)
	}
}

// text centres s between columns x0 and x1 on row y.
func (c *canvas) text(x0, x1, y int, s string, tone int) {
	runes := []rune(s)
	x := x0 + (x1-x0+1-len(runes))/2
	for i, r := range runes {
		c.set(x+i, y, r, tone, kindText)
	}
}

func (c *canvas) lines(st styles) []string {
	out := make([]string, c.h)
	var b strings.Builder
	for y := 0; y < c.h; y++ {
		b.Reset()
		start := y * c.w
		for x := 0; x < c.w; {
			i := start + x
			j := i
			for j < start+c.w && c.tone[j] == c.tone[i] && c.kind[j] == c.kind[i] {
				j++
			}
			run := string(c.runes[i:j])
			if c.tone[i] < 0 {
				b.WriteString(run)
			} else {
				cs := st.cards[c.tone[i]]
				switch c.kind[i] {
				case kindBorder:
					b.WriteString(cs.border.Render(run))
				case kindText:
					b.WriteString(cs.text.Render(run))
				default:
					b.WriteString(cs.fill.Render(run))
				}
			}
			x += j - i
		}
		out[y] = b.String()
	}
	return out
}

// stage draws the cards back to front.
func (m *Model) stage(v carousel.View) []string {
	rect := m.stageRect()
	rows := int(rect.H) / CellHeight
	c := newCanvas(m.width, rows)

	for _, i := range carousel.PaintOrder(v.Items) {
		r, ok := m.strip.ItemBounds(i)
		if !ok {
			continue
		}
		iv := v.Items[i]
		st := iv.DrawStyle()
		cr := carousel.ProjectedRect(r, st)

		x0 := int(math.Round(cr.X / CellWidth))
		x1 := int(math.Round((cr.X+cr.W)/CellWidth)) - 1
		y0 := int(math.Round((cr.Y - rect.Y) / CellHeight))
		y1 := int(math.Round((cr.Y+cr.H-rect.Y)/CellHeight)) - 1
		if x1-x0 < 2 || y1-y0 < 2 || x1 < 0 || x0 >= m.width {
			continue
		}

		tone := toneFor(st.Opacity)
		if iv.Active {
			tone = toneActive
		}
		c.card(x0, y0, x1, y1, tone, iv.Label, iv.Item.Subtitle)
	}
	return c.lines(m.styles)
}
