package carousel

import (
	"math"
	"sort"
	"strconv"
)

// ItemView is what a renderer needs to draw one item.
type ItemView struct {
	Item   Item
	Index  int
	Key    string
	Label  string
	Active bool
	// Style is only meaningful when HasStyle is set; items without geometry
	// are drawn untransformed.
	Style    Style
	HasStyle bool
}

// Control is a dot or thumbnail button.
type Control struct {
	Index    int
	Label    string
	Selected bool
}

// View is the render state of the carousel: the items plus the chrome around
// them. Everything in it derives from the active index.
type View struct {
	Counter     string
	Playing     bool
	PlayLabel   string
	Orientation Orientation
	Items       []ItemView
	Dots        []Control
	Thumbs      []Control
}

// Empty reports whether there is nothing to render.
func (v View) Empty() bool {
	return len(v.Items) == 0
}

// View snapshots the render state.
func (c *Carousel) View() View {
	n := len(c.items)
	if n == 0 {
		return View{}
	}
	v := View{
		Counter:     Counter(c.active, n),
		Playing:     c.opts.Autoplay,
		PlayLabel:   "Play",
		Orientation: c.frame.Orientation,
		Items:       make([]ItemView, n),
		Dots:        make([]Control, n),
		Thumbs:      make([]Control, n),
	}
	if v.Playing {
		v.PlayLabel = "Pause"
	}
	for i, it := range c.items {
		selected := i == c.active
		style, ok := c.Style(i)
		v.Items[i] = ItemView{
			Item:     it,
			Index:    i,
			Key:      ItemKey(c.items, i),
			Label:    it.Label(),
			Active:   selected,
			Style:    style,
			HasStyle: ok,
		}
		v.Dots[i] = Control{Index: i, Label: "Go to " + strconv.Itoa(i+1), Selected: selected}
		v.Thumbs[i] = Control{Index: i, Label: it.Label(), Selected: selected}
	}
	return v
}

// NeutralStyle draws an item untransformed.
var NeutralStyle = Style{Scale: 1, Opacity: 1, ImageScale: 1}

// DrawStyle is the style to draw v with. Items without geometry get
// NeutralStyle.
func (v ItemView) DrawStyle() Style {
	if !v.HasStyle {
		return NeutralStyle
	}
	return v.Style
}

// PaintOrder returns item indices back to front.
func PaintOrder(items []ItemView) []int {
	order := make([]int, len(items))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return items[order[a]].DrawStyle().ZIndex < items[order[b]].DrawStyle().ZIndex
	})
	return order
}

// ProjectedRect is the bounding box of an item laid out in r once st is
// applied. A rotation around the vertical axis only narrows the item.
func ProjectedRect(r Rect, st Style) Rect {
	cx, cy := r.Center()
	w := r.W * st.Scale * math.Abs(math.Cos(st.RotateY*math.Pi/180))
	h := r.H * st.Scale
	return Rect{X: cx + st.TranslateX - w/2, Y: cy + st.TranslateY - h/2, W: w, H: h}
}
