package carousel

import (
	"fmt"
	"strconv"
)

// Item is a single image in the gallery. Order in the slice is display order.
type Item struct {
	ID       string `toml:"id"`
	Src      string `toml:"src"`
	Title    string `toml:"title"`
	Subtitle string `toml:"subtitle"`
}

// Label is the accessible label for the item.
func (it Item) Label() string {
	return it.Title
}

// ItemKey returns a stable identity for the item at position i. Items without an
// ID are addressed by their position.
func ItemKey(items []Item, i int) string {
	if i < 0 || i >= len(items) {
		return ""
	}
	if items[i].ID != "" {
		return items[i].ID
	}
	return strconv.Itoa(i)
}

// Counter formats the "NN / NN" position indicator.
func Counter(active, count int) string {
	return fmt.Sprintf("%02d / %02d", active+1, count)
}
