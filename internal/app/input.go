package app

import (
	"log"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/depeter/couchgallery/internal/config"
	"github.com/depeter/couchgallery/internal/ui"
)

// keyMap maps config key names to ebiten keys.
var keyMap = map[string]ebiten.Key{
	"space":  ebiten.KeySpace,
	"enter":  ebiten.KeyEnter,
	"return": ebiten.KeyEnter,
	"tab":    ebiten.KeyTab,
	"esc":    ebiten.KeyEscape,
	"escape": ebiten.KeyEscape,
	"home":   ebiten.KeyHome,
	"end":    ebiten.KeyEnd,
	"f1":     ebiten.KeyF1,
	"f2":     ebiten.KeyF2,
	"f3":     ebiten.KeyF3,
	"f4":     ebiten.KeyF4,
	"f5":     ebiten.KeyF5,
	"f6":     ebiten.KeyF6,
	"f7":     ebiten.KeyF7,
	"f8":     ebiten.KeyF8,
	"f9":     ebiten.KeyF9,
	"f10":    ebiten.KeyF10,
	"f11":    ebiten.KeyF11,
	"f12":    ebiten.KeyF12,
	"left":   ebiten.KeyArrowLeft,
	"right":  ebiten.KeyArrowRight,
	"up":     ebiten.KeyArrowUp,
	"down":   ebiten.KeyArrowDown,
	"a":      ebiten.KeyA,
	"b":      ebiten.KeyB,
	"c":      ebiten.KeyC,
	"d":      ebiten.KeyD,
	"e":      ebiten.KeyE,
	"f":      ebiten.KeyF,
	"g":      ebiten.KeyG,
	"h":      ebiten.KeyH,
	"i":      ebiten.KeyI,
	"j":      ebiten.KeyJ,
	"k":      ebiten.KeyK,
	"l":      ebiten.KeyL,
	"m":      ebiten.KeyM,
	"n":      ebiten.KeyN,
	"o":      ebiten.KeyO,
	"p":      ebiten.KeyP,
	"q":      ebiten.KeyQ,
	"r":      ebiten.KeyR,
	"s":      ebiten.KeyS,
	"t":      ebiten.KeyT,
	"u":      ebiten.KeyU,
	"v":      ebiten.KeyV,
	"w":      ebiten.KeyW,
	"x":      ebiten.KeyX,
	"y":      ebiten.KeyY,
	"z":      ebiten.KeyZ,
	"0":      ebiten.KeyDigit0,
	"1":      ebiten.KeyDigit1,
	"2":      ebiten.KeyDigit2,
	"3":      ebiten.KeyDigit3,
	"4":      ebiten.KeyDigit4,
	"5":      ebiten.KeyDigit5,
	"6":      ebiten.KeyDigit6,
	"7":      ebiten.KeyDigit7,
	"8":      ebiten.KeyDigit8,
	"9":      ebiten.KeyDigit9,
}

// parseKey converts a config key name to an ebiten.Key.
func parseKey(name string) (ebiten.Key, bool) {
	k, ok := keyMap[strings.ToLower(name)]
	return k, ok
}

// keyJustPressed checks if the key named by the config string was just pressed.
func keyJustPressed(name string) bool {
	if k, ok := parseKey(name); ok {
		return inpututil.IsKeyJustPressed(k)
	}
	return false
}

// galleryKeys resolves the gallery's configured keys, keeping the defaults for
// names that do not parse.
func galleryKeys(kb config.KeybindConfig) ui.GalleryKeys {
	keys := ui.GalleryKeys{PlayPause: ebiten.KeySpace, Open: ebiten.KeyEnter}
	if k, ok := parseKey(kb.PlayPause); ok {
		keys.PlayPause = k
	} else if kb.PlayPause != "" {
		log.Printf("Unknown play_pause key %q, using Space", kb.PlayPause)
	}
	if k, ok := parseKey(kb.Open); ok {
		keys.Open = k
	} else if kb.Open != "" {
		log.Printf("Unknown open key %q, using Enter", kb.Open)
	}
	return keys
}
