package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"

	"github.com/depeter/couchgallery/internal/carousel"
)

type Config struct {
	Gallery  GalleryConfig   `toml:"gallery"`
	UI       UIConfig        `toml:"ui"`
	Keybinds KeybindConfig   `toml:"keybinds"`
	Items    []carousel.Item `toml:"items"`
}

type GalleryConfig struct {
	Autoplay      bool    `toml:"autoplay"        env:"COUCHGALLERY_AUTOPLAY"`
	IntervalMS    int     `toml:"interval_ms"     env:"COUCHGALLERY_INTERVAL_MS"`
	ScrollPauseMS int     `toml:"scroll_pause_ms" env:"COUCHGALLERY_SCROLL_PAUSE_MS"`
	DragPauseMS   int     `toml:"drag_pause_ms"   env:"COUCHGALLERY_DRAG_PAUSE_MS"`
	TogglePauseMS int     `toml:"toggle_pause_ms" env:"COUCHGALLERY_TOGGLE_PAUSE_MS"`
	MountDelayMS  int     `toml:"mount_delay_ms"  env:"COUCHGALLERY_MOUNT_DELAY_MS"`
	Breakpoint    float64 `toml:"breakpoint"      env:"COUCHGALLERY_BREAKPOINT"`
	// Dir, when set, replaces the item list with the images found there.
	Dir string `toml:"dir" env:"COUCHGALLERY_DIR"`
}

type UIConfig struct {
	Fullscreen bool `toml:"fullscreen" env:"COUCHGALLERY_FULLSCREEN"`
	Width      int  `toml:"width"      env:"COUCHGALLERY_WIDTH"`
	Height     int  `toml:"height"     env:"COUCHGALLERY_HEIGHT"`
}

type KeybindConfig struct {
	PlayPause  string `toml:"play_pause"`
	Open       string `toml:"open"`
	Fullscreen string `toml:"fullscreen"`
	Debug      string `toml:"debug"`
}

func DefaultConfig() *Config {
	return &Config{
		Gallery: GalleryConfig{
			Autoplay:      true,
			IntervalMS:    ms(carousel.DefaultInterval),
			ScrollPauseMS: ms(carousel.DefaultScrollPause),
			DragPauseMS:   ms(carousel.DefaultDragPause),
			TogglePauseMS: ms(carousel.DefaultTogglePause),
			MountDelayMS:  ms(carousel.DefaultMountDelay),
			Breakpoint:    carousel.DefaultBreakpoint,
		},
		UI: UIConfig{
			Fullscreen: false,
			Width:      1280,
			Height:     800,
		},
		Keybinds: KeybindConfig{
			PlayPause:  "Space",
			Open:       "Enter",
			Fullscreen: "F",
			Debug:      "F12",
		},
	}
}

func ms(d time.Duration) int {
	return int(d / time.Millisecond)
}

// CarouselOptions converts the gallery section into engine options.
func (g GalleryConfig) CarouselOptions() carousel.Options {
	return carousel.Options{
		Breakpoint:  g.Breakpoint,
		Autoplay:    g.Autoplay,
		Interval:    time.Duration(g.IntervalMS) * time.Millisecond,
		ScrollPause: time.Duration(g.ScrollPauseMS) * time.Millisecond,
		DragPause:   time.Duration(g.DragPauseMS) * time.Millisecond,
		TogglePause: time.Duration(g.TogglePauseMS) * time.Millisecond,
		MountDelay:  time.Duration(g.MountDelayMS) * time.Millisecond,
	}
}

// Validate rejects settings the carousel cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if c.Gallery.IntervalMS <= 0 {
		errs = append(errs, fmt.Errorf("gallery.interval_ms must be positive, got %d", c.Gallery.IntervalMS))
	}
	if c.Gallery.Breakpoint <= 0 {
		errs = append(errs, fmt.Errorf("gallery.breakpoint must be positive, got %g", c.Gallery.Breakpoint))
	}
	if c.UI.Width <= 0 || c.UI.Height <= 0 {
		errs = append(errs, fmt.Errorf("ui size must be positive, got %dx%d", c.UI.Width, c.UI.Height))
	}
	for i, it := range c.Items {
		if strings.TrimSpace(it.Src) == "" {
			errs = append(errs, fmt.Errorf("items[%d]: src is required", i))
		}
	}
	return errors.Join(errs...)
}

func ConfigDir() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "couchgallery"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load reads the default config file. A missing file is not an error.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		cfg := DefaultConfig()
		return cfg, applyEnv(cfg)
	}
	return LoadFile(path)
}

// LoadFile reads the config at path over the defaults, then applies
// COUCHGALLERY_* environment overrides.
func LoadFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err == nil {
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv overrides scalar settings from the environment. The item list is
// file-only.
func applyEnv(cfg *Config) error {
	if err := env.Parse(&cfg.Gallery); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	if err := env.Parse(&cfg.UI); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

func (c *Config) Save() error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	return c.SaveFile(path)
}

func (c *Config) SaveFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(c)
}

// ResolveItems picks the gallery's items: images from Gallery.Dir when set,
// otherwise the configured list, otherwise the demo set.
func (c *Config) ResolveItems() ([]carousel.Item, error) {
	if c.Gallery.Dir != "" {
		return ItemsFromDir(c.Gallery.Dir)
	}
	if len(c.Items) > 0 {
		return c.Items, nil
	}
	return DemoItems(), nil
}

var imageExts = map[string]bool{".jpg": true, ".jpeg": true, ".png": true}

// ItemsFromDir lists the images in dir, sorted by name. Titles come from the
// file names.
func ItemsFromDir(dir string) ([]carousel.Item, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read image dir: %w", err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || !imageExts[strings.ToLower(filepath.Ext(e.Name()))] {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	items := make([]carousel.Item, 0, len(names))
	for _, name := range names {
		items = append(items, carousel.Item{
			ID:    name,
			Src:   filepath.Join(dir, name),
			Title: titleFromName(name),
		})
	}
	return items, nil
}

func titleFromName(name string) string {
	base := strings.TrimSuffix(name, filepath.Ext(name))
	base = strings.NewReplacer("_", " ", "-", " ").Replace(base)
	words := strings.Fields(base)
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}
