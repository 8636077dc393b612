package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/depeter/couchgallery/internal/carousel"
)

func TestDefaultConfigMatchesEngineDefaults(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	opts := cfg.Gallery.CarouselOptions()
	assert.True(t, opts.Autoplay)
	assert.Equal(t, carousel.DefaultInterval, opts.Interval)
	assert.Equal(t, carousel.DefaultScrollPause, opts.ScrollPause)
	assert.Equal(t, carousel.DefaultDragPause, opts.DragPause)
	assert.Equal(t, carousel.DefaultTogglePause, opts.TogglePause)
	assert.Equal(t, carousel.DefaultMountDelay, opts.MountDelay)
	assert.Equal(t, float64(carousel.DefaultBreakpoint), opts.Breakpoint)
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := `
[gallery]
autoplay = false
interval_ms = 5000

[ui]
width = 800

[[items]]
src = "/photos/a.jpg"
title = "First"

[[items]]
id = "b"
src = "https://example.com/b.png"
subtitle = "Second"
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.False(t, cfg.Gallery.Autoplay)
	assert.Equal(t, 5*time.Second, cfg.Gallery.CarouselOptions().Interval)
	assert.Equal(t, 800, cfg.UI.Width)
	assert.Equal(t, 800, cfg.UI.Height, "unset keys keep their defaults")
	require.Len(t, cfg.Items, 2)
	assert.Equal(t, "First", cfg.Items[0].Title)
	assert.Equal(t, "b", cfg.Items[1].ID)
}

func TestLoadFileMissingUsesDefaults(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().Gallery, cfg.Gallery)
}

func TestLoadFileRejectsBadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[gallery\n"), 0o644))

	_, err := LoadFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("COUCHGALLERY_AUTOPLAY", "false")
	t.Setenv("COUCHGALLERY_INTERVAL_MS", "2500")
	t.Setenv("COUCHGALLERY_WIDTH", "640")

	cfg, err := LoadFile(filepath.Join(t.TempDir(), "config.toml"))
	require.NoError(t, err)
	assert.False(t, cfg.Gallery.Autoplay)
	assert.Equal(t, 2500, cfg.Gallery.IntervalMS)
	assert.Equal(t, 640, cfg.UI.Width)
	assert.Equal(t, float64(carousel.DefaultBreakpoint), cfg.Gallery.Breakpoint)
}

func TestEnvOverrideInvalid(t *testing.T) {
	t.Setenv("COUCHGALLERY_INTERVAL_MS", "soon")

	_, err := LoadFile(filepath.Join(t.TempDir(), "config.toml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env:")
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Gallery.IntervalMS = 0
	cfg.Gallery.Breakpoint = -1
	cfg.Items = []carousel.Item{{Title: "no source"}}

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "interval_ms")
	assert.Contains(t, err.Error(), "breakpoint")
	assert.Contains(t, err.Error(), "items[0]")
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	cfg := DefaultConfig()
	cfg.Gallery.Autoplay = false
	cfg.Items = DemoItems()[:2]
	require.NoError(t, cfg.SaveFile(path))

	loaded, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, cfg.Gallery, loaded.Gallery)
	assert.Equal(t, cfg.Items, loaded.Items)
}

func TestSaveUsesConfigDir(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	cfg := DefaultConfig()
	cfg.Gallery.IntervalMS = 5000
	require.NoError(t, cfg.Save())

	path, err := ConfigPath()
	require.NoError(t, err)
	assert.FileExists(t, path)

	loaded, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 5000, loaded.Gallery.IntervalMS)
}

func TestResolveItems(t *testing.T) {
	cfg := DefaultConfig()
	items, err := cfg.ResolveItems()
	require.NoError(t, err)
	assert.Len(t, items, 6, "demo set when nothing is configured")

	cfg.Items = []carousel.Item{{Src: "a.jpg"}}
	items, err = cfg.ResolveItems()
	require.NoError(t, err)
	assert.Equal(t, cfg.Items, items)
}

func TestItemsFromDir(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b_harbour-view.JPG", "a_sunrise.png", "notes.txt", "c.jpeg"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.png"), 0o755))

	cfg := DefaultConfig()
	cfg.Gallery.Dir = dir
	items, err := cfg.ResolveItems()
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "A Sunrise", items[0].Title)
	assert.Equal(t, "B Harbour View", items[1].Title)
	assert.Equal(t, "C", items[2].Title)
	assert.Equal(t, filepath.Join(dir, "c.jpeg"), items[2].Src)

	_, err = ItemsFromDir(filepath.Join(dir, "missing"))
	assert.Error(t, err)
}
