package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/depeter/couchgallery/assets/icon"
	"github.com/depeter/couchgallery/internal/app"
	"github.com/depeter/couchgallery/internal/cache"
	"github.com/depeter/couchgallery/internal/config"
	"github.com/depeter/couchgallery/internal/tui"
	"github.com/depeter/couchgallery/internal/ui"
)

var version = "dev"

func main() {
	var (
		configPath  = flag.String("config", "", "path to config.toml (default: $XDG_CONFIG_HOME/couchgallery/config.toml)")
		dir         = flag.String("dir", "", "show the images in this directory")
		useTUI      = flag.Bool("tui", false, "run in the terminal instead of a window")
		autoplay    = flag.Bool("autoplay", false, "start with autoplay on")
		noAutoplay  = flag.Bool("no-autoplay", false, "start with autoplay off")
		writeConfig = flag.Bool("write-config", false, "write the effective config file and exit")
		showVersion = flag.Bool("version", false, "print version and exit")
	)
	flag.Parse()

	if *showVersion {
		fmt.Println("couchgallery", version)
		return
	}

	// Load config
	var (
		cfg *config.Config
		err error
	)
	if *configPath != "" {
		cfg, err = config.LoadFile(*configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *dir != "" {
		cfg.Gallery.Dir = *dir
	}
	switch {
	case *autoplay && *noAutoplay:
		log.Fatal("-autoplay and -no-autoplay are mutually exclusive")
	case *autoplay:
		cfg.Gallery.Autoplay = true
	case *noAutoplay:
		cfg.Gallery.Autoplay = false
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	if *writeConfig {
		path := *configPath
		if path == "" {
			err = cfg.Save()
			path, _ = config.ConfigPath()
		} else {
			err = cfg.SaveFile(path)
		}
		if err != nil {
			log.Fatalf("Failed to write config: %v", err)
		}
		fmt.Println("wrote", path)
		return
	}

	items, err := cfg.ResolveItems()
	if err != nil {
		log.Fatalf("Failed to load items: %v", err)
	}

	if *useTUI {
		m := tui.New(items, cfg.Gallery.CarouselOptions())
		if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion()).Run(); err != nil {
			log.Fatal(err)
		}
		return
	}

	// Init fonts
	if err := ui.InitFonts(goregular.TTF); err != nil {
		log.Fatalf("Failed to init fonts: %v", err)
	}

	// Init image cache
	cacheDir := filepath.Join(os.TempDir(), "couchgallery", "images")
	if configDir, err := config.ConfigDir(); err == nil {
		cacheDir = filepath.Join(configDir, "cache", "images")
	}
	imgCache, err := cache.NewImageCache(cacheDir)
	if err != nil {
		log.Fatalf("Failed to init image cache: %v", err)
	}

	game := app.NewGame(cfg, items, imgCache)

	// Configure window
	ebiten.SetWindowSize(cfg.UI.Width, cfg.UI.Height)
	ebiten.SetWindowTitle("CouchGallery")
	ebiten.SetWindowIcon(icon.Generate())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(cfg.UI.Fullscreen)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
