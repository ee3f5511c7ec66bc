package main

import (
	"log"
	"log/slog"
	"os"

	"mirkhollow/internal/config"
	"mirkhollow/internal/game"
	"mirkhollow/internal/monster"
	"mirkhollow/internal/nav"
	"mirkhollow/internal/world"

	"github.com/hajimehoshi/ebiten/v2"
)

const configFile = "config.yaml"

func main() {
	cfg := config.MustLoadConfig(configFile)
	setupLogging(cfg)

	zones, err := world.LoadZones(cfg.World.ZoneDir, cfg.World.CellSize)
	if err != nil {
		log.Fatalf("load zones: %v", err)
	}
	zone, ok := zones[cfg.World.HomeZone]
	if !ok {
		log.Fatalf("home zone %q not found in %s", cfg.World.HomeZone, cfg.World.ZoneDir)
	}
	mesh := nav.BuildMesh(zones)

	ebiten.SetWindowSize(cfg.GetScreenWidth(), cfg.GetScreenHeight())
	ebiten.SetWindowTitle(cfg.Display.WindowTitle)
	ebiten.SetTPS(cfg.GetTPS())
	if cfg.Display.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}

	g, err := game.NewGame(cfg, zone, mesh)
	if err != nil {
		log.Fatalf("init game: %v", err)
	}

	// Live-reload behavior tuning while the simulation runs. The watcher
	// goroutine only queues; the game applies the values on its own loop
	// goroutine before the next tick.
	stop, err := config.Watch(configFile, g.QueueConfig)
	if err != nil {
		slog.Warn("config watch unavailable", "err", err)
	} else {
		defer stop()
	}

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}

func setupLogging(cfg *config.Config) {
	level := slog.LevelInfo
	if cfg.Logging.Debug {
		level = slog.LevelDebug
		monster.EnableDebugLogging(true)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}
