package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Flavius4914/RTS-Engine/internal/config"
	"github.com/Flavius4914/RTS-Engine/internal/game"
	"github.com/Flavius4914/RTS-Engine/internal/mapgen"
	"github.com/Flavius4914/RTS-Engine/internal/sim"
)

// eventLogLimit bounds the in-memory event log of an interactive session.
const eventLogLimit = 2000

func main() {
	var cfgPath string
	var seed int64
	var verbose bool

	flag.StringVar(&cfgPath, "config", "", "YAML rules file (defaults when empty)")
	flag.Int64Var(&seed, "seed", 0, "map seed (0 uses the config seed)")
	flag.BoolVar(&verbose, "verbose", false, "log per-step movement and debug diagnostics")
	flag.Parse()

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatal(err)
	}
	if seed == 0 {
		seed = cfg.Map.Seed
	}

	tiles := sim.NewTileMap(cfg.Map.Width, cfg.Map.Height)
	mapgen.Generate(tiles, mapgen.New(seed), mapgen.DefaultOptions())
	world := sim.NewWorld(cfg, tiles,
		sim.WithEventLog(sim.NewEventLog(verbose, eventLogLimit)),
		sim.WithLogger(logger),
	)
	if err := sim.SetupSkirmish(world); err != nil {
		log.Fatal(err)
	}
	logger.Info("session ready", "seed", seed, "width", cfg.Map.Width, "height", cfg.Map.Height,
		"entities", len(world.Entities()))

	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetTPS(cfg.Window.FPS)
	if err := ebiten.RunGame(game.New(cfg, world, seed, logger)); err != nil {
		log.Fatal(err)
	}
}
