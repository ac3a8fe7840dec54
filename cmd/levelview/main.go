//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"roomgrid/internal/app"
	"roomgrid/internal/config"
	"roomgrid/internal/level"
	_ "roomgrid/internal/presets/classic"
	_ "roomgrid/internal/presets/crossroads"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg, err := app.NewConfig()
	if err != nil {
		config.Exitf("%v", err)
	}
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	levelCfg, err := cfg.Level.Resolve()
	if err != nil {
		log.Fatal(err)
	}
	logger := log.New(os.Stderr, "roomgrid: ", log.LstdFlags)
	session, err := level.NewSession(levelCfg, cfg.Level.Catalog, level.WithLogger(logger))
	if err != nil {
		log.Fatal(err)
	}
	if err := session.Generate(cfg.Level.Seed); err != nil {
		logger.Printf("seed %s: %v", session.Seed(), err)
	}

	game := app.New(session, cfg, logger)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("roomgrid — " + session.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
