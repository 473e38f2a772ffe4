//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"log/slog"
	"os"

	"thermal-heatmap/internal/app"
	"thermal-heatmap/pkg/thermal"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	thermal.SetLogger(logger)

	session, err := app.NewSession(cfg.ThermalConfig(), cfg.Sources, cfg.Edges, cfg.Colormap)
	if err != nil {
		log.Fatal(err)
	}

	game := app.New(session, cfg.Scale, cfg.Slideshow, logger)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("thermal-heatmap")
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
