package main

import (
	"log"
	"log/slog"
	"os"

	"thermal-heatmap/internal/api"
	"thermal-heatmap/internal/config"
	"thermal-heatmap/pkg/thermal"
)

func main() {
	cfg := config.Load()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	thermal.SetLogger(logger)

	router := api.SetupRouter(cfg, logger)

	logger.Info("server starting",
		slog.String("port", cfg.Port),
		slog.Int("max_cells", cfg.MaxCells),
		slog.Bool("auth", cfg.JWTSecret != ""),
	)
	if err := router.Run(cfg.Port); err != nil {
		log.Fatal("server stopped: ", err)
	}
}
