package config

import (
	"os"
	"strconv"
)

// DefaultMaxCells bounds width*height of a single request.
const DefaultMaxCells = 1 << 20

// Config holds the HTTP service settings.
type Config struct {
	Port      string
	MaxCells  int
	JWTSecret string // empty disables authentication
}

// Load reads the configuration from the environment.
func Load() *Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = ":8080"
	}

	maxCells := DefaultMaxCells
	if v := os.Getenv("HEATMAP_MAX_CELLS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			maxCells = parsed
		}
	}

	return &Config{
		Port:      port,
		MaxCells:  maxCells,
		JWTSecret: os.Getenv("HEATMAP_JWT_SECRET"),
	}
}
