package api

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"thermal-heatmap/internal/config"
	"thermal-heatmap/internal/handler"
	"thermal-heatmap/internal/middleware"
)

// SetupRouter wires the heatmap routes.
func SetupRouter(cfg *config.Config, logger *slog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.Logger(logger))

	// CORS
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "X-Heatmap-Seed")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "heatmap service is running",
		})
	})

	heatmaps := handler.NewHeatmapHandler(cfg.MaxCells)

	api := r.Group("/api/v1", middleware.Auth(cfg.JWTSecret))
	{
		api.GET("/heatmap", heatmaps.GetHeatmap)

		presets := api.Group("/presets")
		{
			presets.GET("", heatmaps.ListPresets)
			presets.GET("/:name/heatmap", heatmaps.GetPresetHeatmap)
		}
	}

	return r
}
