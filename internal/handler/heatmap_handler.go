package handler

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"thermal-heatmap/internal/core"
	"thermal-heatmap/internal/render"
	"thermal-heatmap/pkg/response"
	"thermal-heatmap/pkg/thermal"
)

const (
	maxFeatures = 64
	maxScale    = 16
)

// HeatmapQuery is the query string accepted by the heatmap endpoints.
// Pointer fields distinguish "absent" from zero.
type HeatmapQuery struct {
	Sources  *int   `form:"sources"`
	Edges    *int   `form:"edges"`
	Width    int    `form:"width"`
	Height   int    `form:"height"`
	Seed     *int64 `form:"seed"`
	Falloff  string `form:"falloff"`
	Format   string `form:"format"`
	Colormap string `form:"colormap"`
	Scale    int    `form:"scale"`
	Smooth   bool   `form:"smooth"`
}

// SourcePayload describes one placed heat source.
type SourcePayload struct {
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Intensity float64 `json:"intensity"`
}

// HeatmapPayload is the JSON body of a generated heatmap.
type HeatmapPayload struct {
	Width   int             `json:"width"`
	Height  int             `json:"height"`
	Seed    int64           `json:"seed"`
	Peak    float64         `json:"peak"`
	Sources []SourcePayload `json:"sources"`
	Edges   int             `json:"edges"`
	Values  [][]float64     `json:"values"`
}

// HeatmapHandler handles HTTP requests for heatmaps and presets
type HeatmapHandler struct {
	maxCells int
}

// NewHeatmapHandler creates a handler that rejects grids above maxCells cells
func NewHeatmapHandler(maxCells int) *HeatmapHandler {
	return &HeatmapHandler{maxCells: maxCells}
}

// ListPresets handles GET /api/v1/presets
func (h *HeatmapHandler) ListPresets(c *gin.Context) {
	response.Success(c, gin.H{
		"presets":   core.Presets(),
		"colormaps": render.ColormapNames(),
		"falloffs":  thermal.FalloffKinds(),
	})
}

// GetHeatmap handles GET /api/v1/heatmap
func (h *HeatmapHandler) GetHeatmap(c *gin.Context) {
	var q HeatmapQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, "invalid query parameters: "+err.Error())
		return
	}
	sources, edges := 2, 3
	if q.Sources != nil {
		sources = *q.Sources
	}
	if q.Edges != nil {
		edges = *q.Edges
	}
	h.generate(c, q, sources, edges, h.baseConfig(q))
}

// GetPresetHeatmap handles GET /api/v1/presets/:name/heatmap
func (h *HeatmapHandler) GetPresetHeatmap(c *gin.Context) {
	p, ok := core.LookupPreset(c.Param("name"))
	if !ok {
		response.NotFound(c, fmt.Sprintf("unknown preset %q", c.Param("name")))
		return
	}
	var q HeatmapQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, "invalid query parameters: "+err.Error())
		return
	}
	sources, edges := p.Sources, p.Edges
	if q.Sources != nil {
		sources = *q.Sources
	}
	if q.Edges != nil {
		edges = *q.Edges
	}
	h.generate(c, q, sources, edges, p.Config(h.baseConfig(q)))
}

func (h *HeatmapHandler) baseConfig(q HeatmapQuery) thermal.Config {
	cfg := thermal.DefaultConfig()
	if q.Width != 0 {
		cfg.Width = q.Width
	}
	if q.Height != 0 {
		cfg.Height = q.Height
	}
	if q.Falloff != "" {
		cfg.Params.Falloff = thermal.FalloffKind(q.Falloff)
	}
	if q.Seed != nil {
		cfg = cfg.WithSeed(*q.Seed)
	}
	return cfg
}

func (h *HeatmapHandler) generate(c *gin.Context, q HeatmapQuery, sources, edges int, cfg thermal.Config) {
	if cfg.Width > 0 && cfg.Height > 0 && cfg.Width > h.maxCells/cfg.Height {
		response.BadRequest(c, fmt.Sprintf("grid %dx%d exceeds the %d cell limit", cfg.Width, cfg.Height, h.maxCells))
		return
	}
	if sources > maxFeatures || edges > maxFeatures {
		response.BadRequest(c, fmt.Sprintf("at most %d sources and %d edges per request", maxFeatures, maxFeatures))
		return
	}

	format := q.Format
	if format == "" {
		format = "json"
	}
	var out imageOptions
	switch format {
	case "json":
	case "png":
		var err error
		if out, err = parseImageOptions(q); err != nil {
			response.BadRequest(c, err.Error())
			return
		}
	default:
		response.BadRequest(c, fmt.Sprintf("unknown format %q", format))
		return
	}

	hm, err := thermal.Generate(sources, edges, cfg)
	if err != nil {
		if errors.Is(err, thermal.ErrInvalidArgument) {
			response.BadRequest(c, err.Error())
			return
		}
		_ = c.Error(err)
		response.InternalError(c, "failed to generate heatmap")
		return
	}
	c.Header("X-Heatmap-Seed", strconv.FormatInt(hm.Seed(), 10))

	if format == "png" {
		h.writePNG(c, out, hm)
		return
	}
	response.Success(c, payload(hm))
}

type imageOptions struct {
	colormap *render.Colormap
	scale    int
	smooth   bool
}

func parseImageOptions(q HeatmapQuery) (imageOptions, error) {
	cm, err := render.LookupColormap(q.Colormap)
	if err != nil {
		return imageOptions{}, err
	}
	scale := q.Scale
	if scale == 0 {
		scale = 1
	}
	if scale < 1 || scale > maxScale {
		return imageOptions{}, fmt.Errorf("scale must be within [1, %d], got %d", maxScale, scale)
	}
	return imageOptions{colormap: cm, scale: scale, smooth: q.Smooth}, nil
}

func (h *HeatmapHandler) writePNG(c *gin.Context, out imageOptions, hm *thermal.Heatmap) {
	var buf bytes.Buffer
	img := render.Upscale(render.Image(hm.Grid(), out.colormap), out.scale, out.smooth)
	if err := render.WritePNG(&buf, img); err != nil {
		_ = c.Error(err)
		response.InternalError(c, "failed to encode image")
		return
	}
	c.Data(http.StatusOK, "image/png", buf.Bytes())
}

func payload(hm *thermal.Heatmap) HeatmapPayload {
	src := make([]SourcePayload, len(hm.Sources()))
	for i, s := range hm.Sources() {
		src[i] = SourcePayload{X: s.Pos.X, Y: s.Pos.Y, Intensity: s.Intensity}
	}
	return HeatmapPayload{
		Width:   hm.Width(),
		Height:  hm.Height(),
		Seed:    hm.Seed(),
		Peak:    hm.Peak(),
		Sources: src,
		Edges:   len(hm.Edges()),
		Values:  hm.Rows(),
	}
}
