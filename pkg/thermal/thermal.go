// Package thermal synthesizes thermal-looking heatmaps: random point heat
// sources and random Bezier edges each contribute a distance falloff to a
// grid, and the sum is rescaled so its hottest cell is exactly 1.
//
// Generate is the entry point:
//
//	cfg := thermal.DefaultConfig().WithSeed(42)
//	hm, err := thermal.Generate(2, 3, cfg)
//	if err != nil {
//		return err
//	}
//	rows := hm.Rows() // 256 rows of 256 values in [0, 1]
//
// Each call owns its grid and random source, so calls may run concurrently.
package thermal

import (
	"fmt"
	"log/slog"
	"time"

	"thermal-heatmap/pkg/core"
)

// Heatmap is the normalized result of Generate.
type Heatmap struct {
	grid    *core.Grid
	seed    int64
	peak    float64
	sources []HeatSource
	edges   []Edge
}

// Grid returns the normalized grid.
func (h *Heatmap) Grid() *core.Grid { return h.grid }

// Rows returns the grid as height rows of width values.
func (h *Heatmap) Rows() [][]float64 { return h.grid.Rows() }

// Width returns the grid width.
func (h *Heatmap) Width() int { return h.grid.W }

// Height returns the grid height.
func (h *Heatmap) Height() int { return h.grid.H }

// Seed returns the seed that reproduces this heatmap.
func (h *Heatmap) Seed() int64 { return h.seed }

// Peak returns the maximum of the combined field before normalization.
func (h *Heatmap) Peak() float64 { return h.peak }

// Sources returns the placed heat sources.
func (h *Heatmap) Sources() []HeatSource { return h.sources }

// Edges returns the placed edges.
func (h *Heatmap) Edges() []Edge { return h.edges }

// Generate synthesizes a heatmap with numSources heat sources and numEdges
// edges. Invalid arguments are reported before anything is allocated and
// wrap ErrInvalidArgument.
func Generate(numSources, numEdges int, cfg Config) (*Heatmap, error) {
	if numSources < 0 {
		return nil, fmt.Errorf("%w: num sources must be non-negative, got %d", ErrInvalidArgument, numSources)
	}
	if numEdges < 0 {
		return nil, fmt.Errorf("%w: num edges must be non-negative, got %d", ErrInvalidArgument, numEdges)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	p := cfg.Params
	sourceFalloff, err := p.Falloff.Build(p.SourceSpread)
	if err != nil {
		return nil, err
	}
	edgeFalloff, err := p.Falloff.Build(p.EdgeSpread)
	if err != nil {
		return nil, err
	}

	var rng *core.RNG
	if cfg.Seeded {
		rng = core.NewRNG(cfg.Seed)
	} else {
		rng = core.NewEntropyRNG()
	}

	start := time.Now()
	w, h := cfg.Width, cfg.Height
	sources := PlaceSources(numSources, w, h, p, rng)
	edges := PlaceEdges(numEdges, w, h, p, rng)

	combined, err := Composite(
		SourceField(w, h, sources, sourceFalloff),
		EdgeField(w, h, edges, edgeFalloff, p.EdgeWeight),
	)
	if err != nil {
		return nil, err
	}
	peak := Normalize(combined)

	Logger().Debug("heatmap generated",
		slog.Int("width", w),
		slog.Int("height", h),
		slog.Int("sources", numSources),
		slog.Int("edges", numEdges),
		slog.Int64("seed", rng.Seed()),
		slog.Float64("peak", peak),
		slog.Duration("elapsed", time.Since(start)),
	)

	return &Heatmap{
		grid:    combined,
		seed:    rng.Seed(),
		peak:    peak,
		sources: sources,
		edges:   edges,
	}, nil
}
