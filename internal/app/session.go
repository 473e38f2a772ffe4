package app

import (
	"fmt"
	"math/rand/v2"
	"slices"

	"thermal-heatmap/internal/core"
	"thermal-heatmap/internal/render"
	"thermal-heatmap/pkg/thermal"
)

// maxCount bounds the source and edge counts reachable from the HUD.
const maxCount = 64

// Session owns the heatmap shown by the viewer and the parameters that
// produced it. It has no GUI dependencies so it can be driven from tests.
type Session struct {
	cfg     thermal.Config
	sources int
	edges   int

	colormaps []string
	cmIndex   int

	heatmap *thermal.Heatmap
	levels  []uint8
	version int
}

// NewSession generates the first heatmap for cfg.
func NewSession(cfg thermal.Config, sources, edges int, colormap string) (*Session, error) {
	s := &Session{cfg: cfg, sources: sources, edges: edges, colormaps: render.ColormapNames()}
	if colormap != "" {
		idx := slices.Index(s.colormaps, colormap)
		if idx < 0 {
			return nil, fmt.Errorf("unknown colormap %q", colormap)
		}
		s.cmIndex = idx
	} else {
		s.cmIndex = max(slices.Index(s.colormaps, render.DefaultColormap), 0)
	}
	if err := s.Regenerate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Regenerate rebuilds the heatmap with the current parameters and seed.
// An unseeded session picks up the seed of its first heatmap so later
// parameter tweaks keep the same layout.
func (s *Session) Regenerate() error {
	hm, err := thermal.Generate(s.sources, s.edges, s.cfg)
	if err != nil {
		return err
	}
	if !s.cfg.Seeded {
		s.cfg = s.cfg.WithSeed(hm.Seed())
	}
	s.heatmap = hm
	s.levels = render.Quantize(hm.Grid().Cells(), s.levels)
	s.version++
	return nil
}

// Reseed switches to seed and regenerates.
func (s *Session) Reseed(seed int64) error {
	s.cfg = s.cfg.WithSeed(seed)
	return s.Regenerate()
}

// NextSeed regenerates with a fresh random seed.
func (s *Session) NextSeed() error {
	return s.Reseed(rand.Int64())
}

// Heatmap returns the current heatmap.
func (s *Session) Heatmap() *thermal.Heatmap { return s.heatmap }

// Levels returns the current heatmap quantized to 0..255.
func (s *Session) Levels() []uint8 { return s.levels }

// Version increments every time the heatmap changes.
func (s *Session) Version() int { return s.version }

// Size returns the grid dimensions.
func (s *Session) Size() (int, int) { return s.cfg.Width, s.cfg.Height }

// Counts returns the current source and edge counts.
func (s *Session) Counts() (int, int) { return s.sources, s.edges }

// Seed returns the seed of the current heatmap.
func (s *Session) Seed() int64 { return s.cfg.Seed }

// Colormap returns the active colormap.
func (s *Session) Colormap() *render.Colormap {
	cm, err := render.LookupColormap(s.colormaps[s.cmIndex])
	if err != nil {
		cm, _ = render.LookupColormap(render.DefaultColormap)
	}
	return cm
}

// CycleColormap switches to the next colormap.
func (s *Session) CycleColormap() {
	s.cmIndex = (s.cmIndex + 1) % len(s.colormaps)
	s.version++
}

// Parameters reports the values behind the current heatmap.
func (s *Session) Parameters() core.ParameterSnapshot {
	return core.Snapshot(s.cfg, s.sources, s.edges)
}

// ParameterControls lists the HUD-adjustable parameters.
func (s *Session) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "sources", Label: "Sources", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: maxCount, HasMin: true, HasMax: true},
		{Key: "edges", Label: "Edges", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: maxCount, HasMin: true, HasMax: true},
		{Key: "source_spread", Label: "Source spread", Type: core.ParamTypeFloat, Step: 5, Min: 1, Max: 500, HasMin: true, HasMax: true},
		{Key: "edge_spread", Label: "Edge spread", Type: core.ParamTypeFloat, Step: 1, Min: 0.5, Max: 100, HasMin: true, HasMax: true},
		{Key: "edge_weight", Label: "Edge weight", Type: core.ParamTypeFloat, Step: 0.1, Min: 0.1, Max: 10, HasMin: true, HasMax: true},
	}
}

func (s *Session) control(key string) (core.ParameterControl, bool) {
	for _, c := range s.ParameterControls() {
		if c.Key == key {
			return c, true
		}
	}
	return core.ParameterControl{}, false
}

// SetIntParameter updates an integer parameter and regenerates. It reports
// whether the key was recognized and the new heatmap built; on failure the
// previous value is kept.
func (s *Session) SetIntParameter(key string, value int) bool {
	ctrl, ok := s.control(key)
	if !ok || ctrl.Type != core.ParamTypeInt {
		return false
	}
	value = int(ctrl.Clamp(float64(value)))
	sources, edges := s.sources, s.edges
	switch key {
	case "sources":
		s.sources = value
	case "edges":
		s.edges = value
	}
	if err := s.Regenerate(); err != nil {
		s.sources, s.edges = sources, edges
		return false
	}
	return true
}

// SetFloatParameter updates a floating point parameter and regenerates.
func (s *Session) SetFloatParameter(key string, value float64) bool {
	ctrl, ok := s.control(key)
	if !ok || ctrl.Type != core.ParamTypeFloat {
		return false
	}
	value = ctrl.Clamp(value)
	prev := s.cfg
	switch key {
	case "source_spread":
		s.cfg.Params.SourceSpread = value
	case "edge_spread":
		s.cfg.Params.EdgeSpread = value
	case "edge_weight":
		s.cfg.Params.EdgeWeight = value
	}
	if err := s.Regenerate(); err != nil {
		s.cfg = prev
		return false
	}
	return true
}
