package thermal

import (
	"fmt"
	"math"
	"strconv"
)

const (
	// MaxGridCells bounds width*height of a single grid.
	MaxGridCells = 1 << 30
	// maxMagnitude bounds intensities and weights so sums stay finite.
	maxMagnitude = 1e6
	// maxBlobRadius bounds blob handles relative to their chord.
	maxBlobRadius = 4
)

// EdgeShape selects how edge control points are drawn.
type EdgeShape string

const (
	// EdgeCurve is a single open cubic with all four control points random.
	EdgeCurve EdgeShape = "curve"
	// EdgeBlob is a closed chain of cubics through a few random anchors.
	EdgeBlob EdgeShape = "blob"
)

// Params holds the tunable shape of the synthesized field.
type Params struct {
	Falloff FalloffKind

	SourceSpread       float64
	SourceMargin       int
	SourceIntensityMin float64
	SourceIntensityMax float64

	EdgeSpread  float64
	EdgeWeight  float64
	EdgeShape   EdgeShape
	EdgeMinSpan float64

	BlobPoints int
	BlobRadius float64
	BlobEdgy   float64
}

// Config controls the grid dimensions, seeding and field parameters.
type Config struct {
	Width  int
	Height int

	// Seed is used only when Seeded is set; otherwise every call draws a
	// fresh seed and reports it on the result.
	Seed   int64
	Seeded bool

	Params Params
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:  256,
		Height: 256,
		Params: Params{
			Falloff:            FalloffGaussian,
			SourceSpread:       50,
			SourceMargin:       10,
			SourceIntensityMin: 200.0 / 255.0,
			SourceIntensityMax: 1,
			EdgeSpread:         5,
			EdgeWeight:         1,
			EdgeShape:          EdgeCurve,
			EdgeMinSpan:        0.5,
			BlobPoints:         3,
			BlobRadius:         0.2,
			BlobEdgy:           0,
		},
	}
}

// WithSeed returns a copy of c seeded with seed.
func (c Config) WithSeed(seed int64) Config {
	c.Seed = seed
	c.Seeded = true
	return c
}

// Validate reports the first problem with c, wrapped in ErrInvalidArgument.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: width and height must be positive, got %dx%d", ErrInvalidArgument, c.Width, c.Height)
	}
	if c.Width > MaxGridCells/c.Height {
		return fmt.Errorf("%w: grid %dx%d exceeds %d cells", ErrInvalidArgument, c.Width, c.Height, MaxGridCells)
	}
	return c.Params.Validate()
}

// Validate reports the first out-of-range parameter.
func (p Params) Validate() error {
	for _, v := range []struct {
		name  string
		value float64
	}{
		{"source spread", p.SourceSpread},
		{"source intensity min", p.SourceIntensityMin},
		{"source intensity max", p.SourceIntensityMax},
		{"edge spread", p.EdgeSpread},
		{"edge weight", p.EdgeWeight},
		{"edge min span", p.EdgeMinSpan},
		{"blob radius", p.BlobRadius},
		{"blob edgy", p.BlobEdgy},
	} {
		if !isFinite(v.value) {
			return fmt.Errorf("%w: %s must be finite, got %v", ErrInvalidArgument, v.name, v.value)
		}
	}
	if _, err := p.Falloff.Build(p.SourceSpread); err != nil {
		return fmt.Errorf("source spread: %w", err)
	}
	if _, err := p.Falloff.Build(p.EdgeSpread); err != nil {
		return fmt.Errorf("edge spread: %w", err)
	}
	if p.SourceMargin < 0 {
		return fmt.Errorf("%w: source margin must be non-negative, got %d", ErrInvalidArgument, p.SourceMargin)
	}
	if p.SourceIntensityMin <= 0 || p.SourceIntensityMax < p.SourceIntensityMin || p.SourceIntensityMax > maxMagnitude {
		return fmt.Errorf("%w: source intensity range [%v, %v] must be positive, ordered and at most %v",
			ErrInvalidArgument, p.SourceIntensityMin, p.SourceIntensityMax, float64(maxMagnitude))
	}
	if p.EdgeWeight <= 0 || p.EdgeWeight > maxMagnitude {
		return fmt.Errorf("%w: edge weight must be within (0, %v], got %v", ErrInvalidArgument, float64(maxMagnitude), p.EdgeWeight)
	}
	if p.EdgeMinSpan < 0 || p.EdgeMinSpan > 1 {
		return fmt.Errorf("%w: edge min span must be within [0, 1], got %v", ErrInvalidArgument, p.EdgeMinSpan)
	}
	switch p.EdgeShape {
	case EdgeCurve:
	case EdgeBlob:
		if p.BlobPoints < 2 {
			return fmt.Errorf("%w: blob needs at least 2 points, got %d", ErrInvalidArgument, p.BlobPoints)
		}
		if p.BlobRadius < 0 || p.BlobRadius > maxBlobRadius {
			return fmt.Errorf("%w: blob radius must be within [0, %v], got %v", ErrInvalidArgument, float64(maxBlobRadius), p.BlobRadius)
		}
	default:
		return fmt.Errorf("%w: unknown edge shape %q", ErrInvalidArgument, string(p.EdgeShape))
	}
	return nil
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Unparsable or out-of-range values are ignored.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	ApplyMap(&c, cfg)
	return c
}

// ApplyMap overrides fields of c from a string map.
func ApplyMap(c *Config, cfg map[string]string) {
	if cfg == nil {
		return
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 && parsed <= MaxGridCells {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 && parsed <= MaxGridCells {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
			c.Seeded = true
		}
	}
	if v, ok := cfg["falloff"]; ok {
		kind := FalloffKind(v)
		if _, err := kind.Build(1); err == nil {
			c.Params.Falloff = kind
		}
	}
	if v, ok := cfg["source_spread"]; ok {
		if parsed, err := parseFinite(v); err == nil && parsed > 0 {
			c.Params.SourceSpread = parsed
		}
	}
	if v, ok := cfg["source_margin"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.SourceMargin = parsed
		}
	}
	if v, ok := cfg["source_intensity_min"]; ok {
		if parsed, err := parseFinite(v); err == nil && parsed > 0 {
			c.Params.SourceIntensityMin = parsed
		}
	}
	if v, ok := cfg["source_intensity_max"]; ok {
		if parsed, err := parseFinite(v); err == nil && parsed > 0 && parsed <= maxMagnitude {
			c.Params.SourceIntensityMax = parsed
		}
	}
	if c.Params.SourceIntensityMax < c.Params.SourceIntensityMin {
		c.Params.SourceIntensityMax = c.Params.SourceIntensityMin
	}
	if v, ok := cfg["edge_spread"]; ok {
		if parsed, err := parseFinite(v); err == nil && parsed > 0 {
			c.Params.EdgeSpread = parsed
		}
	}
	if v, ok := cfg["edge_weight"]; ok {
		if parsed, err := parseFinite(v); err == nil && parsed > 0 && parsed <= maxMagnitude {
			c.Params.EdgeWeight = parsed
		}
	}
	if v, ok := cfg["edge_shape"]; ok {
		switch shape := EdgeShape(v); shape {
		case EdgeCurve, EdgeBlob:
			c.Params.EdgeShape = shape
		}
	}
	if v, ok := cfg["edge_min_span"]; ok {
		if parsed, err := parseFinite(v); err == nil && parsed >= 0 && parsed <= 1 {
			c.Params.EdgeMinSpan = parsed
		}
	}
	if v, ok := cfg["blob_points"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 2 {
			c.Params.BlobPoints = parsed
		}
	}
	if v, ok := cfg["blob_radius"]; ok {
		if parsed, err := parseFinite(v); err == nil && parsed >= 0 && parsed <= maxBlobRadius {
			c.Params.BlobRadius = parsed
		}
	}
	if v, ok := cfg["blob_edgy"]; ok {
		if parsed, err := parseFinite(v); err == nil {
			c.Params.BlobEdgy = parsed
		}
	}
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// parseFinite parses v and rejects NaN and infinities, which ParseFloat
// accepts as "nan" and "inf".
func parseFinite(v string) (float64, error) {
	parsed, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, err
	}
	if !isFinite(parsed) {
		return 0, fmt.Errorf("%q is not finite", v)
	}
	return parsed, nil
}
