package thermal

import (
	"errors"
	"math"
	"testing"
)

func TestFromMapOverrides(t *testing.T) {
	c := FromMap(map[string]string{
		"w":             "64",
		"h":             "32",
		"seed":          "99",
		"falloff":       "inverse-square",
		"source_spread": "12.5",
		"edge_spread":   "3",
		"edge_shape":    "blob",
		"blob_points":   "5",
	})
	if c.Width != 64 || c.Height != 32 {
		t.Fatalf("size %dx%d, want 64x32", c.Width, c.Height)
	}
	if !c.Seeded || c.Seed != 99 {
		t.Fatalf("seed = %d seeded=%v, want 99 seeded", c.Seed, c.Seeded)
	}
	if c.Params.Falloff != FalloffInverseSquare {
		t.Fatalf("falloff = %q", c.Params.Falloff)
	}
	if c.Params.SourceSpread != 12.5 || c.Params.EdgeSpread != 3 {
		t.Fatalf("spreads = %v/%v", c.Params.SourceSpread, c.Params.EdgeSpread)
	}
	if c.Params.EdgeShape != EdgeBlob || c.Params.BlobPoints != 5 {
		t.Fatalf("edge shape = %q points %d", c.Params.EdgeShape, c.Params.BlobPoints)
	}
	if err := c.Validate(); err != nil {
		t.Fatalf("overridden config invalid: %v", err)
	}
}

func TestFromMapIgnoresBadValues(t *testing.T) {
	def := DefaultConfig()
	c := FromMap(map[string]string{
		"w":             "-4",
		"h":             "tall",
		"seed":          "x",
		"falloff":       "cubic",
		"source_spread": "0",
		"edge_shape":    "spiral",
		"edge_min_span": "1.5",
		"blob_points":   "1",
	})
	if c != def {
		t.Fatalf("bad values changed the config: %+v", c)
	}
}

func TestFromMapNil(t *testing.T) {
	if c := FromMap(nil); c != DefaultConfig() {
		t.Fatalf("FromMap(nil) = %+v", c)
	}
}

func TestConfigValidate(t *testing.T) {
	cases := map[string]func(*Config){
		"zero width":      func(c *Config) { c.Width = 0 },
		"negative height": func(c *Config) { c.Height = -3 },
		"spread":          func(c *Config) { c.Params.EdgeSpread = 0 },
		"falloff":         func(c *Config) { c.Params.Falloff = "square" },
		"intensity":       func(c *Config) { c.Params.SourceIntensityMax = 0.1 },
		"weight":          func(c *Config) { c.Params.EdgeWeight = 0 },
		"shape":           func(c *Config) { c.Params.EdgeShape = "zigzag" },
		"grid overflow": func(c *Config) {
			c.Width = 1 << 32
			c.Height = 1 << 32
		},
		"grid too large": func(c *Config) {
			c.Width = MaxGridCells
			c.Height = 2
		},
		"blob points": func(c *Config) {
			c.Params.EdgeShape = EdgeBlob
			c.Params.BlobPoints = 1
		},
	}
	for name, mutate := range cases {
		c := DefaultConfig()
		mutate(&c)
		if err := c.Validate(); !errors.Is(err, ErrInvalidArgument) {
			t.Fatalf("%s: error = %v, want ErrInvalidArgument", name, err)
		}
	}
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestValidateRejectsNonFiniteParams(t *testing.T) {
	fields := map[string]func(*Params, float64){
		"source spread":        func(p *Params, v float64) { p.SourceSpread = v },
		"source intensity min": func(p *Params, v float64) { p.SourceIntensityMin = v },
		"source intensity max": func(p *Params, v float64) { p.SourceIntensityMax = v },
		"edge spread":          func(p *Params, v float64) { p.EdgeSpread = v },
		"edge weight":          func(p *Params, v float64) { p.EdgeWeight = v },
		"edge min span":        func(p *Params, v float64) { p.EdgeMinSpan = v },
		"blob radius":          func(p *Params, v float64) { p.BlobRadius = v },
		"blob edgy":            func(p *Params, v float64) { p.BlobEdgy = v },
	}
	for name, set := range fields {
		for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
			c := DefaultConfig()
			c.Params.EdgeShape = EdgeBlob
			set(&c.Params, v)
			if err := c.Validate(); !errors.Is(err, ErrInvalidArgument) {
				t.Fatalf("%s = %v: error = %v, want ErrInvalidArgument", name, v, err)
			}
		}
	}
}

func TestValidateBoundsMagnitudes(t *testing.T) {
	cases := map[string]func(*Params){
		"huge weight":    func(p *Params) { p.EdgeWeight = 1e300 },
		"huge intensity": func(p *Params) { p.SourceIntensityMax = 1e300 },
		"huge blob radius": func(p *Params) {
			p.EdgeShape = EdgeBlob
			p.BlobRadius = 1e12
		},
	}
	for name, mutate := range cases {
		c := DefaultConfig()
		mutate(&c.Params)
		if err := c.Validate(); !errors.Is(err, ErrInvalidArgument) {
			t.Fatalf("%s: error = %v, want ErrInvalidArgument", name, err)
		}
	}
}

func TestFromMapIgnoresNonFiniteValues(t *testing.T) {
	def := DefaultConfig()
	c := FromMap(map[string]string{
		"source_spread":        "inf",
		"source_intensity_max": "+Inf",
		"edge_spread":          "NaN",
		"edge_weight":          "inf",
		"edge_min_span":        "nan",
		"blob_radius":          "1e12",
		"blob_edgy":            "-inf",
		"w":                    "99999999999",
	})
	if c != def {
		t.Fatalf("non-finite values changed the config: %+v", c)
	}
}
