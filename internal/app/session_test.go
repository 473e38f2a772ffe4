package app

import (
	"flag"
	"slices"
	"testing"
	"time"

	"thermal-heatmap/internal/core"
	"thermal-heatmap/pkg/thermal"
)

var (
	_ core.ParameterControlsProvider = (*Session)(nil)
	_ core.IntParameterSetter        = (*Session)(nil)
	_ core.FloatParameterSetter      = (*Session)(nil)
)

func testSession(t *testing.T) *Session {
	t.Helper()
	cfg := thermal.DefaultConfig()
	cfg.Width = 24
	cfg.Height = 16
	s, err := NewSession(cfg.WithSeed(42), 2, 1, "")
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestSessionGeneratesOnCreate(t *testing.T) {
	s := testSession(t)
	if s.Heatmap() == nil || s.Version() != 1 {
		t.Fatalf("heatmap=%v version=%d", s.Heatmap(), s.Version())
	}
	if len(s.Levels()) != 24*16 {
		t.Fatalf("got %d levels, want %d", len(s.Levels()), 24*16)
	}
	if !slices.Contains(s.Levels(), 255) {
		t.Fatal("levels never reach 255")
	}
	if s.Colormap().Name() != "hot" {
		t.Fatalf("default colormap = %q", s.Colormap().Name())
	}
}

func TestSessionRegenerateKeepsSeed(t *testing.T) {
	s := testSession(t)
	before := slices.Clone(s.Levels())
	if err := s.Regenerate(); err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(before, s.Levels()) {
		t.Fatal("regenerating with the same seed changed the heatmap")
	}
	if err := s.Reseed(7); err != nil {
		t.Fatal(err)
	}
	if s.Seed() != 7 || slices.Equal(before, s.Levels()) {
		t.Fatal("reseeding did not produce a new heatmap")
	}
}

func TestSessionUnseededPinsFirstSeed(t *testing.T) {
	cfg := thermal.DefaultConfig()
	cfg.Width = 12
	cfg.Height = 12
	s, err := NewSession(cfg, 1, 1, "gray")
	if err != nil {
		t.Fatal(err)
	}
	if s.Seed() != s.Heatmap().Seed() {
		t.Fatalf("session seed %d, heatmap seed %d", s.Seed(), s.Heatmap().Seed())
	}
	before := slices.Clone(s.Levels())
	if err := s.Regenerate(); err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(before, s.Levels()) {
		t.Fatal("unseeded session drifted after regenerate")
	}
}

func TestSessionSettersClampAndRegenerate(t *testing.T) {
	s := testSession(t)
	if !s.SetIntParameter("sources", 1000) {
		t.Fatal("sources should be settable")
	}
	if sources, _ := s.Counts(); sources != maxCount {
		t.Fatalf("sources = %d, want clamp to %d", sources, maxCount)
	}
	if !s.SetIntParameter("edges", -5) {
		t.Fatal("edges should be settable")
	}
	if _, edges := s.Counts(); edges != 0 {
		t.Fatalf("edges = %d, want 0", edges)
	}
	v := s.Version()
	if !s.SetFloatParameter("edge_spread", 0) {
		t.Fatal("edge_spread should be settable")
	}
	if s.cfg.Params.EdgeSpread != 0.5 || s.Version() != v+1 {
		t.Fatalf("edge spread = %v version = %d", s.cfg.Params.EdgeSpread, s.Version())
	}
	if s.SetFloatParameter("sources", 2) || s.SetIntParameter("edge_weight", 2) || s.SetIntParameter("nope", 1) {
		t.Fatal("setter accepted a key of the wrong type")
	}
}

func TestSessionSettersKeepValuesOnFailure(t *testing.T) {
	s := testSession(t)
	hm, v := s.Heatmap(), s.Version()
	s.cfg.Params.Falloff = "bogus"

	if s.SetFloatParameter("edge_spread", 9) {
		t.Fatal("SetFloatParameter reported success for a failed regenerate")
	}
	if s.cfg.Params.EdgeSpread != 5 {
		t.Fatalf("edge spread = %v, want the previous 5", s.cfg.Params.EdgeSpread)
	}
	if s.SetIntParameter("sources", 6) {
		t.Fatal("SetIntParameter reported success for a failed regenerate")
	}
	if sources, edges := s.Counts(); sources != 2 || edges != 1 {
		t.Fatalf("counts = %d/%d, want the previous 2/1", sources, edges)
	}
	if s.Heatmap() != hm || s.Version() != v {
		t.Fatal("a failed regenerate replaced the heatmap")
	}
}

func TestSessionRejectsUnknownColormap(t *testing.T) {
	if _, err := NewSession(thermal.DefaultConfig(), 1, 0, "plasma"); err == nil {
		t.Fatal("expected an error for an unknown colormap")
	}
}

func TestSessionCycleColormap(t *testing.T) {
	s := testSession(t)
	first := s.Colormap().Name()
	seen := map[string]bool{first: true}
	for i := 0; i < 10; i++ {
		s.CycleColormap()
		seen[s.Colormap().Name()] = true
	}
	if len(seen) < 3 {
		t.Fatalf("cycled through %v", seen)
	}
}

func TestConfigBindAndOverrides(t *testing.T) {
	c := NewConfig()
	fs := flag.NewFlagSet("heatmap", flag.ContinueOnError)
	c.Bind(fs)
	err := fs.Parse([]string{"-sources", "4", "-width", "64", "-seed", "9", "-slideshow", "5s",
		"-set", "edge_spread=8", "-set", "falloff=cutoff", "-set", "junk"})
	if err != nil {
		t.Fatal(err)
	}
	if c.Sources != 4 || c.Slideshow != 5*time.Second {
		t.Fatalf("parsed %+v", c)
	}
	cfg := c.ThermalConfig()
	if cfg.Width != 64 || !cfg.Seeded || cfg.Seed != 9 {
		t.Fatalf("thermal config %+v", cfg)
	}
	if cfg.Params.EdgeSpread != 8 || cfg.Params.Falloff != thermal.FalloffCutoff {
		t.Fatalf("overrides not applied: %+v", cfg.Params)
	}

	c.Random = true
	if c.ThermalConfig().Seeded {
		t.Fatal("-random should leave the config unseeded")
	}
}
