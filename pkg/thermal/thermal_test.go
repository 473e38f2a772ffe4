package thermal

import (
	"bytes"
	"errors"
	"log/slog"
	"math"
	"slices"
	"strings"
	"testing"
)

func smallConfig(w, h int, seed int64) Config {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return cfg.WithSeed(seed)
}

func TestGenerateShapeAndRange(t *testing.T) {
	cases := []struct{ sources, edges, w, h int }{
		{1, 0, 10, 10},
		{0, 1, 12, 7},
		{3, 2, 33, 21},
		{5, 0, 1, 1},
		{0, 3, 40, 2},
	}
	for _, tc := range cases {
		hm, err := Generate(tc.sources, tc.edges, smallConfig(tc.w, tc.h, 17))
		if err != nil {
			t.Fatalf("%+v: %v", tc, err)
		}
		rows := hm.Rows()
		if len(rows) != tc.h {
			t.Fatalf("%+v: %d rows, want %d", tc, len(rows), tc.h)
		}
		for y, row := range rows {
			if len(row) != tc.w {
				t.Fatalf("%+v: row %d has %d values, want %d", tc, y, len(row), tc.w)
			}
			for x, v := range row {
				if v < 0 || v > 1 || math.IsNaN(v) {
					t.Fatalf("%+v: cell (%d,%d) = %v outside [0, 1]", tc, x, y, v)
				}
			}
		}
		if got := hm.Grid().Max(); got != 1 {
			t.Fatalf("%+v: max = %v, want exactly 1", tc, got)
		}
	}
}

func TestGenerateEmptyIsAllZero(t *testing.T) {
	hm, err := Generate(0, 0, smallConfig(16, 16, 1))
	if err != nil {
		t.Fatal(err)
	}
	for i, v := range hm.Grid().Cells() {
		if v != 0 {
			t.Fatalf("cell %d = %v, want 0", i, v)
		}
	}
	if hm.Peak() != 0 {
		t.Fatalf("peak = %v, want 0", hm.Peak())
	}
}

func TestGenerateDeterministic(t *testing.T) {
	cfg := smallConfig(48, 40, 2024)
	a, err := Generate(3, 2, cfg)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Generate(3, 2, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(a.Grid().Cells(), b.Grid().Cells()) {
		t.Fatal("same seed produced different grids")
	}

	c, err := Generate(3, 2, cfg.WithSeed(2025))
	if err != nil {
		t.Fatal(err)
	}
	if slices.Equal(a.Grid().Cells(), c.Grid().Cells()) {
		t.Fatal("different seeds should produce different grids")
	}
}

func TestGenerateUnseededReportsReplayableSeed(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 24
	cfg.Height = 24
	hm, err := Generate(2, 1, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if hm.Grid().Max() != 1 {
		t.Fatalf("unseeded max = %v, want 1", hm.Grid().Max())
	}
	replay, err := Generate(2, 1, cfg.WithSeed(hm.Seed()))
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(hm.Grid().Cells(), replay.Grid().Cells()) {
		t.Fatal("replaying the reported seed produced a different grid")
	}
}

func TestGenerateRejectsInvalidArguments(t *testing.T) {
	cases := []struct {
		name           string
		sources, edges int
		cfg            Config
	}{
		{"negative sources", -1, 0, DefaultConfig()},
		{"negative edges", 0, -2, DefaultConfig()},
		{"zero width", 1, 1, smallConfig(0, 10, 1)},
		{"negative height", 1, 1, smallConfig(10, -1, 1)},
		{"overflowing size", 1, 0, smallConfig(1<<32, 1<<32, 1)},
	}
	for _, tc := range cases {
		hm, err := Generate(tc.sources, tc.edges, tc.cfg)
		if !errors.Is(err, ErrInvalidArgument) {
			t.Fatalf("%s: error = %v, want ErrInvalidArgument", tc.name, err)
		}
		if hm != nil {
			t.Fatalf("%s: returned a heatmap alongside the error", tc.name)
		}
	}
}

func TestGenerateSingleSourceScenario(t *testing.T) {
	hm, err := Generate(1, 0, smallConfig(10, 10, 42))
	if err != nil {
		t.Fatal(err)
	}
	if len(hm.Sources()) != 1 {
		t.Fatalf("got %d sources, want 1", len(hm.Sources()))
	}
	src := hm.Sources()[0].Pos
	g := hm.Grid()
	sx, sy := int(src.X), int(src.Y)
	if x, y := g.ArgMax(); x != sx || y != sy {
		t.Fatalf("maximum at (%d,%d), source at (%d,%d)", x, y, sx, sy)
	}
	if g.At(sx, sy) != 1 {
		t.Fatalf("value at source = %v, want 1", g.At(sx, sy))
	}

	dist2 := func(x, y int) int { return (x-sx)*(x-sx) + (y-sy)*(y-sy) }
	for i := range g.Cells() {
		ax, ay := i%g.W, i/g.W
		for j := range g.Cells() {
			bx, by := j%g.W, j/g.W
			if dist2(ax, ay) < dist2(bx, by) && !(g.At(ax, ay) > g.At(bx, by)) {
				t.Fatalf("(%d,%d)=%v is closer to the source than (%d,%d)=%v but not hotter",
					ax, ay, g.At(ax, ay), bx, by, g.At(bx, by))
			}
		}
	}
}

func TestGenerateSingleEdgeScenario(t *testing.T) {
	cfg := smallConfig(10, 10, 42)
	hm, err := Generate(0, 1, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if len(hm.Edges()) != 1 {
		t.Fatalf("got %d edges, want 1", len(hm.Edges()))
	}
	pts := hm.Edges()[0].Polyline()
	g := hm.Grid()
	if g.Max() != 1 {
		t.Fatalf("max = %v, want 1", g.Max())
	}

	// Cells the curve passes through form the ridge.
	ridge := math.Exp(-0.5 / (2 * cfg.Params.EdgeSpread * cfg.Params.EdgeSpread))
	for _, p := range pts {
		x, y := int(math.Round(p.X)), int(math.Round(p.Y))
		if v := g.At(x, y); v < ridge {
			t.Fatalf("cell (%d,%d) under the curve = %v, want >= %v", x, y, v, ridge)
		}
	}

	// Values decay with distance to the curve.
	dmin := make([]float64, len(g.Cells()))
	for i := range dmin {
		dmin[i] = math.Sqrt(nearestSquared(pts, float64(i%g.W), float64(i/g.W)))
	}
	for i, vi := range g.Cells() {
		for j, vj := range g.Cells() {
			if dmin[i] < dmin[j] && vi < vj {
				t.Fatalf("cell %d (d=%.3f, v=%v) is closer to the curve than cell %d (d=%.3f, v=%v) but cooler",
					i, dmin[i], vi, j, dmin[j], vj)
			}
		}
	}
	if slices.Min(g.Cells()) >= 1 {
		t.Fatal("edge field is flat")
	}
}

func TestGenerateBlobEdges(t *testing.T) {
	cfg := smallConfig(32, 32, 8)
	cfg.Params.EdgeShape = EdgeBlob
	hm, err := Generate(0, 2, cfg)
	if err != nil {
		t.Fatal(err)
	}
	for i, e := range hm.Edges() {
		if len(e.Curves) != cfg.Params.BlobPoints {
			t.Fatalf("edge %d has %d curves, want %d", i, len(e.Curves), cfg.Params.BlobPoints)
		}
	}
	if hm.Grid().Max() != 1 {
		t.Fatalf("max = %v, want 1", hm.Grid().Max())
	}
}

func TestGenerateEveryFalloff(t *testing.T) {
	for _, kind := range FalloffKinds() {
		cfg := smallConfig(20, 20, 3)
		cfg.Params.Falloff = kind
		hm, err := Generate(2, 2, cfg)
		if err != nil {
			t.Fatalf("%s: %v", kind, err)
		}
		if hm.Grid().Max() != 1 {
			t.Fatalf("%s: max = %v, want 1", kind, hm.Grid().Max())
		}
	}
}

func TestGenerateLogsThroughSetLogger(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	if _, err := Generate(1, 1, smallConfig(8, 8, 5)); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "heatmap generated") || !strings.Contains(out, "seed=5") {
		t.Fatalf("unexpected log output: %q", out)
	}
}

func TestGenerateRejectsInfiniteWeight(t *testing.T) {
	cfg := smallConfig(32, 32, 4)
	cfg.Params.EdgeWeight = math.Inf(1)
	if _, err := Generate(1, 1, cfg); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("error = %v, want ErrInvalidArgument", err)
	}
}

func TestGenerateTinySpreadStaysFinite(t *testing.T) {
	for _, kind := range FalloffKinds() {
		cfg := smallConfig(16, 16, 6)
		cfg.Params.Falloff = kind
		cfg.Params.SourceSpread = 1e-300
		cfg.Params.EdgeSpread = 1e-300
		hm, err := Generate(2, 1, cfg)
		if err != nil {
			t.Fatalf("%s: %v", kind, err)
		}
		for i, v := range hm.Grid().Cells() {
			if math.IsNaN(v) || v < 0 || v > 1 {
				t.Fatalf("%s: cell %d = %v outside [0, 1]", kind, i, v)
			}
		}
	}
}
