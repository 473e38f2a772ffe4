package thermal

import (
	"math"

	"github.com/golang/geo/r2"

	"thermal-heatmap/pkg/core"
)

// HeatSource is a point emitter with a peak intensity.
type HeatSource struct {
	Pos       r2.Point
	Intensity float64
}

// PlaceSources draws n heat sources on a w×h grid. Positions are integer
// cell centres kept SourceMargin cells away from the border when the grid
// is large enough for that; otherwise the whole axis is used.
func PlaceSources(n, w, h int, p Params, rng *core.RNG) []HeatSource {
	if n <= 0 {
		return nil
	}
	sources := make([]HeatSource, n)
	for i := range sources {
		x := marginPick(rng, w, p.SourceMargin)
		y := marginPick(rng, h, p.SourceMargin)
		sources[i] = HeatSource{
			Pos:       r2.Point{X: float64(x), Y: float64(y)},
			Intensity: rng.Range(p.SourceIntensityMin, p.SourceIntensityMax),
		}
	}
	return sources
}

func marginPick(rng *core.RNG, size, margin int) int {
	if margin > 0 && size-2*margin > 0 {
		return rng.IntRange(margin, size-margin)
	}
	return rng.IntRange(0, size)
}

// SourceField returns the summed contribution of sources over a w×h grid.
func SourceField(w, h int, sources []HeatSource, f Falloff) *core.Grid {
	g := core.NewGrid(w, h)
	cells := g.Cells()
	for _, s := range sources {
		for y := 0; y < h; y++ {
			dy := float64(y) - s.Pos.Y
			row := cells[g.Index(0, y):g.Index(0, y+1)]
			for x := range row {
				dx := float64(x) - s.Pos.X
				row[x] += s.Intensity * f(math.Hypot(dx, dy))
			}
		}
	}
	return g
}
