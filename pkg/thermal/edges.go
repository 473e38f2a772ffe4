package thermal

import (
	"math"

	"github.com/golang/geo/r2"

	"thermal-heatmap/pkg/core"
)

// maxSpanAttempts bounds the redraws of a curve's endpoints.
const maxSpanAttempts = 32

// Edge is one boundary made of one or more cubic Beziers.
type Edge struct {
	Curves []Bezier
}

// Polyline samples every curve of the edge densely enough that consecutive
// samples are at most one cell apart.
func (e Edge) Polyline() []r2.Point {
	var pts []r2.Point
	for _, c := range e.Curves {
		samples, err := c.Sample(c.SampleCount())
		if err != nil {
			continue
		}
		pts = append(pts, samples...)
	}
	return pts
}

// PlaceEdges draws n edges on a w×h grid using p.EdgeShape.
func PlaceEdges(n, w, h int, p Params, rng *core.RNG) []Edge {
	if n <= 0 {
		return nil
	}
	edges := make([]Edge, n)
	for i := range edges {
		if p.EdgeShape == EdgeBlob {
			edges[i] = randomBlob(w, h, p, rng)
			continue
		}
		edges[i] = Edge{Curves: []Bezier{randomCurve(w, h, p.EdgeMinSpan, rng)}}
	}
	return edges
}

// randomCurve draws all four control points uniformly over the grid. The
// endpoints are redrawn until they are at least minSpan·min(w, h) apart so
// curves cross a useful part of the grid; after maxSpanAttempts the last
// draw is kept.
func randomCurve(w, h int, minSpan float64, rng *core.RNG) Bezier {
	want := minSpan * float64(min(w, h)-1)
	var p0, p3 r2.Point
	for attempt := 0; attempt < maxSpanAttempts; attempt++ {
		p0 = randomPoint(w, h, rng)
		p3 = randomPoint(w, h, rng)
		if p3.Sub(p0).Norm() >= want {
			break
		}
	}
	return Bezier{
		P0: p0,
		P1: randomPoint(w, h, rng),
		P2: randomPoint(w, h, rng),
		P3: p3,
	}
}

func randomPoint(w, h int, rng *core.RNG) r2.Point {
	return r2.Point{
		X: rng.Float64() * float64(w-1),
		Y: rng.Float64() * float64(h-1),
	}
}

// EdgeField returns the summed contribution of edges over a w×h grid. Each
// cell receives weight·f(d) per edge, d being the distance from the cell
// centre to the nearest sample of that edge. The scan is O(w·h·samples)
// per edge and dominates Generate.
func EdgeField(w, h int, edges []Edge, f Falloff, weight float64) *core.Grid {
	g := core.NewGrid(w, h)
	cells := g.Cells()
	for _, e := range edges {
		pts := e.Polyline()
		if len(pts) == 0 {
			continue
		}
		for y := 0; y < h; y++ {
			fy := float64(y)
			row := cells[g.Index(0, y):g.Index(0, y+1)]
			for x := range row {
				row[x] += weight * f(math.Sqrt(nearestSquared(pts, float64(x), fy)))
			}
		}
	}
	return g
}

func nearestSquared(pts []r2.Point, x, y float64) float64 {
	best := math.Inf(1)
	for _, p := range pts {
		dx := p.X - x
		dy := p.Y - y
		if d := dx*dx + dy*dy; d < best {
			best = d
		}
	}
	return best
}
