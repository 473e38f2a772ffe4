package thermal

import (
	"cmp"
	"math"
	"slices"

	"github.com/golang/geo/r2"

	"thermal-heatmap/pkg/core"
)

// maxBlobRetries bounds the spacing rejection loop in randomAnchors.
const maxBlobRetries = 200

// BlobEdge returns the closed chain of cubics through anchors. Anchors are
// visited counter-clockwise around their centroid. Each anchor gets a
// tangent angle blended from its incoming and outgoing chords: edgy = 0
// weights both equally, large positive or negative values lean toward one
// side and give sharper corners. Handles are radius times the chord length.
func BlobEdge(anchors []r2.Point, radius, edgy float64) Edge {
	n := len(anchors)
	if n < 2 {
		return Edge{}
	}
	pts := ccwSort(anchors)
	pts = append(pts, pts[0])

	mix := math.Atan(edgy)/math.Pi + 0.5
	chord := make([]float64, n)
	for i := 0; i < n; i++ {
		d := pts[i+1].Sub(pts[i])
		a := math.Atan2(d.Y, d.X)
		if a < 0 {
			a += 2 * math.Pi
		}
		chord[i] = a
	}
	angles := make([]float64, n+1)
	for i := 0; i < n; i++ {
		out := chord[i]
		in := chord[(i+n-1)%n]
		a := mix*out + (1-mix)*in
		if math.Abs(in-out) > math.Pi {
			a += math.Pi
		}
		angles[i] = a
	}
	angles[n] = angles[0]

	curves := make([]Bezier, n)
	for i := 0; i < n; i++ {
		start, end := pts[i], pts[i+1]
		r := radius * end.Sub(start).Norm()
		a1, a2 := angles[i], angles[i+1]+math.Pi
		curves[i] = Bezier{
			P0: start,
			P1: start.Add(r2.Point{X: r * math.Cos(a1), Y: r * math.Sin(a1)}),
			P2: end.Add(r2.Point{X: r * math.Cos(a2), Y: r * math.Sin(a2)}),
			P3: end,
		}
	}
	return Edge{Curves: curves}
}

// ccwSort returns a copy of pts ordered by angle around their centroid.
func ccwSort(pts []r2.Point) []r2.Point {
	var c r2.Point
	for _, p := range pts {
		c = c.Add(p)
	}
	c = c.Mul(1 / float64(len(pts)))
	sorted := slices.Clone(pts)
	slices.SortStableFunc(sorted, func(a, b r2.Point) int {
		da, db := a.Sub(c), b.Sub(c)
		return cmp.Compare(math.Atan2(da.X, da.Y), math.Atan2(db.X, db.Y))
	})
	return sorted
}

// randomAnchors draws n points in the unit square, redrawing until
// neighbours in counter-clockwise order are at least 0.7/n apart, and
// scales them onto a w×h grid.
func randomAnchors(n, w, h int, rng *core.RNG) []r2.Point {
	minDist := 0.7 / float64(n)
	pts := make([]r2.Point, n)
	for attempt := 0; ; attempt++ {
		for i := range pts {
			pts[i] = r2.Point{X: rng.Float64(), Y: rng.Float64()}
		}
		if attempt >= maxBlobRetries || wellSpaced(ccwSort(pts), minDist) {
			break
		}
	}
	sx, sy := float64(w-1), float64(h-1)
	for i, p := range pts {
		pts[i] = r2.Point{X: p.X * sx, Y: p.Y * sy}
	}
	return pts
}

func wellSpaced(sorted []r2.Point, minDist float64) bool {
	for i := 1; i < len(sorted); i++ {
		if sorted[i].Sub(sorted[i-1]).Norm() < minDist {
			return false
		}
	}
	return true
}

func randomBlob(w, h int, p Params, rng *core.RNG) Edge {
	return BlobEdge(randomAnchors(p.BlobPoints, w, h, rng), p.BlobRadius, p.BlobEdgy)
}
