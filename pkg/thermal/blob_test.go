package thermal

import (
	"math"
	"testing"

	"github.com/golang/geo/r2"

	"thermal-heatmap/pkg/core"
)

func TestBlobEdgeIsClosedAndSmooth(t *testing.T) {
	anchors := []r2.Point{{X: 10, Y: 10}, {X: 50, Y: 14}, {X: 30, Y: 44}, {X: 8, Y: 36}}
	e := BlobEdge(anchors, 0.3, 0)
	n := len(e.Curves)
	if n != len(anchors) {
		t.Fatalf("got %d curves, want %d", n, len(anchors))
	}
	for i, c := range e.Curves {
		next := e.Curves[(i+1)%n]
		if c.P3 != next.P0 {
			t.Fatalf("curve %d ends at %v but curve %d starts at %v", i, c.P3, (i+1)%n, next.P0)
		}
		in := c.P3.Sub(c.P2)
		out := next.P1.Sub(next.P0)
		if cross := in.Cross(out); math.Abs(cross) > 1e-6*in.Norm()*out.Norm() {
			t.Fatalf("tangent break at the start of curve %d (cross %v)", (i+1)%n, cross)
		}
		if in.Dot(out) < 0 {
			t.Fatalf("tangent reverses at the start of curve %d", (i+1)%n)
		}
	}
}

func TestBlobEdgeZeroRadiusIsPolygon(t *testing.T) {
	anchors := []r2.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 5, Y: 8}}
	for i, c := range BlobEdge(anchors, 0, 0).Curves {
		if c.P1 != c.P0 || c.P2 != c.P3 {
			t.Fatalf("curve %d has handles with zero radius: %+v", i, c)
		}
	}
}

func TestBlobEdgeNeedsTwoAnchors(t *testing.T) {
	if e := BlobEdge([]r2.Point{{X: 1, Y: 1}}, 0.2, 0); len(e.Curves) != 0 {
		t.Fatalf("single anchor produced %d curves", len(e.Curves))
	}
}

func TestCCWSortOrdersByAngle(t *testing.T) {
	pts := []r2.Point{{X: 1, Y: 0}, {X: 0, Y: 1}, {X: -1, Y: 0}, {X: 0, Y: -1}}
	sorted := ccwSort(pts)
	prev := math.Inf(-1)
	for _, p := range sorted {
		a := math.Atan2(p.X, p.Y)
		if a < prev {
			t.Fatalf("points not ordered by angle: %v", sorted)
		}
		prev = a
	}
	if len(pts) != 4 || pts[0] != (r2.Point{X: 1, Y: 0}) {
		t.Fatal("ccwSort modified its input")
	}
}

func TestRandomAnchorsInsideGrid(t *testing.T) {
	rng := core.NewRNG(4)
	for round := 0; round < 20; round++ {
		for _, p := range randomAnchors(5, 40, 30, rng) {
			if p.X < 0 || p.X > 39 || p.Y < 0 || p.Y > 29 {
				t.Fatalf("anchor %v outside the grid", p)
			}
		}
	}
}
