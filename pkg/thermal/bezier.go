package thermal

import (
	"fmt"
	"math"

	"github.com/golang/geo/r2"
)

// Bezier is a cubic Bezier curve defined by four control points.
type Bezier struct {
	P0, P1, P2, P3 r2.Point
}

// Eval evaluates the curve at parameter t. t=0 returns P0 and t=1 returns P3.
func (b Bezier) Eval(t float64) r2.Point {
	mt := 1 - t
	a := mt * mt * mt
	c1 := 3 * mt * mt * t
	c2 := 3 * mt * t * t
	d := t * t * t
	return r2.Point{
		X: a*b.P0.X + c1*b.P1.X + c2*b.P2.X + d*b.P3.X,
		Y: a*b.P0.Y + c1*b.P1.Y + c2*b.P2.Y + d*b.P3.Y,
	}
}

// Sample returns k points on the curve at uniformly spaced parameters
// covering [0, 1], both ends included.
func (b Bezier) Sample(k int) ([]r2.Point, error) {
	if k < 2 {
		return nil, fmt.Errorf("%w: sample count must be at least 2, got %d", ErrInvalidArgument, k)
	}
	pts := make([]r2.Point, k)
	last := float64(k - 1)
	for i := range pts {
		pts[i] = b.Eval(float64(i) / last)
	}
	return pts, nil
}

// SampleCount returns the smallest sample count that keeps consecutive
// samples within one grid cell of each other. |B'(t)| never exceeds three
// times the longest control leg.
func (b Bezier) SampleCount() int {
	leg := math.Max(b.P1.Sub(b.P0).Norm(), math.Max(b.P2.Sub(b.P1).Norm(), b.P3.Sub(b.P2).Norm()))
	k := int(math.Ceil(3*leg)) + 1
	if k < 2 {
		k = 2
	}
	return k
}

// Bounds returns the rectangle spanned by the control points, which
// contains the whole curve.
func (b Bezier) Bounds() r2.Rect {
	return r2.RectFromPoints(b.P0, b.P1, b.P2, b.P3)
}
