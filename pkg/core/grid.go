package core

import "fmt"

// Grid stores a 2D grid of float64 intensities in row-major order.
type Grid struct {
	W, H int
	data []float64
}

// NewGrid allocates a zeroed grid with the given dimensions.
func NewGrid(w, h int) *Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Grid{W: w, H: h, data: make([]float64, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid) Cells() []float64 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.W + x }

// At returns the value stored at (x, y).
func (g *Grid) At(x, y int) float64 { return g.data[y*g.W+x] }

// SameSize reports whether other has the same dimensions as g.
func (g *Grid) SameSize(other *Grid) bool {
	return other != nil && g.W == other.W && g.H == other.H
}

// Add accumulates other into g element-wise.
func (g *Grid) Add(other *Grid) error {
	if !g.SameSize(other) {
		if other == nil {
			return fmt.Errorf("grid size mismatch: %dx%d vs nil", g.W, g.H)
		}
		return fmt.Errorf("grid size mismatch: %dx%d vs %dx%d", g.W, g.H, other.W, other.H)
	}
	for i, v := range other.data {
		g.data[i] += v
	}
	return nil
}

// Max returns the largest value in the grid.
func (g *Grid) Max() float64 {
	if len(g.data) == 0 {
		return 0
	}
	m := g.data[0]
	for _, v := range g.data[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

// ArgMax returns the coordinates of the first cell holding the maximum value.
func (g *Grid) ArgMax() (int, int) {
	best := 0
	for i, v := range g.data {
		if v > g.data[best] {
			best = i
		}
	}
	return best % g.W, best / g.W
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	return &Grid{W: g.W, H: g.H, data: append([]float64(nil), g.data...)}
}

// Rows returns the grid as H rows of W values. The rows are copies.
func (g *Grid) Rows() [][]float64 {
	rows := make([][]float64, g.H)
	for y := range rows {
		rows[y] = append([]float64(nil), g.data[y*g.W:(y+1)*g.W]...)
	}
	return rows
}
