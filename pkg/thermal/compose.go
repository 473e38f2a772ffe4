package thermal

import (
	"fmt"

	"thermal-heatmap/pkg/core"
)

// Composite sums equally sized layers into a new grid.
func Composite(layers ...*core.Grid) (*core.Grid, error) {
	if len(layers) == 0 || layers[0] == nil {
		return nil, fmt.Errorf("%w: composite needs at least one layer", ErrInvalidArgument)
	}
	out := layers[0].Clone()
	for _, l := range layers[1:] {
		if err := out.Add(l); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
		}
	}
	return out, nil
}

// Normalize rescales g in place so its maximum becomes exactly 1 and
// returns the maximum before rescaling. A grid whose maximum is not
// positive is left untouched.
func Normalize(g *core.Grid) float64 {
	m := g.Max()
	if m <= 0 {
		return m
	}
	cells := g.Cells()
	for i, v := range cells {
		cells[i] = v / m
	}
	return m
}
