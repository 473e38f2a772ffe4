package thermal

import (
	"fmt"
	"math"
)

// Falloff maps a distance in cells to an intensity factor. Every Falloff
// returns 1 at distance zero and never increases with distance.
type Falloff func(d float64) float64

// FalloffKind names a falloff shape.
type FalloffKind string

const (
	// FalloffGaussian decays as exp(-d²/2σ²) with σ the scale.
	FalloffGaussian FalloffKind = "gaussian"
	// FalloffInverseSquare decays as 1/(1+(d/s)²).
	FalloffInverseSquare FalloffKind = "inverse-square"
	// FalloffCutoff decays linearly and is exactly zero beyond the scale.
	FalloffCutoff FalloffKind = "cutoff"
)

// FalloffKinds lists the supported shapes.
func FalloffKinds() []FalloffKind {
	return []FalloffKind{FalloffGaussian, FalloffInverseSquare, FalloffCutoff}
}

// Build returns the falloff of this kind with the given scale.
func (k FalloffKind) Build(scale float64) (Falloff, error) {
	if !(scale > 0) || math.IsInf(scale, 1) {
		return nil, fmt.Errorf("%w: falloff scale must be positive and finite, got %v", ErrInvalidArgument, scale)
	}
	switch k {
	case FalloffGaussian:
		return func(d float64) float64 {
			r := d / scale
			return math.Exp(-0.5 * r * r)
		}, nil
	case FalloffInverseSquare:
		return func(d float64) float64 {
			r := d / scale
			return 1 / (1 + r*r)
		}, nil
	case FalloffCutoff:
		return func(d float64) float64 {
			if d >= scale {
				return 0
			}
			return 1 - d/scale
		}, nil
	default:
		return nil, fmt.Errorf("%w: unknown falloff %q", ErrInvalidArgument, string(k))
	}
}
