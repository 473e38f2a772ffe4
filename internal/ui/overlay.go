//go:build ebiten

package ui

import (
	"image/color"

	"thermal-heatmap/pkg/thermal"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	sourceMarker = color.RGBA{R: 80, G: 200, B: 255, A: 255}
	edgeStroke   = color.RGBA{R: 80, G: 255, B: 140, A: 200}
)

type geometryProvider interface {
	Heatmap() *thermal.Heatmap
}

// Overlay draws the placed sources and edge paths on top of the heatmap.
type Overlay struct {
	provider    geometryProvider
	scale       int
	showSources bool
	showEdges   bool
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(provider geometryProvider, scale int) *Overlay {
	return &Overlay{provider: provider, scale: scale}
}

// Update toggles the overlay layers.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyO) {
		o.showSources = !o.showSources
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		o.showEdges = !o.showEdges
	}
}

// Draw renders the enabled layers.
func (o *Overlay) Draw(screen *ebiten.Image) {
	hm := o.provider.Heatmap()
	if hm == nil {
		return
	}
	s := float32(o.scale)
	half := s / 2
	if o.showEdges {
		for _, e := range hm.Edges() {
			pts := e.Polyline()
			for i := 1; i < len(pts); i++ {
				a, b := pts[i-1], pts[i]
				vector.StrokeLine(screen,
					float32(a.X)*s+half, float32(a.Y)*s+half,
					float32(b.X)*s+half, float32(b.Y)*s+half,
					1, edgeStroke, true)
			}
		}
	}
	if o.showSources {
		for _, src := range hm.Sources() {
			cx := float32(src.Pos.X)*s + half
			cy := float32(src.Pos.Y)*s + half
			vector.StrokeCircle(screen, cx, cy, 3*s, 1.5, sourceMarker, true)
		}
	}
}
