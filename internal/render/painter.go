//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter keeps one RGBA image in sync with quantized heatmap levels.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Upload converts levels through the palette into the painter image.
func (gp *GridPainter) Upload(levels []uint8, palette []color.RGBA) {
	if len(levels) != gp.w*gp.h {
		return
	}
	fillPaletteRGBA(gp.buf, levels, palette)
	gp.img.WritePixels(gp.buf)
}

// Draw draws the painter image onto dst at the given scale.
func (gp *GridPainter) Draw(dst *ebiten.Image, scale int) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}
