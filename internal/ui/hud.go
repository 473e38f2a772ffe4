//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"thermal-heatmap/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	hudLineHeight = 15
	hudPadding    = 8
)

var (
	hudBackground = color.RGBA{R: 18, G: 18, B: 22, A: 255}
	hudHeading    = color.RGBA{R: 255, G: 170, B: 60, A: 255}
	hudText       = color.RGBA{R: 220, G: 220, B: 220, A: 255}
	hudHint       = color.RGBA{R: 140, G: 140, B: 150, A: 255}
	buttonOn      = color.RGBA{R: 54, G: 56, B: 64, A: 255}
	buttonOff     = color.RGBA{R: 32, G: 34, B: 40, A: 255}
)

var hudKeys = []string{
	"R  regenerate",
	"S  new seed",
	"Up/Down  sources",
	"Left/Right  edges",
	"C  colormap",
	"A  slideshow",
	"O/P  sources/edges",
	"Q  quit",
}

type parameterProvider interface {
	Parameters() core.ParameterSnapshot
}

// HUD renders the parameter panel to the right of the heatmap. Providers
// that also expose core.ParameterControlsProvider and the setter interfaces
// get clickable +/- buttons.
type HUD struct {
	provider     parameterProvider
	width        int
	snapshot     core.ParameterSnapshot
	controls     *controlPanel
	panelOffsetX int
	pixel        *ebiten.Image
}

// NewHUD constructs a HUD for the provided parameter source and panel width.
func NewHUD(provider parameterProvider, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{provider: provider, width: width, controls: newControlPanel(provider, width)}
	if width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	return h
}

// Update refreshes the displayed parameters and handles button presses.
// panelOffsetX is the screen x of the panel's left edge.
func (h *HUD) Update(panelOffsetX int) {
	if h.provider == nil {
		return
	}
	h.panelOffsetX = panelOffsetX
	h.snapshot = h.provider.Parameters()
	h.controls.refresh(h.snapshot)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		if mx >= panelOffsetX && h.controls.click(mx-panelOffsetX, my) {
			h.snapshot = h.provider.Parameters()
		}
	}
}

// Draw paints the panel starting at x offsetX with the given height.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h.width == 0 {
		return
	}
	h.fill(screen, image.Rect(offsetX, 0, offsetX+h.width, height), hudBackground)

	face := basicfont.Face7x13
	x := offsetX + hudPadding
	text.Draw(screen, "Controls", face, x, hudPadding+hudLineHeight, hudHeading)
	for i := range h.controls.states {
		state := &h.controls.states[i]
		baseline := state.top + lineHeight/2 + 5
		text.Draw(screen, state.control.Label, face, x, baseline, hudText)
		value := state.value
		vw := text.BoundString(face, value).Dx()
		text.Draw(screen, value, face, offsetX+state.minusRect.Min.X-buttonGap-vw, baseline, hudText)
		h.drawButton(screen, state.minusRect.Add(image.Pt(offsetX, 0)), "-", h.controls.canAdjust(i, -1))
		h.drawButton(screen, state.plusRect.Add(image.Pt(offsetX, 0)), "+", h.controls.canAdjust(i, 1))
	}

	y := h.controls.bottom() + hudLineHeight
	for _, group := range h.snapshot.Groups {
		text.Draw(screen, group.Name, face, x, y, hudHeading)
		y += hudLineHeight
		for _, p := range group.Params {
			text.Draw(screen, p.Label+": "+p.Value, face, x+hudPadding, y, hudText)
			y += hudLineHeight
		}
		y += hudLineHeight / 2
	}
	y += hudLineHeight / 2
	for _, k := range hudKeys {
		if y > height-hudPadding {
			break
		}
		text.Draw(screen, k, face, x, y, hudHint)
		y += hudLineHeight
	}
}

func (h *HUD) fill(screen *ebiten.Image, r image.Rectangle, c color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(r.Dx()), float64(r.Dy()))
	op.GeoM.Translate(float64(r.Min.X), float64(r.Min.Y))
	op.ColorScale.ScaleWithColor(c)
	screen.DrawImage(h.pixel, op)
}

func (h *HUD) drawButton(screen *ebiten.Image, r image.Rectangle, label string, enabled bool) {
	bg, fg := buttonOn, hudText
	if !enabled {
		bg, fg = buttonOff, hudHint
	}
	h.fill(screen, r, bg)
	face := basicfont.Face7x13
	b := text.BoundString(face, label)
	tx := r.Min.X + (r.Dx()-b.Dx())/2
	ty := r.Min.Y + (r.Dy()-b.Dy())/2 + b.Dy()
	text.Draw(screen, label, face, tx, ty, fg)
}
