//go:build ebiten

package app

import (
	"log/slog"
	"time"

	"thermal-heatmap/internal/core"
	"thermal-heatmap/internal/render"
	"thermal-heatmap/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// hudWidth is the width of the parameter panel right of the heatmap.
const hudWidth = 220

// Game adapts a Session to the ebiten.Game interface.
type Game struct {
	session *Session
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay

	scale     int
	uploaded  int
	slideshow bool
	interval  *core.Interval
	log       *slog.Logger
}

// New constructs a Game for the provided session.
func New(session *Session, scale int, slideshow time.Duration, log *slog.Logger) *Game {
	w, h := session.Size()
	if scale < 1 {
		scale = 1
	}
	return &Game{
		session:  session,
		painter:  render.NewGridPainter(w, h),
		hud:      ui.NewHUD(session, hudWidth),
		overlay:  ui.NewOverlay(session, scale),
		scale:    scale,
		interval: core.NewInterval(slideshow),
		log:      log,
	}
}

// Update handles per-frame input.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.report(g.session.Regenerate())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.report(g.session.NextSeed())
	}
	sources, edges := g.session.Counts()
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) {
		g.session.SetIntParameter("sources", sources+1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDown) {
		g.session.SetIntParameter("sources", sources-1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyRight) {
		g.session.SetIntParameter("edges", edges+1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyLeft) {
		g.session.SetIntParameter("edges", edges-1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.session.CycleColormap()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyA) {
		g.slideshow = !g.slideshow
		g.interval.Reset()
	}

	if g.slideshow && g.interval.Due() {
		g.report(g.session.NextSeed())
	}

	if g.overlay != nil {
		g.overlay.Update()
	}
	if g.hud != nil {
		w, _ := g.session.Size()
		g.hud.Update(w * g.scale)
	}
	return nil
}

func (g *Game) report(err error) {
	if err != nil {
		g.log.Error("regenerate failed", slog.Any("err", err))
		return
	}
	sources, edges := g.session.Counts()
	g.log.Info("heatmap ready",
		slog.Int64("seed", g.session.Seed()),
		slog.Int("sources", sources),
		slog.Int("edges", edges),
	)
}

// Draw renders the current heatmap, overlay and HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	if v := g.session.Version(); v != g.uploaded {
		g.painter.Upload(g.session.Levels(), g.session.Colormap().Palette())
		g.uploaded = v
	}
	g.painter.Draw(screen, g.scale)
	if g.overlay != nil {
		g.overlay.Draw(screen)
	}
	if g.hud != nil {
		w, h := g.session.Size()
		g.hud.Draw(screen, w*g.scale, h*g.scale)
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.session.Size()
	return w*g.scale + hudWidth, h * g.scale
}
