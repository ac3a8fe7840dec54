//go:build ebiten

package app

import (
	"image/color"
	"log"
	"time"

	"roomgrid/internal/core"
	"roomgrid/internal/level"
	"roomgrid/internal/render"
	"roomgrid/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a level session to the ebiten.Game interface.
type Game struct {
	session *level.Session
	painter *render.LevelPainter
	hud     *ui.HUD
	overlay *ui.Overlay
	palette []color.RGBA
	cycle   *core.Cycle
	logger  *log.Logger

	scale int
	auto  bool
}

// New constructs a Game for the provided session.
func New(session *level.Session, cfg *Config, logger *log.Logger) *Game {
	size := session.Size()
	g := &Game{
		session: session,
		painter: render.NewLevelPainter(size.W, size.H),
		palette: level.Palette(),
		cycle:   core.NewCycle(cfg.Period),
		logger:  logger,
		scale:   cfg.Scale,
		auto:    cfg.Auto,
	}
	if g.scale <= 0 {
		g.scale = 1
	}
	g.hud = ui.NewHUD(session, cfg.HUDWidth)
	g.overlay = ui.NewOverlay(session, render.Tile*g.scale)
	return g
}

// Update handles per-frame logic and regenerates levels on request.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.regenerate(g.session.Regenerate)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.regenerate(g.session.Reseed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyA) {
		g.auto = !g.auto
		g.cycle.Reset()
	}
	if g.auto && g.cycle.Due(time.Now()) {
		g.regenerate(g.session.Reseed)
	}

	if g.overlay != nil {
		g.overlay.Update()
	}
	if g.hud.Update(g.viewWidth()) {
		g.resize()
		g.regenerate(g.session.Regenerate)
	}
	return nil
}

// Draw renders the current level.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.session.Cells(), g.palette, g.scale)
	if g.overlay != nil {
		g.overlay.Draw(screen)
	}
	_, h := g.Layout(0, 0)
	g.hud.Draw(screen, g.viewWidth(), h)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.session.Size()
	return g.viewWidth() + g.hud.Width(), max(s.H*render.Tile*g.scale, minPanelHeight)
}

func (g *Game) viewWidth() int {
	return g.session.Size().W * render.Tile * g.scale
}

// resize rebuilds the painter after a grid size change.
func (g *Game) resize() {
	s := g.session.Size()
	if w, h := g.painter.Size(); w == s.W && h == s.H {
		return
	}
	g.painter = render.NewLevelPainter(s.W, s.H)
	w, h := g.Layout(0, 0)
	ebiten.SetWindowSize(w, h)
}

func (g *Game) regenerate(fn func() error) {
	if err := fn(); err != nil {
		g.logger.Printf("generate: %v", err)
	}
}

const minPanelHeight = 480
