//go:build ebiten

package app

import (
	"image/color"

	"sparselife/internal/render"
	"sparselife/internal/ui"
	"sparselife/pkg/life"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a life.Game to the ebiten.Game interface. The unbounded
// lattice is projected through a fixed viewport each frame; cells that
// wander outside the viewport keep evolving, they just are not drawn.
type Game struct {
	game    *life.Game
	start   *life.Grid
	painter *render.GridPainter
	hud     *ui.HUD

	view  life.Bounds
	scale int

	onColor  color.Color
	offColor color.Color

	generation int
	paused     bool
	tickOnce   bool
}

// New constructs a viewer for the provided game, projected through view.
func New(g *life.Game, view life.Bounds, scale int) *Game {
	return &Game{
		game:     g,
		start:    g.Grid(),
		painter:  render.NewGridPainter(view.Width(), view.Height()),
		hud:      ui.NewHUD(),
		view:     view,
		scale:    scale,
		onColor:  color.White,
		offColor: color.Black,
	}
}

// Reset rewinds the simulation to its starting grid.
func (g *Game) Reset() {
	g.game = life.NewWithRule(g.start, g.game.Rule())
	g.generation = 0
	g.tickOnce = false
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset()
	}

	g.hud.Update()

	if !g.paused || g.tickOnce {
		g.game.Step()
		g.generation++
		g.tickOnce = false
	}
	return nil
}

// Draw renders the viewport projection of the current generation.
func (g *Game) Draw(screen *ebiten.Image) {
	rows := g.game.Grid().DenseBounds(g.view)
	g.painter.Blit(screen, rows, g.onColor, g.offColor, g.scale)
	g.hud.Draw(screen, g.generation, g.game.Grid().Population(), g.paused)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.view.Width() * g.scale, g.view.Height() * g.scale
}
