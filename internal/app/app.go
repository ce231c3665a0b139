//go:build ebiten

package app

import (
	"image/color"
	"sync/atomic"
	"time"

	"drizzle/internal/log"
	"drizzle/internal/render"
	"drizzle/internal/sims/rain"
	"drizzle/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const hudWidth = 240

// Game adapts the rain simulation to the ebiten.Game interface.
type Game struct {
	sim      *rain.Rain
	renderer *render.Renderer
	hud      *ui.HUD
	overlay  *ui.Overlay
	log      *log.Logger

	showHUD bool
	paused  bool
	stopped atomic.Bool
	seed    int64

	clock time.Duration
	last  time.Time
}

// New constructs a Game drawing sim with the given colors.
func New(sim *rain.Rain, stroke, background color.Color, showHUD bool, logger *log.Logger) *Game {
	return &Game{
		sim:      sim,
		renderer: render.NewRenderer(stroke, background),
		hud:      ui.NewHUD(sim, hudWidth),
		overlay:  ui.NewOverlay(sim),
		log:      logger,
		showHUD:  showHUD,
		seed:     sim.Config().Seed,
	}
}

// Stop makes the next Update end the run loop.
func (g *Game) Stop() { g.stopped.Store(true) }

// Reset clears the rain and restarts the simulation clock.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.clock = 0
	g.log.Infof("rain reset with seed %d", seed)
}

// Update handles input and advances the simulation by the wall time since
// the previous frame.
func (g *Game) Update() error {
	if g.stopped.Load() {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.showHUD = !g.showHUD
	}

	g.overlay.Update()
	w := g.sim.Size().W
	if g.showHUD {
		g.hud.Update(w)
	}
	g.handlePointer(w)

	now := time.Now()
	if g.last.IsZero() {
		g.last = now
	}
	delta := now.Sub(g.last)
	g.last = now
	if !g.paused {
		g.clock += delta
		g.sim.Tick(g.clock)
	}
	return nil
}

func (g *Game) handlePointer(width int) {
	x, y := ebiten.CursorPosition()
	inside := x >= 0 && x < width
	if inside {
		g.sim.PointerMove(x, y)
	}
	if inside && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.sim.PointerDown()
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.sim.PointerUp()
	}
}

// Draw renders the drops, the overlay and the optional HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.sim)
	g.overlay.Draw(screen)
	if g.showHUD {
		size := g.sim.Size()
		g.hud.Draw(screen, size.W, size.H)
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	if g.showHUD {
		return s.W + g.hud.Width(), s.H
	}
	return s.W, s.H
}
