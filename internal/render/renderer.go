//go:build ebiten

package render

import (
	"image/color"

	"drizzle/internal/sims/rain"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Renderer strokes raindrop glyphs onto an ebiten surface.
type Renderer struct {
	stroke     color.Color
	background color.Color
	width      float32
}

// NewRenderer returns a Renderer drawing with the given stroke and clear colors.
func NewRenderer(stroke, background color.Color) *Renderer {
	return &Renderer{stroke: stroke, background: background, width: 1}
}

// Draw clears screen and draws every drop of sim.
func (r *Renderer) Draw(screen *ebiten.Image, sim *rain.Rain) {
	screen.Fill(r.background)
	grid := sim.GridSize()
	for _, p := range sim.Particles() {
		for _, s := range Glyph(p.X, p.Y, grid) {
			vector.StrokeLine(screen, float32(s.X0), float32(s.Y0), float32(s.X1), float32(s.Y1), r.width, r.stroke, true)
		}
	}
}
