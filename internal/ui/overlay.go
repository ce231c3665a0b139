//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"drizzle/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

type terrainProvider interface {
	Terrain() *core.Heightmap
}

type statsProvider interface {
	Stats() (falling, landed int)
}

// Overlay draws optional debugging visuals on top of the rain.
type Overlay struct {
	sim         core.Sim
	showTerrain bool
}

var floorColor = color.RGBA{R: 64, G: 164, B: 223, A: 160}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim) *Overlay {
	return &Overlay{sim: sim}
}

// Update toggles the terrain view on T.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		o.showTerrain = !o.showTerrain
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.showTerrain {
		return
	}
	if provider, ok := o.sim.(terrainProvider); ok {
		hm := provider.Terrain()
		cell := float32(hm.Cell)
		for col, floor := range hm.Floors() {
			x := float32(col) * cell
			y := float32(floor) + cell
			vector.StrokeLine(screen, x, y, x+cell, y, 1, floorColor, false)
		}
	}
	if provider, ok := o.sim.(statsProvider); ok {
		falling, landed := provider.Stats()
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("falling %d  landed %d  fps %.0f", falling, landed, ebiten.ActualFPS()), 8, 8)
	}
}
