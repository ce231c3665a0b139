//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"drizzle/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// HUD renders the parameter panel to the right of the rain surface.
type HUD struct {
	tunable core.Tunable
	title   string
	width   int
	offsetX int

	panel    *ebiten.Image
	controls []hudControl
}

type hudControl struct {
	param     core.Param
	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

const (
	panelPadding   = 12
	lineHeight     = 36
	buttonSize     = 20
	buttonGap      = 6
	headerBaseline = 14
	controlsTop    = 44
	labelBaseline  = 22
)

var (
	panelColor  = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	titleColor  = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	labelColor  = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	mutedColor  = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	buttonColor = color.RGBA{R: 54, G: 56, B: 64, A: 255}
	idleColor   = color.RGBA{R: 32, G: 34, B: 40, A: 255}
)

// NewHUD constructs a HUD for sim. Sims that are not tunable get an
// informational panel only.
func NewHUD(sim core.Sim, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{width: width, title: "Controls"}
	if sim != nil && sim.Name() != "" {
		h.title = sim.Name() + " controls"
	}
	if t, ok := sim.(core.Tunable); ok {
		h.tunable = t
	}
	h.refresh()
	return h
}

// Width returns the panel width in pixels.
func (h *HUD) Width() int { return h.width }

// Update refreshes parameter values and applies clicks on the +/- buttons.
// offsetX is the panel's left edge in screen space.
func (h *HUD) Update(offsetX int) {
	if h == nil {
		return
	}
	h.offsetX = offsetX
	h.refresh()
	if h.tunable == nil || !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	if mx < offsetX {
		return
	}
	p := image.Pt(mx-offsetX, my)
	for _, c := range h.controls {
		switch {
		case p.In(c.minusRect):
			h.tunable.SetParam(c.param.Key, c.param.Nudge(-1))
		case p.In(c.plusRect):
			h.tunable.SetParam(c.param.Key, c.param.Nudge(1))
		default:
			continue
		}
		h.refresh()
		return
	}
}

// Draw paints the panel at offsetX with the given height.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(h.width, height)
	}
	h.panel.Fill(panelColor)

	face := basicfont.Face7x13
	text.Draw(h.panel, h.title, face, panelPadding, panelPadding+headerBaseline, titleColor)
	if len(h.controls) == 0 {
		text.Draw(h.panel, "No adjustable parameters", face, panelPadding, controlsTop, mutedColor)
	}
	for _, c := range h.controls {
		text.Draw(h.panel, c.param.Label, face, panelPadding, c.top+labelBaseline, labelColor)
		value := c.param.Format()
		w := text.BoundString(face, value).Dx()
		text.Draw(h.panel, value, face, c.minusRect.Min.X-buttonGap-w, c.top+labelBaseline, labelColor)
		h.drawButton(c.minusRect, "-", c.param.Value > c.param.Min)
		h.drawButton(c.plusRect, "+", c.param.Max <= c.param.Min || c.param.Value < c.param.Max)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) refresh() {
	if h.tunable == nil {
		h.controls = nil
		return
	}
	params := h.tunable.Params()
	if len(h.controls) != len(params) {
		h.controls = make([]hudControl, len(params))
	}
	for i, p := range params {
		top := controlsTop + i*lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		plus := image.Rect(h.width-panelPadding-buttonSize, buttonY, h.width-panelPadding, buttonY+buttonSize)
		minus := image.Rect(plus.Min.X-buttonGap-buttonSize, buttonY, plus.Min.X-buttonGap, buttonY+buttonSize)
		h.controls[i] = hudControl{param: p, top: top, minusRect: minus, plusRect: plus}
	}
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	bg, fg := buttonColor, labelColor
	if !enabled {
		bg, fg = idleColor, mutedColor
	}
	vector.DrawFilledRect(h.panel, float32(rect.Min.X), float32(rect.Min.Y), float32(rect.Dx()), float32(rect.Dy()), bg, false)

	face := basicfont.Face7x13
	b := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-b.Dx())/2
	y := rect.Min.Y + (rect.Dy()-b.Dy())/2 + b.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}
