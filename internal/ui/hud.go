//go:build ebiten

package ui

import (
	"image/color"

	"torus-life/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	hudPadding = 4
	hudHeight  = 19
)

// HUD draws a one-line status bar over the top of the simulation view.
type HUD struct {
	sim    core.Sim
	status string
	bar    *ebiten.Image
}

// NewHUD constructs a HUD for the provided simulation.
func NewHUD(sim core.Sim) *HUD {
	return &HUD{sim: sim}
}

// Update refreshes the cached status line from the simulation.
func (h *HUD) Update(paused bool) {
	if h == nil {
		return
	}
	var snap core.ParameterSnapshot
	if provider, ok := h.sim.(core.ParameterProvider); ok {
		snap = provider.Parameters()
	}
	h.status = StatusLine(h.sim.Name(), snap, paused)
}

// Draw paints the status bar across the given width.
func (h *HUD) Draw(screen *ebiten.Image, width int) {
	if h == nil || width <= 0 {
		return
	}
	if h.bar == nil || h.bar.Bounds().Dx() != width {
		h.bar = ebiten.NewImage(width, hudHeight)
	}
	h.bar.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 200})
	text.Draw(h.bar, h.status, basicfont.Face7x13, hudPadding, hudHeight-hudPadding-2, color.RGBA{R: 220, G: 220, B: 230, A: 255})
	screen.DrawImage(h.bar, nil)
}
