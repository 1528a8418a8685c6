//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"torus-life/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	hudPadding    = 8
	hudLineHeight = 16
)

// HUD renders the status panel to the right of the simulation view.
type HUD struct {
	sim    core.Sim
	width  int
	title  string
	status string
	paused bool

	background color.Color
	foreground color.Color
}

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim core.Sim, width int) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{
		sim:        sim,
		width:      width,
		title:      Title(sim),
		background: color.RGBA{R: 24, G: 24, B: 32, A: 255},
		foreground: color.White,
	}
}

// Update stores the latest status line.
func (h *HUD) Update(status string, paused bool) {
	if h == nil {
		return
	}
	h.status = status
	h.paused = paused
}

// Draw renders the panel starting at offsetX. height is the panel height.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width == 0 || height <= 0 {
		return
	}
	panel := screen.SubImage(image.Rect(offsetX, 0, offsetX+h.width, height)).(*ebiten.Image)
	panel.Fill(h.background)

	var snap core.ParameterSnapshot
	if provider, ok := h.sim.(core.ParameterProvider); ok {
		snap = provider.Parameters()
	}
	face := basicfont.Face7x13
	y := hudPadding + hudLineHeight
	for _, line := range Lines(h.title, h.status, h.paused, snap) {
		if y > height {
			break
		}
		text.Draw(screen, line, face, offsetX+hudPadding, y, h.foreground)
		y += hudLineHeight
	}
}
