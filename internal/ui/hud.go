//go:build ebiten

package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// HUD prints generation and population counters on top of the grid.
type HUD struct {
	visible bool
}

// NewHUD constructs a HUD, visible by default.
func NewHUD() *HUD {
	return &HUD{visible: true}
}

// Update toggles visibility on the H key.
func (h *HUD) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		h.visible = !h.visible
	}
}

// Draw renders the counters when visible.
func (h *HUD) Draw(screen *ebiten.Image, generation, population int, paused bool) {
	if !h.visible {
		return
	}
	status := ""
	if paused {
		status = "  [paused]"
	}
	ebitenutil.DebugPrint(screen, fmt.Sprintf("gen %d  pop %d%s", generation, population, status))
}
