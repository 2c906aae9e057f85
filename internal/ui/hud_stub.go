//go:build !ebiten

package ui

// HUD is a placeholder for the headless build.
type HUD struct{}

// NewHUD returns a no-op HUD.
func NewHUD() *HUD { return &HUD{} }

// Update is a no-op placeholder.
func (h *HUD) Update() {}

// Draw is a no-op placeholder to satisfy the interface shape.
func (h *HUD) Draw(any, int, int, bool) {}
