//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter updates a single RGBA image from a dense 0/1 grid projection.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a w*h viewport.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Blit uploads the projection into the painter image and draws it onto dst.
// A projection that does not match the painter size is ignored.
func (gp *GridPainter) Blit(dst *ebiten.Image, rows [][]int, on, off color.Color, scale int) {
	if len(rows) != gp.h || (gp.h > 0 && len(rows[0]) != gp.w) {
		return
	}
	fillBinaryRGBA(gp.buf, rows, on, off)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
