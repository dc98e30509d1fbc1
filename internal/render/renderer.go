//go:build ebiten

package render

import (
	"image/color"

	"pixel-garden/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter updates a single RGBA image from palette-indexed cell data.
type GridPainter struct {
	w, h    int
	palette []color.RGBA
	img     *ebiten.Image
	shaded  *ebiten.Image
	buf     []byte
}

// NewGridPainter allocates a painter for a grid of the given size.
func NewGridPainter(size core.Size, palette []color.RGBA) *GridPainter {
	gp := &GridPainter{w: size.W, h: size.H, palette: palette, buf: make([]byte, 4*size.W*size.H)}
	gp.img = ebiten.NewImage(size.W, size.H)
	return gp
}

// Blit uploads the cells of sim into the painter image and draws it scaled
// onto dst. When shader is non-nil the image is passed through it first.
// Sims whose size differs from the painter's are skipped.
func (gp *GridPainter) Blit(dst *ebiten.Image, sim core.Sim, scale int, shader *GridShader) {
	if size := sim.Size(); size.W != gp.w || size.H != gp.h {
		return
	}
	cells := sim.Cells()
	if scale <= 0 {
		scale = 1
	}
	fillPaletteRGBA(gp.buf, cells, gp.palette)
	gp.img.WritePixels(gp.buf)

	src := gp.img
	if shader != nil && shader.Ready() {
		if gp.shaded == nil {
			gp.shaded = ebiten.NewImage(gp.w, gp.h)
		}
		gp.shaded.Clear()
		shader.Apply(gp.shaded, gp.img)
		src = gp.shaded
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(src, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
