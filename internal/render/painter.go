//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// LevelPainter keeps one image of the rasterized level and redraws it on demand.
type LevelPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewLevelPainter allocates a painter for a w×h room grid.
func NewLevelPainter(w, h int) *LevelPainter {
	lp := &LevelPainter{w: w, h: h, buf: make([]byte, 4*w*h*Tile*Tile)}
	lp.img = ebiten.NewImage(w*Tile, h*Tile)
	return lp
}

// Blit uploads the provided cells into the painter image and draws it.
func (lp *LevelPainter) Blit(dst *ebiten.Image, cells []uint8, palette []color.RGBA, scale int) {
	if len(cells) != lp.w*lp.h {
		return
	}
	Rasterize(lp.buf, cells, lp.w, lp.h, palette)
	lp.img.WritePixels(lp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(lp.img, op)
}

// Size returns the grid dimensions the painter was built for.
func (lp *LevelPainter) Size() (int, int) { return lp.w, lp.h }
