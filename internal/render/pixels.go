package render

import (
	"image/color"

	"roomgrid/internal/core"
	"roomgrid/internal/level"
)

// Tile is the edge length in pixels of one rasterized room.
const Tile = 9

const doorWidth = 3

// WallColor outlines placed rooms.
var WallColor = color.RGBA{R: 36, G: 38, B: 46, A: 255}

// Rasterize paints encoded cells (see level.Encode) into buf as RGBA, one
// Tile×Tile block per cell. buf must hold 4*w*h*Tile*Tile bytes. Doorways are
// cut into the wall on every side that has an exit.
func Rasterize(buf []byte, cells []uint8, w, h int, palette []color.RGBA) {
	if len(cells) != w*h || len(buf) < 4*w*h*Tile*Tile {
		return
	}
	if len(palette) == 0 {
		clear(buf)
		return
	}
	stride := w * Tile
	last := len(palette) - 1
	for i, v := range cells {
		cx, cy := i%w, i/w
		kind := level.Kind(v)
		if kind > last {
			kind = last
		}
		fill := palette[kind]
		exits := level.DecodeExits(v)
		placed := kind != level.KindEmpty
		for py := 0; py < Tile; py++ {
			for px := 0; px < Tile; px++ {
				col := fill
				if placed && isWall(px, py, exits) {
					col = WallColor
				}
				base := 4 * ((cy*Tile+py)*stride + cx*Tile + px)
				buf[base+0] = col.R
				buf[base+1] = col.G
				buf[base+2] = col.B
				buf[base+3] = col.A
			}
		}
	}
}

func isWall(px, py int, exits core.Exits) bool {
	lo := (Tile - doorWidth) / 2
	hi := lo + doorWidth
	door := func(v int) bool { return v >= lo && v < hi }
	switch {
	case py == 0:
		return !(exits.Has(core.Top) && door(px))
	case py == Tile-1:
		return !(exits.Has(core.Bottom) && door(px))
	case px == 0:
		return !(exits.Has(core.Left) && door(py))
	case px == Tile-1:
		return !(exits.Has(core.Right) && door(py))
	}
	return false
}
