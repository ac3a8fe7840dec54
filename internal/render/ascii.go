package render

import (
	"strings"

	"roomgrid/internal/core"
	"roomgrid/internal/level"
)

// Glyph returns the 3×3 text block for one encoded cell.
func Glyph(v uint8) [3]string {
	if v&level.FlagPlaced == 0 {
		return [3]string{"   ", "   ", "   "}
	}
	exits := level.DecodeExits(v)
	side := func(d core.Direction, open, closed byte) byte {
		if exits.Has(d) {
			return open
		}
		return closed
	}
	center := byte('.')
	switch level.Kind(v) {
	case level.KindStart:
		center = 'S'
	case level.KindEssential:
		center = 'E'
	}
	return [3]string{
		string([]byte{'+', side(core.Top, ' ', '-'), '+'}),
		string([]byte{side(core.Left, ' ', '|'), center, side(core.Right, ' ', '|')}),
		string([]byte{'+', side(core.Bottom, ' ', '-'), '+'}),
	}
}

// Text draws encoded cells as a block of glyph rows, highest y first.
func Text(cells []uint8, w, h int) string {
	if len(cells) != w*h {
		return ""
	}
	var b strings.Builder
	for row := 0; row < h; row++ {
		var lines [3]strings.Builder
		for col := 0; col < w; col++ {
			g := Glyph(cells[row*w+col])
			for i := range lines {
				lines[i].WriteString(g[i])
			}
		}
		for i := range lines {
			b.WriteString(strings.TrimRight(lines[i].String(), " "))
			b.WriteByte('\n')
		}
	}
	return b.String()
}
