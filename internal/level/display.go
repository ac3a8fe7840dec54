package level

import (
	"image/color"

	"roomgrid/internal/core"
)

// Display cell flags. The low nibble carries the exit bits.
const (
	FlagPlaced    uint8 = 1 << 4
	FlagStart     uint8 = 1 << 5
	FlagEssential uint8 = 1 << 6
	FlagConnected uint8 = 1 << 7
	exitMask      uint8 = 0x0f
)

// Encode flattens g row-major with the highest y first, so index 0 is the
// top-left cell as drawn on screen.
func Encode(g *core.Grid) []uint8 {
	out := make([]uint8, g.Len())
	for y := g.H - 1; y >= 0; y-- {
		row := g.H - 1 - y
		for x := 0; x < g.W; x++ {
			out[row*g.W+x] = encodeCell(g.At(x, y))
		}
	}
	return out
}

// Waves returns placement wave depths in Encode order, -1 for empty cells.
func Waves(g *core.Grid) []int {
	out := make([]int, g.Len())
	for y := g.H - 1; y >= 0; y-- {
		row := g.H - 1 - y
		for x := 0; x < g.W; x++ {
			c := g.At(x, y)
			if c.HasRoom() {
				out[row*g.W+x] = c.Wave
			} else {
				out[row*g.W+x] = -1
			}
		}
	}
	return out
}

func encodeCell(c *core.Cell) uint8 {
	if c == nil || !c.HasRoom() {
		return 0
	}
	v := uint8(c.Room.Exits)&exitMask | FlagPlaced
	if c.Room.Start {
		v |= FlagStart
	}
	if c.Room.Essential {
		v |= FlagEssential
	}
	if c.Connected {
		v |= FlagConnected
	}
	return v
}

// DecodeExits extracts the exit set from an encoded cell.
func DecodeExits(v uint8) core.Exits { return core.Exits(v & exitMask) }

// Palette indices for encoded cells.
const (
	KindEmpty = iota
	KindRoom
	KindCorridor
	KindDeadEnd
	KindStart
	KindEssential
)

// Kind classifies an encoded cell for colouring.
func Kind(v uint8) int {
	switch {
	case v&FlagPlaced == 0:
		return KindEmpty
	case v&FlagEssential != 0:
		return KindEssential
	case v&FlagStart != 0:
		return KindStart
	}
	exits := DecodeExits(v)
	switch {
	case exits.IsCorridor():
		return KindCorridor
	case exits.IsDeadEnd():
		return KindDeadEnd
	}
	return KindRoom
}

// Palette returns the colours indexed by Kind.
func Palette() []color.RGBA {
	return []color.RGBA{
		KindEmpty:     {R: 16, G: 16, B: 20, A: 255},
		KindRoom:      {R: 120, G: 128, B: 140, A: 255},
		KindCorridor:  {R: 90, G: 96, B: 108, A: 255},
		KindDeadEnd:   {R: 150, G: 110, B: 80, A: 255},
		KindStart:     {R: 70, G: 170, B: 90, A: 255},
		KindEssential: {R: 210, G: 170, B: 40, A: 255},
	}
}
