package core

// Cell is one grid position. Room is nil until a template is assigned.
type Cell struct {
	X, Y int

	Room *RoomTemplate

	// Connected marks cells an essential room opens towards.
	Connected bool

	// Wave is the expansion wave that placed Room: 0 for the start cell, -1 if
	// no room was placed by expansion.
	Wave int

	neighbours []*Cell
}

// Neighbours returns the orthogonally adjacent cells.
func (c *Cell) Neighbours() []*Cell { return c.neighbours }

// HasRoom reports whether a template is assigned.
func (c *Cell) HasRoom() bool { return c.Room != nil }

// Exits returns the assigned room's exits, or the empty set.
func (c *Cell) Exits() Exits {
	if c.Room == nil {
		return 0
	}
	return c.Room.Exits
}

// HasExit reports whether the assigned room opens towards d.
func (c *Cell) HasExit(d Direction) bool { return c.Exits().Has(d) }

// DirectionTo returns the side of c that faces an adjacent cell n.
func (c *Cell) DirectionTo(n *Cell) (Direction, bool) {
	switch {
	case n.X == c.X+1 && n.Y == c.Y:
		return Right, true
	case n.X == c.X-1 && n.Y == c.Y:
		return Left, true
	case n.Y == c.Y+1 && n.X == c.X:
		return Top, true
	case n.Y == c.Y-1 && n.X == c.X:
		return Bottom, true
	}
	return 0, false
}

// Grid stores width*height cells, x outer and y inner.
type Grid struct {
	W, H  int
	cells []Cell
}

// NewGrid allocates a grid with orthogonal adjacency. Non-positive dimensions
// produce an empty grid.
func NewGrid(w, h int) *Grid {
	g := &Grid{W: w, H: h}
	if w <= 0 || h <= 0 {
		return g
	}
	g.cells = make([]Cell, w*h)
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			g.cells[g.Index(x, y)] = Cell{X: x, Y: y, Wave: -1}
		}
	}
	for i := range g.cells {
		c := &g.cells[i]
		if c.X < w-1 {
			c.neighbours = append(c.neighbours, &g.cells[i+h])
		}
		if c.Y < h-1 {
			c.neighbours = append(c.neighbours, &g.cells[i+1])
		}
		if c.X > 0 {
			c.neighbours = append(c.neighbours, &g.cells[i-h])
		}
		if c.Y > 0 {
			c.neighbours = append(c.neighbours, &g.cells[i-1])
		}
	}
	return g
}

// Size returns the grid dimensions.
func (g *Grid) Size() Size { return Size{W: g.W, H: g.H} }

// Cells exposes the backing slice so callers can iterate in index order.
func (g *Grid) Cells() []Cell { return g.cells }

// Len returns the number of cells.
func (g *Grid) Len() int { return len(g.cells) }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return x*g.H + y }

// InBounds reports whether (x, y) lies on the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// At returns the cell at (x, y), or nil when out of bounds.
func (g *Grid) At(x, y int) *Cell {
	if !g.InBounds(x, y) || len(g.cells) == 0 {
		return nil
	}
	return &g.cells[g.Index(x, y)]
}

// Center returns the cell at (W/2, H/2).
func (g *Grid) Center() *Cell { return g.At(g.W/2, g.H/2) }

// Placed counts cells holding a room.
func (g *Grid) Placed() int {
	n := 0
	for i := range g.cells {
		if g.cells[i].Room != nil {
			n++
		}
	}
	return n
}

// OffGrid returns the directions from (x, y) that leave the grid.
func (g *Grid) OffGrid(x, y int) Exits {
	var e Exits
	for _, d := range Directions {
		dx, dy := d.Offset()
		if !g.InBounds(x+dx, y+dy) {
			e = e.With(d)
		}
	}
	return e
}
