package level

import (
	"github.com/zyedidia/generic/mapset"

	"roomgrid/internal/core"
)

// Stats summarises a generated grid.
type Stats struct {
	Placed     int
	Corridors  int
	DeadEnds   int
	Essentials int
	// Reachable counts rooms connected to the center through open edges.
	Reachable int
	MaxWave   int
}

// Analyze counts room kinds and the rooms reachable from the center cell.
func Analyze(g *core.Grid) Stats {
	var s Stats
	cells := g.Cells()
	for i := range cells {
		c := &cells[i]
		if !c.HasRoom() {
			continue
		}
		s.Placed++
		switch {
		case c.Room.Essential:
			s.Essentials++
		case c.Room.Exits.IsCorridor():
			s.Corridors++
		case c.Room.Exits.IsDeadEnd():
			s.DeadEnds++
		}
		if c.Wave > s.MaxWave {
			s.MaxWave = c.Wave
		}
	}
	if center := g.Center(); center != nil {
		reachable := Reachable(g, center)
		s.Reachable = reachable.Size()
	}
	return s
}

// Reachable returns the placed cells reachable from start by crossing edges
// that are open on both sides.
func Reachable(g *core.Grid, start *core.Cell) mapset.Set[*core.Cell] {
	visited := mapset.New[*core.Cell]()
	if start == nil || !start.HasRoom() {
		return visited
	}
	queue := []*core.Cell{start}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		if visited.Has(current) {
			continue
		}
		visited.Put(current)
		for _, n := range current.Neighbours() {
			if !n.HasRoom() || visited.Has(n) {
				continue
			}
			d, ok := current.DirectionTo(n)
			if ok && current.HasExit(d) && n.HasExit(d.Opposite()) {
				queue = append(queue, n)
			}
		}
	}
	return visited
}

// Consistent returns the first pair of adjacent placed cells whose shared
// edge is open on exactly one side. ok is true when there is none.
func Consistent(g *core.Grid) (a, b *core.Cell, ok bool) {
	cells := g.Cells()
	for i := range cells {
		c := &cells[i]
		if !c.HasRoom() {
			continue
		}
		for _, n := range c.Neighbours() {
			if !n.HasRoom() {
				continue
			}
			d, _ := c.DirectionTo(n)
			if c.HasExit(d) != n.HasExit(d.Opposite()) {
				return c, n, false
			}
		}
	}
	return nil, nil, true
}
