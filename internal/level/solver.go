package level

import "roomgrid/internal/core"

// Requirement lists the exits a room must have and must not have in one cell.
type Requirement struct {
	Include core.Exits
	Exclude core.Exits
}

// Allows reports whether exits is a superset of Include and disjoint from Exclude.
func (r Requirement) Allows(exits core.Exits) bool {
	return exits.Contains(r.Include) && !exits.Intersects(r.Exclude)
}

// Requirements inspects the assigned neighbours of cell and the grid border.
// A neighbour opening towards the cell forces that side open; a neighbour
// closed on the shared edge forces it shut. Sides facing off the grid are shut.
func Requirements(g *core.Grid, cell *core.Cell) Requirement {
	var r Requirement
	for _, n := range cell.Neighbours() {
		if !n.HasRoom() {
			continue
		}
		d, ok := cell.DirectionTo(n)
		if !ok {
			continue
		}
		if n.HasExit(d.Opposite()) {
			r.Include = r.Include.With(d)
		} else {
			r.Exclude = r.Exclude.With(d)
		}
	}
	r.Exclude |= g.OffGrid(cell.X, cell.Y)
	return r
}
