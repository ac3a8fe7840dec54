package level

import (
	"roomgrid/internal/core"
	pcore "roomgrid/pkg/core"
)

// assignEssentials swaps each essential template, in catalog order, into a
// placed non-essential cell with the identical exit set. It stops at the first
// essential without a match.
func assignEssentials(g *core.Grid, catalog Catalog, rng *pcore.RNG, hook Instantiator) (int, error) {
	placed := 0
	for _, ess := range catalog.Essentials() {
		matches := signatureMatches(g, ess.Exits)
		if len(matches) == 0 {
			return placed, &EssentialError{ID: ess.ID}
		}
		cell := matches[rng.IntN(len(matches))]
		cell.Room = ess
		hook.Place(cell.X, cell.Y, *ess)
		for _, n := range cell.Neighbours() {
			if d, ok := cell.DirectionTo(n); ok && ess.Exits.Has(d) {
				n.Connected = true
			}
		}
		placed++
	}
	return placed, nil
}

func signatureMatches(g *core.Grid, exits core.Exits) []*core.Cell {
	var out []*core.Cell
	cells := g.Cells()
	for i := range cells {
		c := &cells[i]
		if c.Room == nil || c.Room.Essential {
			continue
		}
		if c.Room.Exits == exits {
			out = append(out, c)
		}
	}
	return out
}
