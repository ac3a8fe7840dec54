package level

import "roomgrid/internal/core"

// Validation holds the three acceptance predicates of one attempt.
type Validation struct {
	GridBuilt        bool
	SizeWithinBounds bool
	AllRoomsPlaced   bool
}

// OK reports whether every predicate holds.
func (v Validation) OK() bool {
	return v.GridBuilt && v.SizeWithinBounds && v.AllRoomsPlaced
}

// Failed lists the names of the predicates that did not hold.
func (v Validation) Failed() []string {
	var out []string
	if !v.GridBuilt {
		out = append(out, "grid_built")
	}
	if !v.SizeWithinBounds {
		out = append(out, "size_within_bounds")
	}
	if !v.AllRoomsPlaced {
		out = append(out, "all_rooms_placed")
	}
	return out
}

func validate(g *core.Grid, cfg Config, placementOK bool) Validation {
	placed := g.Placed()
	return Validation{
		GridBuilt:        g.Len() > 0,
		SizeWithinBounds: placed >= cfg.MinLevelSize && placed <= cfg.MaxLevelSize,
		AllRoomsPlaced:   placementOK,
	}
}
