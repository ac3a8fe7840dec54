package level

import (
	"roomgrid/internal/core"
)

var (
	top    = core.Top
	right  = core.Right
	bottom = core.Bottom
	left   = core.Left
)

func room(id string, dirs ...core.Direction) core.RoomTemplate {
	return core.RoomTemplate{ID: id, Exits: core.ExitsOf(dirs...)}
}

// fillers returns one template for every non-empty exit set, skipping masks in skip.
func fillers(skip ...core.Exits) []core.RoomTemplate {
	var out []core.RoomTemplate
next:
	for mask := core.Exits(1); mask <= core.AllExits; mask++ {
		for _, s := range skip {
			if s == mask {
				continue next
			}
		}
		out = append(out, core.RoomTemplate{ID: "f" + mask.String(), Exits: mask})
	}
	return out
}

func fullCatalog() []core.RoomTemplate {
	rooms := fillers()
	return append(rooms, core.RoomTemplate{ID: "start", Exits: core.ExitsOf(top, right, left), Start: true})
}

func openConfig(w, h int, rooms []core.RoomTemplate) Config {
	return Config{
		Width:        w,
		Height:       h,
		MinLevelSize: 1,
		MaxLevelSize: w * h,
		LevelDensity: 50,
		Rooms:        rooms,
	}
}

func place(g *core.Grid, x, y int, r core.RoomTemplate) *core.Cell {
	c := g.At(x, y)
	c.Room = &r
	return c
}

func roomIDs(g *core.Grid) []string {
	cells := g.Cells()
	out := make([]string, len(cells))
	for i := range cells {
		if cells[i].Room != nil {
			out[i] = cells[i].Room.ID
		}
	}
	return out
}
