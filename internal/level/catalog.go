package level

import "roomgrid/internal/core"

// Catalog is an ordered view over a config's room templates. Queries return
// pointers into the backing slice so cells share template identity.
type Catalog []core.RoomTemplate

func (c Catalog) filter(keep func(*core.RoomTemplate) bool) []*core.RoomTemplate {
	var out []*core.RoomTemplate
	for i := range c {
		if keep(&c[i]) {
			out = append(out, &c[i])
		}
	}
	return out
}

// Essentials returns the templates that must appear once in every level.
func (c Catalog) Essentials() []*core.RoomTemplate {
	return c.filter(func(t *core.RoomTemplate) bool { return t.Essential })
}

// StartRooms returns the templates flagged for the center cell.
func (c Catalog) StartRooms() []*core.RoomTemplate {
	return c.filter(func(t *core.RoomTemplate) bool { return t.Start })
}

// NonEssential returns every template that is not essential.
func (c Catalog) NonEssential() []*core.RoomTemplate {
	return c.filter(func(t *core.RoomTemplate) bool { return !t.Essential })
}

// Fillers returns the non-essential, non-start templates that satisfy req.
func (c Catalog) Fillers(req Requirement) []*core.RoomTemplate {
	return c.filter(func(t *core.RoomTemplate) bool {
		return !t.Essential && !t.Start && req.Allows(t.Exits)
	})
}

func allowed(rooms []*core.RoomTemplate, req Requirement) []*core.RoomTemplate {
	var out []*core.RoomTemplate
	for _, r := range rooms {
		if req.Allows(r.Exits) {
			out = append(out, r)
		}
	}
	return out
}
