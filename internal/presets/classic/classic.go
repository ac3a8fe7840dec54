// Package classic registers the default room catalog: one filler for every
// exit combination, a three-way start room and two essential rooms.
package classic

import "roomgrid/internal/core"

// Name is the registry key of the catalog.
const Name = "classic"

func init() {
	core.RegisterCatalog(Name, Rooms)
}

// Rooms returns a fresh copy of the catalog. Dead ends and corridors come
// first so the density scan meets them before larger rooms.
func Rooms() []core.RoomTemplate {
	var (
		t = core.Top
		r = core.Right
		b = core.Bottom
		l = core.Left
	)
	room := func(id string, dirs ...core.Direction) core.RoomTemplate {
		return core.RoomTemplate{ID: id, Exits: core.ExitsOf(dirs...)}
	}
	rooms := []core.RoomTemplate{
		room("end-t", t),
		room("end-r", r),
		room("end-b", b),
		room("end-l", l),
		room("hall-tb", t, b),
		room("hall-rl", r, l),
		room("corner-tr", t, r),
		room("corner-rb", r, b),
		room("corner-bl", b, l),
		room("corner-lt", l, t),
		room("tee-trb", t, r, b),
		room("tee-rbl", r, b, l),
		room("tee-blt", b, l, t),
		room("tee-ltr", l, t, r),
		room("cross", t, r, b, l),
	}
	rooms = append(rooms,
		core.RoomTemplate{ID: "entrance", Exits: core.ExitsOf(t, r, l), Start: true},
		core.RoomTemplate{ID: "boss", Exits: core.ExitsOf(t), Essential: true},
		core.RoomTemplate{ID: "shop", Exits: core.ExitsOf(r, l), Essential: true},
	)
	return rooms
}
