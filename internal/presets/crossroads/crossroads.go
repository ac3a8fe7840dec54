// Package crossroads registers a catalog without straight corridors, which
// produces branchy levels around a four-way start.
package crossroads

import "roomgrid/internal/core"

const Name = "crossroads"

func init() {
	core.RegisterCatalog(Name, Rooms)
}

func Rooms() []core.RoomTemplate {
	all := []core.Direction{core.Top, core.Right, core.Bottom, core.Left}
	var rooms []core.RoomTemplate
	for mask := core.Exits(1); mask <= core.AllExits; mask++ {
		if mask.IsCorridor() {
			continue
		}
		id := "room-"
		for _, d := range mask.List() {
			id += d.String()[:1]
		}
		rooms = append(rooms, core.RoomTemplate{ID: id, Exits: mask})
	}
	rooms = append(rooms,
		core.RoomTemplate{ID: "plaza", Exits: core.ExitsOf(all...), Start: true},
		core.RoomTemplate{ID: "vault", Exits: core.ExitsOf(core.Bottom), Essential: true},
	)
	return rooms
}
