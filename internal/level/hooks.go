package level

import "roomgrid/internal/core"

// Instantiator receives every room assignment so callers can mirror the level
// in a scene, a terminal or a log. Clear is called before each attempt.
type Instantiator interface {
	Clear()
	Place(x, y int, room core.RoomTemplate)
}

type nopInstantiator struct{}

func (nopInstantiator) Clear() {}
func (nopInstantiator) Place(int, int, core.RoomTemplate) {}

// Recorder is an Instantiator that keeps the assignments of the current attempt.
type Recorder struct {
	Clears int
	Events []Placement
}

// Placement is one Instantiator event.
type Placement struct {
	X, Y int
	ID   string
}

func (r *Recorder) Clear() {
	r.Clears++
	r.Events = r.Events[:0]
}

func (r *Recorder) Place(x, y int, room core.RoomTemplate) {
	r.Events = append(r.Events, Placement{X: x, Y: y, ID: room.ID})
}
