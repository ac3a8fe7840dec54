package level

import (
	"testing"

	"roomgrid/internal/core"
)

func TestEncodePutsHighestRowFirst(t *testing.T) {
	g := core.NewGrid(2, 2)
	place(g, 0, 1, room("nw", right))
	place(g, 1, 1, room("ne", left, bottom))
	place(g, 1, 0, core.RoomTemplate{ID: "se", Exits: core.ExitsOf(top), Essential: true}).Wave = 2
	g.At(1, 1).Connected = true

	out := Encode(g)
	if DecodeExits(out[0]) != core.ExitsOf(right) {
		t.Fatalf("expected top-left to be nw, got %v", DecodeExits(out[0]))
	}
	if out[1]&FlagConnected == 0 {
		t.Fatal("expected connected flag on top-right")
	}
	if out[2] != 0 {
		t.Fatalf("expected empty bottom-left, got %#x", out[2])
	}
	if Kind(out[3]) != KindEssential {
		t.Fatalf("expected essential kind, got %d", Kind(out[3]))
	}
	if Kind(out[0]) != KindDeadEnd || Kind(out[2]) != KindEmpty {
		t.Fatal("unexpected kinds")
	}
	waves := Waves(g)
	if waves[3] != 2 || waves[2] != -1 {
		t.Fatalf("unexpected waves %v", waves)
	}
	if len(Palette()) != KindEssential+1 {
		t.Fatal("expected one colour per kind")
	}
}
