package level

import (
	"errors"
	"slices"
	"testing"

	"roomgrid/internal/core"
	pcore "roomgrid/pkg/core"
)

func TestBiasedDensity(t *testing.T) {
	cases := []struct {
		w, h, min, density int
		want               int
	}{
		{5, 5, 6, 50, 57},
		{5, 5, 25, 90, 100},
		{4, 4, 3, 0, 6},
		{4, 4, 5, 10, 19},
		{5, 5, 0, 0, 0},
	}
	for _, tc := range cases {
		cfg := Config{Width: tc.w, Height: tc.h, MinLevelSize: tc.min, LevelDensity: tc.density}
		if got := cfg.BiasedDensity(); got != tc.want {
			t.Fatalf("%dx%d min %d density %d: got %d want %d", tc.w, tc.h, tc.min, tc.density, got, tc.want)
		}
	}
}

func TestPickBiasedRejectsEverythingAtFullDensity(t *testing.T) {
	catalog := Catalog{room("tb", top, bottom), room("rl", right, left), room("t", top)}
	candidates := catalog.filter(func(*core.RoomTemplate) bool { return true })
	p := newPlacer(Config{}, catalog, nil, pcore.NewRNG(pcore.Seed{1, 2, 3, 4}), nopInstantiator{})
	p.biased = 100
	p.placed = 10
	for i := 0; i < 200; i++ {
		if got := p.pickBiased(candidates); got != nil {
			t.Fatalf("expected density 100 to reject every candidate, got %s", got.ID)
		}
	}
}

func TestPickBiasedIgnoresDeadEndsBelowMinimum(t *testing.T) {
	catalog := Catalog{room("t", top), room("trb", top, right, bottom)}
	candidates := catalog.filter(func(*core.RoomTemplate) bool { return true })
	rng := pcore.NewRNG(pcore.Seed{9, 9, 9, 9})
	p := newPlacer(Config{MinLevelSize: 4}, catalog, nil, rng, nopInstantiator{})
	p.placed = 4
	before := rng.State()
	if got := p.pickBiased(candidates); got != nil {
		t.Fatalf("expected no biased pick, got %s", got.ID)
	}
	if rng.State() != before {
		t.Fatal("expected no rolls for ineligible candidates")
	}

	p.placed = 5
	accepted := 0
	for i := 0; i < 100; i++ {
		if p.pickBiased(candidates) != nil {
			accepted++
		}
	}
	if accepted < 90 {
		t.Fatalf("expected dead ends to be accepted at density 0, got %d/100", accepted)
	}
}

func TestPickBiasedReturnsFirstAcceptedCandidate(t *testing.T) {
	catalog := Catalog{
		room("corner", top, right),
		room("tb", top, bottom),
		room("t", top),
		room("rl", right, left),
	}
	candidates := catalog.filter(func(*core.RoomTemplate) bool { return true })
	skipped := 0
	for i := 0; i < 50; i++ {
		seed := pcore.Seed{uint32(i), 7, 11, 13}
		p := newPlacer(Config{}, catalog, nil, pcore.NewRNG(seed), nopInstantiator{})
		p.biased = 40
		p.placed = 1
		got := p.pickBiased(candidates)

		replay := pcore.NewRNG(seed)
		var want *core.RoomTemplate
		for _, c := range candidates {
			if !c.Exits.IsCorridor() && !c.Exits.IsDeadEnd() {
				continue
			}
			if replay.Percent() > 40 {
				want = c
				break
			}
		}
		if got != want {
			t.Fatalf("seed %v: got %v want %v", seed, got, want)
		}
		if want != &catalog[1] {
			skipped++
		}
	}
	if skipped == 0 {
		t.Fatal("expected some scans to pass over the first eligible candidate")
	}
}

func TestFourWayStartOnThreeByThree(t *testing.T) {
	cfg := Config{
		Width:        3,
		Height:       3,
		MaxLevelSize: 9,
		Rooms:        []core.RoomTemplate{{ID: "hub", Exits: core.AllExits, Start: true}},
	}
	rec := &Recorder{}
	gen, err := New(cfg, WithInstantiator(rec))
	if err != nil {
		t.Fatalf("new generator: %v", err)
	}
	_, err = gen.Run("100000-200000-300000-400000")
	var capErr *AttemptCapError
	if !errors.As(err, &capErr) {
		t.Fatalf("expected attempt cap error, got %v", err)
	}
	if capErr.Last.AllRoomsPlaced {
		t.Fatal("expected all_rooms_placed to fail")
	}
	if len(rec.Events) != 1 || rec.Events[0] != (Placement{X: 1, Y: 1, ID: "hub"}) {
		t.Fatalf("expected only the start room to be placed, got %v", rec.Events)
	}

	var tried [][2]int
	for _, cause := range capErr.Causes {
		var pe *PlacementError
		if errors.As(cause, &pe) {
			tried = append(tried, [2]int{pe.X, pe.Y})
		}
	}
	want := [][2]int{{2, 1}, {1, 2}, {0, 1}, {1, 0}}
	if !slices.Equal(tried, want) {
		t.Fatalf("expected first wave to try %v, got %v", want, tried)
	}
	if !errors.Is(err, ErrNoValidRoom) {
		t.Fatal("expected causes to match ErrNoValidRoom")
	}
}

func TestWaveDepthGrowsFromCenter(t *testing.T) {
	cfg := Config{
		Width:        1,
		Height:       5,
		MinLevelSize: 5,
		MaxLevelSize: 5,
		Rooms: []core.RoomTemplate{
			room("cap-b", bottom),
			room("cap-t", top),
			room("shaft", top, bottom),
			{ID: "lobby", Exits: core.ExitsOf(top, bottom), Start: true},
		},
	}
	gen, err := New(cfg)
	if err != nil {
		t.Fatalf("new generator: %v", err)
	}
	res, err := gen.Run("000001-000002-000003-000004")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	for y, want := range []int{2, 1, 0, 1, 2} {
		if got := res.Grid.At(0, y).Wave; got != want {
			t.Fatalf("cell (0,%d): wave %d, want %d", y, got, want)
		}
	}
	if id := res.Grid.At(0, 4).Room.ID; id != "cap-b" {
		t.Fatalf("expected top cell to close with cap-b, got %s", id)
	}
	if id := res.Grid.At(0, 0).Room.ID; id != "cap-t" {
		t.Fatalf("expected bottom cell to close with cap-t, got %s", id)
	}
}
