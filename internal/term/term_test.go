package term

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"roomgrid/internal/core"
	"roomgrid/internal/level"
)

type cell struct {
	r     rune
	style tcell.Style
}

type fakeSurface map[[2]int]cell

func (f fakeSurface) SetContent(x, y int, primary rune, _ []rune, style tcell.Style) {
	f[[2]int{x, y}] = cell{r: primary, style: style}
}

func testSession(t *testing.T) *level.Session {
	t.Helper()
	rooms := []core.RoomTemplate{
		{ID: "cap-b", Exits: core.ExitsOf(core.Bottom)},
		{ID: "cap-t", Exits: core.ExitsOf(core.Top)},
		{ID: "shaft", Exits: core.ExitsOf(core.Top, core.Bottom), Start: true},
	}
	s, err := level.NewSession(level.Config{Width: 1, Height: 3, MaxLevelSize: 3, LevelDensity: 50, Rooms: rooms}, "test")
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	if err := s.Generate("123456-654321-111111-222222"); err != nil {
		t.Fatalf("generate: %v", err)
	}
	return s
}

func TestDrawPlacesGlyphsAndStatus(t *testing.T) {
	s := testSession(t)
	surface := fakeSurface{}
	Draw(surface, s.Cells(), 1, 3, []string{"hello"})

	// Middle row holds the start room.
	if got := surface[[2]int{1, 4}]; got.r != 'S' {
		t.Fatalf("expected start glyph, got %q", got.r)
	}
	if surface[[2]int{1, 4}].style != kindStyles[level.KindStart] {
		t.Fatal("expected start style")
	}
	// The top room opens downwards only.
	if surface[[2]int{1, 0}].r != '-' || surface[[2]int{1, 2}].r != ' ' {
		t.Fatal("unexpected top room walls")
	}
	if surface[[2]int{0, 10}].r != 'h' {
		t.Fatalf("expected status line below the level, got %q", surface[[2]int{0, 10}].r)
	}
}

func TestDrawOnSimulationScreen(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init screen: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(40, 20)

	s := testSession(t)
	v := NewViewer(screen, s)
	v.draw()
}

func TestHandleRuneCommands(t *testing.T) {
	s := testSession(t)
	v := NewViewer(nil, s)
	seed := s.Seed()

	if v.HandleRune('r') || s.Seed() != seed {
		t.Fatal("expected replay to keep the seed")
	}
	v.HandleRune('s')
	if s.Seed() == seed {
		t.Fatal("expected a new seed")
	}
	v.HandleRune('a')
	if !v.Auto() {
		t.Fatal("expected auto cycling to toggle on")
	}
	v.HandleRune('-')
	if s.Config().LevelDensity != 45 {
		t.Fatalf("expected density 45, got %d", s.Config().LevelDensity)
	}
	if !strings.Contains(strings.Join(v.StatusLines(), "\n"), "density 45") {
		t.Fatal("expected status to show the density")
	}
	if !v.HandleRune('q') {
		t.Fatal("expected q to quit")
	}
}
