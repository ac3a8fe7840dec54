package core

import "testing"

func TestNewGridIndexIsBijection(t *testing.T) {
	g := NewGrid(4, 3)
	if g.Len() != 12 {
		t.Fatalf("expected 12 cells, got %d", g.Len())
	}
	seen := make(map[int]bool)
	for x := 0; x < 4; x++ {
		for y := 0; y < 3; y++ {
			idx := g.Index(x, y)
			if seen[idx] {
				t.Fatalf("index %d reused at (%d,%d)", idx, x, y)
			}
			seen[idx] = true
			c := g.At(x, y)
			if c.X != x || c.Y != y {
				t.Fatalf("cell at (%d,%d) reports (%d,%d)", x, y, c.X, c.Y)
			}
			if c.Wave != -1 || c.HasRoom() {
				t.Fatalf("cell (%d,%d) not empty on build", x, y)
			}
		}
	}
}

func TestNewGridNeighboursSymmetricAndOrthogonal(t *testing.T) {
	g := NewGrid(5, 4)
	cells := g.Cells()
	for i := range cells {
		c := &cells[i]
		want := 4
		if c.X == 0 || c.X == g.W-1 {
			want--
		}
		if c.Y == 0 || c.Y == g.H-1 {
			want--
		}
		if got := len(c.Neighbours()); got != want {
			t.Fatalf("cell (%d,%d) has %d neighbours, expected %d", c.X, c.Y, got, want)
		}
		for _, n := range c.Neighbours() {
			dx, dy := n.X-c.X, n.Y-c.Y
			if dx*dx+dy*dy != 1 {
				t.Fatalf("cell (%d,%d) linked to non-adjacent (%d,%d)", c.X, c.Y, n.X, n.Y)
			}
			back := false
			for _, m := range n.Neighbours() {
				if m == c {
					back = true
				}
			}
			if !back {
				t.Fatalf("neighbour link (%d,%d)->(%d,%d) is not symmetric", c.X, c.Y, n.X, n.Y)
			}
		}
	}
}

func TestNewGridNeighbourOrder(t *testing.T) {
	g := NewGrid(3, 3)
	c := g.At(1, 1)
	want := [][2]int{{2, 1}, {1, 2}, {0, 1}, {1, 0}}
	for i, n := range c.Neighbours() {
		if n.X != want[i][0] || n.Y != want[i][1] {
			t.Fatalf("neighbour %d is (%d,%d), expected %v", i, n.X, n.Y, want[i])
		}
	}
}

func TestNewGridEmptyDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 3}, {3, 0}, {-1, 2}} {
		g := NewGrid(dims[0], dims[1])
		if g.Len() != 0 {
			t.Fatalf("grid %v should be empty, got %d cells", dims, g.Len())
		}
		if g.Center() != nil {
			t.Fatalf("grid %v should have no center cell", dims)
		}
	}
}

func TestCenterAndOffGrid(t *testing.T) {
	g := NewGrid(3, 3)
	c := g.Center()
	if c.X != 1 || c.Y != 1 {
		t.Fatalf("center is (%d,%d)", c.X, c.Y)
	}
	if e := g.OffGrid(1, 1); e != 0 {
		t.Fatalf("center should not face off grid, got %v", e)
	}
	if e := g.OffGrid(0, 0); e != ExitsOf(Left, Bottom) {
		t.Fatalf("origin off-grid set %v", e)
	}
	if e := g.OffGrid(2, 2); e != ExitsOf(Right, Top) {
		t.Fatalf("far corner off-grid set %v", e)
	}
	one := NewGrid(1, 1)
	if e := one.OffGrid(0, 0); e != AllExits {
		t.Fatalf("single cell should face off grid on every side, got %v", e)
	}
}

func TestDirectionTo(t *testing.T) {
	g := NewGrid(3, 3)
	c := g.At(1, 1)
	cases := map[Direction]*Cell{
		Top:    g.At(1, 2),
		Right:  g.At(2, 1),
		Bottom: g.At(1, 0),
		Left:   g.At(0, 1),
	}
	for want, n := range cases {
		got, ok := c.DirectionTo(n)
		if !ok || got != want {
			t.Fatalf("DirectionTo(%d,%d) = %v,%v expected %v", n.X, n.Y, got, ok, want)
		}
		if back, _ := n.DirectionTo(c); back != want.Opposite() {
			t.Fatalf("reverse direction %v, expected %v", back, want.Opposite())
		}
	}
	if _, ok := c.DirectionTo(g.At(2, 2)); ok {
		t.Fatal("diagonal cell must not have a direction")
	}
}
