package core

import (
	"fmt"
	"sort"
	"strings"
)

// Size describes the dimensions of a level grid.
type Size struct {
	W int
	H int
}

// Direction names one side of a room.
type Direction uint8

const (
	Top Direction = iota
	Right
	Bottom
	Left
)

// Directions lists the four canonical directions in declaration order.
var Directions = [...]Direction{Top, Right, Bottom, Left}

var directionNames = [...]string{"top", "right", "bottom", "left"}

func (d Direction) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}
	return fmt.Sprintf("direction(%d)", uint8(d))
}

// Opposite returns the side facing d from the neighbouring cell.
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

// Offset returns the grid step for d. Top points towards y+1.
func (d Direction) Offset() (dx, dy int) {
	switch d {
	case Top:
		return 0, 1
	case Right:
		return 1, 0
	case Bottom:
		return 0, -1
	case Left:
		return -1, 0
	}
	return 0, 0
}

// ParseDirection accepts the lower case direction names or their initials.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "top", "t":
		return Top, nil
	case "right", "r":
		return Right, nil
	case "bottom", "b":
		return Bottom, nil
	case "left", "l":
		return Left, nil
	}
	return 0, fmt.Errorf("unknown direction %q", s)
}

// Exits is a set of directions stored as a bit mask.
type Exits uint8

// AllExits opens every side.
const AllExits Exits = 1<<Top | 1<<Right | 1<<Bottom | 1<<Left

// ExitsOf builds a set from the given directions. Duplicates collapse.
func ExitsOf(dirs ...Direction) Exits {
	var e Exits
	for _, d := range dirs {
		e = e.With(d)
	}
	return e
}

// With returns the set with d added.
func (e Exits) With(d Direction) Exits { return e | 1<<d }

// Has reports whether d is in the set.
func (e Exits) Has(d Direction) bool { return e&(1<<d) != 0 }

// Len counts the directions in the set.
func (e Exits) Len() int {
	n := 0
	for _, d := range Directions {
		if e.Has(d) {
			n++
		}
	}
	return n
}

// Contains reports whether every direction of other is also in e.
func (e Exits) Contains(other Exits) bool { return e&other == other }

// Intersects reports whether e and other share a direction.
func (e Exits) Intersects(other Exits) bool { return e&other != 0 }

// Valid reports whether e only uses the four canonical bits.
func (e Exits) Valid() bool { return e&^AllExits == 0 }

// List returns the directions in canonical order.
func (e Exits) List() []Direction {
	out := make([]Direction, 0, 4)
	for _, d := range Directions {
		if e.Has(d) {
			out = append(out, d)
		}
	}
	return out
}

// IsCorridor reports an exact opposite pair: Top+Bottom or Left+Right.
func (e Exits) IsCorridor() bool {
	return e == ExitsOf(Top, Bottom) || e == ExitsOf(Left, Right)
}

// IsDeadEnd reports a room with exactly one exit.
func (e Exits) IsDeadEnd() bool { return e.Len() == 1 }

func (e Exits) String() string {
	names := make([]string, 0, 4)
	for _, d := range e.List() {
		names = append(names, d.String())
	}
	return "{" + strings.Join(names, ",") + "}"
}

// ParseExits reads a comma or plus separated list such as "top,right" or "t+r".
func ParseExits(s string) (Exits, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == '+' || r == ' ' })
	var e Exits
	for _, f := range fields {
		d, err := ParseDirection(f)
		if err != nil {
			return 0, err
		}
		e = e.With(d)
	}
	return e, nil
}

// RoomTemplate is a reusable room definition. ID refers to external content
// such as a prefab or sprite and is opaque to the generator.
type RoomTemplate struct {
	ID        string
	Exits     Exits
	Essential bool
	Start     bool
}

// Validate checks that the template opens on 1 to 4 canonical sides.
func (t RoomTemplate) Validate() error {
	if !t.Exits.Valid() {
		return fmt.Errorf("room %q: exit mask %#x has unknown bits", t.ID, uint8(t.Exits))
	}
	if t.Exits.Len() == 0 {
		return fmt.Errorf("room %q: no exits", t.ID)
	}
	return nil
}

// CatalogFactory constructs a named room catalog.
type CatalogFactory func() []RoomTemplate

var catalogs = map[string]CatalogFactory{}

// RegisterCatalog adds a catalog factory under the provided name.
func RegisterCatalog(name string, f CatalogFactory) {
	if name == "" || f == nil {
		return
	}
	catalogs[name] = f
}

// Catalogs exposes the registry of available catalog factories.
func Catalogs() map[string]CatalogFactory {
	return catalogs
}

// CatalogNames returns the registered catalog names sorted alphabetically.
func CatalogNames() []string {
	names := make([]string, 0, len(catalogs))
	for name := range catalogs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
