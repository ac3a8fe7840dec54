package level

import (
	"fmt"
	"math"
	"strconv"

	"roomgrid/internal/core"
)

// Config controls one generation call. The generator never mutates it.
type Config struct {
	Width  int
	Height int

	MinLevelSize int
	MaxLevelSize int

	// LevelDensity in [0, 100] biases selection away from corridors and dead ends.
	LevelDensity int

	// Rooms is the ordered room catalog. Order matters for the density scan.
	Rooms []core.RoomTemplate
}

// DefaultConfig returns the standard configuration without a catalog.
func DefaultConfig() Config {
	return Config{
		Width:        5,
		Height:       5,
		MinLevelSize: 6,
		MaxLevelSize: 12,
		LevelDensity: 50,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// The "catalog" key selects a registered catalog by name.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["min"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.MinLevelSize = parsed
		}
	}
	if v, ok := cfg["max"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.MaxLevelSize = parsed
		}
	}
	if c.MaxLevelSize < c.MinLevelSize {
		c.MaxLevelSize = c.MinLevelSize
	}
	if v, ok := cfg["density"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.LevelDensity = clamp(parsed, 0, 100)
		}
	}
	if v, ok := cfg["catalog"]; ok {
		if f, found := core.Catalogs()[v]; found {
			c.Rooms = f()
		}
	}
	return c
}

// Validate rejects configurations the generator cannot interpret. Bounds that
// can never be met (for example MinLevelSize above Width*Height) are legal and
// surface as a retry cap failure instead.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: grid %dx%d", ErrInvalidConfig, c.Width, c.Height)
	}
	if c.LevelDensity < 0 || c.LevelDensity > 100 {
		return fmt.Errorf("%w: level density %d outside [0,100]", ErrInvalidConfig, c.LevelDensity)
	}
	if c.MinLevelSize < 0 {
		return fmt.Errorf("%w: negative minimum level size %d", ErrInvalidConfig, c.MinLevelSize)
	}
	if c.MaxLevelSize < c.MinLevelSize {
		return fmt.Errorf("%w: maximum level size %d below minimum %d", ErrInvalidConfig, c.MaxLevelSize, c.MinLevelSize)
	}
	for _, room := range c.Rooms {
		if err := room.Validate(); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
	}
	return nil
}

// Cells returns Width*Height, or zero for a degenerate grid.
func (c Config) Cells() int {
	if c.Width <= 0 || c.Height <= 0 {
		return 0
	}
	return c.Width * c.Height
}

// BiasedDensity raises LevelDensity in proportion to how much of the grid the
// minimum size claims: clamp(density + round(30*min/cells), 0, 100).
func (c Config) BiasedDensity() int {
	bonus := 0
	if cells := c.Cells(); cells > 0 {
		bonus = int(math.Round(30 * float64(c.MinLevelSize) / float64(cells)))
	}
	return clamp(c.LevelDensity+bonus, 0, 100)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
