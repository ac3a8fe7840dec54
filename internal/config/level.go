package config

import (
	"flag"
	"fmt"

	"roomgrid/internal/core"
	"roomgrid/internal/level"
)

// Level is the generator configuration shared by the command line tools.
type Level struct {
	Width   int    `env:"ROOMGRID_WIDTH"    envDefault:"5"`
	Height  int    `env:"ROOMGRID_HEIGHT"   envDefault:"5"`
	MinSize int    `env:"ROOMGRID_MIN_SIZE" envDefault:"6"`
	MaxSize int    `env:"ROOMGRID_MAX_SIZE" envDefault:"12"`
	Density int    `env:"ROOMGRID_DENSITY"  envDefault:"50"`
	Catalog string `env:"ROOMGRID_CATALOG"  envDefault:"classic"`
	Seed    string `env:"ROOMGRID_SEED"`
}

// LoadLevel reads Level from the environment.
func LoadLevel() (Level, error) {
	var cfg Level
	if err := ParseEnv(&cfg); err != nil {
		return Level{}, err
	}
	return cfg, nil
}

// Bind registers flags that override the environment values already in cfg.
func (c *Level) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "w", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "grid height in cells")
	fs.IntVar(&c.MinSize, "min", c.MinSize, "minimum number of rooms")
	fs.IntVar(&c.MaxSize, "max", c.MaxSize, "maximum number of rooms")
	fs.IntVar(&c.Density, "density", c.Density, "level density 0-100")
	fs.StringVar(&c.Catalog, "catalog", c.Catalog, "room catalog name")
	fs.StringVar(&c.Seed, "seed", c.Seed, "level seed (empty for a fresh one)")
}

// Resolve looks up the catalog and returns a validated generator config.
func (c Level) Resolve() (level.Config, error) {
	factory, ok := core.Catalogs()[c.Catalog]
	if !ok {
		return level.Config{}, fmt.Errorf("unknown catalog %q (have %v)", c.Catalog, core.CatalogNames())
	}
	cfg := level.Config{
		Width:        c.Width,
		Height:       c.Height,
		MinLevelSize: c.MinSize,
		MaxLevelSize: c.MaxSize,
		LevelDensity: c.Density,
		Rooms:        factory(),
	}
	if err := cfg.Validate(); err != nil {
		return level.Config{}, err
	}
	return cfg, nil
}
