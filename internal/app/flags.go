package app

import (
	"flag"
	"time"

	"roomgrid/internal/config"
	"roomgrid/internal/core"
)

// Config represents the command-line parameters for the viewer.
type Config struct {
	Level    config.Level
	Scale    int
	HUDWidth int
	TPS      int
	Auto     bool
	Period   time.Duration
}

// NewConfig returns viewer defaults on top of the environment's level settings.
func NewConfig() (*Config, error) {
	lvl, err := config.LoadLevel()
	if err != nil {
		return nil, err
	}
	return &Config{Level: lvl, Scale: 4, HUDWidth: 260, TPS: 60, Period: core.DefaultCyclePeriod}, nil
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	c.Level.Bind(fs)
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "control panel width in pixels (0 hides it)")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.BoolVar(&c.Auto, "auto", c.Auto, "regenerate with a new seed on a timer")
	fs.DurationVar(&c.Period, "period", c.Period, "auto-cycle interval")
}
