package level

import (
	"errors"
	"fmt"

	"roomgrid/internal/core"
	pcore "roomgrid/pkg/core"
)

// Grid size limits accepted by SetIntParameter.
const (
	MinGridSide = 1
	MaxGridSide = 64
)

// Session keeps a generator, its configuration and the latest level together
// for interactive front ends.
type Session struct {
	cfg     Config
	catalog string
	opts    []Option
	gen     *Generator

	seed   string
	result *Result
	err    error
	stats  Stats

	display []uint8
	waves   []int
}

// NewSession builds a generator for cfg. catalog names the room catalog for display.
func NewSession(cfg Config, catalog string, opts ...Option) (*Session, error) {
	s := &Session{cfg: cfg, catalog: catalog, opts: opts}
	if err := s.rebuild(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Session) rebuild() error {
	gen, err := New(s.cfg, s.opts...)
	if err != nil {
		return err
	}
	s.gen = gen
	s.clearDisplay()
	return nil
}

func (s *Session) clearDisplay() {
	n := s.cfg.Cells()
	s.display = make([]uint8, n)
	s.waves = make([]int, n)
	for i := range s.waves {
		s.waves[i] = -1
	}
}

// Generate runs the generator with seedText. A cap failure keeps the seed so
// the run can be reproduced, and clears the display.
func (s *Session) Generate(seedText string) error {
	res, err := s.gen.Run(seedText)
	s.result, s.err = res, err
	if err != nil {
		var capErr *AttemptCapError
		if errors.As(err, &capErr) {
			s.seed = capErr.Seed
		}
		s.stats = Stats{}
		s.clearDisplay()
		return err
	}
	s.seed = res.Seed
	s.stats = Analyze(res.Grid)
	s.display = Encode(res.Grid)
	s.waves = Waves(res.Grid)
	return nil
}

// Regenerate repeats the current seed.
func (s *Session) Regenerate() error { return s.Generate(s.seed) }

// Reseed generates from the generator's current PRNG state.
func (s *Session) Reseed() error { return s.Generate("") }

// SetSeed validates seedText and generates from it.
func (s *Session) SetSeed(seedText string) error {
	if _, err := pcore.ParseSeed(seedText); err != nil {
		return fmt.Errorf("set seed: %w", err)
	}
	return s.Generate(seedText)
}

// Seed returns the seed of the latest run.
func (s *Session) Seed() string { return s.seed }

// Result returns the latest successful level, or nil.
func (s *Session) Result() *Result { return s.result }

// Err returns the latest generation error.
func (s *Session) Err() error { return s.err }

// Stats returns the analysis of the latest level.
func (s *Session) Stats() Stats { return s.stats }

// Config returns the active configuration.
func (s *Session) Config() Config { return s.cfg }

// Name reports the catalog the session draws from.
func (s *Session) Name() string { return s.catalog }

// Size reports the grid dimensions.
func (s *Session) Size() core.Size { return core.Size{W: s.cfg.Width, H: s.cfg.Height} }

// Cells exposes the encoded level, row-major from the top row.
func (s *Session) Cells() []uint8 { return s.display }

// Waves exposes placement wave depths in Cells order.
func (s *Session) Waves() []int { return s.waves }

// ParameterControls lists the settings the HUD may step.
func (s *Session) ParameterControls() []core.ParameterControl {
	cells := s.cfg.Cells()
	return []core.ParameterControl{
		{Key: "w", Label: "Width", Step: 1, Min: MinGridSide, Max: MaxGridSide},
		{Key: "h", Label: "Height", Step: 1, Min: MinGridSide, Max: MaxGridSide},
		{Key: "min", Label: "Min rooms", Step: 1, Min: 0, Max: cells},
		{Key: "max", Label: "Max rooms", Step: 1, Min: 0, Max: cells},
		{Key: "density", Label: "Density", Step: 5, Min: 0, Max: 100},
	}
}

// SetIntParameter updates one setting and rebuilds the generator. Width and
// height changes pull the size bounds back inside the new grid.
func (s *Session) SetIntParameter(key string, value int) bool {
	next := s.cfg
	switch key {
	case "w":
		next.Width = clamp(value, MinGridSide, MaxGridSide)
	case "h":
		next.Height = clamp(value, MinGridSide, MaxGridSide)
	case "min":
		next.MinLevelSize = clamp(value, 0, next.Cells())
		if next.MaxLevelSize < next.MinLevelSize {
			next.MaxLevelSize = next.MinLevelSize
		}
	case "max":
		next.MaxLevelSize = clamp(value, 0, next.Cells())
		if next.MinLevelSize > next.MaxLevelSize {
			next.MinLevelSize = next.MaxLevelSize
		}
	case "density":
		next.LevelDensity = clamp(value, 0, 100)
	default:
		return false
	}
	if cells := next.Cells(); next.MaxLevelSize > cells {
		next.MaxLevelSize = cells
		if next.MinLevelSize > cells {
			next.MinLevelSize = cells
		}
	}
	if next.Width == s.cfg.Width && next.Height == s.cfg.Height &&
		next.MinLevelSize == s.cfg.MinLevelSize && next.MaxLevelSize == s.cfg.MaxLevelSize &&
		next.LevelDensity == s.cfg.LevelDensity {
		return false
	}
	prev := s.cfg
	s.cfg = next
	if err := s.rebuild(); err != nil {
		s.cfg = prev
		return false
	}
	return true
}
