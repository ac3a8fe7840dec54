package level

import (
	"fmt"
	"log"
	"os"

	"roomgrid/internal/core"
	pcore "roomgrid/pkg/core"
)

// MaxAttempts bounds the retry loop of a single Run.
const MaxAttempts = 200

// Result is a successfully validated level.
type Result struct {
	Grid       *core.Grid
	Seed       string
	Attempts   int
	Validation Validation
	Essentials int
}

// Option configures a Generator.
type Option func(*Generator)

// WithLogger replaces the default stderr logger.
func WithLogger(l *log.Logger) Option {
	return func(g *Generator) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithInstantiator registers a hook that mirrors every room assignment.
func WithInstantiator(i Instantiator) Option {
	return func(g *Generator) {
		if i != nil {
			g.hook = i
		}
	}
}

// Generator owns the PRNG and the configuration for repeated generation calls.
// It is not safe for concurrent use.
type Generator struct {
	cfg     Config
	catalog Catalog
	rng     *pcore.RNG
	logger  *log.Logger
	hook    Instantiator
}

// New validates cfg and seeds the generator's PRNG from entropy. The entropy
// state only matters for Run("") and for invalid seeds.
func New(cfg Config, opts ...Option) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	seed, err := pcore.NewEntropySeed()
	if err != nil {
		return nil, fmt.Errorf("seed generator: %w", err)
	}
	g := &Generator{
		cfg:     cfg,
		catalog: Catalog(cfg.Rooms),
		rng:     pcore.NewRNG(seed),
		logger:  log.New(os.Stderr, "roomgrid: ", log.LstdFlags),
		hook:    nopInstantiator{},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// Config returns the generator's configuration.
func (g *Generator) Config() Config { return g.cfg }

// Run generates a level from seed text. An empty seed starts from the current
// PRNG state. An invalid seed is replaced the same way and logged.
func (g *Generator) Run(seedText string) (*Result, error) {
	if seedText == "" {
		return g.RunSeed(g.rng.State())
	}
	seed, err := pcore.ParseSeed(seedText)
	if err != nil {
		seed = g.rng.State()
		g.logger.Printf("%v; using seed %s", err, seed)
	}
	return g.RunSeed(seed)
}

// RunSeed resets the PRNG to seed and retries until an attempt validates or
// MaxAttempts is reached. The PRNG is not reset between attempts.
func (g *Generator) RunSeed(seed pcore.Seed) (*Result, error) {
	g.rng.SetState(seed)
	var (
		last   Validation
		causes []error
	)
	for attempt := 1; attempt <= MaxAttempts; attempt++ {
		grid, essentials, v, errs := g.attempt()
		if v.OK() {
			return &Result{
				Grid:       grid,
				Seed:       seed.String(),
				Attempts:   attempt,
				Validation: v,
				Essentials: essentials,
			}, nil
		}
		last, causes = v, errs
	}
	return nil, &AttemptCapError{
		Attempts: MaxAttempts,
		Seed:     seed.String(),
		Last:     last,
		Causes:   causes,
	}
}

func (g *Generator) attempt() (*core.Grid, int, Validation, []error) {
	g.hook.Clear()
	grid := core.NewGrid(g.cfg.Width, g.cfg.Height)
	p := newPlacer(g.cfg, g.catalog, grid, g.rng, g.hook)
	p.run()
	errs := p.failures
	essentials, err := assignEssentials(grid, g.catalog, g.rng, g.hook)
	if err != nil {
		errs = append(errs, err)
	}
	return grid, essentials, validate(grid, g.cfg, len(errs) == 0), errs
}
