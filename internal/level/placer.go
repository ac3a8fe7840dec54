package level

import (
	"roomgrid/internal/core"
	pcore "roomgrid/pkg/core"
)

type phase uint8

const (
	phaseSeeding phase = iota
	phaseStart
	phaseWave
	phaseDone
)

// placer fills one freshly built grid. It is discarded after each attempt.
type placer struct {
	cfg     Config
	catalog Catalog
	grid    *core.Grid
	rng     *pcore.RNG
	hook    Instantiator

	phase    phase
	frontier []*core.Cell
	wave     int
	biased   int
	placed   int
	failures []error
}

func newPlacer(cfg Config, catalog Catalog, grid *core.Grid, rng *pcore.RNG, hook Instantiator) *placer {
	return &placer{cfg: cfg, catalog: catalog, grid: grid, rng: rng, hook: hook}
}

func (p *placer) run() {
	for p.phase != phaseDone {
		switch p.phase {
		case phaseSeeding:
			p.biased = p.cfg.BiasedDensity()
			p.phase = phaseStart
			if p.grid.Len() == 0 {
				p.phase = phaseDone
			}
		case phaseStart:
			p.placeStart()
		case phaseWave:
			p.expand()
		}
	}
}

func (p *placer) placeStart() {
	start := p.grid.Center()
	pool := p.catalog.StartRooms()
	if len(pool) == 0 {
		pool = p.catalog.NonEssential()
	}
	req := Requirements(p.grid, start)
	pool = allowed(pool, req)
	if len(pool) == 0 {
		p.fail(start, req)
		p.phase = phaseDone
		return
	}
	room := pool[p.rng.IntN(len(pool))]
	p.assign(start, room)
	if room.Exits.Len() > 1 {
		p.frontier = append(p.frontier, start)
	}
	p.phase = phaseWave
}

// expand runs breadth-first waves until no new multi-exit room is placed.
func (p *placer) expand() {
	for len(p.frontier) > 0 {
		p.wave++
		current := p.frontier
		p.frontier = nil
		for _, cell := range current {
			for _, n := range cell.Neighbours() {
				if n.HasRoom() {
					continue
				}
				if d, ok := cell.DirectionTo(n); ok && cell.HasExit(d) {
					p.addRandomRoom(n)
				}
			}
		}
	}
	p.phase = phaseDone
}

func (p *placer) addRandomRoom(cell *core.Cell) {
	if cell.HasRoom() {
		return
	}
	req := Requirements(p.grid, cell)
	candidates := p.catalog.Fillers(req)
	if len(candidates) == 0 {
		p.fail(cell, req)
		return
	}
	room := candidates[p.rng.IntN(len(candidates))]
	if biased := p.pickBiased(candidates); biased != nil {
		room = biased
	}
	p.assign(cell, room)
	if room.Exits.Len() > 1 {
		p.frontier = append(p.frontier, cell)
	}
}

// pickBiased scans candidates in catalog order. Corridors, and dead ends once
// the level has outgrown its minimum, roll against the biased density; the
// first candidate whose roll exceeds it wins.
func (p *placer) pickBiased(candidates []*core.RoomTemplate) *core.RoomTemplate {
	for _, c := range candidates {
		switch {
		case c.Exits.IsCorridor():
		case c.Exits.IsDeadEnd() && p.placed > p.cfg.MinLevelSize:
		default:
			continue
		}
		if p.rng.Percent() <= p.biased {
			continue
		}
		return c
	}
	return nil
}

func (p *placer) assign(cell *core.Cell, room *core.RoomTemplate) {
	cell.Room = room
	cell.Wave = p.wave
	p.placed++
	p.hook.Place(cell.X, cell.Y, *room)
}

func (p *placer) fail(cell *core.Cell, req Requirement) {
	p.failures = append(p.failures, &PlacementError{X: cell.X, Y: cell.Y, Requirement: req})
}
