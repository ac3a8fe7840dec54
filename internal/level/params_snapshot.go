package level

import (
	"strconv"

	"roomgrid/internal/core"
)

// Parameters summarises the configuration and the latest outcome.
func (s *Session) Parameters() core.ParameterSnapshot {
	attempts := 0
	if s.result != nil {
		attempts = s.result.Attempts
	} else if s.err != nil {
		attempts = MaxAttempts
	}
	status := "ok"
	if s.err != nil {
		status = "failed"
	} else if s.result == nil {
		status = "pending"
	}
	groups := []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				intParam("w", "Width", s.cfg.Width),
				intParam("h", "Height", s.cfg.Height),
				intParam("min", "Min rooms", s.cfg.MinLevelSize),
				intParam("max", "Max rooms", s.cfg.MaxLevelSize),
				intParam("density", "Density", s.cfg.LevelDensity),
				intParam("biased_density", "Biased density", s.cfg.BiasedDensity()),
			},
		},
		{
			Name: "Level",
			Params: []core.Parameter{
				stringParam("catalog", "Catalog", s.catalog),
				stringParam("seed", "Seed", s.seed),
				stringParam("status", "Status", status),
				intParam("attempts", "Attempts", attempts),
				intParam("placed", "Rooms", s.stats.Placed),
				intParam("corridors", "Corridors", s.stats.Corridors),
				intParam("dead_ends", "Dead ends", s.stats.DeadEnds),
				intParam("essentials", "Essentials", s.stats.Essentials),
				intParam("reachable", "Reachable", s.stats.Reachable),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func stringParam(key, label, value string) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeString,
		Value: value,
	}
}
