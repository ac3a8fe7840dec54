package main

import (
	"testing"

	"roomgrid/internal/level"
	"roomgrid/internal/presets/classic"
)

func TestSweepRunsEverySet(t *testing.T) {
	base := level.DefaultConfig()
	base.MinLevelSize = 1
	base.MaxLevelSize = 25
	base.Rooms = classic.Rooms()

	sets := []paramSet{{density: 0, minSize: 1}, {density: 50, minSize: 2}, {density: 100, minSize: 3}}
	results := sweep(base, sets, 4, 2)
	if len(results) != len(sets) {
		t.Fatalf("expected %d results, got %d", len(sets), len(results))
	}
	seen := map[paramSet]bool{}
	for _, res := range results {
		if res.runs != 4 {
			t.Fatalf("%s: expected 4 runs, got %d", res.params, res.runs)
		}
		if res.successes > 0 && res.attempts < res.successes {
			t.Fatalf("%s: attempts %d below successes %d", res.params, res.attempts, res.successes)
		}
		seen[res.params] = true
	}
	if len(seen) != len(sets) {
		t.Fatal("expected each parameter set exactly once")
	}
}

func TestRunScenarioIsDeterministic(t *testing.T) {
	base := level.DefaultConfig()
	base.Rooms = classic.Rooms()
	params := paramSet{density: 40, minSize: 4}
	a := runScenario(base, params, 3)
	b := runScenario(base, params, 3)
	if a != b {
		t.Fatalf("expected identical results, got %+v and %+v", a, b)
	}
}
