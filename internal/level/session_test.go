package level

import (
	"errors"
	"slices"
	"testing"

	pcore "roomgrid/pkg/core"
)

func newTestSession(t *testing.T) *Session {
	t.Helper()
	s, err := NewSession(openConfig(5, 5, fullCatalog()), "test")
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	return s
}

func TestSessionGenerateAndRegenerate(t *testing.T) {
	s := newTestSession(t)
	if err := s.Generate(testSeed); err != nil {
		t.Fatalf("generate: %v", err)
	}
	if s.Seed() != testSeed {
		t.Fatalf("expected seed %s, got %s", testSeed, s.Seed())
	}
	if len(s.Cells()) != 25 || len(s.Waves()) != 25 {
		t.Fatalf("expected 25 display cells, got %d", len(s.Cells()))
	}
	first := slices.Clone(s.Cells())

	if err := s.Reseed(); err != nil {
		t.Fatalf("reseed: %v", err)
	}
	if s.Seed() == testSeed {
		t.Fatal("expected reseed to change the seed")
	}
	if err := s.SetSeed(testSeed); err != nil {
		t.Fatalf("set seed: %v", err)
	}
	if err := s.Regenerate(); err != nil {
		t.Fatalf("regenerate: %v", err)
	}
	if !slices.Equal(first, s.Cells()) {
		t.Fatal("expected the same seed to reproduce the display")
	}

	params := s.Parameters()
	if p, ok := params.Lookup("seed"); !ok || p.Value != testSeed {
		t.Fatalf("expected seed parameter, got %+v", p)
	}
	if p, _ := params.Lookup("status"); p.Value != "ok" {
		t.Fatalf("expected ok status, got %q", p.Value)
	}
}

func TestSessionSetSeedRejectsMalformedText(t *testing.T) {
	s := newTestSession(t)
	if err := s.SetSeed("1-2-3"); !errors.Is(err, pcore.ErrInvalidSeed) {
		t.Fatalf("expected ErrInvalidSeed, got %v", err)
	}
	if s.Result() != nil {
		t.Fatal("expected no level after a rejected seed")
	}
}

func TestSessionSetIntParameterClampsBounds(t *testing.T) {
	s := newTestSession(t)
	if !s.SetIntParameter("w", 7) {
		t.Fatal("expected width change")
	}
	if got := s.Size(); got.W != 7 || got.H != 5 {
		t.Fatalf("unexpected size %+v", got)
	}
	if len(s.Cells()) != 35 {
		t.Fatalf("expected display to follow the new size, got %d", len(s.Cells()))
	}
	if !s.SetIntParameter("min", 100) {
		t.Fatal("expected min change")
	}
	cfg := s.Config()
	if cfg.MinLevelSize != 35 || cfg.MaxLevelSize != 35 {
		t.Fatalf("expected bounds clamped to 35, got %d..%d", cfg.MinLevelSize, cfg.MaxLevelSize)
	}
	if !s.SetIntParameter("w", 2) {
		t.Fatal("expected width change")
	}
	cfg = s.Config()
	if cfg.MinLevelSize != 10 || cfg.MaxLevelSize != 10 {
		t.Fatalf("expected bounds pulled into 2x5 grid, got %d..%d", cfg.MinLevelSize, cfg.MaxLevelSize)
	}
	if !s.SetIntParameter("density", 250) || s.Config().LevelDensity != 100 {
		t.Fatalf("expected density clamp, got %d", s.Config().LevelDensity)
	}
	if s.SetIntParameter("density", 100) {
		t.Fatal("expected unchanged value to report false")
	}
	if s.SetIntParameter("unknown", 1) {
		t.Fatal("expected unknown key to be rejected")
	}
}

func TestSessionKeepsSeedOnFailure(t *testing.T) {
	cfg := openConfig(3, 3, fullCatalog())
	cfg.MinLevelSize = 10
	cfg.MaxLevelSize = 10
	s, err := NewSession(cfg, "test")
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	if err := s.Generate(testSeed); !errors.Is(err, ErrAttemptCapExceeded) {
		t.Fatalf("expected attempt cap, got %v", err)
	}
	if s.Seed() != testSeed {
		t.Fatalf("expected failed seed to be kept, got %q", s.Seed())
	}
	for _, v := range s.Cells() {
		if v != 0 {
			t.Fatal("expected cleared display after failure")
		}
	}
	if p, _ := s.Parameters().Lookup("attempts"); p.Value != "200" {
		t.Fatalf("expected 200 attempts, got %s", p.Value)
	}
}
