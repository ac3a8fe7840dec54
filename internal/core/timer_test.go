package core

import (
	"testing"
	"time"
)

func TestCycleFiresOncePerPeriod(t *testing.T) {
	c := NewCycle(time.Second)
	start := time.Unix(1000, 0)
	if c.Due(start) {
		t.Fatal("expected no firing on the first observation")
	}
	if c.Due(start.Add(500 * time.Millisecond)) {
		t.Fatal("expected no firing before a full period")
	}
	if !c.Due(start.Add(1100 * time.Millisecond)) {
		t.Fatal("expected firing after a full period")
	}
	if c.Due(start.Add(1200 * time.Millisecond)) {
		t.Fatal("expected the remainder to carry over without firing")
	}
	// A long stall fires once rather than catching up.
	if !c.Due(start.Add(10 * time.Second)) {
		t.Fatal("expected firing after a stall")
	}
	if c.Due(start.Add(10*time.Second + time.Millisecond)) {
		t.Fatal("expected no burst after a stall")
	}
}

func TestCycleResetAndDefaults(t *testing.T) {
	c := NewCycle(0)
	if c.Period() != DefaultCyclePeriod {
		t.Fatalf("expected default period, got %v", c.Period())
	}
	start := time.Unix(0, 0)
	c.Due(start)
	c.Due(start.Add(DefaultCyclePeriod - time.Millisecond))
	c.Reset()
	if c.Due(start.Add(DefaultCyclePeriod)) {
		t.Fatal("expected reset to discard accumulated time")
	}
}
