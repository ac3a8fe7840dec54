package ui

import (
	"slices"
	"testing"

	"roomgrid/internal/core"
)

func TestStepTargetClampsToRange(t *testing.T) {
	ctrl := core.ParameterControl{Key: "density", Step: 5, Min: 0, Max: 100}
	cases := []struct {
		value, direction int
		want             int
		ok               bool
	}{
		{50, 1, 55, true},
		{98, 1, 100, true},
		{100, 1, 100, false},
		{3, -1, 0, true},
		{0, -1, 0, false},
	}
	for _, tc := range cases {
		got, ok := stepTarget(ctrl, tc.value, tc.direction)
		if got != tc.want || ok != tc.ok {
			t.Fatalf("stepTarget(%d, %d) = %d, %v; want %d, %v", tc.value, tc.direction, got, ok, tc.want, tc.ok)
		}
	}
}

func TestInfoLinesSkipControlledKeys(t *testing.T) {
	snapshot := core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{Name: "Grid", Params: []core.Parameter{{Key: "w", Label: "Width", Value: "5"}}},
		{Name: "Level", Params: []core.Parameter{{Key: "seed", Label: "Seed", Value: "000001-000002-000003-000004"}}},
	}}
	controls := []hudControlState{{control: core.ParameterControl{Key: "w"}}}
	got := infoLines(snapshot, controls)
	want := []string{"Seed: 000001-000002-000003-000004"}
	if !slices.Equal(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestFillWaveRGBAShadesByDepth(t *testing.T) {
	waves := []int{0, 2, -1}
	buf := make([]byte, 4*len(waves))
	fillWaveRGBA(buf, waves)
	if buf[11] != 0 {
		t.Fatal("expected empty cell to stay transparent")
	}
	near := waveColor(0)
	far := waveColor(1)
	if buf[0] != near.R || buf[4] != far.R {
		t.Fatalf("unexpected shading %v", buf)
	}
}
