package ui

import (
	"image"

	"roomgrid/internal/core"
)

type hudControlState struct {
	control core.ParameterControl
	value   string

	intValue int
	hasValue bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

// stepTarget applies one +/- click to value and clamps to the control range.
// ok is false when the click would not change anything.
func stepTarget(ctrl core.ParameterControl, value, direction int) (int, bool) {
	step := ctrl.Step
	if step <= 0 {
		step = 1
	}
	target := value + direction*step
	if target < ctrl.Min {
		target = ctrl.Min
	}
	if ctrl.Max >= ctrl.Min && target > ctrl.Max {
		target = ctrl.Max
	}
	return target, target != value
}

// infoLines formats every parameter that has no control as "Label: value".
func infoLines(snapshot core.ParameterSnapshot, controls []hudControlState) []string {
	skip := make(map[string]bool, len(controls))
	for _, c := range controls {
		skip[c.control.Key] = true
	}
	var lines []string
	for _, group := range snapshot.Groups {
		for _, p := range group.Params {
			if skip[p.Key] {
				continue
			}
			lines = append(lines, p.Label+": "+p.Value)
		}
	}
	return lines
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}
