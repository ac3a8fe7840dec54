package ui

import (
	"image/color"
	"math"
)

// fillWaveRGBA shades each placed cell by its wave depth relative to the
// deepest wave. Empty cells (-1) stay transparent.
func fillWaveRGBA(buf []byte, waves []int) {
	deepest := 0
	for _, w := range waves {
		if w > deepest {
			deepest = w
		}
	}
	for i, w := range waves {
		base := i * 4
		if w < 0 {
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 0
			buf[base+3] = 0
			continue
		}
		t := 0.0
		if deepest > 0 {
			t = float64(w) / float64(deepest)
		}
		col := waveColor(t)
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

func waveColor(t float64) color.RGBA {
	t = clamp01(t)
	stops := []struct {
		t   float64
		col color.RGBA
	}{
		{0.0, color.RGBA{R: 60, G: 200, B: 120, A: 150}},
		{0.5, color.RGBA{R: 220, G: 200, B: 70, A: 150}},
		{1.0, color.RGBA{R: 220, G: 70, B: 60, A: 160}},
	}
	for i := 1; i < len(stops); i++ {
		curr := stops[i]
		if t <= curr.t {
			prev := stops[i-1]
			span := curr.t - prev.t
			var local float64
			if span > 0 {
				local = (t - prev.t) / span
			}
			return lerpRGBA(prev.col, curr.col, clamp01(local))
		}
	}
	return stops[len(stops)-1].col
}

func lerpRGBA(a, b color.RGBA, t float64) color.RGBA {
	t = clamp01(t)
	return color.RGBA{
		R: lerpComponent(a.R, b.R, t),
		G: lerpComponent(a.G, b.G, t),
		B: lerpComponent(a.B, b.B, t),
		A: lerpComponent(a.A, b.A, t),
	}
}

func lerpComponent(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
