//go:build ebiten

package ui

import (
	"image/color"
	"math"

	"roomgrid/internal/core"
	"roomgrid/internal/level"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type waveProvider interface {
	Waves() []int
}

// Overlay draws optional debugging visuals on top of the level.
type Overlay struct {
	view      core.View
	cellPx    int
	showWaves bool
	showLinks bool
	showMarks bool

	waveImg *ebiten.Image
	waveBuf []byte
	pixel   *ebiten.Image
}

// NewOverlay constructs an overlay for view where each cell spans cellPx pixels.
func NewOverlay(view core.View, cellPx int) *Overlay {
	if cellPx <= 0 {
		cellPx = 1
	}
	o := &Overlay{view: view, cellPx: cellPx}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles layers: 1 wave depth, 2 open connections, 3 essential neighbours.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showWaves = !o.showWaves
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showLinks = !o.showLinks
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit3) {
		o.showMarks = !o.showMarks
	}
}

// Draw renders the enabled layers onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	size := o.view.Size()
	cells := o.view.Cells()
	if size.W <= 0 || size.H <= 0 || len(cells) != size.W*size.H {
		return
	}
	if o.showWaves {
		if provider, ok := o.view.(waveProvider); ok {
			o.drawWaves(screen, provider.Waves(), size)
		}
	}
	if o.showLinks {
		o.drawLinks(screen, cells, size)
	}
	if o.showMarks {
		o.drawMarks(screen, cells, size)
	}
}

func (o *Overlay) drawWaves(screen *ebiten.Image, waves []int, size core.Size) {
	total := size.W * size.H
	if len(waves) != total {
		return
	}
	if o.waveImg == nil || o.waveImg.Bounds().Dx() != size.W || o.waveImg.Bounds().Dy() != size.H {
		o.waveImg = ebiten.NewImage(size.W, size.H)
		o.waveBuf = make([]byte, 4*total)
	}
	fillWaveRGBA(o.waveBuf, waves)
	o.waveImg.WritePixels(o.waveBuf)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(o.cellPx), float64(o.cellPx))
	screen.DrawImage(o.waveImg, op)
}

// drawLinks connects the centers of rooms whose shared edge is open on both sides.
func (o *Overlay) drawLinks(screen *ebiten.Image, cells []uint8, size core.Size) {
	col := color.RGBA{R: 240, G: 240, B: 250, A: 200}
	half := float64(o.cellPx) / 2
	thickness := math.Max(1, float64(o.cellPx)/8)
	for i, v := range cells {
		x, row := i%size.W, i/size.W
		exits := level.DecodeExits(v)
		cx := float64(x*o.cellPx) + half
		cy := float64(row*o.cellPx) + half
		// Right and Bottom only, so each edge is drawn once.
		if x+1 < size.W && exits.Has(core.Right) && level.DecodeExits(cells[i+1]).Has(core.Left) {
			o.drawLine(screen, cx, cy, cx+float64(o.cellPx), cy, thickness, col)
		}
		if row+1 < size.H && exits.Has(core.Bottom) && level.DecodeExits(cells[i+size.W]).Has(core.Top) {
			o.drawLine(screen, cx, cy, cx, cy+float64(o.cellPx), thickness, col)
		}
	}
}

func (o *Overlay) drawMarks(screen *ebiten.Image, cells []uint8, size core.Size) {
	col := color.RGBA{R: 255, G: 210, B: 60, A: 230}
	dot := math.Max(2, float64(o.cellPx)/4)
	for i, v := range cells {
		if v&level.FlagConnected == 0 {
			continue
		}
		x, row := i%size.W, i/size.W
		cx := float64(x*o.cellPx) + float64(o.cellPx)/2
		cy := float64(row*o.cellPx) + float64(o.cellPx)/2
		o.drawPoint(screen, cx, cy, dot, col)
	}
}

func (o *Overlay) drawPoint(screen *ebiten.Image, x, y, size float64, col color.RGBA) {
	if o.pixel == nil || size <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(size, size)
	op.GeoM.Translate(x-size*0.5, y-size*0.5)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}

func (o *Overlay) drawLine(screen *ebiten.Image, x1, y1, x2, y2, thickness float64, col color.RGBA) {
	if o.pixel == nil || thickness <= 0 {
		return
	}
	dx := x2 - x1
	dy := y2 - y1
	length := math.Hypot(dx, dy)
	if length <= 1e-4 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(length, thickness)
	op.GeoM.Translate(0, -thickness/2)
	op.GeoM.Rotate(math.Atan2(dy, dx))
	op.GeoM.Translate(x1, y1)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}
