// Package term shows generated levels in a terminal using tcell.
package term

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"roomgrid/internal/core"
	"roomgrid/internal/level"
	"roomgrid/internal/render"
)

// Surface is the subset of tcell.Screen the renderer writes to.
type Surface interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

var kindStyles = map[int]tcell.Style{
	level.KindRoom:      tcell.StyleDefault.Foreground(tcell.ColorSilver),
	level.KindCorridor:  tcell.StyleDefault.Foreground(tcell.ColorGray),
	level.KindDeadEnd:   tcell.StyleDefault.Foreground(tcell.ColorOlive),
	level.KindStart:     tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true),
	level.KindEssential: tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true),
}

// Draw writes the level glyphs at the top-left of s followed by the status lines.
func Draw(s Surface, cells []uint8, w, h int, lines []string) {
	if len(cells) == w*h {
		for i, v := range cells {
			col, row := i%w, i/w
			style, ok := kindStyles[level.Kind(v)]
			if !ok {
				style = tcell.StyleDefault
			}
			glyph := render.Glyph(v)
			for dy, line := range glyph {
				for dx, r := range line {
					s.SetContent(col*3+dx, row*3+dy, r, nil, style)
				}
			}
		}
	}
	y := h*3 + 1
	for _, line := range lines {
		for x, r := range []rune(line) {
			s.SetContent(x, y, r, nil, tcell.StyleDefault)
		}
		y++
	}
}

// Viewer drives a level session from keyboard input.
type Viewer struct {
	screen  tcell.Screen
	session *level.Session
	cycle   *core.Cycle
	auto    bool
	status  string
}

// NewViewer wraps an initialised screen.
func NewViewer(screen tcell.Screen, session *level.Session) *Viewer {
	return &Viewer{screen: screen, session: session, cycle: core.NewCycle(core.DefaultCyclePeriod)}
}

// Run redraws on input and on the auto-cycle timer until q, Escape or ctx ends.
func (v *Viewer) Run(ctx context.Context) error {
	events := make(chan tcell.Event)
	quit := make(chan struct{})
	defer close(quit)
	go v.screen.ChannelEvents(events, quit)

	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	v.draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			if v.auto && v.cycle.Due(now) {
				v.regenerate(v.session.Reseed)
				v.draw()
			}
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventResize:
				v.screen.Sync()
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
					return nil
				}
				if ev.Key() == tcell.KeyRune && v.HandleRune(ev.Rune()) {
					return nil
				}
			}
			v.draw()
		}
	}
}

// HandleRune applies one key command and reports whether the viewer should quit.
func (v *Viewer) HandleRune(r rune) bool {
	switch r {
	case 'q', 'Q':
		return true
	case 'r', 'R':
		v.regenerate(v.session.Regenerate)
	case 's', 'S', ' ':
		v.regenerate(v.session.Reseed)
	case 'a', 'A':
		v.auto = !v.auto
		v.cycle.Reset()
	case '+':
		v.adjust("density", 5)
	case '-':
		v.adjust("density", -5)
	}
	return false
}

// Auto reports whether auto-cycling is enabled.
func (v *Viewer) Auto() bool { return v.auto }

func (v *Viewer) adjust(key string, delta int) {
	p, ok := v.session.Parameters().Lookup(key)
	if !ok {
		return
	}
	var cur int
	if _, err := fmt.Sscan(p.Value, &cur); err != nil {
		return
	}
	if v.session.SetIntParameter(key, cur+delta) {
		v.regenerate(v.session.Regenerate)
	}
}

func (v *Viewer) regenerate(fn func() error) {
	v.status = ""
	if err := fn(); err != nil {
		v.status = err.Error()
	}
}

// StatusLines summarises the session for display under the level.
func (v *Viewer) StatusLines() []string {
	stats := v.session.Stats()
	cfg := v.session.Config()
	lines := []string{
		fmt.Sprintf("seed %s  catalog %s", v.session.Seed(), v.session.Name()),
		fmt.Sprintf("%dx%d  rooms %d..%d  density %d  auto %v", cfg.Width, cfg.Height, cfg.MinLevelSize, cfg.MaxLevelSize, cfg.LevelDensity, v.auto),
		fmt.Sprintf("placed %d  corridors %d  dead ends %d  essentials %d", stats.Placed, stats.Corridors, stats.DeadEnds, stats.Essentials),
		"r replay  s new seed  a auto  +/- density  q quit",
	}
	if v.status != "" {
		lines = append(lines, v.status)
	}
	return lines
}

func (v *Viewer) draw() {
	v.screen.Clear()
	size := v.session.Size()
	Draw(v.screen, v.session.Cells(), size.W, size.H, v.StatusLines())
	v.screen.Show()
}
