// Package preview animates a diagram's growth in a terminal.
//
// Each terminal cell shows two vertically stacked pixels using the upper
// half block: the foreground paints the top pixel and the background the
// bottom one. The last row is a status line.
package preview

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/ironsheep/voronoi-mcp/internal/voronoi"
)

const halfBlock = '▀'

// DefaultDelay is the pause between animation frames.
const DefaultDelay = 40 * time.Millisecond

// Options configures a preview.
type Options struct {
	Regions  int
	Seed     string // empty picks a clock seed once at start
	Blocking voronoi.BlockingMode
	Step     int
	Delay    time.Duration
}

// Preview owns a screen and the diagram drawn on it.
type Preview struct {
	screen  tcell.Screen
	opts    Options
	base    string // seed the reseed counter is appended to
	reseeds int
	seed    string

	diagram *voronoi.Diagram
	ticks   int
	err     error // why there is no diagram
}

// New creates a preview on an initialized screen and builds the first
// diagram sized to it.
func New(screen tcell.Screen, opts Options) *Preview {
	if opts.Delay <= 0 {
		opts.Delay = DefaultDelay
	}
	p := &Preview{screen: screen, opts: opts, base: opts.Seed, seed: opts.Seed}
	p.reset()
	return p
}

// Diagram returns the diagram being animated, or nil when the terminal is
// too small to hold one.
func (p *Preview) Diagram() *voronoi.Diagram { return p.diagram }

// Ticks returns the number of ticks run since the last reset.
func (p *Preview) Ticks() int { return p.ticks }

// canvasSize maps the terminal to pixels, leaving the status row free.
func (p *Preview) canvasSize() (int, int) {
	w, h := p.screen.Size()
	if h < 1 {
		return w, 0
	}
	return w, (h - 1) * 2
}

// reset rebuilds the diagram for the current screen size, mode and seed.
func (p *Preview) reset() {
	w, h := p.canvasSize()
	d, err := voronoi.New(voronoi.Config{
		Regions:  p.opts.Regions,
		Width:    w,
		Height:   h,
		Seed:     p.seed,
		Blocking: p.opts.Blocking,
		Step:     p.opts.Step,
	})
	p.diagram, p.err, p.ticks = d, err, 0
	if err != nil {
		voronoi.Logger().Debug("preview: no diagram", "width", w, "height", h, "error", err)
		return
	}
	if p.seed == "" {
		p.seed = d.Seed()
		p.base = p.seed
	}
}

// Tick advances the animation by one step and reports whether any region
// is still growing.
func (p *Preview) Tick() bool {
	if p.diagram == nil || p.diagram.Growing() == 0 {
		return false
	}
	p.diagram.Step()
	p.ticks++
	return p.diagram.Growing() > 0
}

// Finish runs the simulation to the end.
func (p *Preview) Finish() {
	if p.diagram != nil {
		p.ticks += p.diagram.Simulate()
	}
}

// Reseed switches to the next derived seed and restarts.
func (p *Preview) Reseed() {
	p.reseeds++
	p.seed = fmt.Sprintf("%s#%d", p.base, p.reseeds)
	p.reset()
}

// ToggleBlocking switches the blocking mode and restarts with the same seed.
func (p *Preview) ToggleBlocking() {
	if p.opts.Blocking == voronoi.BlockPerEdge {
		p.opts.Blocking = voronoi.BlockSingleFlag
	} else {
		p.opts.Blocking = voronoi.BlockPerEdge
	}
	p.reset()
}

// HandleEvent applies a key or resize event and reports whether the
// preview should quit.
func (p *Preview) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		p.screen.Sync()
		p.reset()
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q', 'Q':
				return true
			case 'r', 'R':
				p.Reseed()
			case 'm', 'M':
				p.ToggleBlocking()
			case ' ':
				p.Finish()
			}
		}
	}
	return false
}

// Draw renders the diagram and status line and shows the frame.
func (p *Preview) Draw() {
	p.screen.Clear()
	w, h := p.screen.Size()

	if p.diagram == nil {
		msg := "terminal too small"
		if p.err != nil && !errors.Is(p.err, voronoi.ErrInvalidDimension) {
			msg = p.err.Error()
		}
		p.drawText(0, 0, msg, tcell.StyleDefault)
		p.screen.Show()
		return
	}

	img := p.diagram.Rasterize()
	for cy := 0; cy < h-1; cy++ {
		for cx := 0; cx < w; cx++ {
			style := tcell.StyleDefault.
				Foreground(cellColor(img, cx, cy*2)).
				Background(cellColor(img, cx, cy*2+1))
			p.screen.SetContent(cx, cy, halfBlock, nil, style)
		}
	}

	status := fmt.Sprintf(" seed %s | %s | tick %d | growing %d | q quit  r reseed  m mode  space finish",
		p.seed, p.diagram.Blocking(), p.ticks, p.diagram.Growing())
	p.drawText(0, h-1, status, tcell.StyleDefault.Reverse(true))
	p.screen.Show()
}

func (p *Preview) drawText(x, y int, s string, style tcell.Style) {
	w, _ := p.screen.Size()
	for _, r := range s {
		if x >= w {
			return
		}
		p.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

func cellColor(img *image.NRGBA, x, y int) tcell.Color {
	if !image.Pt(x, y).In(img.Bounds()) {
		return tcellColor(voronoi.Background)
	}
	return tcellColor(img.NRGBAAt(x, y))
}

func tcellColor(c color.NRGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Run animates until the user quits or ctx is done. Growth advances one tick
// per frame and holds once every region has stopped.
func (p *Preview) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	defer close(quit)
	go p.screen.ChannelEvents(events, quit)

	ticker := time.NewTicker(p.opts.Delay)
	defer ticker.Stop()

	p.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if p.HandleEvent(ev) {
				return nil
			}
			p.Draw()
		case <-ticker.C:
			if p.diagram != nil && p.diagram.Growing() > 0 {
				p.Tick()
				p.Draw()
			}
		}
	}
}
