package voronoi

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

var (
	// ErrInvalidDimension is returned when the canvas cannot hold a seed.
	ErrInvalidDimension = errors.New("invalid canvas dimension")

	// ErrUnknownBlockingMode is returned by ParseBlockingMode.
	ErrUnknownBlockingMode = errors.New("unknown blocking mode")
)

// Background is the colour of pixels that belong to no region.
var Background = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

// DefaultCellSize is the canvas length allotted per region when the canvas
// size is left unset.
const DefaultCellSize = 15

// Config describes a diagram. Only Regions is required.
type Config struct {
	// Regions is the number of seeds. Negative values are treated as zero.
	Regions int

	// Width and Height are the canvas size in pixels. When both are zero
	// the canvas is Regions*DefaultCellSize on each axis.
	Width  int
	Height int

	// Seed drives placement and colours. Empty means the current time.
	Seed string

	// Blocking selects how collisions stop growth.
	Blocking BlockingMode

	// Step is the growth per side per tick. Zero or negative means 1.
	Step int
}

// Resolved returns c with unset fields replaced by their defaults. The seed
// is left untouched so an empty seed still means "use the clock".
func (c Config) Resolved() Config {
	if c.Regions < 0 {
		c.Regions = 0
	}
	if c.Width == 0 && c.Height == 0 {
		c.Width = c.Regions * DefaultCellSize
		c.Height = c.Regions * DefaultCellSize
	}
	if c.Step <= 0 {
		c.Step = 1
	}
	return c
}

func (c Config) validate() error {
	if c.Width < 0 || c.Height < 0 {
		return fmt.Errorf("%w: %dx%d is negative", ErrInvalidDimension, c.Width, c.Height)
	}
	if c.Regions > 0 && (c.Width < 2 || c.Height < 2) {
		return fmt.Errorf("%w: %dx%d cannot place %d seeds, need at least 2x2",
			ErrInvalidDimension, c.Width, c.Height, c.Regions)
	}
	return nil
}

// Diagram owns a canvas and the regions growing on it.
type Diagram struct {
	width    int
	height   int
	seed     string
	blocking BlockingMode
	step     int
	regions  []*Region
}

// New builds a diagram and places its seed regions. The regions have not
// grown yet; call Simulate before Rasterize for a finished texture.
func New(cfg Config) (*Diagram, error) {
	cfg = cfg.Resolved()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if cfg.Seed == "" {
		cfg.Seed = defaultSeed()
	}

	d := &Diagram{
		width:    cfg.Width,
		height:   cfg.Height,
		seed:     cfg.Seed,
		blocking: cfg.Blocking,
		step:     cfg.Step,
		regions:  make([]*Region, 0, cfg.Regions),
	}

	rng := newRand(cfg.Seed)
	used := make(map[color.NRGBA]struct{}, cfg.Regions)
	for i := 0; i < cfg.Regions; i++ {
		x := nextInt(rng, 0, d.width-1)
		y := nextInt(rng, 0, d.height-1)
		d.regions = append(d.regions, newRegion(x, y, randomColor(rng, used)))
	}

	Logger().Debug("voronoi: diagram created",
		"regions", len(d.regions),
		"width", d.width,
		"height", d.height,
		"seed", d.seed,
		"blocking", d.blocking.String())

	return d, nil
}

// Width returns the canvas width in pixels.
func (d *Diagram) Width() int { return d.width }

// Height returns the canvas height in pixels.
func (d *Diagram) Height() int { return d.height }

// Seed returns the seed text, including a generated one.
func (d *Diagram) Seed() string { return d.seed }

// Blocking returns the collision policy.
func (d *Diagram) Blocking() BlockingMode { return d.blocking }

// Bounds returns the canvas rectangle.
func (d *Diagram) Bounds() image.Rectangle { return image.Rect(0, 0, d.width, d.height) }

// Len returns the number of regions.
func (d *Diagram) Len() int { return len(d.regions) }

// Region returns a snapshot of region i in insertion order.
func (d *Diagram) Region(i int) Region { return *d.regions[i] }

// Regions returns snapshots of every region in insertion order.
func (d *Diagram) Regions() []Region {
	out := make([]Region, len(d.regions))
	for i, r := range d.regions {
		out[i] = *r
	}
	return out
}

// Growing returns the number of regions that can still expand.
func (d *Diagram) Growing() int {
	n := 0
	for _, r := range d.regions {
		if r.growing {
			n++
		}
	}
	return n
}

// Step advances the simulation by one tick and reports whether any region
// can still grow afterwards.
//
// Regions are visited in insertion order. Each growing region expands by the
// step on its free sides, is checked against every other region in index
// order and finally confined to the canvas.
func (d *Diagram) Step() bool {
	canvas := d.Bounds()
	for i, r := range d.regions {
		if !r.growing {
			continue
		}
		prev := r.grow(d.step)
		for j, other := range d.regions {
			if i == j {
				continue
			}
			r.collide(other.rect, prev, d.blocking)
		}
		r.confine(canvas, d.blocking)
	}
	return d.Growing() > 0
}

// MaxTicks returns the tick ceiling used by Simulate. Every free edge moves
// at least one pixel per tick, so no region can grow for longer than the
// larger canvas side.
func (d *Diagram) MaxTicks() int {
	return max(d.width, d.height) + 2
}

// Simulate runs ticks until no region can grow and returns how many ran.
func (d *Diagram) Simulate() int {
	limit := d.MaxTicks()
	ticks := 0
	for d.Growing() > 0 {
		if ticks >= limit {
			Logger().Warn("voronoi: simulation hit tick ceiling",
				"ticks", ticks,
				"growing", d.Growing(),
				"seed", d.seed)
			break
		}
		d.Step()
		ticks++
	}

	Logger().Debug("voronoi: simulation finished", "ticks", ticks, "seed", d.seed)
	return ticks
}

// RegionAt returns the index of the region that owns pixel (x, y) in the
// rasterized image, or -1 when the pixel is background or off canvas. On
// overlap the region inserted last owns the pixel.
func (d *Diagram) RegionAt(x, y int) int {
	p := image.Pt(x, y)
	if !p.In(d.Bounds()) {
		return -1
	}
	owner := -1
	for i, r := range d.regions {
		if p.In(r.rect) {
			owner = i
		}
	}
	return owner
}

// Rasterize paints the regions onto a fresh width x height image.
//
// Every pixel starts as Background and is overwritten by each region whose
// rectangle contains it, in insertion order, so the last such region wins.
// Calling Rasterize again returns an identical, independent image.
func (d *Diagram) Rasterize() *image.NRGBA {
	img := imaging.New(d.width, d.height, Background)
	for y := 0; y < d.height; y++ {
		for x := 0; x < d.width; x++ {
			p := image.Pt(x, y)
			for _, r := range d.regions {
				if p.In(r.rect) {
					img.SetNRGBA(x, y, r.color)
				}
			}
		}
	}
	return img
}

// Generate builds, simulates and rasterizes a diagram in one call.
func Generate(cfg Config) (*Diagram, *image.NRGBA, error) {
	d, err := New(cfg)
	if err != nil {
		return nil, nil, err
	}
	d.Simulate()
	return d, d.Rasterize(), nil
}
