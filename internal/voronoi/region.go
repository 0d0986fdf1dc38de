package voronoi

import (
	"fmt"
	"image"
	"image/color"
	"strings"
)

// BlockingMode selects how a collision stops a region's growth.
type BlockingMode int

const (
	// BlockPerEdge stops only the edge that made contact.
	BlockPerEdge BlockingMode = iota

	// BlockSingleFlag stops the whole region on its first contact.
	BlockSingleFlag
)

// String returns the mode name accepted by ParseBlockingMode.
func (m BlockingMode) String() string {
	switch m {
	case BlockPerEdge:
		return "per-edge"
	case BlockSingleFlag:
		return "single-flag"
	default:
		return fmt.Sprintf("BlockingMode(%d)", int(m))
	}
}

// ParseBlockingMode parses "per-edge" or "single-flag". The empty string
// selects BlockPerEdge.
func ParseBlockingMode(s string) (BlockingMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "per-edge", "edge":
		return BlockPerEdge, nil
	case "single-flag", "single":
		return BlockSingleFlag, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownBlockingMode, s)
	}
}

type edge int

const (
	edgeLeft edge = iota
	edgeTop
	edgeRight
	edgeBottom
)

var allBlocked = [4]bool{true, true, true, true}

// Region is one growable rectangular cell with a fixed colour.
type Region struct {
	rect    image.Rectangle
	color   color.NRGBA
	growing bool
	blocked [4]bool
}

func newRegion(x, y int, c color.NRGBA) *Region {
	return &Region{
		rect:    image.Rect(x, y, x+1, y+1),
		color:   c,
		growing: true,
	}
}

// Bounds returns the region's current rectangle.
func (r Region) Bounds() image.Rectangle { return r.rect }

// Color returns the region's fill colour.
func (r Region) Color() color.NRGBA { return r.color }

// Growing reports whether the region can still expand.
func (r Region) Growing() bool { return r.growing }

// Area returns the rectangle's area in pixels.
func (r Region) Area() int { return r.rect.Dx() * r.rect.Dy() }

// grow moves every free edge outward by step and returns the rectangle as
// it was before the move.
func (r *Region) grow(step int) image.Rectangle {
	prev := r.rect
	if !r.blocked[edgeLeft] {
		r.rect.Min.X -= step
	}
	if !r.blocked[edgeTop] {
		r.rect.Min.Y -= step
	}
	if !r.blocked[edgeRight] {
		r.rect.Max.X += step
	}
	if !r.blocked[edgeBottom] {
		r.rect.Max.Y += step
	}
	return prev
}

func (r *Region) block(e edge, mode BlockingMode) {
	r.blocked[e] = true
	if mode == BlockSingleFlag || r.blocked == allBlocked {
		r.growing = false
	}
}

// collide resolves an overlap with other produced by the growth from prev.
//
// The edge that caused the overlap is the one facing other on an axis where
// prev was still separated from it; that edge is pulled back to the contact
// line. When prev was separated on both axes the corners met, and the axis
// with the larger gap is clamped (horizontal on ties). An overlap that prev
// already had, as with two seeds on the same pixel, is left alone; the
// rasterizer settles those pixels.
func (r *Region) collide(other, prev image.Rectangle, mode BlockingMode) {
	if !r.rect.Overlaps(other) {
		return
	}

	gapX, edgeX := -1, edgeLeft
	switch {
	case prev.Max.X <= other.Min.X:
		gapX, edgeX = other.Min.X-prev.Max.X, edgeRight
	case prev.Min.X >= other.Max.X:
		gapX, edgeX = prev.Min.X-other.Max.X, edgeLeft
	}

	gapY, edgeY := -1, edgeTop
	switch {
	case prev.Max.Y <= other.Min.Y:
		gapY, edgeY = other.Min.Y-prev.Max.Y, edgeBottom
	case prev.Min.Y >= other.Max.Y:
		gapY, edgeY = prev.Min.Y-other.Max.Y, edgeTop
	}

	switch {
	case gapX < 0 && gapY < 0:
		return
	case gapX >= gapY:
		r.clamp(edgeX, other, mode)
	default:
		r.clamp(edgeY, other, mode)
	}
}

// clamp pulls edge e back to the facing side of other and blocks it.
func (r *Region) clamp(e edge, other image.Rectangle, mode BlockingMode) {
	switch e {
	case edgeLeft:
		r.rect.Min.X = other.Max.X
	case edgeTop:
		r.rect.Min.Y = other.Max.Y
	case edgeRight:
		r.rect.Max.X = other.Min.X
	case edgeBottom:
		r.rect.Max.Y = other.Min.Y
	}
	r.block(e, mode)
}

// confine clamps every edge that crossed the canvas bounds.
func (r *Region) confine(canvas image.Rectangle, mode BlockingMode) {
	if r.rect.Min.X < canvas.Min.X {
		r.rect.Min.X = canvas.Min.X
		r.block(edgeLeft, mode)
	}
	if r.rect.Min.Y < canvas.Min.Y {
		r.rect.Min.Y = canvas.Min.Y
		r.block(edgeTop, mode)
	}
	if r.rect.Max.X > canvas.Max.X {
		r.rect.Max.X = canvas.Max.X
		r.block(edgeRight, mode)
	}
	if r.rect.Max.Y > canvas.Max.Y {
		r.rect.Max.Y = canvas.Max.Y
		r.block(edgeBottom, mode)
	}
}
