package core

import "github.com/pkg/errors"

// Grid stores a 2D field of cell values in row-major order on a toroidal
// surface. Coordinates wrap on both axes, so every cell has exactly eight
// Moore neighbors. The value domain is fixed at construction: all cells hold
// values in [0, states).
type Grid struct {
	w, h   int
	states uint8
	data   []uint8
}

// NewGrid allocates a grid with the given dimensions, every cell zeroed.
// states is the exclusive upper bound on legal cell values.
func NewGrid(w, h int, states uint8) (*Grid, error) {
	if w <= 0 || h <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimension, "%dx%d", w, h)
	}
	if states == 0 {
		states = 1
	}
	return &Grid{w: w, h: h, states: states, data: make([]uint8, w*h)}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.h }

// Size returns the grid dimensions.
func (g *Grid) Size() Size { return Size{W: g.w, H: g.h} }

// States returns the exclusive upper bound on legal cell values.
func (g *Grid) States() uint8 { return g.states }

// Cells exposes the backing slice so callers can read values directly.
func (g *Grid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.w + x }

// Wrap applies toroidal wrapping to the provided coordinates. Negative
// inputs wrap correctly: Wrap(-1, 0) on a width-W grid yields W-1.
func (g *Grid) Wrap(x, y int) (int, int) {
	x = (x%g.w + g.w) % g.w
	y = (y%g.h + g.h) % g.h
	return x, y
}

// Get returns the cell value at the wrapped coordinates.
func (g *Grid) Get(x, y int) uint8 {
	x, y = g.Wrap(x, y)
	return g.data[y*g.w+x]
}

// Set writes a cell value at the wrapped coordinates. Values at or above
// the grid's state bound are rejected and the grid is left unchanged.
func (g *Grid) Set(x, y int, v uint8) error {
	if v >= g.states {
		return errors.Wrapf(ErrInvalidState, "state %d not in [0,%d]", v, g.states-1)
	}
	x, y = g.Wrap(x, y)
	g.data[y*g.w+x] = v
	return nil
}

// Clear fills the grid with zeros.
func (g *Grid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}
