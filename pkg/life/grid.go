// Package life implements Conway's Game of Life on a toroidal grid.
package life

import "fmt"

// Default dimensions of a freshly constructed universe.
const (
	DefaultWidth  = 64
	DefaultHeight = 64
)

// Grid stores one generation of cells in row-major order together with a
// spare buffer the next generation is computed into.
//
// A Grid is not safe for concurrent use.
type Grid struct {
	w, h       int
	cur        []Cell
	nxt        []Cell
	generation int
}

// New returns a grid seeded with the classic pattern.
func New(width, height int) *Grid {
	return NewWithSeed(width, height, ClassicSeed)
}

// NewDefault returns a DefaultWidth x DefaultHeight grid with the classic pattern.
func NewDefault() *Grid {
	return New(DefaultWidth, DefaultHeight)
}

// NewWithSeed returns a grid whose cells are produced by seed from their
// flat index. Both dimensions must be positive.
func NewWithSeed(width, height int, seed Seeder) *Grid {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("life: invalid grid size %dx%d", width, height))
	}
	if seed == nil {
		seed = EmptySeed
	}
	total := width * height
	g := &Grid{w: width, h: height, cur: make([]Cell, total), nxt: make([]Cell, total)}
	for i := range g.cur {
		g.cur[i] = seed(i)
	}
	return g
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.h }

// Generation returns the number of ticks applied since construction.
func (g *Grid) Generation() int { return g.generation }

// IndexOf returns the flat index of (row, column). Arguments are not checked.
func (g *Grid) IndexOf(row, column int) int { return row*g.w + column }

// CellAt returns the cell at (row, column). It panics when the position
// lies outside the grid.
func (g *Grid) CellAt(row, column int) Cell {
	if row < 0 || row >= g.h || column < 0 || column >= g.w {
		panic(fmt.Sprintf("life: cell (%d,%d) out of range for %dx%d grid", row, column, g.w, g.h))
	}
	return g.cur[g.IndexOf(row, column)]
}

// Cells returns a copy of the current generation.
func (g *Grid) Cells() []Cell {
	out := make([]Cell, len(g.cur))
	copy(out, g.cur)
	return out
}

// CopyCells copies the current generation into dst, growing it when it is
// too small, and returns the filled slice.
func (g *Grid) CopyCells(dst []Cell) []Cell {
	if cap(dst) < len(g.cur) {
		dst = make([]Cell, len(g.cur))
	}
	dst = dst[:len(g.cur)]
	copy(dst, g.cur)
	return dst
}

// Population returns the number of live cells.
func (g *Grid) Population() int {
	n := 0
	for _, c := range g.cur {
		if c == Alive {
			n++
		}
	}
	return n
}

// Equal reports whether both grids have the same size and cells.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.w != other.w || g.h != other.h {
		return false
	}
	for i, c := range g.cur {
		if other.cur[i] != c {
			return false
		}
	}
	return true
}
