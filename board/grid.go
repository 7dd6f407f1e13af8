package board

import (
	"errors"
	"fmt"
)

// ErrInvalidDimensions is returned when a grid would have no cells
var ErrInvalidDimensions = errors.New("invalid grid dimensions")

// Grid is the fixed-size playfield, indexed [y][x]
type Grid struct {
	width, height int
	cells         [][]bool
}

// NewGrid creates an empty grid of the given size
func NewGrid(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	g := &Grid{width: width, height: height}
	g.cells = make([][]bool, height)
	for y := range g.cells {
		g.cells[y] = make([]bool, width)
	}
	return g, nil
}

// Width returns the number of columns
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows
func (g *Grid) Height() int { return g.height }

// InBounds reports whether (x, y) is a grid cell
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Filled reports whether (x, y) is occupied; out-of-bounds reads are empty
func (g *Grid) Filled(x, y int) bool {
	if !g.InBounds(x, y) {
		return false
	}
	return g.cells[y][x]
}

// Set marks (x, y) filled or empty; out-of-bounds writes are ignored
func (g *Grid) Set(x, y int, filled bool) {
	if !g.InBounds(x, y) {
		return
	}
	g.cells[y][x] = filled
}

// Reset empties every cell without reallocating
func (g *Grid) Reset() {
	for y := range g.cells {
		clear(g.cells[y])
	}
}

// Merge marks every occupied cell of p filled.
// The caller guarantees the placement is collision-free; cells above row 0 are dropped.
func (g *Grid) Merge(p *Piece) {
	stamp(g.cells, p)
}

// ClearFullRows removes every full row, inserts as many empty rows at the top,
// and returns the number removed. Remaining rows keep their relative order.
func (g *Grid) ClearFullRows() int {
	kept := make([][]bool, 0, g.height)
	var full [][]bool
	for _, row := range g.cells {
		if rowFull(row) {
			full = append(full, row)
			continue
		}
		kept = append(kept, row)
	}
	if len(full) == 0 {
		return 0
	}

	// Removed rows are wiped and reused as the new top rows
	for _, row := range full {
		clear(row)
	}
	g.cells = append(full, kept...)
	return len(full)
}

// FilledCount returns the number of occupied cells
func (g *Grid) FilledCount() int {
	n := 0
	for _, row := range g.cells {
		for _, c := range row {
			if c {
				n++
			}
		}
	}
	return n
}

// Cells returns a deep copy of the cell matrix
func (g *Grid) Cells() [][]bool {
	out := make([][]bool, g.height)
	for y, row := range g.cells {
		out[y] = make([]bool, g.width)
		copy(out[y], row)
	}
	return out
}

// Composite returns a copy of the cells with p overlaid; the grid is untouched
func (g *Grid) Composite(p *Piece) [][]bool {
	out := g.Cells()
	if p != nil {
		stamp(out, p)
	}
	return out
}

func stamp(cells [][]bool, p *Piece) {
	for y, row := range p.Shape {
		gy := p.Y + y
		if gy < 0 || gy >= len(cells) {
			continue
		}
		for x, occupied := range row {
			gx := p.X + x
			if occupied && gx >= 0 && gx < len(cells[gy]) {
				cells[gy][gx] = true
			}
		}
	}
}

func rowFull(row []bool) bool {
	for _, c := range row {
		if !c {
			return false
		}
	}
	return true
}
