package board

// Point is a coordinate, shape-local or grid depending on context
type Point struct {
	X, Y int
}

// BottomCells returns, for each column holding an occupied cell, its lowest occupied cell
func BottomCells(s Shape) []Point {
	cells := make([]Point, 0, s.Cols())
	for x := 0; x < s.Cols(); x++ {
		for y := s.Rows() - 1; y >= 0; y-- {
			if s[y][x] {
				cells = append(cells, Point{X: x, Y: y})
				break
			}
		}
	}
	return cells
}

// LeftCells returns, for each row holding an occupied cell, its leftmost occupied cell
func LeftCells(s Shape) []Point {
	cells := make([]Point, 0, s.Rows())
	for y, row := range s {
		for x := 0; x < len(row); x++ {
			if row[x] {
				cells = append(cells, Point{X: x, Y: y})
				break
			}
		}
	}
	return cells
}

// RightCells returns, for each row holding an occupied cell, its rightmost occupied cell
func RightCells(s Shape) []Point {
	cells := make([]Point, 0, s.Rows())
	for y, row := range s {
		for x := len(row) - 1; x >= 0; x-- {
			if row[x] {
				cells = append(cells, Point{X: x, Y: y})
				break
			}
		}
	}
	return cells
}

// CanFall reports whether p can descend one row
func (g *Grid) CanFall(p *Piece) bool {
	for _, c := range BottomCells(p.Shape) {
		gx, gy := p.X+c.X, p.Y+c.Y
		if gy >= g.height-1 || g.Filled(gx, gy+1) {
			return false
		}
	}
	return true
}

// CanMoveLeft reports whether p can shift one column left; any blocked row vetoes
func (g *Grid) CanMoveLeft(p *Piece) bool {
	for _, c := range LeftCells(p.Shape) {
		gx, gy := p.X+c.X, p.Y+c.Y
		if gx <= 0 || g.Filled(gx-1, gy) {
			return false
		}
	}
	return true
}

// CanMoveRight reports whether p can shift one column right
func (g *Grid) CanMoveRight(p *Piece) bool {
	for _, c := range RightCells(p.Shape) {
		gx, gy := p.X+c.X, p.Y+c.Y
		if gx >= g.width-1 || g.Filled(gx+1, gy) {
			return false
		}
	}
	return true
}

// Fits reports whether s anchored at (x, y) stays within the side walls and floor
// and covers no filled cell. Rows above the grid are allowed.
func (g *Grid) Fits(s Shape, x, y int) bool {
	for sy, row := range s {
		gy := y + sy
		for sx, occupied := range row {
			if !occupied {
				continue
			}
			gx := x + sx
			if gx < 0 || gx >= g.width || gy >= g.height {
				return false
			}
			if gy >= 0 && g.cells[gy][gx] {
				return false
			}
		}
	}
	return true
}

// TryMoveLeft shifts p one column left if legal
func (g *Grid) TryMoveLeft(p *Piece) bool {
	if !g.CanMoveLeft(p) {
		return false
	}
	p.Translate(-1, 0)
	return true
}

// TryMoveRight shifts p one column right if legal
func (g *Grid) TryMoveRight(p *Piece) bool {
	if !g.CanMoveRight(p) {
		return false
	}
	p.Translate(1, 0)
	return true
}

// TryFall drops p one row if legal
func (g *Grid) TryFall(p *Piece) bool {
	if !g.CanFall(p) {
		return false
	}
	p.Translate(0, 1)
	return true
}

// TryRotate rotates p, pulling the candidate back inside the side walls.
// The new matrix and column are committed together, or p is left untouched.
func (g *Grid) TryRotate(p *Piece) bool {
	rotated := Rotate(p.Shape)
	x := ClampX(rotated, p.X, g.width)
	if !g.Fits(rotated, x, p.Y) {
		return false
	}
	p.Shape = rotated
	p.X = x
	return true
}

// ClampX returns the anchor column nearest x that keeps every occupied cell of s
// inside columns [0, width)
func ClampX(s Shape, x, width int) int {
	for _, c := range LeftCells(s) {
		for x+c.X < 0 {
			x++
		}
	}
	for _, c := range RightCells(s) {
		for x+c.X > width-1 {
			x--
		}
	}
	return x
}
