package board

// Piece is the controlled shape: a working matrix and its anchor
type Piece struct {
	Shape Shape
	X, Y  int
}

// NewPiece places a copy of s at (x, y)
func NewPiece(s Shape, x, y int) *Piece {
	return &Piece{Shape: s.Clone(), X: x, Y: y}
}

// Clone returns an independent copy of the piece
func (p *Piece) Clone() *Piece {
	return &Piece{Shape: p.Shape.Clone(), X: p.X, Y: p.Y}
}

// MoveTo sets the anchor
func (p *Piece) MoveTo(x, y int) {
	p.X, p.Y = x, y
}

// Translate shifts the anchor by (dx, dy)
func (p *Piece) Translate(dx, dy int) {
	p.X += dx
	p.Y += dy
}

// Cells returns the grid coordinates of every occupied cell
func (p *Piece) Cells() []Point {
	cells := make([]Point, 0, 4)
	for y, row := range p.Shape {
		for x, occupied := range row {
			if occupied {
				cells = append(cells, Point{X: p.X + x, Y: p.Y + y})
			}
		}
	}
	return cells
}
