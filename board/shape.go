package board

import "math/rand"

// Shape is a row-major occupancy matrix
type Shape [][]bool

// ShapeKind identifies one of the catalog templates
type ShapeKind uint8

const (
	KindI ShapeKind = iota
	KindT
	KindZ
	KindS
	KindO
	KindJ
	KindL

	ShapeKindCount
)

var kindNames = [ShapeKindCount]string{"I", "T", "Z", "S", "O", "J", "L"}

// String returns the single-letter name of the kind
func (k ShapeKind) String() string {
	if k >= ShapeKindCount {
		return "?"
	}
	return kindNames[k]
}

// catalog holds the read-only templates, indexed by ShapeKind
var catalog = [ShapeKindCount]Shape{
	KindI: parseShape(
		"0000",
		"1111",
		"0000",
	),
	KindT: parseShape(
		"000",
		"111",
		"010",
	),
	KindZ: parseShape(
		"110",
		"011",
	),
	KindS: parseShape(
		"011",
		"110",
	),
	KindO: parseShape(
		"11",
		"11",
	),
	KindJ: parseShape(
		"111",
		"001",
	),
	KindL: parseShape(
		"111",
		"100",
	),
}

func parseShape(rows ...string) Shape {
	s := make(Shape, len(rows))
	for y, row := range rows {
		s[y] = make([]bool, len(row))
		for x, c := range row {
			s[y][x] = c == '1'
		}
	}
	return s
}

// Template returns an independent copy of the catalog shape for kind
func Template(kind ShapeKind) Shape {
	return catalog[kind].Clone()
}

// Rows returns the matrix height
func (s Shape) Rows() int {
	return len(s)
}

// Cols returns the matrix width
func (s Shape) Cols() int {
	if len(s) == 0 {
		return 0
	}
	return len(s[0])
}

// Clone returns a deep copy; mutating the copy never touches s
func (s Shape) Clone() Shape {
	c := make(Shape, len(s))
	for y := range s {
		c[y] = make([]bool, len(s[y]))
		copy(c[y], s[y])
	}
	return c
}

// Equal reports whether both matrices have the same dimensions and cells
func (s Shape) Equal(o Shape) bool {
	if len(s) != len(o) {
		return false
	}
	for y := range s {
		if len(s[y]) != len(o[y]) {
			return false
		}
		for x := range s[y] {
			if s[y][x] != o[y][x] {
				return false
			}
		}
	}
	return true
}

// Rotate returns a new matrix: transpose, then reverse the row order
func Rotate(s Shape) Shape {
	rows, cols := s.Rows(), s.Cols()
	r := make(Shape, cols)
	for y := 0; y < cols; y++ {
		r[y] = make([]bool, rows)
		src := cols - 1 - y
		for x := 0; x < rows; x++ {
			r[y][x] = s[x][src]
		}
	}
	return r
}

// ShapeSource supplies fresh shapes for the spawn queue
type ShapeSource interface {
	NextShape() Shape
}

// RandomSource draws uniformly from the catalog with replacement
type RandomSource struct {
	rng *rand.Rand
}

// NewRandomSource creates a source seeded with seed
func NewRandomSource(seed int64) *RandomSource {
	return &RandomSource{rng: rand.New(rand.NewSource(seed))}
}

// NextShape returns a deep copy of a uniformly chosen template
func (r *RandomSource) NextShape() Shape {
	return Template(ShapeKind(r.rng.Intn(int(ShapeKindCount))))
}

// SequenceSource replays a fixed list of kinds, wrapping around at the end
type SequenceSource struct {
	kinds []ShapeKind
	pos   int
}

// NewSequenceSource creates a source cycling through kinds
func NewSequenceSource(kinds ...ShapeKind) *SequenceSource {
	if len(kinds) == 0 {
		kinds = []ShapeKind{KindO}
	}
	return &SequenceSource{kinds: kinds}
}

func (s *SequenceSource) NextShape() Shape {
	k := s.kinds[s.pos%len(s.kinds)]
	s.pos++
	return Template(k)
}
