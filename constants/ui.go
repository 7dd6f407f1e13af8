package constants

// Board Layout
const (
	// CellWidth is the number of terminal columns used per board cell
	CellWidth = 2

	// BoardMarginTop is the number of rows above the board
	BoardMarginTop = 3

	// LinesLabelOffset is how far left of the board the line counter starts
	LinesLabelOffset = 13

	// NextPreviewGap is the gap between the right wall and the NEXT preview
	NextPreviewGap = 5

	// NextPreviewRows and NextPreviewCols bound the NEXT preview area in terminal cells
	NextPreviewRows = 4
	NextPreviewCols = 8
)

// Glyphs
const (
	GlyphWall        = '┃'
	GlyphFloor       = '━'
	GlyphCornerLeft  = '┗'
	GlyphCornerRight = '┛'
	GlyphBlock       = '█'
	GlyphEmpty       = ' '
)

// HUD text
const (
	TextLines    = " LINES "
	TextNext     = "NEXT"
	TextGameOver = "GAME OVER"
)
