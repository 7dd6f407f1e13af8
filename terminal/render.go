package terminal

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/blockfall/constants"
	"github.com/lixenwraith/blockfall/engine"
)

// ErrEmptySnapshot is returned when a snapshot carries no grid
var ErrEmptySnapshot = errors.New("snapshot has no cells")

// Layout is the computed placement of the board on the terminal
type Layout struct {
	MarginLeft, MarginTop int
	BoardWidth            int
}

// ComputeLayout centres a grid of gridWidth cells on a terminal cols wide
func ComputeLayout(cols, gridWidth int) Layout {
	width := gridWidth * constants.CellWidth
	return Layout{
		MarginLeft: cols/2 - width/2,
		MarginTop:  constants.BoardMarginTop,
		BoardWidth: width,
	}
}

// Render draws one frame
func (s *Screen) Render(snap engine.Snapshot) error {
	if len(snap.Cells) == 0 || len(snap.Cells[0]) == 0 {
		return ErrEmptySnapshot
	}
	if s.resized.Swap(false) {
		s.screen.Sync()
	}

	cols, _ := s.screen.Size()
	s.screen.Clear()
	Draw(s.screen, ComputeLayout(cols, len(snap.Cells[0])), snap)
	s.screen.Show()
	return nil
}

// Draw paints snap onto screen at layout without showing it
func Draw(screen tcell.Screen, l Layout, snap engine.Snapshot) {
	style := tcell.StyleDefault
	block := strings.Repeat(string(constants.GlyphBlock), constants.CellWidth)
	empty := strings.Repeat(string(constants.GlyphEmpty), constants.CellWidth)

	lastY := 0
	for y, row := range snap.Cells {
		lastY = y
		sy := y + l.MarginTop
		screen.SetContent(l.MarginLeft-1, sy, constants.GlyphWall, nil, style)
		screen.SetContent(l.MarginLeft+l.BoardWidth, sy, constants.GlyphWall, nil, style)
		for x, filled := range row {
			text := empty
			if filled {
				text = block
			}
			drawText(screen, l.MarginLeft+x*constants.CellWidth, sy, style, text)
		}
	}

	floor := string(constants.GlyphCornerLeft) +
		strings.Repeat(string(constants.GlyphFloor), l.BoardWidth) +
		string(constants.GlyphCornerRight)
	drawText(screen, l.MarginLeft-1, lastY+l.MarginTop+1, style, floor)

	drawText(screen, l.MarginLeft-constants.LinesLabelOffset, l.MarginTop, style,
		fmt.Sprintf("%s%d", constants.TextLines, snap.Lines))

	nextX := l.BoardWidth + l.MarginLeft + constants.NextPreviewGap
	drawText(screen, nextX, l.MarginTop, style, constants.TextNext)
	for y := 0; y < constants.NextPreviewRows; y++ {
		for x := 0; x < constants.NextPreviewCols; x++ {
			r := constants.GlyphEmpty
			sy, sx := y, x/constants.CellWidth
			if sy < len(snap.Next) && sx < len(snap.Next[sy]) && snap.Next[sy][sx] {
				r = constants.GlyphBlock
			}
			screen.SetContent(nextX+x, y+l.MarginTop+2, r, nil, style)
		}
	}

	if snap.State == engine.StateGameOver {
		drawText(screen, l.MarginLeft+(l.BoardWidth-len(constants.TextGameOver))/2,
			lastY+l.MarginTop+2, style.Bold(true), constants.TextGameOver)
	}
}

func drawText(screen tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, r := range text {
		screen.SetContent(x, y, r, nil, style)
		x++
	}
}
