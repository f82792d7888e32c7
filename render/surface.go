package render

import "github.com/gdamore/tcell/v2"

//go:generate mockgen -destination=mock/mock_surface.go -package=rendermock github.com/lixenwraith/gaminal/render Surface

// Surface is the drawing target for entities, the status line and overlays.
// Coordinates are 1-based terminal cells with (1,1) at the top-left corner.
// Nothing is cleared between frames: callers erase their own residue by drawing blanks.
type Surface interface {
	Draw(x, y int, glyph string, style tcell.Style)
}

// DrawLines writes consecutive lines on s starting at (x, y)
func DrawLines(s Surface, x, y int, lines []string, style tcell.Style) {
	for i, line := range lines {
		s.Draw(x, y+i, line, style)
	}
}
