package render

import (
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Cell is one terminal cell as last drawn
type Cell struct {
	Rune  rune
	Style tcell.Style
}

// CellBuffer is an in-memory Surface with the same 1-based addressing as ScreenSurface.
// Headless runs and tests read frames back through it.
type CellBuffer struct {
	cells  []Cell
	width  int
	height int
	writes int
}

// NewCellBuffer creates a blank buffer of width x height cells
func NewCellBuffer(width, height int) *CellBuffer {
	b := &CellBuffer{
		cells:  make([]Cell, width*height),
		width:  width,
		height: height,
	}
	b.Clear()
	return b
}

// Clear resets all cells to blanks using exponential copy
func (b *CellBuffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = Cell{Rune: ' ', Style: tcell.StyleDefault}
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
}

// inBounds reports whether a 0-based cell lies inside the buffer
func (b *CellBuffer) inBounds(col, row int) bool {
	return col >= 0 && col < b.width && row >= 0 && row < b.height
}

// Draw implements Surface
func (b *CellBuffer) Draw(x, y int, glyph string, style tcell.Style) {
	col, row := x-1, y-1
	for _, r := range glyph {
		if b.inBounds(col, row) {
			b.cells[row*b.width+col] = Cell{Rune: r, Style: style}
		}
		col++
	}
	b.writes++
}

// Get returns the cell at 1-based (x, y); out of range cells read as blank
func (b *CellBuffer) Get(x, y int) Cell {
	col, row := x-1, y-1
	if !b.inBounds(col, row) {
		return Cell{Rune: ' ', Style: tcell.StyleDefault}
	}
	return b.cells[row*b.width+col]
}

// Row returns the text of 1-based row y with trailing blanks trimmed
func (b *CellBuffer) Row(y int) string {
	row := y - 1
	if row < 0 || row >= b.height {
		return ""
	}
	var sb strings.Builder
	for _, c := range b.cells[row*b.width : (row+1)*b.width] {
		sb.WriteRune(c.Rune)
	}
	return strings.TrimRight(sb.String(), " ")
}

// Writes returns the number of Draw calls since creation
func (b *CellBuffer) Writes() int {
	return b.writes
}
