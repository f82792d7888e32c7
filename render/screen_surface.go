package render

import "github.com/gdamore/tcell/v2"

// ScreenSurface implements Surface on top of a tcell.Screen
type ScreenSurface struct {
	screen tcell.Screen
}

// NewScreenSurface wraps a tcell screen for 1-based cell access
func NewScreenSurface(screen tcell.Screen) *ScreenSurface {
	return &ScreenSurface{screen: screen}
}

// Draw writes glyph rune by rune starting at (x, y).
// Cells outside the screen are dropped by tcell.
func (s *ScreenSurface) Draw(x, y int, glyph string, style tcell.Style) {
	col, row := x-1, y-1
	for _, r := range glyph {
		s.screen.SetContent(col, row, r, nil, style)
		col++
	}
}

// Clear blanks the whole screen; used on lifecycle transitions, never per frame
func (s *ScreenSurface) Clear() {
	s.screen.Clear()
}

// Show flushes pending cells to the terminal
func (s *ScreenSurface) Show() {
	s.screen.Show()
}

// Size returns the screen dimensions in cells
func (s *ScreenSurface) Size() (int, int) {
	return s.screen.Size()
}
