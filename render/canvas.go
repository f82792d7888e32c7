package render

// Canvas is a Surface that can be wiped on lifecycle transitions (start, restart, quit)
type Canvas interface {
	Surface
	Clear()
}

var (
	_ Canvas = (*ScreenSurface)(nil)
	_ Canvas = (*CellBuffer)(nil)
)
