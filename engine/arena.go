package engine

import (
	"github.com/lixenwraith/gaminal/components"
	"github.com/lixenwraith/gaminal/constants"
	"github.com/lixenwraith/gaminal/render"
)

// buildArena draws the border once and rebuilds the destructible block row.
// Border walls are never stored, so nothing can damage them.
func (g *Game) buildArena(s render.Surface) {
	g.walls = make([]*components.Wall, 0, g.width)

	blockRow := g.height - constants.BlockRowOffset
	for x := constants.BorderX; x < g.width; x++ {
		components.NewWall(x, 1, constants.BorderHitPoints, constants.WallGlyph).Render(s)
		components.NewWall(x, g.height, constants.BorderHitPoints, constants.WallGlyph).Render(s)
		g.walls = append(g.walls, components.NewWall(x, blockRow, constants.BlockHitPoints, constants.WallGlyph))
	}

	for y := 0; y < g.height; y++ {
		components.NewWall(constants.BorderX, y, constants.BorderHitPoints, constants.SideWallGlyph).Render(s)
		components.NewWall(g.width, y, constants.BorderHitPoints, constants.SideWallGlyph).Render(s)
	}
}
