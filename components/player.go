package components

import (
	"github.com/lixenwraith/gaminal/constants"
	"github.com/lixenwraith/gaminal/render"
)

// Player is the user-controlled ship. Each hit costs one life and shrinks the model.
type Player struct {
	body
	lives int
}

var _ Entity = (*Player)(nil)

// NewPlayer creates a full-health ship at (x, y)
func NewPlayer(x, y int) *Player {
	return &Player{
		body:  body{x: x, y: y, model: constants.PlayerGlyph},
		lives: constants.PlayerLives,
	}
}

// Lives returns the remaining lives
func (p *Player) Lives() int {
	return p.lives
}

// IsAlive reports whether any life remains
func (p *Player) IsAlive() bool {
	return p.lives > 0
}

// Destroy applies one hit; no-op once all lives are gone
func (p *Player) Destroy() {
	if p.lives == 0 {
		return
	}
	p.lives--
	p.model = constants.PlayerGlyphs[p.lives]
}

// Render draws the ship behind a leading blank that erases the cell left by a rightward move
func (p *Player) Render(s render.Surface) {
	s.Draw(p.x, p.y, constants.BlankCell+p.model, constants.PlayerStyle)
}
