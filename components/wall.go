package components

import (
	"github.com/lixenwraith/gaminal/constants"
	"github.com/lixenwraith/gaminal/render"
)

// Wall is a static barrier segment with a hit point counter
type Wall struct {
	body
	hitPoints int
}

var _ Entity = (*Wall)(nil)

// NewWall creates a wall segment at (x, y)
func NewWall(x, y, hitPoints int, glyph string) *Wall {
	return &Wall{
		body:      body{x: x, y: y, model: glyph},
		hitPoints: hitPoints,
	}
}

// HitPoints returns the remaining hit points
func (w *Wall) HitPoints() int {
	return w.hitPoints
}

// MoveTo is a no-op: walls never move
func (w *Wall) MoveTo(int, int) {}

// IsAlive reports whether any hit point remains
func (w *Wall) IsAlive() bool {
	return w.hitPoints > 0
}

// Destroy applies one hit; the model is cleared when the last hit point goes
func (w *Wall) Destroy() {
	if w.hitPoints == 0 {
		return
	}
	w.hitPoints--
	if w.hitPoints == 0 {
		w.model = constants.BlankCell
	}
}

// Render draws the current model
func (w *Wall) Render(s render.Surface) {
	s.Draw(w.x, w.y, w.model, constants.WallStyle)
}
