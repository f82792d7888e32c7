package components

import (
	"github.com/lixenwraith/gaminal/constants"
	"github.com/lixenwraith/gaminal/render"
)

// Direction is the vertical travel of a bullet
type Direction int

const (
	DirectionUp   Direction = iota // Fired by the player
	DirectionDown                  // Fired by an enemy
)

// String returns the direction name
func (d Direction) String() string {
	switch d {
	case DirectionUp:
		return "up"
	case DirectionDown:
		return "down"
	default:
		return "unknown"
	}
}

// Bullet is a single-cell projectile moving one row per frame
type Bullet struct {
	body
	direction Direction
	alive     bool
}

var _ Entity = (*Bullet)(nil)

// NewBullet creates a live bullet at (x, y)
func NewBullet(x, y int, direction Direction) *Bullet {
	return &Bullet{
		body:      body{x: x, y: y, model: constants.BulletGlyph},
		direction: direction,
		alive:     true,
	}
}

// Direction returns the travel direction
func (b *Bullet) Direction() Direction {
	return b.direction
}

// IsAlive reports whether the bullet is still in flight
func (b *Bullet) IsAlive() bool {
	return b.alive
}

// Destroy stops the bullet; its model becomes a blank so the final render erases it
func (b *Bullet) Destroy() {
	b.alive = false
	b.model = constants.BlankCell
}

// Render draws the bullet and blanks the cell it came from
func (b *Bullet) Render(s render.Surface) {
	s.Draw(b.x, b.y, b.model, constants.BulletStyle)

	trailY := b.y + 1
	if b.direction == DirectionDown {
		trailY = b.y - 1
	}
	s.Draw(b.x, trailY, constants.BlankCell, constants.BulletStyle)
}
