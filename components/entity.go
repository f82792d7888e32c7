package components

import "github.com/lixenwraith/gaminal/render"

// Rect is an entity footprint, used for collision tests only
type Rect struct {
	X, Y          int
	Width, Height int
}

// Hits reports whether the top-left corner of r lies inside target.
// The test is a point-in-rect probe, not a rectangle overlap, so it is not symmetric:
// a.Hits(b) and b.Hits(a) may disagree when both have extent.
// The vertical range is inclusive of Y+Height, the horizontal one stops at X+Width-1.
func (r Rect) Hits(target Rect) bool {
	return r.Y >= target.Y &&
		r.Y <= target.Y+target.Height &&
		r.X >= target.X &&
		r.X <= target.X+target.Width-1
}

// Entity is the capability set shared by the player, enemies, bullets and walls
type Entity interface {
	Position() (x, y int)
	Footprint() Rect
	MoveTo(x, y int)
	IsAlive() bool
	Destroy()
	Render(s render.Surface)
	CollidesWith(other Entity) bool
}

// body holds position and model shared by all entity kinds
type body struct {
	x, y  int
	model string
}

// Position returns the entity's cell
func (b *body) Position() (int, int) {
	return b.x, b.y
}

// Footprint is derived from the position and the byte length of the model
func (b *body) Footprint() Rect {
	return Rect{X: b.x, Y: b.y, Width: len(b.model), Height: 1}
}

// MoveTo trusts the caller for bounds
func (b *body) MoveTo(x, y int) {
	b.x = x
	b.y = y
}

// Glyph returns the current model
func (b *body) Glyph() string {
	return b.model
}

// CollidesWith probes other with this entity's footprint as receiver
func (b *body) CollidesWith(other Entity) bool {
	return b.Footprint().Hits(other.Footprint())
}
