package components

import (
	"strings"
	"unicode/utf8"

	"github.com/lixenwraith/gaminal/constants"
	"github.com/lixenwraith/gaminal/render"
)

// enemyBlank covers every cell a rendered enemy occupies
var enemyBlank = strings.Repeat(constants.BlankCell, utf8.RuneCountInString(constants.BlankCell+constants.EnemyGlyph))

// Enemy is a swarm member with a single hit point
type Enemy struct {
	body
	line  int
	alive bool
}

var _ Entity = (*Enemy)(nil)

// NewEnemy creates a live enemy at (x, y) belonging to swarm row line
func NewEnemy(x, y, line int) *Enemy {
	return &Enemy{
		body:  body{x: x, y: y, model: constants.EnemyGlyph},
		line:  line,
		alive: true,
	}
}

// Line returns the swarm row the enemy was spawned in
func (e *Enemy) Line() int {
	return e.line
}

// IsAlive reports whether the enemy has not been hit
func (e *Enemy) IsAlive() bool {
	return e.alive
}

// Destroy kills the enemy and clears its model
func (e *Enemy) Destroy() {
	e.alive = false
	e.model = ""
}

// Render draws the enemy once it has descended into the play area.
// Dead enemies blank their cells. Top-row enemies also blank the row they descended from,
// since no row above them repaints it.
func (e *Enemy) Render(s render.Surface) {
	if e.y < constants.ArenaTop {
		return
	}
	if e.alive {
		s.Draw(e.x, e.y, constants.BlankCell+e.model, constants.EnemyStyle)
	} else {
		s.Draw(e.x, e.y, enemyBlank, constants.EnemyStyle)
	}
	if e.line == 0 {
		s.Draw(e.x, e.y-1, enemyBlank, constants.EnemyStyle)
	}
}
