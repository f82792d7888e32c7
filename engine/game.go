package engine

import (
	"fmt"
	"log"
	"slices"
	"time"
	"unsafe"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/lixenwraith/gaminal/components"
	"github.com/lixenwraith/gaminal/constants"
	"github.com/lixenwraith/gaminal/input"
	"github.com/lixenwraith/gaminal/render"
)

// Game owns every entity and runs the dual-rate simulation:
// bullets advance on every Update, the swarm moves and fires once per heartbeat.
// It is not safe for concurrent use; the drive loop is its only caller.
type Game struct {
	width, height int
	speed         int
	roller        dice.Roller

	player  *components.Player
	enemies []*components.Enemy
	bullets []*components.Bullet
	walls   []*components.Wall

	started  bool
	gameOver bool
	victory  bool

	// Heartbeat step, cycles 1..SwarmDescendStep then resets to 0
	step int

	// Alive enemies, decremented once per confirmed hit; the status line reads this, not len(enemies)
	enemiesLeft int
}

// NewGame validates cfg and creates an idle game; Start populates the arena
func NewGame(cfg Config) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg = cfg.withDefaults()

	g := &Game{
		width:  cfg.Width,
		height: cfg.Height,
		speed:  cfg.Speed,
		roller: cfg.Roller,
	}
	g.player = g.newPlayer()
	return g, nil
}

// newPlayer places a fresh ship at the bottom center
func (g *Game) newPlayer() *components.Player {
	return components.NewPlayer(g.width/2-1, g.height-1)
}

// Width returns the arena width
func (g *Game) Width() int { return g.width }

// Height returns the arena height
func (g *Game) Height() int { return g.height }

// Speed returns the target frames per second
func (g *Game) Speed() int { return g.speed }

// SetSpeed changes the target frames per second; non-positive values are ignored
func (g *Game) SetSpeed(speed int) {
	if speed > 0 {
		g.speed = speed
	}
}

// FrameInterval is the minimum time between two frames of the drive loop
func (g *Game) FrameInterval() time.Duration {
	return time.Second / time.Duration(g.speed)
}

// IsStarted reports whether the game is running (false before start and while paused)
func (g *Game) IsStarted() bool { return g.started }

// SetStarted sets the running flag without touching game state
func (g *Game) SetStarted(started bool) { g.started = started }

// GameOver reports whether the player has lost all lives
func (g *Game) GameOver() bool { return g.gameOver }

// Victory reports whether every enemy has been destroyed
func (g *Game) Victory() bool { return g.victory }

// Step returns the heartbeat step counter
func (g *Game) Step() int { return g.step }

// EnemiesLeft returns the alive enemy counter shown on the status line
func (g *Game) EnemiesLeft() int { return g.enemiesLeft }

// Player returns the ship
func (g *Game) Player() *components.Player { return g.player }

// Enemies returns the stored enemies, including destroyed ones
func (g *Game) Enemies() []*components.Enemy { return g.enemies }

// Bullets returns the stored bullets; destroyed ones remain until the next Render
func (g *Game) Bullets() []*components.Bullet { return g.bullets }

// Walls returns the stored block walls; destroyed ones remain until the next Render
func (g *Game) Walls() []*components.Wall { return g.walls }

// Start spawns the swarm, draws the border and builds the block wall row
func (g *Game) Start(s render.Surface) {
	g.spawnSwarm()
	g.buildArena(s)
	log.Printf("Game started: %d enemies in a %dx%d arena", g.enemiesLeft, g.width, g.height)
}

// Restart clears bullets and enemies, resets the ship and the heartbeat step, then starts again
func (g *Game) Restart(s render.Surface) {
	g.enemies = nil
	g.bullets = nil
	g.gameOver = false
	g.victory = false
	g.player = g.newPlayer()
	g.step = 0
	log.Printf("Game restarted")
	g.Start(s)
}

// Update advances bullets by one cell and resolves collisions.
// When elapsed reaches the heartbeat interval it first moves the swarm and spawns one
// player bullet and one enemy bullet; it returns true so the caller can reset its timer.
func (g *Game) Update(elapsed time.Duration) bool {
	heartbeat := elapsed >= constants.HeartbeatInterval
	if heartbeat {
		g.step++
		g.moveSwarm()
		g.spawnPlayerBullet()
		g.spawnEnemyBullet()
		if g.step == constants.SwarmDescendStep {
			g.step = 0
		}
	}
	g.advanceBullets()
	return heartbeat
}

// Render draws player, enemies, walls and bullets in that order, then drops destroyed
// bullets and walls. Destroyed enemies stay stored and keep being drawn as blanks.
func (g *Game) Render(s render.Surface, fps int) {
	g.player.Render(s)
	for _, e := range g.enemies {
		e.Render(s)
	}
	for _, w := range g.walls {
		w.Render(s)
	}
	for _, b := range g.bullets {
		b.Render(s)
	}

	g.bullets = slices.DeleteFunc(g.bullets, func(b *components.Bullet) bool { return !b.IsAlive() })
	g.walls = slices.DeleteFunc(g.walls, func(w *components.Wall) bool { return !w.IsAlive() })

	g.renderStatus(s, fps)

	switch {
	case g.gameOver:
		g.renderMessage(s, constants.GameOverMessage)
	case g.victory:
		g.renderMessage(s, constants.VictoryMessage)
	}
}

// HandleInput steers the ship one cell, keeping EdgeMargin cells from either border
func (g *Game) HandleInput(intent input.IntentType) {
	x, y := g.player.Position()
	switch intent {
	case input.IntentMoveLeft:
		if x > constants.EdgeMargin {
			g.player.MoveTo(x-1, y)
		}
	case input.IntentMoveRight:
		if x < g.width-constants.EdgeMargin {
			g.player.MoveTo(x+1, y)
		}
	}
}

// StatusLine formats the status row, padded to the arena width so shorter values leave no residue
func (g *Game) StatusLine(fps int) string {
	text := fmt.Sprintf(constants.StatusFormat, g.enemiesLeft, unsafe.Sizeof(*g), fps, g.player.Lives())
	return fmt.Sprintf("%-*s", g.width, text)
}

func (g *Game) renderStatus(s render.Surface, fps int) {
	s.Draw(1, g.height+constants.StatusRowOffset, g.StatusLine(fps), constants.TextStyle)
}

// renderMessage centers msg on the arena
func (g *Game) renderMessage(s render.Surface, msg string) {
	x := g.width/2 - len(msg)/2
	y := g.height / 2
	s.Draw(x, y, msg, constants.TextStyle)
}
