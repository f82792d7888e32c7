package engine

import (
	"log"

	"github.com/lixenwraith/gaminal/components"
	"github.com/lixenwraith/gaminal/constants"
)

// spawnPlayerBullet fires from above the middle of the ship while it is alive
func (g *Game) spawnPlayerBullet() {
	if !g.player.IsAlive() {
		return
	}
	x, y := g.player.Position()
	g.bullets = append(g.bullets, components.NewBullet(x+2, y-1, components.DirectionUp))
}

// shooters returns the enemies allowed to fire: alive and inside the play area
func (g *Game) shooters() []*components.Enemy {
	var qualified []*components.Enemy
	for _, e := range g.enemies {
		if _, y := e.Position(); e.IsAlive() && y >= constants.ArenaTop {
			qualified = append(qualified, e)
		}
	}
	return qualified
}

// spawnEnemyBullet fires from below one shooter picked uniformly by the roller.
// No shooter or a failed roll means no enemy bullet this heartbeat.
func (g *Game) spawnEnemyBullet() {
	qualified := g.shooters()
	if len(qualified) == 0 {
		return
	}

	roll, err := g.roller.Roll(len(qualified))
	if err != nil {
		log.Printf("Shooter roll failed, skipping enemy bullet: %v", err)
		return
	}
	if roll < 1 || roll > len(qualified) {
		log.Printf("Shooter roll %d outside 1..%d, skipping enemy bullet", roll, len(qualified))
		return
	}

	x, y := qualified[roll-1].Position()
	g.bullets = append(g.bullets, components.NewBullet(x, y+1, components.DirectionDown))
}

// advanceBullets moves every live bullet one cell and resolves its collisions.
// A bullet resolves at most one primary target (enemy or ship) but is still tested
// against every wall afterwards.
func (g *Game) advanceBullets() {
	for _, b := range g.bullets {
		if !b.IsAlive() {
			continue
		}

		x, y := b.Position()
		switch b.Direction() {
		case components.DirectionUp:
			if y >= constants.ArenaTop {
				b.MoveTo(x, y-1)
			} else {
				b.Destroy()
			}
			if b.IsAlive() {
				g.resolveEnemyHit(b)
			}

		case components.DirectionDown:
			if y > g.height-2 {
				b.Destroy()
			} else {
				b.MoveTo(x, y+1)
				g.resolvePlayerHit(b)
			}
		}

		for _, w := range g.walls {
			if b.CollidesWith(w) {
				b.Destroy()
				w.Destroy()
			}
		}
	}
}

// resolveEnemyHit destroys the first live enemy under b
func (g *Game) resolveEnemyHit(b *components.Bullet) {
	for _, e := range g.enemies {
		if !e.IsAlive() || !b.CollidesWith(e) {
			continue
		}
		e.Destroy()
		b.Destroy()
		g.enemiesLeft--
		if g.enemiesLeft == 0 && !g.victory {
			g.victory = true
			log.Printf("Victory: swarm destroyed")
		}
		return
	}
}

// resolvePlayerHit applies one hit to the ship when b lands on it
func (g *Game) resolvePlayerHit(b *components.Bullet) {
	if !b.CollidesWith(g.player) {
		return
	}
	wasAlive := g.player.IsAlive()
	b.Destroy()
	g.player.Destroy()
	if wasAlive && !g.player.IsAlive() {
		g.gameOver = true
		log.Printf("Game over: ship destroyed")
	}
}
