package engine

import (
	"testing"

	"github.com/lixenwraith/gaminal/components"
	"github.com/lixenwraith/gaminal/constants"
)

func TestBulletsAdvanceOneCellPerUpdate(t *testing.T) {
	g := newBareGame(t, &fixedRoller{value: 1})
	up := components.NewBullet(10, 20, components.DirectionUp)
	down := components.NewBullet(12, 5, components.DirectionDown)
	g.bullets = []*components.Bullet{up, down}

	for i := 1; i <= 3; i++ {
		g.Update(0)
		if _, y := up.Position(); y != 20-i {
			t.Errorf("Update %d: expected up bullet at row %d, got %d", i, 20-i, y)
		}
		if _, y := down.Position(); y != 5+i {
			t.Errorf("Update %d: expected down bullet at row %d, got %d", i, 5+i, y)
		}
	}
}

func TestBulletsLeaveArena(t *testing.T) {
	tests := []struct {
		name      string
		x, y      int
		direction components.Direction
		alive     bool
	}{
		{"up above arena top", 10, constants.ArenaTop - 1, components.DirectionUp, false},
		{"up at arena top", 10, constants.ArenaTop, components.DirectionUp, true},
		{"down at bottom", 10, 29, components.DirectionDown, false},
		{"down one above bottom", 10, 28, components.DirectionDown, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newBareGame(t, &fixedRoller{value: 1})
			b := components.NewBullet(tt.x, tt.y, tt.direction)
			g.bullets = []*components.Bullet{b}

			g.Update(0)

			if b.IsAlive() != tt.alive {
				t.Errorf("Expected alive=%v, got %v", tt.alive, b.IsAlive())
			}
		})
	}
}

func TestPlayerBulletKillsEnemy(t *testing.T) {
	g := newBareGame(t, &fixedRoller{value: 1})
	target := components.NewEnemy(20, 10, 3)
	bystander := components.NewEnemy(40, 10, 3)
	g.enemies = []*components.Enemy{target, bystander}
	g.enemiesLeft = 2
	b := components.NewBullet(21, 12, components.DirectionUp)
	g.bullets = []*components.Bullet{b}

	// Footprint rows are inclusive of y+height, so the hit lands one row below the enemy
	g.Update(0)

	if target.IsAlive() {
		t.Error("Expected target enemy to be destroyed")
	}
	if !bystander.IsAlive() {
		t.Error("Expected bystander to survive")
	}
	if b.IsAlive() {
		t.Error("Expected bullet to be destroyed on hit")
	}
	if g.EnemiesLeft() != 1 {
		t.Errorf("Expected 1 enemy left, got %d", g.EnemiesLeft())
	}
	if g.Victory() {
		t.Error("Expected no victory with an enemy left")
	}

	g.Render(newArenaBuffer(g), 60)
	if len(g.Bullets()) != 0 {
		t.Errorf("Expected destroyed bullet to be dropped on render, got %d", len(g.Bullets()))
	}
	if len(g.Enemies()) != 2 {
		t.Errorf("Expected destroyed enemy to stay stored, got %d", len(g.Enemies()))
	}
}

func TestLastEnemyKillSetsVictory(t *testing.T) {
	g := newBareGame(t, &fixedRoller{value: 1})
	g.enemies = []*components.Enemy{components.NewEnemy(20, 10, 3)}
	g.enemiesLeft = 1
	g.bullets = []*components.Bullet{components.NewBullet(20, 11, components.DirectionUp)}

	g.Update(0)

	if g.EnemiesLeft() != 0 {
		t.Errorf("Expected 0 enemies left, got %d", g.EnemiesLeft())
	}
	if !g.Victory() {
		t.Error("Expected victory after the last kill")
	}
	if g.GameOver() {
		t.Error("Victory must not set game over")
	}
}

func TestBulletHitsOneEnemyPerUpdate(t *testing.T) {
	g := newBareGame(t, &fixedRoller{value: 1})
	first := components.NewEnemy(10, 10, 4)
	overlapping := components.NewEnemy(11, 9, 3)
	g.enemies = []*components.Enemy{first, overlapping}
	g.enemiesLeft = 2
	g.bullets = []*components.Bullet{components.NewBullet(11, 11, components.DirectionUp)}

	g.Update(0)

	if first.IsAlive() {
		t.Error("Expected first overlapping enemy to be destroyed")
	}
	if !overlapping.IsAlive() {
		t.Error("Expected only one enemy destroyed per bullet")
	}
	if g.EnemiesLeft() != 1 {
		t.Errorf("Expected 1 enemy left, got %d", g.EnemiesLeft())
	}
}

func TestDeadEnemiesAreNotHit(t *testing.T) {
	g := newBareGame(t, &fixedRoller{value: 1})
	dead := components.NewEnemy(10, 10, 3)
	dead.Destroy()
	g.enemies = []*components.Enemy{dead}
	g.enemiesLeft = 0
	b := components.NewBullet(10, 11, components.DirectionUp)
	g.bullets = []*components.Bullet{b}

	g.Update(0)

	if !b.IsAlive() {
		t.Error("Expected bullet to pass through a dead enemy")
	}
	if g.EnemiesLeft() != 0 {
		t.Errorf("Expected counter untouched, got %d", g.EnemiesLeft())
	}
}

func TestBulletHitsEnemyAndWallInSameUpdate(t *testing.T) {
	g := newBareGame(t, &fixedRoller{value: 1})
	enemy := components.NewEnemy(10, 10, 3)
	wall := components.NewWall(11, 10, constants.BlockHitPoints, constants.WallGlyph)
	g.enemies = []*components.Enemy{enemy}
	g.enemiesLeft = 1
	g.walls = []*components.Wall{wall}
	g.bullets = []*components.Bullet{components.NewBullet(11, 11, components.DirectionUp)}

	g.Update(0)

	if enemy.IsAlive() {
		t.Error("Expected enemy to be destroyed")
	}
	if wall.HitPoints() != constants.BlockHitPoints-1 {
		t.Errorf("Expected wall to lose one hit point, got %d", wall.HitPoints())
	}
}

func TestEnemyBulletHitsPlayer(t *testing.T) {
	g := newBareGame(t, &fixedRoller{value: 1})
	px, py := g.Player().Position()

	for hit := 1; hit <= constants.PlayerLives; hit++ {
		b := components.NewBullet(px+1, py-1, components.DirectionDown)
		g.bullets = append(g.bullets, b)
		g.Update(0)

		if b.IsAlive() {
			t.Fatalf("Hit %d: expected bullet destroyed", hit)
		}
		lives := constants.PlayerLives - hit
		if g.Player().Lives() != lives {
			t.Errorf("Hit %d: expected %d lives, got %d", hit, lives, g.Player().Lives())
		}
		if g.Player().Glyph() != constants.PlayerGlyphs[lives] {
			t.Errorf("Hit %d: expected glyph %q, got %q", hit, constants.PlayerGlyphs[lives], g.Player().Glyph())
		}
		if g.GameOver() != (lives == 0) {
			t.Errorf("Hit %d: expected gameOver=%v, got %v", hit, lives == 0, g.GameOver())
		}
	}

	// Further hits on a dead ship are absorbed
	g.bullets = append(g.bullets, components.NewBullet(px+1, py-1, components.DirectionDown))
	g.Update(0)
	if g.Player().Lives() != 0 {
		t.Errorf("Expected lives to stay at 0, got %d", g.Player().Lives())
	}
}

func TestDeadPlayerStopsFiring(t *testing.T) {
	g := newBareGame(t, &fixedRoller{value: 1})
	for g.Player().IsAlive() {
		g.Player().Destroy()
	}

	g.Update(constants.HeartbeatInterval)

	for _, b := range g.Bullets() {
		if b.Direction() == components.DirectionUp {
			t.Error("Expected no player bullet from a dead ship")
		}
	}
}

func TestPlayerBulletSpawnPosition(t *testing.T) {
	g := newBareGame(t, &fixedRoller{value: 1})
	px, py := g.Player().Position()

	g.spawnPlayerBullet()

	if len(g.Bullets()) != 1 {
		t.Fatalf("Expected 1 bullet, got %d", len(g.Bullets()))
	}
	b := g.Bullets()[0]
	if x, y := b.Position(); x != px+2 || y != py-1 {
		t.Errorf("Expected bullet at (%d,%d), got (%d,%d)", px+2, py-1, x, y)
	}
	if b.Direction() != components.DirectionUp {
		t.Errorf("Expected up bullet, got %v", b.Direction())
	}
}

func TestWallAbsorbsBullets(t *testing.T) {
	g := newBareGame(t, &fixedRoller{value: 1})
	wall := components.NewWall(30, 25, constants.BlockHitPoints, constants.WallGlyph)
	g.walls = []*components.Wall{wall}

	g.bullets = []*components.Bullet{components.NewBullet(30, 26, components.DirectionUp)}
	g.Update(0)
	if wall.HitPoints() != 1 {
		t.Fatalf("Expected 1 hit point left, got %d", wall.HitPoints())
	}

	down := components.NewBullet(30, 23, components.DirectionDown)
	g.bullets = append(g.bullets, down)
	g.Update(0)
	if !down.IsAlive() || !wall.IsAlive() {
		t.Fatal("Expected down bullet one row short of the wall")
	}
	g.Update(0)
	if down.IsAlive() {
		t.Error("Expected down bullet absorbed by the wall")
	}
	if wall.IsAlive() {
		t.Error("Expected wall destroyed after two hits")
	}

	buf := newArenaBuffer(g)
	g.Render(buf, 60)
	if len(g.Walls()) != 0 {
		t.Errorf("Expected destroyed wall dropped on render, got %d", len(g.Walls()))
	}
	if len(g.Bullets()) != 0 {
		t.Errorf("Expected destroyed bullets dropped on render, got %d", len(g.Bullets()))
	}
}

func TestSpawnEnemyBullet(t *testing.T) {
	newSwarm := func() []*components.Enemy {
		aboveArena := components.NewEnemy(10, 2, 2)
		dead := components.NewEnemy(20, 5, 5)
		dead.Destroy()
		return []*components.Enemy{
			aboveArena,
			dead,
			components.NewEnemy(30, 6, 3),
			components.NewEnemy(40, 7, 4),
		}
	}

	tests := []struct {
		name    string
		roller  *fixedRoller
		enemies []*components.Enemy
		wantX   int
		wantY   int
		fired   bool
	}{
		{"first shooter", &fixedRoller{value: 1}, newSwarm(), 30, 7, true},
		{"second shooter", &fixedRoller{value: 2}, newSwarm(), 40, 8, true},
		{"roll error", &fixedRoller{err: errRollerBroken}, newSwarm(), 0, 0, false},
		{"roll out of range", &fixedRoller{value: 3}, newSwarm(), 0, 0, false},
		{"zero roll", &fixedRoller{value: 0}, newSwarm(), 0, 0, false},
		{"no shooters", &fixedRoller{value: 1}, newSwarm()[:2], 0, 0, false},
		{"empty swarm", &fixedRoller{value: 1}, nil, 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newBareGame(t, tt.roller)
			g.enemies = tt.enemies

			g.spawnEnemyBullet()

			if !tt.fired {
				if len(g.Bullets()) != 0 {
					t.Errorf("Expected no enemy bullet, got %d", len(g.Bullets()))
				}
				return
			}
			if len(g.Bullets()) != 1 {
				t.Fatalf("Expected 1 enemy bullet, got %d", len(g.Bullets()))
			}
			b := g.Bullets()[0]
			if x, y := b.Position(); x != tt.wantX || y != tt.wantY {
				t.Errorf("Expected bullet at (%d,%d), got (%d,%d)", tt.wantX, tt.wantY, x, y)
			}
			if b.Direction() != components.DirectionDown {
				t.Errorf("Expected down bullet, got %v", b.Direction())
			}
			if len(tt.roller.sizes) != 1 || tt.roller.sizes[0] != 2 {
				t.Errorf("Expected one roll over 2 shooters, got %v", tt.roller.sizes)
			}
		})
	}
}
