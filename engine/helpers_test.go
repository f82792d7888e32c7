package engine

import (
	"errors"

	"github.com/lixenwraith/gaminal/constants"
	"github.com/lixenwraith/gaminal/render"
)

var errRollerBroken = errors.New("roller broken")

// fixedRoller returns the same roll every time and records the requested sizes
type fixedRoller struct {
	value int
	err   error
	sizes []int
}

func (r *fixedRoller) Roll(size int) (int, error) {
	r.sizes = append(r.sizes, size)
	if r.err != nil {
		return 0, r.err
	}
	return r.value, nil
}

func (r *fixedRoller) RollN(count, size int) ([]int, error) {
	rolls := make([]int, 0, count)
	for i := 0; i < count; i++ {
		roll, err := r.Roll(size)
		if err != nil {
			return nil, err
		}
		rolls = append(rolls, roll)
	}
	return rolls, nil
}

// fataler is satisfied by both *testing.T and *rapid.T
type fataler interface {
	Helper()
	Fatalf(format string, args ...any)
}

// newBareGame creates a default-sized game that has not been started: no enemies, no walls
func newBareGame(t fataler, roller *fixedRoller) *Game {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Roller = roller
	g, err := NewGame(cfg)
	if err != nil {
		t.Fatalf("NewGame failed: %v", err)
	}
	return g
}

// newTestGame creates and starts a default-sized game drawing into a fresh buffer
func newTestGame(t fataler, roller *fixedRoller) (*Game, *render.CellBuffer) {
	t.Helper()
	g := newBareGame(t, roller)
	buf := newArenaBuffer(g)
	g.Start(buf)
	return g, buf
}

// newArenaBuffer covers the arena plus the status row
func newArenaBuffer(g *Game) *render.CellBuffer {
	return render.NewCellBuffer(g.Width(), g.Height()+constants.StatusRowOffset)
}

func aliveEnemies(g *Game) int {
	n := 0
	for _, e := range g.Enemies() {
		if e.IsAlive() {
			n++
		}
	}
	return n
}
