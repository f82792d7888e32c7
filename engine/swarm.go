package engine

import (
	"github.com/lixenwraith/gaminal/components"
	"github.com/lixenwraith/gaminal/constants"
)

// swarmBand returns the half-open column range [first, end) scanned at spawn
func (g *Game) swarmBand() (first, end int) {
	first = g.width/2 - constants.SwarmMargin
	end = min(first*constants.SwarmBandFactor, g.width-1)
	return first, end
}

// spawnSwarm lays out a sparse diagonal lattice: row line gets an enemy at every
// column j of the band where (j + line) is a multiple of SwarmStride
func (g *Game) spawnSwarm() {
	first, end := g.swarmBand()
	g.enemies = g.enemies[:0]
	for line := 0; line < constants.SwarmRows; line++ {
		for col := first; col < end; col++ {
			if (col+line)%constants.SwarmStride == 0 {
				g.enemies = append(g.enemies, components.NewEnemy(col, line, line))
			}
		}
	}
	g.enemiesLeft = len(g.enemies)
}

// swarmOffset maps a heartbeat step to the swarm displacement.
// Steps 0-4 shift left, 5-8 shift right, 10 descends and 9 is idle.
// TODO: settle with gameplay owners whether idle step 9 is intended before changing the cadence.
func swarmOffset(step int) (dx, dy int) {
	switch {
	case step == constants.SwarmDescendStep:
		return 0, 1
	case step >= constants.SwarmLeftFirst && step <= constants.SwarmLeftLast:
		return -1, 0
	case step >= constants.SwarmRightFirst && step <= constants.SwarmRightLast:
		return 1, 0
	}
	return 0, 0
}

// moveSwarm shifts every stored enemy, dead or alive, by the current step's offset.
// Descent stops at the row above the ship.
func (g *Game) moveSwarm() {
	dx, dy := swarmOffset(g.step)
	floor := g.height - 2
	for _, e := range g.enemies {
		x, y := e.Position()
		if y+dy > floor {
			e.MoveTo(x+dx, y)
			continue
		}
		e.MoveTo(x+dx, y+dy)
	}
}
