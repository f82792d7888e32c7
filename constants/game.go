package constants

import "time"

// Game Loop Timing Constants
const (
	// HeartbeatInterval is the slow clock driving swarm motion and bullet spawns
	HeartbeatInterval = 1500 * time.Millisecond

	// DefaultSpeed is the target number of frames per second of the drive loop
	DefaultSpeed = 120
)

// Arena Constants
const (
	// DefaultArenaWidth is the arena width used when no flag overrides it
	DefaultArenaWidth = 100

	// DefaultArenaHeight is the arena height used when no flag overrides it
	DefaultArenaHeight = 30

	// MinArenaWidth keeps the leftmost swarm sweep (SwarmMargin+SwarmSweep cells left of center) inside the left border
	MinArenaWidth = 72

	// MinArenaHeight leaves room for six swarm rows, the block wall row and the player
	MinArenaHeight = 20

	// ArenaTop is the first row below the top border where upward bullets may travel
	ArenaTop = 3

	// BorderX is the column of the left border
	BorderX = 2

	// EdgeMargin is how close the player may get to either side border
	EdgeMargin = 3

	// BlockRowOffset is the distance of the destructible wall row above the bottom border
	BlockRowOffset = 5

	// StatusRowOffset is the distance of the status line below the bottom border row
	StatusRowOffset = 5
)

// Entity Life Constants
const (
	// PlayerLives is the number of enemy hits the player survives minus one
	PlayerLives = 3

	// BlockHitPoints is the starting hit point count of a destructible wall block
	BlockHitPoints = 2

	// BorderHitPoints is the hit point count of purely visual border walls
	BorderHitPoints = 1
)
