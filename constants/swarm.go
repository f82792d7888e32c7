package constants

// Swarm Layout Constants
const (
	// SwarmRows is the number of enemy rows laid out at spawn
	SwarmRows = 6

	// SwarmMargin is subtracted from the arena center to get the first column of the spawn band
	SwarmMargin = 30

	// SwarmBandFactor multiplies the first column to get the end of the spawn band
	SwarmBandFactor = 4

	// SwarmStride places an enemy where (column + row) is a multiple of it
	SwarmStride = 3

	// SwarmSweep is the number of cells the swarm travels sideways per cycle
	SwarmSweep = 4
)

// Swarm Motion Step Constants
// A heartbeat step in [SwarmLeftFirst, SwarmLeftLast] shifts left, [SwarmRightFirst, SwarmRightLast]
// shifts right, SwarmDescendStep shifts down. Step 9 is idle.
const (
	SwarmLeftFirst   = 0
	SwarmLeftLast    = 4
	SwarmRightFirst  = 5
	SwarmRightLast   = 8
	SwarmDescendStep = 10
)
