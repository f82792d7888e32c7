package engine

import (
	"errors"
	"fmt"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/lixenwraith/gaminal/constants"
)

// ErrInvalidConfig is wrapped by every Config validation failure
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the arena dimensions and loop speed fixed at construction
type Config struct {
	// Arena size in cells; the status line lives StatusRowOffset rows below Height
	Width, Height int

	// Speed is the target frames per second of the drive loop
	Speed int

	// Roller picks the enemy that fires each heartbeat; nil uses dice.DefaultRoller
	Roller dice.Roller
}

// DefaultConfig returns the 100x30 arena at 120 frames per second
func DefaultConfig() Config {
	return Config{
		Width:  constants.DefaultArenaWidth,
		Height: constants.DefaultArenaHeight,
		Speed:  constants.DefaultSpeed,
	}
}

// Validate checks arena bounds and speed
func (c *Config) Validate() error {
	if c.Width < constants.MinArenaWidth {
		return fmt.Errorf("%w: width %d below minimum %d", ErrInvalidConfig, c.Width, constants.MinArenaWidth)
	}
	if c.Height < constants.MinArenaHeight {
		return fmt.Errorf("%w: height %d below minimum %d", ErrInvalidConfig, c.Height, constants.MinArenaHeight)
	}
	if c.Speed < 0 {
		return fmt.Errorf("%w: negative speed %d", ErrInvalidConfig, c.Speed)
	}
	return nil
}

// withDefaults fills zero-valued optional fields
func (c Config) withDefaults() Config {
	if c.Speed == 0 {
		c.Speed = constants.DefaultSpeed
	}
	if c.Roller == nil {
		c.Roller = dice.DefaultRoller
	}
	return c
}
