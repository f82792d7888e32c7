package engine

import "time"

// FrameClock holds the drive loop's timing state: the measured frame rate and the
// game time elapsed since the last heartbeat. The heartbeat timer runs on a
// PausableClock so a pause does not bank a heartbeat.
type FrameClock struct {
	provider TimeProvider
	game     *PausableClock

	lastFrame      time.Time // Real time of the previous Tick
	heartbeatStart time.Time // Game time of the last heartbeat
	frameNumber    uint64
}

// NewFrameClock creates a clock whose first heartbeat is a full interval away
func NewFrameClock(provider TimeProvider) *FrameClock {
	game := NewPausableClock(provider)
	return &FrameClock{
		provider:       provider,
		game:           game,
		lastFrame:      provider.Now(),
		heartbeatStart: game.Now(),
	}
}

// Tick marks a frame and returns the game time since the last heartbeat and the
// instantaneous frames per second measured from the previous Tick
func (c *FrameClock) Tick() (sinceHeartbeat time.Duration, fps int) {
	now := c.provider.Now()
	delta := now.Sub(c.lastFrame)
	c.lastFrame = now
	c.frameNumber++

	if delta > 0 {
		fps = int(time.Second / delta)
	}
	return c.game.Now().Sub(c.heartbeatStart), fps
}

// ResetHeartbeat restarts the heartbeat timer from the current game time
func (c *FrameClock) ResetHeartbeat() {
	c.heartbeatStart = c.game.Now()
}

// Pause freezes the heartbeat timer
func (c *FrameClock) Pause() {
	c.game.Pause()
}

// Resume unfreezes the heartbeat timer
func (c *FrameClock) Resume() {
	c.game.Resume()
}

// IsPaused reports whether the heartbeat timer is frozen
func (c *FrameClock) IsPaused() bool {
	return c.game.IsPaused()
}

// FrameNumber returns the number of Ticks so far
func (c *FrameClock) FrameNumber() uint64 {
	return c.frameNumber
}
