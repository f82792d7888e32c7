package engine

import "time"

// PausableClock provides game time that stands still while paused
type PausableClock struct {
	provider TimeProvider

	startTime time.Time // Real time at creation, also the game time epoch

	paused          bool
	pauseStartTime  time.Time     // Real time the current pause began
	totalPausedTime time.Duration // Cumulative pause duration
}

// NewPausableClock creates a running clock reading real time from provider
func NewPausableClock(provider TimeProvider) *PausableClock {
	return &PausableClock{
		provider:  provider,
		startTime: provider.Now(),
	}
}

// Now returns current game time (frozen during pause)
func (pc *PausableClock) Now() time.Time {
	if pc.paused {
		return pc.startTime.Add(pc.pauseStartTime.Sub(pc.startTime) - pc.totalPausedTime)
	}
	// Game elapsed = real elapsed - total paused time
	return pc.startTime.Add(pc.provider.Now().Sub(pc.startTime) - pc.totalPausedTime)
}

// Pause stops game time advancement; no-op when already paused
func (pc *PausableClock) Pause() {
	if pc.paused {
		return
	}
	pc.paused = true
	pc.pauseStartTime = pc.provider.Now()
}

// Resume continues game time advancement; no-op when running
func (pc *PausableClock) Resume() {
	if !pc.paused {
		return
	}
	pc.totalPausedTime += pc.provider.Now().Sub(pc.pauseStartTime)
	pc.pauseStartTime = time.Time{}
	pc.paused = false
}

// IsPaused returns current pause state
func (pc *PausableClock) IsPaused() bool {
	return pc.paused
}

// TotalPauseDuration returns cumulative pause time including a pause in progress
func (pc *PausableClock) TotalPauseDuration() time.Duration {
	total := pc.totalPausedTime
	if pc.paused {
		total += pc.provider.Now().Sub(pc.pauseStartTime)
	}
	return total
}
