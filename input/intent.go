package input

// IntentType discriminates semantic actions decoded from keystrokes
type IntentType uint8

const (
	IntentNone IntentType = iota

	// Lifecycle intents
	IntentQuit    // q, Ctrl+C
	IntentStart   // s
	IntentPause   // p
	IntentRestart // y, r
	IntentDecline // n, answer to the game-over prompt

	// Ship movement
	IntentMoveLeft  // z, Left arrow
	IntentMoveRight // x, Right arrow
)

var intentNames = map[IntentType]string{
	IntentNone:      "none",
	IntentQuit:      "quit",
	IntentStart:     "start",
	IntentPause:     "pause",
	IntentRestart:   "restart",
	IntentDecline:   "decline",
	IntentMoveLeft:  "move-left",
	IntentMoveRight: "move-right",
}

// String returns the intent name used in logs
func (i IntentType) String() string {
	if name, ok := intentNames[i]; ok {
		return name
	}
	return "unknown"
}

// IsMovement reports whether the intent steers the ship
func (i IntentType) IsMovement() bool {
	return i == IntentMoveLeft || i == IntentMoveRight
}
