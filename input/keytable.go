package input

import "github.com/gdamore/tcell/v2"

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, arrows)
	SpecialKeys map[tcell.Key]IntentType

	// Printable rune bindings
	Runes map[rune]IntentType
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]IntentType{
			tcell.KeyCtrlC: IntentQuit,
			tcell.KeyLeft:  IntentMoveLeft,
			tcell.KeyRight: IntentMoveRight,
		},
		Runes: map[rune]IntentType{
			'q': IntentQuit,
			's': IntentStart,
			'p': IntentPause,
			'y': IntentRestart,
			'r': IntentRestart,
			'n': IntentDecline,
			'z': IntentMoveLeft,
			'x': IntentMoveRight,
		},
	}
}

// Resolve maps a key event to an intent; unbound keys resolve to IntentNone
func (kt *KeyTable) Resolve(ev *tcell.EventKey) IntentType {
	if ev == nil {
		return IntentNone
	}
	if ev.Key() == tcell.KeyRune {
		return kt.Runes[ev.Rune()]
	}
	return kt.SpecialKeys[ev.Key()]
}
