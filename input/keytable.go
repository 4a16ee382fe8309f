package input

import "github.com/gdamore/tcell/v2"

// KeyEntry describes what a key does in flight mode
type KeyEntry struct {
	IntentType IntentType
	DX, DY     int
}

// KeyTable maps keys to flight intents
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, Enter)
	SpecialKeys map[tcell.Key]KeyEntry

	// Rune bindings
	Runes map[rune]KeyEntry
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]KeyEntry{
			tcell.KeyCtrlC:  {IntentType: IntentQuit},
			tcell.KeyEscape: {IntentType: IntentQuit},
			tcell.KeyEnter:  {IntentType: IntentConfirm},
			tcell.KeyLeft:   {IntentType: IntentSteer, DX: -1},
			tcell.KeyRight:  {IntentType: IntentSteer, DX: 1},
			tcell.KeyUp:     {IntentType: IntentSteer, DY: -1},
			tcell.KeyDown:   {IntentType: IntentSteer, DY: 1},
		},
		Runes: map[rune]KeyEntry{
			'q': {IntentType: IntentQuit},
			'm': {IntentType: IntentToggleMute},
			' ': {IntentType: IntentRoll},

			'a': {IntentType: IntentSteer, DX: -1},
			'd': {IntentType: IntentSteer, DX: 1},
			'w': {IntentType: IntentSteer, DY: -1},
			's': {IntentType: IntentSteer, DY: 1},

			'h': {IntentType: IntentSteer, DX: -1},
			'l': {IntentType: IntentSteer, DX: 1},
			'k': {IntentType: IntentSteer, DY: -1},
			'j': {IntentType: IntentSteer, DY: 1},
		},
	}
}
