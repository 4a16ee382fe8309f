// Package input turns terminal key events into game intents.
// The Machine has two modes: flight controls and nickname entry for the score table.
package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit       // Ctrl+C, Esc, q
	IntentToggleMute // m
	IntentResize     // Terminal resize event

	// Flight
	IntentSteer   // arrows, wasd, hjkl
	IntentRoll    // Space
	IntentConfirm // Enter: start a flight or submit the nickname

	// Nickname entry
	IntentTextChar      // Printable character
	IntentTextBackspace // Backspace
	IntentTextCancel    // Esc
)

// Intent is one parsed action
type Intent struct {
	Type IntentType
	DX   int  // steering direction, -1..1
	DY   int  // steering direction, -1..1
	Char rune // typed char for IntentTextChar
}
