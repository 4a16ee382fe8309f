package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// Machine parses tcell events into intents for the current mode
type Machine struct {
	mode     InputMode
	keyTable *KeyTable
}

// NewMachine creates a machine in flight mode with the default bindings
func NewMachine() *Machine {
	return &Machine{
		mode:     ModeFlight,
		keyTable: DefaultKeyTable(),
	}
}

// SetMode switches between flight controls and text entry
func (m *Machine) SetMode(mode InputMode) {
	m.mode = mode
}

// Mode returns the current mode
func (m *Machine) Mode() InputMode {
	return m.mode
}

// Process parses a tcell event and returns an Intent
// Returns nil for events with no meaning in the current mode
func (m *Machine) Process(ev tcell.Event) *Intent {
	switch e := ev.(type) {
	case *tcell.EventResize:
		return &Intent{Type: IntentResize}
	case *tcell.EventKey:
		if e.Key() == tcell.KeyCtrlC {
			return &Intent{Type: IntentQuit}
		}
		if m.mode == ModeText {
			return m.processText(e)
		}
		return m.processFlight(e)
	}
	return nil
}

func (m *Machine) processFlight(ev *tcell.EventKey) *Intent {
	var entry KeyEntry
	var ok bool
	if ev.Key() == tcell.KeyRune {
		entry, ok = m.keyTable.Runes[unicode.ToLower(ev.Rune())]
	} else {
		entry, ok = m.keyTable.SpecialKeys[ev.Key()]
	}
	if !ok {
		return nil
	}
	return &Intent{Type: entry.IntentType, DX: entry.DX, DY: entry.DY}
}

func (m *Machine) processText(ev *tcell.EventKey) *Intent {
	switch ev.Key() {
	case tcell.KeyEnter:
		return &Intent{Type: IntentConfirm}
	case tcell.KeyEscape:
		return &Intent{Type: IntentTextCancel}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return &Intent{Type: IntentTextBackspace}
	case tcell.KeyRune:
		if unicode.IsPrint(ev.Rune()) {
			return &Intent{Type: IntentTextChar, Char: ev.Rune()}
		}
	}
	return nil
}
