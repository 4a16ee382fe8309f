package input

// LineEditor accumulates a single line of typed text up to a rune limit
type LineEditor struct {
	runes []rune
	limit int
}

// NewLineEditor creates an editor holding at most limit runes, prefilled with initial
func NewLineEditor(initial string, limit int) *LineEditor {
	e := &LineEditor{limit: limit}
	for _, r := range initial {
		if len(e.runes) == limit {
			break
		}
		e.runes = append(e.runes, r)
	}
	return e
}

// Apply edits the line for text intents and reports whether the intent was consumed
func (e *LineEditor) Apply(in *Intent) bool {
	switch in.Type {
	case IntentTextChar:
		if len(e.runes) < e.limit {
			e.runes = append(e.runes, in.Char)
		}
		return true
	case IntentTextBackspace:
		if len(e.runes) > 0 {
			e.runes = e.runes[:len(e.runes)-1]
		}
		return true
	}
	return false
}

// String returns the current line
func (e *LineEditor) String() string {
	return string(e.runes)
}
