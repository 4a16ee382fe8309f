package input

// InputMode selects how keys are interpreted
type InputMode uint8

const (
	ModeFlight InputMode = iota
	ModeText
)

// String returns the mode name for logs
func (m InputMode) String() string {
	switch m {
	case ModeFlight:
		return "flight"
	case ModeText:
		return "text"
	default:
		return "unknown"
	}
}
