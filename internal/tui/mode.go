// Package tui provides the dashboard terminal interface for taskdeck.
package tui

// Mode represents the current UI mode.
type Mode int

const (
	ModeNormal     Mode = iota // Default navigation mode
	ModeInputTitle             // Title input (new or edit)
	ModeInputDesc              // Description input (new or edit)
	ModeConfirm                // Delete confirmation
	ModeHelp                   // Help overlay
)

// String returns the string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeInputTitle:
		return "input_title"
	case ModeInputDesc:
		return "input_desc"
	case ModeConfirm:
		return "confirm"
	case ModeHelp:
		return "help"
	default:
		return "unknown"
	}
}

// IsInputMode returns true if the mode accepts text input.
func (m Mode) IsInputMode() bool {
	switch m {
	case ModeInputTitle, ModeInputDesc:
		return true
	case ModeNormal, ModeConfirm, ModeHelp:
		return false
	}
	return false
}
