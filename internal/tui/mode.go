// Package tui provides the terminal user interface for taskdeck.
package tui

// Mode represents the current UI mode.
type Mode int

const (
	ModeNormal     Mode = iota // Default navigation mode
	ModeSearch                 // Search input mode
	ModeConfirm                // Delete confirmation dialog
	ModeInputTitle             // Title input mode (for new task)
	ModeHelp                   // Help overlay mode
)

// String returns the string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeSearch:
		return "search"
	case ModeConfirm:
		return "confirm"
	case ModeInputTitle:
		return "input_title"
	case ModeHelp:
		return "help"
	default:
		return "unknown"
	}
}

// IsInputMode returns true if the mode accepts text input.
func (m Mode) IsInputMode() bool {
	switch m {
	case ModeSearch, ModeInputTitle:
		return true
	case ModeNormal, ModeConfirm, ModeHelp:
		return false
	}
	return false
}
