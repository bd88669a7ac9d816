package notifications

import "github.com/thenoetrevino/leadboard/internal/tui/state"

// Severity picks the banner style
type Severity int

const (
	Info Severity = iota
	Warning
	Error
)

// severityOf maps a stored notification level to its banner style.
// Unknown levels render as Info.
func severityOf(level state.NotificationLevel) Severity {
	switch level {
	case state.LevelWarning:
		return Warning
	case state.LevelError:
		return Error
	default:
		return Info
	}
}
