package notifications

import "github.com/thenoetrevino/leadboard/internal/tui/theme"

type style struct {
	icon   string
	title  string
	border string
}

func (s Severity) style() style {
	switch s {
	case Warning:
		return style{icon: "⚠", title: "Sync", border: theme.PriorityMedium}
	case Error:
		return style{icon: "✕", title: "Error", border: theme.ErrorFg}
	default:
		return style{icon: "🔔", title: "Info", border: theme.InfoFg}
	}
}
