package theme

import "github.com/thenoetrevino/leadboard/internal/config"

// Colors holds the current theme colors, initialized by Init
var (
	Accent         string
	Background     string
	ColumnBorder   string
	CardBorder     string
	CardBg         string
	FocusedBorder  string
	DraggingBorder string
	DropReady      string
	GrabbedBorder  string
	PriorityLow    string
	PriorityMedium string
	PriorityHigh   string
	Title          string
	Subtle         string
	Normal         string
	InfoFg         string
	ErrorFg        string
)

// Init initializes the theme colors from the given color scheme
func Init(colors config.ColorScheme) {
	Accent = colors.Accent
	Background = colors.Background
	ColumnBorder = colors.ColumnBorder
	CardBorder = colors.CardBorder
	CardBg = colors.CardBackground
	FocusedBorder = colors.FocusedBorder
	DraggingBorder = colors.DraggingBorder
	DropReady = colors.DropReadyBorder
	GrabbedBorder = colors.GrabbedBorder
	PriorityLow = colors.PriorityLow
	PriorityMedium = colors.PriorityMedium
	PriorityHigh = colors.PriorityHigh
	Title = colors.Title
	Subtle = colors.Subtle
	Normal = colors.Normal
	InfoFg = colors.InfoFg
	ErrorFg = colors.ErrorFg
}
