package colors

// Monochrome returns a black and white color scheme.
// Transient states differ by border brightness only.
func Monochrome() *ColorScheme {
	return &ColorScheme{
		Preset: "monochrome",

		Accent: "#FFFFFF",

		Background:     "#121212",
		ColumnBorder:   "#FFFFFF",
		CardBorder:     "#585858",
		CardBackground: "#1C1C1C",
		FocusedBorder:  "#FFFFFF",

		DraggingBorder:  "#D0D0D0",
		DropReadyBorder: "#FFFFFF",
		GrabbedBorder:   "#A8A8A8",

		PriorityLow:    "#808080",
		PriorityMedium: "#BCBCBC",
		PriorityHigh:   "#FFFFFF",

		Title:  "#FFFFFF",
		Subtle: "#585858",
		Normal: "#D0D0D0",

		InfoFg:  "#FFFFFF",
		ErrorFg: "#FFFFFF",
	}
}
