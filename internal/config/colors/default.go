package colors

// Default returns the default color scheme (purple theme)
func Default() *ColorScheme {
	return &ColorScheme{
		Preset: "default",

		// Primary
		Accent: "#874BFD",

		// Board
		Background:     "#1C1C1C",
		ColumnBorder:   "#5F87D7",
		CardBorder:     "#585858",
		CardBackground: "#262626",
		FocusedBorder:  "#D75FD7",

		// Interaction
		DraggingBorder:  "#FFD700",
		DropReadyBorder: "#5FD75F",
		GrabbedBorder:   "#00AFFF",

		// Priority
		PriorityLow:    "#22C55E",
		PriorityMedium: "#EAB308",
		PriorityHigh:   "#EF4444",

		// Text
		Title:  "#D75FD7",
		Subtle: "#585858",
		Normal: "#D0D0D0",

		// Notices
		InfoFg:  "#00AFFF",
		ErrorFg: "#FF0000",
	}
}
