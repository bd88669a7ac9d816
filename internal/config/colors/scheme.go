package colors

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Preset name (e.g., "default", "monochrome")
	Preset string `yaml:"preset"`

	// Primary accent color (used for titles, highlights, help keys)
	Accent string `yaml:"accent"`

	// Board colors
	Background     string `yaml:"background"`
	ColumnBorder   string `yaml:"column_border"`
	CardBorder     string `yaml:"card_border"`
	CardBackground string `yaml:"card_background"`
	FocusedBorder  string `yaml:"focused_border"`

	// Interaction colors for the three transient states
	DraggingBorder  string `yaml:"dragging_border"`
	DropReadyBorder string `yaml:"drop_ready_border"`
	GrabbedBorder   string `yaml:"grabbed_border"`

	// Priority badges
	PriorityLow    string `yaml:"priority_low"`
	PriorityMedium string `yaml:"priority_medium"`
	PriorityHigh   string `yaml:"priority_high"`

	// Text colors
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"` // Muted/placeholder text
	Normal string `yaml:"normal"`

	// Status bar notices
	InfoFg  string `yaml:"info_fg"`
	ErrorFg string `yaml:"error_fg"`
}

// GetPreset returns a preset color scheme by name
func GetPreset(name string) *ColorScheme {
	switch name {
	case "monochrome":
		return Monochrome()
	default:
		return Default()
	}
}

// ApplyDefaults fills in missing color values using the preset as base
// If preset is specified, loads that preset first, then overrides with custom values
func (c *ColorScheme) ApplyDefaults() {
	preset := GetPreset(c.Preset)

	fill := func(dst *string, src string) {
		if *dst == "" {
			*dst = src
		}
	}

	fill(&c.Accent, preset.Accent)
	fill(&c.Background, preset.Background)
	fill(&c.ColumnBorder, preset.ColumnBorder)
	fill(&c.CardBorder, preset.CardBorder)
	fill(&c.CardBackground, preset.CardBackground)
	fill(&c.FocusedBorder, preset.FocusedBorder)
	fill(&c.DraggingBorder, preset.DraggingBorder)
	fill(&c.DropReadyBorder, preset.DropReadyBorder)
	fill(&c.GrabbedBorder, preset.GrabbedBorder)
	fill(&c.PriorityLow, preset.PriorityLow)
	fill(&c.PriorityMedium, preset.PriorityMedium)
	fill(&c.PriorityHigh, preset.PriorityHigh)
	fill(&c.Title, preset.Title)
	fill(&c.Subtle, preset.Subtle)
	fill(&c.Normal, preset.Normal)
	fill(&c.InfoFg, preset.InfoFg)
	fill(&c.ErrorFg, preset.ErrorFg)
}

// MergeFrom overrides colors with the non-empty values of other.
// A different preset in other resets the base palette first.
func (c *ColorScheme) MergeFrom(other ColorScheme) {
	if other.Preset != "" && other.Preset != c.Preset {
		*c = *GetPreset(other.Preset)
	}

	merge := func(dst *string, src string) {
		if src != "" {
			*dst = src
		}
	}

	merge(&c.Accent, other.Accent)
	merge(&c.Background, other.Background)
	merge(&c.ColumnBorder, other.ColumnBorder)
	merge(&c.CardBorder, other.CardBorder)
	merge(&c.CardBackground, other.CardBackground)
	merge(&c.FocusedBorder, other.FocusedBorder)
	merge(&c.DraggingBorder, other.DraggingBorder)
	merge(&c.DropReadyBorder, other.DropReadyBorder)
	merge(&c.GrabbedBorder, other.GrabbedBorder)
	merge(&c.PriorityLow, other.PriorityLow)
	merge(&c.PriorityMedium, other.PriorityMedium)
	merge(&c.PriorityHigh, other.PriorityHigh)
	merge(&c.Title, other.Title)
	merge(&c.Subtle, other.Subtle)
	merge(&c.Normal, other.Normal)
	merge(&c.InfoFg, other.InfoFg)
	merge(&c.ErrorFg, other.ErrorFg)
}
