package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Keyboard grab
	GrabCard      string `yaml:"grab_card"`
	ReleaseCard   string `yaml:"release_card"`
	MoveCardLeft  string `yaml:"move_card_left"`
	MoveCardRight string `yaml:"move_card_right"`

	// Navigation
	PrevColumn string `yaml:"prev_column"`
	NextColumn string `yaml:"next_column"`
	PrevCard   string `yaml:"prev_card"`
	NextCard   string `yaml:"next_card"`

	// Other
	ToggleDetail string `yaml:"toggle_detail"`
	Reload       string `yaml:"reload"`
	ShowHelp     string `yaml:"show_help"`
	Quit         string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		// Keyboard grab
		GrabCard:      "enter",
		ReleaseCard:   "esc",
		MoveCardLeft:  "shift+left",
		MoveCardRight: "shift+right",

		// Navigation
		PrevColumn: "h",
		NextColumn: "l",
		PrevCard:   "k",
		NextCard:   "j",

		// Other
		ToggleDetail: "space",
		Reload:       "r",
		ShowHelp:     "?",
		Quit:         "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	if k.GrabCard == "" {
		k.GrabCard = defaults.GrabCard
	}
	if k.ReleaseCard == "" {
		k.ReleaseCard = defaults.ReleaseCard
	}
	if k.MoveCardLeft == "" {
		k.MoveCardLeft = defaults.MoveCardLeft
	}
	if k.MoveCardRight == "" {
		k.MoveCardRight = defaults.MoveCardRight
	}
	if k.PrevColumn == "" {
		k.PrevColumn = defaults.PrevColumn
	}
	if k.NextColumn == "" {
		k.NextColumn = defaults.NextColumn
	}
	if k.PrevCard == "" {
		k.PrevCard = defaults.PrevCard
	}
	if k.NextCard == "" {
		k.NextCard = defaults.NextCard
	}
	if k.ToggleDetail == "" {
		k.ToggleDetail = defaults.ToggleDetail
	}
	if k.Reload == "" {
		k.Reload = defaults.Reload
	}
	if k.ShowHelp == "" {
		k.ShowHelp = defaults.ShowHelp
	}
	if k.Quit == "" {
		k.Quit = defaults.Quit
	}
}
