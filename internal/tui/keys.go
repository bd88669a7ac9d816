package tui

import (
	"charm.land/bubbles/v2/key"
	"github.com/thenoetrevino/leadboard/internal/config"
)

// KeyMap holds the board key bindings, built from the configured mappings
type KeyMap struct {
	GrabCard      key.Binding
	ReleaseCard   key.Binding
	MoveCardLeft  key.Binding
	MoveCardRight key.Binding
	PrevColumn    key.Binding
	NextColumn    key.Binding
	PrevCard      key.Binding
	NextCard      key.Binding
	ToggleDetail  key.Binding
	Reload        key.Binding
	ShowHelp      key.Binding
	Quit          key.Binding
}

// NewKeyMap builds bindings from km. Arrow keys always work for navigation
// alongside the configured letters.
func NewKeyMap(km config.KeyMappings) KeyMap {
	return KeyMap{
		GrabCard: key.NewBinding(
			key.WithKeys(km.GrabCard),
			key.WithHelp(km.GrabCard, "grab / release card"),
		),
		ReleaseCard: key.NewBinding(
			key.WithKeys(km.ReleaseCard),
			key.WithHelp(km.ReleaseCard, "release without moving"),
		),
		MoveCardLeft: key.NewBinding(
			key.WithKeys(km.MoveCardLeft),
			key.WithHelp(km.MoveCardLeft, "move grabbed card left"),
		),
		MoveCardRight: key.NewBinding(
			key.WithKeys(km.MoveCardRight),
			key.WithHelp(km.MoveCardRight, "move grabbed card right"),
		),
		PrevColumn: key.NewBinding(
			key.WithKeys(km.PrevColumn, "left"),
			key.WithHelp(km.PrevColumn+"/←", "previous column"),
		),
		NextColumn: key.NewBinding(
			key.WithKeys(km.NextColumn, "right"),
			key.WithHelp(km.NextColumn+"/→", "next column"),
		),
		PrevCard: key.NewBinding(
			key.WithKeys(km.PrevCard, "up"),
			key.WithHelp(km.PrevCard+"/↑", "previous card"),
		),
		NextCard: key.NewBinding(
			key.WithKeys(km.NextCard, "down"),
			key.WithHelp(km.NextCard+"/↓", "next card"),
		),
		ToggleDetail: key.NewBinding(
			key.WithKeys(km.ToggleDetail),
			key.WithHelp(km.ToggleDetail, "card details"),
		),
		Reload: key.NewBinding(
			key.WithKeys(km.Reload),
			key.WithHelp(km.Reload, "reload board"),
		),
		ShowHelp: key.NewBinding(
			key.WithKeys(km.ShowHelp),
			key.WithHelp(km.ShowHelp, "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys(km.Quit, "ctrl+c"),
			key.WithHelp(km.Quit, "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.GrabCard, k.MoveCardLeft, k.MoveCardRight, k.ShowHelp, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PrevColumn, k.NextColumn, k.PrevCard, k.NextCard},
		{k.GrabCard, k.MoveCardLeft, k.MoveCardRight, k.ReleaseCard},
		{k.ToggleDetail, k.Reload, k.ShowHelp, k.Quit},
	}
}
