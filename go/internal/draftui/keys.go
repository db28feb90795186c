package draftui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings for the draft room TUI.
type KeyMap struct {
	Up   key.Binding
	Down key.Binding

	Reload      key.Binding
	CycleFilter key.Binding

	Pick     key.Binding // Draft the highlighted player.
	PickForm key.Binding // Open the manual pick form.
	UndoLast key.Binding

	InitTeams  key.Binding
	ImportDemo key.Binding

	EditTier key.Binding
	AddNote  key.Binding

	Submit key.Binding
	Cancel key.Binding
	Next   key.Binding // Next form field.

	Quit key.Binding
}

// DefaultKeyMap is the built-in binding set. Vim-style navigation
// alongside arrow keys.
var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Reload: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reload"),
	),
	CycleFilter: key.NewBinding(
		key.WithKeys("f"),
		key.WithHelp("f", "cycle position filter"),
	),
	Pick: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "draft highlighted player"),
	),
	PickForm: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "manual pick form"),
	),
	UndoLast: key.NewBinding(
		key.WithKeys("u"),
		key.WithHelp("u", "undo last pick"),
	),
	InitTeams: key.NewBinding(
		key.WithKeys("i"),
		key.WithHelp("i", "init teams"),
	),
	ImportDemo: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "seed demo players"),
	),
	EditTier: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "edit tier"),
	),
	AddNote: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "add note"),
	),
	Submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "submit"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
	Next: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next field"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}
