package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keyboard shortcuts for the preview.
// ArrowRight/ArrowDown and ArrowLeft/ArrowUp share help text since each
// pair appears as a single row in the footer.
type KeyMap struct {
	// Focus traversal (cyclic)
	Next key.Binding
	Prev key.Binding

	// Scrolling
	ScrollDown key.Binding
	ScrollUp   key.Binding
	PageDown   key.Binding
	PageUp     key.Binding
	Top        key.Binding
	Bottom     key.Binding

	// Actions
	Activate key.Binding
	Toggle   key.Binding
	Copy     key.Binding
	Skip     key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next: key.NewBinding(
			key.WithKeys("right", "down"),
			key.WithHelp("→/↓", "Next element"),
		),
		Prev: key.NewBinding(
			key.WithKeys("left", "up"),
			key.WithHelp("←/↑", "Previous element"),
		),

		ScrollDown: key.NewBinding(
			key.WithKeys("j"),
			key.WithHelp("j/k", "Scroll"),
		),
		ScrollUp: key.NewBinding(
			key.WithKeys("k"),
			key.WithHelp("j/k", "Scroll"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "ctrl+f"),
			key.WithHelp("PgDn", "Page down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "ctrl+b"),
			key.WithHelp("PgUp", "Page up"),
		),
		Top: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("g", "Jump to top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("G", "Jump to bottom"),
		),

		Activate: key.NewBinding(
			key.WithKeys("enter", " ", "space"),
			key.WithHelp("⏎/Space", "Activate"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "Toggle theme"),
		),
		Copy: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "Copy code"),
		),
		Skip: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "Skip to content"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "Quit"),
		),
	}
}
