package theme

import "github.com/muesli/termenv"

// SystemScheme is the system color-scheme signal. The UI polls it on a
// timer and feeds changes to Controller.SystemChanged; there is no push
// notification from the terminal.
type SystemScheme interface {
	PrefersDark() bool
}

// TerminalScheme detects the scheme from the terminal background color.
type TerminalScheme struct{}

// PrefersDark reports whether the terminal has a dark background.
func (TerminalScheme) PrefersDark() bool {
	return termenv.HasDarkBackground()
}

// StaticScheme is a fixed signal, used in tests and when detection is
// unavailable.
type StaticScheme bool

// PrefersDark returns the fixed value.
func (s StaticScheme) PrefersDark() bool {
	return bool(s)
}
