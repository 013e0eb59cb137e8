// Package interact provides per-event visual feedback for interactive
// elements and the copy-to-clipboard affordance for code blocks.
package interact

import "github.com/charmbracelet/lipgloss"

// FocusStyle derives the hover/focus rendition of a base style. Purely
// derivational: every render recomputes from the base, so repeated
// application never accumulates.
func FocusStyle(base lipgloss.Style) lipgloss.Style {
	return base.Bold(true).Underline(true)
}

// PressStyle derives the pressed rendition of a base style.
func PressStyle(base lipgloss.Style) lipgloss.Style {
	return base.Reverse(true)
}
