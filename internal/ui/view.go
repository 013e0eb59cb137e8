package ui

import (
	"strings"

	"lumen/internal/interact"

	"github.com/charmbracelet/lipgloss"
)

// View implements tea.Model.
func (m *App) View() string {
	if !m.ready {
		return "Loading preview..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	var sections []string
	sections = append(sections, m.renderSkipLink())
	sections = append(sections, m.renderHeader())
	if hero := m.heroLine(); hero != "" {
		sections = append(sections, hero)
	}
	sections = append(sections, m.viewport.View())
	sections = append(sections, m.statusLine())
	sections = append(sections, m.renderFooter())

	frame := strings.Join(sections, "\n")

	if m.anyCopyPending() {
		pal := m.controller.Palette()
		canvas := NewCanvas(m.width, m.height)
		canvas.DrawStringAt(0, 0, frame)
		canvas.bottomRightOverlay(pal.Toast.Render(interact.LabelCopied), 1)
		return canvas.Render()
	}

	return frame
}

// renderSkipLink draws the skip control as the first element of the page.
func (m *App) renderSkipLink() string {
	if m.skip == nil {
		return ""
	}
	pal := m.controller.Palette()
	return pal.SkipLink.Render("[s] " + m.skip.Label)
}

// renderHeader draws the title, nav links, and the theme toggle control.
func (m *App) renderHeader() string {
	pal := m.controller.Palette()
	cur, _ := m.focus.Current()

	title := m.doc.Title
	if title == "" {
		title = "Preview"
	}

	parts := []string{pal.Header.Render(title)}
	for _, link := range m.doc.Nav {
		style := pal.Link
		if cur == focusNavPfx+link.Anchor {
			style = pal.LinkFocus
		}
		parts = append(parts, style.Render(link.Label))
	}

	toggle := " " + m.controller.ToggleIcon() + " "
	if cur == focusToggle {
		parts = append(parts, interact.FocusStyle(pal.Link).Render(toggle))
	} else {
		parts = append(parts, pal.Body.Render(toggle))
	}

	return lipgloss.JoinHorizontal(lipgloss.Center, strings.Join(parts, "  "))
}

// renderFooter draws the key help line.
func (m *App) renderFooter() string {
	pal := m.controller.Palette()
	pills := []string{
		"→/↓ ←/↑ focus",
		"⏎ activate",
		"t theme",
		"c copy",
		"s skip",
		"? help",
		"q quit",
	}
	return pal.Footer.Render(strings.Join(pills, "  "))
}

// renderHelp draws the help overlay in place of the page.
func (m *App) renderHelp() string {
	pal := m.controller.Palette()
	lines := []string{
		pal.Heading.Render("Keyboard"),
		"",
		"  →/↓  ←/↑    Cycle focus through nav links, toggle, code blocks",
		"  ⏎/Space     Activate the focused element",
		"  t           Toggle light/dark theme",
		"  c           Copy the focused code block",
		"  s           Skip to main content",
		"  j/k PgUp/Dn Scroll",
		"  g/G         Jump to top/bottom",
		"  q           Quit",
		"",
		pal.Faint.Render("Press ? to close"),
	}
	return strings.Join(lines, "\n")
}
