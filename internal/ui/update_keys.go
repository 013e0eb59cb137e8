package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// handleKeyMsg processes keyboard input.
func (m *App) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Help overlay blocks everything except closing keys.
	if m.showHelp {
		switch {
		case key.Matches(msg, m.keys.Help), key.Matches(msg, m.keys.Quit):
			m.showHelp = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.Next):
		m.focus.Next()
		m.refreshContent()
		return m, nil

	case key.Matches(msg, m.keys.Prev):
		m.focus.Prev()
		m.refreshContent()
		return m, nil

	case key.Matches(msg, m.keys.Activate):
		return m.activateFocused()

	case key.Matches(msg, m.keys.Toggle):
		m.handleToggle()
		return m, nil

	case key.Matches(msg, m.keys.Copy):
		return m.handleCopyKey()

	case key.Matches(msg, m.keys.Skip):
		return m.handleSkipKey()

	case key.Matches(msg, m.keys.ScrollDown):
		m.viewport.ScrollDown(1)
		m.visitViewport()
		return m, nil

	case key.Matches(msg, m.keys.ScrollUp):
		m.viewport.ScrollUp(1)
		m.visitViewport()
		return m, nil

	case key.Matches(msg, m.keys.PageDown):
		m.viewport.PageDown()
		m.visitViewport()
		return m, nil

	case key.Matches(msg, m.keys.PageUp):
		m.viewport.PageUp()
		m.visitViewport()
		return m, nil

	case key.Matches(msg, m.keys.Top):
		m.jumpTo(0)
		return m, nil

	case key.Matches(msg, m.keys.Bottom):
		m.jumpTo(m.viewport.TotalLineCount())
		return m, nil
	}

	return m, nil
}

// activateFocused dispatches Enter/Space on the focused element:
// the theme toggle gets a synthesized click, nav links start the smooth
// scroll, code blocks copy.
func (m *App) activateFocused() (tea.Model, tea.Cmd) {
	cur, ok := m.focus.Current()
	if !ok {
		return m, nil
	}

	switch {
	case cur == focusToggle:
		m.handleToggle()
		return m, nil

	case strings.HasPrefix(cur, focusNavPfx):
		return m, m.followAnchor(strings.TrimPrefix(cur, focusNavPfx))

	case strings.HasPrefix(cur, focusCodePfx):
		return m.handleCopyKey()
	}

	return m, nil
}

// handleToggle flips the theme and relays out for the new palette.
func (m *App) handleToggle() {
	m.controller.Toggle()
	m.layout()
}

// followAnchor intercepts a nav link and scrolls smoothly to its heading.
// Unknown anchors are inert.
func (m *App) followAnchor(anchor string) tea.Cmd {
	idx := m.doc.AnchorIndex(anchor)
	if idx < 0 {
		return nil
	}
	id := m.doc.Blocks[idx].ID
	return m.scrollTo(m.blockTops[id])
}

// handleCopyKey activates the focused code block's copy affordance.
func (m *App) handleCopyKey() (tea.Model, tea.Cmd) {
	btn := m.focusedCopyButton()
	if btn == nil {
		// Fall back to the first code block so the key works before any
		// element has been focused.
		if ids := m.doc.CodeBlocks(); len(ids) > 0 {
			btn = m.copyButtons[ids[0]]
		}
	}
	if btn == nil {
		return m, nil
	}

	btn.Activate(m.now())
	m.refreshContent()
	if btn.Pending() && !m.copyTicking {
		m.copyTicking = true
		return m, scheduleCopyTick()
	}
	return m, nil
}

// handleSkipKey jumps straight to the main content landmark.
func (m *App) handleSkipKey() (tea.Model, tea.Cmd) {
	if m.skip == nil {
		return m, nil
	}
	if b := m.doc.BlockByID(m.skip.TargetID); b != nil {
		m.jumpTo(m.blockTops[b.ID])
	}
	return m, nil
}
