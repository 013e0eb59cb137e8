package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Update implements tea.Model.
func (m *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case systemTickMsg:
		wasDark := m.controller.Dark()
		m.controller.SystemChanged(m.detector.PrefersDark())
		if m.controller.Dark() != wasDark {
			// Palette changed; rendered output must follow in the same turn.
			m.layout()
		}
		return m, scheduleSystemTick()

	case copyTickMsg:
		now := m.now()
		for _, b := range m.copyButtons {
			b.Tick(now)
		}
		m.refreshContent()
		if m.anyCopyPending() {
			return m, scheduleCopyTick()
		}
		m.copyTicking = false
		return m, nil

	case scrollStepMsg:
		if len(m.scrollPlan) == 0 {
			return m, nil
		}
		m.viewport.SetYOffset(m.scrollPlan[0])
		m.scrollPlan = m.scrollPlan[1:]
		m.visitViewport()
		if len(m.scrollPlan) > 0 {
			return m, scheduleScrollStep()
		}
		return m, nil
	}

	return m, nil
}
