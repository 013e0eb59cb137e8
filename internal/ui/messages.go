package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// systemTickMsg drives the system color-scheme poll. The terminal has no
// push notification, so the detector is sampled on an interval.
type systemTickMsg struct{}

const systemPollInterval = 2 * time.Second

func scheduleSystemTick() tea.Cmd {
	return tea.Tick(systemPollInterval, func(time.Time) tea.Msg {
		return systemTickMsg{}
	})
}

// copyTickMsg advances copy-button revert deadlines.
type copyTickMsg struct{}

func scheduleCopyTick() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(time.Time) tea.Msg {
		return copyTickMsg{}
	})
}

// scrollStepMsg advances one step of an animated anchor scroll.
type scrollStepMsg struct{}

func scheduleScrollStep() tea.Cmd {
	return tea.Tick(16*time.Millisecond, func(time.Time) tea.Msg {
		return scrollStepMsg{}
	})
}
