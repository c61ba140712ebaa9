package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// ---------- Update ----------
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.MouseMsg:
		// Only the browse screen takes mouse input; the help overlay covers
		// the list, so clicks must not reach the rows beneath it.
		if m.state != stateBrowse || !m.cfg.Gestures.Mouse {
			return m, nil
		}
		return m.handleMouse(msg)
	}

	return m, nil
}
