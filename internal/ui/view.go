package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.state == stateQuit {
		return ""
	}

	header := m.renderHeader()
	footer := m.renderFooter()

	if m.state == stateHelp {
		return lipgloss.JoinVertical(lipgloss.Left, header, m.renderHelpOverlay(), footer)
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, m.viewport.View(), footer)
}

func (m Model) renderHeader() string {
	title := "nestview"
	if m.docTitle != "" {
		title += " – " + m.docTitle
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(dividerStyle.Render(strings.Repeat("─", max(10, m.width-2))))
	b.WriteString("\n")
	b.WriteString(m.renderSearchLine())
	b.WriteString("\n")
	b.WriteString(m.renderStickyLine())
	return b.String()
}

func (m Model) renderFooter() string {
	return m.renderStatusLine() + "\n" + helpStyle.Render(m.help.ShortHelpView(m.keys.ShortHelp()))
}

func (m Model) renderHelpOverlay() string {
	return m.help.FullHelpView(m.keys.FullHelp())
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
