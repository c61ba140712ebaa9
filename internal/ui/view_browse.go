package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dustin/go-humanize"
)

func (m *Model) updateViewportContent() {
	m.viewport.SetContent(m.renderBrowseContent())
}

func (m *Model) renderBrowseContent() string {
	total := m.itemsLen()
	if total == 0 {
		if m.adapter.Filtered() {
			return warnStyle.Render("No rows match the search.")
		}
		return warnStyle.Render("The outline is empty.")
	}

	items := m.adapter.VisibleItems()
	lines := generateTreeLines(items)

	for i := range items {
		if i >= len(lines) {
			break
		}

		content := truncateRow(lines[i], m.width-4)
		if i == m.cursor {
			content = cursorLineStyle.Width(m.width - 4).Render(content)
		} else {
			content = lipgloss.NewStyle().Width(m.width - 4).Render(content)
		}

		cursorCell := " "
		if i == m.cursor {
			cursorCell = m.theme.cursorBar.Render(" ")
		}

		// The state cell marks selection: a solid bar for selected rows, a
		// colon or dot on branches hiding selected rows.
		stateCell := " "
		switch {
		case m.grab.active && items[i].ID == m.grab.id:
			stateCell = m.theme.grabBar.Render("≡")
		case m.adapter.IsSelected(i):
			stateCell = m.theme.markBar.Render(" ")
		case m.adapter.HasSelectedDirectChild(i):
			stateCell = m.theme.markNested.Render(":")
		case m.adapter.HasSelectedDescendant(i):
			stateCell = m.theme.markNested.Render("·")
		}

		lines[i] = cursorCell + stateCell + content
	}

	return strings.Join(lines, "\n")
}

// renderSearchLine renders the search input or the applied query plus the
// selection mode.
func (m *Model) renderSearchLine() string {
	var b strings.Builder
	label := "Search: "
	if m.search.searching {
		b.WriteString(label + m.search.input.View())
	} else if m.search.query != "" {
		b.WriteString(label + m.search.query)
	} else {
		b.WriteString(subtleStyle.Render(label))
	}
	b.WriteString("  |  ")
	b.WriteString(subtleStyle.Render("mode: " + m.adapter.SelectionMode().String()))
	if m.grab.active {
		b.WriteString("  |  " + warnStyle.Render("reordering"))
	}
	return truncateRow(b.String(), m.width)
}

// renderStickyLine pins the cursor row's nearest branch ancestor when that
// ancestor is scrolled off the top of the viewport.
func (m *Model) renderStickyLine() string {
	pos := m.stickyHeaderPos()
	if pos < 0 {
		return ""
	}
	h := m.pool.at(pos)
	if h == nil || !h.Sticky() {
		return ""
	}
	return stickyStyle.Width(m.width).Render("▸ " + h.View().Render(m.width-2))
}

// stickyHeaderPos reports the visible position of the row to pin, -1 when
// nothing needs pinning.
func (m *Model) stickyHeaderPos() int {
	if m.itemsLen() == 0 {
		return -1
	}
	// Nearest ancestor of the cursor row that is scrolled above the viewport.
	best := -1
	for pos := m.adapter.ParentOf(m.cursor); pos >= 0; pos = m.adapter.ParentOf(pos) {
		if pos < m.viewport.YOffset && m.adapter.IsStickyHeader(pos) {
			best = pos
			break
		}
	}
	return best
}

// renderStatusLine summarizes counts, filter state and the cursor row.
func (m *Model) renderStatusLine() string {
	total := m.adapter.Len()
	visible := m.itemsLen()

	parts := []string{fmt.Sprintf("%d/%d rows", visible, total)}
	if n := m.adapter.SelectedCount(); n > 0 {
		parts = append(parts, fmt.Sprintf("selected: %d", n))
	}
	if m.adapter.Filtered() {
		parts = append(parts, "filtered")
	}
	if it := m.itemAt(m.cursor); !it.UpdatedAt.IsZero() {
		parts = append(parts, "updated "+humanize.Time(it.UpdatedAt))
	}
	if m.statusMsg != "" {
		parts = append(parts, m.statusMsg)
	}
	return truncateRow(subtleStyle.Render(strings.Join(parts, "  |  ")), m.width)
}
