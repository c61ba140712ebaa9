package ui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"nestview/internal/flexlist"
	"nestview/internal/holder"
	"nestview/internal/infra/logx"
)

// handleKey routes all key events. Search input and the reorder mode take
// precedence over the normal browse bindings.
func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.state = stateQuit
		return m, tea.Quit
	}

	if m.state == stateHelp {
		// Any key closes the overlay.
		m.state = stateBrowse
		return m, nil
	}

	if m.search.searching {
		return m.handleSearchInput(msg)
	}

	if m.grab.active {
		return m.handleGrabKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.state = stateQuit
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.state = stateHelp
		return m, nil

	case key.Matches(msg, m.keys.Search):
		m.search.searching = true
		m.search.input.SetValue(m.search.query)
		m.search.input.Focus()
		return m, nil

	case key.Matches(msg, m.keys.Clear):
		return m.handleClear()

	case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down),
		key.Matches(msg, m.keys.PageUp), key.Matches(msg, m.keys.PageDown),
		key.Matches(msg, m.keys.Top), key.Matches(msg, m.keys.Bottom):
		return m.handleCursorMovement(msg)

	case key.Matches(msg, m.keys.Expand), key.Matches(msg, m.keys.Collapse),
		key.Matches(msg, m.keys.ExpandAll), key.Matches(msg, m.keys.CollapseAll):
		return m.handleTreeNavigation(msg)

	case key.Matches(msg, m.keys.Activate):
		// Enter routes through the holder exactly like a mouse tap, so the
		// enabled and expand-on-tap guards hold for both input paths.
		if h := m.pool.at(m.cursor); h != nil {
			h.Tap(h.View())
			m.drainEffects()
			m.updateViewportContent()
		}
		return m, nil

	case key.Matches(msg, m.keys.Select):
		return m.handleSelection()

	case key.Matches(msg, m.keys.SelectMode):
		return m.cycleSelectionMode()

	case key.Matches(msg, m.keys.Grab):
		return m.startGrab()

	case key.Matches(msg, m.keys.Yank):
		m.yankSelection()
		return m, nil
	}

	return m, nil
}

// handleSearchInput feeds keys to the search field and live-applies the
// query.
func (m Model) handleSearchInput(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.search.searching = false
		m.search.input.Blur()
		return m, nil
	case "esc":
		m.clearSearch()
		return m, nil
	}

	var cmd tea.Cmd
	m.search.input, cmd = m.search.input.Update(msg)
	if q := m.search.input.Value(); q != m.search.query {
		m.applySearch(q)
	}
	return m, cmd
}

// handleClear clears the most intrusive state first: search, then selection.
func (m Model) handleClear() (Model, tea.Cmd) {
	if m.search.query != "" {
		m.clearSearch()
		m.statusMsg = "search cleared"
		return m, nil
	}
	if m.adapter.SelectedCount() > 0 {
		m.adapter.ClearSelection()
		m.statusMsg = "selection cleared"
		m.updateViewportContent()
	}
	return m, nil
}

// handleCursorMovement moves the cursor within the visible rows.
func (m Model) handleCursorMovement(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Down):
		if m.cursor < m.itemsLen()-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.PageDown):
		jump := m.viewport.Height / 2
		if jump <= 0 {
			jump = 10
		}
		m.cursor += jump
	case key.Matches(msg, m.keys.PageUp):
		jump := m.viewport.Height / 2
		if jump <= 0 {
			jump = 10
		}
		m.cursor -= jump
	case key.Matches(msg, m.keys.Top):
		m.cursor = 0
	case key.Matches(msg, m.keys.Bottom):
		m.cursor = m.itemsLen() - 1
	}
	m.ensureCursorVisible()
	m.updateViewportContent()
	return m, nil
}

// handleTreeNavigation expands and collapses branches under the cursor.
func (m Model) handleTreeNavigation(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.itemsLen() == 0 {
		return m, nil
	}
	switch {
	case key.Matches(msg, m.keys.Expand):
		if h := m.pool.at(m.cursor); h != nil {
			h.ExpandRow(m.cursor)
			m.drainEffects()
		}
	case key.Matches(msg, m.keys.Collapse):
		if m.adapter.IsExpanded(m.cursor) {
			if h := m.pool.at(m.cursor); h != nil {
				h.CollapseRow(m.cursor)
				m.drainEffects()
			}
		} else if parent := m.adapter.ParentOf(m.cursor); parent >= 0 {
			// Collapsed row or leaf: fold the parent and jump to it.
			id := m.itemAt(parent).ID
			if h := m.pool.at(parent); h != nil {
				h.CollapseRow(parent)
				m.drainEffects()
			}
			if pos := m.adapter.PositionOf(id); pos >= 0 {
				m.cursor = pos
				m.ensureCursorVisible()
			}
		}
	case key.Matches(msg, m.keys.ExpandAll):
		m.adapter.ExpandAll(flexlist.ExpandAllDepth)
		m.afterStructureChange()
	case key.Matches(msg, m.keys.CollapseAll):
		m.adapter.CollapseAll()
		m.afterStructureChange()
	}
	m.updateViewportContent()
	return m, nil
}

// handleSelection toggles the cursor row and advances, so holding space
// sweeps a range.
func (m Model) handleSelection() (Model, tea.Cmd) {
	if m.itemsLen() == 0 {
		return m, nil
	}
	m.adapter.ToggleSelection(m.cursor)
	if m.cursor < m.itemsLen()-1 {
		m.cursor++
		m.ensureCursorVisible()
	}
	m.updateViewportContent()
	return m, nil
}

// cycleSelectionMode steps idle -> single -> multi -> idle.
func (m Model) cycleSelectionMode() (Model, tea.Cmd) {
	next := holder.ModeIdle
	switch m.adapter.SelectionMode() {
	case holder.ModeIdle:
		next = holder.ModeSingle
	case holder.ModeSingle:
		next = holder.ModeMulti
	}
	m.adapter.SetSelectionMode(next)
	m.statusMsg = "selection mode: " + next.String()
	m.updateViewportContent()
	return m, nil
}

// startGrab enters keyboard reorder mode for the cursor row. Entering a drag
// force-collapses an expanded branch through the holder before it moves.
func (m Model) startGrab() (Model, tea.Cmd) {
	if m.itemsLen() == 0 {
		return m, nil
	}
	id := m.itemAt(m.cursor).ID
	if h := m.pool.at(m.cursor); h != nil {
		h.ActionStateChanged(m.cursor, holder.ActionStateDrag)
		m.drainEffects()
	}
	m.grab = grabState{active: true, id: id}
	if pos := m.adapter.PositionOf(id); pos >= 0 {
		m.cursor = pos
		m.ensureCursorVisible()
	}
	m.statusMsg = "reordering – j/k to move, m to drop"
	m.updateViewportContent()
	return m, nil
}

// handleGrabKey moves the grabbed row among its siblings and drops it.
func (m Model) handleGrabKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	pos := m.adapter.PositionOf(m.grab.id)
	if pos < 0 {
		// The grabbed row vanished (filter applied underneath); bail out.
		return m.dropGrab()
	}

	switch {
	case key.Matches(msg, m.keys.Down):
		if target := m.adapter.SiblingAfter(pos); target >= 0 && m.adapter.Move(pos, target) {
			m.afterGrabMove()
		}
	case key.Matches(msg, m.keys.Up):
		if target := m.adapter.SiblingBefore(pos); target >= 0 && m.adapter.Move(pos, target) {
			m.afterGrabMove()
		}
	case key.Matches(msg, m.keys.Grab), key.Matches(msg, m.keys.Activate), key.Matches(msg, m.keys.Clear):
		return m.dropGrab()
	case key.Matches(msg, m.keys.Quit):
		m.state = stateQuit
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) afterGrabMove() {
	m.afterStructureChange()
	if pos := m.adapter.PositionOf(m.grab.id); pos >= 0 {
		m.cursor = pos
		m.ensureCursorVisible()
		m.updateViewportContent()
	}
}

func (m Model) dropGrab() (Model, tea.Cmd) {
	if pos := m.adapter.PositionOf(m.grab.id); pos >= 0 {
		if h := m.pool.at(pos); h != nil {
			h.ActionStateChanged(pos, holder.ActionStateIdle)
		}
	}
	m.grab = grabState{}
	m.statusMsg = "reorder done"
	m.updateViewportContent()
	return m, nil
}

// yankSelection copies the selected paths (or the cursor row's path) to the
// system clipboard.
func (m *Model) yankSelection() {
	var paths []string
	for _, id := range m.adapter.SelectedIDs() {
		paths = append(paths, m.adapter.PathByID(id))
	}
	if len(paths) == 0 && m.itemsLen() > 0 {
		paths = append(paths, m.adapter.PathOf(m.cursor))
	}
	if len(paths) == 0 {
		return
	}

	if err := clipboard.WriteAll(strings.Join(paths, "\n")); err != nil {
		m.statusMsg = "clipboard error: " + err.Error()
		logx.Warnw("clipboard write failed", map[string]any{"error": err.Error()})
		return
	}
	m.statusMsg = fmt.Sprintf("yanked %d path(s)", len(paths))
}
