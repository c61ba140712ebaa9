package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"nestview/internal/holder"
	"nestview/internal/infra/logx"
)

// handleMouse turns raw mouse events into holder gestures. A press remembers
// the row; releasing on the same row is a tap or a long-press depending on
// how long the button was held, moving to another row while pressed is a
// drag. The wheel scrolls the viewport.
func (m Model) handleMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.viewport.LineUp(3)
		return m, nil
	case tea.MouseButtonWheelDown:
		m.viewport.LineDown(3)
		return m, nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		row := m.rowAtY(msg.Y)
		if row < 0 {
			return m, nil
		}
		m.gesture = gestureState{pressed: true, pressRow: row, pressedAt: time.Now()}
		m.cursor = row
		m.ensureCursorVisible()
		m.updateViewportContent()

	case tea.MouseActionMotion:
		if !m.gesture.pressed {
			return m, nil
		}
		row := m.rowAtY(msg.Y)
		if row < 0 {
			return m, nil
		}
		if !m.gesture.dragging {
			if row == m.gesture.pressRow {
				return m, nil
			}
			m.beginDrag()
		}
		m.dragTo(row)

	case tea.MouseActionRelease:
		if m.gesture.dragging {
			m.endDrag()
			return m, nil
		}
		if !m.gesture.pressed {
			return m, nil
		}
		press := m.gesture
		m.gesture = gestureState{}
		row := m.rowAtY(msg.Y)
		if row < 0 || row != press.pressRow {
			return m, nil
		}
		held := time.Since(press.pressedAt)
		if h := m.pool.at(row); h != nil {
			if held >= m.longPressThreshold() {
				h.LongPress(h.View())
			} else {
				h.Tap(h.View())
			}
			m.drainEffects()
			m.updateViewportContent()
		}
	}

	return m, nil
}

func (m *Model) longPressThreshold() time.Duration {
	return time.Duration(m.cfg.Gestures.LongPressMs) * time.Millisecond
}

// beginDrag flips the pressed row into a drag. The holder force-collapses an
// expanded branch before anything moves, so child rows never travel open.
func (m *Model) beginDrag() {
	row := m.gesture.pressRow
	it := m.itemAt(row)
	if h := m.pool.at(row); h != nil {
		h.ActionStateChanged(row, holder.ActionStateDrag)
		m.drainEffects()
	}
	m.gesture.dragging = true
	m.gesture.dragID = it.ID
	logx.Debugw("drag start", map[string]any{"row": row, "id": it.ID})
}

// dragTo moves the dragged row toward the pointer. The adapter refuses moves
// across parents, so dragging past a subtree boundary is a no-op.
func (m *Model) dragTo(row int) {
	pos := m.adapter.PositionOf(m.gesture.dragID)
	if pos < 0 || pos == row {
		return
	}
	if m.adapter.Move(pos, row) {
		m.afterStructureChange()
		if cur := m.adapter.PositionOf(m.gesture.dragID); cur >= 0 {
			m.cursor = cur
			m.ensureCursorVisible()
			m.updateViewportContent()
		}
	}
}

// endDrag drops the dragged row and returns its holder to idle.
func (m *Model) endDrag() {
	if pos := m.adapter.PositionOf(m.gesture.dragID); pos >= 0 {
		if h := m.pool.at(pos); h != nil {
			h.ActionStateChanged(pos, holder.ActionStateIdle)
		}
	}
	logx.Debugw("drag end", map[string]any{"id": m.gesture.dragID})
	m.gesture = gestureState{}
	m.updateViewportContent()
}
