package ui

// Fixed chrome heights. The header is title, divider, search line and sticky
// line; the footer is the status line plus the short help line. Keeping them
// constant keeps mouse hit-testing a plain subtraction.
const (
	headerLines = 4
	footerLines = 2
)

// resize applies a terminal size change to the viewport.
func (m *Model) resize(width, height int) {
	m.width, m.height = width, height
	vh := height - headerLines - footerLines
	if vh < 5 {
		vh = 5
	}
	m.viewport.Width = width
	m.viewport.Height = vh
	m.help.Width = width
	m.updateViewportContent()
	m.ensureCursorVisible()
}

// ensureCursorVisible clamps the cursor to the visible rows and scrolls the
// viewport so the cursor stays inside the scroll margin.
func (m *Model) ensureCursorVisible() {
	n := m.itemsLen()
	if n == 0 {
		m.cursor = 0
		return
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor > n-1 {
		m.cursor = n - 1
	}

	// One visual line per row, so the cursor line is the cursor position.
	cursorLine := m.cursor
	topLine := m.viewport.YOffset
	bottomLine := topLine + m.viewport.Height - 1

	scrollMargin := 3
	if m.viewport.Height < 8 {
		scrollMargin = 1
	}

	if cursorLine < topLine+scrollMargin {
		targetLine := cursorLine - scrollMargin
		if targetLine < 0 {
			targetLine = 0
		}
		m.viewport.SetYOffset(targetLine)
	} else if cursorLine > bottomLine-scrollMargin {
		targetLine := cursorLine - m.viewport.Height + scrollMargin + 1
		if targetLine < 0 {
			targetLine = 0
		}
		m.viewport.SetYOffset(targetLine)
	}
}

// afterStructureChange runs after anything that changed the visible order:
// it rebinds the holder pool, clamps the cursor and refreshes the viewport.
func (m *Model) afterStructureChange() {
	m.pool.rebind()
	m.ensureCursorVisible()
	m.updateViewportContent()
}

// drainEffects folds whatever the last routed gesture did into the model.
// Scroll-on-expand: when a branch revealed rows, scroll so as many of them as
// fit are on screen.
func (m *Model) drainEffects() {
	if !m.fx.structureChanged {
		return
	}
	revealedAt, revealed := m.fx.revealedAt, m.fx.revealedRows
	m.fx.reset()
	m.afterStructureChange()

	if revealed > 0 {
		last := revealedAt + revealed
		if last > m.itemsLen()-1 {
			last = m.itemsLen() - 1
		}
		bottom := m.viewport.YOffset + m.viewport.Height - 1
		if last > bottom {
			offset := last - m.viewport.Height + 1
			maxOffset := revealedAt // keep the expanded branch itself on screen
			if offset > maxOffset {
				offset = maxOffset
			}
			m.viewport.SetYOffset(offset)
		}
	}
}

// rowAtY maps a terminal Y coordinate to a visible row, -1 when the
// coordinate is outside the list. Header and footer lines never map to a
// row, no matter how far the viewport is scrolled.
func (m *Model) rowAtY(y int) int {
	if y < headerLines || y >= headerLines+m.viewport.Height {
		return -1
	}
	row := y - headerLines + m.viewport.YOffset
	if row < 0 || row >= m.itemsLen() {
		return -1
	}
	return row
}
