package ui

import "testing"

func TestEnsureCursorVisibleScrollsDown(t *testing.T) {
	m := createTestModel(t)
	m.resize(80, 12) // 6 content lines, margin 1

	m.cursor = 7
	m.ensureCursorVisible()

	if m.viewport.YOffset == 0 {
		t.Fatalf("moving to the last row must scroll the viewport")
	}
	top := m.viewport.YOffset
	bottom := top + m.viewport.Height - 1
	if m.cursor < top || m.cursor > bottom {
		t.Fatalf("cursor %d outside viewport [%d,%d]", m.cursor, top, bottom)
	}
}

func TestEnsureCursorVisibleScrollsBackUp(t *testing.T) {
	m := createTestModel(t)
	m.resize(80, 12)

	m.cursor = 7
	m.ensureCursorVisible()
	m.cursor = 0
	m.ensureCursorVisible()

	if m.viewport.YOffset != 0 {
		t.Fatalf("moving back to the top should rewind the viewport, offset %d", m.viewport.YOffset)
	}
}

func TestEnsureCursorVisibleClamps(t *testing.T) {
	m := createTestModel(t)

	m.cursor = 99
	m.ensureCursorVisible()
	if m.cursor != 7 {
		t.Fatalf("cursor should clamp to the last row, got %d", m.cursor)
	}

	m.cursor = -5
	m.ensureCursorVisible()
	if m.cursor != 0 {
		t.Fatalf("cursor should clamp to the first row, got %d", m.cursor)
	}
}

func TestRowAtY(t *testing.T) {
	m := createTestModel(t)

	if got := m.rowAtY(headerLines); got != 0 {
		t.Fatalf("first content line should map to row 0, got %d", got)
	}
	if got := m.rowAtY(headerLines + 3); got != 3 {
		t.Fatalf("expected row 3, got %d", got)
	}
	if got := m.rowAtY(0); got != -1 {
		t.Fatalf("header lines map to no row, got %d", got)
	}
	if got := m.rowAtY(headerLines + 50); got != -1 {
		t.Fatalf("below the list maps to no row, got %d", got)
	}
}

func TestRowAtYRejectsChrome(t *testing.T) {
	m := createTestModel(t)
	m.resize(80, 12) // 6 content lines, rows 6 and 7 below the fold

	// The status line sits right below the viewport band; rows hidden below
	// the fold must not be reachable through it.
	if got := m.rowAtY(headerLines + m.viewport.Height); got != -1 {
		t.Fatalf("status line should map to no row, got %d", got)
	}

	// Scrolled down, the rows hidden above the fold must not be reachable
	// through the header lines.
	m.cursor = 7
	m.ensureCursorVisible()
	if m.viewport.YOffset == 0 {
		t.Fatal("fixture should be scrolled")
	}
	if got := m.rowAtY(2); got != -1 {
		t.Fatalf("search line should map to no row, got %d", got)
	}
	if got := m.rowAtY(headerLines - 1); got != -1 {
		t.Fatalf("sticky line should map to no row, got %d", got)
	}
}

func TestRowAtYHonorsScrollOffset(t *testing.T) {
	m := createTestModel(t)
	m.resize(80, 12)
	m.cursor = 7
	m.ensureCursorVisible()

	want := m.viewport.YOffset
	if got := m.rowAtY(headerLines); got != want {
		t.Fatalf("scrolled first line should map to row %d, got %d", want, got)
	}
}
