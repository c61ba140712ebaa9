package ui

import (
	"testing"

	"nestview/internal/holder"
)

func TestTreeNavigation(t *testing.T) {
	tests := []struct {
		name        string
		cursor      int
		key         string
		wantVisible int
		wantCursor  int
	}{
		{
			name:   "h collapses expanded branch",
			cursor: 2, // beta
			key:    "h",
			// beta notes disappears
			wantVisible: 7,
			wantCursor:  2,
		},
		{
			name:        "h on leaf folds the parent and jumps to it",
			cursor:      3, // beta notes
			key:         "h",
			wantVisible: 7,
			wantCursor:  2, // beta
		},
		{
			name:        "h on root leaf does nothing",
			cursor:      7, // scratch
			key:         "h",
			wantVisible: 8,
			wantCursor:  7,
		},
		{
			name:        "l on leaf does nothing",
			cursor:      1, // alpha
			key:         "l",
			wantVisible: 8,
			wantCursor:  1,
		},
		{
			name:        "H collapses everything",
			cursor:      0,
			key:         "H",
			wantVisible: 3, // projects, reading, scratch
			wantCursor:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := createTestModel(t)
			m.cursor = tt.cursor

			m = update(m, keyMsg(tt.key))

			if got := m.itemsLen(); got != tt.wantVisible {
				t.Fatalf("visible rows: want %d got %d", tt.wantVisible, got)
			}
			if m.cursor != tt.wantCursor {
				t.Fatalf("cursor: want %d got %d", tt.wantCursor, m.cursor)
			}
		})
	}
}

func TestExpandAfterCollapseAll(t *testing.T) {
	m := createTestModel(t)
	m = update(m, keyMsg("H"))
	if m.itemsLen() != 3 {
		t.Fatalf("collapse-all should leave the roots, got %d", m.itemsLen())
	}

	// l on the first root reopens it.
	m.cursor = 0
	m = update(m, keyMsg("l"))
	if !m.adapter.IsExpanded(0) {
		t.Fatalf("l should expand the branch under the cursor")
	}

	m = update(m, keyMsg("L"))
	if m.itemsLen() != 8 {
		t.Fatalf("expand-all should reveal every row, got %d", m.itemsLen())
	}
}

func TestEnterRoutesThroughHolder(t *testing.T) {
	m := createTestModel(t)

	// projects is expanded; enter collapses it.
	m = update(m, keyMsg("enter"))
	if m.adapter.IsExpanded(0) {
		t.Fatalf("enter on an expanded branch should collapse it")
	}
	if m.itemsLen() != 5 {
		t.Fatalf("collapsing projects should hide its three children, got %d rows", m.itemsLen())
	}

	// enter again expands, since the row is not selected.
	m = update(m, keyMsg("enter"))
	if !m.adapter.IsExpanded(0) {
		t.Fatalf("enter on a collapsed unselected branch should expand it")
	}
}

func TestEnterOnSelectedCollapsedBranchStaysPut(t *testing.T) {
	m := createTestModel(t)
	m = update(m, keyMsg("enter")) // collapse projects
	m.adapter.ToggleSelection(0)   // select it

	m = update(m, keyMsg("enter"))
	if m.adapter.IsExpanded(0) {
		t.Fatalf("a selected collapsed branch must not expand on tap")
	}
}

func TestEnterRespectsExpandOnTapConfig(t *testing.T) {
	adapter := createTestModel(t).adapter
	cfg := testSettings()
	cfg.Behavior.ExpandOnTap = false
	m := New(adapter, "fixtures", cfg)
	m.resize(80, 24)

	m = update(m, keyMsg("enter"))
	if !m.adapter.IsExpanded(0) {
		t.Fatalf("expand_on_tap=false must leave expansion untouched")
	}
}

func TestSpaceSelectsAndAdvances(t *testing.T) {
	m := createTestModel(t)
	m.cursor = 1 // alpha

	m = update(m, keyMsg("space"))

	if m.adapter.SelectedCount() != 1 {
		t.Fatalf("space should select the row")
	}
	if m.cursor != 2 {
		t.Fatalf("space should advance the cursor, got %d", m.cursor)
	}
}

func TestSpaceOnDisabledRowSelectsNothing(t *testing.T) {
	m := createTestModel(t)
	m.cursor = 4 // gamma, disabled

	m = update(m, keyMsg("space"))

	if m.adapter.SelectedCount() != 0 {
		t.Fatalf("disabled rows must not become selected")
	}
}

func TestSelectionModeCycle(t *testing.T) {
	m := createTestModel(t)
	m.adapter.ToggleSelection(1)

	m = update(m, keyMsg("v")) // multi -> idle
	if m.adapter.SelectionMode() != holder.ModeIdle {
		t.Fatalf("expected idle, got %v", m.adapter.SelectionMode())
	}
	if m.adapter.SelectedCount() != 0 {
		t.Fatalf("entering idle must clear the selection")
	}

	m = update(m, keyMsg("v")) // idle -> single
	if m.adapter.SelectionMode() != holder.ModeSingle {
		t.Fatalf("expected single, got %v", m.adapter.SelectionMode())
	}

	m = update(m, keyMsg("v")) // single -> multi
	if m.adapter.SelectionMode() != holder.ModeMulti {
		t.Fatalf("expected multi, got %v", m.adapter.SelectionMode())
	}
}

func TestClearPrecedence(t *testing.T) {
	m := createTestModel(t)
	m.adapter.ToggleSelection(1)
	m.applySearch("beta")

	m = update(m, keyMsg("esc"))
	if m.adapter.Filtered() {
		t.Fatalf("first esc should clear the search")
	}
	if m.adapter.SelectedCount() != 1 {
		t.Fatalf("first esc must keep the selection")
	}

	m = update(m, keyMsg("esc"))
	if m.adapter.SelectedCount() != 0 {
		t.Fatalf("second esc should clear the selection")
	}
}

func TestCursorMovementClamps(t *testing.T) {
	m := createTestModel(t)

	m = update(m, keyMsg("k"))
	if m.cursor != 0 {
		t.Fatalf("k at the top must stay at 0")
	}

	m = update(m, keyMsg("G"))
	if m.cursor != 7 {
		t.Fatalf("G should land on the last row, got %d", m.cursor)
	}

	m = update(m, keyMsg("j"))
	if m.cursor != 7 {
		t.Fatalf("j at the bottom must stay put")
	}

	m = update(m, keyMsg("g"))
	if m.cursor != 0 {
		t.Fatalf("g should jump to the first row, got %d", m.cursor)
	}
}

func TestGrabReordersSiblings(t *testing.T) {
	m := createTestModel(t)
	m.cursor = 1 // alpha, siblings beta and gamma

	m = update(m, keyMsg("m"))
	if !m.grab.active || m.grab.id != 2 {
		t.Fatalf("m should grab alpha, got %+v", m.grab)
	}

	m = update(m, keyMsg("j")) // move below beta
	order := m.adapter.VisibleItems()
	if order[1].ID != 3 || order[3].ID != 2 {
		t.Fatalf("alpha should now follow beta's subtree, got %v %v", order[1].ID, order[3].ID)
	}
	if m.cursor != m.adapter.PositionOf(2) {
		t.Fatalf("cursor must follow the grabbed row")
	}

	m = update(m, keyMsg("m"))
	if m.grab.active {
		t.Fatalf("second m should drop the row")
	}
}

func TestGrabForceCollapsesExpandedBranch(t *testing.T) {
	m := createTestModel(t)
	m.cursor = 2 // beta, expanded

	m = update(m, keyMsg("m"))

	if pos := m.adapter.PositionOf(3); pos < 0 || m.adapter.IsExpanded(pos) {
		t.Fatalf("grabbing an expanded branch must collapse it first")
	}
	if m.itemsLen() != 7 {
		t.Fatalf("beta notes should be hidden during the reorder, got %d rows", m.itemsLen())
	}
}

func TestGrabEscCancels(t *testing.T) {
	m := createTestModel(t)
	m.cursor = 1
	m = update(m, keyMsg("m"))
	m = update(m, keyMsg("esc"))
	if m.grab.active {
		t.Fatalf("esc should leave reorder mode")
	}
}
