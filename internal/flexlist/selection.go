package flexlist

import "nestview/internal/holder"

// SelectionMode reports the active selection mode.
func (a *Adapter) SelectionMode() holder.SelectionMode { return a.mode }

// SetSelectionMode switches the selection mode. Leaving ModeMulti for
// ModeSingle keeps only the first selected item in document order; entering
// ModeIdle clears the selection.
func (a *Adapter) SetSelectionMode(mode holder.SelectionMode) {
	if mode == a.mode {
		return
	}
	a.mode = mode
	switch mode {
	case holder.ModeIdle:
		a.ClearSelection()
	case holder.ModeSingle:
		keep := -1
		for _, it := range a.items {
			if a.selected[it.ID] {
				keep = it.ID
				break
			}
		}
		a.selected = make(map[int]bool)
		if keep != -1 {
			a.selected[keep] = true
		}
	}
}

// IsSelected reports whether the row at position is selected.
func (a *Adapter) IsSelected(position int) bool {
	it, ok := a.ItemAt(position)
	return ok && a.selected[it.ID]
}

// ToggleSelection flips the selection of the row at position. Disabled rows
// and ModeIdle ignore the call; ModeSingle displaces any other selection.
func (a *Adapter) ToggleSelection(position int) {
	it, ok := a.ItemAt(position)
	if !ok || it.Disabled || a.mode == holder.ModeIdle {
		return
	}
	if a.selected[it.ID] {
		delete(a.selected, it.ID)
		return
	}
	if a.mode == holder.ModeSingle {
		a.selected = make(map[int]bool)
	}
	a.selected[it.ID] = true
}

// Select marks the row at position selected, subject to the same mode and
// enablement rules as ToggleSelection. Selecting a selected row is a no-op.
func (a *Adapter) Select(position int) {
	if !a.IsSelected(position) {
		a.ToggleSelection(position)
	}
}

// Deselect drops the selection of the row at position, a no-op when it is
// not selected.
func (a *Adapter) Deselect(position int) {
	if a.IsSelected(position) {
		it, _ := a.ItemAt(position)
		delete(a.selected, it.ID)
	}
}

// ToggleSubtree toggles the branch at position and drags its whole subtree
// to the branch's new state. On leaves it behaves like ToggleSelection.
// Only meaningful in ModeMulti; other modes fall back to ToggleSelection.
func (a *Adapter) ToggleSubtree(position int) {
	it, ok := a.ItemAt(position)
	if !ok || it.Disabled || a.mode == holder.ModeIdle {
		return
	}
	if !it.Branch || a.mode != holder.ModeMulti {
		a.ToggleSelection(position)
		return
	}
	target := !a.selected[it.ID]
	a.setSubtree(it.ID, target)
}

func (a *Adapter) setSubtree(id int, selected bool) {
	i, ok := a.index[id]
	if !ok {
		return
	}
	if !a.items[i].Disabled {
		if selected {
			a.selected[id] = true
		} else {
			delete(a.selected, id)
		}
	}
	for _, child := range a.children[id] {
		a.setSubtree(child, selected)
	}
}

// ClearSelection drops every selected item.
func (a *Adapter) ClearSelection() { a.selected = make(map[int]bool) }

// SelectedCount reports how many items are selected.
func (a *Adapter) SelectedCount() int { return len(a.selected) }

// SelectedIDs returns the selected item IDs in document order.
func (a *Adapter) SelectedIDs() []int {
	ids := make([]int, 0, len(a.selected))
	for _, it := range a.items {
		if a.selected[it.ID] {
			ids = append(ids, it.ID)
		}
	}
	return ids
}

// HasSelectedDescendant reports whether anything below the row at position
// is selected. Used to mark collapsed branches that hide selections.
func (a *Adapter) HasSelectedDescendant(position int) bool {
	it, ok := a.ItemAt(position)
	if !ok || !it.Branch {
		return false
	}
	return a.subtreeHasSelection(it.ID, false)
}

// HasSelectedDirectChild reports whether an immediate child of the row at
// position is selected.
func (a *Adapter) HasSelectedDirectChild(position int) bool {
	it, ok := a.ItemAt(position)
	if !ok || !it.Branch {
		return false
	}
	for _, child := range a.children[it.ID] {
		if a.selected[child] {
			return true
		}
	}
	return false
}

func (a *Adapter) subtreeHasSelection(id int, includeSelf bool) bool {
	if includeSelf && a.selected[id] {
		return true
	}
	for _, child := range a.children[id] {
		if a.subtreeHasSelection(child, true) {
			return true
		}
	}
	return false
}
