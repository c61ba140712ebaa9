package flexlist

// IsExpanded reports whether the row at position is an expanded branch.
func (a *Adapter) IsExpanded(position int) bool {
	it, ok := a.ItemAt(position)
	return ok && it.Branch && a.expanded[it.ID]
}

// Expand opens the branch at position and reports how many rows that
// revealed. Non-branches, already-open branches, and invalid positions
// report 0 and change nothing.
func (a *Adapter) Expand(position int) int {
	it, ok := a.ItemAt(position)
	if !ok || !it.Branch || a.expanded[it.ID] {
		return 0
	}
	if len(a.children[it.ID]) == 0 {
		// A childless branch has nothing to reveal; expanding it would
		// flip state without changing a single row.
		return 0
	}
	if a.opts.AutoCollapseSiblings {
		for _, sib := range a.children[it.ParentID] {
			if sib != it.ID {
				delete(a.expanded, sib)
			}
		}
	}
	a.expanded[it.ID] = true
	a.refreshVisible()
	return a.countVisibleDescendants(it.ID)
}

// Collapse closes the branch at position and reports how many rows that hid.
// Expansion flags of nested branches stay put, so re-expanding restores the
// previous shape.
func (a *Adapter) Collapse(position int) int {
	it, ok := a.ItemAt(position)
	if !ok || !it.Branch || !a.expanded[it.ID] {
		return 0
	}
	hidden := a.countVisibleDescendants(it.ID)
	delete(a.expanded, it.ID)
	a.refreshVisible()
	return hidden
}

// ExpandAll opens every branch shallower than maxDepth; ExpandAllDepth opens
// everything.
func (a *Adapter) ExpandAll(maxDepth int) {
	for _, it := range a.items {
		if it.Branch && (maxDepth == ExpandAllDepth || it.Depth < maxDepth) {
			a.expanded[it.ID] = true
		}
	}
	a.refreshVisible()
}

// CollapseAll closes every branch, clearing nested expansion flags too.
func (a *Adapter) CollapseAll() {
	a.expanded = make(map[int]bool)
	a.refreshVisible()
}

// SetFilter restricts visibility to the matched item IDs. Ancestors of every
// match are pulled in and their branches expanded so the match can actually
// show; a nil map clears the filter.
func (a *Adapter) SetFilter(matched map[int]bool) {
	if matched == nil {
		a.filter = nil
		a.refreshVisible()
		return
	}
	inc := make(map[int]bool, len(matched))
	for id, ok := range matched {
		if !ok {
			continue
		}
		inc[id] = true
		a.includeAncestors(id, inc)
	}
	a.filter = inc
	a.refreshVisible()
}

// Filtered reports whether a filter is active.
func (a *Adapter) Filtered() bool { return a.filter != nil }

// includeAncestors marks the parent chain of id included and expanded.
func (a *Adapter) includeAncestors(id int, inc map[int]bool) {
	i, ok := a.index[id]
	if !ok {
		return
	}
	pid := a.items[i].ParentID
	for pid != 0 {
		if inc[pid] {
			return
		}
		inc[pid] = true
		a.expanded[pid] = true
		pi, ok := a.index[pid]
		if !ok {
			return
		}
		pid = a.items[pi].ParentID
	}
}

func (a *Adapter) countVisibleDescendants(id int) int {
	n := 0
	for _, idx := range a.visible {
		if a.hasAncestor(a.items[idx], id) {
			n++
		}
	}
	return n
}

func (a *Adapter) hasAncestor(it Item, id int) bool {
	for it.ParentID != 0 {
		if it.ParentID == id {
			return true
		}
		pi, ok := a.index[it.ParentID]
		if !ok {
			return false
		}
		it = a.items[pi]
	}
	return false
}
