package flexlist

// Move reorders the row at from into the slot of the row at to. Both rows
// must share a parent; the moved item carries its whole subtree with it.
// Reports whether anything moved.
func (a *Adapter) Move(from, to int) bool {
	if from == to {
		return false
	}
	src, ok := a.ItemAt(from)
	if !ok {
		return false
	}
	dst, ok := a.ItemAt(to)
	if !ok || dst.ID == src.ID || dst.ParentID != src.ParentID {
		return false
	}

	sibs := a.children[src.ParentID]
	si, di := -1, -1
	for i, id := range sibs {
		switch id {
		case src.ID:
			si = i
		case dst.ID:
			di = i
		}
	}
	if si < 0 || di < 0 {
		return false
	}

	sibs = append(sibs[:si], sibs[si+1:]...)
	// Removal shifts later indices left by one, which lands the item right
	// after dst when moving down and right before it when moving up.
	sibs = append(sibs[:di], append([]int{src.ID}, sibs[di:]...)...)
	a.children[src.ParentID] = sibs

	a.rebuildOrder()
	a.refreshVisible()
	return true
}

// SiblingBefore reports the visible position of the previous sibling of the
// row at position, or -1 when there is none.
func (a *Adapter) SiblingBefore(position int) int {
	return a.siblingAt(position, -1)
}

// SiblingAfter reports the visible position of the next sibling of the row
// at position, or -1 when there is none.
func (a *Adapter) SiblingAfter(position int) int {
	return a.siblingAt(position, +1)
}

func (a *Adapter) siblingAt(position, offset int) int {
	it, ok := a.ItemAt(position)
	if !ok {
		return -1
	}
	sibs := a.children[it.ParentID]
	for i, id := range sibs {
		if id != it.ID {
			continue
		}
		j := i + offset
		if j < 0 || j >= len(sibs) {
			return -1
		}
		return a.PositionOf(sibs[j])
	}
	return -1
}

// rebuildOrder re-flattens items into document order from the children map
// and refreshes the ID index.
func (a *Adapter) rebuildOrder() {
	ordered := make([]Item, 0, len(a.items))
	var walk func(id int)
	walk = func(id int) {
		ordered = append(ordered, a.items[a.index[id]])
		for _, child := range a.children[id] {
			walk(child)
		}
	}
	for _, id := range a.children[0] {
		walk(id)
	}
	a.items = ordered
	for i, it := range a.items {
		a.index[it.ID] = i
	}
}
