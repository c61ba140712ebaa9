// Package flexlist implements the list adapter behind the outline browser.
// It owns every piece of row state the interaction holders consult: the item
// tree, expansion flags, the selection set, and the flattened visible order.
// Holder positions always refer to the current visible order.
package flexlist

import (
	"fmt"
	"strings"
	"time"

	"nestview/internal/holder"
)

// Item is one outline entry. Items form a tree through ParentID; ID 0 is
// reserved for the synthetic root, so real IDs start at 1.
type Item struct {
	ID       int
	ParentID int
	Title    string
	Note     string
	Depth    int
	Branch   bool
	Disabled bool
	// StartExpanded pre-expands this branch when the adapter is built,
	// independent of Options.StartupDepth.
	StartExpanded bool
	UpdatedAt     time.Time
}

// Options tune adapter behavior at construction time.
type Options struct {
	// StartupDepth expands branches shallower than this depth when the
	// adapter is built: 0 keeps everything collapsed, 1 opens top-level
	// branches, ExpandAllDepth opens everything.
	StartupDepth int
	// AutoCollapseSiblings collapses the other expanded branches under the
	// same parent whenever a branch expands, keeping one open per level.
	AutoCollapseSiblings bool
	// Mode is the initial selection mode. The zero value, SelectionDefault,
	// means ModeMulti.
	Mode SelectionOption
}

// SelectionOption names the selection mode an adapter is constructed in.
// A separate type so every mode, idle included, can be chosen explicitly
// while the zero value keeps the default.
type SelectionOption int

const (
	SelectionDefault SelectionOption = iota
	SelectionIdle
	SelectionSingle
	SelectionMulti
)

func (o SelectionOption) mode() holder.SelectionMode {
	switch o {
	case SelectionIdle:
		return holder.ModeIdle
	case SelectionSingle:
		return holder.ModeSingle
	default:
		return holder.ModeMulti
	}
}

// ExpandAllDepth as a depth limit means "no limit".
const ExpandAllDepth = -1

// Adapter owns the outline tree and implements holder.Adapter. All exported
// position parameters are indices into the current visible row order.
type Adapter struct {
	items    []Item        // flattened tree in document order
	index    map[int]int   // item ID -> index in items
	children map[int][]int // parent ID -> ordered child IDs, 0 holds roots

	expanded map[int]bool // branch ID -> expanded
	selected map[int]bool // item ID -> selected
	filter   map[int]bool // item ID -> passes filter, nil when unfiltered

	visible []int // visible positions -> indices into items

	mode holder.SelectionMode
	opts Options
}

// New builds an adapter from items listed in document order: every ParentID
// must reference an item that appeared earlier, or be 0 for roots.
func New(items []Item, opts Options) (*Adapter, error) {
	a := &Adapter{
		items:    make([]Item, len(items)),
		index:    make(map[int]int, len(items)),
		children: make(map[int][]int),
		expanded: make(map[int]bool),
		selected: make(map[int]bool),
		mode:     opts.Mode.mode(),
		opts:     opts,
	}
	copy(a.items, items)

	for i := range a.items {
		it := &a.items[i]
		if it.ID <= 0 {
			return nil, fmt.Errorf("item %q: invalid id %d", it.Title, it.ID)
		}
		if _, dup := a.index[it.ID]; dup {
			return nil, fmt.Errorf("item %q: duplicate id %d", it.Title, it.ID)
		}
		if it.ParentID != 0 {
			pi, ok := a.index[it.ParentID]
			if !ok {
				return nil, fmt.Errorf("item %q: parent %d not seen before it", it.Title, it.ParentID)
			}
			it.Depth = a.items[pi].Depth + 1
			a.items[pi].Branch = true
		} else {
			it.Depth = 0
		}
		a.index[it.ID] = i
		a.children[it.ParentID] = append(a.children[it.ParentID], it.ID)
	}

	for _, it := range a.items {
		if !it.Branch || len(a.children[it.ID]) == 0 {
			continue
		}
		if it.StartExpanded || (opts.StartupDepth == ExpandAllDepth || it.Depth < opts.StartupDepth) {
			a.expanded[it.ID] = true
		}
	}

	a.refreshVisible()
	return a, nil
}

// Len reports the total item count, visible or not.
func (a *Adapter) Len() int { return len(a.items) }

// VisibleLen reports how many rows are currently visible.
func (a *Adapter) VisibleLen() int { return len(a.visible) }

// ItemAt returns the item at a visible position.
func (a *Adapter) ItemAt(position int) (Item, bool) {
	i, ok := a.itemIndex(position)
	if !ok {
		return Item{}, false
	}
	return a.items[i], true
}

// Items returns every item in document order, visible or not. The slice is a
// fresh copy per call.
func (a *Adapter) Items() []Item {
	items := make([]Item, len(a.items))
	copy(items, a.items)
	return items
}

// VisibleItems returns the visible rows in display order. The slice is a
// fresh copy per call.
func (a *Adapter) VisibleItems() []Item {
	items := make([]Item, len(a.visible))
	for pos, idx := range a.visible {
		items[pos] = a.items[idx]
	}
	return items
}

// DepthOf reports the tree depth of the row at position, -1 when out of
// range. Roots are depth 0.
func (a *Adapter) DepthOf(position int) int {
	it, ok := a.ItemAt(position)
	if !ok {
		return -1
	}
	return it.Depth
}

// IsStickyHeader reports whether the row at position may be pinned as a
// sticky header while its children scroll. Only branches qualify.
func (a *Adapter) IsStickyHeader(position int) bool {
	it, ok := a.ItemAt(position)
	return ok && it.Branch
}

// ItemByID returns an item regardless of visibility.
func (a *Adapter) ItemByID(id int) (Item, bool) {
	i, ok := a.index[id]
	if !ok {
		return Item{}, false
	}
	return a.items[i], true
}

// PositionOf reports the visible position of an item ID, or -1 when the item
// is hidden or unknown.
func (a *Adapter) PositionOf(id int) int {
	i, ok := a.index[id]
	if !ok {
		return -1
	}
	for pos, idx := range a.visible {
		if idx == i {
			return pos
		}
	}
	return -1
}

// ParentOf reports the visible position of the parent of the row at
// position, or -1 when the row is a root or the parent is hidden.
func (a *Adapter) ParentOf(position int) int {
	it, ok := a.ItemAt(position)
	if !ok || it.ParentID == 0 {
		return -1
	}
	return a.PositionOf(it.ParentID)
}

// AncestorsOf returns the ancestor chain of the row at position, outermost
// first. The slice is empty for roots and invalid positions.
func (a *Adapter) AncestorsOf(position int) []Item {
	it, ok := a.ItemAt(position)
	if !ok {
		return nil
	}
	var chain []Item
	for it.ParentID != 0 {
		pi, ok := a.index[it.ParentID]
		if !ok {
			break
		}
		it = a.items[pi]
		chain = append([]Item{it}, chain...)
	}
	return chain
}

// PathOf returns the slash-joined title path of the row at position.
func (a *Adapter) PathOf(position int) string {
	it, ok := a.ItemAt(position)
	if !ok {
		return ""
	}
	var parts []string
	for _, anc := range a.AncestorsOf(position) {
		parts = append(parts, anc.Title)
	}
	parts = append(parts, it.Title)
	return strings.Join(parts, "/")
}

// PathByID returns the slash-joined title path of an item regardless of
// visibility, empty for unknown IDs.
func (a *Adapter) PathByID(id int) string {
	i, ok := a.index[id]
	if !ok {
		return ""
	}
	var parts []string
	it := a.items[i]
	for it.ParentID != 0 {
		pi, ok := a.index[it.ParentID]
		if !ok {
			break
		}
		it = a.items[pi]
		parts = append([]string{it.Title}, parts...)
	}
	parts = append(parts, a.items[i].Title)
	return strings.Join(parts, "/")
}

// IsEnabled reports whether the row at position accepts interaction.
func (a *Adapter) IsEnabled(position int) bool {
	it, ok := a.ItemAt(position)
	return ok && !it.Disabled
}

func (a *Adapter) itemIndex(position int) (int, bool) {
	if position < 0 || position >= len(a.visible) {
		return 0, false
	}
	return a.visible[position], true
}

// refreshVisible rebuilds the visible order from the tree, the expansion
// flags, and the active filter. Children of collapsed branches never show;
// filtered-out rows are skipped but their expanded descendants still walk.
func (a *Adapter) refreshVisible() {
	a.visible = a.visible[:0]
	for _, id := range a.children[0] {
		a.addVisible(id)
	}
}

func (a *Adapter) addVisible(id int) {
	i, ok := a.index[id]
	if !ok {
		return
	}
	it := a.items[i]
	if a.filter == nil || a.filter[id] {
		a.visible = append(a.visible, i)
	}
	if it.Branch && a.expanded[id] {
		for _, child := range a.children[id] {
			a.addVisible(child)
		}
	}
}
