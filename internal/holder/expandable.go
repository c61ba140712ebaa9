package holder

// ExpandListener observes an expansion change performed through a holder.
// rows is the adapter's count of inserted or removed rows; 0 means the call
// was a no-op.
type ExpandListener func(position, rows int)

// ExpandableOptions configures an Expandable holder. Nil predicates mean the
// gesture is always allowed.
type ExpandableOptions struct {
	SelectableOptions

	// ExpandOnTap gates whether a tap may toggle expansion.
	ExpandOnTap func() bool
	// CollapseOnLongPress gates whether a long-press collapses the row.
	CollapseOnLongPress func() bool

	OnExpand   ExpandListener
	OnCollapse ExpandListener
}

// Expandable is the holder behavior for branch rows: taps toggle expansion,
// long-presses collapse, and entering a drag force-collapses the row so a
// branch is never dragged open. All state transitions go through the adapter.
type Expandable struct {
	Selectable

	expandOnTap         func() bool
	collapseOnLongPress func() bool
	onExpand            ExpandListener
	onCollapse          ExpandListener
}

// NewExpandable returns an expandable holder for the given view and adapter.
func NewExpandable(view View, adapter Adapter, opts ExpandableOptions) *Expandable {
	return &Expandable{
		Selectable:          *NewSelectable(view, adapter, opts.SelectableOptions),
		expandOnTap:         opts.ExpandOnTap,
		collapseOnLongPress: opts.CollapseOnLongPress,
		onExpand:            opts.OnExpand,
		onCollapse:          opts.OnCollapse,
	}
}

// CanExpandOnTap reports whether taps may toggle expansion right now.
func (e *Expandable) CanExpandOnTap() bool {
	return e.expandOnTap == nil || e.expandOnTap()
}

// CanCollapseOnLongPress reports whether long-presses may collapse right now.
func (e *Expandable) CanCollapseOnLongPress() bool {
	return e.collapseOnLongPress == nil || e.collapseOnLongPress()
}

// ToggleExpansion flips the expansion of the bound row: expanded rows
// collapse, collapsed rows expand unless they are selected. A selected
// collapsed row stays put so a tap cannot both select and unfold it.
func (e *Expandable) ToggleExpansion() {
	pos := e.Position()
	if e.adapter.IsExpanded(pos) {
		e.CollapseRow(pos)
	} else if !e.adapter.IsSelected(pos) {
		e.ExpandRow(pos)
	}
}

// ExpandRow asks the adapter to expand position, without any gating. The
// adapter decides whether anything actually changes.
func (e *Expandable) ExpandRow(position int) {
	rows := e.adapter.Expand(position)
	if e.onExpand != nil {
		e.onExpand(position, rows)
	}
}

// CollapseRow asks the adapter to collapse position, without any gating.
func (e *Expandable) CollapseRow(position int) {
	rows := e.adapter.Collapse(position)
	if e.onCollapse != nil {
		e.onCollapse(position, rows)
	}
}

// Tap toggles expansion when the row is enabled and the tap predicate allows
// it, then always runs the base tap handling so listeners and selection keep
// working no matter what the toggle did.
func (e *Expandable) Tap(v View) {
	pos := e.Position()
	if e.adapter.IsEnabled(pos) && e.CanExpandOnTap() {
		e.ToggleExpansion()
	}
	e.Selectable.Tap(v)
}

// LongPress collapses the row when it is enabled and the predicate allows it,
// then returns whatever the base handling decides. The collapse never
// consumes the press by itself.
func (e *Expandable) LongPress(v View) bool {
	pos := e.Position()
	if e.adapter.IsEnabled(pos) && e.CanCollapseOnLongPress() {
		e.CollapseRow(pos)
	}
	return e.Selectable.LongPress(v)
}

// ActionStateChanged force-collapses the row if it is currently expanded,
// before recording the new phase. Dragging or swiping an expanded branch
// would otherwise tear it away from its revealed children.
func (e *Expandable) ActionStateChanged(position int, state ActionState) {
	if e.adapter.IsExpanded(e.Position()) {
		e.CollapseRow(position)
	}
	e.Selectable.ActionStateChanged(position, state)
}
