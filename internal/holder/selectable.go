package holder

// TapListener is notified when a tap lands on a bound row. The return value
// reports whether the tap was handled; handled taps toggle the row selection
// when the adapter is in a selection mode.
type TapListener func(position int) bool

// LongPressListener is notified when a long-press lands on a bound row.
type LongPressListener func(position int)

// ActionStateListener observes interaction phase changes for a row.
type ActionStateListener func(position int, state ActionState)

// SelectableOptions configures a Selectable holder. The zero value is a
// holder with no listeners that still drives adapter selection.
type SelectableOptions struct {
	Sticky        bool
	OnTap         TapListener
	OnLongPress   LongPressListener
	OnActionState ActionStateListener
}

// Selectable is the base holder behavior: it routes taps and long-presses to
// listeners and toggles adapter selection. Richer holders embed it and layer
// their own handling on top.
type Selectable struct {
	Core

	onTap         TapListener
	onLongPress   LongPressListener
	onActionState ActionStateListener
	actionState   ActionState
}

// NewSelectable returns a base holder for the given view and adapter.
func NewSelectable(view View, adapter Adapter, opts SelectableOptions) *Selectable {
	s := &Selectable{
		onTap:         opts.OnTap,
		onLongPress:   opts.OnLongPress,
		onActionState: opts.OnActionState,
	}
	if opts.Sticky {
		s.Core = NewStickyCore(view, adapter)
	} else {
		s.Core = NewCore(view, adapter)
	}
	return s
}

// ActionState reports the current interaction phase of the bound row.
func (s *Selectable) ActionState() ActionState { return s.actionState }

// Tap handles a tap on the bound row. Disabled rows ignore taps; during a
// swipe or drag the tap listener is suppressed so a finished gesture does not
// double as a click.
func (s *Selectable) Tap(v View) {
	pos := s.Position()
	if !s.adapter.IsEnabled(pos) {
		return
	}
	if s.onTap != nil && s.actionState == ActionStateIdle {
		if s.onTap(pos) {
			s.toggleActivation()
		}
	}
}

// LongPress handles a long-press on the bound row. It reports whether the
// press was consumed: true when a listener took it (which also toggles
// selection), false otherwise.
func (s *Selectable) LongPress(v View) bool {
	pos := s.Position()
	if !s.adapter.IsEnabled(pos) {
		return false
	}
	if s.onLongPress != nil {
		s.onLongPress(pos)
		s.toggleActivation()
		return true
	}
	return false
}

// ActionStateChanged records the new interaction phase and notifies the
// listener. Hosts call it when a row enters or leaves a swipe or drag.
func (s *Selectable) ActionStateChanged(position int, state ActionState) {
	s.actionState = state
	if s.onActionState != nil {
		s.onActionState(position, state)
	}
}

func (s *Selectable) toggleActivation() {
	if s.adapter.SelectionMode() == ModeIdle {
		return
	}
	s.adapter.ToggleSelection(s.Position())
}
