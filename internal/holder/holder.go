// Package holder implements the per-row interaction holders that sit between
// a rendered list row and the adapter owning the list state. A holder never
// stores expansion or selection state itself; it is bound to a row position
// and forwards every decision to the adapter it was constructed with.
package holder

// SelectionMode controls how the adapter reacts to selection toggles routed
// through a holder.
type SelectionMode int

const (
	// ModeIdle disables selection handling entirely.
	ModeIdle SelectionMode = iota
	// ModeSingle keeps at most one row selected.
	ModeSingle
	// ModeMulti allows any number of selected rows.
	ModeMulti
)

func (m SelectionMode) String() string {
	switch m {
	case ModeIdle:
		return "idle"
	case ModeSingle:
		return "single"
	case ModeMulti:
		return "multi"
	default:
		return "unknown"
	}
}

// ExpandState is the slice of the adapter contract the expandable behavior
// drives. Expand and Collapse report how many rows were inserted or removed;
// both return 0 when the position cannot change state (out of range, not a
// branch, already in the requested state).
type ExpandState interface {
	IsExpanded(position int) bool
	IsSelected(position int) bool
	IsEnabled(position int) bool
	Expand(position int) int
	Collapse(position int) int
}

// SelectState is the slice of the adapter contract the base tap and
// long-press handling drives.
type SelectState interface {
	IsSelected(position int) bool
	IsEnabled(position int) bool
	SelectionMode() SelectionMode
	ToggleSelection(position int)
}

// Adapter is the full collaborator a holder binds against. Implementations
// own all row state; holders only consult and command it.
type Adapter interface {
	ExpandState
	SelectState
}

// View is the visual surface a holder is attached to. Holders never draw;
// they carry the reference so hosts can route gestures and reuse the view's
// rendering when assembling rows.
type View interface {
	Render(width int) string
}
