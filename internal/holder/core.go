package holder

// Unbound is the position of a holder that is not attached to any row.
// Adapter queries for it report false, so an unbound holder is inert.
const Unbound = -1

// Core carries what every holder needs: the hosting view, the adapter
// reference, and the bound row position. The adapter is shared, never owned;
// rebinding a holder to another row is a plain Bind call.
type Core struct {
	view     View
	adapter  Adapter
	position int
	sticky   bool
}

// NewCore returns a holder core for the given view and adapter.
func NewCore(view View, adapter Adapter) Core {
	return Core{view: view, adapter: adapter, position: Unbound}
}

// NewStickyCore is NewCore for holders that can be pinned as sticky headers.
func NewStickyCore(view View, adapter Adapter) Core {
	c := NewCore(view, adapter)
	c.sticky = true
	return c
}

// Bind attaches the holder to a row position. Hosts call this every time the
// visible row set changes.
func (c *Core) Bind(position int) { c.position = position }

// Position reports the bound row position, or Unbound.
func (c *Core) Position() int { return c.position }

// View returns the hosting view.
func (c *Core) View() View { return c.view }

// Sticky reports whether this holder may be pinned as a sticky header.
func (c *Core) Sticky() bool { return c.sticky }
