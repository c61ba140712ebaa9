package ui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"

	"nestview/internal/config"
)

// --- Model / State ---
type state int

const (
	stateBrowse state = iota
	stateHelp
	stateQuit
)

// SearchState tracks the search input and the applied query.
type SearchState struct {
	searching bool
	input     textinput.Model
	query     string
}

// gestureState tracks an in-flight mouse gesture. A press remembers where and
// when it landed; motion to another row turns the press into a drag, release
// on the same row turns it into a tap or long-press depending on duration.
type gestureState struct {
	pressed   bool
	pressRow  int
	pressedAt time.Time

	dragging bool
	dragID   int // item ID of the grabbed row, stable across reflows
}

// grabState tracks a keyboard reorder (grab, move among siblings, drop).
type grabState struct {
	active bool
	id     int // item ID of the grabbed row
}

// KeyMap defines the keybindings for the browse screen.
type KeyMap struct {
	Up          key.Binding
	Down        key.Binding
	PageUp      key.Binding
	PageDown    key.Binding
	Top         key.Binding
	Bottom      key.Binding
	Expand      key.Binding
	Collapse    key.Binding
	ExpandAll   key.Binding
	CollapseAll key.Binding
	Activate    key.Binding
	Select      key.Binding
	SelectMode  key.Binding
	Grab        key.Binding
	Search      key.Binding
	Clear       key.Binding
	Yank        key.Binding
	Help        key.Binding
	Quit        key.Binding
}

// ShortHelp returns the bindings shown in the footer.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Activate, k.Select, k.Search, k.Help, k.Quit}
}

// FullHelp returns all bindings for the help overlay.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown, k.Top, k.Bottom},
		{k.Expand, k.Collapse, k.ExpandAll, k.CollapseAll, k.Activate},
		{k.Select, k.SelectMode, k.Grab, k.Yank},
		{k.Search, k.Clear, k.Help, k.Quit},
	}
}

// NewKeyMap creates a KeyMap from the configuration.
func NewKeyMap(cfg config.KeyMapConfig) KeyMap {
	bind := func(keys, help string) key.Binding {
		return key.NewBinding(
			key.WithKeys(splitKeys(keys)...),
			key.WithHelp(keys, help),
		)
	}
	km := KeyMap{
		Up:          bind(cfg.Up, "up"),
		Down:        bind(cfg.Down, "down"),
		PageUp:      bind(cfg.PageUp, "half page up"),
		PageDown:    bind(cfg.PageDown, "half page down"),
		Top:         bind(cfg.Top, "top"),
		Bottom:      bind(cfg.Bottom, "bottom"),
		Expand:      bind(cfg.Expand, "expand"),
		Collapse:    bind(cfg.Collapse, "collapse / to parent"),
		ExpandAll:   bind(cfg.ExpandAll, "expand all"),
		CollapseAll: bind(cfg.CollapseAll, "collapse all"),
		Activate:    bind(cfg.Activate, "tap row"),
		Select:      bind(cfg.Select, "select"),
		SelectMode:  bind(cfg.SelectMode, "selection mode"),
		Grab:        bind(cfg.Grab, "grab / drop"),
		Search:      bind(cfg.Search, "search"),
		Clear:       bind(cfg.Clear, "clear"),
		Yank:        bind(cfg.Yank, "yank paths"),
		Help:        bind(cfg.Help, "help"),
		Quit:        bind(cfg.Quit, "quit"),
	}
	// Arrow keys always work alongside the configured movement keys.
	km.Up.SetKeys(append(km.Up.Keys(), "up")...)
	km.Down.SetKeys(append(km.Down.Keys(), "down")...)
	return km
}

// splitKeys splits a comma-separated key spec from the config file. "space"
// is spelled out in config files but arrives as a literal blank key.
func splitKeys(s string) []string {
	parts := strings.Split(s, ",")
	keys := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "space" {
			p = " "
		}
		if p != "" {
			keys = append(keys, p)
		}
	}
	if len(keys) == 0 {
		keys = []string{s}
	}
	return keys
}
