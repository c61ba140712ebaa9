package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"nestview/internal/config"
	"nestview/internal/flexlist"
)

// Model is the bubbletea model of the outline browser. The adapter owns all
// row state; the model owns the cursor, the viewport, the search input, and
// the holder pool that routes gestures.
type Model struct {
	state         state
	cfg           config.Settings
	keys          KeyMap
	theme         themeStyles
	statusMsg     string
	width, height int

	adapter  *flexlist.Adapter
	docTitle string

	viewport viewport.Model
	cursor   int

	search  SearchState
	gesture gestureState
	grab    grabState
	help    help.Model

	// pool and fx are pointers so every copy of the model shares them; tea
	// passes the model by value through Update.
	pool *holderPool
	fx   *effects
}

// New builds the browse model for an adapter.
func New(adapter *flexlist.Adapter, docTitle string, cfg config.Settings) Model {
	m := Model{
		state:    stateBrowse,
		cfg:      cfg,
		keys:     NewKeyMap(cfg.KeyMap),
		theme:    newThemeStyles(cfg.Theme),
		adapter:  adapter,
		docTitle: docTitle,
		help:     help.New(),
		fx:       &effects{},
	}

	si := textinput.New()
	si.Placeholder = "fuzzy search…"
	si.CharLimit = 200
	si.Width = 40
	m.search.input = si

	m.pool = newHolderPool(adapter, cfg.Behavior, m.fx)
	m.pool.rebind()

	m.statusMsg = fmt.Sprintf("%d items loaded", adapter.Len())
	return m
}

func (m Model) Init() tea.Cmd { return nil }

// itemsLen returns the count of visible rows.
func (m *Model) itemsLen() int { return m.adapter.VisibleLen() }

// itemAt returns the item at the given visible row, zero when out of range.
func (m *Model) itemAt(pos int) flexlist.Item {
	it, _ := m.adapter.ItemAt(pos)
	return it
}
