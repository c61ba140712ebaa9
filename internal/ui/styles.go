package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"nestview/internal/config"
	"nestview/internal/flexlist"
)

// --- UI Styles ---
var (
	titleStyle      = lipgloss.NewStyle().Bold(true).Underline(true)
	subtleStyle     = lipgloss.NewStyle().Faint(true)
	warnStyle       = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	dividerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	cursorLineStyle = lipgloss.NewStyle().Background(lipgloss.Color("#2A2B3D"))
	disabledStyle   = lipgloss.NewStyle().Faint(true).Strikethrough(true)
	stickyStyle     = lipgloss.NewStyle().Bold(true).Background(lipgloss.Color("236"))

	// markers for the two row kinds (colored letters)
	symbolBranch = fgSymbol("#3AC4BA", "B")
	symbolLeaf   = fgSymbol("#8942E1", "·")
)

// themeStyles carries the styles derived from the configurable theme colors.
type themeStyles struct {
	cursorBar  lipgloss.Style
	markBar    lipgloss.Style
	markNested lipgloss.Style
	grabBar    lipgloss.Style
}

func newThemeStyles(cfg config.ThemeConfig) themeStyles {
	return themeStyles{
		cursorBar:  lipgloss.NewStyle().Background(lipgloss.Color(cfg.Accent)),
		markBar:    lipgloss.NewStyle().Background(lipgloss.Color(cfg.Marker)),
		markNested: lipgloss.NewStyle().Foreground(lipgloss.Color(cfg.Marker)),
		grabBar:    lipgloss.NewStyle().Background(lipgloss.Color(cfg.Accent)).Foreground(lipgloss.Color("0")),
	}
}

func fgSymbol(col, ch string) string {
	s := lipgloss.NewStyle().Foreground(lipgloss.Color(col)).Render(ch)
	const reset = "\x1b[0m"
	return strings.TrimSuffix(s, reset) + "\x1b[39m"
}

// displayItem renders the label of one outline row.
func displayItem(it flexlist.Item) string {
	sym := symbolLeaf
	if it.Branch {
		sym = symbolBranch
	}
	title := it.Title
	if it.Disabled {
		title = disabledStyle.Render(title)
	}
	if it.Note != "" {
		return fmt.Sprintf("%s %s  %s", sym, title, subtleStyle.Render("("+it.Note+")"))
	}
	return fmt.Sprintf("%s %s", sym, title)
}

// truncateRow cuts a rendered row to the given cell width without tearing
// escape sequences apart.
func truncateRow(line string, width int) string {
	if width <= 0 {
		return line
	}
	return ansi.Truncate(line, width, "…")
}
