package main

import (
	"fmt"
	"log"
	"os"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"

	"nestview/internal/config"
	"nestview/internal/flexlist"
	"nestview/internal/infra/logx"
	"nestview/internal/outline"
	"nestview/internal/ui"
)

var cli struct {
	Outline string `arg:"" optional:"" type:"existingfile" help:"Outline YAML file to browse. Uses the built-in sample when omitted."`
	Config  string `help:"Alternate config file path." type:"path"`
	Debug   bool   `help:"Write a rotated debug log (nestview.log)."`
	NoMouse bool   `help:"Disable mouse support."`
}

func main() {
	ktx := kong.Parse(&cli,
		kong.Name("nestview"),
		kong.Description("Terminal outline browser."),
	)

	// Enable debug logging when asked for, or when DEBUG is set (handy while
	// the TUI owns the terminal).
	if cli.Debug || len(os.Getenv("DEBUG")) > 0 {
		w := logx.SetFile("nestview.log")
		logx.SetMinLevel(logx.LevelDebug)
		log.SetFlags(0)
		log.SetOutput(logx.StdlogWriter(logx.LevelDebug, w))
	}

	store, err := config.Load(cli.Config)
	ktx.FatalIfErrorf(err)
	cfg := store.Settings
	if cli.NoMouse {
		cfg.Gestures.Mouse = false
	}

	doc := outline.Sample()
	if cli.Outline != "" {
		doc, err = outline.Load(cli.Outline)
		ktx.FatalIfErrorf(err)
	}

	adapter, err := flexlist.FromDocument(doc, flexlist.Options{
		StartupDepth:         cfg.Behavior.StartupDepth,
		AutoCollapseSiblings: cfg.Behavior.AutoCollapseSiblings,
		Mode:                 selectionMode(cfg.Behavior.SelectionMode),
	})
	ktx.FatalIfErrorf(err)

	logx.Infow("starting", map[string]any{"items": adapter.Len(), "outline": cli.Outline})

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.Gestures.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	if _, err := tea.NewProgram(ui.New(adapter, doc.Title, cfg), opts...).Run(); err != nil {
		fmt.Println("error:", err)
		os.Exit(1)
	}
}

func selectionMode(s string) flexlist.SelectionOption {
	switch s {
	case "idle":
		return flexlist.SelectionIdle
	case "single":
		return flexlist.SelectionSingle
	default:
		return flexlist.SelectionMulti
	}
}
