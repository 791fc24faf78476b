package main

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/iw2rmb/lined/editor"
	"github.com/iw2rmb/lined/internal/config"
)

type appKeyMap struct {
	editor.KeyMap
	Quit key.Binding
	Help key.Binding
}

func (km appKeyMap) ShortHelp() []key.Binding {
	return append(km.KeyMap.ShortHelp(), km.Help, km.Quit)
}

func (km appKeyMap) FullHelp() [][]key.Binding {
	return append(km.KeyMap.FullHelp(), []key.Binding{km.Help, km.Quit})
}

type app struct {
	editor editor.Model
	help   help.Model
	keys   appKeyMap

	width, height int
}

func newApp(cfg *config.Config, logger *zap.Logger) app {
	keys := appKeyMap{
		KeyMap: editor.DefaultKeyMap(),
		Quit:   key.NewBinding(key.WithKeys("ctrl+c", "ctrl+q"), key.WithHelp("ctrl+q", "quit")),
		Help:   key.NewBinding(key.WithKeys("ctrl+g"), key.WithHelp("ctrl+g", "help")),
	}

	scroll := editor.ScrollAllowManual
	if cfg.TUI.Scroll == "follow-cursor" {
		scroll = editor.ScrollFollowCursorOnly
	}

	ed := editor.New(editor.Config{
		ShowLineNums: cfg.TUI.ShowLineNums,
		Style:        styleFromConfig(cfg.TUI.Colors),
		ScrollPolicy: scroll,
		KeyMap:       keys.KeyMap,
		Strict:       cfg.Session.Strict,
		Logger:       logger,
	})
	return app{editor: ed, help: help.New(), keys: keys}
}

func styleFromConfig(c config.ColorConfig) editor.Style {
	st := editor.DefaultStyle()
	if c.LineNum != "" {
		st.Gutter = st.Gutter.Foreground(lipgloss.Color(c.LineNum))
		st.LineNum = st.LineNum.Foreground(lipgloss.Color(c.LineNum))
	}
	if c.LineNumActive != "" {
		st.LineNumActive = st.LineNumActive.Foreground(lipgloss.Color(c.LineNumActive))
	}
	if c.Control != "" {
		st.Control = st.Control.Foreground(lipgloss.Color(c.Control))
	}
	return st
}

func (a app) Init() tea.Cmd { return nil }

func (a app) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		return a.resize(), nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, a.keys.Quit):
			return a, tea.Quit
		case key.Matches(msg, a.keys.Help):
			a.help.ShowAll = !a.help.ShowAll
			return a.resize(), nil
		}
	}

	var cmd tea.Cmd
	a.editor, cmd = a.editor.Update(msg)
	return a, cmd
}

// resize gives the editor whatever the help footer leaves.
func (a app) resize() app {
	a.help.Width = a.width
	footer := lipgloss.Height(a.help.View(a.keys))
	a.editor = a.editor.SetSize(a.width, a.height-footer)
	return a
}

func (a app) View() string {
	return lipgloss.JoinVertical(lipgloss.Left, a.editor.View(), a.help.View(a.keys))
}

func runTUI(ctx context.Context, cfg *config.Config, logger *zap.Logger, stdout io.Writer) error {
	p := tea.NewProgram(newApp(cfg, logger),
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("terminal editor: %w", err)
	}

	a, ok := final.(app)
	if !ok {
		return nil
	}
	if err := a.editor.Err(); err != nil {
		return err
	}
	doc := a.editor.Document()
	logger.Debug("tui done", zap.Uint64("version", doc.Version()), zap.Int("lines", doc.LineCount()))
	if cfg.TUI.PrintOnExit {
		if err := doc.PrintDocument(stdout); err != nil {
			return fmt.Errorf("print document: %w", err)
		}
	}
	return nil
}
