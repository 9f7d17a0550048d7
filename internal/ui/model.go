// Package ui implements the dual-pane browser on Bubble Tea. All filesystem
// mutations go through the engine; the UI only navigates, collects input and
// refreshes panes when operations report the directories they touched.
package ui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/duofm/duofm/internal/config"
	"github.com/duofm/duofm/internal/engine"
	"github.com/duofm/duofm/internal/fsx"
	"github.com/duofm/duofm/internal/nav"
	"github.com/duofm/duofm/internal/ui/keys"
	"github.com/duofm/duofm/internal/ui/styles"
)

// viewMode selects what the key handler routes to.
type viewMode int

const (
	modeBrowse viewMode = iota
	modePrompt
	modeConfirm
)

// Model is the main UI model following the Bubble Tea pattern.
type Model struct {
	engine *engine.Engine
	config config.Config

	panes  [2]*pane
	active int

	mode    viewMode
	prompt  *prompt
	pending string // path awaiting delete confirmation

	keyMap *keys.KeyMap
	styles *styles.Styles
	help   help.Model

	showHidden bool
	exclude    []string

	flash    string
	flashErr bool
	flashSeq int

	width  int
	height int

	err error
}

// NewModel creates the dual-pane model with both panes showing startDir.
func NewModel(eng *engine.Engine, cfg config.Config, startDir string) (Model, error) {
	opts := listOptions(cfg.UI.ShowHidden, cfg.UI.Exclude.Globs)

	left, err := nav.New(startDir, opts)
	if err != nil {
		return Model{}, err
	}
	right, err := nav.New(startDir, opts)
	if err != nil {
		return Model{}, err
	}

	return Model{
		engine:     eng,
		config:     cfg,
		panes:      [2]*pane{newPane(left), newPane(right)},
		keyMap:     keys.NewKeyMap(),
		styles:     styles.New(cfg.UI),
		help:       help.New(),
		showHidden: cfg.UI.ShowHidden,
		exclude:    cfg.UI.Exclude.Globs,
	}, nil
}

func listOptions(showHidden bool, excludeGlobs []string) fsx.ListOptions {
	return fsx.ListOptions{
		ShowHidden: showHidden,
		Exclude:    fsx.CompileGlobs(excludeGlobs),
	}
}

// Init satisfies tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Err returns the fatal error that ended the session, if any.
func (m Model) Err() error {
	return m.err
}

func (m *Model) activePane() *pane   { return m.panes[m.active] }
func (m *Model) inactivePane() *pane { return m.panes[1-m.active] }

// refreshShowing re-reads every pane that displays one of dirs.
func (m *Model) refreshShowing(dirs []string) {
	for _, p := range m.panes {
		for _, d := range dirs {
			if p.nav.Shows(d) {
				_ = p.refresh()
				break
			}
		}
	}
}

// setFlash replaces the status flash and returns the command that clears it.
func (m *Model) setFlash(text string, isErr bool) tea.Cmd {
	m.flash = text
	m.flashErr = isErr
	m.flashSeq++
	return flashTimeoutCmd(m.flashSeq)
}
