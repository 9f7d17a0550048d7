package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/duofm/duofm/internal/config"
	"github.com/duofm/duofm/internal/engine"
)

// Run starts the dual-pane browser and blocks until the user quits.
func Run(eng *engine.Engine, cfg config.Config, startDir string) error {
	m, err := NewModel(eng, cfg, startDir)
	if err != nil {
		return err
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return err
	}

	if fm, ok := final.(Model); ok {
		return fm.Err()
	}
	return nil
}
