// Package styles builds the lipgloss styles for the dual-pane view from the
// user's configured colors.
package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/duofm/duofm/internal/config"
)

// Styles holds the rendered styles for one UI session.
type Styles struct {
	ActivePane   lipgloss.Style
	InactivePane lipgloss.Style
	PaneTitle    lipgloss.Style
	Cursor       lipgloss.Style
	Marked       lipgloss.Style
	Dir          lipgloss.Style
	Status       lipgloss.Style
	Flash        lipgloss.Style
	FlashError   lipgloss.Style
	Help         lipgloss.Style
}

// New builds the style set from the configured palette.
func New(cfg config.UI) *Styles {
	active := lipgloss.Color(cfg.Style.ActiveBorder)
	inactive := lipgloss.Color(cfg.Style.InactiveBorder)
	cursor := lipgloss.Color(cfg.Style.Cursor)
	selected := lipgloss.Color(cfg.Style.Selected)

	return &Styles{
		ActivePane: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(active).
			Padding(0, 1),
		InactivePane: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(inactive).
			Padding(0, 1),
		PaneTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(active),
		Cursor: lipgloss.NewStyle().
			Foreground(cursor).
			Bold(true),
		Marked: lipgloss.NewStyle().
			Foreground(selected),
		Dir: lipgloss.NewStyle().
			Bold(true),
		Status: lipgloss.NewStyle().
			Faint(true),
		Flash: lipgloss.NewStyle().
			Foreground(selected),
		FlashError: lipgloss.NewStyle().
			Foreground(lipgloss.Color("1")).
			Bold(true),
		Help: lipgloss.NewStyle().
			Faint(true),
	}
}
