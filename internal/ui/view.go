package ui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/duofm/duofm/internal/clipboard"
)

const (
	minWidth  = 40
	minHeight = 8
)

// View renders the whole screen: two panes, the status line, the flash and
// either the help or the active modal.
func (m Model) View() string {
	if m.err != nil {
		return ""
	}
	if m.width < minWidth || m.height < minHeight {
		return "window too small"
	}

	marked := m.markedPaths()

	// Two panes split the width; borders and padding eat 4 columns each
	paneWidth := m.width/2 - 4
	paneHeight := m.height - 5

	left := m.panes[0].render(m.styles, paneWidth, paneHeight, m.active == 0, marked)
	right := m.panes[1].render(m.styles, paneWidth, paneHeight, m.active == 1, marked)
	body := lipgloss.JoinHorizontal(lipgloss.Top, left, right)

	var b strings.Builder
	b.WriteString(body)
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	b.WriteString("\n")

	switch m.mode {
	case modePrompt:
		b.WriteString(m.prompt.view())
	case modeConfirm:
		b.WriteString(m.confirmLine())
	default:
		if m.flash != "" {
			if m.flashErr {
				b.WriteString(m.styles.FlashError.Render(m.flash))
			} else {
				b.WriteString(m.styles.Flash.Render(m.flash))
			}
		} else {
			b.WriteString(m.styles.Help.Render(m.help.View(m.keyMap)))
		}
	}

	return b.String()
}

// markedPaths returns the clipboard contents as a set, for highlighting
// entries pending a paste.
func (m Model) markedPaths() map[string]bool {
	snap := m.engine.Clipboard().Snapshot()
	if snap.Mode == clipboard.ModeEmpty {
		return nil
	}
	marked := make(map[string]bool, len(snap.Paths))
	for _, p := range snap.Paths {
		marked[p] = true
	}
	return marked
}

func (m Model) statusLine() string {
	var parts []string

	snap := m.engine.Clipboard().Snapshot()
	if snap.Mode != clipboard.ModeEmpty {
		parts = append(parts, fmt.Sprintf("%s: %d item(s)", snap.Mode, len(snap.Paths)))
	}

	h := m.engine.History()
	if h.CanUndo() {
		parts = append(parts, "undo available")
	}
	if h.CanRedo() {
		parts = append(parts, "redo available")
	}

	if entry, ok := m.activePane().selected(); ok {
		parts = append(parts, fmt.Sprintf("%s  %s  %s",
			entry.TypeLabel(), entry.FormatSize(), entry.FormatModTime()))
	}

	return m.styles.Status.Render(strings.Join(parts, " | "))
}

func (m Model) confirmLine() string {
	return fmt.Sprintf("Delete %s? (y/n)", filepath.Base(m.pending))
}
