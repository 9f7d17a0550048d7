package ui

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles all UI state updates based on incoming messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		slog.Debug("key pressed", "key", msg.String())
		switch m.mode {
		case modeBrowse:
			return m.updateBrowse(msg)
		case modePrompt:
			return m.updatePrompt(msg)
		case modeConfirm:
			return m.updateConfirm(msg)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case opDoneMsg:
		m.refreshShowing(msg.dirs)
		if msg.err != nil {
			return m, m.setFlash(msg.err.Error(), true)
		}
		return m, m.setFlash(msg.desc, false)

	case flashClearMsg:
		if msg.seq == m.flashSeq {
			m.flash = ""
		}
		return m, nil

	case errorMsg:
		m.err = msg.err
		return m, tea.Quit
	}

	return m, nil
}

// updateBrowse handles keys in the dual-pane view
func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	p := m.activePane()
	km := m.keyMap

	switch {
	case key.Matches(msg, km.Common.Quit):
		return m, tea.Quit

	case key.Matches(msg, km.Common.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, km.Browse.CursorUp):
		p.moveCursor(-1)
		return m, nil

	case key.Matches(msg, km.Browse.CursorDown):
		p.moveCursor(1)
		return m, nil

	case key.Matches(msg, km.Browse.GotoTop):
		p.gotoTop()
		return m, nil

	case key.Matches(msg, km.Browse.GotoBottom):
		p.gotoBottom()
		return m, nil

	case key.Matches(msg, km.Browse.SwitchPane):
		m.active = 1 - m.active
		return m, nil

	case key.Matches(msg, km.Browse.Enter):
		entry, ok := p.selected()
		if !ok {
			return m, nil
		}
		if entry.IsDir {
			if err := p.nav.NavigateTo(entry.Path); err != nil {
				return m, m.setFlash(err.Error(), true)
			}
			p.gotoTop()
			return m, nil
		}
		return m, openCmd(entry.Path)

	case key.Matches(msg, km.Browse.Up):
		if err := p.nav.Up(); err != nil {
			return m, m.setFlash(err.Error(), true)
		}
		p.gotoTop()
		return m, nil

	case key.Matches(msg, km.Browse.Back):
		if err := p.nav.Back(); err != nil {
			return m, m.setFlash(err.Error(), true)
		}
		p.clamp()
		return m, nil

	case key.Matches(msg, km.Browse.Forward):
		if err := p.nav.Forward(); err != nil {
			return m, m.setFlash(err.Error(), true)
		}
		p.clamp()
		return m, nil

	case key.Matches(msg, km.Browse.Refresh):
		if err := p.refresh(); err != nil {
			return m, m.setFlash(err.Error(), true)
		}
		return m, nil

	case key.Matches(msg, km.Browse.Hidden):
		m.showHidden = !m.showHidden
		opts := listOptions(m.showHidden, m.exclude)
		for _, pane := range m.panes {
			_ = pane.nav.SetOptions(opts)
			pane.clamp()
		}
		return m, nil

	case key.Matches(msg, km.Browse.Copy):
		entry, ok := p.selected()
		if !ok {
			return m, nil
		}
		m.engine.Clipboard().Copy([]string{entry.Path})
		return m, m.setFlash("copied "+entry.Name, false)

	case key.Matches(msg, km.Browse.Cut):
		entry, ok := p.selected()
		if !ok {
			return m, nil
		}
		m.engine.Clipboard().Cut([]string{entry.Path})
		return m, m.setFlash("cut "+entry.Name, false)

	case key.Matches(msg, km.Browse.Paste):
		snap := m.engine.Clipboard().Snapshot()
		return m, pasteCmd(m.engine, snap, p.nav.Current())

	case key.Matches(msg, km.Browse.Delete):
		entry, ok := p.selected()
		if !ok {
			return m, nil
		}
		if m.config.Core.Delete.Confirm {
			m.mode = modeConfirm
			m.pending = entry.Path
			return m, nil
		}
		return m, deleteCmd(m.engine, entry.Path)

	case key.Matches(msg, km.Browse.Rename):
		entry, ok := p.selected()
		if !ok {
			return m, nil
		}
		m.mode = modePrompt
		m.prompt = newPrompt(promptRename, "Rename to:", entry.Name, entry.Path)
		return m, nil

	case key.Matches(msg, km.Browse.NewFile):
		m.mode = modePrompt
		m.prompt = newPrompt(promptNewFile, "New file:", "", "")
		return m, nil

	case key.Matches(msg, km.Browse.NewFolder):
		m.mode = modePrompt
		m.prompt = newPrompt(promptNewFolder, "New folder:", "", "")
		return m, nil

	case key.Matches(msg, km.Browse.Duplicate):
		entry, ok := p.selected()
		if !ok {
			return m, nil
		}
		return m, duplicateCmd(m.engine, entry.Path)

	case key.Matches(msg, km.Browse.MoveOver):
		entry, ok := p.selected()
		if !ok {
			return m, nil
		}
		return m, moveCmd(m.engine, entry.Path, m.inactivePane().nav.Current())

	case key.Matches(msg, km.Browse.Undo):
		return m, undoCmd(m.engine)

	case key.Matches(msg, km.Browse.Redo):
		return m, redoCmd(m.engine)

	case key.Matches(msg, km.Browse.Open):
		entry, ok := p.selected()
		if !ok {
			return m, nil
		}
		return m, openCmd(entry.Path)

	case key.Matches(msg, km.Browse.Terminal):
		return m, terminalCmd(p.nav.Current())
	}

	return m, nil
}

// updatePrompt handles keys while the name input is open
func (m Model) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	km := m.keyMap

	switch {
	case key.Matches(msg, km.Prompt.Cancel):
		m.mode = modeBrowse
		m.prompt = nil
		return m, nil

	case key.Matches(msg, km.Prompt.Accept):
		if !m.prompt.valid() {
			return m, nil
		}
		name := m.prompt.value()
		kind := m.prompt.kind
		target := m.prompt.target
		dir := m.activePane().nav.Current()

		m.mode = modeBrowse
		m.prompt = nil

		switch kind {
		case promptNewFile:
			return m, createFileCmd(m.engine, dir, name)
		case promptNewFolder:
			return m, createFolderCmd(m.engine, dir, name)
		case promptRename:
			return m, renameCmd(m.engine, target, name)
		}
		return m, nil
	}

	cmd := m.prompt.update(msg)
	return m, cmd
}

// updateConfirm handles the delete confirmation dialog
func (m Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	km := m.keyMap

	switch {
	case key.Matches(msg, km.Confirm.Yes):
		path := m.pending
		m.mode = modeBrowse
		m.pending = ""
		return m, deleteCmd(m.engine, path)

	case key.Matches(msg, km.Confirm.No):
		m.mode = modeBrowse
		m.pending = ""
		return m, nil

	case key.Matches(msg, km.Common.Quit):
		return m, tea.Quit
	}

	return m, nil
}
