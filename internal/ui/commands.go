package ui

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/duofm/duofm/internal/clipboard"
	"github.com/duofm/duofm/internal/engine"
	"github.com/duofm/duofm/internal/opener"
	"github.com/samber/lo"
)

// Long operations run as tea commands so the event loop stays responsive.
// The engine's in-flight guard already rejects overlapping mutations, so a
// second keypress while one runs surfaces ErrOperationInFlight as a flash.

func createFileCmd(e *engine.Engine, dir, name string) tea.Cmd {
	return func() tea.Msg {
		_, err := e.CreateFile(context.Background(), dir, name)
		return opDoneMsg{
			desc: fmt.Sprintf("created %s", name),
			dirs: []string{dir},
			err:  err,
		}
	}
}

func createFolderCmd(e *engine.Engine, dir, name string) tea.Cmd {
	return func() tea.Msg {
		_, err := e.CreateFolder(context.Background(), dir, name)
		return opDoneMsg{
			desc: fmt.Sprintf("created %s/", name),
			dirs: []string{dir},
			err:  err,
		}
	}
}

func renameCmd(e *engine.Engine, path, newName string) tea.Cmd {
	return func() tea.Msg {
		_, err := e.Rename(context.Background(), path, newName)
		return opDoneMsg{
			desc: fmt.Sprintf("renamed to %s", newName),
			dirs: []string{filepath.Dir(path)},
			err:  err,
		}
	}
}

func deleteCmd(e *engine.Engine, path string) tea.Cmd {
	return func() tea.Msg {
		err := e.Delete(context.Background(), path)
		return opDoneMsg{
			desc: fmt.Sprintf("deleted %s", filepath.Base(path)),
			dirs: []string{filepath.Dir(path)},
			err:  err,
		}
	}
}

func duplicateCmd(e *engine.Engine, path string) tea.Cmd {
	return func() tea.Msg {
		dst, err := e.Duplicate(context.Background(), path)
		return opDoneMsg{
			desc: fmt.Sprintf("duplicated as %s", filepath.Base(dst)),
			dirs: []string{filepath.Dir(path)},
			err:  err,
		}
	}
}

func moveCmd(e *engine.Engine, srcPath, destDir string) tea.Cmd {
	return func() tea.Msg {
		_, err := e.Move(context.Background(), srcPath, destDir)
		return opDoneMsg{
			desc: fmt.Sprintf("moved %s", filepath.Base(srcPath)),
			dirs: []string{filepath.Dir(srcPath), destDir},
			err:  err,
		}
	}
}

func pasteCmd(e *engine.Engine, snap clipboard.State, destDir string) tea.Cmd {
	return func() tea.Msg {
		results, err := e.Paste(context.Background(), destDir)

		// Cut sources leave their parent directories, refresh those too
		dirs := []string{destDir}
		if snap.Mode == clipboard.ModeCut {
			dirs = append(dirs, lo.Map(snap.Paths, func(p string, _ int) string {
				return filepath.Dir(p)
			})...)
		}
		return opDoneMsg{
			desc: fmt.Sprintf("pasted %d item(s)", len(results)),
			dirs: lo.Uniq(dirs),
			err:  err,
		}
	}
}

func undoCmd(e *engine.Engine) tea.Cmd {
	return func() tea.Msg {
		cmd, err := e.Undo(context.Background())
		if err != nil {
			return opDoneMsg{err: err}
		}
		return opDoneMsg{
			desc: fmt.Sprintf("undid %s", cmd.Describe()),
			dirs: cmd.AffectedDirs(),
		}
	}
}

func redoCmd(e *engine.Engine) tea.Cmd {
	return func() tea.Msg {
		cmd, err := e.Redo(context.Background())
		if err != nil {
			return opDoneMsg{err: err}
		}
		return opDoneMsg{
			desc: fmt.Sprintf("redid %s", cmd.Describe()),
			dirs: cmd.AffectedDirs(),
		}
	}
}

func openCmd(path string) tea.Cmd {
	return func() tea.Msg {
		err := opener.Open(path)
		return opDoneMsg{
			desc: fmt.Sprintf("opened %s", filepath.Base(path)),
			err:  err,
		}
	}
}

func terminalCmd(dir string) tea.Cmd {
	return func() tea.Msg {
		err := opener.OpenTerminal(dir)
		return opDoneMsg{
			desc: "spawned terminal",
			err:  err,
		}
	}
}

// flashTimeoutCmd schedules the flash to clear; seq guards against clearing
// a newer flash.
func flashTimeoutCmd(seq int) tea.Cmd {
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg {
		return flashClearMsg{seq: seq}
	})
}
