// Package engine executes file operations against the filesystem, recording
// each completed mutation in the operation history and consulting the
// clipboard for paste. All mutating operations validate their inputs before
// touching the filesystem and share a single process-wide in-flight guard.
package engine

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/duofm/duofm/internal/clipboard"
	"github.com/duofm/duofm/internal/fsx"
	"github.com/duofm/duofm/internal/history"
	"github.com/duofm/duofm/internal/trash"
	"github.com/rs/xid"
)

// Engine performs create/delete/rename/duplicate/move/copy/paste. Clipboard
// and trash storage are injected at construction; the operation history is
// owned by the engine, which also serves as its applier for undo/redo.
type Engine struct {
	clipboard *clipboard.Manager
	trash     *trash.Storage
	history   *history.History

	// inflight serializes mutating operations across both panes
	inflight sync.Mutex
}

// New creates an Engine around the given clipboard and holding area. The
// history is bounded to historyCapacity commands.
func New(cb *clipboard.Manager, store *trash.Storage, historyCapacity int) *Engine {
	e := &Engine{
		clipboard: cb,
		trash:     store,
	}
	e.history = history.New(historyCapacity, e)
	return e
}

// History exposes the operation history for UI state (CanUndo/CanRedo).
func (e *Engine) History() *history.History {
	return e.history
}

// Clipboard exposes the clipboard for UI state.
func (e *Engine) Clipboard() *clipboard.Manager {
	return e.clipboard
}

func (e *Engine) begin() error {
	if !e.inflight.TryLock() {
		return ErrOperationInFlight
	}
	return nil
}

func (e *Engine) end() {
	e.inflight.Unlock()
}

// CreateFile creates an empty file named name inside dir.
func (e *Engine) CreateFile(ctx context.Context, dir, name string) (string, error) {
	if err := e.begin(); err != nil {
		return "", err
	}
	defer e.end()

	target := filepath.Join(dir, name)
	if fsx.Exists(target) {
		return "", newOpError("create", target, fsx.ErrAlreadyExists)
	}

	f, err := fsx.CreateExclusive(target, 0644)
	if err != nil {
		return "", newOpError("create", target, fsx.Classify(err))
	}
	f.Close()

	e.push(&history.Command{
		ID:   xid.New().String(),
		Kind: history.KindCreate,
		Dest: target,
	})
	slog.Debug("created file", "path", target)
	return target, nil
}

// CreateFolder creates an empty directory named name inside dir.
func (e *Engine) CreateFolder(ctx context.Context, dir, name string) (string, error) {
	if err := e.begin(); err != nil {
		return "", err
	}
	defer e.end()

	target := filepath.Join(dir, name)
	if fsx.Exists(target) {
		return "", newOpError("create", target, fsx.ErrAlreadyExists)
	}

	if err := os.Mkdir(target, 0755); err != nil {
		return "", newOpError("create", target, fsx.Classify(err))
	}

	e.push(&history.Command{
		ID:    xid.New().String(),
		Kind:  history.KindCreate,
		Dest:  target,
		IsDir: true,
	})
	slog.Debug("created folder", "path", target)
	return target, nil
}

// Rename gives the entry at path a new base name within its directory.
func (e *Engine) Rename(ctx context.Context, path, newName string) (string, error) {
	if err := e.begin(); err != nil {
		return "", err
	}
	defer e.end()

	info, err := os.Lstat(path)
	if err != nil {
		return "", newOpError("rename", path, fsx.Classify(err))
	}

	newPath := filepath.Join(filepath.Dir(path), newName)
	if newPath == path {
		return path, nil
	}
	if fsx.Exists(newPath) {
		return "", newOpError("rename", newPath, fsx.ErrAlreadyExists)
	}

	if err := os.Rename(path, newPath); err != nil {
		return "", newOpError("rename", path, fsx.Classify(err))
	}

	e.push(&history.Command{
		ID:     xid.New().String(),
		Kind:   history.KindRename,
		Source: path,
		Dest:   newPath,
		IsDir:  info.IsDir(),
	})
	slog.Debug("renamed", "from", path, "to", newPath)
	return newPath, nil
}

// Delete moves the entry at path into the holding area, from which it can
// be restored by undo.
func (e *Engine) Delete(ctx context.Context, path string) error {
	if err := e.begin(); err != nil {
		return err
	}
	defer e.end()

	if !fsx.Exists(path) {
		return newOpError("delete", path, fsx.ErrNotFound)
	}

	entry, err := e.trash.Put(path)
	if err != nil {
		return newOpError("delete", path, err)
	}

	e.push(&history.Command{
		ID:     xid.New().String(),
		Kind:   history.KindDelete,
		Source: entry.OriginalPath,
		Trash:  entry,
		IsDir:  entry.IsDir,
	})
	slog.Debug("deleted to holding area", "path", path, "id", entry.ID)
	return nil
}

// Move relocates srcPath into destDir, keeping its base name. Moving a
// directory into itself or one of its descendants is rejected, as is the
// no-op move into the current parent.
func (e *Engine) Move(ctx context.Context, srcPath, destDir string) (string, error) {
	if err := e.begin(); err != nil {
		return "", err
	}
	defer e.end()

	info, err := os.Lstat(srcPath)
	if err != nil {
		return "", newOpError("move", srcPath, fsx.Classify(err))
	}

	destInfo, err := os.Stat(destDir)
	if err != nil {
		return "", newOpError("move", destDir, fsx.Classify(err))
	}
	if !destInfo.IsDir() {
		return "", newOpError("move", destDir, fsx.ErrNotADirectory)
	}

	if err := validateMoveDestination(srcPath, destDir); err != nil {
		return "", newOpError("move", destDir, err)
	}

	dst := filepath.Join(destDir, filepath.Base(srcPath))
	if fsx.Exists(dst) {
		return "", newOpError("move", dst, fsx.ErrAlreadyExists)
	}

	if err := fsx.Move(srcPath, dst); err != nil {
		return "", newOpError("move", srcPath, fsx.Classify(err))
	}

	e.push(&history.Command{
		ID:     xid.New().String(),
		Kind:   history.KindMove,
		Source: srcPath,
		Dest:   dst,
		IsDir:  info.IsDir(),
	})
	slog.Debug("moved", "from", srcPath, "to", dst)
	return dst, nil
}

// validateMoveDestination rejects destinations that equal the source's
// current parent (no-op) or sit inside the source subtree (cycle).
func validateMoveDestination(srcPath, destDir string) error {
	src, err := filepath.Abs(srcPath)
	if err != nil {
		return err
	}
	dst, err := filepath.Abs(destDir)
	if err != nil {
		return err
	}

	if dst == filepath.Dir(src) {
		return ErrInvalidDestination
	}
	return validateNoCycle(srcPath, destDir)
}

// validateNoCycle rejects a destination directory that equals the source or
// sits inside the source subtree. Shared by Move and cut-mode Paste, which
// are both moves.
func validateNoCycle(srcPath, destDir string) error {
	src, err := filepath.Abs(srcPath)
	if err != nil {
		return err
	}
	dst, err := filepath.Abs(destDir)
	if err != nil {
		return err
	}
	if dst == src || strings.HasPrefix(dst+string(filepath.Separator), src+string(filepath.Separator)) {
		return ErrInvalidDestination
	}
	return nil
}

func (e *Engine) push(cmd *history.Command) {
	e.history.Push(cmd)
}

// Undo reverts the most recent operation and returns its command for UI
// feedback.
func (e *Engine) Undo(ctx context.Context) (*history.Command, error) {
	if err := e.begin(); err != nil {
		return nil, err
	}
	defer e.end()
	return e.history.Undo(ctx)
}

// Redo re-applies the most recently undone operation.
func (e *Engine) Redo(ctx context.Context) (*history.Command, error) {
	if err := e.begin(); err != nil {
		return nil, err
	}
	defer e.end()
	return e.history.Redo(ctx)
}
