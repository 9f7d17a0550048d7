// Package history records completed file operations as invertible commands
// and drives undo/redo over them. Standard linear-history semantics apply:
// recording a new command discards everything that could still be redone.
package history

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/duofm/duofm/internal/trash"
)

var (
	// ErrNothingToUndo is returned when the undo stack is empty
	ErrNothingToUndo = errors.New("nothing to undo")

	// ErrNothingToRedo is returned when the redo stack is empty
	ErrNothingToRedo = errors.New("nothing to redo")
)

// Kind tags the mutation a command records.
type Kind int

const (
	KindCreate Kind = iota
	KindDelete
	KindRename
	KindMove
	KindCopy
	KindDuplicate
)

func (k Kind) String() string {
	switch k {
	case KindCreate:
		return "create"
	case KindDelete:
		return "delete"
	case KindRename:
		return "rename"
	case KindMove:
		return "move"
	case KindCopy:
		return "copy"
	case KindDuplicate:
		return "duplicate"
	default:
		return "unknown"
	}
}

// Command is the record of one completed mutation, carrying enough data to
// invert it. Commands are created by the engine only after the mutation has
// committed on disk, never speculatively.
type Command struct {
	// ID identifies the command across undo/redo round trips
	ID string

	// Kind tags the recorded mutation
	Kind Kind

	// Source is the pre-operation path (empty for Create)
	Source string

	// Dest is the post-operation path (empty for Delete)
	Dest string

	// Trash points at the holding-area entry for Delete commands. It is
	// replaced whenever a redo puts the entry back into the holding area.
	Trash *trash.Entry

	// IsDir records whether the affected entry is a directory
	IsDir bool
}

// Describe renders the command for UI feedback.
func (c *Command) Describe() string {
	switch c.Kind {
	case KindCreate:
		return fmt.Sprintf("create %s", filepath.Base(c.Dest))
	case KindDelete:
		return fmt.Sprintf("delete %s", filepath.Base(c.Source))
	default:
		return fmt.Sprintf("%s %s -> %s", c.Kind, filepath.Base(c.Source), filepath.Base(c.Dest))
	}
}

// AffectedDirs lists the parent directories touched by the command, for
// refreshing any pane that currently shows one of them.
func (c *Command) AffectedDirs() []string {
	dirs := make(map[string]struct{})
	if c.Source != "" {
		dirs[filepath.Dir(c.Source)] = struct{}{}
	}
	if c.Dest != "" {
		dirs[filepath.Dir(c.Dest)] = struct{}{}
	}
	out := make([]string, 0, len(dirs))
	for d := range dirs {
		out = append(out, d)
	}
	return out
}

// Applier applies command inverses and re-applications against the
// filesystem. The engine implements it.
type Applier interface {
	// Invert undoes the command on disk
	Invert(ctx context.Context, cmd *Command) error

	// Reapply performs the command again on disk
	Reapply(ctx context.Context, cmd *Command) error
}

// History holds the bounded undo stack and the redo stack.
type History struct {
	mu       sync.Mutex
	capacity int
	undo     []*Command
	redo     []*Command
	applier  Applier
}

// New creates a History bounded to capacity commands. The applier performs
// the actual filesystem work during Undo/Redo.
func New(capacity int, applier Applier) *History {
	if capacity < 1 {
		capacity = 1
	}
	return &History{
		capacity: capacity,
		applier:  applier,
	}
}

// Push records a completed command. The redo stack is cleared; when the
// undo stack is at capacity the oldest command is silently evicted.
func (h *History) Push(cmd *Command) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.undo = append(h.undo, cmd)
	if len(h.undo) > h.capacity {
		evicted := h.undo[0]
		h.undo = h.undo[1:]
		slog.Debug("evicted oldest command from history", "kind", evicted.Kind.String())
	}
	h.redo = h.redo[:0]
}

// Undo pops the most recent command, applies its inverse and moves it to
// the redo stack. If the inverse fails the command is dropped entirely so
// history keeps matching what is actually on disk, and the error surfaces.
func (h *History) Undo(ctx context.Context) (*Command, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.undo) == 0 {
		return nil, ErrNothingToUndo
	}

	cmd := h.undo[len(h.undo)-1]
	h.undo = h.undo[:len(h.undo)-1]

	if err := h.applier.Invert(ctx, cmd); err != nil {
		slog.Error("undo failed, dropping command", "kind", cmd.Kind.String(), "error", err)
		return nil, err
	}

	h.redo = append(h.redo, cmd)
	return cmd, nil
}

// Redo pops the most recently undone command, re-applies it and moves it
// back to the undo stack. Failure drops the command, same as Undo.
func (h *History) Redo(ctx context.Context) (*Command, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.redo) == 0 {
		return nil, ErrNothingToRedo
	}

	cmd := h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]

	if err := h.applier.Reapply(ctx, cmd); err != nil {
		slog.Error("redo failed, dropping command", "kind", cmd.Kind.String(), "error", err)
		return nil, err
	}

	h.undo = append(h.undo, cmd)
	return cmd, nil
}

// CanUndo reports whether an undoable command is available.
func (h *History) CanUndo() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.undo) > 0
}

// CanRedo reports whether a redoable command is available.
func (h *History) CanRedo() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.redo) > 0
}

// Len returns the current undo-stack depth.
func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.undo)
}
