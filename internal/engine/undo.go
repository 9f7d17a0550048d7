package engine

import (
	"context"
	"fmt"
	"os"

	"github.com/duofm/duofm/internal/fsx"
	"github.com/duofm/duofm/internal/history"
)

// Invert undoes a recorded command on disk. Called by the history with the
// in-flight guard already held by Undo. A failed inverse leaves the
// filesystem as it is; the history drops the command so its record keeps
// matching reality.
func (e *Engine) Invert(ctx context.Context, cmd *history.Command) error {
	switch cmd.Kind {
	case history.KindCreate:
		// os.Remove refuses to delete a non-empty directory, so content
		// added after the create is never lost to an undo
		if err := os.Remove(cmd.Dest); err != nil {
			return newOpError("undo create", cmd.Dest, fsx.Classify(err))
		}
		return nil

	case history.KindDelete:
		restored, err := e.trash.Restore(cmd.Trash, "")
		if err != nil {
			return newOpError("undo delete", cmd.Source, err)
		}
		// The original location may have been reused; track where the
		// entry actually landed so redo targets the right path
		cmd.Source = restored
		return nil

	case history.KindRename, history.KindMove:
		return e.reverseTransfer(cmd.Kind, cmd.Dest, cmd.Source)

	case history.KindCopy, history.KindDuplicate:
		if !fsx.Exists(cmd.Dest) {
			return newOpError("undo "+cmd.Kind.String(), cmd.Dest, fsx.ErrNotFound)
		}
		if err := os.RemoveAll(cmd.Dest); err != nil {
			return newOpError("undo "+cmd.Kind.String(), cmd.Dest, fsx.Classify(err))
		}
		return nil

	default:
		return fmt.Errorf("unknown command kind: %v", cmd.Kind)
	}
}

// Reapply performs a previously undone command again on disk.
func (e *Engine) Reapply(ctx context.Context, cmd *history.Command) error {
	switch cmd.Kind {
	case history.KindCreate:
		if fsx.Exists(cmd.Dest) {
			return newOpError("redo create", cmd.Dest, fsx.ErrAlreadyExists)
		}
		if cmd.IsDir {
			if err := os.Mkdir(cmd.Dest, 0755); err != nil {
				return newOpError("redo create", cmd.Dest, fsx.Classify(err))
			}
			return nil
		}
		f, err := fsx.CreateExclusive(cmd.Dest, 0644)
		if err != nil {
			return newOpError("redo create", cmd.Dest, fsx.Classify(err))
		}
		f.Close()
		return nil

	case history.KindDelete:
		entry, err := e.trash.Put(cmd.Source)
		if err != nil {
			return newOpError("redo delete", cmd.Source, err)
		}
		// The redone delete produced a fresh holding-area entry
		cmd.Trash = entry
		return nil

	case history.KindRename, history.KindMove:
		return e.reverseTransfer(cmd.Kind, cmd.Source, cmd.Dest)

	case history.KindCopy, history.KindDuplicate:
		if fsx.Exists(cmd.Dest) {
			return newOpError("redo "+cmd.Kind.String(), cmd.Dest, fsx.ErrAlreadyExists)
		}
		if err := fsx.CopyAll(ctx, cmd.Source, cmd.Dest); err != nil {
			return newOpError("redo "+cmd.Kind.String(), cmd.Source, err)
		}
		return nil

	default:
		return fmt.Errorf("unknown command kind: %v", cmd.Kind)
	}
}

// reverseTransfer moves an entry from one recorded path to the other,
// refusing when the filesystem no longer matches the record.
func (e *Engine) reverseTransfer(kind history.Kind, from, to string) error {
	op := kind.String()
	if !fsx.Exists(from) {
		return newOpError(op, from, fsx.ErrNotFound)
	}
	if fsx.Exists(to) {
		return newOpError(op, to, fsx.ErrAlreadyExists)
	}
	if err := fsx.Move(from, to); err != nil {
		return newOpError(op, from, fsx.Classify(err))
	}
	return nil
}
