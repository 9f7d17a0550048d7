package engine

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/duofm/duofm/internal/clipboard"
	"github.com/duofm/duofm/internal/fsx"
	"github.com/duofm/duofm/internal/history"
	"github.com/rs/xid"
	"github.com/samber/lo"
)

// Paste applies the pending clipboard selection to destDir. Name collisions
// at the destination are resolved by appending a numeric counter, never by
// overwriting. Copy mode duplicates each source (directories recursively)
// and stays reusable; cut mode moves each source and consumes the clipboard.
// One command is recorded per source that completes, so cancelling midway
// keeps history consistent with what actually landed on disk. Returns the
// resulting destination paths.
func (e *Engine) Paste(ctx context.Context, destDir string) ([]string, error) {
	if err := e.begin(); err != nil {
		return nil, err
	}
	defer e.end()

	snap := e.clipboard.Snapshot()
	if snap.Mode == clipboard.ModeEmpty {
		return nil, clipboard.ErrEmpty
	}

	info, err := os.Stat(destDir)
	if err != nil {
		return nil, newOpError("paste", destDir, fsx.Classify(err))
	}
	if !info.IsDir() {
		return nil, newOpError("paste", destDir, fsx.ErrNotADirectory)
	}

	// Sources removed since they were clipped are skipped, not failed
	sources := lo.Filter(snap.Paths, func(p string, _ int) bool { return fsx.Exists(p) })

	var results []string
	for _, src := range sources {
		name := fsx.NextAvailableName(destDir, filepath.Base(src))
		dst := filepath.Join(destDir, name)

		dstPath, err := e.pasteOne(ctx, snap.Mode, src, dst)
		if err != nil {
			e.finishCutPaste(snap.Mode, results)
			return results, newOpError("paste", src, err)
		}
		results = append(results, dstPath)
	}

	e.finishCutPaste(snap.Mode, results)
	slog.Debug("pasted", "mode", snap.Mode.String(), "count", len(results), "dest", destDir)
	return results, nil
}

// pasteOne transfers a single source and records its command. Each source
// is all-or-nothing: a failed recursive copy removes its partial output
// before the error surfaces, and no command is recorded for it.
func (e *Engine) pasteOne(ctx context.Context, mode clipboard.Mode, src, dst string) (string, error) {
	info, err := os.Lstat(src)
	if err != nil {
		return "", fsx.Classify(err)
	}

	switch mode {
	case clipboard.ModeCopy:
		if err := fsx.CopyAll(ctx, src, dst); err != nil {
			return "", err
		}
		e.push(&history.Command{
			ID:     xid.New().String(),
			Kind:   history.KindCopy,
			Source: src,
			Dest:   dst,
			IsDir:  info.IsDir(),
		})
	case clipboard.ModeCut:
		// A cut paste is a move; pasting a directory into its own
		// subtree would copy it into itself forever
		if err := validateNoCycle(src, filepath.Dir(dst)); err != nil {
			return "", err
		}
		if err := fsx.Move(src, dst); err != nil {
			return "", err
		}
		e.push(&history.Command{
			ID:     xid.New().String(),
			Kind:   history.KindMove,
			Source: src,
			Dest:   dst,
			IsDir:  info.IsDir(),
		})
	}
	return dst, nil
}

// finishCutPaste consumes the clipboard after a cut paste that moved at
// least one source. Copy mode stays reusable across pastes.
func (e *Engine) finishCutPaste(mode clipboard.Mode, results []string) {
	if mode == clipboard.ModeCut && len(results) > 0 {
		e.clipboard.Clear()
	}
}

// Duplicate copies the entry at path next to itself under a " - Copy" name,
// with the same counter disambiguation as paste.
func (e *Engine) Duplicate(ctx context.Context, path string) (string, error) {
	if err := e.begin(); err != nil {
		return "", err
	}
	defer e.end()

	info, err := os.Lstat(path)
	if err != nil {
		return "", newOpError("duplicate", path, fsx.Classify(err))
	}

	dir := filepath.Dir(path)
	dst := filepath.Join(dir, fsx.CopyName(dir, filepath.Base(path)))

	if err := fsx.CopyAll(ctx, path, dst); err != nil {
		return "", newOpError("duplicate", path, err)
	}

	e.push(&history.Command{
		ID:     xid.New().String(),
		Kind:   history.KindDuplicate,
		Source: path,
		Dest:   dst,
		IsDir:  info.IsDir(),
	})
	slog.Debug("duplicated", "from", path, "to", dst)
	return dst, nil
}
