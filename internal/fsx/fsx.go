package fsx

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	cp "github.com/otiai10/copy"
)

// CreateExclusive creates a new file with O_EXCL to ensure atomic creation.
// Returns an error if the file already exists.
func CreateExclusive(path string, perm os.FileMode) (*os.File, error) {
	return os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm)
}

// Exists reports whether a path exists, without following symlinks.
func Exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}

// Move moves a file or directory from src to dst. A plain rename(2) is tried
// first; cross-device moves fall back to copy and delete.
func Move(src, dst string) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return fmt.Errorf("failed to create destination directory: %w", err)
	}

	if err := os.Rename(src, dst); err == nil {
		return nil
	}

	opts := cp.Options{
		OnSymlink: func(src string) cp.SymlinkAction {
			return cp.Shallow
		},
		PreserveTimes: true,
		Sync:          true,
	}
	if err := cp.Copy(src, dst, opts); err != nil {
		_ = os.RemoveAll(dst)
		return fmt.Errorf("failed to copy file: %w", err)
	}

	if err := os.RemoveAll(src); err != nil {
		// Can't remove the source; undo the copy so only one of the two
		// survives
		_ = os.RemoveAll(dst)
		return fmt.Errorf("failed to remove source after copy: %w", err)
	}

	return nil
}

// CopyAll recursively copies src to dst, preserving permissions and
// timestamps. Symlinks are copied as links, matching Move's fallback, so a
// copy and a cross-device move of the same entry land the same way. The copy
// aborts when ctx is cancelled; a partially written destination is removed
// before returning, so the destination either exists complete or not at all.
func CopyAll(ctx context.Context, src, dst string) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return fmt.Errorf("failed to create destination directory: %w", err)
	}

	opts := cp.Options{
		Skip: func(srcinfo os.FileInfo, src, dest string) (bool, error) {
			if err := ctx.Err(); err != nil {
				return false, err
			}
			return false, nil
		},
		OnSymlink: func(src string) cp.SymlinkAction {
			return cp.Shallow
		},
		PreserveTimes: true,
		Sync:          true,
	}

	if err := cp.Copy(src, dst, opts); err != nil {
		_ = os.RemoveAll(dst)
		return fmt.Errorf("failed to copy %s: %w", src, err)
	}

	return nil
}
