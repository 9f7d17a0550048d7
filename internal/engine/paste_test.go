package engine

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/duofm/duofm/internal/clipboard"
	"github.com/duofm/duofm/internal/fsx"
)

func TestPasteEmptyClipboard(t *testing.T) {
	eng, _ := newTestEngine(t)
	_, err := eng.Paste(context.Background(), t.TempDir())
	if !errors.Is(err, clipboard.ErrEmpty) {
		t.Errorf("Paste = %v, want ErrEmpty", err)
	}
}

func TestCopyPaste(t *testing.T) {
	eng, cb := newTestEngine(t)
	ctx := context.Background()
	srcDir := t.TempDir()
	dstDir := t.TempDir()

	src := filepath.Join(srcDir, "a.txt")
	writeFile(t, src, "content")

	cb.Copy([]string{src})
	results, err := eng.Paste(ctx, dstDir)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 1 || results[0] != filepath.Join(dstDir, "a.txt") {
		t.Fatalf("results = %v", results)
	}

	// Copy keeps the source and stays reusable
	if !fsx.Exists(src) {
		t.Error("copy paste must keep the source")
	}
	if !cb.Active() {
		t.Error("copy clipboard must stay loaded after paste")
	}

	// A second paste into the same directory disambiguates
	results, err = eng.Paste(ctx, dstDir)
	if err != nil {
		t.Fatal(err)
	}
	if results[0] != filepath.Join(dstDir, "a (1).txt") {
		t.Errorf("second paste = %v, want disambiguated name", results)
	}
	if readFile(t, filepath.Join(dstDir, "a.txt")) != "content" {
		t.Error("existing destination entry was touched")
	}
}

func TestCopyPasteIntoOwnDirectory(t *testing.T) {
	eng, cb := newTestEngine(t)
	ctx := context.Background()
	dir := t.TempDir()

	src := filepath.Join(dir, "a.txt")
	writeFile(t, src, "content")

	// Pasting into the source's own directory is a disambiguated duplicate,
	// not a no-op
	cb.Copy([]string{src})
	results, err := eng.Paste(ctx, dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 1 || results[0] != filepath.Join(dir, "a (1).txt") {
		t.Errorf("results = %v, want [a (1).txt]", results)
	}
	if readFile(t, src) != "content" {
		t.Error("original was touched")
	}
}

func TestPasteCancelledContext(t *testing.T) {
	eng, cb := newTestEngine(t)
	srcDir := t.TempDir()
	dstDir := t.TempDir()

	src := filepath.Join(srcDir, "a.txt")
	writeFile(t, src, "content")

	cb.Copy([]string{src})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := eng.Paste(ctx, dstDir)
	if err == nil {
		t.Fatal("expected error from cancelled paste")
	}
	// Nothing completed, so nothing is recorded and nothing lands
	if len(results) != 0 {
		t.Errorf("results = %v, want none", results)
	}
	if eng.History().CanUndo() {
		t.Error("cancelled paste must not record a command")
	}
	if fsx.Exists(filepath.Join(dstDir, "a.txt")) {
		t.Error("cancelled paste left a partial destination")
	}
}

func TestCutPaste(t *testing.T) {
	eng, cb := newTestEngine(t)
	ctx := context.Background()
	srcDir := t.TempDir()
	dstDir := t.TempDir()

	src := filepath.Join(srcDir, "a.txt")
	writeFile(t, src, "content")

	cb.Cut([]string{src})
	results, err := eng.Paste(ctx, dstDir)
	if err != nil {
		t.Fatal(err)
	}
	if fsx.Exists(src) {
		t.Error("cut paste must remove the source")
	}
	if readFile(t, results[0]) != "content" {
		t.Error("content lost in move")
	}

	// Cut consumes the clipboard; the next paste has nothing to do
	if cb.Active() {
		t.Error("cut clipboard must be cleared after paste")
	}
	if _, err := eng.Paste(ctx, dstDir); !errors.Is(err, clipboard.ErrEmpty) {
		t.Errorf("paste after consumed cut = %v, want ErrEmpty", err)
	}
}

func TestCutPasteIntoOwnSubtreeRejected(t *testing.T) {
	eng, cb := newTestEngine(t)
	ctx := context.Background()
	dir := t.TempDir()

	parent := filepath.Join(dir, "parent")
	sub := filepath.Join(parent, "sub")
	if err := os.MkdirAll(sub, 0755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, filepath.Join(parent, "file.txt"), "content")

	cb.Cut([]string{parent})
	results, err := eng.Paste(ctx, sub)
	if !errors.Is(err, ErrInvalidDestination) {
		t.Fatalf("cut paste into own subtree = %v, want ErrInvalidDestination", err)
	}
	if len(results) != 0 {
		t.Errorf("results = %v, want none", results)
	}

	// No filesystem change, nothing recorded, selection kept for a retry
	if !fsx.Exists(filepath.Join(parent, "file.txt")) {
		t.Error("source tree was disturbed")
	}
	if fsx.Exists(filepath.Join(sub, "parent")) {
		t.Error("rejected paste left a copy inside the subtree")
	}
	if eng.History().CanUndo() {
		t.Error("rejected paste must not record a command")
	}
	if !cb.Active() {
		t.Error("rejected cut paste must keep the clipboard loaded")
	}
}

func TestPasteDirectoryRecursive(t *testing.T) {
	eng, cb := newTestEngine(t)
	ctx := context.Background()
	srcDir := t.TempDir()
	dstDir := t.TempDir()

	project := filepath.Join(srcDir, "project")
	if err := os.MkdirAll(filepath.Join(project, "sub"), 0755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, filepath.Join(project, "sub", "deep.txt"), "deep")

	cb.Copy([]string{project})
	results, err := eng.Paste(ctx, dstDir)
	if err != nil {
		t.Fatal(err)
	}
	if readFile(t, filepath.Join(results[0], "sub", "deep.txt")) != "deep" {
		t.Error("recursive copy lost nested content")
	}
}

func TestPasteSkipsVanishedSources(t *testing.T) {
	eng, cb := newTestEngine(t)
	ctx := context.Background()
	srcDir := t.TempDir()
	dstDir := t.TempDir()

	keep := filepath.Join(srcDir, "keep.txt")
	gone := filepath.Join(srcDir, "gone.txt")
	writeFile(t, keep, "keep")
	writeFile(t, gone, "gone")

	cb.Copy([]string{keep, gone})
	if err := os.Remove(gone); err != nil {
		t.Fatal(err)
	}

	results, err := eng.Paste(ctx, dstDir)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 1 || filepath.Base(results[0]) != "keep.txt" {
		t.Errorf("results = %v, want only keep.txt", results)
	}
}

func TestPasteIntoNonDirectory(t *testing.T) {
	eng, cb := newTestEngine(t)
	ctx := context.Background()
	dir := t.TempDir()

	src := filepath.Join(dir, "a.txt")
	file := filepath.Join(dir, "target.txt")
	writeFile(t, src, "a")
	writeFile(t, file, "t")

	cb.Copy([]string{src})
	if _, err := eng.Paste(ctx, file); !errors.Is(err, fsx.ErrNotADirectory) {
		t.Errorf("paste into file = %v, want ErrNotADirectory", err)
	}
}

func TestPasteUndoRemovesCopies(t *testing.T) {
	eng, cb := newTestEngine(t)
	ctx := context.Background()
	srcDir := t.TempDir()
	dstDir := t.TempDir()

	src := filepath.Join(srcDir, "a.txt")
	writeFile(t, src, "content")

	cb.Copy([]string{src})
	results, err := eng.Paste(ctx, dstDir)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := eng.Undo(ctx); err != nil {
		t.Fatal(err)
	}
	if fsx.Exists(results[0]) {
		t.Error("undo should remove the pasted copy")
	}
	if !fsx.Exists(src) {
		t.Error("undo must not touch the source")
	}
}

func TestCutPasteUndoMovesBack(t *testing.T) {
	eng, cb := newTestEngine(t)
	ctx := context.Background()
	srcDir := t.TempDir()
	dstDir := t.TempDir()

	src := filepath.Join(srcDir, "a.txt")
	writeFile(t, src, "content")

	cb.Cut([]string{src})
	if _, err := eng.Paste(ctx, dstDir); err != nil {
		t.Fatal(err)
	}

	if _, err := eng.Undo(ctx); err != nil {
		t.Fatal(err)
	}
	if !fsx.Exists(src) {
		t.Error("undo should move the entry back")
	}
	if fsx.Exists(filepath.Join(dstDir, "a.txt")) {
		t.Error("undo left the moved entry at the destination")
	}
}

func TestDuplicate(t *testing.T) {
	eng, _ := newTestEngine(t)
	ctx := context.Background()
	dir := t.TempDir()

	src := filepath.Join(dir, "notes.txt")
	writeFile(t, src, "content")

	dst, err := eng.Duplicate(ctx, src)
	if err != nil {
		t.Fatal(err)
	}
	if dst != filepath.Join(dir, "notes - Copy.txt") {
		t.Errorf("first duplicate = %q", dst)
	}

	dst2, err := eng.Duplicate(ctx, src)
	if err != nil {
		t.Fatal(err)
	}
	if dst2 != filepath.Join(dir, "notes - Copy (1).txt") {
		t.Errorf("second duplicate = %q", dst2)
	}

	if readFile(t, dst) != "content" || readFile(t, dst2) != "content" {
		t.Error("duplicate content mismatch")
	}
}

func TestDuplicateMissing(t *testing.T) {
	eng, _ := newTestEngine(t)
	_, err := eng.Duplicate(context.Background(), filepath.Join(t.TempDir(), "nope"))
	if !errors.Is(err, fsx.ErrNotFound) {
		t.Errorf("Duplicate = %v, want ErrNotFound", err)
	}
}
