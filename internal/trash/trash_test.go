package trash

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"gopkg.in/yaml.v2"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()
	s, err := NewStorage(filepath.Join(t.TempDir(), "trash"))
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestPutAndRestore(t *testing.T) {
	s := newTestStorage(t)
	dir := t.TempDir()
	src := filepath.Join(dir, "notes.txt")
	writeFile(t, src, "hello")

	entry, err := s.Put(src)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := os.Lstat(src); !os.IsNotExist(err) {
		t.Error("source should be gone after Put")
	}
	if !entry.Exists() {
		t.Error("payload should exist in the holding area")
	}
	if entry.OriginalPath != src {
		t.Errorf("OriginalPath = %q, want %q", entry.OriginalPath, src)
	}

	restored, err := s.Restore(entry, "")
	if err != nil {
		t.Fatal(err)
	}
	if restored != src {
		t.Errorf("restored to %q, want original %q", restored, src)
	}
	data, err := os.ReadFile(src)
	if err != nil || string(data) != "hello" {
		t.Errorf("restored content = %q, %v", data, err)
	}
}

func TestRestoreToOccupiedLocation(t *testing.T) {
	s := newTestStorage(t)
	dir := t.TempDir()
	src := filepath.Join(dir, "notes.txt")
	writeFile(t, src, "original")

	entry, err := s.Put(src)
	if err != nil {
		t.Fatal(err)
	}

	// Reuse the original location before restoring
	writeFile(t, src, "newcomer")

	restored, err := s.Restore(entry, "")
	if err != nil {
		t.Fatal(err)
	}

	want := filepath.Join(dir, "notes (1).txt")
	if restored != want {
		t.Errorf("restored to %q, want disambiguated %q", restored, want)
	}

	// The newcomer must be untouched
	data, _ := os.ReadFile(src)
	if string(data) != "newcomer" {
		t.Errorf("occupying file was clobbered: %q", data)
	}
	data, _ = os.ReadFile(restored)
	if string(data) != "original" {
		t.Errorf("restored content = %q", data)
	}
}

func TestPutDirectory(t *testing.T) {
	s := newTestStorage(t)
	dir := t.TempDir()
	sub := filepath.Join(dir, "project")
	if err := os.Mkdir(sub, 0755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, filepath.Join(sub, "main.go"), "package main")

	entry, err := s.Put(sub)
	if err != nil {
		t.Fatal(err)
	}
	if !entry.IsDir {
		t.Error("IsDir should be recorded")
	}

	restored, err := s.Restore(entry, "")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(restored, "main.go")); err != nil {
		t.Errorf("directory content lost after round trip: %v", err)
	}
}

func TestPutMissingSource(t *testing.T) {
	s := newTestStorage(t)
	_, err := s.Put(filepath.Join(t.TempDir(), "nope"))
	if err == nil {
		t.Fatal("expected error for missing source")
	}
	var serr *StorageError
	if !errors.As(err, &serr) {
		t.Errorf("error should be a StorageError, got %T", err)
	}
}

func TestListNewestFirst(t *testing.T) {
	s := newTestStorage(t)
	dir := t.TempDir()

	first := filepath.Join(dir, "first.txt")
	second := filepath.Join(dir, "second.txt")
	writeFile(t, first, "1")
	writeFile(t, second, "2")

	if _, err := s.Put(first); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Put(second); err != nil {
		t.Fatal(err)
	}

	entries, err := s.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Fatalf("List returned %d entries, want 2", len(entries))
	}
	if entries[0].Name != "second.txt" {
		t.Errorf("newest first: got %q", entries[0].Name)
	}
}

func TestPruneOlderThan(t *testing.T) {
	s := newTestStorage(t)
	dir := t.TempDir()
	src := filepath.Join(dir, "stale.txt")
	writeFile(t, src, "old")

	entry, err := s.Put(src)
	if err != nil {
		t.Fatal(err)
	}

	// Backdate the sidecar
	entry.DeletedAt = time.Now().Add(-48 * time.Hour)
	data, err := yaml.Marshal(entry)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(s.infoPath(entry.ID), data, 0600); err != nil {
		t.Fatal(err)
	}

	pruned, err := s.PruneOlderThan(24 * time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	if len(pruned) != 1 {
		t.Fatalf("pruned %d entries, want 1", len(pruned))
	}

	entries, err := s.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("holding area should be empty, got %d", len(entries))
	}
}

func TestPruneKeepsRecent(t *testing.T) {
	s := newTestStorage(t)
	dir := t.TempDir()
	src := filepath.Join(dir, "fresh.txt")
	writeFile(t, src, "new")

	if _, err := s.Put(src); err != nil {
		t.Fatal(err)
	}

	pruned, err := s.PruneOlderThan(24 * time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	if len(pruned) != 0 {
		t.Errorf("fresh entry was pruned")
	}
}
