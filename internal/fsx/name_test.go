package fsx

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSplitExt(t *testing.T) {
	tests := []struct {
		name string
		stem string
		ext  string
	}{
		{"notes.txt", "notes", ".txt"},
		{"archive.tar.gz", "archive.tar", ".gz"},
		{"Makefile", "Makefile", ""},
		{".bashrc", "", ".bashrc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stem, ext := SplitExt(tt.name)
			if stem != tt.stem || ext != tt.ext {
				t.Errorf("SplitExt(%q) = (%q, %q), want (%q, %q)",
					tt.name, stem, ext, tt.stem, tt.ext)
			}
		})
	}
}

func touch(t *testing.T, dir, name string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestNextAvailableName(t *testing.T) {
	dir := t.TempDir()

	if got := NextAvailableName(dir, "notes.txt"); got != "notes.txt" {
		t.Errorf("free name should pass through, got %q", got)
	}

	touch(t, dir, "notes.txt")
	if got := NextAvailableName(dir, "notes.txt"); got != "notes (1).txt" {
		t.Errorf("first collision = %q, want %q", got, "notes (1).txt")
	}

	touch(t, dir, "notes (1).txt")
	touch(t, dir, "notes (2).txt")
	if got := NextAvailableName(dir, "notes.txt"); got != "notes (3).txt" {
		t.Errorf("counter should skip taken names, got %q", got)
	}
}

func TestCopyName(t *testing.T) {
	dir := t.TempDir()

	if got := CopyName(dir, "notes.txt"); got != "notes - Copy.txt" {
		t.Errorf("CopyName = %q, want %q", got, "notes - Copy.txt")
	}

	touch(t, dir, "notes - Copy.txt")
	if got := CopyName(dir, "notes.txt"); got != "notes - Copy (1).txt" {
		t.Errorf("CopyName with collision = %q, want %q", got, "notes - Copy (1).txt")
	}
}

func TestListSortsDirsFirst(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "beta.txt")
	touch(t, dir, "Alpha.txt")
	touch(t, dir, ".hidden")
	if err := os.Mkdir(filepath.Join(dir, "zeta"), 0755); err != nil {
		t.Fatal(err)
	}

	entries, err := List(dir, ListOptions{})
	if err != nil {
		t.Fatal(err)
	}

	want := []string{"zeta", "Alpha.txt", "beta.txt"}
	if len(entries) != len(want) {
		t.Fatalf("got %d entries, want %d", len(entries), len(want))
	}
	for i, name := range want {
		if entries[i].Name != name {
			t.Errorf("entries[%d] = %q, want %q", i, entries[i].Name, name)
		}
	}

	entries, err = List(dir, ListOptions{ShowHidden: true})
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 4 {
		t.Errorf("with hidden got %d entries, want 4", len(entries))
	}
}

func TestListExcludeGlobs(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "keep.txt")
	touch(t, dir, "junk.tmp")

	entries, err := List(dir, ListOptions{Exclude: CompileGlobs([]string{"*.tmp"})})
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name != "keep.txt" {
		t.Errorf("exclude globs not applied: %+v", entries)
	}
}
