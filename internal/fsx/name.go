package fsx

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// SplitExt splits a base name into stem and extension, keeping the dot on
// the extension ("notes.txt" -> "notes", ".txt").
func SplitExt(name string) (stem, ext string) {
	ext = filepath.Ext(name)
	return strings.TrimSuffix(name, ext), ext
}

// NextAvailableName resolves a name collision in dir by appending a numeric
// counter to the stem until a free name is found: "notes.txt" becomes
// "notes (1).txt", then "notes (2).txt" and so on. The decision is
// deterministic and makes no filesystem changes.
func NextAvailableName(dir, name string) string {
	if !Exists(filepath.Join(dir, name)) {
		return name
	}

	stem, ext := SplitExt(name)
	for counter := 1; ; counter++ {
		candidate := fmt.Sprintf("%s (%d)%s", stem, counter, ext)
		if !Exists(filepath.Join(dir, candidate)) {
			return candidate
		}
	}
}

// CopyName picks the name for a duplicate of an entry: "notes - Copy.txt",
// then "notes - Copy (1).txt" and so on until a free name is found.
func CopyName(dir, name string) string {
	stem, ext := SplitExt(name)
	candidate := fmt.Sprintf("%s - Copy%s", stem, ext)
	for counter := 1; Exists(filepath.Join(dir, candidate)); counter++ {
		candidate = fmt.Sprintf("%s - Copy (%d)%s", stem, counter, ext)
	}
	return candidate
}

// DirExists reports whether path exists and is a directory.
func DirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
