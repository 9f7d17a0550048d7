package fsx

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gobwas/glob"
)

// Entry is an immutable snapshot of one directory entry, taken at listing
// time. It becomes stale after any mutation of its parent directory and must
// be re-fetched, never patched in place.
type Entry struct {
	// Path is the absolute path of the entry
	Path string

	// Name is the base name shown in listings
	Name string

	// IsDir indicates if this is a directory
	IsDir bool

	// Size is the size of the entry in bytes
	Size int64

	// ModTime is the last modification time
	ModTime time.Time

	// ReadOnly indicates the owner has no write permission
	ReadOnly bool
}

// NewEntry builds an Entry from a stat result.
func NewEntry(path string, info os.FileInfo) Entry {
	return Entry{
		Path:     path,
		Name:     filepath.Base(path),
		IsDir:    info.IsDir(),
		Size:     info.Size(),
		ModTime:  info.ModTime(),
		ReadOnly: info.Mode().Perm()&0200 == 0,
	}
}

// Stat stats a path and returns its Entry snapshot.
func Stat(path string) (Entry, error) {
	info, err := os.Lstat(path)
	if err != nil {
		return Entry{}, Classify(err)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return Entry{}, err
	}
	return NewEntry(abs, info), nil
}

// FormatSize renders the size for display. Directories show no size.
func (e Entry) FormatSize() string {
	if e.IsDir {
		return ""
	}
	return humanize.Bytes(uint64(e.Size))
}

// FormatModTime renders the modification time for display.
func (e Entry) FormatModTime() string {
	return e.ModTime.Format("2006-01-02 15:04")
}

// TypeLabel returns a coarse type label derived from the entry name.
func (e Entry) TypeLabel() string {
	if e.IsDir {
		return "Folder"
	}
	ext := strings.TrimPrefix(filepath.Ext(e.Name), ".")
	if ext == "" {
		return "File"
	}
	return strings.ToUpper(ext)
}

// ListOptions controls directory listings.
type ListOptions struct {
	// ShowHidden includes dotfiles when set
	ShowHidden bool

	// Exclude drops entries whose base name matches any glob
	Exclude []glob.Glob
}

// CompileGlobs compiles glob patterns for ListOptions. Invalid patterns are
// skipped.
func CompileGlobs(patterns []string) []glob.Glob {
	var globs []glob.Glob
	for _, p := range patterns {
		g, err := glob.Compile(p)
		if err != nil {
			continue
		}
		globs = append(globs, g)
	}
	return globs
}

// List reads a directory and returns entry snapshots sorted directories
// first, then case-insensitively by name.
func List(dir string, opts ListOptions) ([]Entry, error) {
	dirents, err := os.ReadDir(dir)
	if err != nil {
		return nil, Classify(err)
	}

	var entries []Entry
	for _, d := range dirents {
		name := d.Name()
		if !opts.ShowHidden && strings.HasPrefix(name, ".") {
			continue
		}
		if excluded(name, opts.Exclude) {
			continue
		}
		info, err := d.Info()
		if err != nil {
			// Entry vanished between ReadDir and stat
			continue
		}
		entries = append(entries, NewEntry(filepath.Join(dir, name), info))
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].IsDir != entries[j].IsDir {
			return entries[i].IsDir
		}
		return strings.ToLower(entries[i].Name) < strings.ToLower(entries[j].Name)
	})

	return entries, nil
}

func excluded(name string, globs []glob.Glob) bool {
	for _, g := range globs {
		if g.Match(name) {
			return true
		}
	}
	return false
}
