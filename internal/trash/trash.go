// Package trash implements the recoverable holding area backing delete
// operations. Deleted entries move under a single app-owned root with a
// files/ payload directory and an info/ metadata directory, so every delete
// can be undone.
package trash

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/duofm/duofm/internal/fsx"
	"github.com/rs/xid"
	"gopkg.in/yaml.v2"
)

// Entry describes one entry in the holding area.
type Entry struct {
	// ID is the unique, sortable identifier assigned at Put time
	ID string `yaml:"id"`

	// Name is the original base name of the entry
	Name string `yaml:"name"`

	// OriginalPath is the absolute path the entry was deleted from
	OriginalPath string `yaml:"original_path"`

	// DeletedAt is when the entry was moved to the holding area
	DeletedAt time.Time `yaml:"deleted_at"`

	// Size is the size in bytes recorded at Put time
	Size int64 `yaml:"size"`

	// IsDir indicates if the entry is a directory
	IsDir bool `yaml:"is_dir"`

	// TrashPath is where the payload lives inside the holding area
	TrashPath string `yaml:"-"`
}

// Exists checks if the entry payload is still present in the holding area.
func (e *Entry) Exists() bool {
	_, err := os.Lstat(e.TrashPath)
	return err == nil
}

// Storage manages the holding area on disk.
type Storage struct {
	root     string
	filesDir string
	infoDir  string
}

// NewStorage opens (creating if needed) the holding area rooted at root.
func NewStorage(root string) (*Storage, error) {
	s := &Storage{
		root:     root,
		filesDir: filepath.Join(root, "files"),
		infoDir:  filepath.Join(root, "info"),
	}
	if err := os.MkdirAll(s.filesDir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create files directory: %w", err)
	}
	if err := os.MkdirAll(s.infoDir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create info directory: %w", err)
	}
	return s, nil
}

// Root returns the holding-area root directory.
func (s *Storage) Root() string {
	return s.root
}

// Put moves the entry at src into the holding area and records enough
// metadata to restore it later. The metadata sidecar is written first so a
// failed move never leaves an untracked payload.
func (s *Storage) Put(src string) (*Entry, error) {
	abs, err := filepath.Abs(src)
	if err != nil {
		return nil, NewStorageError("put", src, err)
	}

	info, err := os.Lstat(abs)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, NewStorageError("put", src, fsx.ErrNotFound)
		}
		return nil, NewStorageError("put", src, err)
	}

	entry := &Entry{
		ID:           xid.New().String(),
		Name:         filepath.Base(abs),
		OriginalPath: abs,
		DeletedAt:    time.Now(),
		Size:         info.Size(),
		IsDir:        info.IsDir(),
	}
	entry.TrashPath = filepath.Join(s.filesDir, entry.ID)

	infoPath := s.infoPath(entry.ID)
	if err := s.saveInfo(infoPath, entry); err != nil {
		return nil, NewStorageError("put", src, fmt.Errorf("failed to save trash info: %w", err))
	}

	if err := fsx.Move(abs, entry.TrashPath); err != nil {
		os.Remove(infoPath)
		return nil, NewStorageError("put", src, fmt.Errorf("failed to move entry to trash: %w", err))
	}

	slog.Debug("moved entry to holding area", "path", abs, "id", entry.ID)
	return entry, nil
}

// Restore moves an entry out of the holding area. An empty dst restores to
// the original path. When the destination is already occupied the entry is
// restored under a disambiguated sibling name instead; the path actually
// used is returned.
func (s *Storage) Restore(entry *Entry, dst string) (string, error) {
	if !entry.Exists() {
		return "", NewStorageError("restore", entry.OriginalPath, ErrNotFound)
	}

	if dst == "" {
		dst = entry.OriginalPath
	}

	dir := filepath.Dir(dst)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", NewStorageError("restore", dst, err)
	}
	if fsx.Exists(dst) {
		dst = filepath.Join(dir, fsx.NextAvailableName(dir, filepath.Base(dst)))
	}

	if err := fsx.Move(entry.TrashPath, dst); err != nil {
		return "", NewStorageError("restore", dst, err)
	}

	if err := os.Remove(s.infoPath(entry.ID)); err != nil {
		// The payload is already restored; a stale sidecar is cleaned up by
		// prune
		slog.Warn("failed to remove trash info", "id", entry.ID, "error", err)
	}

	slog.Debug("restored entry from holding area", "id", entry.ID, "dst", dst)
	return dst, nil
}

// Remove permanently deletes an entry from the holding area.
func (s *Storage) Remove(entry *Entry) error {
	if err := os.RemoveAll(entry.TrashPath); err != nil {
		return NewStorageError("remove", entry.TrashPath, err)
	}
	if err := os.Remove(s.infoPath(entry.ID)); err != nil {
		slog.Warn("failed to remove trash info", "id", entry.ID, "error", err)
	}
	return nil
}

// List returns all entries currently in the holding area, newest first.
func (s *Storage) List() ([]*Entry, error) {
	dirents, err := os.ReadDir(s.infoDir)
	if err != nil {
		return nil, NewStorageError("list", s.infoDir, err)
	}

	var entries []*Entry
	for _, d := range dirents {
		if d.IsDir() || filepath.Ext(d.Name()) != ".yaml" {
			continue
		}
		entry, err := s.loadInfo(filepath.Join(s.infoDir, d.Name()))
		if err != nil {
			slog.Warn("skipping unreadable trash info", "file", d.Name(), "error", err)
			continue
		}
		if !entry.Exists() {
			// Orphaned sidecar without payload
			continue
		}
		entries = append(entries, entry)
	}

	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}
	return entries, nil
}

// PruneOlderThan permanently removes entries deleted more than age ago and
// returns what was removed.
func (s *Storage) PruneOlderThan(age time.Duration) ([]*Entry, error) {
	entries, err := s.List()
	if err != nil {
		return nil, err
	}

	cutoff := time.Now().Add(-age)
	var pruned []*Entry
	for _, entry := range entries {
		if entry.DeletedAt.After(cutoff) {
			continue
		}
		if err := s.Remove(entry); err != nil {
			return pruned, err
		}
		pruned = append(pruned, entry)
	}
	return pruned, nil
}

func (s *Storage) infoPath(id string) string {
	return filepath.Join(s.infoDir, id+".yaml")
}

func (s *Storage) saveInfo(path string, entry *Entry) error {
	data, err := yaml.Marshal(entry)
	if err != nil {
		return err
	}
	f, err := fsx.CreateExclusive(path, 0600)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = f.Write(data)
	return err
}

func (s *Storage) loadInfo(path string) (*Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var entry Entry
	if err := yaml.Unmarshal(data, &entry); err != nil {
		return nil, err
	}
	entry.TrashPath = filepath.Join(s.filesDir, entry.ID)
	return &entry, nil
}
