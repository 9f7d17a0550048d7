// Package clipboard holds the pending copy/cut selection shared by both
// panes. It is pure state: paste execution lives in the engine, which is
// handed the clipboard at construction.
package clipboard

import (
	"errors"
	"sync"
)

// ErrEmpty is returned when a paste is requested with nothing on the
// clipboard.
var ErrEmpty = errors.New("clipboard is empty")

// Mode is the pending operation for the clipboard contents.
type Mode int

const (
	// ModeEmpty means no pending selection
	ModeEmpty Mode = iota

	// ModeCopy duplicates sources on paste; reusable across pastes
	ModeCopy

	// ModeCut moves sources on paste; cleared after one paste
	ModeCut
)

func (m Mode) String() string {
	switch m {
	case ModeCopy:
		return "copy"
	case ModeCut:
		return "cut"
	default:
		return "empty"
	}
}

// State is a read-only snapshot of the clipboard.
type State struct {
	Mode  Mode
	Paths []string
}

// Manager owns the process-wide clipboard state. The engine is the single
// writer; UI readers only observe snapshots.
type Manager struct {
	mu    sync.RWMutex
	mode  Mode
	paths []string
}

// New creates an empty clipboard.
func New() *Manager {
	return &Manager{}
}

// Copy replaces the clipboard with the given source paths in copy mode.
// Ignored when paths is empty, keeping the mode/paths invariant intact.
func (m *Manager) Copy(paths []string) {
	m.set(ModeCopy, paths)
}

// Cut replaces the clipboard with the given source paths in cut mode.
func (m *Manager) Cut(paths []string) {
	m.set(ModeCut, paths)
}

func (m *Manager) set(mode Mode, paths []string) {
	if len(paths) == 0 {
		return
	}
	cp := make([]string, len(paths))
	copy(cp, paths)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.mode = mode
	m.paths = cp
}

// Clear resets the clipboard to empty.
func (m *Manager) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.mode = ModeEmpty
	m.paths = nil
}

// Snapshot returns the current mode and a copy of the paths.
func (m *Manager) Snapshot() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	paths := make([]string, len(m.paths))
	copy(paths, m.paths)
	return State{Mode: m.mode, Paths: paths}
}

// Active reports whether the clipboard holds a pending selection.
func (m *Manager) Active() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.mode != ModeEmpty
}
