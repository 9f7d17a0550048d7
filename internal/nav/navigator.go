// Package nav tracks per-pane navigation state: the current directory, its
// listing, and linear back/forward history. Navigating somewhere new clears
// the forward stack, the same rule undo/redo applies to commands.
package nav

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/duofm/duofm/internal/fsx"
)

var (
	// ErrNoHistory is returned by Back/Forward when the respective stack is
	// empty
	ErrNoHistory = errors.New("no more history")

	// ErrAtRoot is returned by Up at the filesystem root
	ErrAtRoot = errors.New("already at filesystem root")
)

// Navigator is the state machine for one pane.
type Navigator struct {
	current string
	back    []string
	forward []string
	entries []fsx.Entry
	opts    fsx.ListOptions
}

// New creates a Navigator viewing dir with the given listing options.
func New(dir string, opts fsx.ListOptions) (*Navigator, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}
	n := &Navigator{
		current: abs,
		opts:    opts,
	}
	if err := n.Refresh(); err != nil {
		return nil, err
	}
	return n, nil
}

// Current returns the directory the pane is viewing.
func (n *Navigator) Current() string {
	return n.current
}

// Entries returns the current listing snapshot.
func (n *Navigator) Entries() []fsx.Entry {
	return n.entries
}

// Shows reports whether the pane currently displays dir.
func (n *Navigator) Shows(dir string) bool {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return false
	}
	return n.current == abs
}

// CanBack reports whether Back has anywhere to go.
func (n *Navigator) CanBack() bool { return len(n.back) > 0 }

// CanForward reports whether Forward has anywhere to go.
func (n *Navigator) CanForward() bool { return len(n.forward) > 0 }

// NavigateTo moves the pane to path, pushing the current directory onto the
// back stack and clearing the forward stack.
func (n *Navigator) NavigateTo(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	info, err := os.Stat(abs)
	if err != nil {
		return fsx.Classify(err)
	}
	if !info.IsDir() {
		return fsx.ErrNotADirectory
	}
	if abs == n.current {
		return n.Refresh()
	}

	entries, err := fsx.List(abs, n.opts)
	if err != nil {
		return err
	}

	n.back = append(n.back, n.current)
	n.forward = n.forward[:0]
	n.current = abs
	n.entries = entries
	return nil
}

// Back returns to the previously viewed directory.
func (n *Navigator) Back() error {
	if len(n.back) == 0 {
		return ErrNoHistory
	}

	prev := n.back[len(n.back)-1]
	entries, err := fsx.List(prev, n.opts)
	if err != nil {
		return err
	}

	n.back = n.back[:len(n.back)-1]
	n.forward = append(n.forward, n.current)
	n.current = prev
	n.entries = entries
	return nil
}

// Forward re-enters the directory most recently left via Back.
func (n *Navigator) Forward() error {
	if len(n.forward) == 0 {
		return ErrNoHistory
	}

	next := n.forward[len(n.forward)-1]
	entries, err := fsx.List(next, n.opts)
	if err != nil {
		return err
	}

	n.forward = n.forward[:len(n.forward)-1]
	n.back = append(n.back, n.current)
	n.current = next
	n.entries = entries
	return nil
}

// Up navigates to the parent directory. At the filesystem root this is an
// error, not a silent no-op.
func (n *Navigator) Up() error {
	parent := filepath.Dir(n.current)
	if parent == n.current {
		return ErrAtRoot
	}
	return n.NavigateTo(parent)
}

// Refresh re-reads the current directory without touching history. Must run
// after any mutation targeting the displayed directory, in every pane that
// shows it.
func (n *Navigator) Refresh() error {
	entries, err := fsx.List(n.current, n.opts)
	if err != nil {
		return err
	}
	n.entries = entries
	return nil
}

// SetOptions swaps the listing options (e.g., toggling hidden files) and
// refreshes.
func (n *Navigator) SetOptions(opts fsx.ListOptions) error {
	n.opts = opts
	return n.Refresh()
}
