package clipboard

import "testing"

func TestCopyCutClear(t *testing.T) {
	m := New()

	if m.Active() {
		t.Error("new clipboard should be inactive")
	}

	m.Copy([]string{"/tmp/a", "/tmp/b"})
	snap := m.Snapshot()
	if snap.Mode != ModeCopy || len(snap.Paths) != 2 {
		t.Errorf("after Copy: mode=%v paths=%v", snap.Mode, snap.Paths)
	}

	m.Cut([]string{"/tmp/c"})
	snap = m.Snapshot()
	if snap.Mode != ModeCut || len(snap.Paths) != 1 || snap.Paths[0] != "/tmp/c" {
		t.Errorf("Cut should replace state: mode=%v paths=%v", snap.Mode, snap.Paths)
	}

	m.Clear()
	snap = m.Snapshot()
	if snap.Mode != ModeEmpty || len(snap.Paths) != 0 {
		t.Errorf("after Clear: mode=%v paths=%v", snap.Mode, snap.Paths)
	}
}

func TestEmptySelectionIgnored(t *testing.T) {
	m := New()
	m.Copy([]string{"/tmp/a"})

	// Empty path sets must never leave the clipboard in a mode with no paths
	m.Copy(nil)
	m.Cut([]string{})

	snap := m.Snapshot()
	if snap.Mode != ModeCopy || len(snap.Paths) != 1 {
		t.Errorf("empty selections should be ignored: mode=%v paths=%v", snap.Mode, snap.Paths)
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	m := New()
	m.Copy([]string{"/tmp/a"})

	snap := m.Snapshot()
	snap.Paths[0] = "/tmp/mutated"

	if got := m.Snapshot().Paths[0]; got != "/tmp/a" {
		t.Errorf("snapshot mutation leaked into manager: %q", got)
	}
}

func TestModeString(t *testing.T) {
	tests := []struct {
		mode Mode
		want string
	}{
		{ModeEmpty, "empty"},
		{ModeCopy, "copy"},
		{ModeCut, "cut"},
	}
	for _, tt := range tests {
		if got := tt.mode.String(); got != tt.want {
			t.Errorf("Mode(%d).String() = %q, want %q", tt.mode, got, tt.want)
		}
	}
}
