// Package opener hands files and directories to external programs: the
// platform opener for files, a terminal emulator for directories. Commands
// run with explicit argument vectors; nothing passes through a shell.
package opener

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"runtime"

	"al.essio.dev/pkg/shellescape"
	"github.com/gabriel-vasile/mimetype"
)

// ErrNoTerminal is returned when no known terminal emulator is installed.
var ErrNoTerminal = errors.New("no terminal emulator found")

// Open hands path to the platform opener (xdg-open on Linux, open on macOS).
// The child is detached so the caller's TUI keeps the terminal.
func Open(path string) error {
	if _, err := os.Stat(path); err != nil {
		return err
	}

	var argv []string
	switch runtime.GOOS {
	case "darwin":
		argv = []string{"open", path}
	case "windows":
		argv = []string{"cmd", "/c", "start", "", path}
	default:
		argv = []string{"xdg-open", path}
	}

	slog.Debug("opening with platform opener", "path", path, "content_type", ContentType(path))
	return start(argv)
}

// terminalCandidates lists terminal emulators tried in order on Linux. Each
// entry is the argument vector with the working directory applied by the
// caller's Dir field, so no emulator-specific "--working-directory" flag is
// needed.
var terminalCandidates = [][]string{
	{"x-terminal-emulator"},
	{"gnome-terminal"},
	{"konsole"},
	{"xterm"},
}

// OpenTerminal spawns a terminal emulator with dir as its working directory.
func OpenTerminal(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("not a directory: %s", dir)
	}

	switch runtime.GOOS {
	case "darwin":
		return start([]string{"open", "-a", "Terminal", dir})
	case "windows":
		return startIn([]string{"cmd", "/c", "start", "cmd"}, dir)
	}

	for _, argv := range terminalCandidates {
		if _, err := exec.LookPath(argv[0]); err != nil {
			continue
		}
		return startIn(argv, dir)
	}
	return ErrNoTerminal
}

// ContentType sniffs the MIME type of the file at path, for display in the
// properties view. Directories and unreadable files report an empty string.
func ContentType(path string) string {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return ""
	}
	mtype, err := mimetype.DetectFile(path)
	if err != nil {
		return ""
	}
	return mtype.String()
}

func start(argv []string) error {
	return startIn(argv, "")
}

func startIn(argv []string, dir string) error {
	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Dir = dir
	if err := cmd.Start(); err != nil {
		return err
	}
	slog.Debug("spawned external command",
		"command", shellescape.QuoteCommand(argv),
		"dir", dir,
		"pid", cmd.Process.Pid,
	)
	// Reap the child in the background so it never zombifies
	go func() { _ = cmd.Wait() }()
	return nil
}
