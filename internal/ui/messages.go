package ui

// opDoneMsg reports a completed (or failed) file operation. Dirs carries the
// directories the operation touched so every pane showing one gets refreshed.
type opDoneMsg struct {
	desc string
	dirs []string
	err  error
}

// flashClearMsg clears the status flash after its timeout.
type flashClearMsg struct {
	seq int
}

// errorMsg represents a fatal error that should terminate the UI
type errorMsg struct {
	err error
}

func (e errorMsg) Error() string { return e.err.Error() }
