package engine

import "errors"

var (
	// ErrInvalidDestination is returned when a move would create a cycle in
	// the directory tree or would be a no-op
	ErrInvalidDestination = errors.New("invalid destination")

	// ErrOperationInFlight is returned when a mutating operation is
	// requested while another one is still running
	ErrOperationInFlight = errors.New("another operation is in progress")
)

// OpError wraps an error with context about the failed operation
type OpError struct {
	// Op is the operation that failed (e.g., "create", "rename", "paste")
	Op string

	// Path is the path that caused the error
	Path string

	// Err is the underlying error
	Err error
}

func (e *OpError) Error() string {
	if e.Path == "" {
		return e.Op + ": " + e.Err.Error()
	}
	return e.Op + " " + e.Path + ": " + e.Err.Error()
}

func (e *OpError) Unwrap() error {
	return e.Err
}

func newOpError(op, path string, err error) error {
	return &OpError{
		Op:   op,
		Path: path,
		Err:  err,
	}
}
