package trash

import "errors"

var (
	// ErrNotFound is returned when an entry cannot be found in the holding area
	ErrNotFound = errors.New("entry not found in trash")
)

// StorageError wraps an error with context about the storage operation
type StorageError struct {
	// Op is the operation that failed (e.g., "put", "restore", "remove")
	Op string

	// Path is the path of the entry that caused the error
	Path string

	// Err is the underlying error
	Err error
}

func (e *StorageError) Error() string {
	if e.Path == "" {
		return e.Op + ": " + e.Err.Error()
	}
	return e.Op + " " + e.Path + ": " + e.Err.Error()
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// NewStorageError creates a new StorageError
func NewStorageError(op, path string, err error) error {
	return &StorageError{
		Op:   op,
		Path: path,
		Err:  err,
	}
}
