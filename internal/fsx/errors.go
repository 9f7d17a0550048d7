package fsx

import (
	"errors"
	"io/fs"
	"syscall"
)

// Common error kinds surfaced by filesystem-touching operations. Higher
// layers match on these with errors.Is and decide how to present them.
var (
	// ErrNotFound is returned when a path does not exist
	ErrNotFound = errors.New("no such file or directory")

	// ErrAlreadyExists is returned when a target name is already taken
	ErrAlreadyExists = errors.New("file already exists")

	// ErrNotADirectory is returned when a directory was expected
	ErrNotADirectory = errors.New("not a directory")

	// ErrPermission is returned when the OS denies an operation
	ErrPermission = errors.New("permission denied")

	// ErrPathTooLong is returned when a path exceeds platform limits
	ErrPathTooLong = errors.New("path too long")
)

// Classify maps OS-level errors onto the package error kinds. Errors that
// don't correspond to a known kind are returned unchanged.
func Classify(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, fs.ErrNotExist):
		return ErrNotFound
	case errors.Is(err, fs.ErrExist):
		return ErrAlreadyExists
	case errors.Is(err, fs.ErrPermission):
		return ErrPermission
	case errors.Is(err, syscall.ENOTDIR):
		return ErrNotADirectory
	case errors.Is(err, syscall.ENAMETOOLONG):
		return ErrPathTooLong
	default:
		return err
	}
}
