package fsys

import "errors"

var (
	// ErrNotFound is an error that occurs when an operation requires an
	// entry to exist, but its path no longer resolves to anything on disk.
	ErrNotFound = errors.New("no such file or directory")

	// ErrWrongType is an error that occurs when an operation expects a
	// regular file but finds a directory, or the other way around.
	ErrWrongType = errors.New("entry is not of the expected type")
)
