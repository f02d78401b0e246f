package fileio

import "errors"

var (
	// ErrDestExists is an error that occurs when the destination of a
	// rename, move or copy is already taken and no overwrite was requested.
	ErrDestExists = errors.New("destination already exists")

	// ErrParentNotFound is an error that occurs when the parent directory
	// of a destination path does not exist.
	ErrParentNotFound = errors.New("destination parent directory does not exist")

	// ErrDirNotEmpty is an error that occurs when a directory is to be
	// removed non-recursively, but still has children.
	ErrDirNotEmpty = errors.New("directory is not empty")

	// ErrNotEnoughSpace is an error that occurs when there is not enough
	// free space to take the transferred bytes on the target volume.
	ErrNotEnoughSpace = errors.New("not enough free space on destination")

	// ErrHashMismatch is an error that occurs on a source/destination hash
	// mismatch, which usually means underlying transfer/hardware issues.
	ErrHashMismatch = errors.New("hash mismatch")
)
