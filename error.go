package classyfd

import (
	"github.com/jgoring/classyfd/internal/fileio"
	"github.com/jgoring/classyfd/internal/fsys"
	"github.com/jgoring/classyfd/internal/pathing"
)

// The error taxonomy of the package. Failures of the host filesystem layer
// that map to none of these are surfaced wrapped, with their underlying
// cause intact for [errors.Is] and [errors.As]. No error is ever retried
// internally.
var (
	// ErrEmptyPath occurs when an empty string is given where a path is
	// required.
	ErrEmptyPath = pathing.ErrEmptyPath

	// ErrMalformedPath occurs when a given path cannot be interpreted as a
	// filesystem path (e.g. it contains a NUL byte).
	ErrMalformedPath = pathing.ErrMalformedPath

	// ErrNameHasSeparator occurs when a name given to [Entry.Rename] embeds
	// a path separator; renaming across directories must go through
	// [Entry.Move] instead.
	ErrNameHasSeparator = pathing.ErrNameHasSeparator

	// ErrNotFound occurs when an operation requires the entry to exist, but
	// its path no longer resolves to anything on disk.
	ErrNotFound = fsys.ErrNotFound

	// ErrWrongType occurs when an operation expects a regular file but
	// finds a directory, or the other way around.
	ErrWrongType = fsys.ErrWrongType

	// ErrDestExists occurs when a rename, move or copy destination is
	// already taken and [WithOverwrite] was not given.
	ErrDestExists = fileio.ErrDestExists

	// ErrParentNotFound occurs when the parent directory of a destination
	// path does not exist.
	ErrParentNotFound = fileio.ErrParentNotFound

	// ErrDirNotEmpty occurs when a directory is to be removed without
	// [WithRecursive], but still has children.
	ErrDirNotEmpty = fileio.ErrDirNotEmpty

	// ErrNotEnoughSpace occurs when a cross-volume transfer would not fit
	// on the target volume.
	ErrNotEnoughSpace = fileio.ErrNotEnoughSpace

	// ErrHashMismatch occurs when a copied file does not hash identically
	// on both sides, which usually means underlying hardware issues.
	ErrHashMismatch = fileio.ErrHashMismatch
)
