package pathing

import "errors"

var (
	// ErrEmptyPath is an error that occurs when an empty string is given
	// where a path is required.
	ErrEmptyPath = errors.New("path is empty")

	// ErrMalformedPath is an error that occurs when a given path cannot be
	// interpreted as a filesystem path (e.g. it contains a NUL byte).
	ErrMalformedPath = errors.New("path is malformed")

	// ErrEmptyBase is an error that occurs when a relative path needs to be
	// resolved, but no base directory was given to resolve it against.
	ErrEmptyBase = errors.New("base directory is empty")

	// ErrBaseIsRelative is an error that occurs when the given base
	// directory is itself not an absolute path.
	ErrBaseIsRelative = errors.New("base directory is relative")

	// ErrEmptyName is an error that occurs when an empty string is given
	// where an entry name is required.
	ErrEmptyName = errors.New("name is empty")

	// ErrMalformedName is an error that occurs when a given name cannot be
	// used as a single path segment (e.g. "." or "..").
	ErrMalformedName = errors.New("name is malformed")

	// ErrNameHasSeparator is an error that occurs when a given name embeds
	// a path separator; renaming across directories must go through a move.
	ErrNameHasSeparator = errors.New("name contains a path separator")
)
