package classyfd

import (
	"context"
	"fmt"
	"os"

	"github.com/jgoring/classyfd/internal/pathing"
)

// defaultFilePerm is the creation mode for files written or touched through
// a [File]; the process umask applies on top.
const defaultFilePerm = os.FileMode(0o644)

// File represents a regular file at a path that may or may not currently
// exist on disk.
type File struct {
	entry
}

// NewFile constructs a [File] from a path, which may be absolute or
// relative to the current working directory. The path need not exist yet,
// but must not currently name a directory.
func NewFile(path string) (*File, error) {
	wd, err := defaultFS.Getwd()
	if err != nil {
		return nil, err
	}

	return NewFileAt(wd, path)
}

// NewFileAt constructs a [File] like [NewFile], resolving a relative path
// against the given base directory instead of the working directory.
func NewFileAt(base string, path string) (*File, error) {
	e, err := newEntry(base, path)
	if err != nil {
		return nil, err
	}

	if isDir, err := e.fsHandler.IsDir(e.path); err != nil {
		return nil, err
	} else if isDir {
		return nil, fmt.Errorf("(file) %w: %s is a directory", ErrWrongType, e.path)
	}

	return &File{entry: e}, nil
}

// IsFile checks if the path currently resolves to a regular file. Useful
// when the filesystem may have changed underneath the value, e.g. a
// directory replacing the file after construction.
func (f *File) IsFile() (bool, error) {
	return f.fsHandler.IsFile(f.path)
}

// Stem returns the file's name without its last extension.
func (f *File) Stem() string {
	return pathing.Stem(f.path)
}

// Extension returns the file's last extension, including the leading dot,
// or an empty string if there is none.
func (f *File) Extension() string {
	return pathing.Extension(f.path)
}

// Extensions returns all of the file's extensions, in order.
func (f *File) Extensions() []string {
	return pathing.Extensions(f.path)
}

// Size returns the file's size in bytes, re-derived from disk on every
// call.
func (f *File) Size() (int64, error) {
	if err := f.fsHandler.RequireFile(f.path); err != nil {
		return 0, err
	}

	metadata, err := f.fsHandler.Metadata(f.path)
	if err != nil {
		return 0, err
	}

	return metadata.Size, nil
}

// ReadBytes reads the entire contents of the file.
func (f *File) ReadBytes() ([]byte, error) {
	if err := f.fsHandler.RequireFile(f.path); err != nil {
		return nil, err
	}

	return f.fsHandler.ReadFile(f.path)
}

// WriteBytes writes data to the file, creating it if it does not yet exist
// and truncating it otherwise.
func (f *File) WriteBytes(data []byte) error {
	if isDir, err := f.fsHandler.IsDir(f.path); err != nil {
		return err
	} else if isDir {
		return fmt.Errorf("(file) %w: %s is a directory", ErrWrongType, f.path)
	}

	return f.fsHandler.WriteFile(f.path, data, defaultFilePerm)
}

// Open opens the file with the given flags, returning the raw [os.File]
// for callers that need streaming access.
func (f *File) Open(flag int, perm os.FileMode) (*os.File, error) {
	if isDir, err := f.fsHandler.IsDir(f.path); err != nil {
		return nil, err
	} else if isDir {
		return nil, fmt.Errorf("(file) %w: %s is a directory", ErrWrongType, f.path)
	}

	return f.fsHandler.OpenFile(f.path, flag, perm)
}

// Touch creates the file empty if nothing exists at its path, or updates
// its timestamps to the current time otherwise.
func (f *File) Touch() error {
	if isDir, err := f.fsHandler.IsDir(f.path); err != nil {
		return err
	} else if isDir {
		return fmt.Errorf("(file) %w: %s is a directory", ErrWrongType, f.path)
	}

	return f.fsHandler.Touch(f.path, defaultFilePerm)
}

// CopyTo copies the file to dest, which may be an existing directory (the
// name is kept) or a full destination path. The copy is verified by
// checksum before it is renamed into its final place.
func (f *File) CopyTo(ctx context.Context, dest string, opts ...Option) error {
	o := buildOptions(opts)

	if err := f.fsHandler.RequireFile(f.path); err != nil {
		return err
	}

	dst, err := f.resolveDest(dest)
	if err != nil {
		return err
	}

	return f.ioHandler.CopyFile(ctx, f.path, dst, o.overwrite, o.ioProgress())
}

// Remove deletes the file from disk. The on-disk target must be a regular
// file; removing a directory goes through [Directory.Remove].
func (f *File) Remove(opts ...Option) error {
	o := buildOptions(opts)

	exists, err := f.fsHandler.Exists(f.path)
	if err != nil {
		return err
	}
	if !exists {
		if o.ignoreMissing {
			return nil
		}

		return fmt.Errorf("(file) %w: %s", ErrNotFound, f.path)
	}

	if err := f.fsHandler.RequireFile(f.path); err != nil {
		return err
	}

	return f.ioHandler.RemoveFile(f.path, o.ignoreMissing)
}
