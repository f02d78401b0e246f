package classyfd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"iter"
	"os"
	"path/filepath"
)

// defaultDirPerm is the creation mode for directories created through a
// [Directory]; the process umask applies on top.
const defaultDirPerm = os.FileMode(0o755)

// listBatchSize is the number of children read from an open directory
// handle per batch while iterating.
const listBatchSize = 128

// Directory represents a directory at a path that may or may not currently
// exist on disk.
type Directory struct {
	entry
}

// NewDirectory constructs a [Directory] from a path, which may be absolute
// or relative to the current working directory. The path need not exist
// yet, but must not currently name a regular file.
func NewDirectory(path string) (*Directory, error) {
	wd, err := defaultFS.Getwd()
	if err != nil {
		return nil, err
	}

	return NewDirectoryAt(wd, path)
}

// NewDirectoryAt constructs a [Directory] like [NewDirectory], resolving a
// relative path against the given base directory instead of the working
// directory.
func NewDirectoryAt(base string, path string) (*Directory, error) {
	e, err := newEntry(base, path)
	if err != nil {
		return nil, err
	}

	exists, err := e.fsHandler.Exists(e.path)
	if err != nil {
		return nil, err
	}
	if exists {
		if isDir, err := e.fsHandler.IsDir(e.path); err != nil {
			return nil, err
		} else if !isDir {
			return nil, fmt.Errorf("(dir) %w: %s is not a directory", ErrWrongType, e.path)
		}
	}

	return &Directory{entry: e}, nil
}

// IsDir checks if the path currently resolves to a directory. Useful when
// the filesystem may have changed underneath the value.
func (d *Directory) IsDir() (bool, error) {
	return d.fsHandler.IsDir(d.path)
}

// Create creates the directory on disk, along with any missing parents. An
// already existing directory is not an error.
func (d *Directory) Create() error {
	if isFile, err := d.fsHandler.IsFile(d.path); err != nil {
		return err
	} else if isFile {
		return fmt.Errorf("(dir) %w: %s is not a directory", ErrWrongType, d.path)
	}

	return d.fsHandler.MkdirAll(d.path, defaultDirPerm)
}

// IsEmpty checks if the directory exists and has no children.
func (d *Directory) IsEmpty() (bool, error) {
	if err := d.fsHandler.RequireDir(d.path); err != nil {
		return false, err
	}

	return d.fsHandler.IsEmptyDir(d.path)
}

// Children returns a lazy iteration over the directory's immediate
// children, each wrapped as a [*File] or [*Directory] by its on-disk type.
// The order is whatever the filesystem reports. The sequence reads from a
// directory handle opened at iteration start and is not restartable; a
// fresh call re-reads the directory.
func (d *Directory) Children() iter.Seq2[Entry, error] {
	return func(yield func(Entry, error) bool) {
		if err := d.fsHandler.RequireDir(d.path); err != nil {
			yield(nil, err)

			return
		}

		handle, err := d.fsHandler.Open(d.path)
		if err != nil {
			yield(nil, err)

			return
		}
		defer handle.Close()

		for {
			batch, err := handle.ReadDir(listBatchSize)
			for _, child := range batch {
				if !yield(d.wrapChild(child.Name(), child.IsDir()), nil) {
					return
				}
			}

			if errors.Is(err, io.EOF) {
				return
			}
			if err != nil {
				yield(nil, fmt.Errorf("(dir) failed to read children: %w", err))

				return
			}
		}
	}
}

// List reads all of the directory's immediate children at once.
func (d *Directory) List() ([]Entry, error) {
	entries := []Entry{}

	for child, err := range d.Children() {
		if err != nil {
			return nil, err
		}
		entries = append(entries, child)
	}

	return entries, nil
}

func (d *Directory) wrapChild(name string, isDir bool) Entry {
	child := entry{
		path:      filepath.Join(d.path, name),
		base:      d.base,
		fsHandler: d.fsHandler,
		ioHandler: d.ioHandler,
	}

	if isDir {
		return &Directory{entry: child}
	}

	return &File{entry: child}
}

// CopyTo copies the directory and all of its descendants to dest, which
// may be an existing directory (the name is kept) or a full destination
// path. Merging into an existing directory is not supported.
func (d *Directory) CopyTo(ctx context.Context, dest string, opts ...Option) error {
	o := buildOptions(opts)

	if err := d.fsHandler.RequireDir(d.path); err != nil {
		return err
	}

	dst, err := d.resolveDest(dest)
	if err != nil {
		return err
	}

	return d.ioHandler.CopyTree(ctx, d.path, dst, o.overwrite, o.ioProgress())
}

// Remove deletes the directory from disk. Without [WithRecursive] the
// directory must be empty; with it, all descendants are removed as well.
// The on-disk target must be a directory; removing a regular file goes
// through [File.Remove].
func (d *Directory) Remove(opts ...Option) error {
	o := buildOptions(opts)

	exists, err := d.fsHandler.Exists(d.path)
	if err != nil {
		return err
	}
	if !exists {
		if o.ignoreMissing {
			return nil
		}

		return fmt.Errorf("(dir) %w: %s", ErrNotFound, d.path)
	}

	if err := d.fsHandler.RequireDir(d.path); err != nil {
		return err
	}

	return d.ioHandler.RemoveDir(d.path, o.recursive, o.ignoreMissing)
}
