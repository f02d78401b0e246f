package fileio

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/jgoring/classyfd/internal/fsys"
	"golang.org/x/sys/unix"
)

// RemoveFile removes the single non-directory entry at the given path.
func (i *Handler) RemoveFile(path string, ignoreMissing bool) error {
	if err := i.osHandler.Remove(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			if ignoreMissing {
				return nil
			}

			return fmt.Errorf("(io-remove) %w: %s", fsys.ErrNotFound, path)
		}

		return fmt.Errorf("(io-remove) failed to remove: %w", err)
	}

	return nil
}

// RemoveDir removes the directory at the given path. Without recursive set,
// the directory must be empty.
func (i *Handler) RemoveDir(path string, recursive bool, ignoreMissing bool) error {
	if exists, err := i.fsHandler.Exists(path); err != nil {
		return fmt.Errorf("(io-remove) failed to check existence: %w", err)
	} else if !exists {
		if ignoreMissing {
			return nil
		}

		return fmt.Errorf("(io-remove) %w: %s", fsys.ErrNotFound, path)
	}

	if recursive {
		if err := i.osHandler.RemoveAll(path); err != nil {
			return fmt.Errorf("(io-remove) failed to remove tree: %w", err)
		}

		return nil
	}

	if err := i.osHandler.Remove(path); err != nil {
		if errors.Is(err, unix.ENOTEMPTY) || errors.Is(err, unix.EEXIST) {
			return fmt.Errorf("(io-remove) %w: %s", ErrDirNotEmpty, path)
		}

		return fmt.Errorf("(io-remove) failed to remove: %w", err)
	}

	return nil
}
