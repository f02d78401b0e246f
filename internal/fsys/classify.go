package fsys

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"golang.org/x/sys/unix"
)

// isMissing reports whether a stat failure means the path resolves to
// nothing. ENOTDIR covers paths with a regular file among their ancestors,
// which resolve to nothing just like ENOENT paths do.
func isMissing(err error) bool {
	return errors.Is(err, fs.ErrNotExist) || errors.Is(err, unix.ENOTDIR)
}

// Exists checks if a path currently resolves to anything on disk. The answer
// is recomputed on every call and never cached.
func (f *Handler) Exists(path string) (bool, error) {
	if _, err := f.osHandler.Stat(path); err != nil {
		if isMissing(err) {
			return false, nil
		}

		return false, fmt.Errorf("(fs-exists) failed to stat: %w", err)
	}

	return true, nil
}

// IsFile checks if a path currently resolves to a regular file.
func (f *Handler) IsFile(path string) (bool, error) {
	info, err := f.osHandler.Stat(path)
	if err != nil {
		if isMissing(err) {
			return false, nil
		}

		return false, fmt.Errorf("(fs-isfile) failed to stat: %w", err)
	}

	return info.Mode().IsRegular(), nil
}

// IsDir checks if a path currently resolves to a directory.
func (f *Handler) IsDir(path string) (bool, error) {
	info, err := f.osHandler.Stat(path)
	if err != nil {
		if isMissing(err) {
			return false, nil
		}

		return false, fmt.Errorf("(fs-isdir) failed to stat: %w", err)
	}

	return info.IsDir(), nil
}

// IsEmptyDir checks if a path is a directory without any children.
func (f *Handler) IsEmptyDir(path string) (bool, error) {
	entries, err := f.osHandler.ReadDir(path)
	if err != nil {
		return false, fmt.Errorf("(fs-isempty) failed to readdir: %w", err)
	}

	return len(entries) == 0, nil
}

// RequireFile ensures a path exists and is a regular file, surfacing
// [ErrNotFound] or [ErrWrongType] otherwise.
func (f *Handler) RequireFile(path string) error {
	info, err := f.osHandler.Stat(path)
	if err != nil {
		if isMissing(err) {
			return fmt.Errorf("(fs-require) %w: %s", ErrNotFound, path)
		}

		return fmt.Errorf("(fs-require) failed to stat: %w", err)
	}

	if info.IsDir() {
		return fmt.Errorf("(fs-require) %w: %s is a directory", ErrWrongType, path)
	}

	return nil
}

// RequireDir ensures a path exists and is a directory, surfacing
// [ErrNotFound] or [ErrWrongType] otherwise.
func (f *Handler) RequireDir(path string) error {
	info, err := f.osHandler.Stat(path)
	if err != nil {
		if isMissing(err) {
			return fmt.Errorf("(fs-require) %w: %s", ErrNotFound, path)
		}

		return fmt.Errorf("(fs-require) failed to stat: %w", err)
	}

	if !info.IsDir() {
		return fmt.Errorf("(fs-require) %w: %s is not a directory", ErrWrongType, path)
	}

	return nil
}

// SameDevice checks if two existing paths reside on the same physical
// volume, deciding if an atomic rename between them is possible at all.
func (f *Handler) SameDevice(pathA string, pathB string) (bool, error) {
	metaA, err := f.Metadata(pathA)
	if err != nil {
		return false, err
	}

	metaB, err := f.Metadata(pathB)
	if err != nil {
		return false, err
	}

	return metaA.Device == metaB.Device, nil
}

// Getwd returns the current working directory of the process.
func (f *Handler) Getwd() (string, error) {
	wd, err := f.osHandler.Getwd()
	if err != nil {
		return "", fmt.Errorf("(fs-getwd) %w", err)
	}

	return wd, nil
}

// ParentOf returns the parent directory of a path.
func ParentOf(path string) string {
	return filepath.Dir(path)
}
