package fsys

import (
	"fmt"
	"os"
)

// ReadFile reads the entire contents of the file at the given path.
func (f *Handler) ReadFile(path string) ([]byte, error) {
	data, err := f.osHandler.ReadFile(path)
	if err != nil {
		if isMissing(err) {
			return nil, fmt.Errorf("(fs-read) %w: %s", ErrNotFound, path)
		}

		return nil, fmt.Errorf("(fs-read) failed to read: %w", err)
	}

	return data, nil
}

// WriteFile writes data to the file at the given path, creating it if it
// does not yet exist and truncating it otherwise.
func (f *Handler) WriteFile(path string, data []byte, perm os.FileMode) error {
	if err := f.osHandler.WriteFile(path, data, perm); err != nil {
		return fmt.Errorf("(fs-write) failed to write: %w", err)
	}

	return nil
}

// Open opens the file at the given path for reading.
func (f *Handler) Open(path string) (*os.File, error) {
	file, err := f.osHandler.Open(path)
	if err != nil {
		if isMissing(err) {
			return nil, fmt.Errorf("(fs-open) %w: %s", ErrNotFound, path)
		}

		return nil, fmt.Errorf("(fs-open) failed to open: %w", err)
	}

	return file, nil
}

// OpenFile opens the file at the given path with the given flags, creating
// it with perm when the flags request that.
func (f *Handler) OpenFile(path string, flag int, perm os.FileMode) (*os.File, error) {
	file, err := f.osHandler.OpenFile(path, flag, perm)
	if err != nil {
		if isMissing(err) {
			return nil, fmt.Errorf("(fs-open) %w: %s", ErrNotFound, path)
		}

		return nil, fmt.Errorf("(fs-open) failed to open: %w", err)
	}

	return file, nil
}

// Touch creates an empty file at the given path if nothing exists there,
// or updates the timestamps of the existing file to the current time.
func (f *Handler) Touch(path string, perm os.FileMode) error {
	file, err := f.osHandler.OpenFile(path, os.O_CREATE|os.O_WRONLY, perm)
	if err != nil {
		return fmt.Errorf("(fs-touch) failed to open: %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("(fs-touch) failed to close: %w", err)
	}

	if err := f.unixHandler.UtimesNano(path, nil); err != nil {
		return fmt.Errorf("(fs-touch) failed to set timestamps: %w", err)
	}

	return nil
}

// MkdirAll creates the directory at the given path, along with any missing
// parents. An already existing directory is not an error.
func (f *Handler) MkdirAll(path string, perm os.FileMode) error {
	if err := f.osHandler.MkdirAll(path, perm); err != nil {
		return fmt.Errorf("(fs-mkdir) failed to create: %w", err)
	}

	return nil
}
