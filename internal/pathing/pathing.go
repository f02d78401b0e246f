// Package pathing implements path resolution and name validation for
// filesystem entries.
//
// Resolution is pure computation over the inputs; no part of a path is
// required to exist on disk, so paths for not yet created entries resolve
// the same way as existing ones.
package pathing

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Resolve turns a caller-supplied path into a canonical absolute path,
// suitable as the stable identity of an entry.
//
// Relative paths are resolved against base, which must itself be absolute.
// The result is cleaned of any "." and ".." segments. Resolution performs
// no existence check and has no side effects.
func Resolve(base string, path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("(pathing) %w", ErrEmptyPath)
	}

	if strings.ContainsRune(path, 0) {
		return "", fmt.Errorf("(pathing) %w: contains NUL byte", ErrMalformedPath)
	}

	if !filepath.IsAbs(path) {
		if base == "" {
			return "", fmt.Errorf("(pathing) %w", ErrEmptyBase)
		}
		if !filepath.IsAbs(base) {
			return "", fmt.Errorf("(pathing) %w: %s", ErrBaseIsRelative, base)
		}
		path = filepath.Join(base, path)
	}

	return filepath.Clean(path), nil
}

// ValidateName checks that a name is usable as a single path segment, for
// operations that rename in place and must not cross directories.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("(pathing) %w", ErrEmptyName)
	}

	if strings.ContainsRune(name, 0) {
		return fmt.Errorf("(pathing) %w: contains NUL byte", ErrMalformedName)
	}

	// Both slash variants are rejected, so that a name valid on one
	// platform does not silently become a path on another.
	if strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("(pathing) %w: %q", ErrNameHasSeparator, name)
	}

	if name == "." || name == ".." {
		return fmt.Errorf("(pathing) %w: %q", ErrMalformedName, name)
	}

	return nil
}

// Stem returns the final element of path without its last extension.
func Stem(path string) string {
	name := filepath.Base(path)

	return strings.TrimSuffix(name, filepath.Ext(name))
}

// Extension returns the last extension of the final element of path,
// including the leading dot, or an empty string if there is none.
func Extension(path string) string {
	return filepath.Ext(filepath.Base(path))
}

// Extensions returns all extensions of the final element of path, in order,
// each including its leading dot.
func Extensions(path string) []string {
	name := filepath.Base(path)
	name = strings.TrimPrefix(name, ".")

	var exts []string
	for {
		ext := filepath.Ext(name)
		if ext == "" || ext == name {
			break
		}
		exts = append(exts, ext)
		name = strings.TrimSuffix(name, ext)
	}

	for i, j := 0, len(exts)-1; i < j; i, j = i+1, j-1 {
		exts[i], exts[j] = exts[j], exts[i]
	}

	return exts
}

// ParentN returns the path levels directories above path. Levels of 0 and 1
// both mean the immediate parent. Walking above the root yields the root.
func ParentN(path string, levels int) (string, error) {
	if levels < 0 {
		return "", fmt.Errorf("(pathing) %w: negative levels", ErrMalformedPath)
	}
	if levels == 0 {
		levels = 1
	}

	for range levels {
		path = filepath.Dir(path)
	}

	return path, nil
}
