package fileio

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/jgoring/classyfd/internal/fsys"
)

type copiedDir struct {
	dstPath  string
	metadata *fsys.Metadata
}

// CopyTree copies the directory at src and all of its descendants to the
// destination path dst. The destination itself must not already exist;
// merging into an existing directory is not supported. With overwrite set,
// a regular file occupying the destination path is replaced.
func (i *Handler) CopyTree(ctx context.Context, src string, dst string, overwrite bool, progress Progress) error {
	if _, err := i.fsHandler.Metadata(src); err != nil {
		return fmt.Errorf("(io-tree) %w", err)
	}

	parent := fsys.ParentOf(dst)
	if isDir, err := i.fsHandler.IsDir(parent); err != nil {
		return fmt.Errorf("(io-tree) failed to check parent: %w", err)
	} else if !isDir {
		return fmt.Errorf("(io-tree) %w: %s", ErrParentNotFound, parent)
	}

	if exists, err := i.fsHandler.Exists(dst); err != nil {
		return fmt.Errorf("(io-tree) failed to check existence: %w", err)
	} else if exists {
		if isDir, err := i.fsHandler.IsDir(dst); err != nil {
			return fmt.Errorf("(io-tree) failed to check destination: %w", err)
		} else if isDir || !overwrite {
			return fmt.Errorf("(io-tree) %w: %s", ErrDestExists, dst)
		}

		if err := i.osHandler.Remove(dst); err != nil {
			return fmt.Errorf("(io-tree) failed to replace destination: %w", err)
		}
	}

	var dirs []*copiedDir

	err := i.walkHandler.WalkDir(src, func(path string, _ fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}

		relPath, err := filepath.Rel(src, path)
		if err != nil {
			return fmt.Errorf("failed to rel: %w", err)
		}
		target := filepath.Join(dst, relPath)

		metadata, err := i.fsHandler.Metadata(path)
		if err != nil {
			return err
		}

		switch {
		case metadata.IsDir:
			if err := i.osHandler.Mkdir(target, os.FileMode(metadata.Perms)); err != nil {
				return fmt.Errorf("failed to create directory %s: %w", target, err)
			}
			if err := i.ensurePermissions(target, metadata); err != nil {
				return err
			}
			dirs = append(dirs, &copiedDir{dstPath: target, metadata: metadata})

		case metadata.IsSymlink:
			if err := i.unixHandler.Symlink(metadata.SymlinkTo, target); err != nil {
				return fmt.Errorf("failed to create symlink %s: %w", target, err)
			}
			if err := i.ensureLinkPermissions(target, metadata); err != nil {
				return err
			}

		default:
			if err := i.copyFileContents(ctx, path, target, metadata, false, progress); err != nil {
				return err
			}
			if err := i.ensurePermissions(target, metadata); err != nil {
				return err
			}
			if err := i.ensureTimestamps(target, metadata); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("(io-tree) failed walking tree: %w", err)
	}

	// Directory timestamps go last and deepest-first, as writing the
	// contents of a directory bumps its mtime again.
	for idx := len(dirs) - 1; idx >= 0; idx-- {
		if err := i.ensureTimestamps(dirs[idx].dstPath, dirs[idx].metadata); err != nil {
			return err
		}
	}

	return nil
}
