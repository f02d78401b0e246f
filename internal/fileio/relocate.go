package fileio

import (
	"context"
	"errors"
	"fmt"

	"github.com/jgoring/classyfd/internal/fsys"
	"golang.org/x/sys/unix"
)

// Relocate moves the entry at src to the fully specified destination path
// dst, after the shared safety checks: the source must exist, the
// destination parent must be an existing directory and the destination must
// be free unless an overwrite was requested.
//
// Same-volume relocations are a single atomic rename. Cross-volume
// relocations degrade to copy-verify-remove and are not crash-atomic.
func (i *Handler) Relocate(ctx context.Context, src string, dst string, overwrite bool, progress Progress) error {
	metadata, err := i.fsHandler.Metadata(src)
	if err != nil {
		return fmt.Errorf("(io-relocate) %w", err)
	}

	if src == dst {
		return nil
	}

	if err := i.checkDestination(dst, overwrite); err != nil {
		return err
	}

	sameDevice, err := i.fsHandler.SameDevice(fsys.ParentOf(src), fsys.ParentOf(dst))
	if err != nil {
		return fmt.Errorf("(io-relocate) failed to compare volumes: %w", err)
	}

	if sameDevice {
		err := i.osHandler.Rename(src, dst)
		if err == nil {
			return nil
		}
		// Equal device ids do not guarantee a workable rename (e.g. two
		// bind mounts of the same volume), so EXDEV still degrades to a
		// copy instead of failing the relocation.
		if !errors.Is(err, unix.EXDEV) {
			return fmt.Errorf("(io-relocate) failed to rename: %w", err)
		}
	}

	if metadata.IsDir {
		if err := i.CopyTree(ctx, src, dst, overwrite, progress); err != nil {
			return err
		}

		if err := i.osHandler.RemoveAll(src); err != nil {
			return fmt.Errorf("(io-relocate) failed to remove source tree after move: %w", err)
		}

		return nil
	}

	if err := i.CopyFile(ctx, src, dst, overwrite, progress); err != nil {
		return err
	}

	if err := i.osHandler.Remove(src); err != nil {
		return fmt.Errorf("(io-relocate) failed to remove source after move: %w", err)
	}

	return nil
}
