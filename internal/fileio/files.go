package fileio

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/jgoring/classyfd/internal/fsys"
	"github.com/zeebo/blake3"
	"golang.org/x/sys/unix"
)

// tmpSuffix marks in-flight destination files, so that an interrupted
// transfer never leaves a partial file under the final name.
const tmpSuffix = ".classyfd"

//nolint:containedctx
type contextReader struct {
	ctx    context.Context
	reader io.Reader
}

func (cr *contextReader) Read(p []byte) (int, error) {
	select {
	case <-cr.ctx.Done():
		return 0, context.Canceled
	default:
		return cr.reader.Read(p)
	}
}

type progressWriter struct {
	path     string
	total    int64
	copied   int64
	progress Progress
}

func (pw *progressWriter) Write(p []byte) (int, error) {
	pw.copied += int64(len(p))
	pw.progress(pw.path, pw.copied, pw.total)

	return len(p), nil
}

// CopyFile copies a single regular file to the given destination path,
// verifying source and destination checksums before the destination is
// renamed into its final place. Ownership, permissions and timestamps of the
// source are restored on the destination.
func (i *Handler) CopyFile(ctx context.Context, src string, dst string, overwrite bool, progress Progress) error {
	metadata, err := i.fsHandler.Metadata(src)
	if err != nil {
		return fmt.Errorf("(io-copy) %w", err)
	}

	if err := i.checkDestination(dst, overwrite); err != nil {
		return err
	}

	if enough, err := i.fsHandler.HasEnoughFreeSpace(fsys.ParentOf(dst), uint64(metadata.Size)); err != nil { //nolint:gosec
		return fmt.Errorf("(io-copy) failed to check free space: %w", err)
	} else if !enough {
		return fmt.Errorf("(io-copy) %w: %s", ErrNotEnoughSpace, dst)
	}

	if err := i.copyFileContents(ctx, src, dst, metadata, overwrite, progress); err != nil {
		return err
	}

	if err := i.ensurePermissions(dst, metadata); err != nil {
		return err
	}

	if err := i.ensureTimestamps(dst, metadata); err != nil {
		return err
	}

	return nil
}

func (i *Handler) copyFileContents(ctx context.Context, src string, dst string, metadata *fsys.Metadata, overwrite bool, progress Progress) error {
	var transferComplete bool

	srcFile, err := i.osHandler.Open(src)
	if err != nil {
		return fmt.Errorf("(io-copy) failed to open source file: %w", err)
	}
	defer srcFile.Close()

	tmpPath := dst + tmpSuffix
	defer func() {
		if !transferComplete {
			i.osHandler.Remove(tmpPath) //nolint:errcheck
		}
	}()

	dstFile, err := i.osHandler.OpenFile(tmpPath, os.O_CREATE|os.O_WRONLY|os.O_EXCL, os.FileMode(metadata.Perms))
	if err != nil {
		return fmt.Errorf("(io-copy) failed to open destination file %s: %w", tmpPath, err)
	}
	defer dstFile.Close()

	srcHasher := blake3.New()
	dstHasher := blake3.New()

	ctxReader := &contextReader{
		ctx:    ctx,
		reader: io.TeeReader(srcFile, srcHasher),
	}

	writers := []io.Writer{dstFile, dstHasher}
	if progress != nil {
		writers = append(writers, &progressWriter{
			path:     src,
			total:    metadata.Size,
			progress: progress,
		})
	}

	if _, err := io.Copy(io.MultiWriter(writers...), ctxReader); err != nil {
		if errors.Is(err, context.Canceled) {
			return fmt.Errorf("(io-copy) transfer canceled: %w", err)
		}

		return fmt.Errorf("(io-copy) failed to copy file: %w", err)
	}

	if err := dstFile.Sync(); err != nil {
		return fmt.Errorf("(io-copy) failed to sync destination file: %w", err)
	}

	srcChecksum := hex.EncodeToString(srcHasher.Sum(nil))
	dstChecksum := hex.EncodeToString(dstHasher.Sum(nil))

	if srcChecksum != dstChecksum {
		return fmt.Errorf("(io-copy) %w: %s (src) != %s (dst)", ErrHashMismatch, srcChecksum, dstChecksum)
	}

	if !overwrite {
		if _, err := i.osHandler.Stat(dst); err == nil {
			return fmt.Errorf("(io-copy) %w: %s", ErrDestExists, dst)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("(io-copy) failed to check destination existence: %w", err)
		}
	}

	if err := i.osHandler.Rename(tmpPath, dst); err != nil {
		return fmt.Errorf("(io-copy) failed to rename temporary file to destination file: %w", err)
	}

	transferComplete = true

	return nil
}

// checkDestination ensures a destination path is usable: its parent must be
// an existing directory and the path itself must be free, unless an
// overwrite was requested and the occupant is not a directory.
func (i *Handler) checkDestination(dst string, overwrite bool) error {
	parent := fsys.ParentOf(dst)

	if isDir, err := i.fsHandler.IsDir(parent); err != nil {
		return fmt.Errorf("(io-dest) failed to check parent: %w", err)
	} else if !isDir {
		return fmt.Errorf("(io-dest) %w: %s", ErrParentNotFound, parent)
	}

	exists, err := i.fsHandler.Exists(dst)
	if err != nil {
		return fmt.Errorf("(io-dest) failed to check existence: %w", err)
	}

	if exists {
		if !overwrite {
			return fmt.Errorf("(io-dest) %w: %s", ErrDestExists, dst)
		}

		if isDir, err := i.fsHandler.IsDir(dst); err != nil {
			return fmt.Errorf("(io-dest) failed to check destination: %w", err)
		} else if isDir {
			return fmt.Errorf("(io-dest) %w: %s is a directory and cannot be replaced", ErrDestExists, dst)
		}
	}

	return nil
}

func (i *Handler) ensurePermissions(path string, metadata *fsys.Metadata) error {
	if err := i.unixHandler.Chown(path, int(metadata.UID), int(metadata.GID)); err != nil {
		return fmt.Errorf("(io-perms) failed to set ownership on %s: %w", path, err)
	}

	if err := i.unixHandler.Chmod(path, metadata.Perms); err != nil {
		return fmt.Errorf("(io-perms) failed to set permissions on %s: %w", path, err)
	}

	return nil
}

func (i *Handler) ensureLinkPermissions(path string, metadata *fsys.Metadata) error {
	if err := i.unixHandler.Lchown(path, int(metadata.UID), int(metadata.GID)); err != nil {
		return fmt.Errorf("(io-perms) failed to set ownership on link %s: %w", path, err)
	}

	return nil
}

func (i *Handler) ensureTimestamps(path string, metadata *fsys.Metadata) error {
	ts := []unix.Timespec{metadata.AccessedAt, metadata.ModifiedAt}

	if err := i.unixHandler.UtimesNano(path, ts); err != nil {
		return fmt.Errorf("(io-times) failed to set timestamps on %s: %w", path, err)
	}

	return nil
}
