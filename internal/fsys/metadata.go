package fsys

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"
)

// Metadata holds a point-in-time snapshot of an on-disk entry's attributes,
// as reported by a single lstat call.
type Metadata struct {
	Inode      uint64
	Device     uint64
	Perms      uint32
	UID        uint32
	GID        uint32
	AccessedAt unix.Timespec
	ModifiedAt unix.Timespec
	Size       int64
	IsDir      bool
	IsSymlink  bool
	SymlinkTo  string
}

// Metadata retrieves a [Metadata] snapshot for the given path. A missing
// path surfaces [ErrNotFound].
func (f *Handler) Metadata(path string) (*Metadata, error) {
	var stat unix.Stat_t

	if err := f.unixHandler.Lstat(path, &stat); err != nil {
		if errors.Is(err, unix.ENOENT) || errors.Is(err, unix.ENOTDIR) {
			return nil, fmt.Errorf("(fs-metadata) %w: %s", ErrNotFound, path)
		}

		return nil, fmt.Errorf("(fs-metadata) failed to lstat: %w", err)
	}

	metadata := &Metadata{
		Inode:      stat.Ino,
		Device:     uint64(stat.Dev), //nolint:unconvert
		Perms:      (uint32(stat.Mode) & 0o777),
		UID:        stat.Uid,
		GID:        stat.Gid,
		AccessedAt: stat.Atim,
		ModifiedAt: stat.Mtim,
		Size:       stat.Size,
		IsDir:      (stat.Mode & unix.S_IFMT) == unix.S_IFDIR,
		IsSymlink:  (stat.Mode & unix.S_IFMT) == unix.S_IFLNK,
	}

	if metadata.IsSymlink {
		symlinkTarget, err := f.osHandler.Readlink(path)
		if err != nil {
			return nil, fmt.Errorf("(fs-metadata) failed to read symlink: %w", err)
		}
		metadata.SymlinkTo = symlinkTarget
	}

	return metadata, nil
}
