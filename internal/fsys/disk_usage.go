package fsys

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// DiskStats holds disk usage statistics for a mounted filesystem.
type DiskStats struct {
	TotalSize uint64
	FreeSpace uint64
}

// DiskUsage retrieves [DiskStats] for the filesystem containing the path.
func (f *Handler) DiskUsage(path string) (DiskStats, error) {
	var stat unix.Statfs_t

	if err := f.unixHandler.Statfs(path, &stat); err != nil {
		return DiskStats{}, fmt.Errorf("(fs-diskusage) failed to statfs: %w", err)
	}

	stats := DiskStats{
		TotalSize: stat.Blocks * uint64(stat.Bsize), //nolint:gosec
		FreeSpace: stat.Bavail * uint64(stat.Bsize), //nolint:gosec
	}

	return stats, nil
}

// HasEnoughFreeSpace checks if the filesystem containing the path can house
// fileSize additional bytes.
func (f *Handler) HasEnoughFreeSpace(path string, fileSize uint64) (bool, error) {
	stats, err := f.DiskUsage(path)
	if err != nil {
		return false, err
	}

	return stats.FreeSpace > fileSize, nil
}
