// Package fsys implements the host filesystem boundary: existence and type
// queries, metadata retrieval and disk usage statistics.
//
// All state is re-derived from disk on every call; nothing is cached between
// calls, so the filesystem changing underneath is observed on the next query
// rather than papered over by stale answers.
package fsys

import (
	"os"

	"golang.org/x/sys/unix"
)

type osProvider interface {
	Getwd() (string, error)
	MkdirAll(path string, perm os.FileMode) error
	Open(name string) (*os.File, error)
	OpenFile(name string, flag int, perm os.FileMode) (*os.File, error)
	ReadDir(name string) ([]os.DirEntry, error)
	ReadFile(name string) ([]byte, error)
	Readlink(name string) (string, error)
	Stat(name string) (os.FileInfo, error)
	WriteFile(name string, data []byte, perm os.FileMode) error
}

type unixProvider interface {
	Chown(path string, uid int, gid int) error
	Lstat(path string, stat *unix.Stat_t) error
	Statfs(path string, buf *unix.Statfs_t) error
	UtimesNano(path string, times []unix.Timespec) error
}

// Handler is the principal implementation for host filesystem queries.
type Handler struct {
	osHandler   osProvider
	unixHandler unixProvider
}

// NewHandler returns a pointer to a new filesystem [Handler].
func NewHandler(osHandler osProvider, unixHandler unixProvider) *Handler {
	return &Handler{
		osHandler:   osHandler,
		unixHandler: unixHandler,
	}
}
