// Package fileio implements the mutation engine for filesystem entries:
// renames, moves, verified copies and removals.
//
// Same-volume relocations use the atomic rename primitive of the underlying
// filesystem. Cross-volume relocations degrade to copy-verify-remove and are
// not crash-atomic; a crash mid-transfer leaves the source untouched and at
// most a temporary file at the destination.
package fileio

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/jgoring/classyfd/internal/fsys"
	"golang.org/x/sys/unix"
)

type fsProvider interface {
	Exists(path string) (bool, error)
	HasEnoughFreeSpace(path string, fileSize uint64) (bool, error)
	IsDir(path string) (bool, error)
	IsEmptyDir(path string) (bool, error)
	Metadata(path string) (*fsys.Metadata, error)
	SameDevice(pathA string, pathB string) (bool, error)
}

type osProvider interface {
	Mkdir(name string, perm os.FileMode) error
	Open(name string) (*os.File, error)
	OpenFile(name string, flag int, perm os.FileMode) (*os.File, error)
	Remove(name string) error
	RemoveAll(path string) error
	Rename(oldpath string, newpath string) error
	Stat(name string) (os.FileInfo, error)
}

type unixProvider interface {
	Chmod(path string, mode uint32) error
	Chown(path string, uid int, gid int) error
	Lchown(path string, uid int, gid int) error
	Symlink(oldpath string, newpath string) error
	UtimesNano(path string, times []unix.Timespec) error
}

type walkProvider interface {
	WalkDir(root string, fn fs.WalkDirFunc) error
}

// FileWalker is an implementation wrapping [filepath.WalkDir].
type FileWalker struct{}

func (*FileWalker) WalkDir(root string, fn fs.WalkDirFunc) error {
	return filepath.WalkDir(root, fn)
}

// Progress is a callback reporting transferred bytes for a single source
// path during a copy-based operation.
type Progress func(path string, copied int64, total int64)

// Handler is the principal implementation of the mutation engine.
type Handler struct {
	fsHandler   fsProvider
	osHandler   osProvider
	unixHandler unixProvider
	walkHandler walkProvider
}

// NewHandler returns a pointer to a new mutation [Handler].
func NewHandler(fsHandler fsProvider, osHandler osProvider, unixHandler unixProvider, walkHandler walkProvider) *Handler {
	return &Handler{
		fsHandler:   fsHandler,
		osHandler:   osHandler,
		unixHandler: unixHandler,
		walkHandler: walkHandler,
	}
}
