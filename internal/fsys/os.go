package fsys

import (
	"os"

	"golang.org/x/sys/unix"
)

// OSHandler is an implementation wrapping the [os] standard library functions.
type OSHandler struct{}

func (*OSHandler) Getwd() (string, error) {
	return os.Getwd()
}

func (*OSHandler) Mkdir(name string, perm os.FileMode) error {
	return os.Mkdir(name, perm)
}

func (*OSHandler) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

func (*OSHandler) Open(name string) (*os.File, error) {
	return os.Open(name)
}

func (*OSHandler) OpenFile(name string, flag int, perm os.FileMode) (*os.File, error) {
	return os.OpenFile(name, flag, perm)
}

func (*OSHandler) ReadDir(name string) ([]os.DirEntry, error) {
	return os.ReadDir(name)
}

func (*OSHandler) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

func (*OSHandler) Readlink(name string) (string, error) {
	return os.Readlink(name)
}

func (*OSHandler) Remove(name string) error {
	return os.Remove(name)
}

func (*OSHandler) RemoveAll(path string) error {
	return os.RemoveAll(path)
}

func (*OSHandler) Rename(oldpath string, newpath string) error {
	return os.Rename(oldpath, newpath)
}

func (*OSHandler) Stat(name string) (os.FileInfo, error) {
	return os.Stat(name)
}

func (*OSHandler) WriteFile(name string, data []byte, perm os.FileMode) error {
	return os.WriteFile(name, data, perm)
}

// UnixHandler is an implementation wrapping the [unix] syscall functions.
type UnixHandler struct{}

func (*UnixHandler) Chmod(path string, mode uint32) error {
	return unix.Chmod(path, mode)
}

func (*UnixHandler) Chown(path string, uid int, gid int) error {
	return unix.Chown(path, uid, gid)
}

func (*UnixHandler) Lchown(path string, uid int, gid int) error {
	return unix.Lchown(path, uid, gid)
}

func (*UnixHandler) Lstat(path string, stat *unix.Stat_t) error {
	return unix.Lstat(path, stat)
}

func (*UnixHandler) Statfs(path string, buf *unix.Statfs_t) error {
	return unix.Statfs(path, buf)
}

func (*UnixHandler) Symlink(oldpath string, newpath string) error {
	return unix.Symlink(oldpath, newpath)
}

func (*UnixHandler) UtimesNano(path string, times []unix.Timespec) error {
	return unix.UtimesNano(path, times)
}
