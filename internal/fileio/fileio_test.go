package fileio_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/jgoring/classyfd/internal/fileio"
	"github.com/jgoring/classyfd/internal/fsys"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHandler() *fileio.Handler {
	fsHandler := fsys.NewHandler(&fsys.OSHandler{}, &fsys.UnixHandler{})

	return fileio.NewHandler(fsHandler, &fsys.OSHandler{}, &fsys.UnixHandler{}, &fileio.FileWalker{})
}

func TestCopyFile(t *testing.T) {
	t.Parallel()
	handler := newHandler()

	dir := t.TempDir()
	src := filepath.Join(dir, "a.txt")
	dst := filepath.Join(dir, "b.txt")
	require.NoError(t, os.WriteFile(src, []byte("0123456789"), 0o640))

	err := handler.CopyFile(context.Background(), src, dst, false, nil)
	require.NoError(t, err)

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, []byte("0123456789"), data)

	info, err := os.Stat(dst)
	require.NoError(t, err)
	assert.EqualValues(t, 0o640, info.Mode().Perm())

	// Source is untouched by a copy.
	_, err = os.Stat(src)
	require.NoError(t, err)
}

func TestCopyFile_Progress(t *testing.T) {
	t.Parallel()
	handler := newHandler()

	dir := t.TempDir()
	src := filepath.Join(dir, "a.txt")
	dst := filepath.Join(dir, "b.txt")
	require.NoError(t, os.WriteFile(src, []byte("0123456789"), 0o644))

	var lastCopied, lastTotal int64
	progress := func(path string, copied int64, total int64) {
		assert.Equal(t, src, path)
		lastCopied = copied
		lastTotal = total
	}

	require.NoError(t, handler.CopyFile(context.Background(), src, dst, false, progress))

	assert.EqualValues(t, 10, lastCopied)
	assert.EqualValues(t, 10, lastTotal)
}

func TestCopyFile_DestExists(t *testing.T) {
	t.Parallel()
	handler := newHandler()

	dir := t.TempDir()
	src := filepath.Join(dir, "a.txt")
	dst := filepath.Join(dir, "b.txt")
	require.NoError(t, os.WriteFile(src, []byte("new"), 0o644))
	require.NoError(t, os.WriteFile(dst, []byte("old"), 0o644))

	err := handler.CopyFile(context.Background(), src, dst, false, nil)
	require.ErrorIs(t, err, fileio.ErrDestExists)

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, []byte("old"), data)

	err = handler.CopyFile(context.Background(), src, dst, true, nil)
	require.NoError(t, err)

	data, err = os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, []byte("new"), data)
}

func TestCopyFile_ParentNotFound(t *testing.T) {
	t.Parallel()
	handler := newHandler()

	dir := t.TempDir()
	src := filepath.Join(dir, "a.txt")
	require.NoError(t, os.WriteFile(src, []byte("content"), 0o644))

	err := handler.CopyFile(context.Background(), src, filepath.Join(dir, "missing", "b.txt"), false, nil)
	require.ErrorIs(t, err, fileio.ErrParentNotFound)
}

func TestCopyFile_SourceMissing(t *testing.T) {
	t.Parallel()
	handler := newHandler()

	dir := t.TempDir()

	err := handler.CopyFile(context.Background(), filepath.Join(dir, "missing.txt"), filepath.Join(dir, "b.txt"), false, nil)
	require.ErrorIs(t, err, fsys.ErrNotFound)
}

func TestCopyFile_Canceled(t *testing.T) {
	t.Parallel()
	handler := newHandler()

	dir := t.TempDir()
	src := filepath.Join(dir, "a.txt")
	dst := filepath.Join(dir, "b.txt")
	require.NoError(t, os.WriteFile(src, []byte("content"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := handler.CopyFile(ctx, src, dst, false, nil)
	require.ErrorIs(t, err, context.Canceled)

	// Neither the destination nor a temporary file is left behind.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "a.txt", entries[0].Name())
}

func TestRelocate_SameVolume(t *testing.T) {
	t.Parallel()
	handler := newHandler()

	dir := t.TempDir()
	src := filepath.Join(dir, "a.txt")
	dst := filepath.Join(dir, "sub", "b.txt")
	require.NoError(t, os.WriteFile(src, []byte("0123456789"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))

	err := handler.Relocate(context.Background(), src, dst, false, nil)
	require.NoError(t, err)

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, []byte("0123456789"), data)

	_, err = os.Stat(src)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestRelocate_SamePathIsNoop(t *testing.T) {
	t.Parallel()
	handler := newHandler()

	dir := t.TempDir()
	src := filepath.Join(dir, "a.txt")
	require.NoError(t, os.WriteFile(src, []byte("content"), 0o644))

	require.NoError(t, handler.Relocate(context.Background(), src, src, false, nil))

	data, err := os.ReadFile(src)
	require.NoError(t, err)
	assert.Equal(t, []byte("content"), data)
}

func TestRelocate_SourceMissing(t *testing.T) {
	t.Parallel()
	handler := newHandler()

	dir := t.TempDir()

	err := handler.Relocate(context.Background(), filepath.Join(dir, "missing.txt"), filepath.Join(dir, "b.txt"), false, nil)
	require.ErrorIs(t, err, fsys.ErrNotFound)
}

func TestRelocate_DestExists(t *testing.T) {
	t.Parallel()
	handler := newHandler()

	dir := t.TempDir()
	src := filepath.Join(dir, "a.txt")
	dst := filepath.Join(dir, "b.txt")
	require.NoError(t, os.WriteFile(src, []byte("new"), 0o644))
	require.NoError(t, os.WriteFile(dst, []byte("old"), 0o644))

	err := handler.Relocate(context.Background(), src, dst, false, nil)
	require.ErrorIs(t, err, fileio.ErrDestExists)

	err = handler.Relocate(context.Background(), src, dst, true, nil)
	require.NoError(t, err)

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, []byte("new"), data)
}

func TestRelocate_DirectoryDestNeverReplaced(t *testing.T) {
	t.Parallel()
	handler := newHandler()

	dir := t.TempDir()
	src := filepath.Join(dir, "a.txt")
	dst := filepath.Join(dir, "sub")
	require.NoError(t, os.WriteFile(src, []byte("content"), 0o644))
	require.NoError(t, os.Mkdir(dst, 0o755))

	err := handler.Relocate(context.Background(), src, dst, true, nil)
	require.ErrorIs(t, err, fileio.ErrDestExists)
}

func TestRelocate_Directory(t *testing.T) {
	t.Parallel()
	handler := newHandler()

	dir := t.TempDir()
	src := filepath.Join(dir, "tree")
	require.NoError(t, os.MkdirAll(filepath.Join(src, "nested"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(src, "nested", "a.txt"), []byte("content"), 0o644))

	dst := filepath.Join(dir, "moved")

	err := handler.Relocate(context.Background(), src, dst, false, nil)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dst, "nested", "a.txt"))
	require.NoError(t, err)
	assert.Equal(t, []byte("content"), data)

	_, err = os.Stat(src)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestCopyTree(t *testing.T) {
	t.Parallel()
	handler := newHandler()

	dir := t.TempDir()
	src := filepath.Join(dir, "tree")
	require.NoError(t, os.MkdirAll(filepath.Join(src, "nested", "deeper"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(src, "a.txt"), []byte("top"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(src, "nested", "b.txt"), []byte("middle"), 0o644))
	require.NoError(t, os.Symlink(filepath.Join(src, "a.txt"), filepath.Join(src, "link")))

	dst := filepath.Join(dir, "copy")

	err := handler.CopyTree(context.Background(), src, dst, false, nil)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dst, "a.txt"))
	require.NoError(t, err)
	assert.Equal(t, []byte("top"), data)

	info, err := os.Stat(filepath.Join(dst, "a.txt"))
	require.NoError(t, err)
	assert.EqualValues(t, 0o600, info.Mode().Perm())

	data, err = os.ReadFile(filepath.Join(dst, "nested", "b.txt"))
	require.NoError(t, err)
	assert.Equal(t, []byte("middle"), data)

	target, err := os.Readlink(filepath.Join(dst, "link"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(src, "a.txt"), target)

	// The source tree is untouched by a copy.
	_, err = os.Stat(filepath.Join(src, "nested", "b.txt"))
	require.NoError(t, err)
}

func TestCopyTree_DestExists(t *testing.T) {
	t.Parallel()
	handler := newHandler()

	dir := t.TempDir()
	src := filepath.Join(dir, "tree")
	dst := filepath.Join(dir, "copy")
	require.NoError(t, os.Mkdir(src, 0o755))
	require.NoError(t, os.Mkdir(dst, 0o755))

	err := handler.CopyTree(context.Background(), src, dst, false, nil)
	require.ErrorIs(t, err, fileio.ErrDestExists)

	// An existing directory is never replaced, even with overwrite.
	err = handler.CopyTree(context.Background(), src, dst, true, nil)
	require.ErrorIs(t, err, fileio.ErrDestExists)
}

func TestRemoveFile(t *testing.T) {
	t.Parallel()
	handler := newHandler()

	dir := t.TempDir()
	path := filepath.Join(dir, "a.txt")
	require.NoError(t, os.WriteFile(path, []byte("content"), 0o644))

	require.NoError(t, handler.RemoveFile(path, false))

	_, err := os.Stat(path)
	require.ErrorIs(t, err, os.ErrNotExist)

	require.ErrorIs(t, handler.RemoveFile(path, false), fsys.ErrNotFound)
	require.NoError(t, handler.RemoveFile(path, true))
}

func TestRemoveDir(t *testing.T) {
	t.Parallel()
	handler := newHandler()

	dir := t.TempDir()
	target := filepath.Join(dir, "sub")
	require.NoError(t, os.MkdirAll(filepath.Join(target, "nested"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(target, "nested", "a.txt"), []byte("content"), 0o644))

	err := handler.RemoveDir(target, false, false)
	require.ErrorIs(t, err, fileio.ErrDirNotEmpty)

	require.NoError(t, handler.RemoveDir(target, true, false))

	_, err = os.Stat(target)
	require.ErrorIs(t, err, os.ErrNotExist)

	require.ErrorIs(t, handler.RemoveDir(target, false, false), fsys.ErrNotFound)
	require.NoError(t, handler.RemoveDir(target, false, true))
}

func TestRemoveDir_Empty(t *testing.T) {
	t.Parallel()
	handler := newHandler()

	dir := t.TempDir()
	target := filepath.Join(dir, "sub")
	require.NoError(t, os.Mkdir(target, 0o755))

	require.NoError(t, handler.RemoveDir(target, false, false))

	_, err := os.Stat(target)
	require.ErrorIs(t, err, os.ErrNotExist)
}
