package classyfd_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/jgoring/classyfd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDirectory_Resolution(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	directory, err := classyfd.NewDirectoryAt(dir, "sub/../data")
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "data"), directory.Path())
	assert.Equal(t, "data", directory.Name())
	assert.Equal(t, dir, directory.Parent())
}

func TestNewDirectory_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	_, err := classyfd.NewDirectoryAt(dir, "")
	require.ErrorIs(t, err, classyfd.ErrEmptyPath)

	// A path currently naming a regular file cannot back a Directory.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("content"), 0o644))

	_, err = classyfd.NewDirectoryAt(dir, "a.txt")
	require.ErrorIs(t, err, classyfd.ErrWrongType)
}

func TestDirectory_Create(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	directory, err := classyfd.NewDirectoryAt(dir, "a/b/c")
	require.NoError(t, err)

	require.NoError(t, directory.Create())

	isDir, err := directory.IsDir()
	require.NoError(t, err)
	assert.True(t, isDir)

	// Creating an already existing directory is not an error.
	require.NoError(t, directory.Create())
}

func TestDirectory_IsEmpty(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	directory, err := classyfd.NewDirectoryAt(dir, dir)
	require.NoError(t, err)

	empty, err := directory.IsEmpty()
	require.NoError(t, err)
	assert.True(t, empty)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("content"), 0o644))

	empty, err = directory.IsEmpty()
	require.NoError(t, err)
	assert.False(t, empty)
}

func TestDirectory_ChildrenEmpty(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	directory, err := classyfd.NewDirectoryAt(dir, dir)
	require.NoError(t, err)

	// An empty directory yields an empty sequence, not an error.
	count := 0
	for _, err := range directory.Children() {
		require.NoError(t, err)
		count++
	}
	assert.Zero(t, count)
}

func TestDirectory_ChildrenMissing(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	directory, err := classyfd.NewDirectoryAt(dir, "missing")
	require.NoError(t, err)

	var iterErr error
	for _, err := range directory.Children() {
		iterErr = err
	}
	require.ErrorIs(t, iterErr, classyfd.ErrNotFound)
}

func TestDirectory_ChildrenTypes(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("content"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))

	directory, err := classyfd.NewDirectoryAt(dir, dir)
	require.NoError(t, err)

	byName := map[string]classyfd.Entry{}
	for child, err := range directory.Children() {
		require.NoError(t, err)
		byName[child.Name()] = child
	}

	require.Len(t, byName, 2)
	assert.IsType(t, &classyfd.File{}, byName["a.txt"])
	assert.IsType(t, &classyfd.Directory{}, byName["sub"])
	assert.Equal(t, filepath.Join(dir, "a.txt"), byName["a.txt"].Path())
}

func TestDirectory_ChildrenEarlyStop(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	for _, name := range []string{"a.txt", "b.txt", "c.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("content"), 0o644))
	}

	directory, err := classyfd.NewDirectoryAt(dir, dir)
	require.NoError(t, err)

	count := 0
	for _, err := range directory.Children() {
		require.NoError(t, err)
		count++

		if count == 2 {
			break
		}
	}
	assert.Equal(t, 2, count)
}

func TestDirectory_List(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("content"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))

	directory, err := classyfd.NewDirectoryAt(dir, dir)
	require.NoError(t, err)

	entries, err := directory.List()
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestDirectory_Rename(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "old"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "old", "a.txt"), []byte("content"), 0o644))

	directory, err := classyfd.NewDirectoryAt(dir, "old")
	require.NoError(t, err)

	require.NoError(t, directory.Rename("new"))

	assert.Equal(t, filepath.Join(dir, "new"), directory.Path())

	data, err := os.ReadFile(filepath.Join(dir, "new", "a.txt"))
	require.NoError(t, err)
	assert.Equal(t, []byte("content"), data)
}

func TestDirectory_RenameOntoDirectory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "old"), 0o755))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "new"), 0o755))

	directory, err := classyfd.NewDirectoryAt(dir, "old")
	require.NoError(t, err)

	// An existing directory is never replaced, even with overwrite.
	err = directory.Rename("new", classyfd.WithOverwrite())
	require.ErrorIs(t, err, classyfd.ErrDestExists)
	assert.Equal(t, filepath.Join(dir, "old"), directory.Path())
}

func TestDirectory_Move(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "tree"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tree", "a.txt"), []byte("content"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "target"), 0o755))

	directory, err := classyfd.NewDirectoryAt(dir, "tree")
	require.NoError(t, err)

	require.NoError(t, directory.Move(context.Background(), "target"))

	assert.Equal(t, filepath.Join(dir, "target", "tree"), directory.Path())

	data, err := os.ReadFile(filepath.Join(dir, "target", "tree", "a.txt"))
	require.NoError(t, err)
	assert.Equal(t, []byte("content"), data)

	_, err = os.Stat(filepath.Join(dir, "tree"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestDirectory_CopyTo(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "tree", "nested"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tree", "nested", "a.txt"), []byte("content"), 0o644))

	directory, err := classyfd.NewDirectoryAt(dir, "tree")
	require.NoError(t, err)

	require.NoError(t, directory.CopyTo(context.Background(), "copy"))

	// The value still points at the source after a copy.
	assert.Equal(t, filepath.Join(dir, "tree"), directory.Path())

	data, err := os.ReadFile(filepath.Join(dir, "copy", "nested", "a.txt"))
	require.NoError(t, err)
	assert.Equal(t, []byte("content"), data)

	_, err = os.Stat(filepath.Join(dir, "tree", "nested", "a.txt"))
	require.NoError(t, err)
}

func TestDirectory_RemoveEmpty(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))

	directory, err := classyfd.NewDirectoryAt(dir, "sub")
	require.NoError(t, err)

	require.NoError(t, directory.Remove())

	exists, err := directory.Exists()
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestDirectory_RemoveRecursive(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "sub", "nested"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sub", "nested", "a.txt"), []byte("content"), 0o644))

	directory, err := classyfd.NewDirectoryAt(dir, "sub")
	require.NoError(t, err)

	err = directory.Remove()
	require.ErrorIs(t, err, classyfd.ErrDirNotEmpty)

	require.NoError(t, directory.Remove(classyfd.WithRecursive()))

	// All descendants are gone with the directory itself.
	_, err = os.Stat(filepath.Join(dir, "sub"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestDirectory_RemoveMissing(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	directory, err := classyfd.NewDirectoryAt(dir, "missing")
	require.NoError(t, err)

	require.ErrorIs(t, directory.Remove(), classyfd.ErrNotFound)
	require.NoError(t, directory.Remove(classyfd.WithIgnoreMissing()))
}

func TestDirectory_RemoveWrongType(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	directory, err := classyfd.NewDirectoryAt(dir, "target")
	require.NoError(t, err)

	// A regular file replaced the expected directory after construction.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "target"), []byte("content"), 0o644))

	require.ErrorIs(t, directory.Remove(), classyfd.ErrWrongType)
}

func TestDirectory_MovePreservesContent(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "tree"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tree", "a.txt"), []byte("0123456789"), 0o644))

	directory, err := classyfd.NewDirectoryAt(dir, "tree")
	require.NoError(t, err)

	require.NoError(t, directory.Move(context.Background(), filepath.Join(dir, "moved")))

	file, err := classyfd.NewFileAt(directory.Path(), "a.txt")
	require.NoError(t, err)

	size, err := file.Size()
	require.NoError(t, err)
	assert.EqualValues(t, 10, size)
}
