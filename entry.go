package classyfd

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/jgoring/classyfd/internal/fileio"
	"github.com/jgoring/classyfd/internal/fsys"
	"github.com/jgoring/classyfd/internal/pathing"
)

//nolint:gochecknoglobals
var (
	defaultFS = fsys.NewHandler(&fsys.OSHandler{}, &fsys.UnixHandler{})
	defaultIO = fileio.NewHandler(defaultFS, &fsys.OSHandler{}, &fsys.UnixHandler{}, &fileio.FileWalker{})
)

// Entry is the capability set shared by [File] and [Directory]: a path that
// may or may not currently exist on disk, together with the operations that
// are valid for either kind.
type Entry interface {
	fmt.Stringer

	Path() string
	Name() string
	Parent() string
	ParentN(levels int) (string, error)
	Exists() (bool, error)
	Metadata() (*Metadata, error)
	Owner() (*Owner, error)
	Group() (*Group, error)
	ChangeOwner(owner string) error
	ChangeGroup(group string) error
	Rename(newName string, opts ...Option) error
	Move(ctx context.Context, dest string, opts ...Option) error
	Remove(opts ...Option) error
}

// entry carries the path identity and the mutation logic shared between
// [File] and [Directory], which build on it by composition.
type entry struct {
	path string
	base string

	fsHandler *fsys.Handler
	ioHandler *fileio.Handler
}

func newEntry(base string, path string) (entry, error) {
	resolved, err := pathing.Resolve(base, path)
	if err != nil {
		return entry{}, err
	}

	return entry{
		path:      resolved,
		base:      base,
		fsHandler: defaultFS,
		ioHandler: defaultIO,
	}, nil
}

// Path returns the absolute, normalized path of the entry. It reflects any
// renames and moves performed through this value.
func (e *entry) Path() string {
	return e.path
}

// String returns the path of the entry.
func (e *entry) String() string {
	return e.path
}

// Name returns the final element of the entry's path.
func (e *entry) Name() string {
	return filepath.Base(e.path)
}

// Parent returns the path of the directory containing the entry.
func (e *entry) Parent() string {
	return filepath.Dir(e.path)
}

// ParentN returns the path of the directory levels above the entry. Levels
// of 0 and 1 both mean the immediate parent.
func (e *entry) ParentN(levels int) (string, error) {
	return pathing.ParentN(e.path, levels)
}

// Exists checks if the entry's path currently resolves to anything on disk.
// The answer is recomputed from disk on every call.
func (e *entry) Exists() (bool, error) {
	return e.fsHandler.Exists(e.path)
}

// Metadata retrieves a fresh [Metadata] snapshot for the entry.
func (e *entry) Metadata() (*Metadata, error) {
	metadata, err := e.fsHandler.Metadata(e.path)
	if err != nil {
		return nil, err
	}

	return newMetadata(metadata), nil
}

// Owner retrieves the owning user of the entry from the user database.
func (e *entry) Owner() (*Owner, error) {
	owner, err := e.fsHandler.Owner(e.path)
	if err != nil {
		return nil, err
	}

	return newOwner(owner), nil
}

// Group retrieves the owning group of the entry from the group database.
func (e *entry) Group() (*Group, error) {
	group, err := e.fsHandler.Group(e.path)
	if err != nil {
		return nil, err
	}

	return newGroup(group), nil
}

// ChangeOwner changes the owning user of the entry. The user may be given
// as a username or as a numeric ID.
func (e *entry) ChangeOwner(owner string) error {
	return e.fsHandler.ChangeOwner(e.path, owner)
}

// ChangeGroup changes the owning group of the entry. The group may be given
// as a group name or as a numeric ID.
func (e *entry) ChangeGroup(group string) error {
	return e.fsHandler.ChangeGroup(e.path, group)
}

// Rename changes the final element of the entry's path, keeping the entry
// in its current parent directory. The new name must not contain path
// separators; relocating across directories goes through [entry.Move].
//
// The in-memory path is updated only after the on-disk operation succeeded.
func (e *entry) Rename(newName string, opts ...Option) error {
	o := buildOptions(opts)

	if err := pathing.ValidateName(newName); err != nil {
		return err
	}

	dst := filepath.Join(filepath.Dir(e.path), newName)

	if err := e.ioHandler.Relocate(context.Background(), e.path, dst, o.overwrite, nil); err != nil {
		return err
	}

	e.path = dst

	return nil
}

// Move relocates the entry. When dest is an existing directory, the entry
// moves into it keeping its name; otherwise dest is taken as the full
// destination path. Relative destinations resolve against the base
// directory the entry was constructed with.
//
// Cross-volume moves are not crash-atomic; see the package documentation.
func (e *entry) Move(ctx context.Context, dest string, opts ...Option) error {
	o := buildOptions(opts)

	dst, err := e.resolveDest(dest)
	if err != nil {
		return err
	}

	if err := e.ioHandler.Relocate(ctx, e.path, dst, o.overwrite, o.ioProgress()); err != nil {
		return err
	}

	e.path = dst

	return nil
}

// resolveDest resolves a destination argument of a move or copy into a full
// destination path.
func (e *entry) resolveDest(dest string) (string, error) {
	base := e.base
	if base == "" {
		base = filepath.Dir(e.path)
	}

	resolved, err := pathing.Resolve(base, dest)
	if err != nil {
		return "", err
	}

	if isDir, err := e.fsHandler.IsDir(resolved); err != nil {
		return "", err
	} else if isDir {
		return filepath.Join(resolved, filepath.Base(e.path)), nil
	}

	return resolved, nil
}
