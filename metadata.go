package classyfd

import (
	"io/fs"
	"time"

	"github.com/jgoring/classyfd/internal/fsys"
)

// Metadata holds a point-in-time snapshot of an on-disk entry's attributes.
// It is derived from disk on request and never cached.
type Metadata struct {
	Size       int64
	Perms      fs.FileMode
	UID        uint32
	GID        uint32
	AccessedAt time.Time
	ModifiedAt time.Time
	Inode      uint64
	Device     uint64
	IsDir      bool
	IsSymlink  bool
	SymlinkTo  string
}

// Owner holds the details of the user owning an on-disk entry.
type Owner struct {
	Username string
	UID      uint32
	GID      uint32
	HomeDir  string
}

// Group holds the details of the group owning an on-disk entry.
type Group struct {
	Name string
	GID  uint32
}

func newMetadata(m *fsys.Metadata) *Metadata {
	return &Metadata{
		Size:       m.Size,
		Perms:      fs.FileMode(m.Perms),
		UID:        m.UID,
		GID:        m.GID,
		AccessedAt: time.Unix(m.AccessedAt.Unix()),
		ModifiedAt: time.Unix(m.ModifiedAt.Unix()),
		Inode:      m.Inode,
		Device:     m.Device,
		IsDir:      m.IsDir,
		IsSymlink:  m.IsSymlink,
		SymlinkTo:  m.SymlinkTo,
	}
}

func newOwner(o *fsys.Owner) *Owner {
	return &Owner{
		Username: o.Username,
		UID:      o.UID,
		GID:      o.GID,
		HomeDir:  o.HomeDir,
	}
}

func newGroup(g *fsys.Group) *Group {
	return &Group{
		Name: g.Name,
		GID:  g.GID,
	}
}
