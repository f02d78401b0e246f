package fsys

import (
	"fmt"
	"os/user"
	"strconv"
)

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

// Owner retrieves the owning user of the given path from the user database.
func (f *Handler) Owner(path string) (*Owner, error) {
	metadata, err := f.Metadata(path)
	if err != nil {
		return nil, err
	}

	u, err := user.LookupId(strconv.FormatUint(uint64(metadata.UID), 10))
	if err != nil {
		return nil, fmt.Errorf("(fs-owner) failed to look up uid %d: %w", metadata.UID, err)
	}

	gid, err := strconv.ParseUint(u.Gid, 10, 32)
	if err != nil {
		return nil, fmt.Errorf("(fs-owner) failed to parse gid %q: %w", u.Gid, err)
	}

	owner := &Owner{
		Username: u.Username,
		UID:      metadata.UID,
		GID:      uint32(gid),
		HomeDir:  u.HomeDir,
	}

	return owner, nil
}

// Group retrieves the owning group of the given path from the group database.
func (f *Handler) Group(path string) (*Group, error) {
	metadata, err := f.Metadata(path)
	if err != nil {
		return nil, err
	}

	g, err := user.LookupGroupId(strconv.FormatUint(uint64(metadata.GID), 10))
	if err != nil {
		return nil, fmt.Errorf("(fs-group) failed to look up gid %d: %w", metadata.GID, err)
	}

	group := &Group{
		Name: g.Name,
		GID:  metadata.GID,
	}

	return group, nil
}

// ChangeOwner changes the owning user of the given path. The user may be
// given as a username or as a numeric ID.
func (f *Handler) ChangeOwner(path string, owner string) error {
	uid, err := resolveUserID(owner)
	if err != nil {
		return err
	}

	if err := f.unixHandler.Chown(path, uid, -1); err != nil {
		return fmt.Errorf("(fs-chown) failed to chown: %w", err)
	}

	return nil
}

// ChangeGroup changes the owning group of the given path. The group may be
// given as a group name or as a numeric ID.
func (f *Handler) ChangeGroup(path string, group string) error {
	gid, err := resolveGroupID(group)
	if err != nil {
		return err
	}

	if err := f.unixHandler.Chown(path, -1, gid); err != nil {
		return fmt.Errorf("(fs-chgrp) failed to chown: %w", err)
	}

	return nil
}

func resolveUserID(owner string) (int, error) {
	if uid, err := strconv.Atoi(owner); err == nil {
		return uid, nil
	}

	u, err := user.Lookup(owner)
	if err != nil {
		return 0, fmt.Errorf("(fs-chown) failed to look up user %q: %w", owner, err)
	}

	uid, err := strconv.Atoi(u.Uid)
	if err != nil {
		return 0, fmt.Errorf("(fs-chown) failed to parse uid %q: %w", u.Uid, err)
	}

	return uid, nil
}

func resolveGroupID(group string) (int, error) {
	if gid, err := strconv.Atoi(group); err == nil {
		return gid, nil
	}

	g, err := user.LookupGroup(group)
	if err != nil {
		return 0, fmt.Errorf("(fs-chgrp) failed to look up group %q: %w", group, err)
	}

	gid, err := strconv.Atoi(g.Gid)
	if err != nil {
		return 0, fmt.Errorf("(fs-chgrp) failed to parse gid %q: %w", g.Gid, err)
	}

	return gid, nil
}
