package main

import (
	"fmt"
	"log/slog"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

func newStatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stat <path>",
		Short: "Show the metadata of a file or directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := wrapEntry(args[0])
			if err != nil {
				return err
			}

			metadata, err := target.Metadata()
			if err != nil {
				return err
			}

			kind := "file"
			switch {
			case metadata.IsDir:
				kind = "directory"
			case metadata.IsSymlink:
				kind = "symlink -> " + metadata.SymlinkTo
			}

			fmt.Printf("Path:     %s\n", target.Path())
			fmt.Printf("Type:     %s\n", kind)
			fmt.Printf("Size:     %s (%d bytes)\n", humanize.IBytes(uint64(max(metadata.Size, 0))), metadata.Size)
			fmt.Printf("Perms:    %s\n", metadata.Perms)
			fmt.Printf("Modified: %s\n", metadata.ModifiedAt)

			if owner, err := target.Owner(); err == nil {
				fmt.Printf("Owner:    %s (uid %d)\n", owner.Username, owner.UID)
			} else {
				slog.Warn("Failed to look up owner", "err", err)
			}

			if group, err := target.Group(); err == nil {
				fmt.Printf("Group:    %s (gid %d)\n", group.Name, group.GID)
			} else {
				slog.Warn("Failed to look up group", "err", err)
			}

			return nil
		},
	}
}
