package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/jgoring/classyfd"
	"github.com/spf13/cobra"
)

func newRootCmd(config *Config) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "classyfd",
		Short:         "Work with files and directories",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		newStatCmd(),
		newListCmd(),
		newRenameCmd(config),
		newMoveCmd(config),
		newCopyCmd(config),
		newRemoveCmd(),
		newMkdirCmd(),
		newTouchCmd(),
	)

	return rootCmd
}

// wrapEntry wraps an existing path as a [classyfd.File] or
// [classyfd.Directory] based on its current on-disk type.
func wrapEntry(path string) (classyfd.Entry, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", classyfd.ErrNotFound, path)
		}

		return nil, fmt.Errorf("failed to stat: %w", err)
	}

	if info.IsDir() {
		return classyfd.NewDirectory(path)
	}

	return classyfd.NewFile(path)
}
