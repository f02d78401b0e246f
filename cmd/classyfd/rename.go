package main

import (
	"log/slog"

	"github.com/jgoring/classyfd"
	"github.com/spf13/cobra"
)

func newRenameCmd(config *Config) *cobra.Command {
	var overwrite bool

	renameCmd := &cobra.Command{
		Use:   "rename <path> <new-name>",
		Short: "Rename a file or directory within its parent directory",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := wrapEntry(args[0])
			if err != nil {
				return err
			}

			opts := []classyfd.Option{}
			if overwrite {
				opts = append(opts, classyfd.WithOverwrite())
			}

			if err := target.Rename(args[1], opts...); err != nil {
				return err
			}

			slog.Info("Renamed:", "path", target.Path())

			return nil
		},
	}

	renameCmd.Flags().BoolVar(&overwrite, "overwrite", config.Overwrite, "replace an existing destination file")

	return renameCmd
}
