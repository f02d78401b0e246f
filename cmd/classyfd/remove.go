package main

import (
	"log/slog"

	"github.com/jgoring/classyfd"
	"github.com/spf13/cobra"
)

func newRemoveCmd() *cobra.Command {
	var recursive bool
	var ignoreMissing bool

	removeCmd := &cobra.Command{
		Use:   "rm <path>",
		Short: "Remove a file or directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := []classyfd.Option{}
			if recursive {
				opts = append(opts, classyfd.WithRecursive())
			}
			if ignoreMissing {
				opts = append(opts, classyfd.WithIgnoreMissing())
			}

			target, err := wrapEntry(args[0])
			if err != nil {
				if ignoreMissing {
					return nil
				}

				return err
			}

			if err := target.Remove(opts...); err != nil {
				return err
			}

			slog.Info("Removed:", "path", target.Path())

			return nil
		},
	}

	removeCmd.Flags().BoolVarP(&recursive, "recursive", "r", false, "remove a non-empty directory and all descendants")
	removeCmd.Flags().BoolVar(&ignoreMissing, "ignore-missing", false, "succeed when nothing exists at the path")

	return removeCmd
}
