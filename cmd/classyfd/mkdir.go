package main

import (
	"log/slog"

	"github.com/jgoring/classyfd"
	"github.com/spf13/cobra"
)

func newMkdirCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mkdir <path>",
		Short: "Create a directory, along with any missing parents",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := classyfd.NewDirectory(args[0])
			if err != nil {
				return err
			}

			if err := dir.Create(); err != nil {
				return err
			}

			slog.Info("Created:", "path", dir.Path())

			return nil
		},
	}
}
