package main

import (
	"log/slog"

	"github.com/jgoring/classyfd"
	"github.com/spf13/cobra"
)

func newTouchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "touch <path>",
		Short: "Create an empty file or update its timestamps",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := classyfd.NewFile(args[0])
			if err != nil {
				return err
			}

			if err := file.Touch(); err != nil {
				return err
			}

			slog.Info("Touched:", "path", file.Path())

			return nil
		},
	}
}
