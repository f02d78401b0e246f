package main

import (
	"context"
	"log/slog"

	"github.com/jgoring/classyfd"
	"github.com/spf13/cobra"
)

func newMoveCmd(config *Config) *cobra.Command {
	var overwrite bool
	var noUI bool

	moveCmd := &cobra.Command{
		Use:   "mv <source> <destination>",
		Short: "Move a file or directory",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := wrapEntry(args[0])
			if err != nil {
				return err
			}

			err = runTransfer(cmd.Context(), noUI, func(ctx context.Context, progress classyfd.Progress) error {
				opts := []classyfd.Option{}
				if overwrite {
					opts = append(opts, classyfd.WithOverwrite())
				}
				if progress != nil {
					opts = append(opts, classyfd.WithProgress(progress))
				}

				return target.Move(ctx, args[1], opts...)
			})
			if err != nil {
				return err
			}

			slog.Info("Moved:", "path", target.Path())

			return nil
		},
	}

	moveCmd.Flags().BoolVar(&overwrite, "overwrite", config.Overwrite, "replace an existing destination file")
	moveCmd.Flags().BoolVar(&noUI, "no-ui", config.NoUI, "disable the progress UI")

	return moveCmd
}
