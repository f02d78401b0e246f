package main

import (
	"context"
	"log/slog"

	"github.com/jgoring/classyfd"
	"github.com/spf13/cobra"
)

func newCopyCmd(config *Config) *cobra.Command {
	var overwrite bool
	var noUI bool

	copyCmd := &cobra.Command{
		Use:   "cp <source> <destination>",
		Short: "Copy a file or directory",
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

				switch t := target.(type) {
				case *classyfd.File:
					return t.CopyTo(ctx, args[1], opts...)
				case *classyfd.Directory:
					return t.CopyTo(ctx, args[1], opts...)
				}

				return nil
			})
			if err != nil {
				return err
			}

			slog.Info("Copied:", "source", target.Path(), "dest", args[1])

			return nil
		},
	}

	copyCmd.Flags().BoolVar(&overwrite, "overwrite", config.Overwrite, "replace an existing destination file")
	copyCmd.Flags().BoolVar(&noUI, "no-ui", config.NoUI, "disable the progress UI")

	return copyCmd
}
