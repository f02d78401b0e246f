package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/jgoring/classyfd"
	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ls <path>",
		Short: "List the children of a directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := classyfd.NewDirectory(args[0])
			if err != nil {
				return err
			}

			for child, err := range dir.Children() {
				if err != nil {
					return err
				}

				if file, ok := child.(*classyfd.File); ok {
					size := "?"
					if n, err := file.Size(); err == nil {
						size = humanize.IBytes(uint64(max(n, 0)))
					}
					fmt.Printf("%-10s %s\n", size, file.Name())

					continue
				}

				fmt.Printf("%-10s %s/\n", "-", child.Name())
			}

			return nil
		},
	}
}
