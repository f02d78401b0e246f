package main

import (
	"context"

	"github.com/jgoring/classyfd"
	"github.com/jgoring/classyfd/internal/tui"
)

// runTransfer executes a copy-based operation, optionally behind the
// progress interface. The interface owns a derived context, so interrupting
// it cancels the transfer.
func runTransfer(ctx context.Context, noUI bool, op func(ctx context.Context, progress classyfd.Progress) error) error {
	if noUI {
		return op(ctx, nil)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	ui := tui.NewHandler(cancel)

	// The result travels over a channel, as the interface can also stop on
	// its own terms and must not race the transferring goroutine.
	result := make(chan error, 1)
	go func() {
		opErr := op(ctx, ui.Report)
		ui.Done(opErr)
		result <- opErr
	}()

	if err := ui.Launch(); err != nil {
		return err
	}

	return <-result
}
