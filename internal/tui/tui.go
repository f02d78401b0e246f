// Package tui implements a command-line transfer progress interface using
// [tea].
package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Handler is the principal implementation of the progress interface.
type Handler struct {
	program *tea.Program
}

// NewHandler returns a pointer to a new progress interface [Handler]. The
// cancel function is invoked when the user interrupts the transfer.
func NewHandler(cancel context.CancelFunc) *Handler {
	model := newTransferModel(cancel)

	return &Handler{
		program: tea.NewProgram(model),
	}
}

// Launch starts the progress interface (the [tea.Program]) and blocks until
// the transfer reports completion or the user interrupts it.
func (h *Handler) Launch() error {
	if _, err := h.program.Run(); err != nil {
		return fmt.Errorf("(tui) %w", err)
	}

	return nil
}

// Report feeds transfer progress for a single source path into the
// interface. It is safe to call from the transferring goroutine.
func (h *Handler) Report(path string, copied int64, total int64) {
	h.program.Send(ProgressMsg{
		Path:   path,
		Copied: copied,
		Total:  total,
	})
}

// Done signals the end of the transfer to the interface.
func (h *Handler) Done(err error) {
	h.program.Send(DoneMsg{Err: err})
}
