package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

//nolint:gochecknoglobals
var (
	// titleStyle defines the style for the panel's title.
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	// infoStyle defines the style for the panel's text.
	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA"))

	// helpStyle defines the style for the help line's text.
	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")).
			Padding(0, 1)
)

// ProgressMsg is a [tea.Msg] containing transfer progress for a single
// source path.
type ProgressMsg struct {
	Path   string
	Copied int64
	Total  int64
}

// DoneMsg is a [tea.Msg] signaling the end of the transfer.
type DoneMsg struct {
	Err error
}

// TransferModel is the principal [tea.Model] for the progress interface.
type TransferModel struct {
	cancel context.CancelFunc

	bar    progress.Model
	path   string
	copied int64
	total  int64

	done bool
	err  error
}

// newTransferModel returns an initial new [TransferModel].
//
//nolint:mnd
func newTransferModel(cancel context.CancelFunc) TransferModel {
	bar := progress.New(
		progress.WithDefaultGradient(),
		progress.WithWidth(60),
	)

	return TransferModel{
		cancel: cancel,
		bar:    bar,
	}
}

// Init initializes the model within a [tea.Program].
func (m TransferModel) Init() tea.Cmd {
	return nil
}

// Update is the principal message handling method of the model.
//
//nolint:ireturn
func (m TransferModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.cancel()

			return m, nil
		}

	case ProgressMsg:
		m.path = msg.Path
		m.copied = msg.Copied
		m.total = msg.Total

		return m, nil

	case DoneMsg:
		m.done = true
		m.err = msg.Err

		return m, tea.Quit
	}

	return m, nil
}

// View renders the model's state.
func (m TransferModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(" classyfd transfer "))
	b.WriteString("\n\n")

	if m.path != "" {
		b.WriteString(infoStyle.Render(m.path))
		b.WriteString("\n")

		fraction := 0.0
		if m.total > 0 {
			fraction = float64(m.copied) / float64(m.total)
		}

		b.WriteString(m.bar.ViewAs(fraction))
		b.WriteString("\n")
		b.WriteString(infoStyle.Render(fmt.Sprintf("%s / %s",
			humanize.IBytes(uint64(max(m.copied, 0))),
			humanize.IBytes(uint64(max(m.total, 0))),
		)))
		b.WriteString("\n")
	}

	if m.done {
		if m.err != nil {
			b.WriteString(infoStyle.Render(fmt.Sprintf("failed: %v", m.err)))
		} else {
			b.WriteString(infoStyle.Render("done"))
		}
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("q/ctrl+c: cancel"))
	b.WriteString("\n")

	return b.String()
}
