// Package controller provides the output surfaces of the engine: plain
// command output and the interactive suggestion review TUI.
package controller

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/ancora/internal/domain"
	m "github.com/mouse-blink/ancora/internal/model"
)

// UI is the display contract consumed by the commands. Implementations
// render state handed to them and never reach back into engine internals.
type UI interface {
	ShowAnchors(anchors []m.Anchor) error
	ShowLinks(links []m.Binomio) error
	ShowRun(run m.SuggestionRun) error
	ShowConfirmation(result domain.ConfirmResult) error
	Notify(format string, args ...any)
}

// Reviewer presents a suggestion run for interactive triage and returns the
// accepted suggestion ids. A cancelled review returns ok=false.
type Reviewer interface {
	Review(run m.SuggestionRun) (accepted []string, ok bool, err error)
}

// NewUI creates a UI based on whether TTY mode is enabled. Terminals get
// the styled renderer, redirected output the plain one.
func NewUI(cmd *cobra.Command, useTTY bool) UI {
	if useTTY {
		return NewStyledUI(cmd.OutOrStdout())
	}

	return NewSimpleUI(cmd)
}

// IsTTY checks if the given writer is an interactive terminal. Output
// redirected to a file or pipe reports false.
func IsTTY(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}

	fileInfo, err := file.Stat()
	if err != nil {
		return false
	}

	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}
