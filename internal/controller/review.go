package controller

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	m "github.com/mouse-blink/ancora/internal/model"
)

// TUIReviewer implements Reviewer with an interactive Bubble Tea list.
type TUIReviewer struct {
	fromText func(anchorID string) string
}

// NewTUIReviewer creates a reviewer; fromText resolves an anchor id to its
// statement text for display.
func NewTUIReviewer(fromText func(anchorID string) string) *TUIReviewer {
	return &TUIReviewer{fromText: fromText}
}

// Review opens the triage list and blocks until the user confirms or
// cancels.
func (r *TUIReviewer) Review(run m.SuggestionRun) ([]string, bool, error) {
	if run.Empty() {
		return nil, false, nil
	}

	program := tea.NewProgram(newReviewModel(run, r.fromText))

	final, err := program.Run()
	if err != nil {
		return nil, false, fmt.Errorf("review ui: %w", err)
	}

	rm, ok := final.(reviewModel)
	if !ok || !rm.confirmed {
		return nil, false, nil
	}

	return rm.accepted(), true, nil
}
