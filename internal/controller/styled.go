package controller

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/mouse-blink/ancora/internal/domain"
	m "github.com/mouse-blink/ancora/internal/model"
)

var (
	idStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	activeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	disabledStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	headStyle     = lipgloss.NewStyle().Bold(true)
)

// StyledUI implements UI with lipgloss-colored terminal output.
type StyledUI struct {
	output io.Writer
}

// NewStyledUI creates a new StyledUI.
func NewStyledUI(output io.Writer) *StyledUI {
	return &StyledUI{output: output}
}

// ShowAnchors prints each anchor as one colored line.
func (t *StyledUI) ShowAnchors(anchors []m.Anchor) error {
	if len(anchors) == 0 {
		fmt.Fprintln(t.output, dimStyle.Render("No anchors"))
		return nil
	}

	for _, anchor := range anchors {
		fmt.Fprintf(t.output, "%s %s %s %s %q\n",
			idStyle.Render(anchor.ID),
			anchor.Box,
			anchor.Location,
			dimStyle.Render(fmt.Sprintf("[%d,%d)", anchor.StartIndex, anchor.EndIndex)),
			truncate(anchor.Text, 40),
		)
	}

	return nil
}

// ShowLinks prints each Binomio with a colored status.
func (t *StyledUI) ShowLinks(links []m.Binomio) error {
	if len(links) == 0 {
		fmt.Fprintln(t.output, dimStyle.Render("No links"))
		return nil
	}

	for _, link := range links {
		status := activeStyle.Render(string(link.Status))
		if !link.Active() {
			status = disabledStyle.Render(string(link.Status))
		}

		fmt.Fprintf(t.output, "%s %s -> %s %s %s\n",
			idStyle.Render(link.ID),
			link.FromID,
			link.ToID,
			status,
			dimStyle.Render(auditSummary(link)),
		)
	}

	return nil
}

// ShowRun prints the run header and one line per suggestion.
func (t *StyledUI) ShowRun(run m.SuggestionRun) error {
	if run.RunID == "" {
		fmt.Fprintln(t.output, dimStyle.Render("No suggestions: nothing unlinked or no active patterns"))
		return nil
	}

	fmt.Fprintln(t.output, headStyle.Render(fmt.Sprintf("Run %s: analyzed %d, suggested %d, avg confidence %.2f",
		run.RunID, run.Stats.TotalAnalyzed, run.Stats.Suggested, run.Stats.AvgConfidence)))

	for _, suggestion := range run.Suggestions {
		fmt.Fprintf(t.output, "%s %s -> pattern %s (%.2f) %s\n",
			idStyle.Render(suggestion.ID),
			suggestion.FromID,
			suggestion.PatternID,
			suggestion.Confidence,
			dimStyle.Render(string(suggestion.Status)),
		)
	}

	return nil
}

// ShowConfirmation prints the confirmation outcome.
func (t *StyledUI) ShowConfirmation(result domain.ConfirmResult) error {
	fmt.Fprintln(t.output, headStyle.Render(
		fmt.Sprintf("Accepted %d suggestion(s), created %d link(s)", result.AcceptedCount, len(result.Created))))

	for _, link := range result.Created {
		fmt.Fprintf(t.output, "  %s: %s -> %s\n", idStyle.Render(link.ID), link.FromID, link.ToID)
	}

	if result.AmalgamationErr != nil {
		fmt.Fprintln(t.output, disabledStyle.Render(
			fmt.Sprintf("note: context document not updated: %v", result.AmalgamationErr)))
	}

	return nil
}

// Notify prints a free-form message.
func (t *StyledUI) Notify(format string, args ...any) {
	fmt.Fprintf(t.output, format+"\n", args...)
}
