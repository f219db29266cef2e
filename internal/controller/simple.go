package controller

import (
	"bytes"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/mouse-blink/ancora/internal/domain"
	m "github.com/mouse-blink/ancora/internal/model"
)

// SimpleUI implements UI using cobra Command's Println.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// ShowAnchors prints the anchors as a table sorted the way the store
// returned them.
func (s *SimpleUI) ShowAnchors(anchors []m.Anchor) error {
	if len(anchors) == 0 {
		s.cmd.Println("No anchors")
		return nil
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"ID", "Box", "Location", "Range", "Text"})

	for _, anchor := range anchors {
		table.Append([]string{
			anchor.ID,
			anchor.Box.String(),
			string(anchor.Location),
			fmt.Sprintf("[%d,%d)", anchor.StartIndex, anchor.EndIndex),
			truncate(anchor.Text, 40),
		})
	}

	table.Render()
	s.cmd.Print(tableBuffer.String())

	return nil
}

// ShowLinks prints the Binomi with their status and audit trail.
func (s *SimpleUI) ShowLinks(links []m.Binomio) error {
	if len(links) == 0 {
		s.cmd.Println("No links")
		return nil
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"ID", "From", "To", "Status", "Audit"})

	for _, link := range links {
		table.Append([]string{
			link.ID,
			link.FromID,
			link.ToID,
			string(link.Status),
			auditSummary(link),
		})
	}

	table.Render()
	s.cmd.Print(tableBuffer.String())

	return nil
}

// ShowRun prints the suggestion run with its stats line.
func (s *SimpleUI) ShowRun(run m.SuggestionRun) error {
	if run.RunID == "" {
		s.cmd.Println("No suggestions: nothing unlinked or no active patterns")
		return nil
	}

	s.cmd.Printf("Run %s: analyzed %d, suggested %d, avg confidence %.2f\n",
		run.RunID, run.Stats.TotalAnalyzed, run.Stats.Suggested, run.Stats.AvgConfidence)

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"ID", "Anchor", "Pattern", "Confidence", "Status"})

	for _, suggestion := range run.Suggestions {
		table.Append([]string{
			suggestion.ID,
			suggestion.FromID,
			suggestion.PatternID,
			fmt.Sprintf("%.2f", suggestion.Confidence),
			string(suggestion.Status),
		})
	}

	table.Render()
	s.cmd.Print(tableBuffer.String())

	return nil
}

// ShowConfirmation prints the confirmation outcome. An amalgamation
// failure shows as a non-blocking notice since the links are retained.
func (s *SimpleUI) ShowConfirmation(result domain.ConfirmResult) error {
	s.cmd.Printf("Accepted %d suggestion(s), created %d link(s)\n", result.AcceptedCount, len(result.Created))

	for _, link := range result.Created {
		s.cmd.Printf("  %s: %s -> %s\n", link.ID, link.FromID, link.ToID)
	}

	if result.AmalgamationErr != nil {
		s.cmd.Printf("note: context document not updated: %v\n", result.AmalgamationErr)
	}

	return nil
}

// Notify prints a free-form message.
func (s *SimpleUI) Notify(format string, args ...any) {
	s.cmd.Printf(format+"\n", args...)
}

func auditSummary(link m.Binomio) string {
	if link.DisabledAt != nil {
		return fmt.Sprintf("disabled %s: %s", link.DisabledAt.Format("2006-01-02 15:04"), link.DisabledReason)
	}

	if link.EnabledAt != nil {
		return fmt.Sprintf("enabled %s: %s", link.EnabledAt.Format("2006-01-02 15:04"), link.EnabledReason)
	}

	return ""
}

// truncate caps the text at limit runes, cutting on rune boundaries so
// multi-byte characters never end up split in table output.
func truncate(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}

	return string(runes[:limit-1]) + "…"
}
