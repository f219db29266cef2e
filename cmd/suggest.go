package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/ancora/internal/controller"
	m "github.com/mouse-blink/ancora/internal/model"
)

var suggestReviewFlag bool

// suggestCmd runs the suggestion engine; with --review it opens the
// interactive triage list and confirms the accepted suggestions directly.
var suggestCmd = newSuggestCmd()

func newSuggestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Propose links for unlinked statements from active patterns",
		RunE: func(c *cobra.Command, _ []string) error {
			wf, err := workflowFactory()
			if err != nil {
				return err
			}

			call := func() (m.SuggestionRun, error) {
				return wf.Suggest(c.Context())
			}

			var run m.SuggestionRun

			if controller.IsTTY(os.Stdout) {
				run, err = controller.SuggestWithSpinner("analyzing unlinked statements", call)
			} else {
				run, err = call()
			}

			if err != nil {
				return err
			}

			if !suggestReviewFlag || run.Empty() {
				return ui.ShowRun(run)
			}

			reviewer := controller.NewTUIReviewer(func(anchorID string) string {
				for _, anchor := range wf.AllAnchors() {
					if anchor.ID == anchorID {
						return anchor.Text
					}
				}

				return anchorID
			})

			accepted, ok, err := reviewer.Review(run)
			if err != nil {
				return err
			}

			if !ok {
				ui.Notify("review cancelled, run %s left pending", run.RunID)

				return nil
			}

			result, err := wf.Confirm(c.Context(), run.RunID, accepted)
			if err != nil {
				return err
			}

			return ui.ShowConfirmation(result)
		},
	}

	cmd.Flags().BoolVarP(&suggestReviewFlag, "review", "r", false, "open the interactive review list after the run")

	return cmd
}

func init() {
	rootCmd.AddCommand(suggestCmd)
}
