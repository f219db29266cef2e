package cmd

import (
	"github.com/spf13/cobra"
)

var confirmRunFlag string

// confirmCmd settles the most recent suggestion run. Suggestion ids passed
// as arguments are accepted; the rest are rejected. No arguments rejects
// everything.
var confirmCmd = newConfirmCmd()

func newConfirmCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "confirm [suggestion-id...]",
		Short: "Accept suggestions as new Binomi and fold their reasoning into the context document",
		RunE: func(c *cobra.Command, args []string) error {
			wf, err := workflowFactory()
			if err != nil {
				return err
			}

			result, err := wf.Confirm(c.Context(), confirmRunFlag, args)
			if err != nil {
				return err
			}

			return ui.ShowConfirmation(result)
		},
	}

	cmd.Flags().StringVar(&confirmRunFlag, "run", "", "expected run id; rejects the call when a newer run replaced it")

	return cmd
}

func init() {
	rootCmd.AddCommand(confirmCmd)
}
