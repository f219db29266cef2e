package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var docFileFlag string

// docCmd manages the two knowledge documents consumed by the suggestion
// engine.
var docCmd = newDocCmd()

func newDocCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "doc",
		Short: "Show or replace the knowledge documents",
	}

	cmd.AddCommand(
		newDocShowCmd("context", "Show the context document"),
		newDocShowCmd("spec", "Show the business specification"),
		newDocSetCmd("set-context", "Replace the context document text"),
		newDocSetCmd("set-spec", "Replace the business specification text"),
	)

	return cmd
}

func newDocShowCmd(name, short string) *cobra.Command {
	return &cobra.Command{
		Use:   name,
		Short: short,
		RunE: func(_ *cobra.Command, _ []string) error {
			wf, err := workflowFactory()
			if err != nil {
				return err
			}

			if name == "context" {
				doc, err := wf.ContextDocument()
				if err != nil {
					return err
				}

				ui.Notify("%s", doc.Text)

				return nil
			}

			text, err := wf.BusinessSpec()
			if err != nil {
				return err
			}

			ui.Notify("%s", text)

			return nil
		},
	}
}

func newDocSetCmd(name, short string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   name,
		Short: short,
		RunE: func(_ *cobra.Command, _ []string) error {
			data, err := os.ReadFile(docFileFlag)
			if err != nil {
				return err
			}

			wf, err := workflowFactory()
			if err != nil {
				return err
			}

			if name == "set-context" {
				return wf.SetContextDocument(string(data))
			}

			return wf.SetBusinessSpec(string(data))
		},
	}

	cmd.Flags().StringVarP(&docFileFlag, "file", "f", "", "file holding the new document text")

	return cmd
}

func init() {
	rootCmd.AddCommand(docCmd)
}
