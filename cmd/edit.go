package cmd

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	m "github.com/mouse-blink/ancora/internal/model"
)

var editBoxFlag string
var editNumFlag int
var editLocFlag string
var editStartFlag int
var editDeletedFlag int
var editInsertFlag string
var editingAnchorFlag string
var editBufferFileFlag string

// editCmd applies one buffer edit, prints the reconciled buffer and writes
// the shifted anchors back to the session.
var editCmd = newEditCmd()

func newEditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Apply a buffer edit and reconcile anchor indices",
		Long: `Edit feeds one (start, deleted, inserted) mutation through the index
reconciler. Edits landing inside an anchor are dropped unless --editing
names that anchor; the input is simply not applied.`,
		RunE: func(c *cobra.Command, _ []string) error {
			box, err := parseBox(editBoxFlag, editNumFlag)
			if err != nil {
				return err
			}

			loc, err := parseLocation(editLocFlag)
			if err != nil {
				return err
			}

			buffer, err := os.ReadFile(editBufferFileFlag)
			if err != nil {
				return err
			}

			wf, err := workflowFactory()
			if err != nil {
				return err
			}

			wf.SetBuffer(box, loc, string(buffer))

			updated, anchors, err := wf.ApplyEdit(box, loc, m.Edit{
				Start:           editStartFlag,
				Deleted:         editDeletedFlag,
				Inserted:        editInsertFlag,
				EditingAnchorID: editingAnchorFlag,
			})

			var blocked *m.EditBlockedError
			if errors.As(err, &blocked) {
				// Isolation violations reject the input silently.
				return nil
			}

			if err != nil {
				return err
			}

			if err := os.WriteFile(editBufferFileFlag, []byte(updated), 0o600); err != nil {
				return err
			}

			if err := wf.Save(c.Context()); err != nil {
				return err
			}

			return ui.ShowAnchors(anchors)
		},
	}

	cmd.Flags().StringVarP(&editBoxFlag, "box", "b", "given", "box type: given, when or then")
	cmd.Flags().IntVarP(&editNumFlag, "num", "n", 1, "box number within the test case")
	cmd.Flags().StringVarP(&editLocFlag, "loc", "l", "header", "buffer: header (statement) or content (code)")
	cmd.Flags().IntVar(&editStartFlag, "start", 0, "edit start index")
	cmd.Flags().IntVar(&editDeletedFlag, "deleted", 0, "number of characters removed")
	cmd.Flags().StringVar(&editInsertFlag, "insert", "", "text inserted at the edit point")
	cmd.Flags().StringVar(&editingAnchorFlag, "editing", "", "anchor id of the active edit session, if any")
	cmd.Flags().StringVarP(&editBufferFileFlag, "buffer", "f", "", "file holding the buffer text (rewritten in place)")

	return cmd
}

func init() {
	rootCmd.AddCommand(editCmd)
}
