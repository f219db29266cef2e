package cmd

import (
	"github.com/spf13/cobra"
)

var anchorBoxFlag string
var anchorNumFlag int
var anchorLocFlag string
var anchorStartFlag int
var anchorEndFlag int
var anchorTextFlag string

// anchorCmd groups the anchor CRUD subcommands.
var anchorCmd = newAnchorCmd()

func newAnchorCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "anchor",
		Short: "Create, list and delete semantic anchors",
	}

	cmd.AddCommand(newAnchorCreateCmd(), newAnchorListCmd(), newAnchorDeleteCmd())

	return cmd
}

func newAnchorCreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Convert a text selection into an anchor",
		RunE: func(c *cobra.Command, _ []string) error {
			box, err := parseBox(anchorBoxFlag, anchorNumFlag)
			if err != nil {
				return err
			}

			loc, err := parseLocation(anchorLocFlag)
			if err != nil {
				return err
			}

			wf, err := workflowFactory()
			if err != nil {
				return err
			}

			anchor, err := wf.CreateAnchor(box, loc, anchorStartFlag, anchorEndFlag, anchorTextFlag)
			if err != nil {
				return err
			}

			if err := wf.Save(c.Context()); err != nil {
				return err
			}

			ui.Notify("created %s", anchor.ID)

			return nil
		},
	}

	cmd.Flags().StringVarP(&anchorBoxFlag, "box", "b", "given", "box type: given, when or then")
	cmd.Flags().IntVarP(&anchorNumFlag, "num", "n", 1, "box number within the test case")
	cmd.Flags().StringVarP(&anchorLocFlag, "loc", "l", "header", "buffer: header (statement) or content (code)")
	cmd.Flags().IntVar(&anchorStartFlag, "start", 0, "selection start index")
	cmd.Flags().IntVar(&anchorEndFlag, "end", 0, "selection end index (exclusive)")
	cmd.Flags().StringVar(&anchorTextFlag, "text", "", "selected buffer slice")

	return cmd
}

func newAnchorListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the anchors of one partition",
		RunE: func(_ *cobra.Command, _ []string) error {
			box, err := parseBox(anchorBoxFlag, anchorNumFlag)
			if err != nil {
				return err
			}

			loc, err := parseLocation(anchorLocFlag)
			if err != nil {
				return err
			}

			wf, err := workflowFactory()
			if err != nil {
				return err
			}

			return ui.ShowAnchors(wf.ListAnchors(box, loc))
		},
	}

	cmd.Flags().StringVarP(&anchorBoxFlag, "box", "b", "given", "box type: given, when or then")
	cmd.Flags().IntVarP(&anchorNumFlag, "num", "n", 1, "box number within the test case")
	cmd.Flags().StringVarP(&anchorLocFlag, "loc", "l", "header", "buffer: header (statement) or content (code)")

	return cmd
}

func newAnchorDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <anchor-id>",
		Short: "Delete an anchor and cascade its incident links",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			wf, err := workflowFactory()
			if err != nil {
				return err
			}

			cascaded, err := wf.DeleteAnchor(args[0])
			if err != nil {
				return err
			}

			if err := wf.Save(c.Context()); err != nil {
				return err
			}

			ui.Notify("deleted %s, cascaded %d link(s)", args[0], len(cascaded))

			return nil
		},
	}
}

func init() {
	rootCmd.AddCommand(anchorCmd)
}
