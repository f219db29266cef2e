package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	m "github.com/mouse-blink/ancora/internal/model"
)

var linkFromFlag string
var linkToFlag string
var linkFromPointFlag string
var linkToPointFlag string
var linkReasonFlag string

// linkCmd groups the Binomi subcommands.
var linkCmd = newLinkCmd()

func newLinkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "link",
		Short: "Create, toggle and delete Binomi between anchors",
	}

	cmd.AddCommand(newLinkCreateCmd(), newLinkListCmd(), newLinkDisableCmd(), newLinkEnableCmd(), newLinkDeleteCmd())

	return cmd
}

func newLinkCreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Link a header anchor to a content anchor",
		RunE: func(c *cobra.Command, _ []string) error {
			fromPoint, err := parsePoint(linkFromPointFlag)
			if err != nil {
				return err
			}

			toPoint, err := parsePoint(linkToPointFlag)
			if err != nil {
				return err
			}

			wf, err := workflowFactory()
			if err != nil {
				return err
			}

			link, err := wf.CreateLink(linkFromFlag, linkToFlag, fromPoint, toPoint)
			if err != nil {
				return err
			}

			if err := wf.Save(c.Context()); err != nil {
				return err
			}

			ui.Notify("created %s", link.ID)

			return nil
		},
	}

	cmd.Flags().StringVar(&linkFromFlag, "from", "", "header anchor id")
	cmd.Flags().StringVar(&linkToFlag, "to", "", "content anchor id")
	cmd.Flags().StringVar(&linkFromPointFlag, "from-point", "1,0.5", "normalized attachment point on the from anchor")
	cmd.Flags().StringVar(&linkToPointFlag, "to-point", "0,0.5", "normalized attachment point on the to anchor")

	return cmd
}

func newLinkListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the test case's Binomi with status and audit trail",
		RunE: func(_ *cobra.Command, _ []string) error {
			wf, err := workflowFactory()
			if err != nil {
				return err
			}

			return ui.ShowLinks(wf.ListLinks())
		},
	}
}

func newLinkDisableCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "disable <binomio-id>",
		Short: "Disable a link, recording the reason",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return setLinkStatus(c, args[0], m.LinkDisabled)
		},
	}

	cmd.Flags().StringVarP(&linkReasonFlag, "reason", "r", "", "audit reason (required)")

	return cmd
}

func newLinkEnableCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "enable <binomio-id>",
		Short: "Reactivate a disabled link, recording the reason",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return setLinkStatus(c, args[0], m.LinkActive)
		},
	}

	cmd.Flags().StringVarP(&linkReasonFlag, "reason", "r", "", "audit reason (required)")

	return cmd
}

func newLinkDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <binomio-id>",
		Short: "Delete a link",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			wf, err := workflowFactory()
			if err != nil {
				return err
			}

			if err := wf.DeleteLink(args[0]); err != nil {
				return err
			}

			if err := wf.Save(c.Context()); err != nil {
				return err
			}

			ui.Notify("deleted %s", args[0])

			return nil
		},
	}
}

func setLinkStatus(c *cobra.Command, id string, status m.LinkStatus) error {
	wf, err := workflowFactory()
	if err != nil {
		return err
	}

	link, err := wf.SetLinkStatus(id, status, linkReasonFlag)
	if err != nil {
		return err
	}

	if err := wf.Save(c.Context()); err != nil {
		return err
	}

	ui.Notify("%s is now %s", link.ID, link.Status)

	return nil
}

// parsePoint reads an "x,y" pair of normalized coordinates.
func parsePoint(raw string) (m.Point, error) {
	var p m.Point

	if _, err := fmt.Sscanf(raw, "%f,%f", &p.X, &p.Y); err != nil {
		return m.Point{}, &m.ValidationError{Field: "point", Reason: "expected x,y"}
	}

	if p.X < 0 || p.X > 1 || p.Y < 0 || p.Y > 1 {
		return m.Point{}, &m.ValidationError{Field: "point", Reason: "coordinates must be in [0,1]"}
	}

	return p, nil
}

func init() {
	rootCmd.AddCommand(linkCmd)
}
