package cmd

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/ancora/internal/domain"
)

var snapshotBufferFileFlag string
var snapshotBoxFlag string
var snapshotNumFlag int
var snapshotLocFlag string
var snapshotCharWidthFlag float64
var snapshotLineHeightFlag float64

// snapshotExport is the JSON shape written by the snapshot command.
type snapshotExport struct {
	domain.Snapshot
	Geometry map[string]domain.Rect `json:"geometry,omitempty"`
}

// snapshotCmd exports the test case state for diagnostics. With --buffer it
// also derives the rendered bounding boxes of one partition's anchors.
var snapshotCmd = newSnapshotCmd()

func newSnapshotCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Export the test case's anchors and links as JSON",
		RunE: func(c *cobra.Command, _ []string) error {
			wf, err := workflowFactory()
			if err != nil {
				return err
			}

			export := snapshotExport{Snapshot: wf.Snapshot()}

			if snapshotBufferFileFlag != "" {
				box, err := parseBox(snapshotBoxFlag, snapshotNumFlag)
				if err != nil {
					return err
				}

				loc, err := parseLocation(snapshotLocFlag)
				if err != nil {
					return err
				}

				buffer, err := os.ReadFile(snapshotBufferFileFlag)
				if err != nil {
					return err
				}

				export.Geometry = domain.ComputeAnchorGeometry(string(buffer), wf.ListAnchors(box, loc), domain.ViewportMetrics{
					CharWidth:  snapshotCharWidthFlag,
					LineHeight: snapshotLineHeightFlag,
				})
			}

			data, err := json.MarshalIndent(export, "", "  ")
			if err != nil {
				return err
			}

			c.Println(string(data))

			return nil
		},
	}

	cmd.Flags().StringVarP(&snapshotBufferFileFlag, "buffer", "f", "", "buffer file to derive anchor geometry from")
	cmd.Flags().StringVarP(&snapshotBoxFlag, "box", "b", "given", "box type of the geometry partition")
	cmd.Flags().IntVarP(&snapshotNumFlag, "num", "n", 1, "box number of the geometry partition")
	cmd.Flags().StringVarP(&snapshotLocFlag, "loc", "l", "content", "buffer of the geometry partition")
	cmd.Flags().Float64Var(&snapshotCharWidthFlag, "char-width", 8, "rendered character width in pixels")
	cmd.Flags().Float64Var(&snapshotLineHeightFlag, "line-height", 20, "rendered line height in pixels")

	return cmd
}

func init() {
	rootCmd.AddCommand(snapshotCmd)
}
