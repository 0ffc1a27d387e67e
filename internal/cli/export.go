package cli

import (
	"github.com/spf13/cobra"

	"github.com/rmaxseiner/drawerfinity/internal/export"
	"github.com/rmaxseiner/drawerfinity/internal/grid"
	"github.com/rmaxseiner/drawerfinity/internal/model"
	"github.com/rmaxseiner/drawerfinity/internal/project"
)

// loadForExport loads a layout and its partition for the export commands.
func loadForExport(path string) (model.Layout, []model.Unit, error) {
	layout, err := project.LoadLayout(path)
	if err != nil {
		return model.Layout{}, nil, err
	}
	units, err := grid.Partition(layout.Drawer.Width, layout.Drawer.Depth)
	if err != nil {
		return model.Layout{}, nil, err
	}
	return layout, units, nil
}

// newReportCmd creates the report command, which renders a PDF layout report.
func newReportCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "report <file>",
		Short: "Export a PDF report of a layout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			layout, units, err := loadForExport(args[0])
			if err != nil {
				return err
			}
			if err := export.ExportPDF(output, layout, units); err != nil {
				return err
			}
			loggerFromContext(cmd.Context()).Info("wrote report", "file", output, "bins", len(layout.Bins))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output PDF path (required)")
	_ = cmd.MarkFlagRequired("output")
	return cmd
}

// newLabelsCmd creates the labels command, which renders QR-coded bin labels.
func newLabelsCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "labels <file>",
		Short: "Export a PDF sheet of QR-coded bin labels",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			layout, err := project.LoadLayout(args[0])
			if err != nil {
				return err
			}
			if err := export.ExportLabels(output, layout); err != nil {
				return err
			}
			loggerFromContext(cmd.Context()).Info("wrote labels", "file", output, "labels", len(layout.Bins))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output PDF path (required)")
	_ = cmd.MarkFlagRequired("output")
	return cmd
}

// newExportCmd creates the export command, which writes an Excel workbook.
func newExportCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export <file>",
		Short: "Export a layout to an Excel workbook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			layout, units, err := loadForExport(args[0])
			if err != nil {
				return err
			}
			if err := export.ExportXLSX(output, layout, units); err != nil {
				return err
			}
			loggerFromContext(cmd.Context()).Info("wrote workbook", "file", output, "bins", len(layout.Bins))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output .xlsx path (required)")
	_ = cmd.MarkFlagRequired("output")
	return cmd
}
