package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rmaxseiner/drawerfinity/internal/engine"
	"github.com/rmaxseiner/drawerfinity/internal/grid"
	"github.com/rmaxseiner/drawerfinity/internal/importer"
	"github.com/rmaxseiner/drawerfinity/internal/project"
)

// newImportCmd creates the import command. With --bins it batch-places a bin
// schedule from CSV or Excel through the engine; with --footprint it measures
// a DXF drawing and resizes the layout's drawer.
func newImportCmd() *cobra.Command {
	var (
		binsFile      string
		footprintFile string
	)

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import a bin schedule or a drawer footprint into a layout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if (binsFile == "") == (footprintFile == "") {
				return fmt.Errorf("exactly one of --bins or --footprint is required")
			}
			if binsFile != "" {
				return runImportBins(cmd, args[0], binsFile)
			}
			return runImportFootprint(cmd, args[0], footprintFile)
		},
	}

	cmd.Flags().StringVar(&binsFile, "bins", "", "bin schedule file (.csv or .xlsx)")
	cmd.Flags().StringVar(&footprintFile, "footprint", "", "drawer footprint drawing (.dxf)")
	return cmd
}

// runImportBins places every row of a bin schedule through the engine.
// Row-level and placement-level problems are reported; bins that pass are
// kept. Nothing is saved when no bin could be placed.
func runImportBins(cmd *cobra.Command, layoutPath, binsPath string) error {
	logger := loggerFromContext(cmd.Context())

	var result importer.ImportResult
	switch strings.ToLower(filepath.Ext(binsPath)) {
	case ".xlsx":
		result = importer.ImportExcel(binsPath)
	default:
		result = importer.ImportCSV(binsPath)
	}

	for _, w := range result.Warnings {
		logger.Warn(w)
	}
	for _, e := range result.Errors {
		logger.Error(e)
	}
	if len(result.Bins) == 0 {
		return fmt.Errorf("no usable rows in %s", binsPath)
	}

	layout, sess, err := openSession(layoutPath)
	if err != nil {
		return err
	}

	placed := 0
	for _, spec := range result.Bins {
		bin, err := sess.Place(engine.Request{
			Label: spec.Label,
			X:     spec.X,
			Y:     spec.Y,
			Width: spec.Width,
			Depth: spec.Depth,
		})
		if err != nil {
			logger.Error("skipping bin", "label", spec.Label, "err", err)
			continue
		}
		logger.Debug("placed bin", "label", bin.Label, "id", bin.ID)
		placed++
	}

	if placed == 0 {
		return fmt.Errorf("no bins from %s could be placed", binsPath)
	}

	layout.Bins = sess.Bins()
	if err := saveLayout(cmd.Context(), layoutPath, layout); err != nil {
		return err
	}

	logger.Info("imported bins", "placed", placed, "skipped", len(result.Bins)-placed, "total", len(layout.Bins))
	return nil
}

// runImportFootprint resizes the layout's drawer to a measured DXF footprint.
// Existing bins must still fit the new partition or the import is rejected.
func runImportFootprint(cmd *cobra.Command, layoutPath, dxfPath string) error {
	logger := loggerFromContext(cmd.Context())

	result := importer.ImportFootprint(dxfPath)
	for _, w := range result.Warnings {
		logger.Warn(w)
	}
	if len(result.Errors) > 0 {
		return fmt.Errorf("cannot measure footprint: %s", strings.Join(result.Errors, "; "))
	}

	layout, err := project.LoadLayout(layoutPath)
	if err != nil {
		return err
	}

	layout.Drawer.Width = result.Width
	layout.Drawer.Depth = result.Depth
	if problems := layout.Drawer.Validate(); len(problems) > 0 {
		return fmt.Errorf("measured drawer is invalid: %s", strings.Join(problems, "; "))
	}

	units, err := grid.Partition(layout.Drawer.Width, layout.Drawer.Depth)
	if err != nil {
		return err
	}
	if _, err := engine.NewSession(units, layout.Bins); err != nil {
		return fmt.Errorf("existing bins do not fit the measured drawer: %w", err)
	}

	if err := saveLayout(cmd.Context(), layoutPath, layout); err != nil {
		return err
	}

	logger.Info("resized drawer from footprint",
		"width", fmt.Sprintf("%.1f", result.Width),
		"depth", fmt.Sprintf("%.1f", result.Depth),
		"units", len(units))
	return nil
}
