package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/rmaxseiner/drawerfinity/internal/model"
)

// ExportXLSX writes a drawer layout to an Excel workbook. The Bins sheet
// holds the bin schedule in the same column layout the importer accepts, so
// an exported file can be re-imported. The Grid sheet lists the partition
// units.
func ExportXLSX(path string, layout model.Layout, units []model.Unit) error {
	if len(units) == 0 {
		return fmt.Errorf("no grid units to export")
	}

	f := excelize.NewFile()
	defer f.Close()

	binsSheet := f.GetSheetName(0)
	if err := f.SetSheetName(binsSheet, "Bins"); err != nil {
		return fmt.Errorf("failed to name bins sheet: %w", err)
	}

	binHeaders := []interface{}{"Label", "X", "Y", "Width", "Depth", "Unit X", "Unit Y", "Unit W", "Unit D"}
	if err := writeRow(f, "Bins", 1, binHeaders); err != nil {
		return err
	}
	for i, b := range layout.Bins {
		row := []interface{}{b.Label, b.X, b.Y, b.Width, b.Depth, b.UnitX, b.UnitY, b.UnitWidth, b.UnitDepth}
		if err := writeRow(f, "Bins", i+2, row); err != nil {
			return err
		}
	}

	if _, err := f.NewSheet("Grid"); err != nil {
		return fmt.Errorf("failed to create grid sheet: %w", err)
	}

	gridHeaders := []interface{}{"X Offset", "Y Offset", "Width", "Depth", "Standard"}
	if err := writeRow(f, "Grid", 1, gridHeaders); err != nil {
		return err
	}
	for i, u := range units {
		row := []interface{}{u.XOffset, u.YOffset, u.Width, u.Depth, u.IsStandard}
		if err := writeRow(f, "Grid", i+2, row); err != nil {
			return err
		}
	}

	return f.SaveAs(path)
}

// writeRow sets a full row of cell values on the given sheet.
func writeRow(f *excelize.File, sheet string, rowNum int, values []interface{}) error {
	for col, v := range values {
		cellRef, err := excelize.CoordinatesToCellName(col+1, rowNum)
		if err != nil {
			return fmt.Errorf("failed to create cell reference: %w", err)
		}
		if err := f.SetCellValue(sheet, cellRef, v); err != nil {
			return fmt.Errorf("failed to set cell value: %w", err)
		}
	}
	return nil
}
