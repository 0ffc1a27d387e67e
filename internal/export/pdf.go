// Package export provides functionality for exporting drawer layouts to
// various file formats.
package export

import (
	"fmt"
	"math"

	"github.com/go-pdf/fpdf"

	"github.com/rmaxseiner/drawerfinity/internal/model"
	"github.com/rmaxseiner/drawerfinity/internal/plate"
)

// binColor represents an RGB color for a placed bin.
type binColor struct {
	R, G, B int
}

// binColors is the palette cycled through when rendering placed bins.
var binColors = []binColor{
	{R: 76, G: 175, B: 80},  // green
	{R: 33, G: 150, B: 243}, // blue
	{R: 255, G: 152, B: 0},  // orange
	{R: 156, G: 39, B: 176}, // purple
	{R: 0, G: 188, B: 212},  // cyan
	{R: 244, G: 67, B: 54},  // red
	{R: 255, G: 235, B: 59}, // yellow
	{R: 121, G: 85, B: 72},  // brown
}

// Page layout constants (A4 landscape in mm).
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	statsHeight  = 20.0
	drawAreaTop  = marginTop + headerHeight + 5.0
)

// ExportPDF generates a PDF report for a drawer layout. The first page shows
// the drawer with its grid units and placed bins to scale, followed by a
// summary page with a bin schedule and a print plan for the baseplate.
func ExportPDF(path string, layout model.Layout, units []model.Unit) error {
	if len(units) == 0 {
		return fmt.Errorf("no grid units to export")
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)

	pdf.AddPage()
	renderDrawerPage(pdf, layout, units)

	pdf.AddPage()
	renderSummaryPage(pdf, layout, units)

	return pdf.OutputFileAndClose(path)
}

// renderDrawerPage draws the drawer layout diagram on the current page.
func renderDrawerPage(pdf *fpdf.Fpdf, layout model.Layout, units []model.Unit) {
	drawer := layout.Drawer

	// Title
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	title := fmt.Sprintf("%s: %s (%.0f x %.0f mm)", layout.Name, drawer.Name, drawer.Width, drawer.Depth)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, title, "", 0, "L", false, 0, "")

	// Stats line
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(marginLeft, marginTop+headerHeight)
	stats := fmt.Sprintf("Bins: %d | Used area: %.0f mm² | Drawer area: %.0f mm² | Fill: %.1f%%",
		len(layout.Bins), layout.UsedArea(), layout.TotalArea(), layout.Fill())
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 5, stats, "", 0, "L", false, 0, "")

	// Calculate drawing area
	drawWidth := pageWidth - marginLeft - marginRight
	drawHeight := pageHeight - drawAreaTop - marginBottom - statsHeight

	// Calculate scale to fit the drawer within the drawing area
	scaleX := drawWidth / drawer.Width
	scaleY := drawHeight / drawer.Depth
	scale := math.Min(scaleX, scaleY)

	canvasW := drawer.Width * scale
	canvasH := drawer.Depth * scale

	// Center the drawing horizontally
	offsetX := marginLeft + (drawWidth-canvasW)/2
	offsetY := drawAreaTop

	// Drawer interior background
	pdf.SetFillColor(245, 245, 245)
	pdf.SetDrawColor(100, 100, 100)
	pdf.SetLineWidth(0.5)
	pdf.Rect(offsetX, offsetY, canvasW, canvasH, "FD")

	// Grid units: standard cells stay plain, remainder cells get a tint
	for _, u := range units {
		ux := offsetX + u.XOffset*scale
		uy := offsetY + u.YOffset*scale
		uw := u.Width * scale
		uh := u.Depth * scale

		if u.IsStandard {
			pdf.SetFillColor(255, 255, 255)
		} else {
			pdf.SetFillColor(255, 243, 224)
		}
		pdf.SetDrawColor(180, 180, 180)
		pdf.SetLineWidth(0.15)
		pdf.Rect(ux, uy, uw, uh, "FD")
	}

	// Placed bins
	for i, b := range layout.Bins {
		col := binColors[i%len(binColors)]
		bw := b.Width * scale
		bh := b.Depth * scale
		bx := offsetX + b.X*scale
		by := offsetY + b.Y*scale

		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.SetDrawColor(30, 30, 30)
		pdf.SetLineWidth(0.3)
		pdf.Rect(bx, by, bw, bh, "FD")

		// Bin label (only if rectangle is large enough)
		if bw > 15 && bh > 8 {
			pdf.SetFont("Helvetica", "", labelFontSize(bw, bh))
			pdf.SetTextColor(0, 0, 0)

			label := b.Label
			dims := fmt.Sprintf("%.0fx%.0f", b.Width, b.Depth)

			labelW := pdf.GetStringWidth(label)
			dimsW := pdf.GetStringWidth(dims)

			if labelW < bw-2 {
				pdf.SetXY(bx+(bw-labelW)/2, by+bh/2-4)
				pdf.CellFormat(labelW, 4, label, "", 0, "C", false, 0, "")
			}
			if bh > 14 && dimsW < bw-2 {
				pdf.SetXY(bx+(bw-dimsW)/2, by+bh/2)
				pdf.CellFormat(dimsW, 4, dims, "", 0, "C", false, 0, "")
			}
		}
	}

	drawDimensionAnnotations(pdf, drawer, scale, offsetX, offsetY, canvasW, canvasH)
	drawBinsLegend(pdf, layout, offsetY+canvasH+5)
}

// drawDimensionAnnotations adds width and depth labels outside the drawer rectangle.
func drawDimensionAnnotations(pdf *fpdf.Fpdf, drawer model.Drawer, scale, offsetX, offsetY, canvasW, canvasH float64) {
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(80, 80, 80)

	// Width annotation (below the drawer)
	widthLabel := fmt.Sprintf("%.0f mm", drawer.Width)
	wLabelW := pdf.GetStringWidth(widthLabel)
	pdf.SetXY(offsetX+(canvasW-wLabelW)/2, offsetY+canvasH+1)
	pdf.CellFormat(wLabelW, 4, widthLabel, "", 0, "C", false, 0, "")

	// Depth annotation (to the left, rotated)
	depthLabel := fmt.Sprintf("%.0f mm", drawer.Depth)
	pdf.TransformBegin()
	pdf.TransformRotate(90, offsetX-3, offsetY+canvasH/2)
	dLabelW := pdf.GetStringWidth(depthLabel)
	pdf.SetXY(offsetX-3-dLabelW/2, offsetY+canvasH/2-2)
	pdf.CellFormat(dLabelW, 4, depthLabel, "", 0, "C", false, 0, "")
	pdf.TransformEnd()

	pdf.SetTextColor(0, 0, 0)
}

// drawBinsLegend renders a compact legend of placed bins at the bottom of the page.
func drawBinsLegend(pdf *fpdf.Fpdf, layout model.Layout, startY float64) {
	if len(layout.Bins) == 0 {
		return
	}

	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(marginLeft, startY)
	pdf.CellFormat(30, 4, "Bins placed:", "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	xPos := marginLeft + 32
	maxX := pageWidth - marginRight

	for i, b := range layout.Bins {
		col := binColors[i%len(binColors)]
		label := fmt.Sprintf("%s (%.0fx%.0f)", b.Label, b.Width, b.Depth)
		labelW := pdf.GetStringWidth(label) + 6

		if xPos+labelW > maxX {
			startY += 5
			xPos = marginLeft
		}

		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.Rect(xPos, startY+0.5, 3, 3, "F")

		pdf.SetXY(xPos+4, startY)
		pdf.CellFormat(labelW-4, 4, label, "", 0, "L", false, 0, "")

		xPos += labelW + 2
	}
}

// renderSummaryPage draws the bin schedule and baseplate print plan.
func renderSummaryPage(pdf *fpdf.Fpdf, layout model.Layout, units []model.Unit) {
	// Title
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 10, "Layout Summary", "", 0, "L", false, 0, "")

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.5)
	pdf.Line(marginLeft, marginTop+12, pageWidth-marginRight, marginTop+12)

	y := marginTop + 18

	standard := 0
	for _, u := range units {
		if u.IsStandard {
			standard++
		}
	}

	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Overall Statistics", "", 0, "L", false, 0, "")
	y += 9

	summaryItems := []struct {
		label string
		value string
	}{
		{"Grid Units", fmt.Sprintf("%d (%d standard, %d remainder)", len(units), standard, len(units)-standard)},
		{"Bins Placed", fmt.Sprintf("%d", len(layout.Bins))},
		{"Drawer Fill", fmt.Sprintf("%.1f%%", layout.Fill())},
		{"Printer", layout.Printer},
	}

	pdf.SetFont("Helvetica", "", 10)
	for _, item := range summaryItems {
		pdf.SetXY(marginLeft+5, y)
		pdf.CellFormat(60, 6, item.label+":", "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(60, 6, item.value, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		y += 7
	}

	y += 5

	// Bin schedule table
	if len(layout.Bins) > 0 {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.SetXY(marginLeft, y)
		pdf.CellFormat(100, 7, "Bin Schedule", "", 0, "L", false, 0, "")
		y += 9

		colWidths := []float64{70, 45, 45, 40, 40}
		headers := []string{"Label", "Position", "Size", "Grid Cell", "Footprint"}

		pdf.SetFont("Helvetica", "B", 9)
		pdf.SetFillColor(230, 230, 230)
		xPos := marginLeft
		for i, header := range headers {
			pdf.SetXY(xPos, y)
			pdf.CellFormat(colWidths[i], 6, header, "1", 0, "C", true, 0, "")
			xPos += colWidths[i]
		}
		y += 6

		pdf.SetFont("Helvetica", "", 9)
		for i, b := range layout.Bins {
			xPos = marginLeft
			rowData := []string{
				b.Label,
				fmt.Sprintf("(%.0f, %.0f)", b.X, b.Y),
				fmt.Sprintf("%.0f x %.0f mm", b.Width, b.Depth),
				fmt.Sprintf("(%d, %d)", b.UnitX, b.UnitY),
				fmt.Sprintf("%d x %d", b.UnitWidth, b.UnitDepth),
			}

			if i%2 == 0 {
				pdf.SetFillColor(245, 245, 245)
			} else {
				pdf.SetFillColor(255, 255, 255)
			}

			for j, cell := range rowData {
				pdf.SetXY(xPos, y)
				pdf.CellFormat(colWidths[j], 6, cell, "1", 0, "C", true, 0, "")
				xPos += colWidths[j]
			}
			y += 6
		}

		y += 8
	}

	// Baseplate print plan
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Baseplate Print Plan", "", 0, "L", false, 0, "")
	y += 9

	printer := model.GetPrinter(layout.Printer)
	sections, err := plate.Sections(layout.Drawer.Width, layout.Drawer.Depth, printer)
	if err != nil {
		pdf.SetFont("Helvetica", "", 9)
		pdf.SetTextColor(200, 0, 0)
		pdf.SetXY(marginLeft+5, y)
		pdf.CellFormat(200, 5, fmt.Sprintf("Cannot plan baseplate: %v", err), "", 0, "L", false, 0, "")
		pdf.SetTextColor(0, 0, 0)
		return
	}

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetXY(marginLeft+5, y)
	plan := fmt.Sprintf("%d sections on %s (%.0f x %.0f mm bed)",
		len(sections), printer.Name, printer.BedWidth, printer.BedDepth)
	if layout.Drawer.Height > 0 {
		plan += fmt.Sprintf(" | Bin height: %.0f mm", plate.BinHeight(layout.Drawer.Height))
	}
	pdf.CellFormat(200, 5, plan, "", 0, "L", false, 0, "")
	y += 7

	for _, s := range sections {
		pdf.SetXY(marginLeft+5, y)
		text := fmt.Sprintf("- Section %d: %.0f x %.0f mm at (%.0f, %.0f)",
			s.Index+1, s.Width, s.Depth, s.XOffset, s.YOffset)
		pdf.CellFormat(200, 5, text, "", 0, "L", false, 0, "")
		y += 5
	}
}

// labelFontSize returns an appropriate font size based on the rectangle dimensions.
func labelFontSize(w, h float64) float64 {
	minDim := math.Min(w, h)
	switch {
	case minDim > 40:
		return 8
	case minDim > 20:
		return 7
	default:
		return 6
	}
}
