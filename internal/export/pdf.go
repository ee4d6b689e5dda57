// Package export writes free-space analysis results to various file
// formats: PDF diagrams, spreadsheets, and QR-coded region labels.
package export

import (
	"fmt"
	"math"

	"github.com/go-pdf/fpdf"

	"github.com/sheetlab/freerect/internal/model"
)

// regionColor represents an RGB color for a free region outline.
type regionColor struct {
	R, G, B int
}

var regionColors = []regionColor{
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
	legendHeight = 20.0
	drawAreaTop  = marginTop + headerHeight + 5.0
)

// ExportPDF generates a PDF document for a free-space analysis: a diagram
// page showing the sheet with its blocked and free regions, followed by a
// summary page with statistics.
func ExportPDF(path string, result model.AnalysisResult) error {
	sheet := result.Layout.Sheet
	if sheet.Width <= 0 || sheet.Height <= 0 {
		return fmt.Errorf("sheet %q has no area to draw", sheet.Label)
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)

	pdf.AddPage()
	renderDiagramPage(pdf, result)

	pdf.AddPage()
	renderSummaryPage(pdf, result)

	return pdf.OutputFileAndClose(path)
}

// renderDiagramPage draws the sheet, its blocked regions, and the maximal
// free rectangles on the current page.
func renderDiagramPage(pdf *fpdf.Fpdf, result model.AnalysisResult) {
	sheet := result.Layout.Sheet

	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	title := fmt.Sprintf("Sheet: %s (%.0f x %.0f mm)", sheet.Label, sheet.Width, sheet.Height)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, title, "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(marginLeft, marginTop+headerHeight)
	stats := fmt.Sprintf("Blocked: %.0f sq mm (%.1f%%) | Free: %.0f sq mm | Maximal free rectangles: %d (%d usable)",
		result.BlockedArea, result.Utilization, result.FreeArea, len(result.Free), len(result.Usable))
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 5, stats, "", 0, "L", false, 0, "")

	drawWidth := pageWidth - marginLeft - marginRight
	drawHeight := pageHeight - drawAreaTop - marginBottom - legendHeight

	scale := math.Min(drawWidth/sheet.Width, drawHeight/sheet.Height)
	canvasW := sheet.Width * scale
	canvasH := sheet.Height * scale
	offsetX := marginLeft + (drawWidth-canvasW)/2
	offsetY := drawAreaTop

	// Sheet background
	pdf.SetFillColor(210, 180, 140)
	pdf.SetDrawColor(100, 100, 100)
	pdf.SetLineWidth(0.5)
	pdf.Rect(offsetX, offsetY, canvasW, canvasH, "FD")

	// Blocked regions, clipped to the sheet
	pdf.ClipRect(offsetX, offsetY, canvasW, canvasH, false)
	for _, region := range result.Layout.Regions {
		rx := offsetX + region.X*scale
		ry := offsetY + region.Y*scale
		rw := region.Width * scale
		rh := region.Height * scale

		pdf.SetFillColor(120, 120, 120)
		pdf.SetDrawColor(30, 30, 30)
		pdf.SetLineWidth(0.3)
		pdf.Rect(rx, ry, rw, rh, "FD")

		if rw > 15 && rh > 8 && region.Label != "" {
			pdf.SetFont("Helvetica", "", 6)
			pdf.SetTextColor(240, 240, 240)
			labelW := pdf.GetStringWidth(region.Label)
			if labelW < rw-2 {
				pdf.SetXY(rx+(rw-labelW)/2, ry+rh/2-2)
				pdf.CellFormat(labelW, 4, region.Label, "", 0, "C", false, 0, "")
			}
		}
	}
	pdf.ClipEnd()

	// Free regions overlap each other, so draw colored outlines instead of
	// fills and key them to the legend below.
	for i, free := range result.Free {
		col := regionColors[i%len(regionColors)]
		fx := offsetX + free.X*scale
		fy := offsetY + free.Y*scale
		fw := free.Width * scale
		fh := free.Height * scale

		pdf.SetDrawColor(col.R, col.G, col.B)
		pdf.SetLineWidth(0.6)
		// Nudge coincident outlines apart slightly so shared edges stay visible.
		pdf.Rect(fx+0.2*float64(i%4), fy+0.2*float64(i%4), fw, fh, "D")

		if fw > 15 && fh > 8 {
			pdf.SetFont("Helvetica", "B", 7)
			pdf.SetTextColor(col.R, col.G, col.B)
			dims := fmt.Sprintf("%.0fx%.0f", free.Width, free.Height)
			dimsW := pdf.GetStringWidth(dims)
			if dimsW < fw-2 {
				pdf.SetXY(fx+(fw-dimsW)/2, fy+fh/2-2)
				pdf.CellFormat(dimsW, 4, dims, "", 0, "C", false, 0, "")
			}
		}
	}
	pdf.SetTextColor(0, 0, 0)

	drawDimensionAnnotations(pdf, sheet, scale, offsetX, offsetY, canvasW, canvasH)
	drawRegionLegend(pdf, result, offsetY+canvasH+5)
}

// drawDimensionAnnotations adds width and height labels outside the sheet rectangle.
func drawDimensionAnnotations(pdf *fpdf.Fpdf, sheet model.Sheet, scale, offsetX, offsetY, canvasW, canvasH float64) {
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(80, 80, 80)

	widthLabel := fmt.Sprintf("%.0f mm", sheet.Width)
	wLabelW := pdf.GetStringWidth(widthLabel)
	pdf.SetXY(offsetX+(canvasW-wLabelW)/2, offsetY+canvasH+1)
	pdf.CellFormat(wLabelW, 4, widthLabel, "", 0, "C", false, 0, "")

	heightLabel := fmt.Sprintf("%.0f mm", sheet.Height)
	pdf.TransformBegin()
	pdf.TransformRotate(90, offsetX-3, offsetY+canvasH/2)
	hLabelW := pdf.GetStringWidth(heightLabel)
	pdf.SetXY(offsetX-3-hLabelW/2, offsetY+canvasH/2-2)
	pdf.CellFormat(hLabelW, 4, heightLabel, "", 0, "C", false, 0, "")
	pdf.TransformEnd()

	pdf.SetTextColor(0, 0, 0)
}

// drawRegionLegend renders a compact legend of free regions at the bottom of the page.
func drawRegionLegend(pdf *fpdf.Fpdf, result model.AnalysisResult, startY float64) {
	if len(result.Free) == 0 {
		return
	}

	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(marginLeft, startY)
	pdf.CellFormat(30, 4, "Free regions:", "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	xPos := marginLeft + 32
	maxX := pageWidth - marginRight

	for i, free := range result.Free {
		col := regionColors[i%len(regionColors)]
		label := fmt.Sprintf("%s (%.0fx%.0f @ %.0f,%.0f)", free.ID, free.Width, free.Height, free.X, free.Y)
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

// renderSummaryPage draws the statistics page.
func renderSummaryPage(pdf *fpdf.Fpdf, result model.AnalysisResult) {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 10, "Free Space Summary", "", 0, "L", false, 0, "")

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.5)
	pdf.Line(marginLeft, marginTop+12, pageWidth-marginRight, marginTop+12)

	y := marginTop + 18
	writeLine := func(font, style string, size float64, text string) {
		pdf.SetFont(font, style, size)
		pdf.SetXY(marginLeft, y)
		pdf.CellFormat(pageWidth-marginLeft-marginRight, 6, text, "", 0, "L", false, 0, "")
		y += 7
	}

	sheet := result.Layout.Sheet
	writeLine("Helvetica", "", 11, fmt.Sprintf("Sheet: %s (%.0f x %.0f mm, %.0f sq mm)",
		sheet.Label, sheet.Width, sheet.Height, sheet.Area()))
	writeLine("Helvetica", "", 11, fmt.Sprintf("Blocked regions: %d covering %.0f sq mm (%.1f%%)",
		len(result.Layout.Regions), result.BlockedArea, result.Utilization))
	writeLine("Helvetica", "", 11, fmt.Sprintf("Free area: %.0f sq mm", result.FreeArea))
	writeLine("Helvetica", "", 11, fmt.Sprintf("Maximal free rectangles: %d, usable: %d",
		len(result.Free), len(result.Usable)))

	if largest, ok := result.LargestFree(); ok {
		writeLine("Helvetica", "B", 11, fmt.Sprintf("Largest free rectangle: %.0f x %.0f mm at (%.0f, %.0f)",
			largest.Width, largest.Height, largest.X, largest.Y))
	}

	if len(result.Usable) > 0 {
		y += 4
		writeLine("Helvetica", "B", 12, "Usable regions (reusable as stock):")
		pdf.SetFont("Helvetica", "", 10)
		for _, free := range result.Usable {
			line := fmt.Sprintf("  %s: %.0f x %.0f mm at (%.0f, %.0f)", free.ID, free.Width, free.Height, free.X, free.Y)
			if free.PricePerSheet > 0 {
				line += fmt.Sprintf(", value %.2f", free.PricePerSheet)
			}
			writeLine("Helvetica", "", 10, line)
			if y > pageHeight-marginBottom {
				pdf.AddPage()
				y = marginTop
			}
		}
	}
}
