package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/sheetlab/freerect/internal/model"
)

// ExportXLSX writes the analysis to a spreadsheet: one row per maximal free
// region plus a statistics block, so results can be filtered and sorted in a
// spreadsheet application.
func ExportXLSX(path string, result model.AnalysisResult) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)

	headers := []string{"ID", "Sheet", "X (mm)", "Y (mm)", "Width (mm)", "Height (mm)", "Area (sq mm)", "Usable", "Value"}
	for i, h := range headers {
		ref, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return fmt.Errorf("failed to build cell reference: %w", err)
		}
		if err := f.SetCellValue(sheet, ref, h); err != nil {
			return fmt.Errorf("failed to write header: %w", err)
		}
	}

	usable := make(map[string]bool, len(result.Usable))
	for _, free := range result.Usable {
		usable[free.ID] = true
	}

	for i, free := range result.Free {
		row := i + 2
		cells := []any{
			free.ID,
			free.SheetLabel,
			free.X,
			free.Y,
			free.Width,
			free.Height,
			free.Area(),
			usable[free.ID],
			free.PricePerSheet,
		}
		for j, v := range cells {
			ref, err := excelize.CoordinatesToCellName(j+1, row)
			if err != nil {
				return fmt.Errorf("failed to build cell reference: %w", err)
			}
			if err := f.SetCellValue(sheet, ref, v); err != nil {
				return fmt.Errorf("failed to write region row: %w", err)
			}
		}
	}

	// Statistics block below the table
	statsRow := len(result.Free) + 3
	stats := [][2]any{
		{"Sheet", fmt.Sprintf("%s (%.0f x %.0f mm)", result.Layout.Sheet.Label, result.Layout.Sheet.Width, result.Layout.Sheet.Height)},
		{"Blocked area (sq mm)", result.BlockedArea},
		{"Free area (sq mm)", result.FreeArea},
		{"Utilization (%)", result.Utilization},
		{"Free rectangles", len(result.Free)},
		{"Usable rectangles", len(result.Usable)},
	}
	for i, kv := range stats {
		keyRef, err := excelize.CoordinatesToCellName(1, statsRow+i)
		if err != nil {
			return fmt.Errorf("failed to build cell reference: %w", err)
		}
		valRef, err := excelize.CoordinatesToCellName(2, statsRow+i)
		if err != nil {
			return fmt.Errorf("failed to build cell reference: %w", err)
		}
		if err := f.SetCellValue(sheet, keyRef, kv[0]); err != nil {
			return fmt.Errorf("failed to write stats: %w", err)
		}
		if err := f.SetCellValue(sheet, valRef, kv[1]); err != nil {
			return fmt.Errorf("failed to write stats: %w", err)
		}
	}

	if err := f.SetColWidth(sheet, "A", "B", 16); err != nil {
		return fmt.Errorf("failed to set column width: %w", err)
	}

	return f.SaveAs(path)
}
