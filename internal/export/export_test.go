package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/sheetlab/freerect/internal/model"
)

// buildTestResult creates a realistic analysis result: a 2440x1220 sheet
// with two placed parts and the free space around them.
func buildTestResult() model.AnalysisResult {
	sheet := model.Sheet{ID: "s1", Label: "Plywood 2440x1220", Width: 2440, Height: 1220}
	layout := model.Layout{
		Name:  "workbench",
		Sheet: sheet,
		Regions: []model.Region{
			{ID: "r1", Label: "Side Panel", X: 0, Y: 0, Width: 600, Height: 400},
			{ID: "r2", Label: "Top", X: 600, Y: 0, Width: 500, Height: 300},
		},
	}
	free := []model.FreeRegion{
		{ID: "f1", SheetLabel: sheet.Label, X: 1100, Y: 0, Width: 1340, Height: 1220},
		{ID: "f2", SheetLabel: sheet.Label, X: 0, Y: 400, Width: 2440, Height: 820},
		{ID: "f3", SheetLabel: sheet.Label, X: 600, Y: 300, Width: 1840, Height: 920},
	}
	return model.AnalysisResult{
		Layout:      layout,
		Free:        free,
		Usable:      free,
		BlockedArea: 600*400 + 500*300,
		FreeArea:    sheet.Area() - (600*400 + 500*300),
		Utilization: (600*400 + 500*300) / sheet.Area() * 100,
	}
}

func TestExportPDFCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "analysis.pdf")

	if err := ExportPDF(path, buildTestResult()); err != nil {
		t.Fatalf("ExportPDF failed: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("output file missing: %v", err)
	}
	if info.Size() == 0 {
		t.Error("output file is empty")
	}
}

func TestExportPDFRejectsZeroAreaSheet(t *testing.T) {
	result := model.AnalysisResult{Layout: model.Layout{Sheet: model.Sheet{Label: "bad"}}}
	if err := ExportPDF(filepath.Join(t.TempDir(), "bad.pdf"), result); err == nil {
		t.Error("expected an error for a zero-area sheet")
	}
}

func TestExportLabelsCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "labels.pdf")

	if err := ExportLabels(path, buildTestResult()); err != nil {
		t.Fatalf("ExportLabels failed: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("output file missing: %v", err)
	}
	if info.Size() == 0 {
		t.Error("output file is empty")
	}
}

func TestExportLabelsNoUsableRegions(t *testing.T) {
	result := buildTestResult()
	result.Usable = nil

	if err := ExportLabels(filepath.Join(t.TempDir(), "labels.pdf"), result); err == nil {
		t.Error("expected an error when there is nothing to label")
	}
}

func TestExportXLSXWritesRegionsAndStats(t *testing.T) {
	path := filepath.Join(t.TempDir(), "analysis.xlsx")
	result := buildTestResult()

	if err := ExportXLSX(path, result); err != nil {
		t.Fatalf("ExportXLSX failed: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("cannot reopen exported file: %v", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	id, err := f.GetCellValue(sheet, "A2")
	if err != nil {
		t.Fatal(err)
	}
	if id != "f1" {
		t.Errorf("first region row has id %q, want f1", id)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		t.Fatal(err)
	}
	// Header + 3 regions + blank + 6 stats lines
	if len(rows) < 10 {
		t.Errorf("expected at least 10 rows, got %d", len(rows))
	}
}
