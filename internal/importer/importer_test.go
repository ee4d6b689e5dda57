package importer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestDetectCSVDelimiter_Comma(t *testing.T) {
	data := []byte("Label,X,Y,Width,Height\nClamp,0,0,100,50\nPart,200,0,400,300\n")
	if got := DetectCSVDelimiter(data); got != ',' {
		t.Errorf("expected comma delimiter, got %q", got)
	}
}

func TestDetectCSVDelimiter_Semicolon(t *testing.T) {
	data := []byte("Label;X;Y;Width;Height\nClamp;0;0;100;50\nPart;200;0;400;300\n")
	if got := DetectCSVDelimiter(data); got != ';' {
		t.Errorf("expected semicolon delimiter, got %q", got)
	}
}

func TestDetectCSVDelimiter_Tab(t *testing.T) {
	data := []byte("Label\tX\tY\tWidth\tHeight\nClamp\t0\t0\t100\t50\n")
	if got := DetectCSVDelimiter(data); got != '\t' {
		t.Errorf("expected tab delimiter, got %q", got)
	}
}

func TestDetectColumns_StandardHeaders(t *testing.T) {
	mapping, isHeader := DetectColumns([]string{"Label", "X", "Y", "Width", "Height"})
	if !isHeader {
		t.Fatal("expected header to be detected")
	}
	if mapping.Label != 0 || mapping.X != 1 || mapping.Y != 2 || mapping.Width != 3 || mapping.Height != 4 {
		t.Errorf("unexpected mapping %+v", mapping)
	}
}

func TestDetectColumns_AliasesAndOrder(t *testing.T) {
	mapping, isHeader := DetectColumns([]string{"name", "w", "h", "left", "top"})
	if !isHeader {
		t.Fatal("expected header to be detected")
	}
	if mapping.Width != 1 || mapping.Height != 2 || mapping.X != 3 || mapping.Y != 4 {
		t.Errorf("aliases mapped wrong: %+v", mapping)
	}
}

func TestDetectColumns_NoHeaderFallsBackPositional(t *testing.T) {
	mapping, isHeader := DetectColumns([]string{"Clamp", "0", "0", "100", "50"})
	if isHeader {
		t.Error("numeric row must not be treated as a header")
	}
	if mapping.Label != 0 || mapping.X != 1 || mapping.Y != 2 || mapping.Width != 3 || mapping.Height != 4 {
		t.Errorf("unexpected positional mapping %+v", mapping)
	}
}

func TestImportCSVFromReader_HeaderedData(t *testing.T) {
	data := "Label,X,Y,Width,Height\nClamp,0,0,100,50\nPart A,200,100,400,300\n"
	result := ImportCSVFromReader(strings.NewReader(data), ',')

	if len(result.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if len(result.Regions) != 2 {
		t.Fatalf("expected 2 regions, got %d", len(result.Regions))
	}
	r := result.Regions[1]
	if r.Label != "Part A" || r.X != 200 || r.Y != 100 || r.Width != 400 || r.Height != 300 {
		t.Errorf("unexpected region %+v", r)
	}
}

func TestImportCSVFromReader_BadRowsCollected(t *testing.T) {
	data := "Label,X,Y,Width,Height\nOk,0,0,10,10\nBadWidth,0,0,zero,10\nNegative,0,0,-5,10\n"
	result := ImportCSVFromReader(strings.NewReader(data), ',')

	if len(result.Regions) != 1 {
		t.Errorf("expected 1 good region, got %d", len(result.Regions))
	}
	if len(result.Errors) != 2 {
		t.Errorf("expected 2 row errors, got %v", result.Errors)
	}
}

func TestImportCSVFromReader_MissingRequiredColumn(t *testing.T) {
	data := "Label,X,Width,Height\nClamp,0,100,50\n"
	result := ImportCSVFromReader(strings.NewReader(data), ',')

	if len(result.Errors) == 0 {
		t.Fatal("expected an error about the missing Y column")
	}
	if !strings.Contains(result.Errors[0], "Y") {
		t.Errorf("error should name the missing column: %q", result.Errors[0])
	}
}

func TestImportCSV_SemicolonFileWithWarning(t *testing.T) {
	path := filepath.Join(t.TempDir(), "regions.csv")
	data := "Label;X;Y;Width;Height\nClamp;10;20;100;50\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	result := ImportCSV(path)

	if len(result.Regions) != 1 {
		t.Fatalf("expected 1 region, got %d (errors: %v)", len(result.Regions), result.Errors)
	}
	found := false
	for _, w := range result.Warnings {
		if strings.Contains(w, "semicolon") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a delimiter warning, got %v", result.Warnings)
	}
}

func TestImportCSV_MissingFile(t *testing.T) {
	result := ImportCSV(filepath.Join(t.TempDir(), "nope.csv"))
	if len(result.Errors) == 0 {
		t.Error("expected an error for a missing file")
	}
}

func TestImportExcel_FirstSheet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "regions.xlsx")
	writeXLSX(t, path, [][]any{
		{"Label", "X", "Y", "Width", "Height"},
		{"Clamp", 0, 0, 120, 80},
		{"Part", 300, 200, 500, 400},
	})

	result := ImportExcel(path)

	if len(result.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if len(result.Regions) != 2 {
		t.Fatalf("expected 2 regions, got %d", len(result.Regions))
	}
	if result.Regions[0].Width != 120 || result.Regions[1].Height != 400 {
		t.Errorf("unexpected regions %+v", result.Regions)
	}
}

func writeXLSX(t *testing.T, path string, rows [][]any) {
	t.Helper()
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		for j, cell := range row {
			ref, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				t.Fatalf("failed to create cell reference: %v", err)
			}
			if err := f.SetCellValue(sheet, ref, cell); err != nil {
				t.Fatalf("failed to set cell value: %v", err)
			}
		}
	}
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("failed to save Excel file: %v", err)
	}
}
