// Package importer reads blocked-region lists from CSV, Excel, and DXF
// files. CSV import auto-detects the delimiter and maps columns by
// case-insensitive header names.
package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/sheetlab/freerect/internal/model"
)

// ImportResult holds the results of an import operation.
type ImportResult struct {
	Regions  []model.Region
	Errors   []string
	Warnings []string
}

// ColumnMapping maps semantic column roles to their indices in the data.
type ColumnMapping struct {
	Label  int
	X      int
	Y      int
	Width  int
	Height int
}

// headerAliases maps canonical column names to their accepted aliases (all lowercase).
var headerAliases = map[string][]string{
	"label":  {"label", "name", "region", "part", "description", "desc", "item"},
	"x":      {"x", "left", "x0", "xpos", "pos x"},
	"y":      {"y", "top", "y0", "ypos", "pos y"},
	"width":  {"width", "w", "dx"},
	"height": {"height", "h", "dy"},
}

// DetectCSVDelimiter reads the file content and determines the most likely
// CSV delimiter. It tries comma, semicolon, tab, and pipe; the delimiter
// that produces the most consistent multi-column rows wins.
func DetectCSVDelimiter(data []byte) rune {
	candidates := []rune{',', ';', '\t', '|'}
	bestDelimiter := ','
	bestScore := 0

	for _, delim := range candidates {
		reader := csv.NewReader(bytes.NewReader(data))
		reader.Comma = delim
		reader.LazyQuotes = true
		reader.FieldsPerRecord = -1

		records, err := reader.ReadAll()
		if err != nil || len(records) < 1 {
			continue
		}

		firstCols := len(records[0])
		if firstCols < 2 {
			continue
		}

		score := 0
		for _, row := range records {
			if len(row) == firstCols {
				score++
			}
		}

		weighted := score*10 + firstCols
		if weighted > bestScore {
			bestScore = weighted
			bestDelimiter = delim
		}
	}

	return bestDelimiter
}

// DetectColumns examines a header row and returns a ColumnMapping, matching
// case-insensitively against known header aliases. Returns the mapping and
// true if a header was detected, or the default positional mapping
// (label, x, y, width, height) and false if not.
func DetectColumns(row []string) (ColumnMapping, bool) {
	mapping := ColumnMapping{Label: -1, X: -1, Y: -1, Width: -1, Height: -1}

	assign := func(role string, idx int) {
		switch role {
		case "label":
			if mapping.Label == -1 {
				mapping.Label = idx
			}
		case "x":
			if mapping.X == -1 {
				mapping.X = idx
			}
		case "y":
			if mapping.Y == -1 {
				mapping.Y = idx
			}
		case "width":
			if mapping.Width == -1 {
				mapping.Width = idx
			}
		case "height":
			if mapping.Height == -1 {
				mapping.Height = idx
			}
		}
	}

	isHeader := false
	for i, cell := range row {
		normalized := strings.ToLower(strings.TrimSpace(cell))
		for role, aliases := range headerAliases {
			for _, alias := range aliases {
				if normalized == alias {
					isHeader = true
					assign(role, i)
				}
			}
		}
	}

	if !isHeader {
		return ColumnMapping{Label: 0, X: 1, Y: 2, Width: 3, Height: 4}, false
	}
	return mapping, true
}

// getCell safely retrieves a trimmed cell value by column index.
func getCell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// parseRow extracts a Region from a row using the given column mapping.
// Returns the region and any error message.
func parseRow(row []string, mapping ColumnMapping, rowLabel string, regionCount int) (model.Region, string) {
	label := getCell(row, mapping.Label)
	if label == "" {
		label = fmt.Sprintf("Region %d", regionCount+1)
	}

	parse := func(name string, idx int) (float64, string) {
		s := getCell(row, idx)
		if s == "" {
			return 0, fmt.Sprintf("%s: Missing %s value", rowLabel, name)
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, fmt.Sprintf("%s: Invalid %s '%s'", rowLabel, name, s)
		}
		return v, ""
	}

	x, errMsg := parse("x", mapping.X)
	if errMsg != "" {
		return model.Region{}, errMsg
	}
	y, errMsg := parse("y", mapping.Y)
	if errMsg != "" {
		return model.Region{}, errMsg
	}
	width, errMsg := parse("width", mapping.Width)
	if errMsg != "" {
		return model.Region{}, errMsg
	}
	height, errMsg := parse("height", mapping.Height)
	if errMsg != "" {
		return model.Region{}, errMsg
	}

	if width <= 0 || height <= 0 {
		return model.Region{}, fmt.Sprintf("%s: Width and height must be positive", rowLabel)
	}

	return model.NewRegion(label, x, y, width, height), ""
}

// isEmptyRow returns true if the row has no meaningful content.
func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// ImportCSV imports regions from a CSV file, auto-detecting the delimiter
// and mapping columns by header names.
func ImportCSV(path string) ImportResult {
	result := ImportResult{}

	data, err := os.ReadFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open file: %v", err))
		return result
	}
	if len(bytes.TrimSpace(data)) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	delimiter := DetectCSVDelimiter(data)
	if delimiter != ',' {
		delimName := map[rune]string{';': "semicolon", '\t': "tab", '|': "pipe"}[delimiter]
		result.Warnings = append(result.Warnings, fmt.Sprintf("Detected %s delimiter", delimName))
	}

	return importCSVData(bytes.NewReader(data), delimiter, result.Warnings)
}

// ImportCSVFromReader imports regions from a CSV reader with a known delimiter.
func ImportCSVFromReader(reader io.Reader, delimiter rune) ImportResult {
	return importCSVData(reader, delimiter, nil)
}

func importCSVData(reader io.Reader, delimiter rune, warnings []string) ImportResult {
	result := ImportResult{Warnings: warnings}

	csvReader := csv.NewReader(reader)
	csvReader.Comma = delimiter
	csvReader.LazyQuotes = true
	csvReader.FieldsPerRecord = -1

	records, err := csvReader.ReadAll()
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read CSV: %v", err))
		return result
	}
	if len(records) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	return importFromRows(records, "Line", result.Warnings)
}

// ImportExcel imports regions from an Excel (.xlsx) file, reading the first
// sheet and auto-detecting the column mapping from headers.
func ImportExcel(path string) ImportResult {
	result := ImportResult{}

	f, err := excelize.OpenFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open Excel file: %v", err))
		return result
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		result.Errors = append(result.Errors, "Excel file has no sheets")
		return result
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read Excel data: %v", err))
		return result
	}
	if len(rows) == 0 {
		result.Errors = append(result.Errors, "Sheet is empty")
		return result
	}

	return importFromRows(rows, "Row", nil)
}

// importFromRows is the shared import logic for CSV and Excel data.
func importFromRows(rows [][]string, rowPrefix string, initialWarnings []string) ImportResult {
	result := ImportResult{Warnings: initialWarnings}

	if len(rows) == 0 {
		result.Errors = append(result.Errors, "No data rows found")
		return result
	}

	mapping, hasHeader := DetectColumns(rows[0])
	startRow := 0
	if hasHeader {
		startRow = 1
		result.Warnings = append(result.Warnings, "Detected header row, skipping")

		var missing []string
		if mapping.X == -1 {
			missing = append(missing, "X")
		}
		if mapping.Y == -1 {
			missing = append(missing, "Y")
		}
		if mapping.Width == -1 {
			missing = append(missing, "Width")
		}
		if mapping.Height == -1 {
			missing = append(missing, "Height")
		}
		if len(missing) > 0 {
			result.Errors = append(result.Errors,
				fmt.Sprintf("Required columns not found in header: %s", strings.Join(missing, ", ")))
			return result
		}
	} else if len(rows[0]) >= 4 {
		// No recognized header: if the second column is not numeric this is
		// probably an unrecognized header row, so skip it but keep the
		// positional mapping.
		if _, err := strconv.ParseFloat(strings.TrimSpace(rows[0][1]), 64); err != nil {
			startRow = 1
			result.Warnings = append(result.Warnings, "Detected header row, skipping")
		}
	}

	for i := startRow; i < len(rows); i++ {
		row := rows[i]
		if isEmptyRow(row) {
			continue
		}

		rowLabel := fmt.Sprintf("%s %d", rowPrefix, i+1)
		region, errMsg := parseRow(row, mapping, rowLabel, len(result.Regions))
		if errMsg != "" {
			result.Errors = append(result.Errors, errMsg)
			continue
		}
		result.Regions = append(result.Regions, region)
	}

	return result
}
