package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sheetlab/freerect/internal/importer"
	"github.com/sheetlab/freerect/internal/model"
	"github.com/sheetlab/freerect/internal/project"
)

var (
	importSheet  string
	importLabel  string
	importOutput string
)

var importCmd = &cobra.Command{
	Use:   "import <csv|xlsx|dxf> <file>",
	Short: "Import occupied regions from a CSV, Excel or DXF file",
	Long: `Import reads occupied regions from an external file and saves them
as a layout. CSV and Excel files need label/x/y/width/height columns
(common header aliases are recognized); DXF files contribute the
bounding box of each closed shape.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runImport(args[0], args[1]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	importCmd.Flags().StringVar(&importSheet, "sheet", "2440x1220", "Sheet size as WIDTHxHEIGHT in mm")
	importCmd.Flags().StringVar(&importLabel, "label", "Sheet", "Sheet label")
	importCmd.Flags().StringVarP(&importOutput, "output", "o", "", "Layout file to write (default derived from the input name)")
	rootCmd.AddCommand(importCmd)
}

func runImport(format, path string) error {
	width, height, err := parseSheetSize(importSheet)
	if err != nil {
		return err
	}

	var result importer.ImportResult
	switch strings.ToLower(format) {
	case "csv":
		result = importer.ImportCSV(path)
	case "xlsx":
		result = importer.ImportExcel(path)
	case "dxf":
		result = importer.ImportDXF(path)
	default:
		return fmt.Errorf("unknown import format %q (expected csv, xlsx or dxf)", format)
	}

	for _, warn := range result.Warnings {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", warn)
	}
	for _, e := range result.Errors {
		fmt.Fprintf(os.Stderr, "Error: %s\n", e)
	}
	if len(result.Regions) == 0 {
		return fmt.Errorf("no regions imported from %s", path)
	}

	layout := model.NewLayout(layoutName(path), model.NewSheet(importLabel, width, height))
	layout.Regions = result.Regions

	out := importOutput
	if out == "" {
		out = strings.TrimSuffix(path, filepath.Ext(path)) + ".json"
	}
	if err := project.SaveLayout(out, layout); err != nil {
		return err
	}

	fmt.Printf("Imported %d regions to %s\n", len(result.Regions), out)
	return nil
}

// parseSheetSize parses a "WIDTHxHEIGHT" string in mm.
func parseSheetSize(s string) (float64, float64, error) {
	parts := strings.SplitN(strings.ToLower(s), "x", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid sheet size %q (expected WIDTHxHEIGHT)", s)
	}
	w, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil || w <= 0 {
		return 0, 0, fmt.Errorf("invalid sheet width in %q", s)
	}
	h, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil || h <= 0 {
		return 0, 0, fmt.Errorf("invalid sheet height in %q", s)
	}
	return w, h, nil
}

func layoutName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
