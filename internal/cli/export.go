package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sheetlab/freerect/internal/engine"
	"github.com/sheetlab/freerect/internal/export"
	"github.com/sheetlab/freerect/internal/project"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export <pdf|xlsx|labels> <layout.json>",
	Short: "Export an analysis as a PDF report, spreadsheet or label sheet",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runExport(args[0], args[1]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file path (default derived from the layout name)")
	rootCmd.AddCommand(exportCmd)
}

func runExport(format, path string) error {
	format = strings.ToLower(format)
	layout, err := project.LoadLayout(path)
	if err != nil {
		return err
	}

	settings, err := analyzerSettings()
	if err != nil {
		return err
	}
	result := engine.New(settings).Analyze(layout)

	out := exportOutput
	if out == "" {
		out = defaultExportPath(path, format)
	}

	switch format {
	case "pdf":
		err = export.ExportPDF(out, result)
	case "xlsx":
		err = export.ExportXLSX(out, result)
	case "labels":
		err = export.ExportLabels(out, result)
	default:
		return fmt.Errorf("unknown export format %q (expected pdf, xlsx or labels)", format)
	}
	if err != nil {
		return err
	}

	fmt.Printf("Exported %s to %s\n", format, out)
	return nil
}

func defaultExportPath(layoutPath, format string) string {
	base := strings.TrimSuffix(layoutPath, ".json")
	ext := format
	if format == "labels" {
		base += "-labels"
		ext = "pdf"
	}
	return base + "." + ext
}
