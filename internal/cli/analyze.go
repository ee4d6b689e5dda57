package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sheetlab/freerect/internal/config"
	"github.com/sheetlab/freerect/internal/engine"
	"github.com/sheetlab/freerect/internal/project"
)

var (
	analyzeMinDim  float64
	analyzeMinArea float64
	analyzeJSON    bool
)

// analyzeCmd runs the free-space analysis on a saved layout.
var analyzeCmd = &cobra.Command{
	Use:   "analyze <layout.json>",
	Short: "Report the maximal free rectangles of a layout",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runAnalyze(args[0]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	analyzeCmd.Flags().Float64Var(&analyzeMinDim, "min-dim", 0, "Minimum usable width/height in mm (default from config)")
	analyzeCmd.Flags().Float64Var(&analyzeMinArea, "min-area", 0, "Minimum usable area in sq mm (default from config)")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Print the full analysis as JSON")
	rootCmd.AddCommand(analyzeCmd)
}

// analyzerSettings merges the config file thresholds with flag overrides.
func analyzerSettings() (engine.Settings, error) {
	cfg, err := config.Load(config.DefaultFileName)
	if err != nil {
		return engine.Settings{}, err
	}
	settings := engine.Settings{
		MinDimension: cfg.Thresholds.MinDimension,
		MinArea:      cfg.Thresholds.MinArea,
	}
	if analyzeMinDim > 0 {
		settings.MinDimension = analyzeMinDim
	}
	if analyzeMinArea > 0 {
		settings.MinArea = analyzeMinArea
	}
	return settings, nil
}

func runAnalyze(path string) error {
	layout, err := project.LoadLayout(path)
	if err != nil {
		return err
	}

	settings, err := analyzerSettings()
	if err != nil {
		return err
	}

	result := engine.New(settings).Analyze(layout)

	if analyzeJSON {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal analysis: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Println(result.Summary())
	if len(result.Free) == 0 {
		return nil
	}

	fmt.Println()
	fmt.Printf("%-10s %10s %10s %10s %10s %14s  %s\n", "ID", "X", "Y", "Width", "Height", "Area", "Usable")
	usable := make(map[string]bool, len(result.Usable))
	for _, f := range result.Usable {
		usable[f.ID] = true
	}
	for _, f := range result.Free {
		mark := ""
		if usable[f.ID] {
			mark = "yes"
		}
		fmt.Printf("%-10s %10.0f %10.0f %10.0f %10.0f %14.0f  %s\n",
			f.ID, f.X, f.Y, f.Width, f.Height, f.Area(), mark)
	}
	return nil
}
