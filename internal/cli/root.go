// Package cli implements the freerect command tree.
package cli

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "freerect",
	Short: "Find the maximal free rectangles left on a partially used sheet",
	Long: `freerect analyzes a sheet layout (a stock sheet plus the rectangular
regions already occupied on it) and reports every maximal unobstructed
rectangle that remains, so leftover material can be measured, labeled,
and reused.`,
}

// Execute adds all child commands to the root command and runs it.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
