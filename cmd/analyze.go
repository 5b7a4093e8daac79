package cmd

import (
	"fmt"

	"github.com/mtang/cursor-insight/internal"
	"github.com/spf13/cobra"
)

var analyzeRecentLimit int

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run the full storage analysis",
	Long: `Run the full read-only analysis of Cursor's storage:

  1. Load the global state database
  2. Discover workspaces from workspaceStorage
  3. Analyze every workspace state database
  4. Analyze AI code tracking records
  5. Generate the project name mapping and suggested projects.json
  6. List recently opened projects

Missing stores are reported and the run continues with empty results for
the affected step.

Examples:
  cursor-insight analyze
  cursor-insight analyze --data-dir ~/.config/Cursor/User
  cursor-insight analyze --recent 5`,
	RunE: func(cmd *cobra.Command, args []string) error {
		paths, err := resolvePaths()
		if err != nil {
			return fmt.Errorf("failed to resolve storage paths: %w", err)
		}

		analyzer := internal.NewAnalyzer(paths, cmd.OutOrStdout())
		if analyzeRecentLimit > 0 {
			analyzer.RecentLimit = analyzeRecentLimit
		}
		return analyzer.Run()
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	analyzeCmd.Flags().IntVar(&analyzeRecentLimit, "recent", internal.DefaultRecentLimit, "Number of recently opened projects to list")
}
