package cmd

import (
	"fmt"

	"github.com/mtang/cursor-insight/internal"
	"github.com/spf13/cobra"
)

// trackingCmd represents the tracking command
var trackingCmd = &cobra.Command{
	Use:   "tracking",
	Short: "Analyze AI code tracking records from global storage",
	Long: `Scan the global state database for daily AI code tracking records
and print suggested/accepted line counts with acceptance rates.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		paths, err := resolvePaths()
		if err != nil {
			return fmt.Errorf("failed to resolve storage paths: %w", err)
		}

		analyzer := internal.NewAnalyzer(paths, cmd.OutOrStdout())
		if err := analyzer.LoadGlobalStore(); err != nil {
			return err
		}
		analyzer.AnalyzeGlobalTracking()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(trackingCmd)
}
