package cmd

import (
	"fmt"

	"github.com/mtang/cursor-insight/internal"
	"github.com/spf13/cobra"
)

var recentLimit int

// recentCmd represents the recent command
var recentCmd = &cobra.Command{
	Use:   "recent",
	Short: "List recently opened projects",
	Long: `Parse the recently opened paths record from global storage and list
the most recent projects, cross-referenced against discovered workspaces.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		paths, err := resolvePaths()
		if err != nil {
			return fmt.Errorf("failed to resolve storage paths: %w", err)
		}

		analyzer := internal.NewAnalyzer(paths, cmd.OutOrStdout())
		if recentLimit > 0 {
			analyzer.RecentLimit = recentLimit
		}
		if err := analyzer.LoadGlobalStore(); err != nil {
			return err
		}
		if err := analyzer.DiscoverWorkspaces(); err != nil {
			return err
		}
		analyzer.PrintRecentProjects()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(recentCmd)
	recentCmd.Flags().IntVarP(&recentLimit, "limit", "n", internal.DefaultRecentLimit, "Maximum number of entries to list")
}
