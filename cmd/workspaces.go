package cmd

import (
	"fmt"

	"github.com/mtang/cursor-insight/internal"
	"github.com/spf13/cobra"
)

// workspacesCmd represents the workspaces command
var workspacesCmd = &cobra.Command{
	Use:   "workspaces",
	Short: "Discover workspaces and analyze their state databases",
	Long: `Discover workspaces from workspaceStorage and print per-workspace
store statistics (record counts and byte sizes of the AI service and
composer records).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		paths, err := resolvePaths()
		if err != nil {
			return fmt.Errorf("failed to resolve storage paths: %w", err)
		}

		analyzer := internal.NewAnalyzer(paths, cmd.OutOrStdout())
		if err := analyzer.DiscoverWorkspaces(); err != nil {
			return err
		}
		return analyzer.AnalyzeAllWorkspaces()
	},
}

func init() {
	rootCmd.AddCommand(workspacesCmd)
}
