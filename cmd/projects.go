package cmd

import (
	"fmt"

	"github.com/mtang/cursor-insight/internal"
	"github.com/spf13/cobra"
)

// projectsCmd represents the projects command
var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "Generate the project name mapping",
	Long: `Group discovered workspaces by project name, flag name collisions,
and print a suggested projects.json configuration.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		paths, err := resolvePaths()
		if err != nil {
			return fmt.Errorf("failed to resolve storage paths: %w", err)
		}

		analyzer := internal.NewAnalyzer(paths, cmd.OutOrStdout())
		if err := analyzer.DiscoverWorkspaces(); err != nil {
			return err
		}
		return analyzer.GenerateProjectMapping()
	},
}

func init() {
	rootCmd.AddCommand(projectsCmd)
}
