package cmd

import (
	"fmt"

	"github.com/mtang/cursor-insight/internal"
	"github.com/spf13/cobra"
)

var healthcheckVerbose bool

// healthcheckCmd represents the healthcheck command
var healthcheckCmd = &cobra.Command{
	Use:   "healthcheck",
	Short: "Check that the analyzer can locate and open Cursor storage",
	Long: `Check storage health by verifying:
  • Storage path resolution
  • Global store presence and readability
  • Workspace storage presence and workspace count

Useful for debugging path issues before running a full analysis.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, internal.Section("Storage health check"))
		fmt.Fprintln(out)

		paths, err := resolvePaths()
		if err != nil {
			return fmt.Errorf("failed to resolve storage paths: %w", err)
		}
		fmt.Fprintln(out, internal.Success("storage paths resolved"))
		if healthcheckVerbose {
			fmt.Fprintf(out, "   base path: %s\n", paths.BasePath)
			fmt.Fprintf(out, "   global storage: %s\n", paths.GlobalStorage)
			fmt.Fprintf(out, "   workspace storage: %s\n", paths.WorkspaceStorage)
		}
		fmt.Fprintln(out)

		if paths.GlobalStoreExists() {
			global, err := internal.LoadGlobalStore(paths.GlobalStoreDBPath())
			if err != nil {
				fmt.Fprintln(out, internal.Warn("global store found but unreadable: "+err.Error()))
			} else {
				fmt.Fprintln(out, internal.Success(fmt.Sprintf("global store readable (%d records)", len(global))))
			}
		} else {
			fmt.Fprintln(out, internal.Warn("global store not found: "+paths.GlobalStoreDBPath()))
		}

		if paths.WorkspaceStorageExists() {
			workspaces, err := internal.DiscoverWorkspaces(paths.WorkspaceStorage)
			if err != nil {
				fmt.Fprintln(out, internal.Warn("workspace storage found but unreadable: "+err.Error()))
			} else {
				withDB := 0
				for _, ws := range workspaces {
					if ws.DBExists {
						withDB++
					}
				}
				fmt.Fprintln(out, internal.Success(fmt.Sprintf("workspace storage readable (%d workspaces, %d with databases)", len(workspaces), withDB)))
			}
		} else {
			fmt.Fprintln(out, internal.Warn("workspace storage not found: "+paths.WorkspaceStorage))
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(healthcheckCmd)
	healthcheckCmd.Flags().BoolVar(&healthcheckVerbose, "detail", false, "Show resolved paths")
}
