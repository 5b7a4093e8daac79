package cmd

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/mtang/cursor-insight/internal"
	"github.com/spf13/cobra"
)

var (
	verbose    bool
	dataDir    string
	configPath string
	version    string = "dev"
	commit     string = "unknown"
	date       string = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "cursor-insight",
	Short: "Analyze Cursor IDE storage and scaffold project modules",
	Long: `Tools for working with Cursor IDE's local state databases.

The analyzer opens Cursor's global storage and per-workspace storage
databases read-only, aggregates usage and size statistics, and prints a
report with a suggested project configuration. The scaffolder writes a
fresh module directory tree from interactive answers.

Quick Start:
  cursor-insight analyze                 # Full storage analysis
  cursor-insight workspaces              # Discovered workspaces only
  cursor-insight scaffold                # Interactive module scaffolding

Storage paths are auto-detected per OS and can be overridden with
--data-dir or a config file (~/.config/cursor-insight/config.yaml).`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		internal.SetVerbose(verbose)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	go func() {
		<-interrupt
		fmt.Fprintln(os.Stderr, "\ninterrupted")
		os.Exit(130)
	}()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// resolvePaths applies the --data-dir and --config overrides.
func resolvePaths() (internal.StoragePaths, error) {
	return internal.ResolveStoragePaths(dataDir, configPath)
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "Cursor User directory to analyze (overrides auto-detection)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file path (default ~/.config/cursor-insight/config.yaml)")

	// Set version template to ensure --version flag works
	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)
}
