package cmd

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/mtang/cursor-insight/internal/scaffold"
	"github.com/spf13/cobra"
)

var (
	scaffoldOutputDir   string
	scaffoldAnswersFile string
	scaffoldDefaults    bool
)

// scaffoldCmd represents the scaffold command
var scaffoldCmd = &cobra.Command{
	Use:   "scaffold [name]",
	Short: "Scaffold a new module directory",
	Long: `Scaffold a new module: a fixed directory tree (src/, docs/, optional
specs/) plus templated manifests (module.yaml, package.json, README.md).

Answers are collected interactively unless --answers or --defaults is
given. The target directory must not already exist.

Examples:
  cursor-insight scaffold                       # Interactive prompts
  cursor-insight scaffold my-module --defaults  # Default answers
  cursor-insight scaffold --answers answers.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var answers scaffold.Answers
		if len(args) > 0 {
			answers.Name = args[0]
		}

		switch {
		case scaffoldAnswersFile != "":
			loaded, err := scaffold.LoadAnswers(scaffoldAnswersFile)
			if err != nil {
				return err
			}
			if answers.Name != "" {
				loaded.Name = answers.Name
			}
			answers = loaded
		case scaffoldDefaults:
			if answers.Name == "" {
				return fmt.Errorf("a module name argument is required with --defaults")
			}
			answers.Description = "A new module"
		default:
			if err := promptAnswers(&answers); err != nil {
				return fmt.Errorf("prompt aborted: %w", err)
			}
		}

		target, err := scaffold.Generate(scaffoldOutputDir, answers)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "scaffolded module at %s\n", target)
		return nil
	},
}

func promptAnswers(answers *scaffold.Answers) error {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Module name").
				Placeholder("my-module").
				Value(&answers.Name).
				Validate(func(s string) error { return scaffold.Answers{Name: s}.Validate() }),
			huh.NewInput().
				Title("Description").
				Placeholder("What does this module do?").
				Value(&answers.Description),
			huh.NewInput().
				Title("Author").
				Value(&answers.Author),
			huh.NewConfirm().
				Title("Include specification templates?").
				Value(&answers.WithSpecs),
		),
	).WithShowHelp(false)

	return form.Run()
}

func init() {
	rootCmd.AddCommand(scaffoldCmd)
	scaffoldCmd.Flags().StringVarP(&scaffoldOutputDir, "output", "o", ".", "Directory to scaffold into")
	scaffoldCmd.Flags().StringVar(&scaffoldAnswersFile, "answers", "", "YAML answers file for non-interactive runs")
	scaffoldCmd.Flags().BoolVar(&scaffoldDefaults, "defaults", false, "Use default answers (requires a name argument)")
}
