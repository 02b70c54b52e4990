package cmd

import (
	"fmt"

	"github.com/mame7743/zen-temple/internal/scaffolding"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:     "init",
	Aliases: []string{"i"},
	Short:   "Initialize zen-temple in the current directory",
	Long: `Write a zen-temple.yaml into the current directory and create the
template directories it references. Existing configuration is never
overwritten.

Examples:
  zen-temple init                          # Project named after the directory
  zen-temple init --project-name shop      # Explicit project name
  zen-temple init --template-dir views     # Use views/ instead of templates/`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

var (
	initProjectName string
	initTemplateDir string
)

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().StringVarP(&initProjectName, "project-name", "n", "", "Project name (default is the directory name)")
	initCmd.Flags().StringVarP(&initTemplateDir, "template-dir", "d", "templates", "Template directory")
}

func runInit(cmd *cobra.Command, args []string) error {
	gen := scaffolding.NewGenerator(".", scaffolding.WithLogger(logger))

	path, err := gen.InitProject(".", initProjectName, initTemplateDir)
	if err != nil {
		return fmt.Errorf("failed to initialize project: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Initialized zen-temple project: %s\n", path)
	return nil
}
