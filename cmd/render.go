package cmd

import (
	"fmt"

	"github.com/mame7743/zen-temple/internal/renderer"
	"github.com/spf13/cobra"
)

var renderCmd = &cobra.Command{
	Use:     "render <component>",
	Aliases: []string{"r"},
	Short:   "Render a component to stdout",
	Long: `Render a component by fragment name or file name with optional data.

Data is inline JSON, or @file for a JSON or YAML file.

Examples:
  zen-temple render counter
  zen-temple render greeting --data '{"name": "zen"}'
  zen-temple render user-card --data @fixtures/user.yaml
  zen-temple render counter --page > preview.html`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

var (
	renderData         string
	renderTemplateDirs []string
	renderPage         bool
)

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().StringVar(&renderData, "data", "", "Template data (JSON or @file.json/@file.yaml)")
	renderCmd.Flags().StringSliceVarP(&renderTemplateDirs, "template-dir", "d", nil,
		"Template directory (repeatable, default from configuration)")
	renderCmd.Flags().BoolVar(&renderPage, "page", false, "Wrap the output in a preview page loading the CDN scripts")
}

func runRender(cmd *cobra.Command, args []string) error {
	name := args[0]

	data, err := ParseData(renderData)
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	dirs := renderTemplateDirs
	if len(dirs) == 0 {
		dirs = cfg.Templates.Directories
	}

	tm, err := renderer.NewTemplateManager(dirs, renderer.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("failed to load templates: %w", err)
	}

	var html string
	if renderPage {
		html, err = tm.RenderPage(name, data, cfg.CDN)
	} else {
		html, err = tm.RenderComponent(name, data)
	}
	if err != nil {
		return fmt.Errorf("failed to render %s: %w", name, err)
	}

	_, err = fmt.Fprint(cmd.OutOrStdout(), html)
	return err
}
