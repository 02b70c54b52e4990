package cmd

import (
	"fmt"
	"path"
	"strings"

	"github.com/mame7743/zen-temple/internal/scaffolding"
	"github.com/spf13/cobra"
)

var componentCmd = &cobra.Command{
	Use:     "component <name>",
	Aliases: []string{"c"},
	Short:   "Generate a new component",
	Long: `Generate a component skeleton: an html/template fragment wrapped in
{{define}} with its Alpine.js state in a class.

Types: basic, card, form, list

Examples:
  zen-temple component greeting               # basic component
  zen-temple component signup --type form     # form with validation state
  zen-temple component users -t list -o views # custom output directory`,
	Args: cobra.ExactArgs(1),
	RunE: runComponent,
}

var (
	componentType   string
	componentOutput string
)

func init() {
	rootCmd.AddCommand(componentCmd)

	componentCmd.Flags().StringVarP(&componentType, "type", "t", scaffolding.DefaultComponentType,
		"Component type ("+strings.Join(scaffolding.NewGenerator("").ComponentTypes(), ", ")+")")
	componentCmd.Flags().StringVarP(&componentOutput, "output", "o", "",
		"Output directory (default templates/components)")

	AddFlagValidation(componentCmd.Flags(), "type", func(t string) error {
		return ValidateFormat(t, scaffolding.NewGenerator("").ComponentTypes())
	})
}

func runComponent(cmd *cobra.Command, args []string) error {
	outputDir := componentOutput
	if outputDir == "" {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		outputDir = componentDir(cfg.Templates.Directories)
	}

	gen := scaffolding.NewGenerator(".", scaffolding.WithLogger(logger))

	file, err := gen.GenerateComponent(args[0], componentType, outputDir)
	if err != nil {
		return fmt.Errorf("failed to create component: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Created %s component: %s\n", componentType, file)
	fmt.Fprintf(out, "Use it with: {{template %q .}}\n", scaffolding.SnakeName(args[0]))
	return nil
}

// componentDir picks the configured directory named components, or "" for the
// generator default.
func componentDir(dirs []string) string {
	for _, d := range dirs {
		if path.Base(d) == "components" {
			return d
		}
	}
	return ""
}
