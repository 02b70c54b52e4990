package cmd

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/mame7743/zen-temple/internal/scaffolding"
	"github.com/spf13/cobra"
)

var newCmd = &cobra.Command{
	Use:   "new <project-name>",
	Short: "Create a new zen-temple project",
	Long: `Create a new project directory with a base layout, example components,
a zen-temple.yaml configuration and, optionally, a Go development server.

Examples:
  zen-temple new my-app                  # Project with example components
  zen-temple new my-app --no-examples    # Empty component directory
  zen-temple new my-app --with-server    # Add app/main.go serving the templates
  zen-temple new my-app --path ~/src     # Create under another directory`,
	Args: cobra.ExactArgs(1),
	RunE: runNew,
}

var (
	newPath       string
	newNoExamples bool
	newWithServer bool
)

func init() {
	rootCmd.AddCommand(newCmd)

	newCmd.Flags().StringVarP(&newPath, "path", "p", ".", "Directory to create the project in")
	newCmd.Flags().BoolVar(&newNoExamples, "no-examples", false, "Skip the example components")
	newCmd.Flags().BoolVar(&newWithServer, "with-server", false, "Generate a Go development server")
}

func runNew(cmd *cobra.Command, args []string) error {
	name := args[0]

	gen := scaffolding.NewGenerator(newPath, scaffolding.WithLogger(logger))
	created, err := gen.GenerateProject(name, scaffolding.ProjectOptions{
		NoExamples: newNoExamples,
		WithServer: newWithServer,
	})
	if err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}

	rels := make([]string, 0, len(created))
	for rel := range created {
		rels = append(rels, rel)
	}
	sort.Strings(rels)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Created project %s in %s\n", name, filepath.Join(newPath, name))
	for _, rel := range rels {
		fmt.Fprintf(out, "  %s\n", rel)
	}

	fmt.Fprintln(out, "\nNext steps:")
	fmt.Fprintf(out, "  cd %s\n", filepath.Join(newPath, name))
	if newWithServer {
		fmt.Fprintln(out, "  go run ./app")
	}
	fmt.Fprintln(out, "  zen-temple validate")
	return nil
}
