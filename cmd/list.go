package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/mame7743/zen-temple/internal/renderer"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var listCmd = &cobra.Command{
	Use:     "list-components",
	Aliases: []string{"list", "l"},
	Short:   "List components in the template directories",
	Long: `List every *.html file in the template directories with the file it
was loaded from.

Examples:
  zen-temple list                          # Table of configured directories
  zen-temple list -f json                  # Output as JSON
  zen-temple list --template-dir views     # Another directory`,
	Args: cobra.NoArgs,
	RunE: runList,
}

var (
	listFormat       string
	listTemplateDirs []string
)

// ComponentEntry is one row of list output.
type ComponentEntry struct {
	Name string `json:"name" yaml:"name"`
	Path string `json:"path" yaml:"path"`
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringVarP(&listFormat, "format", "f", "table", "Output format (table, json, yaml)")
	listCmd.Flags().StringSliceVarP(&listTemplateDirs, "template-dir", "d", nil,
		"Template directory (repeatable, default from configuration)")

	AddFlagValidation(listCmd.Flags(), "format", func(format string) error {
		return ValidateFormat(format, []string{"table", "json", "yaml"})
	})
}

func runList(cmd *cobra.Command, args []string) error {
	dirs, err := templateDirs(listTemplateDirs)
	if err != nil {
		return err
	}

	tm, err := renderer.NewTemplateManager(dirs, renderer.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("failed to load templates: %w", err)
	}

	files := tm.Files()
	entries := make([]ComponentEntry, 0, len(files))
	for _, name := range tm.ListComponents() {
		entries = append(entries, ComponentEntry{Name: name, Path: files[name]})
	}

	out := cmd.OutOrStdout()
	switch listFormat {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	case "yaml":
		return yaml.NewEncoder(out).Encode(entries)
	default:
		return outputTable(out, entries)
	}
}

func outputTable(out io.Writer, entries []ComponentEntry) error {
	if len(entries) == 0 {
		_, err := fmt.Fprintln(out, "No components found.")
		return err
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tPATH")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\n", e.Name, e.Path)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(out, "\nTotal: %d components\n", len(entries))
	return err
}

// templateDirs returns flagDirs, or the configured directories when none
// were given.
func templateDirs(flagDirs []string) ([]string, error) {
	if len(flagDirs) > 0 {
		return flagDirs, nil
	}
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return cfg.Templates.Directories, nil
}
