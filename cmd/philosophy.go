package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var philosophyCmd = &cobra.Command{
	Use:   "philosophy",
	Short: "Show the zen-temple design principles",
	Args:  cobra.NoArgs,
	RunE:  runPhilosophy,
}

var (
	philosophyTitle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#D97706"))
	philosophyDim   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
)

func init() {
	rootCmd.AddCommand(philosophyCmd)
}

func runPhilosophy(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, philosophyTitle.Render("zen-temple philosophy"))
	fmt.Fprintln(out)
	for i, p := range cfg.ZenTemple.Philosophy {
		fmt.Fprintf(out, "  %s %s\n", philosophyDim.Render(fmt.Sprintf("%d.", i+1)), p)
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, philosophyDim.Render("Components are html/template fragments. State lives in classes."))
	fmt.Fprintln(out, philosophyDim.Render("The server owns the data; HTMX carries it."))
	return nil
}
