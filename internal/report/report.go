// Package report renders validation results for the terminal or as JSON.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mame7743/zen-temple/internal/validator"
)

var (
	success = lipgloss.Color("#22C55E")
	danger  = lipgloss.Color("#EF4444")
	warning = lipgloss.Color("#F59E0B")
	dim     = lipgloss.Color("#6B7280")
	fg      = lipgloss.Color("#E8E6E3")
)

var (
	passStyle    = lipgloss.NewStyle().Foreground(success)
	failStyle    = lipgloss.NewStyle().Foreground(danger)
	warnStyle    = lipgloss.NewStyle().Foreground(warning)
	dimStyle     = lipgloss.NewStyle().Foreground(dim)
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(fg)
	sectionStyle = lipgloss.NewStyle().Bold(true)
)

// TextOptions controls Text.
type TextOptions struct {
	// Strict counts components with warnings as failing in the summary.
	Strict bool
	// Quiet omits components without findings.
	Quiet bool
}

// Summary is the JSON document written by JSON.
type Summary struct {
	Total    int                           `json:"total"`
	Valid    int                           `json:"valid"`
	Invalid  int                           `json:"invalid"`
	Warnings int                           `json:"warnings"`
	Results  []*validator.ValidationResult `json:"results"`
}

// Summarize counts results. Under strict, a component with warnings counts
// as invalid.
func Summarize(results []*validator.ValidationResult, strict bool) Summary {
	s := Summary{Total: len(results), Results: results}
	if s.Results == nil {
		s.Results = []*validator.ValidationResult{}
	}
	for _, r := range results {
		s.Warnings += len(r.Warnings)
		if Passed(r, strict) {
			s.Valid++
		} else {
			s.Invalid++
		}
	}
	return s
}

// Passed reports whether r passes. Under strict, warnings fail too.
func Passed(r *validator.ValidationResult, strict bool) bool {
	if !r.IsValid {
		return false
	}
	return !strict || !r.HasWarnings()
}

// Text writes a styled, human-readable report.
func Text(w io.Writer, results []*validator.ValidationResult, opts TextOptions) error {
	var b strings.Builder

	for _, r := range results {
		if opts.Quiet && !r.HasErrors() && !r.HasWarnings() {
			continue
		}
		renderResult(&b, r, opts.Strict)
	}

	s := Summarize(results, opts.Strict)
	status := passStyle
	if s.Invalid > 0 {
		status = failStyle
	}
	b.WriteString(status.Render(fmt.Sprintf("Summary: %d/%d components valid", s.Valid, s.Total)))
	if s.Warnings > 0 {
		b.WriteString(dimStyle.Render(fmt.Sprintf(" (%d warnings)", s.Warnings)))
	}
	b.WriteString("\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func renderResult(b *strings.Builder, r *validator.ValidationResult, strict bool) {
	name := titleStyle.Render(r.ComponentName)
	if Passed(r, strict) {
		fmt.Fprintf(b, "%s %s: %s\n", passStyle.Render("✓"), name, passStyle.Render("valid"))
	} else {
		fmt.Fprintf(b, "%s %s: %s\n", failStyle.Render("✗"), name, failStyle.Render("has issues"))
	}
	if r.Path != "" {
		fmt.Fprintf(b, "  %s\n", dimStyle.Render(r.Path))
	}

	renderSection(b, "Errors", r.Errors, failStyle)
	renderSection(b, "Warnings", r.Warnings, warnStyle)
	b.WriteString("\n")
}

func renderSection(b *strings.Builder, title string, items []string, style lipgloss.Style) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(b, "  %s\n", sectionStyle.Render(title+":"))
	for _, item := range items {
		fmt.Fprintf(b, "    %s %s\n", style.Render("-"), item)
	}
}

// JSON writes the results and their summary as indented JSON.
func JSON(w io.Writer, results []*validator.ValidationResult, strict bool) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(Summarize(results, strict))
}
