package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/mame7743/zen-temple/internal/config"
	"github.com/mame7743/zen-temple/internal/report"
	"github.com/mame7743/zen-temple/internal/validator"
	"github.com/mame7743/zen-temple/internal/watcher"
	"github.com/spf13/cobra"
)

// ErrValidationFailed is returned when at least one component fails, so that
// the process exits non-zero.
var ErrValidationFailed = errors.New("validation failed")

var validateCmd = &cobra.Command{
	Use:     "validate [path...]",
	Aliases: []string{"v"},
	Short:   "Validate components against the zen-temple conventions",
	Long: `Validate component files or directories. Directories are searched
recursively for *.html files; hidden directories and files matching
validation.exclude_patterns are skipped. With no paths, the configured
template directories are validated.

The command exits non-zero when any component has errors, or, with --strict,
warnings.

Examples:
  zen-temple validate                              # Configured directories
  zen-temple validate templates/components/x.html  # A single file
  zen-temple validate --format json templates      # Machine-readable output
  zen-temple validate --strict                     # Warnings fail too
  zen-temple validate --watch                      # Re-validate on change`,
	RunE: runValidate,
}

var (
	validateFormat string
	validateStrict bool
	validateWatch  bool
	validateQuiet  bool
)

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringVarP(&validateFormat, "format", "f", "text", "Output format (text, json)")
	validateCmd.Flags().BoolVar(&validateStrict, "strict", false, "Treat warnings as failures")
	validateCmd.Flags().BoolVarP(&validateWatch, "watch", "w", false, "Watch for changes and re-validate")
	validateCmd.Flags().BoolVarP(&validateQuiet, "quiet", "q", false, "Only report components with findings")

	AddFlagValidation(validateCmd.Flags(), "format", func(format string) error {
		return ValidateFormat(format, []string{"text", "json"})
	})
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	paths := args
	if len(paths) == 0 {
		paths = cfg.Templates.Directories
	}
	strict := validateStrict || cfg.Validation.Strict

	v := validator.New(validator.WithRules(cfg.Rules()...), validator.WithLogger(logger))

	files, err := validator.CollectComponents(paths, cfg.Validation.ExcludePatterns)
	if err != nil {
		return fmt.Errorf("failed to collect components: %w", err)
	}

	out := cmd.OutOrStdout()
	runErr := validateAndReport(out, v, files, strict)

	if !validateWatch {
		return runErr
	}
	return watchAndValidate(cmd.Context(), out, v, cfg, paths, strict)
}

func validateAndReport(out io.Writer, v *validator.ComponentValidator, files []string, strict bool) error {
	if len(files) == 0 {
		fmt.Fprintln(out, "No component files found.")
		return nil
	}

	results := v.ValidateFiles(files)

	var err error
	if validateFormat == "json" {
		err = report.JSON(out, results, strict)
	} else {
		err = report.Text(out, results, report.TextOptions{Strict: strict, Quiet: validateQuiet})
	}
	if err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	if s := report.Summarize(results, strict); s.Invalid > 0 {
		return fmt.Errorf("%w: %d of %d components", ErrValidationFailed, s.Invalid, s.Total)
	}
	return nil
}

// watchAndValidate re-validates changed component files until interrupted.
func watchAndValidate(ctx context.Context, out io.Writer, v *validator.ComponentValidator,
	cfg *config.Config, paths []string, strict bool,
) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	fw, err := watcher.NewFileWatcher(300*time.Millisecond, watcher.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer fw.Stop()

	fw.AddFilter(watcher.HTMLFilter)
	fw.AddFilter(watcher.NoHiddenFilter)
	fw.AddFilter(watcher.ExcludeFilter(cfg.Validation.ExcludePatterns))

	for _, p := range paths {
		info, statErr := os.Stat(p)
		switch {
		case statErr != nil:
			logger.Warn(ctx, statErr, "not watching missing path", "path", p)
		case info.IsDir():
			err = fw.AddRecursive(p)
		default:
			err = fw.AddPath(filepath.Dir(p))
		}
		if err != nil {
			return fmt.Errorf("failed to watch %s: %w", p, err)
		}
	}

	fw.AddHandler(func(ctx context.Context, events []watcher.ChangeEvent) error {
		var changed []string
		for _, e := range events {
			if watcher.IsNotExist(e) {
				fmt.Fprintf(out, "Removed: %s\n", e.Path)
				continue
			}
			changed = append(changed, e.Path)
		}
		if len(changed) == 0 {
			return nil
		}

		fmt.Fprintf(out, "\n[%s] %d file(s) changed\n", time.Now().Format("15:04:05"), len(changed))
		if err := validateAndReport(out, v, changed, strict); err != nil && !errors.Is(err, ErrValidationFailed) {
			return err
		}
		return nil
	})

	if err := fw.Start(ctx); err != nil {
		return fmt.Errorf("failed to start file watcher: %w", err)
	}

	fmt.Fprintln(out, "Watching for changes. Press Ctrl+C to stop.")
	<-ctx.Done()
	fmt.Fprintln(out, "Stopped watching.")
	return nil
}
