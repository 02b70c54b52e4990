// Package validator lints component files against the zen-temple conventions.
//
// The checks are lexical. Each Rule scans the raw component text with regular
// expressions and returns its own findings; the ComponentValidator concatenates
// them into a ValidationResult in battery order. Rules never see each other's
// output, so any ordering yields the same set of findings.
package validator

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/mame7743/zen-temple/internal/logging"
	"github.com/sourcegraph/conc/iter"
)

// InlineComponentName labels results produced from in-memory content when the
// caller gives no name.
const InlineComponentName = "inline"

// ComponentValidator runs the rule battery over component text.
type ComponentValidator struct {
	rules  []Rule
	logger logging.Logger
}

// Option configures a ComponentValidator.
type Option func(*ComponentValidator)

// WithRules replaces the battery. Order only affects reporting order.
func WithRules(rules ...Rule) Option {
	return func(v *ComponentValidator) {
		v.rules = append([]Rule(nil), rules...)
	}
}

// WithLogger sets the logger used for debug tracing and recovered rule panics.
func WithLogger(logger logging.Logger) Option {
	return func(v *ComponentValidator) {
		if logger != nil {
			v.logger = logger.WithComponent("validator")
		}
	}
}

// New creates a validator with the default battery.
func New(opts ...Option) *ComponentValidator {
	v := &ComponentValidator{
		rules:  append([]Rule(nil), DefaultRules...),
		logger: logging.Nop(),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Rules returns a copy of the configured battery.
func (v *ComponentValidator) Rules() []Rule {
	return append([]Rule(nil), v.rules...)
}

// ValidateComponent validates the file at path. A missing or unreadable file is
// reported as a single error on the result; no rules run in that case.
func (v *ComponentValidator) ValidateComponent(path string) *ValidationResult {
	result := newResult(componentNameFromPath(path))
	result.Path = path

	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			result.AddError(Finding{
				Category: CategoryFileNotFound,
				Message:  "Component file not found: " + path,
			})
		} else {
			result.AddError(Finding{
				Category: CategoryUnreadable,
				Message:  fmt.Sprintf("Component file could not be read: %s: %v", path, err),
			})
		}
		v.logger.Debug(context.Background(), "component skipped", "path", path, "reason", err.Error())
		return result
	}

	v.run(string(content), result)
	return result
}

// ValidateString validates in-memory content.
func (v *ComponentValidator) ValidateString(content, componentName string) *ValidationResult {
	if componentName == "" {
		componentName = InlineComponentName
	}
	result := newResult(componentName)
	v.run(content, result)
	return result
}

// ValidateFiles validates every path concurrently. Results keep the order of
// paths.
func (v *ComponentValidator) ValidateFiles(paths []string) []*ValidationResult {
	return iter.Map(paths, func(path *string) *ValidationResult {
		return v.ValidateComponent(*path)
	})
}

func (v *ComponentValidator) run(content string, result *ValidationResult) {
	for _, rule := range v.rules {
		for _, f := range v.check(rule, content, result.ComponentName) {
			result.Add(f)
		}
	}

	v.logger.Debug(context.Background(), "component validated",
		"name", result.ComponentName,
		"errors", len(result.Errors),
		"warnings", len(result.Warnings),
	)
}

// check isolates a rule so that a panic inside it drops only its findings.
func (v *ComponentValidator) check(rule Rule, content, name string) (findings []Finding) {
	defer func() {
		if r := recover(); r != nil {
			v.logger.Warn(context.Background(), fmt.Errorf("%v", r), "rule aborted",
				"rule", rule.String(), "name", name)
			findings = nil
		}
	}()

	return rule.Check(content)
}

func componentNameFromPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
