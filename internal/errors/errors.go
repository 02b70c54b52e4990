// Package errors provides the structured error type used across zen-temple.
//
// Validation findings are never returned as errors; they are reported through
// validator.ValidationResult. ZenError covers the faults around them: bad
// configuration, unreadable directories, template failures and scaffold
// conflicts.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorType represents different categories of errors.
type ErrorType string

const (
	ErrorTypeValidation ErrorType = "validation"
	ErrorTypeIO         ErrorType = "io"
	ErrorTypeConfig     ErrorType = "config"
	ErrorTypeTemplate   ErrorType = "template"
	ErrorTypeInternal   ErrorType = "internal"
)

// Error codes shared between packages.
const (
	CodeComponentExists      = "ERR_COMPONENT_EXISTS"
	CodeProjectExists        = "ERR_PROJECT_EXISTS"
	CodeTemplateNotFound     = "ERR_TEMPLATE_NOT_FOUND"
	CodeInvalidName          = "ERR_INVALID_NAME"
	CodeUnknownComponentType = "ERR_UNKNOWN_COMPONENT_TYPE"
	CodeInvalidConfig        = "ERR_INVALID_CONFIG"
	CodeReadFailed           = "ERR_READ_FAILED"
	CodeWriteFailed          = "ERR_WRITE_FAILED"
	CodeRenderFailed         = "ERR_RENDER_FAILED"
)

// ZenError is a structured error type with context.
type ZenError struct {
	Type      ErrorType
	Code      string
	Message   string
	Cause     error
	Component string
	FilePath  string
}

// Error implements the error interface.
func (e *ZenError) Error() string {
	var parts []string

	if e.Code != "" {
		parts = append(parts, fmt.Sprintf("[%s]", e.Code))
	}

	if e.Component != "" {
		parts = append(parts, "component:"+e.Component)
	}

	if e.FilePath != "" {
		parts = append(parts, e.FilePath)
	}

	parts = append(parts, e.Message)

	result := strings.Join(parts, " ")

	if e.Cause != nil {
		result += fmt.Sprintf(": %v", e.Cause)
	}

	return result
}

// Unwrap returns the underlying cause error.
func (e *ZenError) Unwrap() error {
	return e.Cause
}

// Is matches on type and code so callers can compare against a bare
// &ZenError{Type: ..., Code: ...}.
func (e *ZenError) Is(target error) bool {
	var t *ZenError
	if errors.As(target, &t) {
		return e.Type == t.Type && e.Code == t.Code
	}

	return false
}

// WithComponent sets the component the error refers to.
func (e *ZenError) WithComponent(component string) *ZenError {
	e.Component = component

	return e
}

// WithPath sets the file path the error refers to.
func (e *ZenError) WithPath(path string) *ZenError {
	e.FilePath = path

	return e
}

// NewValidationError creates a validation error.
func NewValidationError(code, message string) *ZenError {
	return &ZenError{Type: ErrorTypeValidation, Code: code, Message: message}
}

// NewIOError creates an I/O error wrapping cause.
func NewIOError(code, message string, cause error) *ZenError {
	return &ZenError{Type: ErrorTypeIO, Code: code, Message: message, Cause: cause}
}

// NewConfigError creates a configuration error.
func NewConfigError(message string, cause error) *ZenError {
	return &ZenError{Type: ErrorTypeConfig, Code: CodeInvalidConfig, Message: message, Cause: cause}
}

// NewTemplateError creates a template error.
func NewTemplateError(code, message string, cause error) *ZenError {
	return &ZenError{Type: ErrorTypeTemplate, Code: code, Message: message, Cause: cause}
}

// HasCode reports whether err, or any error it wraps, is a ZenError with code.
func HasCode(err error, code string) bool {
	var ze *ZenError
	for err != nil {
		if errors.As(err, &ze) {
			if ze.Code == code {
				return true
			}
			err = ze.Cause
			continue
		}
		return false
	}

	return false
}
