// Package internal contains the implementation packages for zen-temple.
//
// # Package Organization
//
//   - validator: Lexical rule battery for component files
//   - scaffolding: Project and component generation
//   - renderer: html/template set loading and component rendering
//   - report: Text and JSON rendering of validation results
//   - watcher: File system monitoring with debouncing
//   - config: Project configuration with Viper
//   - errors: Structured error type shared by the packages above
//   - logging: Structured logging on log/slog
//   - version: Build information
//
// # Data Flow
//
//   - cmd loads config, which selects the validator rules
//   - validator results flow into report for output
//   - watcher batches feed back into validator in watch mode
//   - scaffolding writes config and components that validator accepts
//     without findings
package internal
