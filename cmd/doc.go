// Package cmd provides the command-line interface for zen-temple.
//
// This package implements all CLI commands using the Cobra framework.
//
// # Available Commands
//
//   - new: Create a project with layout, example components and config
//   - component: Generate a component skeleton (basic, form, list, card)
//   - init: Write zen-temple.yaml into an existing directory
//   - validate: Lint components; exits non-zero on failures
//   - list-components: List components in the template directories
//   - render: Render a component with JSON or YAML data
//   - philosophy: Print the design principles
//   - version: Print build information
//
// # Command Examples
//
//	// Create a project with a development server
//	zen-temple new shop --with-server
//
//	// Add a form component
//	zen-temple component signup --type form
//
//	// Validate everything, failing on warnings too
//	zen-temple validate --strict
//
//	// Re-validate on every save
//	zen-temple validate --watch templates
//
//	// Render with data from a file
//	zen-temple render user-card --data @fixtures/user.yaml
//
// # Configuration
//
// Commands read zen-temple.yaml from the current directory, or the file
// named by --config or ZEN_TEMPLE_CONFIG_FILE. Every key can be overridden
// with a ZEN_TEMPLE_<SECTION>_<OPTION> environment variable, e.g.
// ZEN_TEMPLE_VALIDATION_STRICT=true.
//
// # Exit Status
//
// validate exits 1 when any component has errors (or warnings, with
// --strict). Other commands exit 1 on failure.
package cmd
