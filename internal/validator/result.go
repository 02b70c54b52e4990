package validator

// Severity is the weight of a finding. Only errors invalidate a component.
type Severity int

const (
	SeverityWarning Severity = iota
	SeverityError
)

// String returns the string representation of the severity
func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// MarshalText renders the severity by name in JSON output.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Category identifies the kind of finding independently of its message text.
type Category string

const (
	CategoryInlineScript        Category = "inline_script"
	CategoryInlineHandler       Category = "inline_handler"
	CategoryHTMXFullSwap        Category = "htmx_full_swap"
	CategoryMalformedState      Category = "malformed_state"
	CategoryInlineObjectState   Category = "inline_object_state"
	CategoryMissingDirectives   Category = "missing_directives"
	CategoryMissingWrapper      Category = "missing_wrapper"
	CategoryDestructiveMutation Category = "destructive_mutation"
	CategoryUnwrappedDocument   Category = "unwrapped_document"
	CategoryFileNotFound        Category = "file_not_found"
	CategoryUnreadable          Category = "unreadable"
)

// Finding is a single message produced by a rule.
type Finding struct {
	Rule     Rule     `json:"rule,omitempty"`
	Category Category `json:"category"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

// ValidationResult is the report for one component. It is created by a single
// validation call and written only by that call.
type ValidationResult struct {
	ComponentName string    `json:"component_name"`
	Path          string    `json:"path,omitempty"`
	IsValid       bool      `json:"is_valid"`
	Errors        []string  `json:"errors"`
	Warnings      []string  `json:"warnings"`
	Findings      []Finding `json:"findings"`
}

func newResult(componentName string) *ValidationResult {
	return &ValidationResult{
		ComponentName: componentName,
		IsValid:       true,
		Errors:        make([]string, 0),
		Warnings:      make([]string, 0),
		Findings:      make([]Finding, 0),
	}
}

// AddError records an error finding and marks the result invalid for good.
func (r *ValidationResult) AddError(f Finding) {
	f.Severity = SeverityError
	r.Errors = append(r.Errors, f.Message)
	r.Findings = append(r.Findings, f)
	r.IsValid = false
}

// AddWarning records a warning finding. IsValid is left untouched.
func (r *ValidationResult) AddWarning(f Finding) {
	f.Severity = SeverityWarning
	r.Warnings = append(r.Warnings, f.Message)
	r.Findings = append(r.Findings, f)
}

// Add dispatches on the finding's severity.
func (r *ValidationResult) Add(f Finding) {
	if f.Severity == SeverityError {
		r.AddError(f)
		return
	}
	r.AddWarning(f)
}

// HasErrors reports whether any error was recorded.
func (r *ValidationResult) HasErrors() bool {
	return len(r.Errors) > 0
}

// HasWarnings reports whether any warning was recorded.
func (r *ValidationResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// Categories returns the category of every finding, in order.
func (r *ValidationResult) Categories() []Category {
	out := make([]Category, len(r.Findings))
	for i, f := range r.Findings {
		out[i] = f.Category
	}
	return out
}

// Count returns how many findings of the given category were recorded.
func (r *ValidationResult) Count(c Category) int {
	n := 0
	for _, f := range r.Findings {
		if f.Category == c {
			n++
		}
	}
	return n
}
