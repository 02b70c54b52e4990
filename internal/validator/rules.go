package validator

import (
	"fmt"
	"regexp"
	"strings"
)

// Rule identifies one check in the fixed battery. The set is closed. The zero
// value marks findings that no rule produced, such as a missing file.
type Rule int

const (
	RuleInlineScripts Rule = iota + 1
	RuleHTMXUsage
	RuleAlpineUsage
	RuleWrapper
	RuleServerStateMutation
	RuleTemplateStructure
)

// DefaultRules is the battery in reporting order.
var DefaultRules = []Rule{
	RuleInlineScripts,
	RuleHTMXUsage,
	RuleAlpineUsage,
	RuleWrapper,
	RuleServerStateMutation,
	RuleTemplateStructure,
}

// String returns the string representation of the rule
func (r Rule) String() string {
	switch r {
	case RuleInlineScripts:
		return "inline-scripts"
	case RuleHTMXUsage:
		return "htmx-usage"
	case RuleAlpineUsage:
		return "alpine-usage"
	case RuleWrapper:
		return "wrapper"
	case RuleServerStateMutation:
		return "server-state-mutation"
	case RuleTemplateStructure:
		return "template-structure"
	default:
		return "unknown"
	}
}

// MarshalText renders the rule by name in JSON output.
func (r Rule) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// ParseRule is the inverse of Rule.String.
func ParseRule(name string) (Rule, bool) {
	for _, r := range DefaultRules {
		if r.String() == name {
			return r, true
		}
	}
	return 0, false
}

// Check runs the rule against content. It has no access to other rules'
// findings.
func (r Rule) Check(content string) []Finding {
	var findings []Finding
	switch r {
	case RuleInlineScripts:
		findings = checkInlineScripts(content)
	case RuleHTMXUsage:
		findings = checkHTMXUsage(content)
	case RuleAlpineUsage:
		findings = checkAlpineUsage(content)
	case RuleWrapper:
		findings = checkWrapper(content)
	case RuleServerStateMutation:
		findings = checkServerStateMutation(content)
	case RuleTemplateStructure:
		findings = checkTemplateStructure(content)
	}

	for i := range findings {
		findings[i].Rule = r
	}
	return findings
}

var (
	scriptBlockPattern = regexp.MustCompile(`(?is)<script\b([^>]*)>(.*?)</script\s*>`)
	scriptSrcPattern   = regexp.MustCompile(`(?i)\bsrc\s*=`)
	classDefPattern    = regexp.MustCompile(`\bclass\s+[A-Za-z_$][\w$]*`)

	xDataValuePattern = regexp.MustCompile(`x-data\s*=\s*["']([^"']*)["']`)
	newKeywordPattern = regexp.MustCompile(`\bnew\b`)
	fullSwapPattern   = regexp.MustCompile(`hx-swap\s*=\s*["']outerHTML["']`)

	// {{define "x"}} for html/template, {% macro x() %} for Jinja-flavoured files.
	wrapperPattern = regexp.MustCompile(`\{\{-?\s*define\b|\{%-?\s*macro\b`)

	compositionPattern = regexp.MustCompile(`\{\{-?\s*(template|block)\b|\{%-?\s*(extends|include|block)\b`)
)

type inlineHandler struct {
	attr    string
	hint    string
	pattern *regexp.Regexp
}

var inlineHandlers = []inlineHandler{
	{attr: "onclick=", hint: "@click", pattern: regexp.MustCompile(`(?i)onclick\s*=`)},
	{attr: "onload=", hint: "x-init", pattern: regexp.MustCompile(`(?i)onload\s*=`)},
	{attr: "onchange=", hint: "@change", pattern: regexp.MustCompile(`(?i)onchange\s*=`)},
	{attr: "onsubmit=", hint: "@submit", pattern: regexp.MustCompile(`(?i)onsubmit\s*=`)},
}

var htmxAttributes = []string{
	"hx-get", "hx-post", "hx-put", "hx-delete", "hx-patch",
	"hx-trigger", "hx-target", "hx-swap", "hx-select",
}

var alpineDirectives = []string{"x-show", "x-if", "x-for", "x-model", "x-text", "x-html"}

type mutationPattern struct {
	method  string
	pattern *regexp.Regexp
}

var mutationPatterns = []mutationPattern{
	{method: "push", pattern: regexp.MustCompile(`this\.[A-Za-z_$][\w$]*\.push\s*\(`)},
	{method: "splice", pattern: regexp.MustCompile(`this\.[A-Za-z_$][\w$]*\.splice\s*\(`)},
	{method: "pop", pattern: regexp.MustCompile(`this\.[A-Za-z_$][\w$]*\.pop\s*\(`)},
}

func checkInlineScripts(content string) []Finding {
	var findings []Finding

	for _, m := range scriptBlockPattern.FindAllStringSubmatch(content, -1) {
		block, attrs := m[0], m[1]
		if scriptSrcPattern.MatchString(attrs) {
			continue
		}
		if isSanctionedScript(block) {
			continue
		}
		findings = append(findings, Finding{
			Category: CategoryInlineScript,
			Severity: SeverityError,
			Message: "Inline script detected. Move logic into a state class and reference it " +
				`with x-data="new ClassName()".`,
		})
	}

	for _, h := range inlineHandlers {
		if h.pattern.MatchString(content) {
			findings = append(findings, Finding{
				Category: CategoryInlineHandler,
				Severity: SeverityError,
				Message: fmt.Sprintf("Inline event handler detected (%s). Use Alpine.js %s instead.",
					h.attr, h.hint),
			})
		}
	}

	return findings
}

// isSanctionedScript reports whether a script block carries one of the accepted
// idioms: Alpine state, an htmx extension or a state class definition.
func isSanctionedScript(block string) bool {
	if strings.Contains(block, "x-data") {
		return true
	}
	if strings.Contains(strings.ToLower(block), "htmx") {
		return true
	}
	return classDefPattern.MatchString(block)
}

func checkHTMXUsage(content string) []Finding {
	if !containsAny(content, htmxAttributes) {
		return nil
	}
	if !fullSwapPattern.MatchString(content) {
		return nil
	}

	return []Finding{{
		Category: CategoryHTMXFullSwap,
		Severity: SeverityWarning,
		Message: `Using hx-swap="outerHTML" may replace the whole document. ` +
			"Ensure the server returns HTML fragments, not full pages.",
	}}
}

func checkAlpineUsage(content string) []Finding {
	var findings []Finding

	hasXData := strings.Contains(content, "x-data")
	if hasXData {
		for _, m := range xDataValuePattern.FindAllStringSubmatch(content, -1) {
			value := m[1]
			if value != "" && !strings.ContainsAny(value, "{(") {
				findings = append(findings, Finding{
					Category: CategoryMalformedState,
					Severity: SeverityWarning,
					Message:  fmt.Sprintf("x-data=%q should be a function call or object literal", value),
				})
			}

			trimmed := strings.TrimSpace(value)
			if strings.HasPrefix(trimmed, "{") && !newKeywordPattern.MatchString(trimmed) {
				findings = append(findings, Finding{
					Category: CategoryInlineObjectState,
					Severity: SeverityWarning,
					Message: fmt.Sprintf("x-data=%q declares inline object state. Move it into a named "+
						`state class and use x-data="new ClassName()".`, value),
				})
			}
		}
	}

	if !hasXData && !containsAny(content, alpineDirectives) {
		findings = append(findings, Finding{
			Category: CategoryMissingDirectives,
			Severity: SeverityWarning,
			Message:  "No Alpine.js directives found. Consider using Alpine.js for reactive behavior.",
		})
	}

	return findings
}

func checkWrapper(content string) []Finding {
	if wrapperPattern.MatchString(content) {
		return nil
	}

	return []Finding{{
		Category: CategoryMissingWrapper,
		Severity: SeverityWarning,
		Message: `Component is not wrapped in a named fragment. Wrap it in {{define "name"}} ... {{end}} ` +
			"so it can be reused.",
	}}
}

func checkServerStateMutation(content string) []Finding {
	for _, p := range mutationPatterns {
		if !p.pattern.MatchString(content) {
			continue
		}

		return []Finding{{
			Category: CategoryDestructiveMutation,
			Severity: SeverityWarning,
			Message: fmt.Sprintf("Destructive mutation of server-owned state (this.<name>.%s). "+
				"Refetch from the server and reassign the whole value instead of mutating in place.",
				p.method),
		}}
	}

	return nil
}

func checkTemplateStructure(content string) []Finding {
	if compositionPattern.MatchString(content) {
		return nil
	}

	lower := strings.ToLower(content)
	if !strings.Contains(lower, "<html") || !strings.Contains(lower, "</html>") {
		return nil
	}

	return []Finding{{
		Category: CategoryUnwrappedDocument,
		Severity: SeverityWarning,
		Message:  "Component contains full HTML document. Consider breaking into reusable component fragments.",
	}}
}

func containsAny(content string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(content, n) {
			return true
		}
	}
	return false
}
