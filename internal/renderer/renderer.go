// Package renderer loads component directories into an html/template set and
// renders components by name.
//
// A component is found by its {{define}} name first, then by its file name,
// so both "user-form" (file user-form.html defining "user_form") and "index"
// (a page without a wrapper) resolve. Rendered components can also be used
// as templ.Component values inside templ layouts.
package renderer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/a-h/templ"
	"github.com/mame7743/zen-temple/internal/config"
	zerrors "github.com/mame7743/zen-temple/internal/errors"
	"github.com/mame7743/zen-temple/internal/logging"
)

const componentExt = ".html"

// TemplateManager holds the parsed template set for a list of directories.
type TemplateManager struct {
	mu     sync.RWMutex
	dirs   []string
	files  []string
	base   *template.Template // never executed, cloned by RenderString
	exec   *template.Template
	logger logging.Logger
}

// Option configures a TemplateManager.
type Option func(*TemplateManager)

// WithLogger sets the logger used while loading directories.
func WithLogger(logger logging.Logger) Option {
	return func(m *TemplateManager) {
		if logger != nil {
			m.logger = logger.WithComponent("renderer")
		}
	}
}

// NewTemplateManager parses every *.html file in dirs. Directories that do not
// exist are skipped.
func NewTemplateManager(dirs []string, opts ...Option) (*TemplateManager, error) {
	m := &TemplateManager{
		dirs:   append([]string(nil), dirs...),
		logger: logging.Nop(),
	}
	for _, opt := range opts {
		opt(m)
	}

	if err := m.Reload(); err != nil {
		return nil, err
	}
	return m, nil
}

// Funcs returns the helper functions available to every template.
func Funcs() template.FuncMap {
	return template.FuncMap{
		"json":    toJSON,
		"default": defaultValue,
	}
}

// AddTemplateDir appends dir to the search list and reloads the set. Adding a
// directory twice is a no-op.
func (m *TemplateManager) AddTemplateDir(dir string) error {
	m.mu.Lock()
	for _, d := range m.dirs {
		if filepath.Clean(d) == filepath.Clean(dir) {
			m.mu.Unlock()
			return nil
		}
	}
	m.dirs = append(m.dirs, dir)
	m.mu.Unlock()

	return m.Reload()
}

// Dirs returns the template directories in search order.
func (m *TemplateManager) Dirs() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]string(nil), m.dirs...)
}

// Reload parses all directories again.
func (m *TemplateManager) Reload() error {
	m.mu.RLock()
	dirs := append([]string(nil), m.dirs...)
	m.mu.RUnlock()

	base := template.New("zen-temple").Funcs(Funcs())
	var files []string

	for _, dir := range dirs {
		matches, err := filepath.Glob(filepath.Join(dir, "*"+componentExt))
		if err != nil {
			return zerrors.NewIOError(zerrors.CodeReadFailed, "bad template directory", err).WithPath(dir)
		}
		if len(matches) == 0 {
			m.logger.Debug(context.Background(), "no templates in directory", "dir", dir)
			continue
		}
		sort.Strings(matches)

		if _, err := base.ParseFiles(matches...); err != nil {
			return zerrors.NewTemplateError(zerrors.CodeRenderFailed, "failed to parse templates", err).WithPath(dir)
		}
		files = append(files, matches...)
	}

	exec, err := base.Clone()
	if err != nil {
		return zerrors.NewTemplateError(zerrors.CodeRenderFailed, "failed to clone templates", err)
	}

	m.mu.Lock()
	m.base = base
	m.exec = exec
	m.files = files
	m.mu.Unlock()

	m.logger.Debug(context.Background(), "templates loaded", "dirs", len(dirs), "files", len(files))
	return nil
}

// ListComponents returns the file names, without extension, of every
// template file in the search directories.
func (m *TemplateManager) ListComponents() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	seen := make(map[string]bool, len(m.files))
	names := make([]string, 0, len(m.files))
	for _, f := range m.files {
		name := strings.TrimSuffix(filepath.Base(f), componentExt)
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// Files maps each component name to the file it was loaded from. When two
// directories hold the same file name the later directory wins.
func (m *TemplateManager) Files() map[string]string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	files := make(map[string]string, len(m.files))
	for _, f := range m.files {
		files[strings.TrimSuffix(filepath.Base(f), componentExt)] = f
	}
	return files
}

// ComponentExists reports whether name resolves to a template.
func (m *TemplateManager) ComponentExists(name string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.lookup(name) != nil
}

// RenderComponent executes the named component with data.
func (m *TemplateManager) RenderComponent(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := m.render(&buf, name, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderString parses src against the loaded set, so it may call any
// defined component, and executes it with data.
func (m *TemplateManager) RenderString(src string, data any) (string, error) {
	m.mu.RLock()
	base := m.base
	m.mu.RUnlock()

	set, err := base.Clone()
	if err != nil {
		return "", zerrors.NewTemplateError(zerrors.CodeRenderFailed, "failed to clone templates", err)
	}
	tmpl, err := set.New("inline").Parse(src)
	if err != nil {
		return "", zerrors.NewTemplateError(zerrors.CodeRenderFailed, "failed to parse template string", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, normalizeData(data)); err != nil {
		return "", zerrors.NewTemplateError(zerrors.CodeRenderFailed, "failed to render template string", err)
	}
	return buf.String(), nil
}

// Component adapts the named component to templ.Component.
func (m *TemplateManager) Component(name string, data any) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		return m.render(w, name, data)
	})
}

// RenderPage renders the named component inside a standalone preview page
// that loads the CDN scripts.
func (m *TemplateManager) RenderPage(name string, data any, cdn config.CDNConfig) (string, error) {
	body, err := m.RenderComponent(name, data)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	err = previewPage.Execute(&buf, struct {
		Title string
		CDN   config.CDNConfig
		Body  template.HTML
	}{
		Title: name,
		CDN:   cdn,
		Body:  template.HTML(body),
	})
	if err != nil {
		return "", zerrors.NewTemplateError(zerrors.CodeRenderFailed, "failed to render preview page", err).WithComponent(name)
	}
	return buf.String(), nil
}

func (m *TemplateManager) render(w io.Writer, name string, data any) error {
	if err := validateComponentName(name); err != nil {
		return zerrors.NewValidationError(zerrors.CodeInvalidName, err.Error()).WithComponent(name)
	}

	m.mu.RLock()
	tmpl := m.lookup(name)
	m.mu.RUnlock()

	if tmpl == nil {
		return zerrors.NewTemplateError(zerrors.CodeTemplateNotFound, "component not found", nil).WithComponent(name)
	}

	if err := tmpl.Execute(w, normalizeData(data)); err != nil {
		return zerrors.NewTemplateError(zerrors.CodeRenderFailed, "failed to render component", err).WithComponent(name)
	}
	return nil
}

// lookup resolves name by fragment name, then snake-case fragment name, then
// file name. A trailing .html is ignored. Callers hold m.mu.
func (m *TemplateManager) lookup(name string) *template.Template {
	if m.exec == nil {
		return nil
	}
	stem := strings.TrimSuffix(name, componentExt)
	candidates := []string{stem, strings.ReplaceAll(stem, "-", "_"), stem + componentExt}
	for _, c := range candidates {
		if t := m.exec.Lookup(c); t != nil && t.Tree != nil {
			return t
		}
	}
	return nil
}

func normalizeData(data any) any {
	if data == nil {
		return map[string]any{}
	}
	return data
}

// validateComponentName rejects names that could address files outside the
// template directories.
func validateComponentName(name string) error {
	clean := filepath.Clean(name)

	if name == "" || clean == "." {
		return fmt.Errorf("empty or invalid component name: %q", name)
	}
	if strings.Contains(clean, "..") {
		return fmt.Errorf("path traversal attempt detected: %s", name)
	}
	if filepath.IsAbs(clean) {
		return fmt.Errorf("absolute path not allowed: %s", name)
	}
	if strings.ContainsAny(clean, `/\`) || strings.ContainsRune(clean, os.PathSeparator) {
		return fmt.Errorf("path separators not allowed in component name: %s", name)
	}
	return nil
}

func toJSON(v any) (template.JS, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return template.JS(b), nil
}

// defaultValue returns def when v is nil or the zero value of its type.
func defaultValue(def, v any) any {
	if v == nil {
		return def
	}
	rv := reflect.ValueOf(v)
	if rv.IsZero() {
		return def
	}
	switch rv.Kind() {
	case reflect.Slice, reflect.Map, reflect.Array:
		if rv.Len() == 0 {
			return def
		}
	}
	return v
}

var previewPage = template.Must(template.New("preview").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Title}} - zen-temple preview</title>
    <script src="{{.CDN.Tailwind}}"></script>
    <script src="{{.CDN.HTMX}}"></script>
    <script defer src="{{.CDN.Alpine}}"></script>
</head>
<body class="bg-gray-50 p-8">
    <div class="max-w-4xl mx-auto">
        <div class="bg-white rounded-lg shadow-lg p-6 mb-6">
            <h1 class="text-2xl font-bold text-gray-800 mb-2">Preview: {{.Title}}</h1>
        </div>
        <div class="bg-white rounded-lg shadow-lg p-6">
            {{.Body}}
        </div>
    </div>
</body>
</html>
`))
