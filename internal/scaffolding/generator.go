// Package scaffolding creates zen-temple projects and component skeletons.
//
// Every generated component is an html/template fragment wrapped in
// {{define}} with its state in a class referenced from x-data, so a freshly
// generated project validates without findings.
package scaffolding

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"text/template"

	"github.com/mame7743/zen-temple/internal/config"
	zerrors "github.com/mame7743/zen-temple/internal/errors"
	"github.com/mame7743/zen-temple/internal/logging"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultComponentType is used when no --type is given.
const DefaultComponentType = "basic"

var namePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_-]*$`)

// Generator writes scaffold files below a root directory.
type Generator struct {
	root       string
	components map[string]ComponentTemplate
	logger     logging.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithLogger sets the logger for created files.
func WithLogger(logger logging.Logger) Option {
	return func(g *Generator) {
		if logger != nil {
			g.logger = logger.WithComponent("scaffold")
		}
	}
}

// NewGenerator creates a generator rooted at root. An empty root means the
// current directory.
func NewGenerator(root string, opts ...Option) *Generator {
	if root == "" {
		root = "."
	}
	g := &Generator{
		root:       root,
		components: BuiltinComponents(),
		logger:     logging.Nop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// ProjectOptions controls GenerateProject.
type ProjectOptions struct {
	// NoExamples skips the counter, todo and data_fetch components.
	NoExamples bool
	// WithServer adds a Go development server under app/.
	WithServer bool
}

type scaffoldFile struct {
	rel     string
	content string
}

// ComponentTypes lists the built-in component types in sorted order.
func (g *Generator) ComponentTypes() []string {
	types := make([]string, 0, len(g.components))
	for name := range g.components {
		types = append(types, name)
	}
	sort.Strings(types)
	return types
}

// GenerateProject creates a new project directory named name below the root.
// The returned map is keyed by the path relative to the project directory.
func (g *Generator) GenerateProject(name string, opts ProjectOptions) (map[string]string, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}

	projectDir := filepath.Join(g.root, name)
	configPath := filepath.Join(projectDir, config.FileName)
	if _, err := os.Stat(configPath); err == nil {
		return nil, zerrors.NewValidationError(zerrors.CodeProjectExists,
			"project already exists").WithPath(projectDir)
	}

	created := make(map[string]string)

	dirs := []string{
		"templates/components",
		"templates/layouts",
		"static/css",
		"static/js",
	}
	if opts.WithServer {
		dirs = append(dirs, "app")
	}
	for _, dir := range dirs {
		if err := mkdir(filepath.Join(projectDir, filepath.FromSlash(dir))); err != nil {
			return nil, err
		}
	}

	cfg := config.Default(name)
	if err := config.Write(configPath, cfg); err != nil {
		return nil, err
	}
	created[config.FileName] = configPath

	ctx := TemplateContext{
		Name:        name,
		Snake:       SnakeName(name),
		Pascal:      PascalName(name),
		ProjectName: name,
		ModulePath:  name,
		HTMXURL:     cfg.CDN.HTMX,
		AlpineURL:   cfg.CDN.Alpine,
		TailwindURL: cfg.CDN.Tailwind,
		WithServer:  opts.WithServer,
		WithExample: !opts.NoExamples,
	}

	files := []scaffoldFile{
		{"templates/layouts/base.html", baseLayout},
		{"templates/index.html", indexPage},
		{"README.md", readme},
	}
	if !opts.NoExamples {
		files = append(files,
			scaffoldFile{"templates/components/counter.html", counterExample},
			scaffoldFile{"templates/components/todo.html", todoExample},
			scaffoldFile{"templates/components/data_fetch.html", dataFetchExample},
		)
	}
	if opts.WithServer {
		files = append(files,
			scaffoldFile{"app/main.go", serverMain},
			scaffoldFile{"go.mod", serverGoMod},
			scaffoldFile{".env", serverEnv},
		)
	}

	for _, f := range files {
		path := filepath.Join(projectDir, filepath.FromSlash(f.rel))
		if err := g.generateFile(path, f.content, ctx); err != nil {
			return nil, err
		}
		created[f.rel] = path
	}

	g.logger.Info(context.Background(), "project created",
		"name", name, "path", projectDir, "files", len(created))
	return created, nil
}

// GenerateComponent writes a component skeleton of componentType into
// outputDir and returns the file path. An empty outputDir means
// templates/components below the root. Existing files are never overwritten.
func (g *Generator) GenerateComponent(name, componentType, outputDir string) (string, error) {
	if err := validateName(name); err != nil {
		return "", err
	}
	if componentType == "" {
		componentType = DefaultComponentType
	}
	tmpl, ok := g.components[componentType]
	if !ok {
		return "", zerrors.NewValidationError(zerrors.CodeUnknownComponentType,
			"unknown component type "+componentType+" (available: "+strings.Join(g.ComponentTypes(), ", ")+")")
	}

	if outputDir == "" {
		outputDir = filepath.Join(g.root, "templates", "components")
	}
	if err := mkdir(outputDir); err != nil {
		return "", err
	}

	path := filepath.Join(outputDir, name+".html")
	if _, err := os.Stat(path); err == nil {
		return "", zerrors.NewValidationError(zerrors.CodeComponentExists,
			"component already exists").WithComponent(name).WithPath(path)
	}

	ctx := TemplateContext{
		Name:   name,
		Snake:  SnakeName(name),
		Pascal: PascalName(name),
	}
	if err := g.generateFile(path, tmpl.Content, ctx); err != nil {
		return "", err
	}

	g.logger.Info(context.Background(), "component created",
		"name", name, "type", componentType, "path", path)
	return path, nil
}

// InitProject writes zen-temple.yaml into dir and creates the template
// directories it names. An empty projectName uses the directory name.
func (g *Generator) InitProject(dir, projectName, templateDir string) (string, error) {
	if dir == "" {
		dir = g.root
	}
	if templateDir == "" {
		templateDir = "templates"
	}
	if projectName == "" {
		abs, err := filepath.Abs(dir)
		if err != nil {
			return "", zerrors.NewIOError(zerrors.CodeReadFailed, "failed to resolve directory", err).WithPath(dir)
		}
		projectName = filepath.Base(abs)
	}

	configPath := filepath.Join(dir, config.FileName)
	if _, err := os.Stat(configPath); err == nil {
		return "", zerrors.NewValidationError(zerrors.CodeProjectExists,
			"configuration already exists").WithPath(configPath)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return "", zerrors.NewIOError(zerrors.CodeReadFailed, "failed to stat configuration", err).WithPath(configPath)
	}

	cfg := config.Default(projectName)
	cfg.Templates.Directories = []string{
		templateDir,
		filepath.ToSlash(filepath.Join(templateDir, "components")),
		filepath.ToSlash(filepath.Join(templateDir, "layouts")),
	}
	for _, d := range cfg.Templates.Directories {
		if err := mkdir(filepath.Join(dir, filepath.FromSlash(d))); err != nil {
			return "", err
		}
	}

	if err := config.Write(configPath, cfg); err != nil {
		return "", err
	}

	g.logger.Info(context.Background(), "project initialized", "name", projectName, "path", configPath)
	return configPath, nil
}

// generateFile executes a scaffold template and writes the result to path.
func (g *Generator) generateFile(path, content string, ctx TemplateContext) error {
	tmpl, err := template.New(filepath.Base(path)).Delims("[[", "]]").Parse(content)
	if err != nil {
		return zerrors.NewTemplateError(zerrors.CodeRenderFailed, "failed to parse scaffold template", err).WithPath(path)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, ctx); err != nil {
		return zerrors.NewTemplateError(zerrors.CodeRenderFailed, "failed to execute scaffold template", err).WithPath(path)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return zerrors.NewIOError(zerrors.CodeWriteFailed, "failed to write file", err).WithPath(path)
	}

	g.logger.Debug(context.Background(), "file written", "path", path)
	return nil
}

func mkdir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return zerrors.NewIOError(zerrors.CodeWriteFailed, "failed to create directory", err).WithPath(dir)
	}
	return nil
}

func validateName(name string) error {
	if !namePattern.MatchString(name) {
		return zerrors.NewValidationError(zerrors.CodeInvalidName,
			"name must start with a letter and contain only letters, digits, '-' or '_'").WithComponent(name)
	}
	return nil
}

// SnakeName converts a component name to its fragment name: "user-form"
// becomes "user_form".
func SnakeName(name string) string {
	return strings.ReplaceAll(name, "-", "_")
}

// PascalName converts a component name to its state class prefix:
// "user-form" becomes "UserForm".
func PascalName(name string) string {
	caser := cases.Title(language.English)
	parts := strings.FieldsFunc(name, func(r rune) bool { return r == '-' || r == '_' })
	var b strings.Builder
	for _, p := range parts {
		b.WriteString(caser.String(p))
	}
	return b.String()
}
