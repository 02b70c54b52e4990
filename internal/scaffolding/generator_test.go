package scaffolding

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mame7743/zen-temple/internal/config"
	zerrors "github.com/mame7743/zen-temple/internal/errors"
	"github.com/mame7743/zen-temple/internal/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNames(t *testing.T) {
	tests := []struct {
		name   string
		snake  string
		pascal string
	}{
		{"counter", "counter", "Counter"},
		{"user-form", "user_form", "UserForm"},
		{"data_fetch", "data_fetch", "DataFetch"},
		{"my-big_widget", "my_big_widget", "MyBigWidget"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.snake, SnakeName(tt.name))
			assert.Equal(t, tt.pascal, PascalName(tt.name))
		})
	}
}

func TestGenerateComponent(t *testing.T) {
	v := validator.New()

	for _, componentType := range NewGenerator("").ComponentTypes() {
		t.Run(componentType, func(t *testing.T) {
			root := t.TempDir()
			g := NewGenerator(root)

			path, err := g.GenerateComponent("user-widget", componentType, "")
			require.NoError(t, err)
			assert.Equal(t, filepath.Join(root, "templates", "components", "user-widget.html"), path)

			data, err := os.ReadFile(path)
			require.NoError(t, err)
			content := string(data)
			assert.Contains(t, content, `{{define "user_widget"}}`)
			assert.Contains(t, content, `x-data="new UserWidgetState()"`)
			assert.Contains(t, content, "class UserWidgetState")
			assert.NotContains(t, content, "[[")

			result := v.ValidateComponent(path)
			assert.True(t, result.IsValid, "errors: %v", result.Errors)
			assert.Empty(t, result.Warnings)
		})
	}
}

func TestGenerateComponent_Errors(t *testing.T) {
	root := t.TempDir()
	g := NewGenerator(root)

	_, err := g.GenerateComponent("card", "card", "")
	require.NoError(t, err)

	tests := []struct {
		name          string
		componentName string
		componentType string
		code          string
	}{
		{"existing component", "card", "card", zerrors.CodeComponentExists},
		{"unknown type", "other", "carousel", zerrors.CodeUnknownComponentType},
		{"name with slash", "../escape", "basic", zerrors.CodeInvalidName},
		{"name starting with digit", "1st", "basic", zerrors.CodeInvalidName},
		{"empty name", "", "basic", zerrors.CodeInvalidName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := g.GenerateComponent(tt.componentName, tt.componentType, "")
			require.Error(t, err)
			assert.True(t, zerrors.HasCode(err, tt.code), "got %v", err)
		})
	}
}

func TestGenerateComponent_CustomOutputAndDefaultType(t *testing.T) {
	out := filepath.Join(t.TempDir(), "widgets")

	path, err := NewGenerator(t.TempDir()).GenerateComponent("hello", "", out)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(out, "hello.html"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "class HelloState")
	assert.Contains(t, string(data), "Hello from hello!")
}

func TestGenerateProject(t *testing.T) {
	root := t.TempDir()
	g := NewGenerator(root)

	created, err := g.GenerateProject("shop", ProjectOptions{WithServer: true})
	require.NoError(t, err)

	for _, rel := range []string{
		config.FileName,
		"templates/layouts/base.html",
		"templates/index.html",
		"templates/components/counter.html",
		"templates/components/todo.html",
		"templates/components/data_fetch.html",
		"README.md",
		"app/main.go",
		"go.mod",
		".env",
	} {
		path, ok := created[rel]
		require.True(t, ok, "missing %s", rel)
		assert.FileExists(t, path)
	}
	assert.DirExists(t, filepath.Join(root, "shop", "static", "css"))
	assert.DirExists(t, filepath.Join(root, "shop", "static", "js"))

	cfg, err := config.Read(created[config.FileName])
	require.NoError(t, err)
	assert.Equal(t, "shop", cfg.Project.Name)

	base, err := os.ReadFile(created["templates/layouts/base.html"])
	require.NoError(t, err)
	assert.Contains(t, string(base), config.DefaultHTMXURL)
	assert.Contains(t, string(base), `{{template "content" .}}`)

	index, err := os.ReadFile(created["templates/index.html"])
	require.NoError(t, err)
	assert.Contains(t, string(index), `{{template "counter" .}}`)

	gomod, err := os.ReadFile(created["go.mod"])
	require.NoError(t, err)
	assert.Contains(t, string(gomod), "module shop")

	v := validator.New()
	components, err := validator.CollectComponents([]string{filepath.Join(root, "shop", "templates", "components")}, nil)
	require.NoError(t, err)
	require.Len(t, components, 3)
	for _, r := range v.ValidateFiles(components) {
		assert.True(t, r.IsValid, "%s: %v", r.ComponentName, r.Errors)
		assert.Empty(t, r.Warnings, r.ComponentName)
	}

	_, err = g.GenerateProject("shop", ProjectOptions{})
	require.Error(t, err)
	assert.True(t, zerrors.HasCode(err, zerrors.CodeProjectExists))
}

func TestGenerateProject_NoExamples(t *testing.T) {
	root := t.TempDir()

	created, err := NewGenerator(root).GenerateProject("bare", ProjectOptions{NoExamples: true})
	require.NoError(t, err)

	assert.NotContains(t, created, "templates/components/counter.html")
	assert.NotContains(t, created, "app/main.go")

	index, err := os.ReadFile(created["templates/index.html"])
	require.NoError(t, err)
	assert.NotContains(t, string(index), `{{template "counter" .}}`)
	assert.Contains(t, string(index), "zen-temple component")
}

func TestInitProject(t *testing.T) {
	dir := t.TempDir()
	g := NewGenerator(dir)

	path, err := g.InitProject("", "", "views")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, config.FileName), path)

	cfg, err := config.Read(path)
	require.NoError(t, err)
	assert.Equal(t, filepath.Base(dir), cfg.Project.Name)
	assert.Equal(t, []string{"views", "views/components", "views/layouts"}, cfg.Templates.Directories)
	assert.DirExists(t, filepath.Join(dir, "views", "components"))
	assert.DirExists(t, filepath.Join(dir, "views", "layouts"))

	_, err = g.InitProject("", "again", "")
	require.Error(t, err)
	assert.True(t, zerrors.HasCode(err, zerrors.CodeProjectExists))
}
