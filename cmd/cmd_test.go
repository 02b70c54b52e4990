package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/mame7743/zen-temple/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testCommand returns a command whose output is captured.
func testCommand() (*cobra.Command, *bytes.Buffer) {
	var buf bytes.Buffer
	c := &cobra.Command{}
	c.SetOut(&buf)
	c.SetErr(&buf)
	return c, &buf
}

func inTempProject(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
	viper.Reset()
	t.Cleanup(viper.Reset)
	return dir
}

func writeComponent(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

const goodComponent = `{{define "good"}}
<div x-data="new GoodState()"><span x-text="msg"></span></div>
<script>class GoodState { constructor() { this.msg = 'hi'; } }</script>
{{end}}
`

const badComponent = `<div onclick="go()"><script>alert(1)</script></div>`

const warnComponent = `<div x-data="new WarnState()" x-text="msg"></div>`

func TestNewCommand(t *testing.T) {
	dir := inTempProject(t)

	newPath = dir
	newNoExamples = false
	newWithServer = true

	c, out := testCommand()
	require.NoError(t, runNew(c, []string{"shop"}))

	assert.FileExists(t, filepath.Join(dir, "shop", config.FileName))
	assert.FileExists(t, filepath.Join(dir, "shop", "app", "main.go"))
	assert.Contains(t, out.String(), "Created project shop")
	assert.Contains(t, out.String(), "templates/components/counter.html")
	assert.Contains(t, out.String(), "go run ./app")

	err := runNew(c, []string{"shop"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestComponentCommand(t *testing.T) {
	dir := inTempProject(t)

	componentType = "card"
	componentOutput = ""

	c, out := testCommand()
	require.NoError(t, runComponent(c, []string{"profile-card"}))

	path := filepath.Join(dir, "templates", "components", "profile-card.html")
	assert.FileExists(t, path)
	assert.Contains(t, out.String(), `{{template "profile_card" .}}`)

	require.Error(t, runComponent(c, []string{"profile-card"}))
}

func TestComponentCommand_ConfiguredDirectory(t *testing.T) {
	dir := inTempProject(t)
	viper.Set("templates.directories", []string{"views", "views/components"})

	componentType = "basic"
	componentOutput = ""

	c, _ := testCommand()
	require.NoError(t, runComponent(c, []string{"hello"}))
	assert.FileExists(t, filepath.Join(dir, "views", "components", "hello.html"))
}

func TestInitCommand(t *testing.T) {
	dir := inTempProject(t)

	initProjectName = "blog"
	initTemplateDir = "templates"

	c, out := testCommand()
	require.NoError(t, runInit(c, nil))

	assert.Contains(t, out.String(), config.FileName)
	assert.DirExists(t, filepath.Join(dir, "templates", "components"))

	cfg, err := config.Read(filepath.Join(dir, config.FileName))
	require.NoError(t, err)
	assert.Equal(t, "blog", cfg.Project.Name)

	require.Error(t, runInit(c, nil))
}

func TestValidateCommand(t *testing.T) {
	tests := []struct {
		name      string
		files     map[string]string
		strict    bool
		format    string
		expectErr bool
		contains  []string
	}{
		{
			name:     "valid component",
			files:    map[string]string{"good.html": goodComponent},
			format:   "text",
			contains: []string{"good", "Summary: 1/1 components valid"},
		},
		{
			name:      "errors fail",
			files:     map[string]string{"good.html": goodComponent, "bad.html": badComponent},
			format:    "text",
			expectErr: true,
			contains:  []string{"bad", "Inline script detected", "Summary: 1/2 components valid"},
		},
		{
			name:     "warnings pass without strict",
			files:    map[string]string{"warn.html": warnComponent},
			format:   "text",
			contains: []string{"Warnings:", "Summary: 1/1 components valid"},
		},
		{
			name:      "warnings fail with strict",
			files:     map[string]string{"warn.html": warnComponent},
			strict:    true,
			format:    "text",
			expectErr: true,
			contains:  []string{"Summary: 0/1 components valid"},
		},
		{
			name:      "json output",
			files:     map[string]string{"bad.html": badComponent},
			format:    "json",
			expectErr: true,
			contains:  []string{`"invalid": 1`, `"component_name": "bad"`},
		},
		{
			name:     "empty directory",
			files:    map[string]string{},
			format:   "text",
			contains: []string{"No component files found."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := inTempProject(t)
			for name, content := range tt.files {
				writeComponent(t, filepath.Join(dir, "templates", name), content)
			}
			require.NoError(t, os.MkdirAll(filepath.Join(dir, "templates"), 0o755))

			validateFormat = tt.format
			validateStrict = tt.strict
			validateWatch = false
			validateQuiet = false

			c, out := testCommand()
			err := runValidate(c, nil)
			if tt.expectErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrValidationFailed)
			} else {
				require.NoError(t, err)
			}
			for _, s := range tt.contains {
				assert.Contains(t, out.String(), s)
			}
		})
	}
}

func TestValidateCommand_MissingFile(t *testing.T) {
	inTempProject(t)

	validateFormat = "text"
	validateStrict = false
	validateWatch = false

	c, out := testCommand()
	err := runValidate(c, []string{"nope.html"})
	require.ErrorIs(t, err, ErrValidationFailed)
	assert.Contains(t, out.String(), "Component file not found: nope.html")
}

func TestValidateCommand_StrictFromConfig(t *testing.T) {
	dir := inTempProject(t)
	writeComponent(t, filepath.Join(dir, "templates", "warn.html"), warnComponent)
	viper.Set("validation.strict", true)

	validateFormat = "text"
	validateStrict = false
	validateWatch = false

	c, _ := testCommand()
	assert.ErrorIs(t, runValidate(c, nil), ErrValidationFailed)
}

func TestValidateCommand_GeneratedProject(t *testing.T) {
	dir := inTempProject(t)

	newPath = dir
	newNoExamples = false
	newWithServer = false
	c, _ := testCommand()
	require.NoError(t, runNew(c, []string{"site"}))

	validateFormat = "text"
	validateStrict = true
	validateWatch = false

	c, out := testCommand()
	require.NoError(t, runValidate(c, []string{filepath.Join(dir, "site", "templates", "components")}))
	assert.Contains(t, out.String(), "Summary: 3/3 components valid")
}

func TestListCommand(t *testing.T) {
	dir := inTempProject(t)
	writeComponent(t, filepath.Join(dir, "templates", "good.html"), goodComponent)
	writeComponent(t, filepath.Join(dir, "templates", "warn.html"), warnComponent)

	listTemplateDirs = nil

	listFormat = "table"
	c, out := testCommand()
	require.NoError(t, runList(c, nil))
	assert.Contains(t, out.String(), "NAME")
	assert.Contains(t, out.String(), "Total: 2 components")

	listFormat = "json"
	c, out = testCommand()
	require.NoError(t, runList(c, nil))

	var entries []ComponentEntry
	require.NoError(t, json.Unmarshal(out.Bytes(), &entries))
	require.Len(t, entries, 2)
	assert.Equal(t, "good", entries[0].Name)
	assert.Equal(t, filepath.Join("templates", "good.html"), entries[0].Path)

	listFormat = "yaml"
	c, out = testCommand()
	require.NoError(t, runList(c, nil))
	assert.Contains(t, out.String(), "- name: good")
}

func TestListCommand_Empty(t *testing.T) {
	inTempProject(t)

	listTemplateDirs = []string{"nowhere"}
	listFormat = "table"
	t.Cleanup(func() { listTemplateDirs = nil })

	c, out := testCommand()
	require.NoError(t, runList(c, nil))
	assert.Contains(t, out.String(), "No components found.")
}

func TestRenderCommand(t *testing.T) {
	dir := inTempProject(t)
	writeComponent(t, filepath.Join(dir, "templates", "greeting.html"),
		`{{define "greeting"}}<p>Hello, {{default "world" .name}}!</p>{{end}}`)
	writeComponent(t, filepath.Join(dir, "data.yaml"), "name: yaml\n")

	tests := []struct {
		name     string
		data     string
		page     bool
		expected string
	}{
		{"no data", "", false, "<p>Hello, world!</p>"},
		{"inline json", `{"name": "json"}`, false, "<p>Hello, json!</p>"},
		{"yaml file", "@data.yaml", false, "<p>Hello, yaml!</p>"},
		{"preview page", "", true, "<!DOCTYPE html>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			renderData = tt.data
			renderTemplateDirs = nil
			renderPage = tt.page

			c, out := testCommand()
			require.NoError(t, runRender(c, []string{"greeting"}))
			assert.Contains(t, out.String(), tt.expected)
		})
	}

	renderData = ""
	renderPage = false
	c, _ := testCommand()
	assert.Error(t, runRender(c, []string{"missing"}))
}

func TestPhilosophyCommand(t *testing.T) {
	inTempProject(t)

	c, out := testCommand()
	require.NoError(t, runPhilosophy(c, nil))
	for _, p := range config.Principles {
		assert.Contains(t, out.String(), p)
	}
}

func TestVersionCommand(t *testing.T) {
	tests := []struct {
		format   string
		short    bool
		contains string
	}{
		{"text", false, "Platform:"},
		{"text", true, ""},
		{"json", false, `"go_version"`},
		{"yaml", false, "go_version:"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			versionFormat = tt.format
			versionShort = tt.short

			c, out := testCommand()
			require.NoError(t, runVersionCommand(c, nil))
			assert.NotEmpty(t, out.String())
			assert.Contains(t, out.String(), tt.contains)
		})
	}
}
