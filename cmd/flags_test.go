package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateFormat(t *testing.T) {
	allowed := []string{"table", "json", "yaml"}

	tests := []struct {
		format  string
		wantErr bool
		suggest string
	}{
		{"json", false, ""},
		{"jsn", true, `did you mean "json"`},
		{"YAML", true, `did you mean "yaml"`},
		{"csv", true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			err := ValidateFormat(tt.format, allowed)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), "must be one of: table, json, yaml")
			if tt.suggest != "" {
				assert.Contains(t, err.Error(), tt.suggest)
			} else {
				assert.NotContains(t, err.Error(), "did you mean")
			}
		})
	}
}

func TestAddFlagValidation(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	var format string
	fs.StringVar(&format, "format", "text", "")

	AddFlagValidation(fs, "format", func(v string) error {
		return ValidateFormat(v, []string{"text", "json"})
	})
	AddFlagValidation(fs, "missing", nil)

	require.NoError(t, fs.Parse([]string{"--format", "json"}))
	assert.Equal(t, "json", format)

	assert.Error(t, fs.Parse([]string{"--format", "xml"}))
	assert.Equal(t, "json", format)
}

func TestParseData(t *testing.T) {
	dir := t.TempDir()
	jsonFile := filepath.Join(dir, "d.json")
	yamlFile := filepath.Join(dir, "d.yml")
	require.NoError(t, os.WriteFile(jsonFile, []byte(`{"a": 1}`), 0o644))
	require.NoError(t, os.WriteFile(yamlFile, []byte("a: 1\nitems: [x, y]\n"), 0o644))

	data, err := ParseData("")
	require.NoError(t, err)
	assert.Empty(t, data)

	data, err = ParseData(`{"name": "zen"}`)
	require.NoError(t, err)
	assert.Equal(t, "zen", data["name"])

	data, err = ParseData("@" + jsonFile)
	require.NoError(t, err)
	assert.Equal(t, float64(1), data["a"])

	data, err = ParseData("@" + yamlFile)
	require.NoError(t, err)
	assert.Equal(t, 1, data["a"])
	assert.Equal(t, []interface{}{"x", "y"}, data["items"])

	_, err = ParseData("{not json")
	assert.Error(t, err)

	_, err = ParseData("@" + filepath.Join(dir, "absent.json"))
	assert.Error(t, err)
}
