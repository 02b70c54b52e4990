package report

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/mame7743/zen-temple/internal/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResults() []*validator.ValidationResult {
	v := validator.New()
	return []*validator.ValidationResult{
		v.ValidateString(`{{define "ok"}}<div x-data="new OkState()" x-text="msg"></div>{{end}}`, "ok"),
		v.ValidateString(`<div onclick="go()"></div>`, "broken"),
		v.ValidateString(`<div x-data="new S()"></div>`, "loose"),
	}
}

func TestSummarize(t *testing.T) {
	results := sampleResults()

	tests := []struct {
		name    string
		strict  bool
		valid   int
		invalid int
	}{
		{"lenient", false, 2, 1},
		{"strict", true, 1, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Summarize(results, tt.strict)
			assert.Equal(t, 3, s.Total)
			assert.Equal(t, tt.valid, s.Valid)
			assert.Equal(t, tt.invalid, s.Invalid)
			assert.Equal(t, 3, s.Warnings)
		})
	}
}

func TestText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Text(&buf, sampleResults(), TextOptions{}))

	out := buf.String()
	assert.Contains(t, out, "ok")
	assert.Contains(t, out, "valid")
	assert.Contains(t, out, "broken")
	assert.Contains(t, out, "has issues")
	assert.Contains(t, out, "Errors:")
	assert.Contains(t, out, "Inline event handler detected (onclick=)")
	assert.Contains(t, out, "Warnings:")
	assert.Contains(t, out, "Summary: 2/3 components valid")
}

func TestText_Quiet(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Text(&buf, sampleResults(), TextOptions{Quiet: true, Strict: true}))

	out := buf.String()
	assert.NotContains(t, out, "✓ ")
	assert.Contains(t, out, "broken")
	assert.Contains(t, out, "Summary: 1/3 components valid")
}

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, JSON(&buf, sampleResults(), false))

	var decoded struct {
		Total    int                      `json:"total"`
		Valid    int                      `json:"valid"`
		Invalid  int                      `json:"invalid"`
		Warnings int                      `json:"warnings"`
		Results  []map[string]interface{} `json:"results"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))

	assert.Equal(t, 3, decoded.Total)
	assert.Equal(t, 2, decoded.Valid)
	assert.Equal(t, 1, decoded.Invalid)
	require.Len(t, decoded.Results, 3)
	assert.Equal(t, "broken", decoded.Results[1]["component_name"])
	assert.Equal(t, false, decoded.Results[1]["is_valid"])
}

func TestJSON_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, JSON(&buf, nil, false))
	assert.Contains(t, buf.String(), `"results": []`)
}
