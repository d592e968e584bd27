// pkg/ui/format_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: Environment variables
// PURPOSE: Test output format parsing and detection

package ui_test

import (
	"os"
	"testing"

	"github.com/arthur-debert/tint/pkg/ui"
	"github.com/stretchr/testify/assert"
)

func TestFormatString(t *testing.T) {
	assert.Equal(t, "auto", ui.FormatAuto.String())
	assert.Equal(t, "term", ui.FormatTerminal.String())
	assert.Equal(t, "text", ui.FormatText.String())
	assert.Equal(t, "toml", ui.FormatTOML.String())
	assert.Equal(t, "yaml", ui.FormatYAML.String())
	assert.Equal(t, "unknown", ui.Format(999).String())
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected ui.Format
		wantErr  bool
	}{
		{input: "", expected: ui.FormatAuto},
		{input: "auto", expected: ui.FormatAuto},
		{input: "TERM", expected: ui.FormatTerminal},
		{input: "terminal", expected: ui.FormatTerminal},
		{input: "plain", expected: ui.FormatText},
		{input: "toml", expected: ui.FormatTOML},
		{input: "yml", expected: ui.FormatYAML},
		{input: "json", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ui.ParseFormat(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestDetectFormat(t *testing.T) {
	t.Run("NO_COLOR forces text", func(t *testing.T) {
		t.Setenv("NO_COLOR", "1")
		assert.Equal(t, ui.FormatText, ui.DetectFormat(os.Stdout))
	})

	t.Run("non terminal file is text", func(t *testing.T) {
		t.Setenv("NO_COLOR", "")
		f, err := os.CreateTemp(t.TempDir(), "out")
		if assert.NoError(t, err) {
			defer func() { _ = f.Close() }()
			assert.Equal(t, ui.FormatText, ui.DetectFormat(f))
		}
	})
}

func TestResolve(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.Equal(t, ui.FormatText, ui.Resolve(ui.FormatAuto, os.Stdout))
	assert.Equal(t, ui.FormatYAML, ui.Resolve(ui.FormatYAML, os.Stdout))
}
