package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "arith.yaml")
	err := os.WriteFile(path, []byte(content), 0o600)
	assert.NoError(t, err)
	return path
}

func TestLoad_Defaults(t *testing.T) {
	config, err := Load("")
	assert.NoError(t, err)
	assert.Equal(t, Default(), config)

	config, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.NoError(t, err)
	assert.Equal(t, Default(), config)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
prompt: "> "
format: "%.3f"
color: never
newlines: true
`)
	config, err := Load(path)
	assert.NoError(t, err)
	assert.Equal(t, &Config{Prompt: "> ", Format: "%.3f", Color: ColorNever, Newlines: true}, config)
}

func TestLoad_PartialKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "color: always\n")
	config, err := Load(path)
	assert.NoError(t, err)
	assert.Equal(t, "Enter expression: ", config.Prompt)
	assert.Equal(t, "%g", config.Format)
	assert.Equal(t, ColorAlways, config.Color)
	assert.False(t, config.Newlines)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		invalid bool
	}{
		{"unknown field", "precision: 10\n", false},
		{"bad yaml", "prompt: [\n", false},
		{"bad color", "color: sometimes\n", true},
		{"no verb", "format: result\n", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.Error(t, err)
			assert.Equal(t, tt.invalid, errors.Is(err, ErrInvalidConfig))
		})
	}
}

func TestValidate_Format(t *testing.T) {
	tests := []struct {
		format string
		valid  bool
	}{
		{"%g", true},
		{"%v", true},
		{"%.10e", true},
		{"%+8.2f", true},
		{"%F", true},
		{"%.f", true},
		{"%5.G", true},
		{"= %G", true},
		{"%g%%", true},
		{"%d", false},
		{"%g %g", false},
		{"%s", false},
		{"%%", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			config := Default()
			config.Format = tt.format
			err := config.Validate()
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.IsError(t, err, ErrInvalidConfig)
			}
		})
	}
}
