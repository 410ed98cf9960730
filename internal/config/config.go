// Package config loads settings for the arith command.
package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/goccy/go-yaml"
)

// ErrInvalidConfig is returned when configuration validation fails.
var ErrInvalidConfig = errors.New("invalid configuration")

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config holds the settings of the interactive calculator.
type Config struct {
	// Prompt is printed before reading each expression in interactive mode.
	Prompt string `yaml:"prompt"`
	// Format is the fmt verb used to print results.
	Format string `yaml:"format"`
	// Color is one of auto, always, or never.
	Color string `yaml:"color"`
	// Newlines makes embedded newlines insignificant whitespace.
	Newlines bool `yaml:"newlines"`
}

// file is the on-disk form of Config. Pointers distinguish unset keys from
// zero values.
type file struct {
	Prompt   *string `yaml:"prompt"`
	Format   *string `yaml:"format"`
	Color    *string `yaml:"color"`
	Newlines *bool   `yaml:"newlines"`
}

func (f *file) merge(c *Config) {
	if f.Prompt != nil {
		c.Prompt = *f.Prompt
	}
	if f.Format != nil {
		c.Format = *f.Format
	}
	if f.Color != nil {
		c.Color = *f.Color
	}
	if f.Newlines != nil {
		c.Newlines = *f.Newlines
	}
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Prompt: "Enter expression: ",
		Format: "%g",
		Color:  ColorAuto,
	}
}

// Load reads the configuration at path. A missing file yields the default
// configuration. Fields absent from the file keep their defaults.
func Load(path string) (*Config, error) {
	config := Default()
	if path == "" {
		return config, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return config, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	var f file
	if err := yaml.UnmarshalWithOptions(data, &f, yaml.Strict()); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	f.merge(config)
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// verbRe matches one float formatting verb with optional flags, width, and
// precision.
var verbRe = regexp.MustCompile(`%[-+# 0]*[0-9]*(\.[0-9]*)?[geEfFGv]`)

// Validate checks that the format has exactly one float verb and that the
// color mode is known.
func (c *Config) Validate() error {
	f := strings.ReplaceAll(c.Format, "%%", "")
	if strings.Count(f, "%") != 1 || !verbRe.MatchString(f) {
		return fmt.Errorf("%w: format %q must contain exactly one float verb", ErrInvalidConfig, c.Format)
	}
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("%w: color must be auto, always, or never, not %q", ErrInvalidConfig, c.Color)
	}
	return nil
}
