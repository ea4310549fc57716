// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
)

const (
	// FormatText renders findings as styled human-readable text.
	FormatText OutputFormat = "text"
	// FormatJSON renders findings as a JSON document.
	FormatJSON OutputFormat = "json"
	// FormatYAML renders findings as a YAML document.
	FormatYAML OutputFormat = "yaml"
)

var (
	// ErrInvalidOutputFormat is returned when an OutputFormat value is not recognized.
	ErrInvalidOutputFormat = errors.New("invalid output format")
	// ErrInvalidJobs is returned when the jobs value is negative.
	ErrInvalidJobs = errors.New("invalid jobs value")
)

type (
	// OutputFormat selects how scan findings are rendered.
	OutputFormat string

	// Config holds deskscout configuration. Zero values mean "use the
	// built-in default" for every field.
	Config struct {
		// ExtraDirs are additional directories to scan.
		ExtraDirs []string `mapstructure:"extra_dirs"`

		// NoDefaultDirs disables the XDG-derived default directories.
		NoDefaultDirs bool `mapstructure:"no_default_dirs"`

		// NoCommonExtras disables the Flatpak/Snap export directories.
		NoCommonExtras bool `mapstructure:"no_common_extras"`

		// IncludeHidden scans entries with Hidden=true or NoDisplay=true.
		IncludeHidden bool `mapstructure:"include_hidden"`

		// CheckScriptArgs enables the interpreter script-argument heuristic.
		CheckScriptArgs bool `mapstructure:"check_script_args"`

		// Jobs caps concurrent inspections; 0 means the built-in default.
		Jobs int `mapstructure:"jobs"`

		// OutputFormat is the default rendering format for scan results.
		OutputFormat OutputFormat `mapstructure:"output_format"`
	}
)

// IsValid reports whether the OutputFormat is a recognized value.
func (f OutputFormat) IsValid() bool {
	switch f {
	case FormatText, FormatJSON, FormatYAML:
		return true
	default:
		return false
	}
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		OutputFormat: FormatText,
	}
}

// Validate checks the configuration for values no run could honor.
func (c *Config) Validate() error {
	if !c.OutputFormat.IsValid() {
		return fmt.Errorf("%w: %q (expected text, json, or yaml)", ErrInvalidOutputFormat, c.OutputFormat)
	}
	if c.Jobs < 0 {
		return fmt.Errorf("%w: %d (expected zero or a positive count)", ErrInvalidJobs, c.Jobs)
	}
	return nil
}
