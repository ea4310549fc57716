// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"deskscout-cli/internal/issue"
	"deskscout-cli/internal/testutil"
)

// withConfigFile points Load at a config file with the given content and
// returns a cleanup function.
func withConfigFile(t *testing.T, content string) func() {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "deskscout.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	SetConfigFilePathOverride(path)
	return func() { SetConfigFilePathOverride("") }
}

func TestLoad_Defaults(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("default-location test relies on XDG_CONFIG_HOME")
	}
	// Point the default config location at an empty directory.
	restore := testutil.MustSetenv(t, "XDG_CONFIG_HOME", t.TempDir())
	defer restore()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load with no config file should use defaults, got %v", err)
	}
	if cfg.OutputFormat != FormatText {
		t.Errorf("OutputFormat = %q, want text", cfg.OutputFormat)
	}
	if cfg.Jobs != 0 || cfg.IncludeHidden || cfg.NoDefaultDirs {
		t.Errorf("unexpected non-default values: %+v", cfg)
	}
}

func TestLoad_FromFile(t *testing.T) {
	cleanup := withConfigFile(t, `
include_hidden: true
check_script_args: true
jobs: 12
output_format: json
extra_dirs:
  - /opt/apps
no_common_extras: true
`)
	defer cleanup()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !cfg.IncludeHidden || !cfg.CheckScriptArgs || !cfg.NoCommonExtras {
		t.Errorf("boolean fields not loaded: %+v", cfg)
	}
	if cfg.Jobs != 12 {
		t.Errorf("Jobs = %d, want 12", cfg.Jobs)
	}
	if cfg.OutputFormat != FormatJSON {
		t.Errorf("OutputFormat = %q, want json", cfg.OutputFormat)
	}
	if len(cfg.ExtraDirs) != 1 || cfg.ExtraDirs[0] != "/opt/apps" {
		t.Errorf("ExtraDirs = %v, want [/opt/apps]", cfg.ExtraDirs)
	}
}

func TestLoad_InvalidFormatRejected(t *testing.T) {
	cleanup := withConfigFile(t, "output_format: xml\n")
	defer cleanup()

	_, err := Load()
	if !errors.Is(err, ErrInvalidOutputFormat) {
		t.Errorf("err = %v, want ErrInvalidOutputFormat", err)
	}
}

func TestLoad_NegativeJobsRejected(t *testing.T) {
	cleanup := withConfigFile(t, "jobs: -2\n")
	defer cleanup()

	_, err := Load()
	if !errors.Is(err, ErrInvalidJobs) {
		t.Errorf("err = %v, want ErrInvalidJobs", err)
	}
}

func TestLoad_MissingOverrideFileIsActionable(t *testing.T) {
	SetConfigFilePathOverride(filepath.Join(t.TempDir(), "absent.yaml"))
	defer SetConfigFilePathOverride("")

	_, err := Load()
	if err == nil {
		t.Fatal("Load with a missing explicit config file must fail")
	}
	var ae *issue.ActionableError
	if !errors.As(err, &ae) {
		t.Errorf("err = %v, want *issue.ActionableError", err)
	}
}

func TestLoad_MalformedYAML(t *testing.T) {
	cleanup := withConfigFile(t, "include_hidden: [unclosed\n")
	defer cleanup()

	if _, err := Load(); err == nil {
		t.Error("malformed YAML must surface an error")
	}
}

func TestConfigFilePath_Override(t *testing.T) {
	SetConfigFilePathOverride("/tmp/custom.yaml")
	defer SetConfigFilePathOverride("")

	path, err := ConfigFilePath()
	if err != nil {
		t.Fatalf("ConfigFilePath returned error: %v", err)
	}
	if path != "/tmp/custom.yaml" {
		t.Errorf("ConfigFilePath = %q, want the override", path)
	}
}

func TestConfigDir_Linux(t *testing.T) {
	if runtime.GOOS == "windows" || runtime.GOOS == "darwin" {
		t.Skip("XDG convention applies to Linux and others")
	}
	restore := testutil.MustSetenv(t, "XDG_CONFIG_HOME", "/custom/config")
	defer restore()

	dir, err := ConfigDir()
	if err != nil {
		t.Fatalf("ConfigDir returned error: %v", err)
	}
	if dir != filepath.Join("/custom/config", AppName) {
		t.Errorf("ConfigDir = %q, want under /custom/config", dir)
	}
}
