// SPDX-License-Identifier: MPL-2.0

// Package xdgdirs derives the directories that may contain .desktop files,
// following XDG base-directory conventions plus common extras (Flatpak and
// Snap desktop exports).
package xdgdirs

import (
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// System-wide export directories that are not derivable from XDG variables.
const (
	flatpakSystemExports = "/var/lib/flatpak/exports/share/applications"
	snapDesktopExports   = "/var/lib/snapd/desktop/applications"
)

// Options selects which directory groups ApplicationDirs includes.
type Options struct {
	// NoDefault drops the XDG-derived directories entirely.
	NoDefault bool

	// NoCommonExtras drops the Flatpak and Snap export directories.
	NoCommonExtras bool

	// ExtraDirs are user-provided directories, included verbatim.
	ExtraDirs []string
}

// DataHome returns $XDG_DATA_HOME, defaulting to ~/.local/share. Empty when
// neither the variable nor the home directory is available.
func DataHome() string {
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		slog.Debug("home directory unavailable, skipping XDG data home", "error", err)
		return ""
	}
	return filepath.Join(home, ".local", "share")
}

// DataDirs returns the entries of $XDG_DATA_DIRS, defaulting to
// /usr/local/share and /usr/share. Empty entries are dropped.
func DataDirs() []string {
	raw := os.Getenv("XDG_DATA_DIRS")
	if raw == "" {
		return []string{"/usr/local/share", "/usr/share"}
	}

	var dirs []string
	for _, dir := range strings.Split(raw, ":") {
		if dir != "" {
			dirs = append(dirs, dir)
		}
	}
	return dirs
}

// ApplicationDirs returns the sorted, deduplicated list of directories to
// scan for .desktop files.
//
// Defaults (unless Options.NoDefault):
//   - <data-home>/applications
//   - <each data dir>/applications
//
// Common extras, part of the default group (unless Options.NoCommonExtras):
//   - <data-home>/flatpak/exports/share/applications
//   - /var/lib/flatpak/exports/share/applications
//   - /var/lib/snapd/desktop/applications
//
// Options.NoDefault drops the whole default group, extras included.
// Options.ExtraDirs are always included verbatim. Directories that do not
// exist are kept: the walker treats missing directories as expected.
func ApplicationDirs(opts Options) []string {
	var dirs []string

	if !opts.NoDefault {
		if dataHome := DataHome(); dataHome != "" {
			dirs = append(dirs, filepath.Join(dataHome, "applications"))
			if !opts.NoCommonExtras {
				dirs = append(dirs, filepath.Join(dataHome, "flatpak", "exports", "share", "applications"))
			}
		}

		for _, dir := range DataDirs() {
			dirs = append(dirs, filepath.Join(dir, "applications"))
		}

		if !opts.NoCommonExtras {
			dirs = append(dirs, flatpakSystemExports, snapDesktopExports)
		}
	}

	dirs = append(dirs, opts.ExtraDirs...)

	slices.Sort(dirs)
	dirs = slices.Compact(dirs)

	slog.Debug("collected application dirs to scan", "count", len(dirs))
	return dirs
}
