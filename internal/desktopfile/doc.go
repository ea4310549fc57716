// SPDX-License-Identifier: MPL-2.0

// Package desktopfile provides minimal parsing helpers for .desktop files.
//
// This is deliberately not a spec-complete freedesktop.org parser: locale
// suffixes, multi-value lists, and escape sequences are out of scope. It
// extracts just enough from the [Desktop Entry] section to decide whether an
// entry's declared executable can run.
package desktopfile
