// SPDX-License-Identifier: MPL-2.0

// Package testutil provides helper functions for tests that handle errors
// appropriately, reducing boilerplate and ensuring consistent error handling.
//
// Common helpers include environment variable management (MustSetenv,
// MustUnsetenv), directory operations (MustMkdirAll), and fixture writers
// for .desktop files and fake executables (WriteDesktopFile,
// WriteExecutable).
package testutil
