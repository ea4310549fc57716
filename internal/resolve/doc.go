// SPDX-License-Identifier: MPL-2.0

// Package resolve decides whether the executable referenced by a .desktop
// entry actually exists and is runnable.
//
// It understands the three reference shapes an Exec/TryExec value can take:
// an absolute path, a path relative to the entry's Path= working directory,
// and a bare command resolved through a colon-delimited search path. A
// relative path without a working directory is deliberately treated as
// unresolved rather than resolved against the scanner's own working
// directory.
package resolve
