// SPDX-License-Identifier: MPL-2.0

// Package scan discovers .desktop files and inspects them concurrently.
//
// This package intentionally combines two related concerns:
//   - File discovery: walking application directories for .desktop files
//   - Inspection: deciding per file whether its declared executable runs
//
// These concerns are tightly coupled because inspection consumes exactly the
// deduplicated file list discovery produces. Splitting them would create
// unnecessary indirection without meaningful abstraction benefit.
//
// File organization:
//   - types.go: Finding and Status, the stable contract with presentation
//   - walk.go: CollectDesktopFiles (iterative, symlink-safe walk)
//   - inspect.go: InspectAll and the per-file inspection state machine
package scan
