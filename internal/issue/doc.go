// SPDX-License-Identifier: MPL-2.0

// Package issue provides user-facing error types and rendered guidance.
//
// ActionableError carries structured context (operation, resource,
// suggestions) for process-level failures such as unloadable configuration.
// Issue is a registry of known trouble conditions with Markdown guidance
// that can be rendered to the terminal.
package issue
