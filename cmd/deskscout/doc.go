// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for deskscout.
//
// This package implements the Cobra command hierarchy for the deskscout
// CLI: the root command, the scan and dirs subcommands, shell completion,
// and the rendering of scan results as text, JSON, or YAML.
package cmd
