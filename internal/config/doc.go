// SPDX-License-Identifier: MPL-2.0

// Package config loads deskscout configuration.
//
// Configuration lives in a YAML file under the platform config directory
// (on Linux: $XDG_CONFIG_HOME/deskscout/config.yaml) and provides defaults
// for scan behavior; command-line flags always win over file values. A
// missing config file is not an error — every field has a default.
package config
