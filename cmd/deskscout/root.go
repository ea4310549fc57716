// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/charmbracelet/fang"
	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"deskscout-cli/internal/config"
	"deskscout-cli/internal/issue"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// verbose enables debug-level logging
	verbose bool
	// quiet suppresses all logging below error level
	quiet bool
	// cfgFile allows specifying a custom config file
	cfgFile string

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "deskscout",
		Short: "Detect broken or stale .desktop launcher entries",
		Long: TitleStyle.Render("deskscout") + SubtitleStyle.Render(" - Detect broken or stale .desktop launcher entries") + `

deskscout walks the application directories of a Unix-like desktop and
checks, for every .desktop file, whether the program its Exec/TryExec
lines claim to launch actually exists and is runnable.

` + SubtitleStyle.Render("Examples:") + `
  deskscout scan                     Report broken entries in the default dirs
  deskscout scan --format json       Machine-readable report
  deskscout scan --dir ~/launchers   Scan an additional directory
  deskscout scan --include-hidden    Also check Hidden/NoDisplay entries
  deskscout dirs                     Show which directories would be scanned`,
	}
)

func init() {
	cobra.OnInitialize(initRootConfig)

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "log errors only")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $XDG_CONFIG_HOME/deskscout/config.yaml)")

	// Add subcommands
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(dirsCmd)
	rootCmd.AddCommand(newCompletionCommand())
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}

// initRootConfig wires the logging handler and the config file override
// before any subcommand runs.
func initRootConfig() {
	if cfgFile != "" {
		config.SetConfigFilePathOverride(cfgFile)
	}
	setupLogging()

	// Surface config problems once, up front. Subcommands still load the
	// config themselves and fail hard when they need it.
	if _, err := config.Load(); err != nil {
		fmt.Fprintln(os.Stderr, WarningStyle.Render("Warning: ")+formatErrorForDisplay(err, verbose))
	}
}

// setupLogging installs a charmbracelet handler as the process-wide slog
// default. Constructed once here, before any inspection starts, so every
// package logs through the same handler for the lifetime of the run.
func setupLogging() {
	logger := charmlog.NewWithOptions(os.Stderr, charmlog.Options{
		ReportTimestamp: false,
	})

	switch {
	case quiet:
		logger.SetLevel(charmlog.ErrorLevel)
	case verbose:
		logger.SetLevel(charmlog.DebugLevel)
	default:
		logger.SetLevel(charmlog.WarnLevel)
	}

	slog.SetDefault(slog.New(logger))
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
// In verbose mode, shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}
