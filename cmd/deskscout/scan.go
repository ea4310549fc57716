// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"deskscout-cli/internal/config"
	"deskscout-cli/internal/issue"
	"deskscout-cli/internal/scan"
	"deskscout-cli/internal/xdgdirs"
)

// scanFlagValues holds the raw scan flag values; they are merged with the
// config file in resolveScanSettings, flags winning when explicitly set.
type scanFlagValues struct {
	json            bool
	format          string
	includeHidden   bool
	checkScriptArgs bool
	jobs            int
	extraDirs       []string
	noDefault       bool
	noCommonExtras  bool
	showAll         bool
	explain         bool
}

var (
	scanFlags scanFlagValues

	scanCmd = &cobra.Command{
		Use:   "scan",
		Short: "Scan application directories for broken .desktop entries",
		Long: `Scan application directories for broken .desktop entries.

For every .desktop file found, deskscout checks whether the executable
named by Exec= (and TryExec=, when present) exists on disk and is
runnable. Entries whose executable cannot be resolved are reported as
broken; hidden and non-application entries are skipped.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runScan(cmd)
		},
	}
)

func init() {
	scanCmd.Flags().BoolVar(&scanFlags.json, "json", false, "shorthand for --format json")
	scanCmd.Flags().StringVar(&scanFlags.format, "format", "", "output format: text, json, or yaml")
	scanCmd.Flags().BoolVar(&scanFlags.includeHidden, "include-hidden", false, "also check entries with Hidden=true or NoDisplay=true")
	scanCmd.Flags().BoolVar(&scanFlags.checkScriptArgs, "check-script-args", false, "flag interpreter Exec lines whose script argument is missing")
	scanCmd.Flags().IntVar(&scanFlags.jobs, "jobs", 0, "max concurrent inspections (default: CPU count * 4, at least 8)")
	scanCmd.Flags().StringArrayVar(&scanFlags.extraDirs, "dir", nil, "additional directory to scan (can be passed multiple times)")
	scanCmd.Flags().BoolVar(&scanFlags.noDefault, "no-default", false, "do not scan the default XDG application directories")
	scanCmd.Flags().BoolVar(&scanFlags.noCommonExtras, "no-common-extras", false, "do not scan Flatpak/Snap desktop export directories")
	scanCmd.Flags().BoolVar(&scanFlags.showAll, "all", false, "report every finding, not just broken entries")
	scanCmd.Flags().BoolVar(&scanFlags.explain, "explain", false, "print remediation guidance when broken entries are found")
}

// scanSettings are the fully resolved inputs for one scan run.
type scanSettings struct {
	dirOpts xdgdirs.Options
	inspect scan.Options
	format  config.OutputFormat
	showAll bool
	explain bool
}

// resolveScanSettings merges the config file with the scan flags. A flag
// wins only when the user actually set it, so config values survive
// defaulted flags. changed reports whether a flag was set explicitly.
func resolveScanSettings(cfg *config.Config, fl scanFlagValues, changed func(string) bool) (scanSettings, error) {
	s := scanSettings{
		dirOpts: xdgdirs.Options{
			NoDefault:      cfg.NoDefaultDirs,
			NoCommonExtras: cfg.NoCommonExtras,
			ExtraDirs:      append([]string(nil), cfg.ExtraDirs...),
		},
		inspect: scan.Options{
			IncludeHidden:   cfg.IncludeHidden,
			CheckScriptArgs: cfg.CheckScriptArgs,
			Jobs:            cfg.Jobs,
		},
		format:  cfg.OutputFormat,
		showAll: fl.showAll,
		explain: fl.explain,
	}

	if changed("no-default") {
		s.dirOpts.NoDefault = fl.noDefault
	}
	if changed("no-common-extras") {
		s.dirOpts.NoCommonExtras = fl.noCommonExtras
	}
	s.dirOpts.ExtraDirs = append(s.dirOpts.ExtraDirs, fl.extraDirs...)

	if changed("include-hidden") {
		s.inspect.IncludeHidden = fl.includeHidden
	}
	if changed("check-script-args") {
		s.inspect.CheckScriptArgs = fl.checkScriptArgs
	}
	if changed("jobs") {
		s.inspect.Jobs = fl.jobs
	}

	switch {
	case changed("format"):
		s.format = config.OutputFormat(fl.format)
	case fl.json:
		s.format = config.FormatJSON
	}
	if !s.format.IsValid() {
		return scanSettings{}, fmt.Errorf("%w: %q (expected text, json, or yaml)", config.ErrInvalidOutputFormat, s.format)
	}
	if s.inspect.Jobs < 0 {
		return scanSettings{}, fmt.Errorf("%w: %d (expected zero or a positive count)", config.ErrInvalidJobs, s.inspect.Jobs)
	}

	return s, nil
}

// runScan executes the scan pipeline: resolve directories, collect files,
// inspect them concurrently, render the findings.
func runScan(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return issue.WrapWithOperation(err, "load configuration for scan")
	}

	settings, err := resolveScanSettings(cfg, scanFlags, cmd.Flags().Changed)
	if err != nil {
		return err
	}

	dirs := xdgdirs.ApplicationDirs(settings.dirOpts)
	if len(dirs) == 0 {
		if guidance, rerr := issue.Get(issue.NoScanDirsId).Render("auto"); rerr == nil {
			fmt.Fprint(cmd.ErrOrStderr(), guidance)
		}
		return fmt.Errorf("no directories to scan")
	}

	files := scan.CollectDesktopFiles(dirs)
	slog.Debug("collected desktop files", "dirs", len(dirs), "files", len(files))

	// PATH is read once here and passed down so the core stays deterministic.
	settings.inspect.SearchPath = os.Getenv("PATH")

	findings := scan.InspectAll(cmd.Context(), files, settings.inspect)

	if err := renderFindings(cmd.OutOrStdout(), findings, settings.format, settings.showAll); err != nil {
		return err
	}

	broken := scan.Broken(findings)
	if settings.explain && len(broken) > 0 && settings.format == config.FormatText {
		if guidance, rerr := issue.Get(issue.BrokenEntriesFoundId).Render("auto"); rerr == nil {
			fmt.Fprint(cmd.OutOrStdout(), guidance)
		} else {
			slog.Warn("failed to render remediation guidance", "error", rerr)
		}
	}

	if len(broken) > 0 {
		// Distinguish a dirty run from a clean one for scripted callers.
		return &ExitError{Code: 1, Err: fmt.Errorf("%d broken desktop entries", len(broken))}
	}
	return nil
}
