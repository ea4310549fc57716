// SPDX-License-Identifier: MPL-2.0

package scan

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"

	"deskscout-cli/internal/desktopfile"
	"deskscout-cli/internal/resolve"
)

// Options carries the run-wide inspection inputs. It is built once from the
// process environment and configuration and shared read-only across all
// concurrent inspections.
type Options struct {
	// SearchPath is the colon-delimited PATH used to resolve bare commands.
	SearchPath string

	// IncludeHidden disables the Hidden/NoDisplay skip rule.
	IncludeHidden bool

	// CheckScriptArgs enables the interpreter script-argument heuristic.
	CheckScriptArgs bool

	// Jobs caps the number of concurrent inspections. Zero or negative
	// means DefaultJobs().
	Jobs int
}

// DefaultJobs returns the default concurrency cap: inspections are I/O
// bound, so the cap runs well past the CPU count, with a floor of 8.
func DefaultJobs() int {
	return max(runtime.NumCPU()*4, 8)
}

func (o Options) jobs() int {
	if o.Jobs > 0 {
		return o.Jobs
	}
	return DefaultJobs()
}

// InspectAll inspects every file concurrently and returns exactly one
// Finding per input path, in input order. At most Options.Jobs inspections
// run at once; a slot is held from before the file is read until its Finding
// is produced, on every exit path. One file's failure never aborts the run —
// per-file errors become Broken findings.
func InspectAll(ctx context.Context, files []string, opts Options) []Finding {
	jobs := opts.jobs()
	slog.Debug("starting concurrent inspection", "jobs", jobs, "files", len(files))

	findings := make([]Finding, len(files))

	var g errgroup.Group
	g.SetLimit(jobs)
	for i, path := range files {
		g.Go(func() error {
			findings[i] = inspectOne(ctx, path, opts)
			return nil
		})
	}
	// Inspections never return errors; Wait only synchronizes completion.
	_ = g.Wait()

	return findings
}

// inspectOne runs the per-file inspection state machine: read, parse, skip
// rules, bus-activation exemption, TryExec-first resolution, Exec fallback.
// It always returns a terminal Finding.
func inspectOne(ctx context.Context, path string, opts Options) Finding {
	finding := Finding{DesktopFile: path}

	if err := ctx.Err(); err != nil {
		finding.Status = BrokenStatus(fmt.Sprintf("inspection canceled: %v", err))
		return finding
	}

	content, err := os.ReadFile(path)
	if err != nil {
		slog.Warn("failed to read desktop file", "file", path, "error", err)
		finding.Status = BrokenStatus(fmt.Sprintf("failed to read file: %v", err))
		return finding
	}

	fields := desktopfile.ParseEntrySection(string(content))

	finding.Name = fields[desktopfile.KeyName]
	finding.PathKey = fields[desktopfile.KeyPath]
	finding.Hidden = desktopfile.ParseBool(fields[desktopfile.KeyHidden])
	finding.NoDisplay = desktopfile.ParseBool(fields[desktopfile.KeyNoDisplay])

	exec, hasExec := fields[desktopfile.KeyExec]
	tryExec, hasTryExec := fields[desktopfile.KeyTryExec]
	finding.Exec = exec
	finding.TryExec = tryExec

	if !opts.IncludeHidden && (finding.Hidden || finding.NoDisplay) {
		finding.Status = SkippedStatus("Hidden=true or NoDisplay=true (use --include-hidden to scan these)")
		return finding
	}

	if typ, ok := fields[desktopfile.KeyType]; ok && typ != desktopfile.TypeApplication {
		finding.Status = SkippedStatus(fmt.Sprintf("Type=%s (only Type=Application is checked)", typ))
		return finding
	}

	// DBus-activated entries are launched by the session bus and may
	// legitimately omit Exec.
	if desktopfile.ParseBool(fields[desktopfile.KeyDBusActivatable]) && !hasExec {
		finding.Status = OkStatus("")
		return finding
	}

	resolver := resolve.Resolver{
		SearchPath:      opts.SearchPath,
		WorkingDir:      finding.PathKey,
		CheckScriptArgs: opts.CheckScriptArgs,
	}

	// TryExec is the entry's own liveness probe: check it first, and treat
	// its failure as definitive. When it succeeds, Exec is still validated —
	// a resolving TryExec next to a dangling Exec is an inconsistent entry.
	if hasTryExec {
		resolvedTry, ok := resolver.ValidateTryExec(tryExec)
		if !ok {
			finding.Status = BrokenStatus(fmt.Sprintf("TryExec does not resolve: %s", tryExec))
			return finding
		}

		if hasExec {
			finding.Status = validateExecStatus(resolver, exec, "Exec does not resolve (even though TryExec does)")
			return finding
		}

		finding.Status = OkStatus(resolvedTry)
		return finding
	}

	if hasExec {
		finding.Status = validateExecStatus(resolver, exec, "Exec does not resolve")
		return finding
	}

	finding.Status = BrokenStatus("no Exec key found (and not DBusActivatable)")
	return finding
}

// validateExecStatus converts a ValidateExec outcome into a terminal Status,
// using unresolvedReason when the line resolves to nothing.
func validateExecStatus(resolver resolve.Resolver, execLine, unresolvedReason string) Status {
	resolved, err := resolver.ValidateExec(execLine)
	switch {
	case err != nil:
		return BrokenStatus(fmt.Sprintf("Exec check failed: %v", err))
	case resolved == "":
		return BrokenStatus(unresolvedReason)
	default:
		return OkStatus(resolved)
	}
}
