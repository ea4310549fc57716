// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"deskscout-cli/internal/config"
	"deskscout-cli/internal/scan"
)

// renderFindings writes the scan result to w in the requested format.
// Unless showAll is set, only broken findings are reported.
func renderFindings(w io.Writer, findings []scan.Finding, format config.OutputFormat, showAll bool) error {
	selected := findings
	if !showAll {
		selected = scan.Broken(findings)
	}
	if selected == nil {
		selected = []scan.Finding{}
	}

	switch format {
	case config.FormatJSON:
		data, err := json.MarshalIndent(selected, "", "  ")
		if err != nil {
			return fmt.Errorf("encode findings as JSON: %w", err)
		}
		fmt.Fprintln(w, string(data))
		return nil
	case config.FormatYAML:
		data, err := yaml.Marshal(selected)
		if err != nil {
			return fmt.Errorf("encode findings as YAML: %w", err)
		}
		fmt.Fprint(w, string(data))
		return nil
	default:
		renderText(w, selected, len(findings), showAll)
		return nil
	}
}

func renderText(w io.Writer, selected []scan.Finding, total int, showAll bool) {
	if !showAll {
		if len(selected) == 0 {
			fmt.Fprintln(w, SuccessStyle.Render("No broken desktop entries found.")+
				MutedStyle.Render(fmt.Sprintf(" (%d checked)", total)))
			return
		}
		fmt.Fprintln(w, ErrorStyle.Render(fmt.Sprintf("Broken desktop entries (%d of %d checked):", len(selected), total)))
	} else {
		fmt.Fprintln(w, TitleStyle.Render(fmt.Sprintf("Scan findings (%d):", len(selected))))
	}

	for i := range selected {
		fmt.Fprintln(w)
		renderFinding(w, &selected[i])
	}
}

func renderFinding(w io.Writer, f *scan.Finding) {
	fmt.Fprintf(w, "%s %s\n", statusMarker(f.Status.Kind), f.DesktopFile)
	if f.Name != "" {
		fmt.Fprintf(w, "    %s %s\n", MutedStyle.Render("Name:"), f.Name)
	}
	if f.Exec != "" {
		fmt.Fprintf(w, "    %s %s\n", MutedStyle.Render("Exec:"), f.Exec)
	}
	if f.TryExec != "" {
		fmt.Fprintf(w, "    %s %s\n", MutedStyle.Render("TryExec:"), f.TryExec)
	}
	if f.PathKey != "" {
		fmt.Fprintf(w, "    %s %s\n", MutedStyle.Render("Path:"), f.PathKey)
	}
	if f.Hidden || f.NoDisplay {
		fmt.Fprintf(w, "    %s Hidden=%t NoDisplay=%t\n", MutedStyle.Render("Visibility:"), f.Hidden, f.NoDisplay)
	}

	switch f.Status.Kind {
	case scan.StatusOk:
		if f.Status.ResolvedExecutable != "" {
			fmt.Fprintf(w, "    %s %s\n", MutedStyle.Render("Resolves to:"), f.Status.ResolvedExecutable)
		}
	default:
		fmt.Fprintf(w, "    %s %s\n", MutedStyle.Render("Reason:"), f.Status.Reason)
	}
}

func statusMarker(kind scan.StatusKind) string {
	switch kind {
	case scan.StatusOk:
		return SuccessStyle.Render("✓")
	case scan.StatusBroken:
		return ErrorStyle.Render("✗")
	case scan.StatusSkipped:
		return WarningStyle.Render("-")
	default:
		return "?"
	}
}
