// SPDX-License-Identifier: MPL-2.0

package scan

const (
	// StatusOk means the entry resolves, or legitimately has no executable
	// (DBus-activated entries).
	StatusOk StatusKind = "ok"
	// StatusBroken means the entry fails executable validation.
	StatusBroken StatusKind = "broken"
	// StatusSkipped means the entry was intentionally not checked.
	StatusSkipped StatusKind = "skipped"
)

type (
	// StatusKind identifies the outcome category of an inspection.
	StatusKind string

	// Status is the outcome of inspecting a single .desktop file. Exactly
	// one of ResolvedExecutable and Reason is meaningful, depending on Kind.
	Status struct {
		Kind StatusKind `json:"kind" yaml:"kind"`

		// ResolvedExecutable is the on-disk executable the entry resolves
		// to. Empty for broken/skipped findings, and for valid entries that
		// have no executable of their own (DBusActivatable).
		ResolvedExecutable string `json:"resolved_executable,omitempty" yaml:"resolved_executable,omitempty"`

		// Reason is the human-readable explanation for broken and skipped
		// findings.
		Reason string `json:"reason,omitempty" yaml:"reason,omitempty"`
	}

	// Finding is the terminal record for one scanned .desktop file. It is
	// created exactly once per discovered file and never revised; the
	// presentation layer filters and renders it.
	Finding struct {
		// DesktopFile is the full path of the inspected file.
		DesktopFile string `json:"desktop_file" yaml:"desktop_file"`

		// Name, Exec, TryExec, and PathKey carry the raw field values for
		// human context. Empty when the field is absent.
		Name    string `json:"name,omitempty" yaml:"name,omitempty"`
		Exec    string `json:"exec,omitempty" yaml:"exec,omitempty"`
		TryExec string `json:"try_exec,omitempty" yaml:"try_exec,omitempty"`
		PathKey string `json:"path_key,omitempty" yaml:"path_key,omitempty"`

		// Hidden and NoDisplay reflect the parsed boolean fields.
		Hidden    bool `json:"hidden" yaml:"hidden"`
		NoDisplay bool `json:"no_display" yaml:"no_display"`

		Status Status `json:"status" yaml:"status"`
	}
)

// OkStatus builds an ok Status. resolved may be empty for entries that
// legitimately resolve to no executable.
func OkStatus(resolved string) Status {
	return Status{Kind: StatusOk, ResolvedExecutable: resolved}
}

// BrokenStatus builds a broken Status with a human-readable reason.
func BrokenStatus(reason string) Status {
	return Status{Kind: StatusBroken, Reason: reason}
}

// SkippedStatus builds a skipped Status with a human-readable reason.
func SkippedStatus(reason string) Status {
	return Status{Kind: StatusSkipped, Reason: reason}
}

// IsBroken reports whether the finding's entry failed validation.
func (f *Finding) IsBroken() bool {
	return f.Status.Kind == StatusBroken
}

// Broken filters findings down to the broken ones, preserving order.
func Broken(findings []Finding) []Finding {
	var broken []Finding
	for _, f := range findings {
		if f.IsBroken() {
			broken = append(broken, f)
		}
	}
	return broken
}
