// SPDX-License-Identifier: MPL-2.0

package scan

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestFindingJSONContract(t *testing.T) {
	// The serialized field names are the stable contract with the
	// presentation layer; renaming them breaks downstream consumers.
	f := Finding{
		DesktopFile: "/usr/share/applications/app.desktop",
		Name:        "App",
		Exec:        "app %u",
		Status:      BrokenStatus("Exec does not resolve"),
	}

	raw, err := json.Marshal(f)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	s := string(raw)

	for _, want := range []string{
		`"desktop_file"`, `"name"`, `"exec"`, `"hidden"`, `"no_display"`,
		`"status"`, `"kind":"broken"`, `"reason":"Exec does not resolve"`,
	} {
		if !strings.Contains(s, want) {
			t.Errorf("JSON %s missing %s", s, want)
		}
	}

	// Absent optional fields stay out of the document entirely.
	for _, unwanted := range []string{`"try_exec"`, `"path_key"`, `"resolved_executable"`} {
		if strings.Contains(s, unwanted) {
			t.Errorf("JSON %s should omit empty %s", s, unwanted)
		}
	}
}

func TestStatusConstructors(t *testing.T) {
	if s := OkStatus("/bin/sh"); s.Kind != StatusOk || s.ResolvedExecutable != "/bin/sh" || s.Reason != "" {
		t.Errorf("OkStatus = %+v", s)
	}
	if s := BrokenStatus("why"); s.Kind != StatusBroken || s.Reason != "why" {
		t.Errorf("BrokenStatus = %+v", s)
	}
	if s := SkippedStatus("why"); s.Kind != StatusSkipped || s.Reason != "why" {
		t.Errorf("SkippedStatus = %+v", s)
	}
}

func TestBrokenFilter(t *testing.T) {
	findings := []Finding{
		{DesktopFile: "a", Status: OkStatus("/bin/a")},
		{DesktopFile: "b", Status: BrokenStatus("nope")},
		{DesktopFile: "c", Status: SkippedStatus("hidden")},
		{DesktopFile: "d", Status: BrokenStatus("also nope")},
	}

	broken := Broken(findings)
	if len(broken) != 2 || broken[0].DesktopFile != "b" || broken[1].DesktopFile != "d" {
		t.Errorf("Broken = %+v, want b and d in order", broken)
	}

	if got := Broken(nil); got != nil {
		t.Errorf("Broken(nil) = %v, want nil", got)
	}
}
