// SPDX-License-Identifier: MPL-2.0

package resolve

import (
	"path/filepath"
	"strings"
	"testing"
)

// fakeInterpreter creates an executable named like a real interpreter in its
// own directory and returns both the directory and the executable path.
func fakeInterpreter(t *testing.T, name string) (dir, exe string) {
	t.Helper()
	dir = t.TempDir()
	exe = writeExecutable(t, dir, name)
	return dir, exe
}

func TestValidateExec_ScriptArgMissing(t *testing.T) {
	binDir, _ := fakeInterpreter(t, "python3")

	r := Resolver{SearchPath: binDir, CheckScriptArgs: true}
	_, err := r.ValidateExec("python3 /tmp/does_not_exist_deskscout.py")
	if err == nil {
		t.Fatal("missing script argument should surface as an error")
	}
	if !strings.Contains(err.Error(), "python3") || !strings.Contains(err.Error(), "/tmp/does_not_exist_deskscout.py") {
		t.Errorf("error %q should name the interpreter and the missing path", err)
	}
}

func TestValidateExec_ScriptArgMissingDisabled(t *testing.T) {
	binDir, exe := fakeInterpreter(t, "python3")

	r := Resolver{SearchPath: binDir}
	got, err := r.ValidateExec("python3 /tmp/does_not_exist_deskscout.py")
	if err != nil {
		t.Fatalf("heuristic disabled: ValidateExec returned error %v", err)
	}
	if got != exe {
		t.Errorf("ValidateExec = %q, want %q", got, exe)
	}
}

func TestValidateExec_ScriptArgExists(t *testing.T) {
	binDir, _ := fakeInterpreter(t, "python3")
	scriptDir := t.TempDir()
	script := writeFileWithMode(t, scriptDir, "app.py", 0o644)

	r := Resolver{SearchPath: binDir, CheckScriptArgs: true}
	if _, err := r.ValidateExec("python3 " + script); err != nil {
		t.Errorf("existing script should not be flagged, got %v", err)
	}
}

func TestValidateExec_ScriptArgSkipsFlagsAndFieldCodes(t *testing.T) {
	binDir, _ := fakeInterpreter(t, "python3")

	r := Resolver{SearchPath: binDir, CheckScriptArgs: true}
	_, err := r.ValidateExec("python3 -u %f /tmp/does_not_exist_deskscout.py %u")
	if err == nil {
		t.Error("flags and field codes before the script must be skipped, not treated as the script")
	}
}

func TestValidateExec_ScriptArgNotPathLike(t *testing.T) {
	binDir, _ := fakeInterpreter(t, "python3")

	// A bare module name is not path-like; the heuristic must stay quiet.
	r := Resolver{SearchPath: binDir, CheckScriptArgs: true}
	if _, err := r.ValidateExec("python3 somemodule"); err != nil {
		t.Errorf("non-path-like argument should never be flagged, got %v", err)
	}
}

func TestValidateExec_ScriptArgRelativeWithoutWorkingDir(t *testing.T) {
	binDir, _ := fakeInterpreter(t, "bash")

	// Relative script with no Path= is ambiguous: silently skip the check.
	r := Resolver{SearchPath: binDir, CheckScriptArgs: true}
	if _, err := r.ValidateExec("bash ./scripts/launch.sh"); err != nil {
		t.Errorf("ambiguous relative script must be skipped, got %v", err)
	}
}

func TestValidateExec_ScriptArgRelativeWithWorkingDir(t *testing.T) {
	binDir, _ := fakeInterpreter(t, "bash")
	workDir := t.TempDir()

	r := Resolver{SearchPath: binDir, WorkingDir: workDir, CheckScriptArgs: true}
	_, err := r.ValidateExec("bash ./launch.sh")
	if err == nil {
		t.Fatal("missing relative script with working dir should be flagged")
	}
	want := filepath.Join(workDir, "launch.sh")
	if !strings.Contains(err.Error(), want) {
		t.Errorf("error %q should name the joined candidate %q", err, want)
	}
}

func TestValidateExec_NonInterpreterNeverFlagged(t *testing.T) {
	binDir, exe := fakeInterpreter(t, "firefox")

	r := Resolver{SearchPath: binDir, CheckScriptArgs: true}
	got, err := r.ValidateExec("firefox /nonexistent/profile/dir")
	if err != nil {
		t.Fatalf("non-interpreter executables must never be flagged, got %v", err)
	}
	if got != exe {
		t.Errorf("ValidateExec = %q, want %q", got, exe)
	}
}

func TestValidateExec_InterpreterNoArgs(t *testing.T) {
	binDir, exe := fakeInterpreter(t, "sh")

	r := Resolver{SearchPath: binDir, CheckScriptArgs: true}
	got, err := r.ValidateExec("sh")
	if err != nil {
		t.Fatalf("interpreter with no arguments should pass, got %v", err)
	}
	if got != exe {
		t.Errorf("ValidateExec = %q, want %q", got, exe)
	}
}

func TestScriptProblem_CaseInsensitiveInterpreterName(t *testing.T) {
	r := Resolver{}
	msg, found := r.scriptProblem("/opt/bin/Python3", []string{"Python3", "/tmp/missing_deskscout.py"})
	if !found {
		t.Fatal("interpreter matching must be case-insensitive")
	}
	if !strings.Contains(msg, "python3") {
		t.Errorf("problem %q should name the lowercased interpreter", msg)
	}
}
